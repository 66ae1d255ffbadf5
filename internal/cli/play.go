package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"quizapp/internal/quiz"
	"quizapp/internal/ui/live"
	"quizapp/internal/ui/plain"
	"quizapp/internal/verbose"
)

// stdin feeds interactive commands; tests replace it.
var stdin io.Reader = os.Stdin

// newSessionID is a test seam for session ids.
var newSessionID = uuid.NewString

// runLive is a test seam for the Bubble Tea renderer.
var runLive = live.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quiz/config.yml)")
		questionsPath := flags.String("questions", "", "Path to a question set (default: config questions_file, else the built-in sample)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui)")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		verboseFlag := flags.Bool("verbose", false, "Verbose logging")
		logPath := flags.String("log", "", "Write verbose logs to a file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if err := overrideQuestions(&cfg, *questionsPath); err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		if strings.TrimSpace(*uiMode) != "" {
			cfg.UI = *uiMode
		}
		if *noColor {
			cfg.NoColor = true
		}

		set, source, err := loadQuestionSet(cfg.QuestionsFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		session, err := quiz.NewSession(set.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
			return ExitError
		}

		sessionID := newSessionID()
		logger, closeLog, err := openLogger(*verboseFlag, *logPath, stderr, sessionID)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer closeLog()
		logger.Printf("loaded %d questions from %s", len(set.Questions), source)

		// Verbose lines on stderr would tear the live view; a log file does not.
		decision, err := resolveUIMode(cfg.UI, *verboseFlag && strings.TrimSpace(*logPath) == "", stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid UI mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var state quiz.FlowState
		if decision.useLive {
			logger.Printf("starting live ui")
			state, err = runLive(context.Background(), session, stdin, stdout, live.Options{
				NoColor:   cfg.NoColor,
				Title:     set.Title,
				SessionID: sessionID,
				Logger:    logger,
			})
		} else {
			logger.Printf("starting plain ui")
			state, err = plain.Run(session, stdin, stdout, plain.Options{
				Title:     set.Title,
				SessionID: sessionID,
				Logger:    logger,
			})
		}
		if errors.Is(err, quiz.ErrAborted) {
			fmt.Fprintf(stderr, "Quiz aborted after %d of %d questions\n", len(state.Answers), state.Total)
			return ExitError
		}
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		logger.Printf("session complete, score %s", state.Result)
		logger.Block("answers", formatAnswerLog(state.Answers))
		return ExitOK
	}
}

// openLogger returns a verbose logger and a close func. The logger is nil
// when verbose output is off.
func openLogger(enabled bool, logPath string, stderr io.Writer, sessionID string) (*verbose.Logger, func(), error) {
	if !enabled {
		return nil, func() {}, nil
	}
	if strings.TrimSpace(logPath) == "" {
		logger := verbose.New(stderr, sessionID)
		return logger, logger.Sync, nil
	}
	file, err := os.Create(logPath)
	if err != nil {
		return nil, func() {}, fmt.Errorf("create log file: %w", err)
	}
	logger := verbose.New(file, sessionID)
	return logger, func() {
		logger.Sync()
		_ = file.Close()
	}, nil
}

func formatAnswerLog(answers []quiz.Selection) string {
	var b strings.Builder
	for i, answer := range answers {
		fmt.Fprintf(&b, "Q%d %s\n", i+1, answer)
	}
	return b.String()
}
