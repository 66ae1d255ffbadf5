package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizapp/internal/quiz"
	"quizapp/internal/ui/plain"
)

// scoreReport is the --json output of the score command.
type scoreReport struct {
	Source    string `json:"source"`
	Score     int    `json:"score"`
	Questions int    `json:"questions"`
	Correct   []bool `json:"correct"`
}

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quiz/config.yml)")
		questionsPath := flags.String("questions", "", "Path to a question set (default: config questions_file, else the built-in sample)")
		answersPath := flags.String("answers", "", "Path to an answers file")
		asJSON := flags.Bool("json", false, "Print the score as JSON")
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
		if strings.TrimSpace(*answersPath) == "" {
			fmt.Fprintln(stderr, "Missing --answers")
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
		set, source, err := loadQuestionSet(cfg.QuestionsFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		answers, err := quiz.LoadAnswers(*answersPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load answers: %v\n", err)
			return ExitError
		}

		result, err := quiz.Score(set.Questions, answers)
		if err != nil {
			fmt.Fprintf(stderr, "Scoring failed: %v\n", err)
			return ExitError
		}
		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(scoreReport{
				Source:    source,
				Score:     result.Total,
				Questions: result.Questions,
				Correct:   result.Correct,
			}); err != nil {
				fmt.Fprintf(stderr, "Failed to write score: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := plain.WriteSummary(stdout, set.Questions, answers); err != nil {
			fmt.Fprintf(stderr, "Scoring failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
