package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizapp/internal/quiz"
	"quizapp/internal/verbose"
)

// Options configures the plain renderer.
type Options struct {
	Title     string
	SessionID string
	Logger    *verbose.Logger
}

// Run drives a session from line-oriented input. Each line lists 1-based
// choice numbers to pick; an empty line moves to the next question; "q"
// quits. The summary is written once the session completes.
func Run(session *quiz.Session, in io.Reader, out io.Writer, opts Options) (quiz.FlowState, error) {
	reader := bufio.NewReader(in)
	if opts.Title != "" {
		fmt.Fprintln(out, opts.Title)
		fmt.Fprintln(out)
	}
	shown := -1
	for !session.Completed() {
		state := session.State()
		if state.Index != shown {
			writeQuestion(out, state)
			shown = state.Index
		}
		fmt.Fprint(out, "> ")
		line, err := readLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			return session.State(), fmt.Errorf("read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		line = strings.TrimSpace(line)

		switch strings.ToLower(line) {
		case "":
			if eof {
				return session.State(), quiz.ErrAborted
			}
			next, err := session.OnNextPressed()
			if err != nil {
				return next, err
			}
			opts.Logger.Printf("advanced past question %d with %s", state.Index+1, state.Selection)
			continue
		case "q", "quit":
			return session.State(), quiz.ErrAborted
		}

		applyPicks(session, line, out, opts.Logger)
		fmt.Fprintf(out, "Selected: %s\n", formatPicks(session.Selection()))
		if eof {
			return session.State(), quiz.ErrAborted
		}
	}

	final := session.State()
	fmt.Fprintln(out)
	if opts.SessionID != "" {
		fmt.Fprintf(out, "Session %s\n", opts.SessionID)
	}
	if err := WriteSummary(out, session.Questions(), final.Answers); err != nil {
		return final, err
	}
	return final, nil
}

// applyPicks selects every choice listed on the line, stopping at the first
// invalid one so the user sees the problem immediately.
func applyPicks(session *quiz.Session, line string, out io.Writer, logger *verbose.Logger) {
	for _, field := range strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' }) {
		number, err := strconv.Atoi(field)
		if err != nil {
			fmt.Fprintf(out, "Invalid choice %q: expected a choice number\n", field)
			return
		}
		if err := session.OnChoiceTapped(number - 1); err != nil {
			fmt.Fprintf(out, "Invalid choice %d: %v\n", number, err)
			logger.Printf("rejected choice %d: %v", number, err)
			return
		}
		logger.Printf("picked choice %d", number)
	}
}

func writeQuestion(out io.Writer, state quiz.FlowState) {
	question := state.Question
	fmt.Fprintf(out, "Question %d of %d\n", state.Index+1, state.Total)
	fmt.Fprintln(out, question.Prompt)
	if question.Multi() {
		fmt.Fprintln(out, "(select all that apply)")
	}
	for i, choice := range question.Choices {
		fmt.Fprintf(out, "  %d. %s\n", i+1, choice)
	}
	fmt.Fprintln(out, "Enter choice numbers, an empty line for the next question, q to quit.")
}

// formatPicks renders a selection with 1-based numbers.
func formatPicks(selection quiz.Selection) string {
	if selection.Empty() {
		return "none"
	}
	parts := make([]string, 0, selection.Len())
	for _, index := range selection.Indices() {
		parts = append(parts, strconv.Itoa(index+1))
	}
	return strings.Join(parts, ", ")
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
