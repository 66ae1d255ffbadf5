package live

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizapp/internal/quiz"
)

// Run shows the session in the terminal until the user finishes or quits.
// It returns quiz.ErrAborted when the user quits early.
func Run(ctx context.Context, session *quiz.Session, in io.Reader, out io.Writer, opts Options) (quiz.FlowState, error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}
	program := tea.NewProgram(NewModel(session, opts), programOpts...)
	final, err := program.Run()
	if err != nil {
		return session.State(), fmt.Errorf("run live ui: %w", err)
	}
	if model, ok := final.(Model); ok && model.Aborted() {
		return session.State(), quiz.ErrAborted
	}
	return session.State(), nil
}
