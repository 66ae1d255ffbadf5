package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizapp/internal/quiz"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	scoreStyle    = lipgloss.NewStyle().Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	missedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// renderQuestion renders the active question with its choices.
func renderQuestion(m Model) string {
	state := m.session.State()
	question := state.Question
	noColor := m.opts.NoColor

	lines := make([]string, 0, len(question.Choices)+8)
	if header := renderHeader(m); header != "" {
		lines = append(lines, header)
	}
	lines = append(lines, stylize(formatProgress(state.Index, state.Total), noColor, progressStyle))
	lines = append(lines, stylize(question.Prompt, noColor, promptStyle))
	if question.Multi() {
		lines = append(lines, stylize("Select all that apply.", noColor, hintStyle))
	}
	lines = append(lines, "")
	for i, choice := range question.Choices {
		lines = append(lines, renderChoice(i, choice, question.Multi(), i == m.cursor, state.Selection.Contains(i), noColor))
	}
	lines = append(lines, "")
	if m.notice != "" {
		lines = append(lines, stylize(m.notice, noColor, noticeStyle))
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// renderChoice renders one choice row with cursor and selection marks.
func renderChoice(index int, text string, multi, focused, selected, noColor bool) string {
	cursor := "  "
	if focused {
		cursor = stylize("> ", noColor, cursorStyle)
	}
	box := "( )"
	if multi {
		box = "[ ]"
	}
	if selected {
		box = "(•)"
		if multi {
			box = "[x]"
		}
	}
	line := box + " " + strconv.Itoa(index+1) + ". " + text
	if selected {
		line = stylize(line, noColor, selectedStyle)
	}
	return cursor + line
}

// renderHeader renders the optional title line.
func renderHeader(m Model) string {
	if m.opts.Title == "" {
		return ""
	}
	return stylize(m.opts.Title, m.opts.NoColor, titleStyle)
}

// renderSummary renders the score, the results table, and annotated choices.
func renderSummary(m Model) string {
	state := m.session.State()
	noColor := m.opts.NoColor
	lines := []string{}
	if header := renderHeader(m); header != "" {
		lines = append(lines, header)
	}
	if m.opts.SessionID != "" {
		lines = append(lines, stylize("Session "+m.opts.SessionID, noColor, hintStyle))
	}
	if state.Result != nil {
		lines = append(lines, stylize("Your Score: "+state.Result.String(), noColor, scoreStyle))
	}
	lines = append(lines, "", m.table.View(), "")

	reviews, err := quiz.Review(m.session.Questions(), state.Answers)
	if err != nil {
		lines = append(lines, stylize(err.Error(), noColor, noticeStyle))
	}
	for _, review := range reviews {
		lines = append(lines, stylize(formatIndex(review.Index)+" "+review.Prompt, noColor, promptStyle))
		if review.Correct {
			lines = append(lines, "  "+stylize("Correct", noColor, correctStyle))
		} else {
			lines = append(lines, "  "+stylize("Incorrect", noColor, wrongStyle))
		}
		for _, choice := range review.Choices {
			lines = append(lines, "    "+renderReviewChoice(choice, noColor))
		}
		lines = append(lines, "")
	}
	if m.notice != "" {
		lines = append(lines, stylize(m.notice, noColor, noticeStyle))
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.summaryHelp()))
	return strings.Join(lines, "\n") + "\n"
}

// renderReviewChoice marks a choice on the summary: selected correct picks
// are bold, selected wrong picks are struck through, missed answers are dim.
func renderReviewChoice(choice quiz.ChoiceReview, noColor bool) string {
	switch choice.Mark {
	case quiz.ChoiceSelectedCorrect:
		if noColor {
			return "[x] " + choice.Text
		}
		return correctStyle.Bold(true).Render("[x] " + choice.Text)
	case quiz.ChoiceSelectedWrong:
		if noColor {
			return "[x] " + choice.Text + " (wrong)"
		}
		return wrongStyle.Strikethrough(true).Render("[x] " + choice.Text)
	case quiz.ChoiceMissed:
		return stylize("[ ] "+choice.Text+" (answer)", noColor, missedStyle)
	default:
		return "[ ] " + choice.Text
	}
}
