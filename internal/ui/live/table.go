package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizapp/internal/quiz"
)

// defaultColumns returns summary columns for an unknown terminal width.
func defaultColumns() []table.Column {
	return columnsForWidth(0)
}

// columnsForWidth sizes the question column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	questionWidth := 40
	if width > 0 {
		questionWidth = max(width-4-8-10-24-8, 16)
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Result", Width: 10},
		{Title: "Your answer", Width: 24},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// rowsForReviews converts reviewed answers into table rows.
func rowsForReviews(reviews []quiz.QuestionReview) []table.Row {
	rows := make([]table.Row, 0, len(reviews))
	for _, review := range reviews {
		rows = append(rows, table.Row{
			formatIndex(review.Index),
			formatQuestionText(review.Prompt),
			formatResult(review.Correct),
			formatAnswer(review),
		})
	}
	return rows
}

// formatAnswer lists the selected choice texts.
func formatAnswer(review quiz.QuestionReview) string {
	if review.Answer.Empty() {
		return "none"
	}
	picked := make([]string, 0, review.Answer.Len())
	for i, choice := range review.Choices {
		if review.Answer.Contains(i) {
			picked = append(picked, choice.Text)
		}
	}
	return strings.Join(picked, ", ")
}
