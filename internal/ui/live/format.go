package live

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatIndex formats a question index.
func formatIndex(index int) string {
	return "Q" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return strconv.Itoa(value)
	}
	return "0" + strconv.Itoa(value)
}

// formatQuestionText collapses whitespace and truncates question text to
// the table's display width.
func formatQuestionText(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 60
	return runewidth.Truncate(normalized, limit, "...")
}

// formatResult renders a correctness flag.
func formatResult(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

// formatProgress renders "Question 2 of 4".
func formatProgress(index, total int) string {
	return "Question " + strconv.Itoa(index+1) + " of " + strconv.Itoa(total)
}
