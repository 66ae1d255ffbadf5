package plain

import (
	"fmt"
	"io"

	"quizapp/internal/quiz"
)

// WriteSummary writes the score followed by a per-question breakdown.
func WriteSummary(out io.Writer, questions []quiz.Question, answers []quiz.Selection) error {
	result, err := quiz.Score(questions, answers)
	if err != nil {
		return err
	}
	reviews, err := quiz.Review(questions, answers)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Your Score: %s\n", result)
	for _, review := range reviews {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d. %s\n", review.Index+1, review.Prompt)
		if review.Correct {
			fmt.Fprintln(out, "   Correct")
		} else {
			fmt.Fprintln(out, "   Incorrect")
		}
		for _, choice := range review.Choices {
			fmt.Fprintf(out, "   %s\n", formatChoice(choice))
		}
	}
	return nil
}

func formatChoice(choice quiz.ChoiceReview) string {
	switch choice.Mark {
	case quiz.ChoiceSelectedCorrect:
		return "[x] " + choice.Text
	case quiz.ChoiceSelectedWrong:
		return "[x] " + choice.Text + " (wrong)"
	case quiz.ChoiceMissed:
		return "[ ] " + choice.Text + " (answer)"
	default:
		return "[ ] " + choice.Text
	}
}
