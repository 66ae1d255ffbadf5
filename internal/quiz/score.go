package quiz

import "fmt"

// Result is the scored outcome of a session.
type Result struct {
	Correct   []bool
	Total     int
	Questions int
}

// Score compares each answer against its question's correct set.
func Score(questions []Question, answers []Selection) (Result, error) {
	if len(questions) != len(answers) {
		return Result{}, fmt.Errorf("%w: %d questions, %d answers", ErrLengthMismatch, len(questions), len(answers))
	}
	result := Result{
		Correct:   make([]bool, len(questions)),
		Questions: len(questions),
	}
	for i, question := range questions {
		if answers[i].Equal(question.CorrectSelection()) {
			result.Correct[i] = true
			result.Total++
		}
	}
	return result, nil
}

// String renders the score as "X / N".
func (r Result) String() string {
	return fmt.Sprintf("%d / %d", r.Total, r.Questions)
}
