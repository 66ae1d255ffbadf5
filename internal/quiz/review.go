package quiz

// ChoiceMark annotates a choice on the summary screen.
type ChoiceMark int

const (
	// ChoiceNeutral is neither selected nor correct.
	ChoiceNeutral ChoiceMark = iota
	// ChoiceSelectedCorrect was selected and is correct.
	ChoiceSelectedCorrect
	// ChoiceSelectedWrong was selected but is not correct.
	ChoiceSelectedWrong
	// ChoiceMissed is correct but was not selected.
	ChoiceMissed
)

// ChoiceReview pairs a choice with its mark.
type ChoiceReview struct {
	Text string
	Mark ChoiceMark
}

// QuestionReview is the per-question breakdown of a scored session.
type QuestionReview struct {
	Index   int
	Prompt  string
	Correct bool
	Answer  Selection
	Choices []ChoiceReview
}

// Review scores answers and annotates every choice.
func Review(questions []Question, answers []Selection) ([]QuestionReview, error) {
	result, err := Score(questions, answers)
	if err != nil {
		return nil, err
	}
	reviews := make([]QuestionReview, 0, len(questions))
	for i, question := range questions {
		correct := question.CorrectSelection()
		review := QuestionReview{
			Index:   i,
			Prompt:  question.Prompt,
			Correct: result.Correct[i],
			Answer:  answers[i],
			Choices: make([]ChoiceReview, 0, len(question.Choices)),
		}
		for choiceIndex, text := range question.Choices {
			review.Choices = append(review.Choices, ChoiceReview{
				Text: text,
				Mark: markChoice(answers[i].Contains(choiceIndex), correct.Contains(choiceIndex)),
			})
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func markChoice(selected, correct bool) ChoiceMark {
	switch {
	case selected && correct:
		return ChoiceSelectedCorrect
	case selected:
		return ChoiceSelectedWrong
	case correct:
		return ChoiceMissed
	default:
		return ChoiceNeutral
	}
}
