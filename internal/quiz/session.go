package quiz

import "fmt"

// Session drives one pass through a fixed list of questions. It is owned by
// a single UI and is not safe for concurrent use.
type Session struct {
	questions []Question
	index     int
	selection Selection
	answers   []Selection
	result    *Result
}

// NewSession validates questions and starts a session at the first question.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	owned := make([]Question, len(questions))
	for i, question := range questions {
		owned[i] = question.clone()
		owned[i].Correct = owned[i].Correct.normalized()
	}
	return &Session{
		questions: owned,
		answers:   make([]Selection, 0, len(owned)),
	}, nil
}

// Questions returns the session's questions.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	for i, question := range s.questions {
		out[i] = question.clone()
	}
	return out
}

// Completed reports whether every question has been answered.
func (s *Session) Completed() bool {
	return s.result != nil
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, bool) {
	if s.Completed() {
		return Question{}, false
	}
	return s.questions[s.index].clone(), true
}

// Selection returns the in-progress selection for the current question.
func (s *Session) Selection() Selection {
	return s.selection
}

// Answers returns the committed selections so far.
func (s *Session) Answers() []Selection {
	out := make([]Selection, len(s.answers))
	copy(out, s.answers)
	return out
}

// Select applies a pick to the current question. Multi-answer questions
// toggle the choice; single-answer questions replace the selection.
func (s *Session) Select(choiceIndex int) error {
	question, ok := s.Current()
	if !ok {
		return ErrCompleted
	}
	if choiceIndex < 0 || choiceIndex >= len(question.Choices) {
		return fmt.Errorf("%w: index %d outside [0,%d) for question %d", ErrInvalidChoice, choiceIndex, len(question.Choices), s.index+1)
	}
	if question.Multi() {
		s.selection = s.selection.Toggle(choiceIndex)
	} else {
		s.selection = NewSelection(choiceIndex)
	}
	return nil
}

// Advance commits the current selection, which may be empty, and moves to
// the next question or completes the session.
func (s *Session) Advance() (FlowState, error) {
	if s.Completed() {
		return s.State(), ErrCompleted
	}
	s.answers = append(s.answers, s.selection)
	s.selection = Selection{}
	if s.index+1 < len(s.questions) {
		s.index++
		return s.State(), nil
	}
	result, err := Score(s.questions, s.answers)
	if err != nil {
		return s.State(), err
	}
	s.result = &result
	return s.State(), nil
}

// OnChoiceTapped is the UI entry point for a choice pick.
func (s *Session) OnChoiceTapped(choiceIndex int) error {
	return s.Select(choiceIndex)
}

// OnNextPressed is the UI entry point for moving on.
func (s *Session) OnNextPressed() (FlowState, error) {
	return s.Advance()
}

// State returns a snapshot of the session.
func (s *Session) State() FlowState {
	state := FlowState{
		Index:     s.index,
		Total:     len(s.questions),
		Selection: s.selection,
		Answers:   s.Answers(),
	}
	if s.Completed() {
		result := *s.result
		result.Correct = append([]bool(nil), s.result.Correct...)
		state.Phase = PhaseCompleted
		state.Index = len(s.questions)
		state.Result = &result
		return state
	}
	state.Phase = PhaseQuestion
	state.Question = s.questions[s.index].clone()
	return state
}
