package quiz

// Set is the question file schema loaded from YAML or JSON.
type Set struct {
	Version   int        `json:"version" yaml:"version"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a multiple-choice question with one or more correct choices.
type Question struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt  string   `json:"question" yaml:"question"`
	Choices []string `json:"choices" yaml:"choices"`
	Correct IndexSet `json:"correct" yaml:"correct"`
}

// Multi reports whether the question accepts more than one choice.
func (q Question) Multi() bool {
	return len(q.Correct) > 1
}

// clone returns a copy that shares no slices with q.
func (q Question) clone() Question {
	q.Choices = append([]string(nil), q.Choices...)
	q.Correct = append(IndexSet(nil), q.Correct...)
	return q
}

// CorrectSelection returns the correct choices as a Selection.
func (q Question) CorrectSelection() Selection {
	return NewSelection(q.Correct...)
}

// Phase identifies where a session is in its lifecycle.
type Phase int

const (
	// PhaseQuestion means a question is awaiting an answer.
	PhaseQuestion Phase = iota
	// PhaseCompleted means every question has been answered.
	PhaseCompleted
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseQuestion:
		return "question"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// FlowState is a snapshot of a session handed to the UI.
type FlowState struct {
	Phase     Phase
	Index     int
	Total     int
	Question  Question
	Selection Selection
	Answers   []Selection
	Result    *Result
}

// Completed reports whether the snapshot is terminal.
func (s FlowState) Completed() bool {
	return s.Phase == PhaseCompleted
}
