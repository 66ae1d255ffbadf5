package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSet trims whitespace, fills in missing ids, collapses duplicate
// correct indices, and validates a question set.
func NormalizeSet(set Set) (Set, error) {
	collector := &issueCollector{}
	if set.Version == 0 {
		collector.add("version", "is required")
	} else if set.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", set.Version))
	}
	set.Title = strings.TrimSpace(set.Title)
	if len(set.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range set.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			question.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}
		question.Prompt = strings.TrimSpace(question.Prompt)
		question.Choices = normalizeStringSlice(question.Choices)
		question.Correct = question.Correct.normalized()
		validateQuestion(collector, prefix, question)
		set.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// ValidateQuestions checks the structural invariants of each question.
func ValidateQuestions(questions []Question) error {
	collector := &issueCollector{}
	for i, question := range questions {
		validateQuestion(collector, fmt.Sprintf("questions[%d]", i), question)
	}
	return collector.result()
}

func validateQuestion(collector *issueCollector, prefix string, question Question) {
	if strings.TrimSpace(question.Prompt) == "" {
		collector.add(prefix+".question", "is required")
	}
	if len(question.Choices) < 2 {
		collector.add(prefix+".choices", "must include at least two entries")
	}
	for choiceIndex, choice := range question.Choices {
		if strings.TrimSpace(choice) == "" {
			collector.add(fmt.Sprintf("%s.choices[%d]", prefix, choiceIndex), "is required")
		}
	}
	if len(question.Correct) == 0 {
		collector.add(prefix+".correct", "must include at least one index")
		return
	}
	for correctIndex, index := range question.Correct {
		if index < 0 || index >= len(question.Choices) {
			collector.add(fmt.Sprintf("%s.correct[%d]", prefix, correctIndex), fmt.Sprintf("index %d out of range", index))
		}
	}
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
