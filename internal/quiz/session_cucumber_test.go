//go:build cucumber

package quiz

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestSessionScenarios runs the session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "quiz", "session.feature")
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a quiz with the question "([^"]+)" choices "([^"]+)" and correct "([^"]+)"$`, state.givenQuiz)
	ctx.Step(`^the sample quiz$`, state.givenSampleQuiz)
	ctx.Step(`^I pick choice (\d+)$`, state.whenIPick)
	ctx.Step(`^I press next$`, state.whenIPressNext)
	ctx.Step(`^I press next (\d+) times$`, state.whenIPressNextTimes)
	ctx.Step(`^the quiz is completed$`, state.thenCompleted)
	ctx.Step(`^the answer log is "([^"]*)"$`, state.thenAnswerLog)
	ctx.Step(`^the answer log has (\d+) entries$`, state.thenAnswerLogLen)
	ctx.Step(`^the score is (\d+) of (\d+)$`, state.thenScore)
	ctx.Step(`^the correctness is "([^"]+)"$`, state.thenCorrectness)
	ctx.Step(`^the current selection is "([^"]*)"$`, state.thenSelection)
	ctx.Step(`^the pick fails with an invalid choice$`, state.thenInvalidChoice)
	ctx.Step(`^next fails because the quiz is completed$`, state.thenCompletedError)
}

type sessionScenarioState struct {
	session *Session
	last    FlowState
	pickErr error
	nextErr error
}

// reset clears scenario state.
func (s *sessionScenarioState) reset() {
	*s = sessionScenarioState{}
}

func (s *sessionScenarioState) givenQuiz(prompt, choices, correct string) error {
	indices, err := parseIndices(correct)
	if err != nil {
		return err
	}
	return s.start([]Question{{
		Prompt:  prompt,
		Choices: strings.Split(choices, ","),
		Correct: indices,
	}})
}

func (s *sessionScenarioState) givenSampleQuiz() error {
	return s.start(SampleSet().Questions)
}

func (s *sessionScenarioState) start(questions []Question) error {
	session, err := NewSession(questions)
	if err != nil {
		return err
	}
	s.session = session
	s.last = session.State()
	return nil
}

func (s *sessionScenarioState) whenIPick(index int) error {
	s.pickErr = s.session.OnChoiceTapped(index)
	return nil
}

func (s *sessionScenarioState) whenIPressNext() error {
	s.last, s.nextErr = s.session.OnNextPressed()
	return nil
}

func (s *sessionScenarioState) whenIPressNextTimes(count int) error {
	for i := 0; i < count; i++ {
		if err := s.whenIPressNext(); err != nil {
			return err
		}
		if s.nextErr != nil {
			return s.nextErr
		}
	}
	return nil
}

func (s *sessionScenarioState) thenCompleted() error {
	if !s.last.Completed() {
		return fmt.Errorf("expected completed, got %s at %d", s.last.Phase, s.last.Index)
	}
	return nil
}

func (s *sessionScenarioState) thenAnswerLog(want string) error {
	parts := make([]string, 0, len(s.last.Answers))
	for _, answer := range s.last.Answers {
		parts = append(parts, answer.String())
	}
	if got := strings.Join(parts, " "); got != want {
		return fmt.Errorf("expected answer log %q, got %q", want, got)
	}
	return nil
}

func (s *sessionScenarioState) thenAnswerLogLen(want int) error {
	if len(s.last.Answers) != want {
		return fmt.Errorf("expected %d answers, got %d", want, len(s.last.Answers))
	}
	return nil
}

func (s *sessionScenarioState) thenScore(total, questions int) error {
	if s.last.Result == nil {
		return fmt.Errorf("expected a result")
	}
	if s.last.Result.Total != total || s.last.Result.Questions != questions {
		return fmt.Errorf("expected %d / %d, got %s", total, questions, s.last.Result)
	}
	return nil
}

func (s *sessionScenarioState) thenCorrectness(want string) error {
	if s.last.Result == nil {
		return fmt.Errorf("expected a result")
	}
	parts := make([]string, 0, len(s.last.Result.Correct))
	for _, correct := range s.last.Result.Correct {
		parts = append(parts, strconv.FormatBool(correct))
	}
	if got := strings.Join(parts, ","); got != want {
		return fmt.Errorf("expected correctness %q, got %q", want, got)
	}
	return nil
}

func (s *sessionScenarioState) thenSelection(want string) error {
	if got := s.session.Selection().String(); got != want {
		return fmt.Errorf("expected selection %q, got %q", want, got)
	}
	return nil
}

func (s *sessionScenarioState) thenInvalidChoice() error {
	if !errors.Is(s.pickErr, ErrInvalidChoice) {
		return fmt.Errorf("expected invalid choice, got %v", s.pickErr)
	}
	return nil
}

func (s *sessionScenarioState) thenCompletedError() error {
	if !errors.Is(s.nextErr, ErrCompleted) {
		return fmt.Errorf("expected completed error, got %v", s.nextErr)
	}
	return nil
}

func parseIndices(value string) (IndexSet, error) {
	var indices IndexSet
	for _, field := range strings.Split(value, ",") {
		index, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parse index %q: %w", field, err)
		}
		indices = append(indices, index)
	}
	return indices, nil
}
