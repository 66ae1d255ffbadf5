package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizapp/internal/config"
	"quizapp/internal/quiz"
)

const sampleSource = "built-in sample"

// loadConfig finds and loads the config, tolerating a missing file.
func loadConfig(configPath string) (config.Config, error) {
	resolved, err := config.ResolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(resolved)
}

// overrideQuestions replaces the configured questions file with a flag value.
func overrideQuestions(cfg *config.Config, flagValue string) error {
	value := strings.TrimSpace(flagValue)
	if value == "" {
		return nil
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return fmt.Errorf("resolve questions file: %w", err)
	}
	cfg.QuestionsFile = abs
	return nil
}

// loadQuestionSet reads the set at path, or returns the built-in sample when
// path is empty. The second value names where the questions came from.
func loadQuestionSet(path string) (quiz.Set, string, error) {
	if strings.TrimSpace(path) == "" {
		return quiz.SampleSet(), sampleSource, nil
	}
	set, err := quiz.LoadSet(path)
	if err != nil {
		return quiz.Set{}, path, err
	}
	return set, path, nil
}
