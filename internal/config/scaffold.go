package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
# Path to the question set, relative to the directory holding .quiz/.
# Leave empty to play the built-in sample quiz.
questions_file: %q
# auto | live | plain
ui: auto
no_color: false
`

// Scaffold writes a config file and a starter question set next to it.
// Existing files are never overwritten.
func Scaffold(configPath string, questions []byte) (string, error) {
	if configPath == "" {
		return "", fmt.Errorf("config path is required")
	}
	questionsPath := filepath.Join(filepath.Dir(configPath), QuestionsFileName)
	for _, path := range []string{configPath, questionsPath} {
		if err := ensureAbsent(path); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	relQuestions, err := filepath.Rel(RootFromConfigPath(configPath), questionsPath)
	if err != nil {
		return "", fmt.Errorf("resolve questions path: %w", err)
	}
	body := fmt.Sprintf(defaultConfig, filepath.ToSlash(relQuestions))
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(questionsPath, questions, 0o644); err != nil {
		return "", fmt.Errorf("write questions file: %w", err)
	}
	return questionsPath, nil
}

func ensureAbsent(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("path %q is a directory", path)
		}
		return fmt.Errorf("file already exists at %q", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
