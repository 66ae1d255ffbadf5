package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizapp/internal/testutil"
)

const primesQuestions = `version: 1
title: Primes
questions:
  - id: bananas
    question: Bananas grow on trees
    choices: ["True", "False"]
    correct: 0
  - id: primes
    question: Select the prime numbers
    choices: ["2", "3", "4", "6"]
    correct: [0, 1]
`

// writeTestFile writes body under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// withStdin replaces interactive input for the duration of a test.
func withStdin(t *testing.T, input string) {
	t.Helper()
	original := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = original })
}

// withTerminal forces the TTY decision for the duration of a test.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// inEmptyDir runs the test from a directory without any config.
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	return dir
}
