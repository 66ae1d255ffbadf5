package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestScoreCommandSummary verifies the plain summary for recorded answers.
func TestScoreCommandSummary(t *testing.T) {
	dir := inEmptyDir(t)
	questions := writeTestFile(t, dir, "questions.yml", primesQuestions)
	answers := writeTestFile(t, dir, "answers.yml", "version: 1\nanswers:\n  - 0\n  - [1, 0]\n")

	var out, err bytes.Buffer
	code := Run([]string{"score", "--questions", questions, "--answers", answers}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Your Score: 2 / 2") {
		t.Fatalf("expected full score, got:\n%s", out.String())
	}
}

// TestScoreCommandJSON verifies machine-readable output.
func TestScoreCommandJSON(t *testing.T) {
	dir := inEmptyDir(t)
	questions := writeTestFile(t, dir, "questions.yml", primesQuestions)
	answers := writeTestFile(t, dir, "answers.json", `{"version": 1, "answers": [[], [0, 2]]}`)

	var out, err bytes.Buffer
	code := Run([]string{"score", "--questions", questions, "--answers", answers, "--json"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	var report scoreReport
	if decodeErr := json.Unmarshal(out.Bytes(), &report); decodeErr != nil {
		t.Fatalf("decode report: %v\n%s", decodeErr, out.String())
	}
	if report.Score != 0 || report.Questions != 2 || len(report.Correct) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

// TestScoreCommandLengthMismatch verifies mismatched answers fail.
func TestScoreCommandLengthMismatch(t *testing.T) {
	dir := inEmptyDir(t)
	answers := writeTestFile(t, dir, "answers.yml", "version: 1\nanswers: [0]\n")

	var out, err bytes.Buffer
	code := Run([]string{"score", "--answers", answers}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "does not match") {
		t.Fatalf("expected length mismatch, got %q", err.String())
	}
}

// TestScoreCommandRequiresAnswers verifies the --answers flag is mandatory.
func TestScoreCommandRequiresAnswers(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"score"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
