package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSet reads, parses, and validates a question set file.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read question set: %w", err)
	}
	set, err := ParseSet(data, path)
	if err != nil {
		return Set{}, err
	}
	return NormalizeSet(set)
}

// ParseSet decodes a question set, choosing JSON or YAML by file extension.
func ParseSet(data []byte, path string) (Set, error) {
	var set Set
	if err := decode(data, path, &set); err != nil {
		return Set{}, err
	}
	return set, nil
}

// AnswerFile is the schema for recorded answers scored outside a session.
type AnswerFile struct {
	Version int        `json:"version" yaml:"version"`
	Answers []IndexSet `json:"answers" yaml:"answers"`
}

// LoadAnswers reads an answers file into selections.
func LoadAnswers(path string) ([]Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var file AnswerFile
	if err := decode(data, path, &file); err != nil {
		return nil, err
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("answers: unsupported version %d", file.Version)
	}
	answers := make([]Selection, 0, len(file.Answers))
	for _, indices := range file.Answers {
		answers = append(answers, NewSelection(indices...))
	}
	return answers, nil
}

func decode(data []byte, path string, out any) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return decodeJSON(data, out)
	}
	return decodeYAML(data, out)
}

func decodeJSON(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
