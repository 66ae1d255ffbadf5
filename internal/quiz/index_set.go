package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// IndexSet is a list of choice indices that may be written as a single
// number or as a list in question and answer files.
type IndexSet []int

// UnmarshalYAML accepts either a scalar index or a sequence of indices.
func (s *IndexSet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = IndexSet{}
			return nil
		}
		var index int
		if err := node.Decode(&index); err != nil {
			return err
		}
		*s = IndexSet{index}
		return nil
	case yaml.SequenceNode:
		var indices []int
		if err := node.Decode(&indices); err != nil {
			return err
		}
		if indices == nil {
			indices = []int{}
		}
		*s = IndexSet(indices)
		return nil
	default:
		return fmt.Errorf("line %d: expected index or list of indices", node.Line)
	}
}

// UnmarshalJSON accepts either a number or an array of numbers.
func (s *IndexSet) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = IndexSet{}
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err == nil {
		*s = IndexSet{index}
		return nil
	}
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return fmt.Errorf("expected index or list of indices: %w", err)
	}
	if indices == nil {
		indices = []int{}
	}
	*s = IndexSet(indices)
	return nil
}

// normalized returns the indices sorted with duplicates removed.
func (s IndexSet) normalized() IndexSet {
	if len(s) == 0 {
		return IndexSet{}
	}
	out := make(IndexSet, len(s))
	copy(out, s)
	sort.Ints(out)
	unique := out[:1]
	for _, index := range out[1:] {
		if index != unique[len(unique)-1] {
			unique = append(unique, index)
		}
	}
	return unique
}
