package quiz

import (
	"sort"
	"strconv"
	"strings"
)

// Selection is the set of choice indices picked for one question.
// The zero value is an empty selection. Selections are immutable; the
// mutating helpers return a new value.
type Selection struct {
	indices []int
}

// NewSelection builds a selection from indices, ignoring duplicates and order.
func NewSelection(indices ...int) Selection {
	normalized := IndexSet(indices).normalized()
	if len(normalized) == 0 {
		return Selection{}
	}
	return Selection{indices: normalized}
}

// Indices returns the selected indices in ascending order.
func (s Selection) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Len returns the number of selected choices.
func (s Selection) Len() int {
	return len(s.indices)
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.indices) == 0
}

// Contains reports whether index is selected.
func (s Selection) Contains(index int) bool {
	i := sort.SearchInts(s.indices, index)
	return i < len(s.indices) && s.indices[i] == index
}

// Toggle flips membership of index.
func (s Selection) Toggle(index int) Selection {
	if s.Contains(index) {
		next := make([]int, 0, len(s.indices)-1)
		for _, existing := range s.indices {
			if existing != index {
				next = append(next, existing)
			}
		}
		return Selection{indices: next}
	}
	return NewSelection(append(s.Indices(), index)...)
}

// Equal reports set equality.
func (s Selection) Equal(other Selection) bool {
	if len(s.indices) != len(other.indices) {
		return false
	}
	for i := range s.indices {
		if s.indices[i] != other.indices[i] {
			return false
		}
	}
	return true
}

// String renders the selection as {0,2}.
func (s Selection) String() string {
	parts := make([]string, 0, len(s.indices))
	for _, index := range s.indices {
		parts = append(parts, strconv.Itoa(index))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
