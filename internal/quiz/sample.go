package quiz

import (
	_ "embed"
	"fmt"
)

//go:embed sample.yml
var sampleYAML []byte

// SampleSet returns the built-in question set used when none is configured.
func SampleSet() Set {
	set, err := ParseSet(sampleYAML, "sample.yml")
	if err != nil {
		panic(fmt.Sprintf("parse embedded sample set: %v", err))
	}
	set, err = NormalizeSet(set)
	if err != nil {
		panic(fmt.Sprintf("validate embedded sample set: %v", err))
	}
	return set
}

// SampleYAML returns the source of the built-in question set.
func SampleYAML() []byte {
	out := make([]byte, len(sampleYAML))
	copy(out, sampleYAML)
	return out
}
