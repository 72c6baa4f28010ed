// File: script.go
// Role: Script model, YAML decoding and validation.

package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Op names a vector operation.
type Op string

// Supported operations.
const (
	OpPushBack    Op = "push_back"
	OpPopBack     Op = "pop_back"
	OpInsert      Op = "insert"
	OpErase       Op = "erase"
	OpAt          Op = "at"
	OpSet         Op = "set"
	OpFront       Op = "front"
	OpBack        Op = "back"
	OpReserve     Op = "reserve"
	OpShrinkToFit Op = "shrink_to_fit"
	OpClear       Op = "clear"
)

var knownOps = map[Op]struct{}{
	OpPushBack: {}, OpPopBack: {}, OpInsert: {}, OpErase: {},
	OpAt: {}, OpSet: {}, OpFront: {}, OpBack: {},
	OpReserve: {}, OpShrinkToFit: {}, OpClear: {},
}

// Step is one operation with its arguments. Index is an offset from
// Begin() for insert/erase and an element index for at/set.
type Step struct {
	Op       Op  `yaml:"op"`
	Value    int `yaml:"value,omitempty"`
	Index    int `yaml:"index,omitempty"`
	Capacity int `yaml:"capacity,omitempty"`
}

// Script is a named sequence of steps over an int vector.
//
// Capacity is the construction hint (max(Capacity, 2) slots); Initial
// elements are pushed in order before the first step.
type Script struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity,omitempty"`
	Initial  []int  `yaml:"initial,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Validate checks that the script has steps and that every op is known.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, st := range s.Steps {
		if _, ok := knownOps[st.Op]; !ok {
			return &StepError{Step: i + 1, Op: st.Op, Err: ErrUnknownOp}
		}
	}

	return nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Marshal encodes s as YAML.
func Marshal(s *Script) ([]byte, error) {
	return yaml.Marshal(s)
}

// Demo returns the built-in scenario: list construction of [1, 2, 3],
// insert 9 at offset 1, erase at offset 0, then pop until PopBack fails.
func Demo() *Script {
	return &Script{
		Name:    "demo",
		Initial: []int{1, 2, 3},
		Steps: []Step{
			{Op: OpInsert, Index: 1, Value: 9},
			{Op: OpErase, Index: 0},
			{Op: OpPopBack},
			{Op: OpPopBack},
			{Op: OpPopBack},
			{Op: OpPopBack},
		},
	}
}
