// Package bank loads question records from JSON files.
package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

//go:embed questions.json
var defaultBank []byte

// DefaultName is the source name reported for the embedded bank.
const DefaultName = "embedded"

// ErrDuplicateID is returned when two records share an ID.
var ErrDuplicateID = errors.New("duplicate question id")

// InvalidError reports a bank file that does not match the bank schema.
type InvalidError struct {
	Source string
	Err    error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%s: invalid question bank: %v", e.Source, e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

// Parse validates data against the bank schema and decodes it. source
// names the data in error messages.
func Parse(source string, data []byte) ([]question.Record, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("bank schema: %w", err)
	}
	if err := sch.Validate(instance); err != nil {
		return nil, &InvalidError{Source: source, Err: err}
	}

	var records []question.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &InvalidError{Source: source, Err: err}
	}

	if err := checkUnique(records); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return records, nil
}

// LoadFile reads and parses a bank file.
func LoadFile(path string) ([]question.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// LoadFiles loads every path and concatenates the records in order.
// IDs must be unique across all files.
func LoadFiles(paths []string) ([]question.Record, error) {
	var all []question.Record
	for _, p := range paths {
		records, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	if err := checkUnique(all); err != nil {
		return nil, err
	}
	return all, nil
}

// Default returns the question bank compiled into the binary.
func Default() ([]question.Record, error) {
	return Parse(DefaultName, defaultBank)
}

func checkUnique(records []question.Record) error {
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}
