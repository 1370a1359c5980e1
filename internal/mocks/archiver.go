// Package mocks provides mock implementations for testing.
package mocks

import (
	"os"

	"github.com/jmcdonald/jarls/internal/ports"
)

// MockArchiver implements ports.Archiver for testing.
type MockArchiver struct {
	// NamesResults maps archive paths to their entry names
	NamesResults map[string][]string
	// Errors maps archive paths to errors
	Errors map[string]error
	// NamesCalls records the path of every Names call
	NamesCalls []string
}

// NewMockArchiver creates a new mock archiver.
func NewMockArchiver() *MockArchiver {
	return &MockArchiver{
		NamesResults: make(map[string][]string),
		Errors:       make(map[string]error),
	}
}

// Names returns the configured names for path, or os.ErrNotExist if none are set.
func (m *MockArchiver) Names(path string) ([]string, error) {
	m.NamesCalls = append(m.NamesCalls, path)
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	if names, ok := m.NamesResults[path]; ok {
		return names, nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

// Compile-time check that MockArchiver implements ports.Archiver.
var _ ports.Archiver = (*MockArchiver)(nil)
