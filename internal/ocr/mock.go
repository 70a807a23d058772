package ocr

import (
	"context"
	"fmt"
	"sync"
)

// MockRecognizer is a deterministic Recognizer for testing. It returns
// canned results keyed by ref and records every call.
type MockRecognizer struct {
	mu      sync.Mutex
	results map[string]*Result
	Calls   []string
}

// NewMockRecognizer creates a MockRecognizer with the given canned results.
func NewMockRecognizer(results map[string]*Result) *MockRecognizer {
	if results == nil {
		results = make(map[string]*Result)
	}
	return &MockRecognizer{results: results}
}

// Recognize returns the canned result for ref, or an error if none is set.
func (m *MockRecognizer) Recognize(_ context.Context, ref string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, ref)

	res, ok := m.results[ref]
	if !ok {
		return nil, fmt.Errorf("no canned recognition result for %q", ref)
	}
	return res, nil
}

// Add registers a canned result for ref.
func (m *MockRecognizer) Add(ref string, res *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[ref] = res
}
