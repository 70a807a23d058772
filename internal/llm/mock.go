package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply in the MockProvider queue.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockGradedAnswer builds a canned reply in the structured-grading
// shape the evaluation scorers expect back from a provider.
func MockGradedAnswer(marks float64, feedback string, confidence float64) MockResponse {
	content, _ := json.Marshal(map[string]any{
		"marks_awarded": marks,
		"feedback":      feedback,
		"confidence":    confidence,
	})
	return MockResponse{
		Content: content,
		Usage:   Usage{InputTokens: 120, OutputTokens: 40},
	}
}

// MockProvider replays canned responses in order and records every
// request it sees, so tests can assert on prompts and call counts.
// An exhausted queue reports the provider as unavailable.
type MockProvider struct {
	mu     sync.Mutex
	queue  []MockResponse
	served int
	Calls  []Request
}

// NewMockProvider creates a MockProvider preloaded with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.served >= len(m.queue) {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[m.served]
	m.served++

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
