package llm

import (
	"context"
	"sync"
)

// MockProvider is a scripted LLMProvider for tests. Replies are returned in
// order; once exhausted the last one repeats. Every received history is
// recorded for assertions.
type MockProvider struct {
	mu      sync.Mutex
	Replies []string
	Err     error
	Calls   [][]Message
}

var _ LLMProvider = &MockProvider{}

func (m *MockProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]Message, len(history))
	copy(recorded, history)
	m.Calls = append(m.Calls, recorded)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "ok", nil
	}
	idx := len(m.Calls) - 1
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return m.Replies[idx], nil
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return m.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}
