package engine

import (
	"context"
	"encoding/json"
)

// MockEngine is a mock AI engine for testing. It replies with a JSON object
// built from Translations, or with the fixed Reply when set.
type MockEngine struct {
	Translations map[string]string // Source text to translation; omitted texts stay missing
	Reply        string            // Fixed raw reply, takes precedence over Translations
	Err          error             // Error returned from Complete
	CallCount    int               // Number of times Complete was called
	LastPrompt   string            // Last prompt received
}

// NewMockEngine creates a mock engine that answers from the given mapping.
func NewMockEngine(translations map[string]string) *MockEngine {
	return &MockEngine{Translations: translations}
}

// Complete returns the configured reply.
func (m *MockEngine) Complete(ctx context.Context, prompt string) (string, error) {
	m.CallCount++
	m.LastPrompt = prompt

	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	data, _ := json.Marshal(m.Translations)
	return string(data), nil
}

// Reset clears the call count and last prompt.
func (m *MockEngine) Reset() {
	m.CallCount = 0
	m.LastPrompt = ""
}

// Verify MockEngine implements Engine
var _ Engine = (*MockEngine)(nil)
