package dateparse

import (
	"context"
	"time"
)

// MockParser is a Parser for tests, returning scripted results per input
// text.
type MockParser struct {
	// Results maps input text to parse results. Unmatched text parses to
	// nothing.
	Results map[string][]Result

	// Err, when set, is returned for every parse.
	Err error

	// Calls records the parsed texts in order.
	Calls []string
}

// NewMockParser creates a mock parser with no scripted results.
func NewMockParser() *MockParser {
	return &MockParser{Results: map[string][]Result{}}
}

func (m *MockParser) Parse(_ context.Context, text string, _ time.Time) ([]Result, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results[text], nil
}

var _ Parser = (*MockParser)(nil)
