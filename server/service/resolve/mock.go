package resolve

import "context"

// MockResolver is a Resolver for handler tests, returning a scripted
// resolution or error.
type MockResolver struct {
	// Resolution is returned from every Resolve call when Err is unset.
	Resolution *Resolution

	// Err, when set, is returned from every Resolve call.
	Err error

	// Calls records the resolved texts in order.
	Calls []string
}

// NewMockResolver creates an empty mock resolver.
func NewMockResolver() *MockResolver {
	return &MockResolver{}
}

func (m *MockResolver) Resolve(_ context.Context, text string) (*Resolution, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Resolution, nil
}

var _ Resolver = (*MockResolver)(nil)
