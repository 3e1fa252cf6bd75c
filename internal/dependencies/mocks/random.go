package mocks

import "github.com/vovakirdan/tui-mines/internal/dependencies/random"

// MockSource is a random.Source that replays queued results, for tests.
type MockSource struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Calls records the n argument of every Intn call
	Calls []int
}

// Ensure MockSource implements Source
var _ random.Source = (*MockSource)(nil)

// NewMockSource creates a MockSource with the given queued results.
func NewMockSource(values ...int) *MockSource {
	return &MockSource{IntnResults: values}
}

// Intn returns the next queued result, or 0 if none remaining.
// Queued results are clamped into [0, n) so a stale queue cannot break callers.
func (m *MockSource) Intn(n int) int {
	m.Calls = append(m.Calls, n)
	if m.intnIndex >= len(m.IntnResults) || n <= 0 {
		return 0
	}
	result := m.IntnResults[m.intnIndex]
	m.intnIndex++
	if result < 0 {
		return 0
	}
	if result >= n {
		return n - 1
	}
	return result
}

// QueueIntn adds values to the Intn result queue
func (m *MockSource) QueueIntn(values ...int) {
	m.IntnResults = append(m.IntnResults, values...)
}

// Reset clears all queued results and recorded calls
func (m *MockSource) Reset() {
	m.IntnResults = nil
	m.intnIndex = 0
	m.Calls = nil
}
