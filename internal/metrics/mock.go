package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu            sync.Mutex
	commands      map[string]int
	autocompletes map[string]int
	upstream      []float64
	upstreamFails int
}

func NewMock() *Mock {
	return &Mock{
		commands:      map[string]int{},
		autocompletes: map[string]int{},
	}
}

func (m *Mock) IncCommand(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[outcome]++
}

func (m *Mock) IncAutocomplete(option string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autocompletes[option]++
}

func (m *Mock) ObserveUpstream(seconds float64, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstream = append(m.upstream, seconds)
	if failed {
		m.upstreamFails++
	}
}

func (m *Mock) Commands(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commands[outcome]
}

func (m *Mock) Autocompletes(option string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autocompletes[option]
}

func (m *Mock) UpstreamCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.upstream)
}

func (m *Mock) UpstreamFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upstreamFails
}
