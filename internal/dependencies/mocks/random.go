package mocks

import (
	"sync"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
)

// MockRandom replays queued results. When a queue runs dry Intn returns 0 and
// String returns "".
type MockRandom struct {
	mu sync.Mutex

	IntnResults   []int
	StringResults []string

	// IntnCalls records the n passed to each Intn call
	IntnCalls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn pops the next queued int
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.IntnCalls = append(r.IntnCalls, n)
	if len(r.IntnResults) == 0 {
		return 0
	}
	result := r.IntnResults[0]
	r.IntnResults = r.IntnResults[1:]
	return result
}

// String pops the next queued string. Game creation draws the control token
// before the game ID.
func (r *MockRandom) String(int, string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.StringResults) == 0 {
		return ""
	}
	result := r.StringResults[0]
	r.StringResults = r.StringResults[1:]
	return result
}

// QueueIntn adds values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.StringResults = append(r.StringResults, values...)
}

// Reset clears queues and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.IntnResults = nil
	r.StringResults = nil
	r.IntnCalls = nil
}
