// Package history keeps the ordered record of evaluated calculations for a session.
package history

import (
	"fmt"
	"sync"

	"github.com/averycrespi/gocalc/internal/calculation"
)

// History is an append-only, insertion-ordered sequence of evaluated calculations.
// It is safe for concurrent use.
type History struct {
	entries []calculation.Evaluated
	mu      sync.RWMutex
}

// New creates an empty history
func New() *History {
	return &History{}
}

// Append records a calculation and returns its 1-based position
func (h *History) Append(c calculation.Evaluated) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, c)
	return len(h.entries)
}

// Entries returns a copy of the recorded calculations in insertion order
func (h *History) Entries() []calculation.Evaluated {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entries := make([]calculation.Evaluated, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Len returns the number of recorded calculations
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Lines renders each calculation as "<position>. <calculation>"
func (h *History) Lines() []string {
	entries := h.Entries()
	lines := make([]string, 0, len(entries))
	for i, c := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}
	return lines
}
