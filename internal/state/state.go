// Package state holds the authoritative 48-slot sticker array.
package state

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SeamusWaldron/cubeview/internal/facelet"
)

// State is the sticker array. Index i holds the color id of slot i+1.
// A zero entry is unresolved.
type State [facelet.NumSlots]int

// Solved returns the solved state, where every slot holds its own label.
func Solved() State {
	var s State
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// FromSlice converts a wire array. At most 48 entries are copied; missing
// entries stay unresolved. It reports whether the length was exactly 48.
func FromSlice(ids []int) (State, bool) {
	var s State
	copy(s[:], ids)
	return s, len(ids) == facelet.NumSlots
}

// Slice returns the state as a wire array.
func (s State) Slice() []int {
	out := make([]int, len(s))
	copy(out, s[:])
	return out
}

// At returns the color id in a slot, or 0 for an invalid slot.
func (s State) At(slot facelet.Slot) int {
	if slot < 1 || int(slot) > len(s) {
		return 0
	}
	return s[slot-1]
}

// IsSolved reports whether every slot holds its own label.
func (s State) IsSolved() bool {
	return s == Solved()
}

// String renders the state as an unfolded net of color ids.
func (s State) String() string {
	var b strings.Builder
	cell := func(slot int) string {
		if slot == 0 {
			return " ·"
		}
		return fmt.Sprintf("%2d", s[slot-1])
	}
	rows := func(base int) [3][3]int {
		return [3][3]int{
			{base + 1, base + 2, base + 3},
			{base + 4, 0, base + 5},
			{base + 6, base + 7, base + 8},
		}
	}

	up, down := rows(0), rows(40)
	sides := [4][3][3]int{rows(8), rows(16), rows(24), rows(32)}

	for _, r := range up {
		b.WriteString("          ")
		for _, slot := range r {
			b.WriteString(cell(slot) + " ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range sides {
			for _, slot := range face[row] {
				b.WriteString(cell(slot) + " ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for _, r := range down {
		b.WriteString("          ")
		for _, slot := range r {
			b.WriteString(cell(slot) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Store holds the current State. Every update replaces the whole array, so a
// reader never observes a partially applied state.
type Store struct {
	mu      sync.RWMutex
	current State
	loaded  bool
	version uint64
}

// NewStore creates an empty, unloaded store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new state.
func (st *Store) Replace(s State) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = s
	st.loaded = true
	st.version++
}

// Snapshot returns a copy of the current state.
func (st *Store) Snapshot() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Loaded reports whether a state has been stored yet.
func (st *Store) Loaded() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.loaded
}

// Version increases by one on every replacement.
func (st *Store) Version() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.version
}
