package state

import (
	"strings"
	"testing"
)

func TestFromSlice(t *testing.T) {
	s, ok := FromSlice(Solved().Slice())
	if !ok || !s.IsSolved() {
		t.Errorf("FromSlice(solved) = %v, %v", s, ok)
	}

	short, ok := FromSlice([]int{5, 6, 7})
	if ok {
		t.Error("short slice should report mismatched length")
	}
	if short[0] != 5 || short[2] != 7 || short[3] != 0 || short[47] != 0 {
		t.Errorf("short slice copied wrong: %v", short)
	}

	long := make([]int, 60)
	for i := range long {
		long[i] = 9
	}
	if s, ok := FromSlice(long); ok || s[47] != 9 {
		t.Errorf("long slice = %v, %v", s, ok)
	}
}

func TestAt(t *testing.T) {
	s := Solved()
	if s.At(1) != 1 || s.At(48) != 48 {
		t.Error("At should index slots from 1")
	}
	if s.At(0) != 0 || s.At(49) != 0 {
		t.Error("At should return 0 for invalid slots")
	}
}

func TestStoreReplace(t *testing.T) {
	st := NewStore()
	if st.Loaded() {
		t.Error("new store should be unloaded")
	}

	s := Solved()
	st.Replace(s)
	s[0] = 99 // caller's copy must not leak into the store

	if got := st.Snapshot(); !got.IsSolved() {
		t.Errorf("snapshot = %v", got)
	}
	if !st.Loaded() || st.Version() != 1 {
		t.Errorf("loaded=%v version=%d", st.Loaded(), st.Version())
	}

	snap := st.Snapshot()
	snap[1] = 0
	if st.Snapshot()[1] != 2 {
		t.Error("snapshot must be a copy")
	}
}

func TestString(t *testing.T) {
	out := Solved().String()
	if lines := strings.Count(out, "\n"); lines != 9 {
		t.Errorf("net has %d lines, want 9", lines)
	}
	if !strings.Contains(out, "48") {
		t.Error("net should show slot 48")
	}
}
