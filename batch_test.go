package cubeview

import (
	"testing"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/state"
)

func TestExpandHistoryPerMove(t *testing.T) {
	solved := state.Solved()
	afterR := cube.Guess(solved, R)
	afterU2 := cube.Guess(afterR, U2)

	got := expandHistory(solved, []Move{R, U2}, []state.State{afterR, afterU2}, true)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != afterR || got[1] != cube.Guess(afterR, U) || got[2] != afterU2 {
		t.Error("snapshots out of order")
	}
}

func TestExpandHistoryPerSweep(t *testing.T) {
	solved := state.Solved()
	half := cube.Guess(solved, F)
	full := cube.Guess(half, F)

	got := expandHistory(solved, []Move{F2}, []state.State{half, full}, true)
	if len(got) != 2 || got[0] != half || got[1] != full {
		t.Error("per-sweep history should pass through unchanged")
	}
}

func TestExpandHistoryShort(t *testing.T) {
	solved := state.Solved()
	afterU2 := cube.Guess(solved, U2)

	got := expandHistory(solved, []Move{U2, R}, []state.State{afterU2}, true)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != cube.Guess(solved, U) || got[1] != afterU2 {
		t.Error("half turn should be expanded up to the last snapshot")
	}

	got = expandHistory(solved, []Move{U2, R}, []state.State{afterU2}, false)
	if len(got) != 2 || got[0] != solved {
		t.Error("without guessing the first half should hold the previous state")
	}
}

func TestExpandHistoryExtra(t *testing.T) {
	solved := state.Solved()
	got := expandHistory(solved, []Move{R}, []state.State{solved, solved, solved}, true)
	if len(got) != 3 {
		t.Errorf("surplus history should pass through, got %d", len(got))
	}
}

func TestNewBatchShortState(t *testing.T) {
	b := newBatch(OpApply, []Move{R}, []int{1, 2, 3}, [][]int{make([]int, 48)})
	if !b.Short {
		t.Error("short current should be flagged")
	}
	if b.Current.At(4) != 0 {
		t.Error("missing entries should stay unresolved")
	}
	if b.Sweeps() != 1 || !b.Animated() {
		t.Errorf("sweeps = %d, animated = %v", b.Sweeps(), b.Animated())
	}
}

func TestParseWireMoves(t *testing.T) {
	moves, err := parseWireMoves([]string{"U+", "R-", "F++"})
	if err != nil {
		t.Fatal(err)
	}
	if FormatMoves(moves) != "U R' F2" {
		t.Errorf("moves = %s", FormatMoves(moves))
	}
	if _, err := parseWireMoves([]string{"Q+"}); err == nil {
		t.Error("bad token should fail")
	}
}
