package cubeview

import "testing"

func TestKeyMove(t *testing.T) {
	tests := []struct {
		r    rune
		want Move
		ok   bool
	}{
		{'u', U, true},
		{'U', UPrime, true},
		{'b', B, true},
		{'D', DPrime, true},
		{'x', Move{}, false},
		{'2', Move{}, false},
	}
	for _, tt := range tests {
		got, ok := KeyMove(tt.r)
		if ok != tt.ok || got != tt.want {
			t.Errorf("KeyMove(%q) = %v, %v; want %v, %v", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPredefinedMoves(t *testing.T) {
	moves, err := ParseMoves("R R' R2 L' U2 F B' D")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{R, RPrime, R2, LPrime, U2, F, BPrime, D}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}
