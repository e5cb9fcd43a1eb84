package facelet

import (
	"testing"

	"github.com/SeamusWaldron/cubeview/pkg/types"
)

func TestResolveIsBijection(t *testing.T) {
	seen := make(map[Slot]Position)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				for _, side := range Sides {
					slot, ok := Resolve(x, y, z, side)
					if !ok {
						if slot != 0 {
							t.Errorf("Resolve(%d,%d,%d,%d) = %d with ok=false", x, y, z, side, slot)
						}
						continue
					}
					if slot < 1 || slot > NumSlots {
						t.Fatalf("Resolve(%d,%d,%d,%d) = %d out of range", x, y, z, side, slot)
					}
					if prev, dup := seen[slot]; dup {
						t.Errorf("slot %d produced twice: %+v and (%d,%d,%d,%d)", slot, prev, x, y, z, side)
					}
					seen[slot] = Position{X: x, Y: y, Z: z, Side: side}
				}
			}
		}
	}
	if len(seen) != NumSlots {
		t.Errorf("resolved %d distinct slots, want %d", len(seen), NumSlots)
	}
}

func TestCentersAndCoreHaveNoSlot(t *testing.T) {
	coords := [][3]int{
		{0, 0, 0},
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for _, c := range coords {
		for _, side := range Sides {
			if slot, ok := Resolve(c[0], c[1], c[2], side); ok {
				t.Errorf("Resolve(%v, %d) = %d, want none", c, side, slot)
			}
		}
	}
}

func TestFaceRanges(t *testing.T) {
	for slot := Slot(1); slot <= NumSlots; slot++ {
		pos, ok := Locate(slot)
		if !ok {
			t.Fatalf("Locate(%d) failed", slot)
		}
		want := types.Faces[(slot-1)/8]
		if got := pos.Side.Face(); got != want {
			t.Errorf("slot %d on face %s, want %s", slot, got, want)
		}
		back, ok := Resolve(pos.X, pos.Y, pos.Z, pos.Side)
		if !ok || back != slot {
			t.Errorf("Resolve(Locate(%d)) = %d, %v", slot, back, ok)
		}
	}
}

func TestKnownCorners(t *testing.T) {
	// The up-front-right corner carries slots 8 (U), 19 (F) and 25 (R).
	tests := []struct {
		side Side
		want Slot
	}{
		{PosY, 8},
		{PosZ, 19},
		{PosX, 25},
		{NegX, 0},
	}
	for _, tt := range tests {
		got, _ := Resolve(1, 1, 1, tt.side)
		if got != tt.want {
			t.Errorf("Resolve(1,1,1,%d) = %d, want %d", tt.side, got, tt.want)
		}
	}

	// Back-down-left corner: 14 (L), 40 (B), 46 (D).
	for side, want := range map[Side]Slot{NegX: 14, NegZ: 40, NegY: 46} {
		if got, _ := Resolve(-1, -1, -1, side); got != want {
			t.Errorf("Resolve(-1,-1,-1,%d) = %d, want %d", side, got, want)
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	if _, ok := Resolve(2, 0, 0, PosX); ok {
		t.Error("x=2 should not resolve")
	}
	if _, ok := Resolve(1, 1, 1, Side(9)); ok {
		t.Error("side 9 should not resolve")
	}
	if _, ok := Locate(0); ok {
		t.Error("slot 0 should not locate")
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		x, y, z int
		want    types.Face
	}{
		{1, 0, 0, types.FaceR},
		{-1, 0, 0, types.FaceL},
		{0, 1, 0, types.FaceU},
		{0, -1, 0, types.FaceD},
		{0, 0, 1, types.FaceF},
		{0, 0, -1, types.FaceB},
	}
	for _, tt := range tests {
		got, ok := Center(tt.x, tt.y, tt.z)
		if !ok || got != tt.want {
			t.Errorf("Center(%d,%d,%d) = %s, %v; want %s", tt.x, tt.y, tt.z, got, ok, tt.want)
		}
	}
	if _, ok := Center(0, 0, 0); ok {
		t.Error("core is not a face center")
	}
	if _, ok := Center(1, 1, 0); ok {
		t.Error("edge is not a face center")
	}
}
