package cube

import (
	"testing"

	"github.com/SeamusWaldron/cubeview/internal/facelet"
	"github.com/SeamusWaldron/cubeview/internal/state"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	c.Move(types.FaceR, 1)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestQuarterTurnX4_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range types.Faces {
		c := New()
		for i := 0; i < 4; i++ {
			c.Move(face, 1)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestHalfTurnTwice_ReturnsToSolved(t *testing.T) {
	for _, face := range types.Faces {
		c := New()
		c.Move(face, 2)
		c.Move(face, 2)
		if !c.IsSolved() {
			t.Errorf("%v2 %v2 should return to solved", face, face)
		}
	}
}

func TestMoveThenInverse_RestoresState(t *testing.T) {
	scramble, err := types.ParseMoves("R U F' D2 L B' U2 R'")
	if err != nil {
		t.Fatal(err)
	}
	base := New()
	base.ApplyMoves(scramble)

	for _, face := range types.Faces {
		for _, turn := range []types.Turn{types.TurnCW, types.TurnCCW, types.Turn180} {
			m := types.Move{Face: face, Turn: turn}
			c := FromState(base.State)
			c.ApplyMove(m)
			c.ApplyMove(m.Inverse())
			if c.State != base.State {
				t.Errorf("%s then %s did not restore the state", m, m.Inverse())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c.Move(types.FaceR, 1)
		c.Move(types.FaceU, 1)
		c.Move(types.FaceR, -1)
		c.Move(types.FaceU, -1)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestGuessDoesNotMutate(t *testing.T) {
	s := state.Solved()
	next := Guess(s, types.Move{Face: types.FaceF, Turn: types.TurnCW})
	if !s.IsSolved() {
		t.Error("Guess must not modify its input")
	}
	if next.IsSolved() {
		t.Error("Guess should apply the move")
	}
}

// TestCyclesMatchGeometry rotates every sticker of a layer a quarter turn
// clockwise about the outward normal and checks that the cycle tables move
// it to the slot found there by the facelet resolver.
func TestCyclesMatchGeometry(t *testing.T) {
	for _, face := range types.Faces {
		side, _ := facelet.SideOf(face)
		ax, ay, az := side.Normal()
		axis := [3]int{ax, ay, az}

		c := New()
		c.Move(face, 1)

		for slot := facelet.Slot(1); slot <= facelet.NumSlots; slot++ {
			pos, _ := facelet.Locate(slot)
			p := [3]int{pos.X, pos.Y, pos.Z}
			if dot(p, axis) != 1 {
				if got := c.State.At(slot); got != int(slot) {
					t.Errorf("%s moved slot %d outside its layer", face, slot)
				}
				continue
			}
			nx, ny, nz := pos.Side.Normal()
			p2 := rotateCW(p, axis)
			n2 := rotateCW([3]int{nx, ny, nz}, axis)
			dest, ok := facelet.Resolve(p2[0], p2[1], p2[2], sideFor(n2))
			if !ok {
				t.Fatalf("%s: slot %d rotated onto no slot", face, slot)
			}
			if got := c.State.At(dest); got != int(slot) {
				t.Errorf("%s: slot %d should land in %d, found %d there", face, slot, dest, got)
			}
		}
	}
}

// rotateCW rotates v by -90 degrees about the unit axis a.
func rotateCW(v, a [3]int) [3]int {
	cross := [3]int{
		a[1]*v[2] - a[2]*v[1],
		a[2]*v[0] - a[0]*v[2],
		a[0]*v[1] - a[1]*v[0],
	}
	d := dot(a, v)
	return [3]int{
		-cross[0] + a[0]*d,
		-cross[1] + a[1]*d,
		-cross[2] + a[2]*d,
	}
}

func dot(a, b [3]int) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func sideFor(n [3]int) facelet.Side {
	for _, s := range facelet.Sides {
		x, y, z := s.Normal()
		if [3]int{x, y, z} == n {
			return s
		}
	}
	return -1
}
