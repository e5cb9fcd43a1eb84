// Package cube provides a local permutation model of the 48 sticker slots.
//
// The solving service is the authority on cube state. This model only
// produces a best-effort guess of the next state, used to fill gaps while
// waiting for confirmed snapshots.
package cube

import (
	"github.com/SeamusWaldron/cubeview/internal/state"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// cycles lists the slot cycles of a clockwise quarter turn of each face.
// A cycle (a, b, c, d) moves the sticker in slot a to slot b, b to c and so on.
var cycles = map[types.Face][5][4]int{
	types.FaceU: {{1, 3, 8, 6}, {2, 5, 7, 4}, {9, 33, 25, 17}, {10, 34, 26, 18}, {11, 35, 27, 19}},
	types.FaceL: {{9, 11, 16, 14}, {10, 13, 15, 12}, {1, 17, 41, 40}, {4, 20, 44, 37}, {6, 22, 46, 35}},
	types.FaceF: {{17, 19, 24, 22}, {18, 21, 23, 20}, {6, 25, 43, 16}, {7, 28, 42, 13}, {8, 30, 41, 11}},
	types.FaceR: {{25, 27, 32, 30}, {26, 29, 31, 28}, {3, 38, 43, 19}, {5, 36, 45, 21}, {8, 33, 48, 24}},
	types.FaceB: {{33, 35, 40, 38}, {34, 37, 39, 36}, {3, 9, 46, 32}, {2, 12, 47, 29}, {1, 14, 48, 27}},
	types.FaceD: {{41, 43, 48, 46}, {42, 45, 47, 44}, {14, 22, 30, 38}, {15, 23, 31, 39}, {16, 24, 32, 40}},
}

// Cube wraps a sticker state with move application.
type Cube struct {
	State state.State
}

// New creates a solved cube.
func New() *Cube {
	return &Cube{State: state.Solved()}
}

// FromState creates a cube starting from the given state.
func FromState(s state.State) *Cube {
	return &Cube{State: s}
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.State.IsSolved()
}

// Move applies a move to the cube.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees
func (c *Cube) Move(face types.Face, turn int) {
	switch turn {
	case 1:
		c.quarter(face)
	case -1:
		// CCW is CW three times
		c.quarter(face)
		c.quarter(face)
		c.quarter(face)
	case 2:
		c.quarter(face)
		c.quarter(face)
	}
}

// quarter applies one clockwise quarter turn.
func (c *Cube) quarter(face types.Face) {
	cs, ok := cycles[face]
	if !ok {
		return
	}
	for _, cyc := range cs {
		s := &c.State
		t := s[cyc[3]-1]
		s[cyc[3]-1] = s[cyc[2]-1]
		s[cyc[2]-1] = s[cyc[1]-1]
		s[cyc[1]-1] = s[cyc[0]-1]
		s[cyc[0]-1] = t
	}
}

// ApplyMove applies a types.Move to the cube.
func (c *Cube) ApplyMove(m types.Move) {
	c.Move(m.Face, int(m.Turn))
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// String returns the unfolded net of the cube.
func (c *Cube) String() string {
	return c.State.String()
}

// Guess returns the state expected after applying m to s.
func Guess(s state.State, m types.Move) state.State {
	c := FromState(s)
	c.ApplyMove(m)
	return c.State
}
