// Package facelet maps sub-cube grid coordinates and outward sides to the
// 48 sticker slots of a 3x3x3 cube.
//
// Axes: +X points at the R face, +Y at U, +Z at F. Slots follow the GAP
// numbering of the unfolded net:
//
//	             1  2  3
//	             4  U  5
//	             6  7  8
//	 9 10 11    17 18 19    25 26 27    33 34 35
//	12  L 13    20  F 21    28  R 29    36  B 37
//	14 15 16    22 23 24    30 31 32    38 39 40
//	            41 42 43
//	            44  D 45
//	            46 47 48
package facelet

import "github.com/SeamusWaldron/cubeview/pkg/types"

// Side is an outward direction of a sub-cube, in box material order.
type Side int

const (
	PosX Side = 0 // R
	NegX Side = 1 // L
	PosY Side = 2 // U
	NegY Side = 3 // D
	PosZ Side = 4 // F
	NegZ Side = 5 // B
)

// Sides lists all six sides in material order.
var Sides = [6]Side{PosX, NegX, PosY, NegY, PosZ, NegZ}

// Slot is a sticker slot index, 1..48.
type Slot int

// NumSlots is the number of sticker slots on the cube surface.
const NumSlots = 48

// Normal returns the unit normal of the side as integer components.
func (s Side) Normal() (x, y, z int) {
	switch s {
	case PosX:
		return 1, 0, 0
	case NegX:
		return -1, 0, 0
	case PosY:
		return 0, 1, 0
	case NegY:
		return 0, -1, 0
	case PosZ:
		return 0, 0, 1
	case NegZ:
		return 0, 0, -1
	}
	return 0, 0, 0
}

// Face returns the face whose outer layer the side points out of.
func (s Side) Face() types.Face {
	switch s {
	case PosX:
		return types.FaceR
	case NegX:
		return types.FaceL
	case PosY:
		return types.FaceU
	case NegY:
		return types.FaceD
	case PosZ:
		return types.FaceF
	case NegZ:
		return types.FaceB
	}
	return ""
}

// SideOf returns the outward side of a face.
func SideOf(f types.Face) (Side, bool) {
	for _, s := range Sides {
		if s.Face() == f {
			return s, true
		}
	}
	return 0, false
}

// table[side][a+1][b+1] holds the slot for the two in-plane coordinates
// (a, b) of the side; zero marks the face center.
//
//	±X: a = y, b = z
//	±Y: a = x, b = z
//	±Z: a = x, b = y
var table = [6][3][3]Slot{
	PosX: {
		{32, 31, 30}, // y=-1: z=-1,0,1
		{29, 0, 28},
		{27, 26, 25},
	},
	NegX: {
		{14, 15, 16}, // y=-1: z=-1,0,1
		{12, 0, 13},
		{9, 10, 11},
	},
	PosY: {
		{1, 4, 6}, // x=-1: z=-1,0,1
		{2, 0, 7},
		{3, 5, 8},
	},
	NegY: {
		{46, 44, 41}, // x=-1: z=-1,0,1
		{47, 0, 42},
		{48, 45, 43},
	},
	PosZ: {
		{22, 20, 17}, // x=-1: y=-1,0,1
		{23, 0, 18},
		{24, 21, 19},
	},
	NegZ: {
		{40, 37, 35}, // x=-1: y=-1,0,1
		{39, 0, 34},
		{38, 36, 33},
	},
}

// Position is the sub-cube and side a slot sits on.
type Position struct {
	X, Y, Z int
	Side    Side
}

var positions [NumSlots + 1]Position

func init() {
	for _, side := range Sides {
		for a := -1; a <= 1; a++ {
			for b := -1; b <= 1; b++ {
				slot := table[side][a+1][b+1]
				if slot == 0 {
					continue
				}
				x, y, z := onSide(side, a, b)
				positions[slot] = Position{X: x, Y: y, Z: z, Side: side}
			}
		}
	}
}

// onSide returns the sub-cube coordinate for in-plane coordinates (a, b).
func onSide(side Side, a, b int) (x, y, z int) {
	nx, ny, nz := side.Normal()
	switch {
	case nx != 0:
		return nx, a, b
	case ny != 0:
		return a, ny, b
	default:
		return a, b, nz
	}
}

// Resolve returns the sticker slot on the given side of sub-cube (x, y, z).
// It reports false when the side does not face outward, for the hidden core
// and for the six face centers. Out-of-range input also reports false.
func Resolve(x, y, z int, side Side) (Slot, bool) {
	if !inRange(x) || !inRange(y) || !inRange(z) || side < PosX || side > NegZ {
		return 0, false
	}

	var a, b int
	switch side {
	case PosX, NegX:
		if x != sign(side) {
			return 0, false
		}
		a, b = y, z
	case PosY, NegY:
		if y != sign(side) {
			return 0, false
		}
		a, b = x, z
	default:
		if z != sign(side) {
			return 0, false
		}
		a, b = x, y
	}

	slot := table[side][a+1][b+1]
	return slot, slot != 0
}

// Locate is the inverse of Resolve.
func Locate(slot Slot) (Position, bool) {
	if slot < 1 || slot > NumSlots {
		return Position{}, false
	}
	return positions[slot], true
}

// Center reports the face carried by a face-center sub-cube: exactly one
// non-zero coordinate.
func Center(x, y, z int) (types.Face, bool) {
	switch {
	case x != 0 && y == 0 && z == 0:
		return faceAlong(PosX, x), inRange(x)
	case y != 0 && x == 0 && z == 0:
		return faceAlong(PosY, y), inRange(y)
	case z != 0 && x == 0 && y == 0:
		return faceAlong(PosZ, z), inRange(z)
	}
	return "", false
}

// Outward reports whether the side of sub-cube (x, y, z) is on the surface.
func Outward(x, y, z int, side Side) bool {
	nx, ny, nz := side.Normal()
	return (nx != 0 && x == nx) || (ny != 0 && y == ny) || (nz != 0 && z == nz)
}

func faceAlong(pos Side, v int) types.Face {
	if v > 0 {
		return pos.Face()
	}
	return (pos + 1).Face()
}

func sign(side Side) int {
	if side%2 == 0 {
		return 1
	}
	return -1
}

func inRange(v int) bool {
	return v >= -1 && v <= 1
}
