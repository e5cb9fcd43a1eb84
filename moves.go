package cubeview

import "github.com/SeamusWaldron/cubeview/pkg/types"

// Aliases for the move types, so callers need not import pkg/types.
type (
	Move = types.Move
	Face = types.Face
	Turn = types.Turn
)

const (
	FaceU = types.FaceU
	FaceL = types.FaceL
	FaceF = types.FaceF
	FaceR = types.FaceR
	FaceB = types.FaceB
	FaceD = types.FaceD

	CW     = types.TurnCW
	CCW    = types.TurnCCW
	Double = types.Turn180
)

// Predefined moves for convenience.
//
// Example:
//
//	s.Push(cubeview.R)
//	s.Push(cubeview.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// ParseMoves parses notation like "R U R' U'" or the wire form "R+U-F++".
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats moves as space-separated notation.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}

// KeyMove maps a face letter typed by the user to a move: lower case turns
// clockwise, upper case turns the other way.
func KeyMove(r rune) (Move, bool) {
	var m Move
	switch r {
	case 'u', 'l', 'f', 'r', 'b', 'd':
		m.Turn = CW
		r -= 'a' - 'A'
	case 'U', 'L', 'F', 'R', 'B', 'D':
		m.Turn = CCW
	default:
		return Move{}, false
	}
	m.Face = Face(string(r))
	return m, true
}
