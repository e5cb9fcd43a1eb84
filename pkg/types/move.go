// Package types contains shared type definitions for the cubeview application.
package types

import (
	"errors"
	"strings"
)

// ErrInvalidNotation is returned when a move token cannot be parsed.
var ErrInvalidNotation = errors.New("cubeview: invalid move notation")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceL Face = "L" // Left
	FaceF Face = "F" // Front
	FaceR Face = "R" // Right
	FaceB Face = "B" // Back
	FaceD Face = "D" // Down
)

// Faces lists the faces in slot order: U owns slots 1-8, L 9-16 and so on.
var Faces = [6]Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

// Index returns the position of the face in Faces, or -1.
func (f Face) Index() int {
	for i, face := range Faces {
		if face == f {
			return i
		}
	}
	return -1
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Move is a single face turn. Moves are immutable values.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Wire returns the token as the solving service expects it: U+, U-, U++.
func (m Move) Wire() string {
	switch m.Turn {
	case TurnCCW:
		return string(m.Face) + "-"
	case Turn180:
		return string(m.Face) + "++"
	default:
		return string(m.Face) + "+"
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// Quarters splits the move into quarter turns. A half turn becomes two
// clockwise quarter turns.
func (m Move) Quarters() []Move {
	if m.Turn == Turn180 {
		q := Move{Face: m.Face, Turn: TurnCW}
		return []Move{q, q}
	}
	return []Move{m}
}

// Merge combines two same-face moves into one (or returns nil if they cancel).
// Returns nil if the moves cannot be merged or if they cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	combined := (int(m.Turn) + int(other.Turn)) % 4
	if combined < 0 {
		combined += 4
	}

	switch combined {
	case 0:
		return nil
	case 1:
		return &Move{Face: m.Face, Turn: TurnCW}
	case 2:
		return &Move{Face: m.Face, Turn: Turn180}
	default:
		return &Move{Face: m.Face, Turn: TurnCCW}
	}
}

// ParseMove parses a single move token.
// Accepted forms: R, R', R`, R-, R+, R2, R2', R++ (face letters are case-insensitive).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'L', 'l':
		face = FaceL
	case 'F', 'f':
		face = FaceF
	case 'R', 'r':
		face = FaceR
	case 'B', 'b':
		face = FaceB
	case 'D', 'd':
		face = FaceD
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := TurnCW
	switch s[1:] {
	case "", "+":
	case "'", "`", "-":
		turn = TurnCCW
	case "2", "2'", "2`", "++":
		turn = Turn180
	default:
		return Move{}, ErrInvalidNotation
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'". The wire form without separators ("R+U-F++") is
// also accepted. Any malformed token rejects the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	var moves []Move
	for _, part := range strings.Fields(s) {
		tokens, err := splitWire(part)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			move, err := ParseMove(tok)
			if err != nil {
				return nil, err
			}
			moves = append(moves, move)
		}
	}
	return moves, nil
}

// splitWire splits a run like "R+U-F++" into single tokens. Plain tokens
// pass through unchanged.
func splitWire(s string) ([]string, error) {
	var out []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || strings.ContainsRune("ULFRBDulfrbd", rune(s[i])) {
			out = append(out, s[start:i])
			start = i
		}
	}
	if len(out) == 0 {
		return nil, ErrInvalidNotation
	}
	return out, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// WireMoves returns the wire tokens for a sequence of moves.
func WireMoves(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Wire()
	}
	return out
}
