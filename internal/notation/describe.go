// Package notation turns moves into plain words for people who do not read
// standard notation.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// Describe says what a move does, seen from the front with U on top.
//
// Mapping:
//
//	R  -> "right up"      R' -> "right down"     R2 -> "right up x 2"
//	L  -> "left down"     L' -> "left up"        L2 -> "left down x 2"
//	U  -> "top left"      U' -> "top right"      U2 -> "top left x 2"
//	D  -> "bottom right"  D' -> "bottom left"    D2 -> "bottom right x 2"
//	F  -> "front clockwise"  F' -> "front anti-clockwise"  F2 -> "front x 2"
//	B  -> "back anti-clockwise"  B' -> "back clockwise"    B2 -> "back x 2"
//
// U and D name the direction the front row moves; B is seen from the front.
func Describe(m types.Move) string {
	var layer, cw, ccw string
	switch m.Face {
	case types.FaceR:
		layer, cw, ccw = "right", "up", "down"
	case types.FaceL:
		layer, cw, ccw = "left", "down", "up"
	case types.FaceU:
		layer, cw, ccw = "top", "left", "right"
	case types.FaceD:
		layer, cw, ccw = "bottom", "right", "left"
	case types.FaceF:
		layer, cw, ccw = "front", "clockwise", "anti-clockwise"
	case types.FaceB:
		layer, cw, ccw = "back", "anti-clockwise", "clockwise"
	default:
		return m.Notation()
	}

	switch m.Turn {
	case types.TurnCW:
		return layer + " " + cw
	case types.TurnCCW:
		return layer + " " + ccw
	case types.Turn180:
		if m.Face == types.FaceF || m.Face == types.FaceB {
			return layer + " x 2"
		}
		return layer + " " + cw + " x 2"
	}
	return m.Notation()
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []types.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
