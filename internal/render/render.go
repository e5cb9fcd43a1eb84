// Package render computes per-cubelet face colors and transforms for one
// frame. It draws nothing itself; the TUI and window front ends consume the
// Frame it produces.
package render

import (
	"image/color"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/facelet"
	"github.com/SeamusWaldron/cubeview/internal/palette"
	"github.com/SeamusWaldron/cubeview/internal/state"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// Coord is the grid position of a sub-cube; each component is -1, 0 or 1.
type Coord struct {
	X, Y, Z int
}

// Vec returns the coordinate as a model-space point.
func (c Coord) Vec() Vec3 {
	return Vec3{float64(c.X), float64(c.Y), float64(c.Z)}
}

// InLayer reports whether the sub-cube belongs to the outer layer of face.
func (c Coord) InLayer(face types.Face) bool {
	side, ok := facelet.SideOf(face)
	if !ok {
		return false
	}
	nx, ny, nz := side.Normal()
	return (nx != 0 && c.X == nx) || (ny != 0 && c.Y == ny) || (nz != 0 && c.Z == nz)
}

var coords = func() [27]Coord {
	var out [27]Coord
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out[i] = Coord{x, y, z}
				i++
			}
		}
	}
	return out
}()

// Coords returns the 27 sub-cube coordinates in x, y, z order.
func Coords() [27]Coord {
	return coords
}

// Cubelet is the render data of one sub-cube.
type Cubelet struct {
	Coord     Coord
	Colors    [6]color.RGBA // indexed by facelet.Side
	Transform Mat4
	Moving    bool
}

// Frame holds all 27 cubelets of one frame.
type Frame struct {
	Cubelets [27]Cubelet
	Phase    anim.Phase
}

// Cubelet returns the cubelet at c.
func (f *Frame) Cubelet(c Coord) *Cubelet {
	return &f.Cubelets[(c.X+1)*9+(c.Y+1)*3+(c.Z+1)]
}

// Renderer turns a state and an animation phase into a Frame.
type Renderer struct {
	palette *palette.Palette
}

// New creates a renderer using p for colors.
func New(p *palette.Palette) *Renderer {
	return &Renderer{palette: p}
}

// Frame computes colors from the current state (colors change only when a
// step completes, never mid-sweep) and transforms from the phase.
func (r *Renderer) Frame(s state.State, phase anim.Phase) Frame {
	f := Frame{Phase: phase}

	var axis Vec3
	if phase.Active {
		if side, ok := facelet.SideOf(phase.Move.Face); ok {
			nx, ny, nz := side.Normal()
			axis = Vec3{float64(nx), float64(ny), float64(nz)}
		}
	}
	rot := Rotation(axis, phase.Signed())

	for i, c := range coords {
		cl := Cubelet{Coord: c}
		for _, side := range facelet.Sides {
			cl.Colors[side] = r.FaceColor(s, c, side)
		}

		tr := Translation(c.Vec())
		if phase.Active && c.InLayer(phase.Move.Face) {
			cl.Transform = rot.Mul(tr)
			cl.Moving = true
		} else {
			cl.Transform = tr
		}
		f.Cubelets[i] = cl
	}

	return f
}

// FaceColor resolves the color of one side of a sub-cube.
func (r *Renderer) FaceColor(s state.State, c Coord, side facelet.Side) color.RGBA {
	if !facelet.Outward(c.X, c.Y, c.Z, side) {
		return r.palette.Interior()
	}
	if slot, ok := facelet.Resolve(c.X, c.Y, c.Z, side); ok {
		return r.palette.Sticker(s.At(slot))
	}
	if face, ok := facelet.Center(c.X, c.Y, c.Z); ok {
		return r.palette.Center(face)
	}
	return r.palette.Interior()
}
