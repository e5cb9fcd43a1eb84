// Package view3d projects a render.Frame into painter-sorted screen quads.
// It has no window dependency; package window hands the quads to ebiten.
package view3d

import (
	"image/color"
	"math"
	"sort"

	"github.com/SeamusWaldron/cubeview/internal/facelet"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

// halfSize is half the edge of a drawn cubelet; the rest of the unit cell
// is the gap between cubelets.
const halfSize = 0.47

// Camera orbits the cube center.
type Camera struct {
	Yaw      float64 // about +Y, radians
	Pitch    float64 // about +X, radians
	Distance float64 // from the cube center
	Scale    float64 // pixels per unit at the projection plane
}

// DefaultCamera looks at the U, F and R faces.
func DefaultCamera() Camera {
	return Camera{
		Yaw:      -math.Pi / 5,
		Pitch:    math.Pi / 6,
		Distance: 9,
		Scale:    600,
	}
}

// Orbit turns the camera, keeping the pitch short of the poles.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = math.Max(-1.4, math.Min(1.4, c.Pitch+dpitch))
}

func (c Camera) view() render.Mat4 {
	return render.Rotation(render.Vec3{X: 1}, c.Pitch).Mul(render.Rotation(render.Vec3{Y: 1}, c.Yaw))
}

// Quad is one projected cubelet side in screen coordinates.
type Quad struct {
	Points [4][2]float32
	Color  color.RGBA
	Depth  float64

	Coord render.Coord
	Side  facelet.Side
}

// light is the direction towards the light in view space.
var light = normalize(render.Vec3{X: -0.3, Y: 0.6, Z: 1})

// Project returns the visible cubelet sides of f, farthest first, for a
// w x h screen.
func Project(f render.Frame, cam Camera, w, h int) []Quad {
	view := cam.view()
	eye := render.Vec3{Z: cam.Distance}
	cx, cy := float64(w)/2, float64(h)/2

	quads := make([]Quad, 0, 27*3)
	for _, cl := range f.Cubelets {
		model := view.Mul(cl.Transform)
		for _, side := range facelet.Sides {
			nx, ny, nz := side.Normal()
			n := model.ApplyDir(render.Vec3{X: float64(nx), Y: float64(ny), Z: float64(nz)})
			center := model.Apply(render.Vec3{X: float64(nx), Y: float64(ny), Z: float64(nz)}.Scale(halfSize))

			// Back faces point away from the eye.
			if dot(n, sub(eye, center)) <= 0 {
				continue
			}

			q := Quad{Coord: cl.Coord, Side: side}
			for i, corner := range corners(side) {
				p := model.Apply(corner)
				depth := cam.Distance - p.Z
				if depth <= 0.1 {
					depth = 0.1
				}
				q.Points[i] = [2]float32{
					float32(cx + cam.Scale*p.X/depth),
					float32(cy - cam.Scale*p.Y/depth),
				}
			}
			q.Depth = cam.Distance - center.Z
			q.Color = shade(cl.Colors[side], dot(n, light))
			quads = append(quads, q)
		}
	}

	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Depth > quads[j].Depth
	})
	return quads
}

// corners returns the four corners of one side of a unit cubelet centered
// at the origin, wound counter-clockwise seen from outside.
func corners(side facelet.Side) [4]render.Vec3 {
	nx, ny, nz := side.Normal()
	n := render.Vec3{X: float64(nx), Y: float64(ny), Z: float64(nz)}

	// u x v = n
	var u, v render.Vec3
	switch {
	case nx != 0:
		u, v = render.Vec3{Y: 1}, render.Vec3{Z: 1}
	case ny != 0:
		u, v = render.Vec3{Z: 1}, render.Vec3{X: 1}
	default:
		u, v = render.Vec3{X: 1}, render.Vec3{Y: 1}
	}
	sign := float64(nx + ny + nz)
	u = u.Scale(sign)

	c := n.Scale(halfSize)
	u = u.Scale(halfSize)
	v = v.Scale(halfSize)
	return [4]render.Vec3{
		c.Add(u.Scale(-1)).Add(v.Scale(-1)),
		c.Add(u).Add(v.Scale(-1)),
		c.Add(u).Add(v),
		c.Add(u.Scale(-1)).Add(v),
	}
}

func shade(c color.RGBA, lambert float64) color.RGBA {
	k := 0.55 + 0.45*math.Max(0, lambert)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func dot(a, b render.Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func sub(a, b render.Vec3) render.Vec3 {
	return render.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func normalize(v render.Vec3) render.Vec3 {
	l := math.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}
