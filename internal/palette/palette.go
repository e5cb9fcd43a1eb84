// Package palette resolves sticker color ids to display colors.
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// Spec lists the display colors as hex strings.
type Spec struct {
	Up         string `mapstructure:"up"`
	Left       string `mapstructure:"left"`
	Front      string `mapstructure:"front"`
	Right      string `mapstructure:"right"`
	Back       string `mapstructure:"back"`
	Down       string `mapstructure:"down"`
	Interior   string `mapstructure:"interior"`
	Unresolved string `mapstructure:"unresolved"`
}

// DefaultSpec returns the standard sticker colors.
func DefaultSpec() Spec {
	return Spec{
		Up:         "#FFFFFF",
		Left:       "#FF5800",
		Front:      "#009B48",
		Right:      "#B71234",
		Back:       "#0046AD",
		Down:       "#FFD500",
		Interior:   "#111111",
		Unresolved: "#555555",
	}
}

// Groups maps each face to the color ids it owns. Ids outside every group
// resolve to the unresolved color.
type Groups map[types.Face][]int

// DefaultGroups gives face k (in types.Faces order) the ids 8k+1..8k+8, the
// slot labels of that face in a solved cube.
func DefaultGroups() Groups {
	g := make(Groups, len(types.Faces))
	for k, face := range types.Faces {
		ids := make([]int, 8)
		for i := range ids {
			ids[i] = 8*k + i + 1
		}
		g[face] = ids
	}
	return g
}

// Palette is immutable once built.
type Palette struct {
	faces      map[types.Face]color.RGBA
	interior   color.RGBA
	unresolved color.RGBA
	groups     map[int]types.Face
}

// New builds a palette from hex colors and a group table. A nil group table
// uses DefaultGroups.
func New(spec Spec, groups Groups) (*Palette, error) {
	if groups == nil {
		groups = DefaultGroups()
	}

	p := &Palette{
		faces:  make(map[types.Face]color.RGBA, 6),
		groups: make(map[int]types.Face),
	}

	faceHex := map[types.Face]string{
		types.FaceU: spec.Up,
		types.FaceL: spec.Left,
		types.FaceF: spec.Front,
		types.FaceR: spec.Right,
		types.FaceB: spec.Back,
		types.FaceD: spec.Down,
	}
	for face, hex := range faceHex {
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", face, err)
		}
		p.faces[face] = c
	}

	var err error
	if p.interior, err = parseHex(spec.Interior); err != nil {
		return nil, fmt.Errorf("palette interior: %w", err)
	}
	if p.unresolved, err = parseHex(spec.Unresolved); err != nil {
		return nil, fmt.Errorf("palette unresolved: %w", err)
	}

	for face, ids := range groups {
		for _, id := range ids {
			p.groups[id] = face
		}
	}

	return p, nil
}

// Default returns the palette built from DefaultSpec and DefaultGroups.
func Default() *Palette {
	p, err := New(DefaultSpec(), nil)
	if err != nil {
		panic(err)
	}
	return p
}

// Group returns the face group a color id belongs to.
func (p *Palette) Group(id int) (types.Face, bool) {
	face, ok := p.groups[id]
	return face, ok
}

// Sticker returns the display color for a color id.
func (p *Palette) Sticker(id int) color.RGBA {
	face, ok := p.groups[id]
	if !ok {
		return p.unresolved
	}
	return p.faces[face]
}

// Center returns the fixed color of a face center.
func (p *Palette) Center(face types.Face) color.RGBA {
	c, ok := p.faces[face]
	if !ok {
		return p.unresolved
	}
	return c
}

// Interior returns the color of hidden sides.
func (p *Palette) Interior() color.RGBA {
	return p.interior
}

// Unresolved returns the fallback color.
func (p *Palette) Unresolved() color.RGBA {
	return p.unresolved
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
