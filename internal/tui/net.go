package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/SeamusWaldron/cubeview/internal/facelet"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// FaceGrid is one face of the unfolded net, row-major.
type FaceGrid [3][3]color.RGBA

// NetColors reads the sticker colors of every face out of a frame, laid out
// as in the unfolded net. Faces follow types.Faces order.
func NetColors(f render.Frame) [6]FaceGrid {
	var net [6]FaceGrid
	for k, face := range types.Faces {
		side, _ := facelet.SideOf(face)
		nx, ny, nz := side.Normal()
		net[k][1][1] = f.Cubelet(render.Coord{X: nx, Y: ny, Z: nz}).Colors[side]

		slot := facelet.Slot(8*k + 1)
		for cell := 0; cell < 9; cell++ {
			if cell == 4 {
				continue
			}
			pos, _ := facelet.Locate(slot)
			c := f.Cubelet(render.Coord{X: pos.X, Y: pos.Y, Z: pos.Z})
			net[k][cell/3][cell%3] = c.Colors[pos.Side]
			slot++
		}
	}
	return net
}

// renderNet paints the unfolded net with two terminal cells per sticker.
func renderNet(f render.Frame) string {
	net := NetColors(f)
	block := func(face types.Face) string {
		return renderFace(net[face.Index()])
	}

	indent := lipgloss.NewStyle().MarginLeft(7)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		block(types.FaceL), " ",
		block(types.FaceF), " ",
		block(types.FaceR), " ",
		block(types.FaceB),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(block(types.FaceU)),
		middle,
		indent.Render(block(types.FaceD)),
	)
}

func renderFace(g FaceGrid) string {
	rows := make([]string, 3)
	for r := range g {
		var b strings.Builder
		for _, c := range g[r] {
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex(c))).Render("  "))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

func hex(c color.RGBA) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
