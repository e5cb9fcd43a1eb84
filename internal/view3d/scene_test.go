package view3d

import (
	"math"
	"testing"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/facelet"
	"github.com/SeamusWaldron/cubeview/internal/palette"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/state"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

func solvedFrame(phase anim.Phase) render.Frame {
	return render.New(palette.Default()).Frame(state.Solved(), phase)
}

func TestProjectCullsBackFaces(t *testing.T) {
	quads := Project(solvedFrame(anim.Phase{}), DefaultCamera(), 800, 800)
	if len(quads) == 0 || len(quads) > 27*3 {
		t.Fatalf("got %d quads", len(quads))
	}
	for _, q := range quads {
		switch q.Side {
		case facelet.NegX, facelet.NegY, facelet.NegZ:
			t.Errorf("back side %d of %+v drawn", q.Side, q.Coord)
		}
	}
}

func TestProjectSortsFarthestFirst(t *testing.T) {
	quads := Project(solvedFrame(anim.Phase{}), DefaultCamera(), 800, 800)
	for i := 1; i < len(quads); i++ {
		if quads[i].Depth > quads[i-1].Depth {
			t.Fatalf("quad %d nearer than quad %d", i-1, i)
		}
	}
}

func TestProjectShowsCornerStickers(t *testing.T) {
	quads := Project(solvedFrame(anim.Phase{}), DefaultCamera(), 800, 800)
	want := map[facelet.Side]bool{facelet.PosX: false, facelet.PosY: false, facelet.PosZ: false}
	corner := render.Coord{X: 1, Y: 1, Z: 1}
	for _, q := range quads {
		if q.Coord == corner {
			want[q.Side] = true
		}
	}
	for side, seen := range want {
		if !seen {
			t.Errorf("corner side %d not drawn", side)
		}
	}
}

func TestProjectStaysOnScreen(t *testing.T) {
	phase := anim.Phase{Move: types.Move{Face: types.FaceR, Turn: types.TurnCW}, Angle: math.Pi / 4, Active: true}
	quads := Project(solvedFrame(phase), DefaultCamera(), 800, 600)
	for _, q := range quads {
		for _, p := range q.Points {
			if p[0] < 0 || p[0] > 800 || p[1] < 0 || p[1] > 600 {
				t.Fatalf("point %v off screen", p)
			}
		}
	}
}

func TestOrbitShowsBack(t *testing.T) {
	cam := DefaultCamera()
	cam.Orbit(math.Pi, 0)
	quads := Project(solvedFrame(anim.Phase{}), cam, 800, 800)
	seen := false
	for _, q := range quads {
		if q.Side == facelet.NegZ && q.Coord.Z == -1 {
			seen = true
		}
		if q.Side == facelet.PosZ && q.Coord.Z == 1 {
			t.Fatal("front face drawn from behind")
		}
	}
	if !seen {
		t.Error("back face not drawn")
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	cam := DefaultCamera()
	cam.Orbit(0, 10)
	if cam.Pitch > 1.4 {
		t.Errorf("pitch = %v", cam.Pitch)
	}
}

func TestShade(t *testing.T) {
	c := shade(palette.Default().Center(types.FaceU), 1)
	if c.R < 250 {
		t.Errorf("fully lit white = %v", c)
	}
	dark := shade(palette.Default().Center(types.FaceU), -1)
	if dark.R >= c.R {
		t.Errorf("unlit side should be darker: %v", dark)
	}
}
