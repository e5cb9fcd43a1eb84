//go:build !tinygo

// Package window shows the cube in a desktop window driven by ebiten.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/view3d"
)

// Options configures the window.
type Options struct {
	Width   int
	Height  int
	Timeout time.Duration // per request
}

// orbitStep is the camera turn per frame while an arrow key is held.
const orbitStep = math.Pi / 90

type result struct {
	op    cubeview.Op
	batch cubeview.Batch
	moves []cubeview.Move
	err   error
}

type game struct {
	session *cubeview.Session
	opts    Options
	cam     view3d.Camera
	frame   render.Frame
	results chan result

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16

	status string
}

// Run opens the window and blocks until it closes.
func Run(s *cubeview.Session, opts Options) error {
	g := &game{
		session: s,
		opts:    opts,
		cam:     view3d.DefaultCamera(),
		results: make(chan result, 1),
	}

	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	g.start(cubeview.OpLoad)

	ebiten.SetWindowTitle("cubeview")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// start reserves the session and runs the request in the background. The
// reply is accepted on the next Update.
func (g *game) start(op cubeview.Op) {
	if err := g.session.Begin(op); err != nil {
		g.status = err.Error()
		return
	}
	var moves []cubeview.Move
	if op == cubeview.OpApply {
		moves = g.session.TakePending()
	}
	g.status = fmt.Sprintf("%s...", op)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), g.opts.Timeout)
		defer cancel()
		b, err := g.session.Request(ctx, op, moves)
		g.results <- result{op: op, batch: b, moves: moves, err: err}
	}()
}

func (g *game) Update() error {
	select {
	case r := <-g.results:
		g.finish(r)
	default:
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	g.frame = g.session.Frame(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *game) finish(r result) {
	if r.err != nil {
		g.session.Fail(r.op, r.err)
		if r.op == cubeview.OpApply {
			g.session.RestorePending(r.moves)
		}
		if errors.Is(r.err, cubeview.ErrAlreadySolved) {
			g.status = "Already solved"
		} else {
			g.status = "Error: " + r.err.Error()
		}
		return
	}
	g.session.Accept(r.batch)
	g.status = fmt.Sprintf("%s: %s", r.op, cubeview.FormatMoves(r.batch.Moves))
}

func (g *game) handleInput() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if m, ok := cubeview.KeyMove(r); ok {
			g.session.Push(m)
			continue
		}
		switch r {
		case 's':
			g.start(cubeview.OpScramble)
		case 'v':
			g.start(cubeview.OpSolve)
		case 'g':
			g.start(cubeview.OpLoad)
		case 'q':
			return ebiten.Termination
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if len(g.session.Pending()) > 0 {
			g.start(cubeview.OpApply)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.session.ClearPending()
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Orbit(0, -orbitStep)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x11, 0x11, 0x11, 0xFF})

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	quads := view3d.Project(g.frame, g.cam, w, h)

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, q := range quads {
		base := uint16(len(g.vertices))
		r, gg, b, a := float32(q.Color.R)/0xFF, float32(q.Color.G)/0xFF, float32(q.Color.B)/0xFF, float32(q.Color.A)/0xFF
		for _, p := range q.Points {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gg, ColorB: b, ColorA: a,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
	}
	screen.DrawTriangles(g.vertices, g.indices, g.white, nil)

	ebitenutil.DebugPrint(screen, g.overlay())
}

func (g *game) overlay() string {
	var b strings.Builder
	if p := g.frame.Phase; p.Active {
		fmt.Fprintf(&b, "Turning %s\n", p.Move)
	} else {
		b.WriteString("Idle\n")
	}
	fmt.Fprintf(&b, "Queued: %d\n", g.session.QueuedSweeps())
	fmt.Fprintf(&b, "Pending: %s\n", cubeview.FormatMoves(g.session.Pending()))
	if g.status != "" {
		b.WriteString(g.status + "\n")
	}
	b.WriteString("ulfrbd/ULFRBD turn, enter submit, s scramble, v solve, g reload, arrows orbit, esc quit")
	return b.String()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
