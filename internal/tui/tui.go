// Package tui is the terminal control panel: it drives a Session from a
// bubbletea frame clock and paints the cube as an unfolded net.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/notation"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// FrameInterval is the frame clock period, about 60 Hz.
const FrameInterval = time.Second / 60

// maxFrameDelta caps dt after a stall so one frame cannot skip ahead.
const maxFrameDelta = 250 * time.Millisecond

// Sweep time bounds for the speed keys.
const (
	minSweep  = 50 * time.Millisecond
	maxSweep  = 2 * time.Second
	sweepStep = 50 * time.Millisecond
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type frameMsg time.Time

type batchMsg struct {
	batch cubeview.Batch
}

type failMsg struct {
	op    cubeview.Op
	err   error
	moves []types.Move // pending moves to put back
}

// Model is the bubbletea model.
type Model struct {
	session *cubeview.Session
	timeout time.Duration

	frame    render.Frame
	last     time.Time
	lastOp   cubeview.Op
	steps    int
	recent   []types.Move
	status   string
	err      error
	quitting bool
}

// New creates the model. timeout bounds every request to the service.
func New(s *cubeview.Session, timeout time.Duration) *Model {
	m := &Model{
		session: s,
		timeout: timeout,
	}
	s.OnStep(func(mv types.Move, _ cubeview.State) {
		m.steps++
		m.recent = append(m.recent, mv)
		if len(m.recent) > 20 {
			m.recent = m.recent[len(m.recent)-20:]
		}
	})
	s.OnSettled(func(st cubeview.State) {
		if st.IsSolved() {
			m.status = "Solved"
		} else {
			m.status = fmt.Sprintf("%s done", m.lastOp)
		}
	})
	return m
}

// Run starts the program and blocks until the user quits.
func Run(s *cubeview.Session, timeout time.Duration) error {
	_, err := tea.NewProgram(New(s, timeout), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.start(cubeview.OpLoad), m.tickCmd())
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// start reserves the session and returns the request as a command. The
// session is only touched again when the reply comes back through Update.
func (m *Model) start(op cubeview.Op) tea.Cmd {
	if err := m.session.Begin(op); err != nil {
		m.err = err
		return nil
	}
	var moves []types.Move
	if op == cubeview.OpApply {
		moves = m.session.TakePending()
	}
	m.lastOp = op
	m.status = fmt.Sprintf("%s...", op)
	m.err = nil

	s := m.session
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		b, err := s.Request(ctx, op, moves)
		if err != nil {
			return failMsg{op: op, err: err, moves: moves}
		}
		return batchMsg{batch: b}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		dt := time.Duration(0)
		if !m.last.IsZero() {
			dt = min(now.Sub(m.last), maxFrameDelta)
		}
		m.last = now
		m.frame = m.session.Frame(dt)
		return m, m.tickCmd()

	case batchMsg:
		m.session.Accept(msg.batch)
		if !msg.batch.Animated() {
			m.status = fmt.Sprintf("%s done", msg.batch.Op)
		} else {
			m.status = fmt.Sprintf("%s: %s", msg.batch.Op, cubeview.FormatMoves(msg.batch.Moves))
		}

	case failMsg:
		m.session.Fail(msg.op, msg.err)
		if len(msg.moves) > 0 && msg.op == cubeview.OpApply {
			m.session.RestorePending(msg.moves)
		}
		if errors.Is(msg.err, cubeview.ErrAlreadySolved) {
			m.status = "Already solved"
			return m, nil
		}
		m.status = ""
		m.err = msg.err
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if mv, ok := cubeview.KeyMove(msg.Runes[0]); ok {
			m.session.Push(mv)
			return nil
		}
	}

	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case "enter":
		if len(m.session.Pending()) == 0 {
			m.err = cubeview.ErrEmptyBatch
			return nil
		}
		return m.start(cubeview.OpApply)

	case "backspace":
		m.session.ClearPending()

	case "s":
		return m.start(cubeview.OpScramble)

	case "v":
		return m.start(cubeview.OpSolve)

	case "g":
		return m.start(cubeview.OpLoad)

	case "+", "=":
		m.setSweep(m.session.AnimationDuration() - sweepStep)

	case "-":
		m.setSweep(m.session.AnimationDuration() + sweepStep)
	}
	return nil
}

// setSweep changes the sweep time within bounds. The active sweep continues
// at the new rate.
func (m *Model) setSweep(d time.Duration) {
	d = max(minSweep, min(d, maxSweep))
	m.session.SetAnimationDuration(d)
	m.status = fmt.Sprintf("Sweep %s", d)
}

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubeview"))
	b.WriteString("\n\n")

	if !m.session.Loaded() {
		b.WriteString(statusStyle.Render("Fetching state..."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(renderNet(m.frame))
		b.WriteString("\n\n")
	}

	b.WriteString(m.sweepLine())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Steps: %d  Queued: %d  Sweep: %s\n", m.steps, m.session.QueuedSweeps(), m.session.AnimationDuration()))

	if len(m.recent) > 0 {
		b.WriteString("Played: ")
		b.WriteString(moveStyle.Render(cubeview.FormatMoves(m.recent)))
		b.WriteString("\n")
	}

	b.WriteString("Pending: ")
	if pending := m.session.Pending(); len(pending) > 0 {
		b.WriteString(activeStyle.Render(cubeview.FormatMoves(pending)))
	} else {
		b.WriteString(statusStyle.Render("-"))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ulfrbd=turn  ULFRBD=inverse  enter=submit  backspace=clear  s=scramble  v=solve  g=reload  +/-=speed  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// sweepLine shows the active move and its progress.
func (m *Model) sweepLine() string {
	p := m.frame.Phase
	if !p.Active {
		return statusStyle.Render("Idle")
	}
	const width = 20
	done := int(p.Angle / anim.QuarterTurn * width)
	bar := strings.Repeat("#", done) + strings.Repeat(".", width-done)
	return fmt.Sprintf("%s [%s] %s", activeStyle.Render(p.Move.String()), bar, statusStyle.Render(notation.Describe(p.Move)))
}
