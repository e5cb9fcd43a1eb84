// Package anim sequences queued face turns into timed quarter-turn sweeps.
//
// The Scheduler is driven by the render loop: every frame calls Tick with the
// wall time elapsed since the previous frame. It is not safe for concurrent
// use; all calls must come from the frame thread.
package anim

import (
	"math"
	"time"

	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// QuarterTurn is the sweep of one animation step, in radians.
const QuarterTurn = math.Pi / 2

// MinDuration replaces non-positive sweep durations.
const MinDuration = time.Millisecond

// epsilon absorbs float rounding when dt divides the duration exactly.
const epsilon = 1e-9

// Phase is the in-flight rotation. The zero value is idle.
type Phase struct {
	Move   types.Move
	Angle  float64 // 0..QuarterTurn
	Active bool
}

// Direction is the sign of the rotation about the face's outward normal:
// -1 for a clockwise turn, +1 for an inverse turn, 0 when idle.
func (p Phase) Direction() float64 {
	if !p.Active {
		return 0
	}
	return Direction(p.Move)
}

// Signed returns Angle with the direction applied.
func (p Phase) Signed() float64 {
	return p.Direction() * p.Angle
}

// Direction returns the rotation sign of a move. Clockwise as seen from
// outside the face is a negative rotation about the outward normal.
func Direction(m types.Move) float64 {
	if m.Turn == types.TurnCCW {
		return 1
	}
	return -1
}

// Step is emitted once for every finished sweep.
type Step struct {
	Move types.Move
	Seq  uint64 // 1 for the first sweep since the scheduler was created

	// Final is the last frame of the sweep, clamped to QuarterTurn.
	Final Phase
}

// Scheduler is a two-state machine: idle, or rotating one move.
type Scheduler struct {
	duration time.Duration
	queue    []types.Move
	phase    Phase
	seq      uint64
}

// New creates an idle scheduler with an empty queue.
func New(duration time.Duration) *Scheduler {
	s := &Scheduler{}
	s.SetDuration(duration)
	return s
}

// SetDuration changes the sweep duration. Values <= 0 become MinDuration.
func (s *Scheduler) SetDuration(d time.Duration) {
	if d <= 0 {
		d = MinDuration
	}
	s.duration = d
}

// Duration returns the sweep duration.
func (s *Scheduler) Duration() time.Duration {
	return s.duration
}

// Enqueue appends moves to the tail of the queue. Half turns become two
// clockwise quarter sweeps. The active sweep is never interrupted; the new
// moves start on a later tick.
func (s *Scheduler) Enqueue(moves ...types.Move) {
	for _, m := range moves {
		s.queue = append(s.queue, m.Quarters()...)
	}
}

// Tick advances the machine by dt. It returns the finished step, if a sweep
// completed during this tick. At most one sweep completes per tick; any time
// beyond the end of the sweep is dropped.
func (s *Scheduler) Tick(dt time.Duration) (Step, bool) {
	if !s.phase.Active {
		if len(s.queue) == 0 {
			return Step{}, false
		}
		s.phase = Phase{Move: s.queue[0], Active: true}
		s.queue[0] = types.Move{}
		s.queue = s.queue[1:]
	}

	if dt > 0 {
		s.phase.Angle += QuarterTurn / s.duration.Seconds() * dt.Seconds()
	}
	if s.phase.Angle < QuarterTurn-epsilon {
		return Step{}, false
	}
	s.phase.Angle = QuarterTurn

	s.seq++
	step := Step{Move: s.phase.Move, Seq: s.seq, Final: s.phase}
	s.phase = Phase{}
	return step, true
}

// Phase returns a copy of the in-flight rotation.
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// Idle reports whether no sweep is active.
func (s *Scheduler) Idle() bool {
	return !s.phase.Active
}

// Pending returns the number of queued sweeps, not counting the active one.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Drained reports whether the scheduler is idle with nothing queued.
func (s *Scheduler) Drained() bool {
	return !s.phase.Active && len(s.queue) == 0
}

// Reset drops the active sweep and everything queued.
func (s *Scheduler) Reset() {
	s.queue = nil
	s.phase = Phase{}
}
