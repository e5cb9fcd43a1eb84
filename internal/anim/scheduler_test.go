package anim

import (
	"math"
	"testing"
	"time"

	"github.com/SeamusWaldron/cubeview/pkg/types"
)

var (
	moveU      = types.Move{Face: types.FaceU, Turn: types.TurnCW}
	moveUPrime = types.Move{Face: types.FaceU, Turn: types.TurnCCW}
	moveR2     = types.Move{Face: types.FaceR, Turn: types.Turn180}
)

func TestIdleTickDoesNothing(t *testing.T) {
	s := New(300 * time.Millisecond)
	if _, done := s.Tick(time.Second); done {
		t.Error("idle scheduler should not complete a step")
	}
	if !s.Drained() {
		t.Error("scheduler should stay drained")
	}
}

func TestEnqueueTakesEffectOnTick(t *testing.T) {
	s := New(300 * time.Millisecond)
	s.Enqueue(moveU)
	if !s.Idle() || s.Pending() != 1 {
		t.Fatalf("idle=%v pending=%d before tick", s.Idle(), s.Pending())
	}

	s.Tick(0)
	p := s.Phase()
	if !p.Active || p.Move != moveU || p.Angle != 0 {
		t.Errorf("phase after first tick = %+v", p)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestAngleAdvancesMonotonicallyAndClamps(t *testing.T) {
	s := New(300 * time.Millisecond)
	s.Enqueue(moveU)

	prev := -1.0
	steps := 0
	for i := 0; i < 100 && steps == 0; i++ {
		step, done := s.Tick(7 * time.Millisecond)
		if done {
			steps++
			if step.Final.Angle != QuarterTurn {
				t.Errorf("final angle = %v, want %v", step.Final.Angle, QuarterTurn)
			}
			break
		}
		angle := s.Phase().Angle
		if angle < prev {
			t.Fatalf("angle went backwards: %v -> %v", prev, angle)
		}
		if angle > QuarterTurn {
			t.Fatalf("angle %v overshoots", angle)
		}
		prev = angle
	}
	if steps != 1 {
		t.Fatal("sweep never completed")
	}
	if !s.Idle() || s.Phase().Angle != 0 {
		t.Errorf("phase not reset: %+v", s.Phase())
	}
}

func TestExactDurationCompletes(t *testing.T) {
	s := New(300 * time.Millisecond)
	s.Enqueue(moveU)

	var done bool
	for i := 0; i < 3; i++ {
		_, done = s.Tick(100 * time.Millisecond)
	}
	if !done {
		t.Error("three ticks of 100ms should finish a 300ms sweep")
	}
}

func TestLargeTickCompletesOnceWithoutOvershoot(t *testing.T) {
	s := New(300 * time.Millisecond)
	s.Enqueue(moveU, moveUPrime)

	step, done := s.Tick(10 * time.Second)
	if !done || step.Move != moveU || step.Seq != 1 {
		t.Fatalf("first tick = %+v, %v", step, done)
	}
	if step.Final.Angle > QuarterTurn {
		t.Errorf("final angle %v overshoots", step.Final.Angle)
	}
	if s.Pending() != 1 {
		t.Errorf("only one sweep may finish per tick, pending = %d", s.Pending())
	}

	step, done = s.Tick(10 * time.Second)
	if !done || step.Move != moveUPrime || step.Seq != 2 {
		t.Errorf("second tick = %+v, %v", step, done)
	}
	if !s.Drained() {
		t.Error("scheduler should be drained")
	}
}

func TestHalfTurnIsTwoSweeps(t *testing.T) {
	s := New(100 * time.Millisecond)
	s.Enqueue(moveR2)
	if s.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", s.Pending())
	}

	var steps []Step
	for i := 0; i < 10; i++ {
		if step, done := s.Tick(time.Second); done {
			steps = append(steps, step)
		}
	}
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	for _, st := range steps {
		if st.Move.Face != types.FaceR || st.Move.Turn != types.TurnCW {
			t.Errorf("step move = %v, want R", st.Move)
		}
	}
}

func TestEnqueueWhileRotatingAppends(t *testing.T) {
	s := New(100 * time.Millisecond)
	s.Enqueue(moveU)
	s.Tick(50 * time.Millisecond)

	s.Enqueue(moveUPrime)
	p := s.Phase()
	if p.Move != moveU || !p.Active {
		t.Errorf("active sweep interrupted: %+v", p)
	}

	step, _ := s.Tick(50 * time.Millisecond)
	if step.Move != moveU {
		t.Errorf("first finished step = %v, want U", step.Move)
	}
	step, _ = s.Tick(time.Second)
	if step.Move != moveUPrime {
		t.Errorf("second finished step = %v, want U'", step.Move)
	}
}

func TestNonPositiveDurationIsClamped(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		s := New(d)
		if s.Duration() != MinDuration {
			t.Errorf("New(%v).Duration() = %v", d, s.Duration())
		}
		s.Enqueue(moveU)
		if _, done := s.Tick(MinDuration); !done {
			t.Errorf("duration %v: sweep should finish in one tick", d)
		}
		if a := s.Phase().Angle; math.IsInf(a, 0) || math.IsNaN(a) {
			t.Errorf("angle = %v", a)
		}
	}
}

func TestDirection(t *testing.T) {
	if Direction(moveU) != -1 || Direction(moveUPrime) != 1 {
		t.Error("clockwise should be negative, inverse positive")
	}
	if (Phase{}).Direction() != 0 {
		t.Error("idle phase has no direction")
	}
	p := Phase{Move: moveUPrime, Angle: 0.5, Active: true}
	if p.Signed() != 0.5 {
		t.Errorf("signed = %v", p.Signed())
	}
}

func TestReset(t *testing.T) {
	s := New(time.Second)
	s.Enqueue(moveU, moveUPrime)
	s.Tick(10 * time.Millisecond)
	s.Reset()
	if !s.Drained() {
		t.Error("reset should drain the scheduler")
	}
}
