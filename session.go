package cubeview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/solver"
	"github.com/SeamusWaldron/cubeview/internal/state"
)

// State is the 48-slot sticker array.
type State = state.State

// Client is the solving service. *solver.Client satisfies it.
type Client interface {
	GetState(ctx context.Context) (solver.StateResponse, error)
	ApplyMoves(ctx context.Context, moves []Move) (solver.MovesResponse, error)
	Scramble(ctx context.Context) (solver.MovesResponse, error)
	Solve(ctx context.Context) (solver.SolveResponse, error)
}

// Session ties the state store, the animation scheduler and the snapshot
// history together for one cube.
//
// Create a Session with New, load it once, then drive it from the render
// loop:
//
//	s := cubeview.New(client, cubeview.WithAnimationDuration(time.Second))
//	if err := s.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	frame := s.Frame(dt)
//
// A Session is not safe for concurrent use, except for the Request methods.
type Session struct {
	client   Client
	store    *state.Store
	sched    *anim.Scheduler
	renderer *render.Renderer
	config   *config
	log      zerolog.Logger

	pending []Move
	history []state.State

	inflight bool   // a request is out
	batch    *Batch // batch being animated
	underran bool   // a sweep of the current batch found no snapshot

	// Callbacks
	onStep    func(Move, state.State)
	onSettled func(state.State)
}

// New creates a Session with an empty, unloaded state.
func New(client Client, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Session{
		client:   client,
		store:    state.NewStore(),
		sched:    anim.New(cfg.duration),
		renderer: render.New(cfg.palette),
		config:   cfg,
		log:      cfg.logger.With().Str("component", "session").Logger(),
	}
}

// OnStep registers a callback fired each time a sweep finishes, after the
// store has been updated.
func (s *Session) OnStep(cb func(Move, state.State)) {
	s.onStep = cb
}

// OnSettled registers a callback fired when an animated batch has finished.
func (s *Session) OnSettled(cb func(state.State)) {
	s.onSettled = cb
}

// State returns a copy of the displayed state.
func (s *Session) State() state.State {
	return s.store.Snapshot()
}

// Loaded reports whether a state has been fetched.
func (s *Session) Loaded() bool {
	return s.store.Loaded()
}

// Phase returns the in-flight rotation.
func (s *Session) Phase() anim.Phase {
	return s.sched.Phase()
}

// Busy reports whether a request is out or a batch is still animating.
func (s *Session) Busy() bool {
	return s.inflight || s.batch != nil
}

// QueuedSweeps returns the number of sweeps not yet finished, counting the
// active one.
func (s *Session) QueuedSweeps() int {
	n := s.sched.Pending()
	if !s.sched.Idle() {
		n++
	}
	return n
}

// SetAnimationDuration changes the sweep time. The active sweep continues at
// the new rate.
func (s *Session) SetAnimationDuration(d time.Duration) {
	s.sched.SetDuration(d)
}

// AnimationDuration returns the sweep time.
func (s *Session) AnimationDuration() time.Duration {
	return s.sched.Duration()
}

// Push appends a move to the pending list. A move on the same face as the
// last pending move is merged into it; moves that cancel out are removed.
func (s *Session) Push(m Move) {
	if n := len(s.pending); n > 0 && s.pending[n-1].Face == m.Face {
		if merged := s.pending[n-1].Merge(m); merged != nil {
			s.pending[n-1] = *merged
		} else {
			s.pending = s.pending[:n-1]
		}
		return
	}
	s.pending = append(s.pending, m)
}

// PushText parses notation and pushes every move. Nothing is pushed if any
// token is invalid.
func (s *Session) PushText(text string) error {
	moves, err := ParseMoves(text)
	if err != nil {
		return err
	}
	for _, m := range moves {
		s.Push(m)
	}
	return nil
}

// Pending returns a copy of the moves not yet submitted.
func (s *Session) Pending() []Move {
	return append([]Move(nil), s.pending...)
}

// ClearPending drops the moves not yet submitted. Submitted moves keep
// animating.
func (s *Session) ClearPending() {
	s.pending = nil
}

// TakePending returns the pending moves and clears the list.
func (s *Session) TakePending() []Move {
	moves := s.pending
	s.pending = nil
	return moves
}

// RestorePending puts moves back in front of the pending list, after a
// failed submit.
func (s *Session) RestorePending(moves []Move) {
	s.pending = append(append([]Move(nil), moves...), s.pending...)
}

// Begin reserves the session for one request. It fails with ErrBusy while
// another request is out or, except for a reload, while a batch is still
// animating. Every successful Begin must be followed by Accept or Fail.
func (s *Session) Begin(op Op) error {
	if s.inflight {
		return ErrBusy
	}
	if op != OpLoad {
		if s.batch != nil {
			return ErrBusy
		}
		if !s.store.Loaded() {
			return ErrNotLoaded
		}
	}
	s.inflight = true
	return nil
}

// RequestState fetches the full state.
func (s *Session) RequestState(ctx context.Context) (Batch, error) {
	var resp solver.StateResponse
	err := s.observe(OpLoad, func() (err error) {
		resp, err = s.client.GetState(ctx)
		return err
	})
	if err != nil {
		return Batch{}, fmt.Errorf("failed to fetch state: %w", err)
	}
	return newBatch(OpLoad, nil, resp.Current, nil), nil
}

// RequestApply submits moves.
func (s *Session) RequestApply(ctx context.Context, moves []Move) (Batch, error) {
	return s.requestApply(ctx, OpApply, moves)
}

func (s *Session) requestApply(ctx context.Context, op Op, moves []Move) (Batch, error) {
	if len(moves) == 0 {
		return Batch{}, ErrEmptyBatch
	}
	var resp solver.MovesResponse
	err := s.observe(op, func() (err error) {
		resp, err = s.client.ApplyMoves(ctx, moves)
		return err
	})
	if err != nil {
		return Batch{}, fmt.Errorf("failed to apply moves: %w", err)
	}
	return newBatch(op, append([]Move(nil), moves...), resp.Current, resp.History), nil
}

// RequestScramble asks the service for a scramble.
func (s *Session) RequestScramble(ctx context.Context) (Batch, error) {
	var resp solver.MovesResponse
	err := s.observe(OpScramble, func() (err error) {
		resp, err = s.client.Scramble(ctx)
		return err
	})
	if err != nil {
		return Batch{}, fmt.Errorf("failed to scramble: %w", err)
	}
	moves, err := parseWireMoves(resp.Moves)
	if err != nil {
		return Batch{}, fmt.Errorf("failed to scramble: %w", err)
	}
	return newBatch(OpScramble, moves, resp.Current, resp.History), nil
}

// RequestSolve fetches a solution and submits it. An empty solution returns
// ErrAlreadySolved without submitting anything.
func (s *Session) RequestSolve(ctx context.Context) (Batch, error) {
	var resp solver.SolveResponse
	err := s.observe(OpSolve, func() (err error) {
		resp, err = s.client.Solve(ctx)
		return err
	})
	if err != nil {
		return Batch{}, fmt.Errorf("failed to solve: %w", err)
	}
	if strings.TrimSpace(resp.Solution) == "" {
		return Batch{}, ErrAlreadySolved
	}
	moves, err := ParseMoves(resp.Solution)
	if err != nil {
		return Batch{}, fmt.Errorf("bad solution %q: %w", resp.Solution, err)
	}
	return s.requestApply(ctx, OpSolve, moves)
}

// Request runs the request for op. moves is only used by OpApply.
func (s *Session) Request(ctx context.Context, op Op, moves []Move) (Batch, error) {
	switch op {
	case OpLoad:
		return s.RequestState(ctx)
	case OpApply:
		return s.RequestApply(ctx, moves)
	case OpScramble:
		return s.RequestScramble(ctx)
	case OpSolve:
		return s.RequestSolve(ctx)
	}
	return Batch{}, fmt.Errorf("unknown op %q", op)
}

// observe times a call and counts its failure.
func (s *Session) observe(op Op, call func() error) error {
	start := time.Now()
	err := call()
	if m := s.config.metrics; m != nil {
		m.RequestLatency.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
		if err != nil {
			m.RequestFailures.WithLabelValues(string(op)).Inc()
		}
	}
	return err
}

// Accept installs a reply. A reload or a batch without moves replaces the
// state at once. Otherwise the moves are queued for animation and their
// snapshots become the new history.
func (s *Session) Accept(b Batch) {
	s.inflight = false

	if b.Short {
		s.log.Warn().Str("op", string(b.Op)).Msg("State reply shorter than 48 entries")
	}
	if m := s.config.metrics; m != nil {
		m.BatchesAccepted.WithLabelValues(string(b.Op)).Inc()
	}
	s.record(b)

	if !b.Animated() {
		s.sched.Reset()
		s.history = nil
		s.batch = nil
		s.store.Replace(b.Current)
		s.log.Debug().Str("op", string(b.Op)).Msg("State replaced")
		s.setQueueDepth()
		return
	}

	if len(b.History) != len(b.Moves) {
		s.log.Warn().
			Str("op", string(b.Op)).
			Int("moves", len(b.Moves)).
			Int("history", len(b.History)).
			Msg("History count does not match moves")
	}

	s.history = expandHistory(s.store.Snapshot(), b.Moves, b.History, s.config.localGuess)
	s.sched.Reset()
	s.sched.Enqueue(b.Moves...)
	s.batch = &b
	s.underran = false

	s.log.Debug().
		Str("op", string(b.Op)).
		Str("moves", FormatMoves(b.Moves)).
		Int("sweeps", b.Sweeps()).
		Msg("Batch accepted")
	s.setQueueDepth()
}

// Fail ends a request that did not produce a batch. The state, the queue and
// the history are left as they were.
func (s *Session) Fail(op Op, err error) {
	s.inflight = false
	if errors.Is(err, ErrAlreadySolved) {
		s.log.Info().Str("op", string(op)).Msg("Nothing to solve")
		return
	}
	s.log.Error().Err(err).Str("op", string(op)).Msg("Request failed")
}

func (s *Session) record(b Batch) {
	if s.config.journal == nil {
		return
	}
	entry, history := journalEntry(b)
	if _, err := s.config.journal.Create(entry, history); err != nil {
		s.log.Error().Err(err).Msg("Failed to journal batch")
	}
}

// Frame advances the animation by dt and returns what to draw. When a sweep
// finishes, the next confirmed snapshot replaces the state before the frame
// is built, so the returned frame already shows the new colors at rest. No
// frame shows the finished sweep at exactly π/2; the step reports that angle
// and the cubelets at rest with the new colors are the same picture.
func (s *Session) Frame(dt time.Duration) render.Frame {
	if step, ok := s.sched.Tick(dt); ok {
		s.completeStep(step)
	}
	if s.batch != nil && s.sched.Drained() {
		s.settle()
	}
	return s.renderer.Frame(s.store.Snapshot(), s.sched.Phase())
}

func (s *Session) completeStep(step anim.Step) {
	if m := s.config.metrics; m != nil {
		m.StepsCompleted.Inc()
	}

	if len(s.history) > 0 {
		next := s.history[0]
		s.history = s.history[1:]
		s.store.Replace(next)
	} else {
		if !s.underran {
			s.log.Warn().Str("move", step.Move.String()).Msg("No snapshot left for finished sweep")
		}
		s.underran = true
		if m := s.config.metrics; m != nil {
			m.HistoryUnderruns.Inc()
		}
	}
	s.setQueueDepth()

	if s.onStep != nil {
		s.onStep(step.Move, s.store.Snapshot())
	}
}

// settle closes the animated batch. A batch whose snapshots did not match its
// sweeps falls back to the final state the service reported.
func (s *Session) settle() {
	b := s.batch
	s.batch = nil

	dropped := len(s.history) > 0
	if dropped {
		s.log.Warn().Int("left", len(s.history)).Msg("Dropping unused snapshots")
		s.history = nil
	}
	if (s.underran || dropped) && !b.Short {
		s.store.Replace(b.Current)
		s.log.Info().Str("op", string(b.Op)).Msg("Reconciled to reported state")
	}
	s.underran = false

	if s.onSettled != nil {
		s.onSettled(s.store.Snapshot())
	}
}

// Settle finishes the current batch at once and returns the resting frame.
func (s *Session) Settle() render.Frame {
	for s.batch != nil {
		s.Frame(s.sched.Duration())
	}
	return s.Frame(0)
}

func (s *Session) setQueueDepth() {
	if m := s.config.metrics; m != nil {
		m.QueueDepth.Set(float64(s.QueuedSweeps()))
	}
}

// Load fetches the full state and replaces the store. Queued sweeps are
// dropped.
func (s *Session) Load(ctx context.Context) error {
	if err := s.Begin(OpLoad); err != nil {
		return err
	}
	b, err := s.RequestState(ctx)
	if err != nil {
		s.Fail(OpLoad, err)
		return err
	}
	s.Accept(b)
	return nil
}

// Apply submits moves and queues them for animation.
func (s *Session) Apply(ctx context.Context, moves []Move) error {
	if len(moves) == 0 {
		return ErrEmptyBatch
	}
	return s.run(ctx, OpApply, func(ctx context.Context) (Batch, error) {
		return s.RequestApply(ctx, moves)
	})
}

// SubmitPending submits the pending list. On failure the moves are put back.
func (s *Session) SubmitPending(ctx context.Context) error {
	if len(s.pending) == 0 {
		return ErrEmptyBatch
	}
	if err := s.Begin(OpApply); err != nil {
		return err
	}
	moves := s.TakePending()
	b, err := s.RequestApply(ctx, moves)
	if err != nil {
		s.Fail(OpApply, err)
		s.RestorePending(moves)
		return err
	}
	s.Accept(b)
	return nil
}

// Scramble asks the service to scramble and queues the scramble moves.
func (s *Session) Scramble(ctx context.Context) error {
	return s.run(ctx, OpScramble, s.RequestScramble)
}

// Solve fetches a solution and queues it. It returns ErrAlreadySolved when
// there is nothing to do.
func (s *Session) Solve(ctx context.Context) error {
	return s.run(ctx, OpSolve, s.RequestSolve)
}

func (s *Session) run(ctx context.Context, op Op, request func(context.Context) (Batch, error)) error {
	if err := s.Begin(op); err != nil {
		return err
	}
	b, err := request(ctx)
	if err != nil {
		s.Fail(op, err)
		return err
	}
	s.Accept(b)
	return nil
}
