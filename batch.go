package cubeview

import (
	"fmt"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/state"
	"github.com/SeamusWaldron/cubeview/internal/storage"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// Op names a request to the solving service.
type Op string

const (
	OpLoad     Op = "load"
	OpApply    Op = "apply"
	OpScramble Op = "scramble"
	OpSolve    Op = "solve"
)

// Batch is one reply from the solving service, ready to be accepted on the
// frame thread.
type Batch struct {
	Op      Op
	Moves   []Move        // moves to animate, in order
	History []state.State // confirmed snapshot after each move
	Current state.State   // final state reported by the service

	// Short is set when the service sent fewer than 48 entries for Current.
	Short bool
}

// Animated reports whether the batch plays moves back before settling.
func (b Batch) Animated() bool {
	return b.Op != OpLoad && len(b.Moves) > 0
}

// Sweeps returns the number of quarter-turn sweeps the batch animates.
func (b Batch) Sweeps() int {
	n := 0
	for _, m := range b.Moves {
		n += len(m.Quarters())
	}
	return n
}

// Journal records accepted batches. *storage.BatchRepository satisfies it.
type Journal interface {
	Create(b storage.Batch, history [][]int) (string, error)
}

// newBatch converts a wire reply.
func newBatch(op Op, moves []Move, current []int, history [][]int) Batch {
	b := Batch{Op: op, Moves: moves}
	var ok bool
	b.Current, ok = state.FromSlice(current)
	b.Short = !ok
	if len(history) > 0 {
		b.History = make([]state.State, len(history))
		for i, h := range history {
			b.History[i], _ = state.FromSlice(h)
		}
	}
	return b
}

// parseWireMoves parses the move list of a scramble reply.
func parseWireMoves(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := types.ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("bad move %q in reply: %w", tok, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// expandHistory lines the snapshots up with the quarter sweeps. When the
// service sent at most one snapshot per move, a snapshot is inserted before
// the confirmed one of every half turn: a local guess, or the previous state
// when guessing is off. Expansion stops where the snapshots run out. Any
// other count is returned unchanged.
func expandHistory(prev state.State, moves []Move, history []state.State, guess bool) []state.State {
	sweeps := 0
	for _, m := range moves {
		sweeps += len(m.Quarters())
	}
	if len(history) == sweeps || len(history) > len(moves) {
		return append([]state.State(nil), history...)
	}

	out := make([]state.State, 0, sweeps)
	for i, h := range history {
		m := moves[i]
		if m.Turn == types.Turn180 {
			half := prev
			if guess {
				half = cube.Guess(prev, Move{Face: m.Face, Turn: types.TurnCW})
			}
			out = append(out, half)
		}
		out = append(out, h)
		prev = h
	}
	return out
}

func journalEntry(b Batch) (storage.Batch, [][]int) {
	history := make([][]int, len(b.History))
	for i, h := range b.History {
		history[i] = h.Slice()
	}
	return storage.Batch{
		Kind:         string(b.Op),
		MovesText:    types.FormatMoves(b.Moves),
		SweepCount:   b.Sweeps(),
		HistoryCount: len(b.History),
		FinalState:   b.Current.Slice(),
	}, history
}
