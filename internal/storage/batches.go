package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout sorts lexically in UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Batch is one accepted reply from the solving service.
type Batch struct {
	BatchID      string
	Kind         string // apply, scramble, solve
	MovesText    string
	SweepCount   int
	HistoryCount int
	FinalState   []int
	AcceptedAt   time.Time
}

// BatchRepository stores batches and their intermediate snapshots.
type BatchRepository struct {
	db *DB
}

// NewBatchRepository creates a new batch repository.
func NewBatchRepository(db *DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// Create stores a batch with its history and returns the new batch ID.
func (r *BatchRepository) Create(b Batch, history [][]int) (string, error) {
	id := uuid.New().String()
	acceptedAt := b.AcceptedAt
	if acceptedAt.IsZero() {
		acceptedAt = time.Now()
	}

	final, err := json.Marshal(b.FinalState)
	if err != nil {
		return "", fmt.Errorf("failed to encode final state: %w", err)
	}

	err = r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO batches (batch_id, kind, moves_text, sweep_count, history_count, final_state, accepted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, b.Kind, b.MovesText, b.SweepCount, b.HistoryCount, string(final), acceptedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("failed to create batch: %w", err)
		}

		for seq, snap := range history {
			data, err := json.Marshal(snap)
			if err != nil {
				return fmt.Errorf("failed to encode snapshot %d: %w", seq, err)
			}
			if _, err := tx.Exec(`
				INSERT INTO snapshots (batch_id, seq, state) VALUES (?, ?, ?)
			`, id, seq, string(data)); err != nil {
				return fmt.Errorf("failed to create snapshot %d: %w", seq, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// List returns the most recent batches, newest first.
func (r *BatchRepository) List(limit int) ([]Batch, error) {
	rows, err := r.db.Query(`
		SELECT batch_id, kind, moves_text, sweep_count, history_count, final_state, accepted_at
		FROM batches
		ORDER BY accepted_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}

// Get retrieves a batch by ID.
func (r *BatchRepository) Get(batchID string) (*Batch, error) {
	row := r.db.QueryRow(`
		SELECT batch_id, kind, moves_text, sweep_count, history_count, final_state, accepted_at
		FROM batches
		WHERE batch_id = ?
	`, batchID)

	b, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Snapshots returns the intermediate states of a batch in order.
func (r *BatchRepository) Snapshots(batchID string) ([][]int, error) {
	rows, err := r.db.Query(`
		SELECT state FROM snapshots WHERE batch_id = ? ORDER BY seq
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}
	defer rows.Close()

	var out [][]int
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		var snap []int
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		out = append(out, snap)
	}

	return out, rows.Err()
}

// Count returns the number of stored batches.
func (r *BatchRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM batches").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count batches: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(s scanner) (Batch, error) {
	var b Batch
	var final, acceptedAt string
	err := s.Scan(&b.BatchID, &b.Kind, &b.MovesText, &b.SweepCount, &b.HistoryCount, &final, &acceptedAt)
	if err == sql.ErrNoRows {
		return b, err
	}
	if err != nil {
		return b, fmt.Errorf("failed to scan batch: %w", err)
	}

	if err := json.Unmarshal([]byte(final), &b.FinalState); err != nil {
		return b, fmt.Errorf("failed to decode final state: %w", err)
	}
	b.AcceptedAt, err = time.Parse(timeLayout, acceptedAt)
	if err != nil {
		return b, fmt.Errorf("failed to parse accepted_at: %w", err)
	}
	return b, nil
}
