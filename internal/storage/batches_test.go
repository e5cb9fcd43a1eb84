package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)
	if filepath.Base(db.Path()) != "journal.db" {
		t.Errorf("path = %q", db.Path())
	}

	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("version = %d, want 1", v)
	}

	// Re-applying is a no-op.
	if err := applyMigrations(db.DB); err != nil {
		t.Errorf("second migration run: %v", err)
	}
}

func TestBatchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewBatchRepository(db)

	final := []int{3, 2, 1}
	history := [][]int{{1, 2, 3}, {3, 2, 1}}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	id, err := repo.Create(Batch{
		Kind:         "apply",
		MovesText:    "U R'",
		SweepCount:   2,
		HistoryCount: 2,
		FinalState:   final,
		AcceptedAt:   at,
	}, history)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("empty batch ID")
	}

	got, err := repo.Get(id)
	if err != nil || got == nil {
		t.Fatalf("Get: %v, %v", got, err)
	}
	if got.Kind != "apply" || got.MovesText != "U R'" || got.SweepCount != 2 {
		t.Errorf("batch = %+v", got)
	}
	if !got.AcceptedAt.Equal(at) {
		t.Errorf("accepted_at = %v, want %v", got.AcceptedAt, at)
	}
	if len(got.FinalState) != 3 || got.FinalState[0] != 3 {
		t.Errorf("final state = %v", got.FinalState)
	}

	snaps, err := repo.Snapshots(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 2 || snaps[1][0] != 3 {
		t.Errorf("snapshots = %v", snaps)
	}
}

func TestListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewBatchRepository(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, kind := range []string{"scramble", "apply", "solve"} {
		_, err := repo.Create(Batch{Kind: kind, FinalState: []int{}, AcceptedAt: base.Add(time.Duration(i) * time.Minute)}, nil)
		if err != nil {
			t.Fatal(err)
		}
	}

	list, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Kind != "solve" || list[1].Kind != "apply" {
		t.Errorf("list = %+v", list)
	}

	n, err := repo.Count()
	if err != nil || n != 3 {
		t.Errorf("count = %d, %v", n, err)
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)
	got, err := NewBatchRepository(db).Get("nope")
	if err != nil || got != nil {
		t.Errorf("Get(missing) = %v, %v", got, err)
	}
}
