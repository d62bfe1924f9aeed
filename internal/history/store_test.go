package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(i int) Record {
	c := draw.Combination{1 + i, 10, 20, 30, 40, 45}
	return Record{
		RunID:       fmt.Sprintf("run-%d", i),
		Combination: c,
		Score:       float64(50 + i),
		Metrics:     filter.Compute(c),
		CreatedAt:   time.Date(2026, 8, 1, 12, i, 0, 0, time.UTC),
	}
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	rec := testRecord(1)
	if err := s.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].RunID != "run-1" {
		t.Fatalf("run ID = %s, want run-1", got[0].RunID)
	}
	for i := range rec.Combination {
		if got[0].Combination[i] != rec.Combination[i] {
			t.Fatalf("combination = %v, want %v", got[0].Combination, rec.Combination)
		}
	}
	if got[0].Metrics != rec.Metrics {
		t.Fatalf("metrics = %+v, want %+v", got[0].Metrics, rec.Metrics)
	}
}

func TestEvictionBeyondCap(t *testing.T) {
	s := tempStore(t)

	for i := 1; i <= 6; i++ {
		if err := s.Append(testRecord(i)); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != DefaultCap {
		t.Fatalf("expected %d records after eviction, got %d", DefaultCap, len(got))
	}
	// Most recent first; the oldest (run-1) evicted.
	if got[0].RunID != "run-6" {
		t.Fatalf("newest record = %s, want run-6", got[0].RunID)
	}
	if got[len(got)-1].RunID != "run-2" {
		t.Fatalf("oldest surviving record = %s, want run-2", got[len(got)-1].RunID)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	s := tempStore(t)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d records", len(got))
	}
}

func TestLoadSkipsCorruptRows(t *testing.T) {
	s := tempStore(t)

	if err := s.Append(testRecord(1)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Sneak in rows the decoder cannot parse.
	for _, numbers := range []string{"1,2,3", "a,b,c,d,e,f", "1,2,3,4,5,99"} {
		_, err := s.db.Exec(
			`INSERT INTO draw_history (run_id, numbers, score, total, ac, odd_even, low_high, created_at)
			 VALUES ('bad', ?, 0, 0, 0, '0:0', '0:0', '2026-08-01T00:00:00Z')`, numbers)
		if err != nil {
			t.Fatalf("insert corrupt row: %v", err)
		}
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load must not fail on corruption: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 readable record, got %d", len(got))
	}
	if got[0].RunID != "run-1" {
		t.Fatalf("surviving record = %s, want run-1", got[0].RunID)
	}
}

func TestCustomCap(t *testing.T) {
	s, err := NewStoreWithCap(filepath.Join(t.TempDir(), "cap.db"), 2)
	if err != nil {
		t.Fatalf("NewStoreWithCap: %v", err)
	}
	defer s.Close()

	for i := 1; i <= 4; i++ {
		if err := s.Append(testRecord(i)); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}
