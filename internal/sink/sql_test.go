package sink

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRegistryCoversEveryTable(t *testing.T) {
	if len(tableOrder) != len(tables) {
		t.Fatalf("creation order lists %d tables, registry holds %d", len(tableOrder), len(tables))
	}
	for _, name := range tableOrder {
		spec, ok := tables[name]
		if !ok {
			t.Fatalf("table %s missing from the registry", name)
		}
		if spec.columns <= 0 {
			t.Fatalf("table %s has no column count", name)
		}
		if !strings.Contains(spec.insert, "INSERT INTO "+name) {
			t.Fatalf("table %s insert statement targets the wrong table", name)
		}
		if got := strings.Count(spec.insert, ":"); got != spec.columns {
			t.Fatalf("table %s declares %d columns but binds %d parameters", name, spec.columns, got)
		}
	}
}

func TestChunkSizeStaysUnderParamCeiling(t *testing.T) {
	for _, name := range tableOrder {
		spec := tables[name]
		if chunkSize(spec.columns)*spec.columns > maxBindParams {
			t.Fatalf("table %s chunks would exceed the bind parameter ceiling", name)
		}
		if chunkSize(spec.columns) < 1 {
			t.Fatalf("table %s chunk size collapsed to zero", name)
		}
	}
}

func TestInsertRejectsUnknownTable(t *testing.T) {
	s := NewSQL(nil, zap.NewNop().Sugar())
	err := s.Insert(context.Background(), "no_such_table", []struct{}{})
	if !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestCountRejectsUnknownTable(t *testing.T) {
	s := NewSQL(nil, zap.NewNop().Sugar())
	if _, err := s.Count(context.Background(), "no_such_table"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestInsertEmptySliceIsNoOp(t *testing.T) {
	// nil db: any statement execution would panic, so success proves no-op
	s := NewSQL(nil, zap.NewNop().Sugar())
	if err := s.Insert(context.Background(), "users", []struct{}{}); err != nil {
		t.Fatalf("empty insert must succeed without touching the database: %v", err)
	}
}

func TestRowCountRequiresSlice(t *testing.T) {
	if _, err := rowCount(42); err == nil {
		t.Fatalf("expected an error for non-slice rows")
	}
	n, err := rowCount([]int{1, 2, 3})
	if err != nil || n != 3 {
		t.Fatalf("expected 3 rows, got %d (%v)", n, err)
	}
}
