package sink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// maxBindParams stays under the Postgres extended-protocol ceiling of
// 65535 bind parameters per statement.
const maxBindParams = 60000

// SQL is the PostgreSQL-backed Sink, appending row slices through
// multi-row named inserts.
type SQL struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewSQL(db *sqlx.DB, log *zap.SugaredLogger) *SQL {
	return &SQL{db: db, log: log}
}

// EnsureSchema creates any of the generated tables that do not exist yet.
// Existing tables are left untouched; there is no migration here.
func (s *SQL) EnsureSchema(ctx context.Context) error {
	for _, name := range tableOrder {
		spec := tables[name]
		var reg sql.NullString
		if err := s.db.QueryRowContext(ctx, "SELECT to_regclass($1)", "public."+name).Scan(&reg); err != nil {
			return fmt.Errorf("check table %s: %w", name, err)
		}
		if reg.Valid {
			continue
		}
		if _, err := s.db.ExecContext(ctx, spec.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
		s.log.Debugw("created table", "table", name)
	}
	return nil
}

// Insert appends rows to the named table. Rows must be a slice of the
// table's row struct; large slices are split so each statement stays under
// the bind parameter ceiling. An empty slice is a no-op.
func (s *SQL) Insert(ctx context.Context, table string, rows any) error {
	spec, ok := tables[table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	n, err := rowCount(rows)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	chunk := chunkSize(spec.columns)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if _, err := s.db.NamedExecContext(ctx, spec.insert, sliceChunk(rows, lo, hi)); err != nil {
			return fmt.Errorf("insert %s rows %d-%d: %w", table, lo, hi, err)
		}
	}
	return nil
}

// Count returns the current row count of the named table.
func (s *SQL) Count(ctx context.Context, table string) (int64, error) {
	if _, ok := tables[table]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	var count int64
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// chunkSize is how many rows of a table fit in one statement.
func chunkSize(columns int) int {
	return maxBindParams / columns
}
