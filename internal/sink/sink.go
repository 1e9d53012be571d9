// Package sink is the generic record sink the generators write through:
// a named table plus a slice of rows, appended in bulk. Failures are
// recoverable by contract; callers log and move on.
package sink

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownTable marks writes or counts against a table outside the
// generated schema.
var ErrUnknownTable = errors.New("unknown table")

// Sink accepts row sets for named tables and answers row-count queries.
// Insert appends; there is no upsert and no cross-table transaction.
type Sink interface {
	Insert(ctx context.Context, table string, rows any) error
	Count(ctx context.Context, table string) (int64, error)
}

// rowCount reports the length of a rows argument, which must be a slice.
func rowCount(rows any) (int, error) {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice {
		return 0, fmt.Errorf("rows must be a slice, got %T", rows)
	}
	return v.Len(), nil
}

// sliceChunk returns rows[lo:hi] as an any for the named-exec binder.
func sliceChunk(rows any, lo, hi int) any {
	return reflect.ValueOf(rows).Slice(lo, hi).Interface()
}
