package normalize

import (
	"fmt"

	"github.com/vvka-141/pgload/internal/dataset"
	"github.com/vvka-141/pgload/internal/schema"
	"github.com/vvka-141/pgload/pkg/pgload"
)

// Result is a cleaned dataset: columns reduced and reordered to exactly
// the schema's column order, every cell either nil or a value matching
// its column's TypeClass. Row order and row count match the input.
//
// Rows is shaped for pgx.CopyFromRows: one []any per input record, in
// schema column order, with nil marking NULL.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of cleaned rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// NullCount returns how many rows have NULL in the given column position.
func (r *Result) NullCount(col int) int {
	n := 0
	for _, row := range r.Rows {
		if row[col] == nil {
			n++
		}
	}
	return n
}

// Normalize projects and coerces raw records into schema conformance:
//
//  1. Column projection: exactly the schema's columns, in schema order.
//     Raw columns not named by the schema are dropped silently. A schema
//     column absent from the raw header is fatal (pgload.ErrMissingColumn).
//  2. Sentinel replacement: cells equal to "" or the missing-value
//     sentinel become NULL before any coercion.
//  3. Type coercion per column TypeClass; value-level failures degrade
//     to NULL, never to an error.
//
// The transform never drops or adds rows.
func Normalize(ds *dataset.Dataset, sch *schema.Schema) (*Result, error) {
	positions := make([]int, len(sch.Columns))
	for i, col := range sch.Columns {
		pos, ok := ds.ColumnIndex(col.Name)
		if !ok {
			return nil, fmt.Errorf("column %q declared in table %q is absent from the csv header: %w",
				col.Name, sch.Table, pgload.ErrMissingColumn)
		}
		positions[i] = pos
	}

	result := &Result{
		Columns: sch.ColumnNames(),
		Rows:    make([][]any, len(ds.Records)),
	}

	for r, record := range ds.Records {
		row := make([]any, len(sch.Columns))
		for c, col := range sch.Columns {
			raw := record[positions[c]]
			if isMissing(raw) {
				row[c] = nil
				continue
			}
			row[c] = coerceValue(raw, col.Type)
		}
		result.Rows[r] = row
	}

	return result, nil
}

// isMissing reports whether a raw cell is a missing-value sentinel.
func isMissing(raw string) bool {
	return raw == "" || raw == pgload.MissingValueSentinel
}
