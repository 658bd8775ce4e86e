// Package frame provides the column-ordered table that search responses are
// parsed into and that the assembled dataset is delivered as. Cells are one of
// nil, int64, float64, string, or time.Time.
package frame

import (
	"sort"
	"strconv"
	"time"
)

// Row maps column name to cell value. A missing key reads as nil.
type Row map[string]any

// Table is an ordered set of columns over a slice of rows
type Table struct {
	cols []string
	rows []Row
}

// New creates an empty table with the given column order
func New(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// FromRows creates a table from explicit columns and rows (test helper and
// assembler input)
func FromRows(cols []string, rows []Row) *Table {
	return &Table{
		cols: append([]string(nil), cols...),
		rows: rows,
	}
}

// Columns returns the column names in order
func (t *Table) Columns() []string {
	return t.cols
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Row returns row i
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns the underlying row slice
func (t *Table) Rows() []Row {
	return t.rows
}

// Append adds a row to the table
func (t *Table) Append(r Row) {
	t.rows = append(t.rows, r)
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn registers a column at the end of the order if not present
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.cols = append(t.cols, name)
	}
}

// MoveToFront reorders the columns so name comes first
func (t *Table) MoveToFront(name string) {
	out := make([]string, 0, len(t.cols))
	out = append(out, name)
	for _, c := range t.cols {
		if c != name {
			out = append(out, c)
		}
	}
	t.cols = out
}

// RenameColumn renames a column in the order and in every row
func (t *Table) RenameColumn(old, new string) {
	for i, c := range t.cols {
		if c == old {
			t.cols[i] = new
		}
	}
	for _, r := range t.rows {
		if v, ok := r[old]; ok {
			r[new] = v
			delete(r, old)
		}
	}
}

// FillNull replaces nil (or absent) cells with val in the given columns only
func (t *Table) FillNull(val any, cols ...string) {
	for _, r := range t.rows {
		for _, c := range cols {
			if !t.HasColumn(c) {
				continue
			}
			if v, ok := r[c]; !ok || v == nil {
				r[c] = val
			}
		}
	}
}

// SortBy stable-sorts rows ascending by the given key columns
func (t *Table) SortBy(keys ...string) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		for _, k := range keys {
			c := CompareCells(t.rows[i][k], t.rows[j][k])
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// Concat outer-unions tables into one: columns in first-seen order, rows in
// input order, missing cells null
func Concat(tables ...*Table) *Table {
	out := &Table{}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.cols {
			out.AddColumn(c)
		}
		out.rows = append(out.rows, t.rows...)
	}
	return out
}

// CompareCells orders two cells: nil first, then numbers, then times, then
// strings. Numbers compare numerically across int64/float64. The cross-type
// rule exists only to keep sorts deterministic; sort keys are numeric in
// practice.
func CompareCells(a, b any) int {
	ra, rb := cellRank(a), cellRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 0: // both nil
		return 0
	case 1: // numbers
		fa, fb := asFloat(a), asFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case 2: // times
		ta, tb := a.(time.Time), b.(time.Time)
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		}
		return 0
	default: // strings
		sa, sb := a.(string), b.(string)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	}
}

func cellRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case int64, float64:
		return 1
	case time.Time:
		return 2
	default:
		return 3
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// Float reads a cell as float64, converting int64. ok is false for nil,
// absent, or non-numeric cells.
func Float(r Row, col string) (float64, bool) {
	switch n := r[col].(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// String reads a cell as its string value, ok false when not a string
func String(r Row, col string) (string, bool) {
	s, ok := r[col].(string)
	return s, ok
}

// FormatCell renders a cell for composite keys and console output.
// nil renders as the empty string.
func FormatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case string:
		return c
	case time.Time:
		return c.Format(time.RFC3339)
	}
	return ""
}
