// Package frame provides a small column-indexed in-memory table with
// explicit missing-value semantics, suitable for survey-style CSV data.
package frame

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

type kind uint8

const (
	kindNull kind = iota
	kindText
	kindNum
)

// Value is a single cell: missing, text, or numeric.
// The zero Value is missing.
type Value struct {
	kind kind
	s    string
	f    float64
}

// Null returns the missing-value marker.
func Null() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: kindText, s: s} }

// Num returns a numeric value.
func Num(f float64) Value { return Value{kind: kindNum, f: f} }

// IsNull reports whether the value is missing.
func (v Value) IsNull() bool { return v.kind == kindNull }

// IsNum reports whether the value holds a number.
func (v Value) IsNum() bool { return v.kind == kindNum }

// Float returns the numeric value. ok is false for missing and text values.
func (v Value) Float() (float64, bool) {
	if v.kind != kindNum {
		return 0, false
	}
	return v.f, true
}

// String returns the text form of the value: the raw text, the formatted
// number, or "" for missing. Non-text values are always coercible this way,
// so string transforms never fail on them.
func (v Value) String() string {
	switch v.kind {
	case kindText:
		return v.s
	case kindNum:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return ""
	}
}

// AsNum coerces the value to numeric: numbers pass through, parseable text
// becomes a number, and everything else becomes missing.
func (v Value) AsNum() Value {
	switch v.kind {
	case kindNum:
		return v
	case kindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return Null()
		}
		return Num(f)
	default:
		return Null()
	}
}

// Frame is an immutable-by-convention table: every transform returns a new
// Frame and leaves its input untouched.
type Frame struct {
	cols []string
	idx  map[string]int
	rows [][]Value
}

// New creates an empty frame with the given column names.
func New(cols []string) *Frame {
	f := &Frame{
		cols: append([]string(nil), cols...),
		idx:  make(map[string]int, len(cols)),
	}
	for i, c := range f.cols {
		f.idx[c] = i
	}
	return f
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.idx[name]
	return ok
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.rows) }

// AppendRow adds a row. The number of values must match the column count.
func (f *Frame) AppendRow(vals ...Value) error {
	if len(vals) != len(f.cols) {
		return eris.Errorf("frame: row has %d values, want %d", len(vals), len(f.cols))
	}
	f.rows = append(f.rows, append([]Value(nil), vals...))
	return nil
}

// At returns the cell at row i of the named column, or missing when the
// column does not exist.
func (f *Frame) At(i int, col string) Value {
	j, ok := f.idx[col]
	if !ok || i < 0 || i >= len(f.rows) {
		return Null()
	}
	return f.rows[i][j]
}

// Column returns all values of the named column in row order.
func (f *Frame) Column(name string) ([]Value, bool) {
	j, ok := f.idx[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[j]
	}
	return out, true
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := New(f.cols)
	out.rows = make([][]Value, len(f.rows))
	for i, row := range f.rows {
		out.rows[i] = append([]Value(nil), row...)
	}
	return out
}

// Select returns a new frame containing only the named columns, in the given
// order. Columns absent from the frame are skipped rather than treated as an
// error, so callers can project a superset of the schema.
func (f *Frame) Select(cols ...string) *Frame {
	var keep []string
	for _, c := range cols {
		if f.HasColumn(c) {
			keep = append(keep, c)
		}
	}
	out := New(keep)
	out.rows = make([][]Value, len(f.rows))
	for i := range f.rows {
		row := make([]Value, len(keep))
		for j, c := range keep {
			row[j] = f.rows[i][f.idx[c]]
		}
		out.rows[i] = row
	}
	return out
}

// WithColumn returns a copy of the frame with the named column replaced, or
// appended when it does not exist. vals must have one entry per row.
func (f *Frame) WithColumn(name string, vals []Value) (*Frame, error) {
	if len(vals) != len(f.rows) {
		return nil, eris.Errorf("frame: column %q has %d values, want %d", name, len(vals), len(f.rows))
	}
	out := f.Clone()
	if j, ok := out.idx[name]; ok {
		for i := range out.rows {
			out.rows[i][j] = vals[i]
		}
		return out, nil
	}
	out.cols = append(out.cols, name)
	out.idx[name] = len(out.cols) - 1
	for i := range out.rows {
		out.rows[i] = append(out.rows[i], vals[i])
	}
	return out, nil
}

// FilterRows returns a new frame containing only the rows for which keep
// returns true.
func (f *Frame) FilterRows(keep func(i int) bool) *Frame {
	out := New(f.cols)
	for i, row := range f.rows {
		if keep(i) {
			out.rows = append(out.rows, append([]Value(nil), row...))
		}
	}
	return out
}
