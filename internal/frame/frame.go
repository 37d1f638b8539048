package frame

import (
	"errors"
	"fmt"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/dtype"
)

var ErrRaggedRow = errors.New("row has a different number of cells than the header")

// Column is a named, ordered sequence of cell texts sharing a single kind.
type Column struct {
	Name  string
	Kind  dtype.Kind
	Cells []string
}

// Frame is an ordered collection of equal-length columns. It is the
// in-memory form of a structured dataset: loaded once, coerced in place,
// written once.
type Frame struct {
	Columns []Column
}

// New creates an empty frame with one column per header name.
func New(header []string) *Frame {
	f := &Frame{Columns: make([]Column, len(header))}
	for i, name := range header {
		f.Columns[i].Name = name
	}

	return f
}

// Rows returns the number of rows in the frame.
func (f *Frame) Rows() int {
	if len(f.Columns) == 0 {
		return 0
	}

	return len(f.Columns[0].Cells)
}

// Header returns the column names in order.
func (f *Frame) Header() []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}

	return names
}

// Record returns row i as a cell slice in column order.
func (f *Frame) Record(i int) []string {
	rec := make([]string, len(f.Columns))
	for c, col := range f.Columns {
		rec[c] = col.Cells[i]
	}

	return rec
}

// AppendRow appends one row of cells, one per column.
func (f *Frame) AppendRow(rec []string) error {
	if len(rec) != len(f.Columns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, len(rec), len(f.Columns))
	}

	for i, cell := range rec {
		f.Columns[i].Cells = append(f.Columns[i].Cells, cell)
	}

	return nil
}
