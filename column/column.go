/*
Package column describes the columns of a data grid and distributes the
available horizontal space among them.

Columns with an explicit Width keep it. The space left over is split evenly
among the remaining columns, and the last of them absorbs the integer
rounding remainder so that the resolved widths always add up to the
available width.
*/
package column

import (
	"gioui.org/text"
)

// Key uniquely and stably identifies a column.
type Key string

// SelectionKey is the key of the synthetic selection column injected by
// Resolve when selection is enabled.
const SelectionKey = Key("$selection")

// Accessor extracts the value of a column from a row. It reports false
// when the row has no such field, in which case the cell is left empty.
type Accessor[T any] func(row T) (value any, ok bool)

// Formatter transforms an extracted value into the text shown in a cell.
type Formatter[T any] func(value any, row T, rowIndex int) string

// Column describes a single column of a grid of rows of type T.
type Column[T any] struct {
	// Key identifies the column. Keys must be unique within a grid.
	Key Key
	// Title is the human readable column title.
	Title string
	// DataField names the field of the row that the column presents.
	// It is informational when Value is set, and is used by Field
	// to build an accessor otherwise.
	DataField string
	// Width is the explicit width of the column in pixels. Zero means
	// the column has no explicit width and will receive a share of the
	// remaining space.
	Width int
	// Align is the horizontal alignment of the cell content.
	Align text.Alignment
	// Value extracts the cell value from a row. A nil Value renders
	// every cell of the column empty.
	Value Accessor[T]
	// Format optionally transforms the extracted value for display. If
	// nil, the value is shown as-is.
	Format Formatter[T]
	// Meta carries sort and filter metadata for the table chrome. It is
	// never interpreted by this module.
	Meta any
}

// Fixed reports whether the column has an explicit width.
func (c Column[T]) Fixed() bool {
	return c.Width > 0
}

// Resolved is a column whose Width is a concrete pixel width.
type Resolved[T any] struct {
	Column[T]
	// Selection is true for the synthetic selection column.
	Selection bool
}

// Keys returns the keys of the columns in order.
func Keys[T any](cols []Resolved[T]) []Key {
	keys := make([]Key, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	return keys
}

// Widths returns the resolved widths of the columns in order.
func Widths[T any](cols []Resolved[T]) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.Width
	}
	return widths
}

// Equal reports whether a and b resolve to the same keys and widths.
func Equal[T any](a, b []Resolved[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || a[i].Width != b[i].Width || a[i].Selection != b[i].Selection {
			return false
		}
	}
	return true
}
