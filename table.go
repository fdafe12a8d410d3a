/*
Package datagrid lays out large tables inside a fixed-size container
without touching every row.

A Table holds the layout state of one grid: the container dimensions, the
resolved columns and the measurement cache. Hosts feed it events through
Update and ask it for the cells of the current viewport with Frame. Only
cells intersecting the viewport are produced, so the cost of a frame is
bounded by the viewport size rather than the number of rows.

The widget and widget/material packages present a Table with Gio.
*/
package datagrid

import (
	"image"

	"github.com/sirupsen/logrus"

	"git.sr.ht/~gioverse/datagrid/column"
	"git.sr.ht/~gioverse/datagrid/dims"
	"git.sr.ht/~gioverse/datagrid/grid"
	"git.sr.ht/~gioverse/datagrid/metrics"
	"git.sr.ht/~gioverse/datagrid/selection"
)

const (
	// DefaultRowHeight is the row height in pixels used when
	// Table.RowHeight is not positive.
	DefaultRowHeight = 54
	// DefaultSelectionWidth is the width in pixels of the selection column
	// used when Table.SelectionWidth is not positive.
	DefaultSelectionWidth = 48
)

// Event is a change of one of the inputs of a Table.
type Event interface {
	isEvent()
}

// Resize reports a new container size, as observed by the host.
type Resize struct {
	Width, Height int
}

// SetColumns replaces the column descriptors.
type SetColumns[T any] struct {
	Columns []column.Column[T]
}

// SetRows replaces the rows. The rows must already be sorted and filtered.
type SetRows[T any] struct {
	Rows []T
}

// SetSelection replaces the selection facade. A nil Selection disables
// the selection column.
type SetSelection[T any] struct {
	Selection *selection.Facade[T]
}

func (Resize) isEvent()          {}
func (SetColumns[T]) isEvent()   {}
func (SetRows[T]) isEvent()      {}
func (SetSelection[T]) isEvent() {}

// Table is the layout state of a windowed grid of rows of type T.
type Table[T any] struct {
	// RowHeight is the fixed height of every row in pixels. Defaults to
	// DefaultRowHeight.
	RowHeight int
	// SelectionWidth is the width of the selection column in pixels.
	// Defaults to DefaultSelectionWidth.
	SelectionWidth int
	// Logger receives warnings about degraded layouts. Defaults to the
	// logrus standard logger.
	Logger logrus.FieldLogger
	// Metrics, if set, counts layout work.
	Metrics *metrics.Metrics

	columns   []column.Column[T]
	rows      []T
	selection *selection.Facade[T]

	observer   dims.Observer
	controller grid.Controller
	resolved   []column.Resolved[T]
	warning    error
	// dirty is set when the columns must be resolved again.
	dirty bool
	// selWidth is the selection column width of the last resolution.
	selWidth int
	// withheld is set while the container is degenerate.
	withheld bool
	header   []Cell
	cells    []Cell
}

// New constructs a Table presenting rows with the given columns.
func New[T any](columns []column.Column[T], rows []T) *Table[T] {
	return &Table[T]{
		columns: columns,
		rows:    rows,
		dirty:   true,
	}
}

// Update applies ev and brings the layout up to date. It reports whether
// the measurement cache was invalidated, which resets any cached column
// offsets. Events of an unknown type, or for a different row type, are
// ignored.
//
// Row changes never invalidate the cache. Changes to SelectionWidth take
// effect on the next event.
func (t *Table[T]) Update(ev Event) bool {
	switch ev := ev.(type) {
	case Resize:
		if _, changed := t.observer.Observe(image.Pt(ev.Width, ev.Height)); changed {
			t.dirty = true
		}
	case SetColumns[T]:
		t.columns = ev.Columns
		t.dirty = true
	case SetRows[T]:
		t.rows = ev.Rows
	case SetSelection[T]:
		if (t.selection == nil) != (ev.Selection == nil) {
			t.dirty = true
		}
		t.selection = ev.Selection
	default:
		return false
	}
	if t.selection != nil && t.selWidth != t.selectionWidth() {
		t.dirty = true
	}
	if !t.observer.Ready() {
		if !t.withheld {
			t.withheld = true
			t.logger().WithFields(logrus.Fields{
				"width":  t.observer.Dimensions().Width,
				"height": t.observer.Dimensions().Height,
			}).Debug("container has no area, withholding grid")
		}
		return false
	}
	t.withheld = false
	if !t.dirty {
		return false
	}
	t.dirty = false
	return t.resolve()
}

// resolve recomputes the resolved columns and hands the new layout inputs
// to the controller.
func (t *Table[T]) resolve() bool {
	d := t.observer.Dimensions()
	t.selWidth = t.selectionWidth()
	resolved, err := column.Resolve(t.columns, d.Width, t.selection != nil, t.selWidth)
	t.Metrics.Resolved(err != nil)
	if err != nil && t.warning == nil {
		t.logger().WithError(err).WithFields(logrus.Fields{
			"width":   d.Width,
			"columns": len(resolved),
		}).Warn("column layout truncated")
	}
	t.warning = err
	t.resolved = resolved

	keys := make([]string, len(resolved))
	for i, c := range resolved {
		keys[i] = string(c.Key)
	}
	if t.controller.OnInvalidate == nil {
		t.controller.OnInvalidate = t.invalidated
	}
	return t.controller.Observe(grid.Inputs{
		Width:     d.Width,
		Height:    d.Height,
		Columns:   len(resolved),
		Identity:  grid.Fingerprint(keys...),
		Widths:    grid.FingerprintInts(column.Widths(resolved)...),
		Selection: t.selection != nil,
	})
}

func (t *Table[T]) invalidated(in grid.Inputs) {
	t.Metrics.Invalidated()
	t.logger().WithFields(logrus.Fields{
		"width":   in.Width,
		"height":  in.Height,
		"columns": in.Columns,
	}).Debug("grid measurements invalidated")
}

// Invalidate discards the measurement cache immediately.
func (t *Table[T]) Invalidate() {
	t.controller.Invalidate()
}

// Ready reports whether the container has an area. Nothing should be
// painted while it does not.
func (t *Table[T]) Ready() bool {
	return t.observer.Ready()
}

// Dimensions returns the container dimensions.
func (t *Table[T]) Dimensions() dims.Dimensions {
	return t.observer.Dimensions()
}

// Columns returns the resolved columns. The slice must not be modified.
func (t *Table[T]) Columns() []column.Resolved[T] {
	return t.resolved
}

// Rows returns the rows.
func (t *Table[T]) Rows() []T {
	return t.rows
}

// Selection returns the selection facade, or nil if selection is disabled.
func (t *Table[T]) Selection() *selection.Facade[T] {
	return t.selection
}

// Warning returns the *column.OverSubscribedError of the last resolution,
// if any.
func (t *Table[T]) Warning() error {
	return t.warning
}

// Controller exposes the invalidation state.
func (t *Table[T]) Controller() *grid.Controller {
	return &t.controller
}

// ContentHeight returns the height of all rows.
func (t *Table[T]) ContentHeight() int {
	return len(t.rows) * t.rowHeight()
}

func (t *Table[T]) rowHeight() int {
	if t.RowHeight > 0 {
		return t.RowHeight
	}
	return DefaultRowHeight
}

func (t *Table[T]) selectionWidth() int {
	if t.SelectionWidth > 0 {
		return t.SelectionWidth
	}
	return DefaultSelectionWidth
}

func (t *Table[T]) logger() logrus.FieldLogger {
	if t.Logger != nil {
		return t.Logger
	}
	return logrus.StandardLogger()
}
