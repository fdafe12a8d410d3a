package datagrid

import (
	"fmt"
	"image"
	"strconv"

	"gioui.org/text"

	"git.sr.ht/~gioverse/datagrid/column"
	"git.sr.ht/~gioverse/datagrid/grid"
	"git.sr.ht/~gioverse/datagrid/selection"
)

// Cell is a single visible cell of a Frame.
type Cell struct {
	// Row and Col index the row slice and the resolved columns.
	Row, Col int
	// Key identifies the row.
	Key selection.Key
	// Rect is the painted area of the cell relative to the top-left
	// corner of the viewport.
	Rect image.Rectangle
	// Text is the display text of the cell.
	Text  string
	Align text.Alignment
	// Selection marks cells of the selection column, whose state is in
	// Checked.
	Selection bool
	Checked   bool
	// Missing is set when the row has no value for the column.
	Missing bool
}

// Frame is the visible part of a grid for one viewport.
type Frame struct {
	// Rows and Cols are the visible index ranges.
	Rows, Cols grid.Range
	// Header holds one cell per visible column, carrying the column title.
	// Header cells have a zero height; the caller decides how tall the
	// header is.
	Header []Cell
	// Cells holds every visible cell, row by row.
	Cells []Cell
	// Scrollbar reports whether the rows overflow the viewport
	// vertically.
	Scrollbar bool
	// Content is the size of the whole grid content.
	Content image.Point
	// Scroll is the viewport offset after clamping to the content.
	Scroll image.Point
}

// Frame computes the cells intersecting vp. A zero vp.Width or vp.Height
// means the full container dimensions. scrollbar is the measured
// thickness of the vertical scrollbar; it may be zero until the scrollbar
// has been laid out once.
//
// When the rows overflow the viewport, the last column is painted
// scrollbar pixels narrower so that it does not sit under the scrollbar
// track.
//
// The Header and Cells slices of the returned frame are reused by the next
// call.
func (t *Table[T]) Frame(vp grid.Viewport, scrollbar int) Frame {
	if !t.Ready() || len(t.resolved) == 0 {
		return Frame{}
	}
	d := t.Dimensions()
	if vp.Width <= 0 {
		vp.Width = d.Width
	}
	if vp.Height <= 0 {
		vp.Height = d.Height
	}
	var (
		rh       = t.rowHeight()
		resolved = t.resolved
		last     = len(resolved) - 1
		cache    = t.controller.Cache(len(resolved), t.columnWidth)
		content  = image.Pt(cache.Total(), len(t.rows)*rh)
		f        = Frame{
			Content:   content,
			Scrollbar: content.Y > vp.Height,
		}
	)
	vp.ScrollX = grid.Clamp(vp.ScrollX, content.X, vp.Width)
	vp.ScrollY = grid.Clamp(vp.ScrollY, content.Y, vp.Height)
	f.Scroll = image.Pt(vp.ScrollX, vp.ScrollY)
	f.Rows = grid.Rows(len(t.rows), rh, vp.ScrollY, vp.Height)
	f.Cols = cache.Span(vp.ScrollX, vp.Width)

	width := func(c int) int {
		w := cache.Width(c)
		if c == last && f.Scrollbar {
			w = max(w-scrollbar, 0)
		}
		return w
	}

	t.header = t.header[:0]
	for c := f.Cols.First; c < f.Cols.End; c++ {
		col := resolved[c]
		x := cache.Offset(c) - vp.ScrollX
		t.header = append(t.header, Cell{
			Row:       -1,
			Col:       c,
			Rect:      image.Rect(x, 0, x+width(c), 0),
			Text:      col.Title,
			Align:     col.Align,
			Selection: col.Selection,
		})
	}
	f.Header = t.header

	t.cells = t.cells[:0]
	for r := f.Rows.First; r < f.Rows.End; r++ {
		row := t.rows[r]
		key := t.rowKey(row, r)
		y := r*rh - vp.ScrollY
		for c := f.Cols.First; c < f.Cols.End; c++ {
			col := resolved[c]
			x := cache.Offset(c) - vp.ScrollX
			w := width(c)
			cell := Cell{
				Row:       r,
				Col:       c,
				Key:       key,
				Rect:      image.Rect(x, y, x+w, y+rh),
				Align:     col.Align,
				Selection: col.Selection,
			}
			if col.Selection {
				cell.Checked = t.selection.Checked(row, r)
			} else {
				var ok bool
				cell.Text, ok = cellText(col, row, r)
				cell.Missing = !ok
			}
			t.cells = append(t.cells, cell)
		}
	}
	f.Cells = t.cells
	t.Metrics.Painted(len(f.Cells), cache.Measured())
	return f
}

// columnWidth reports the resolved width of column i. It reads the
// current resolution so that a rebuilt cache never sees stale widths.
func (t *Table[T]) columnWidth(i int) int {
	return t.resolved[i].Width
}

func (t *Table[T]) rowKey(row T, index int) selection.Key {
	if t.selection != nil {
		return t.selection.KeyOf(row, index)
	}
	return selection.Key(strconv.Itoa(index))
}

// cellText extracts and formats the value of col for row. It reports
// false if the row has no value for the column.
func cellText[T any](col column.Resolved[T], row T, index int) (string, bool) {
	if col.Value == nil {
		return "", false
	}
	v, ok := col.Value(row)
	if !ok {
		return "", false
	}
	if col.Format != nil {
		return col.Format(v, row, index), true
	}
	if v == nil {
		return "", true
	}
	return fmt.Sprint(v), true
}
