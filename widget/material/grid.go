package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~gioverse/datagrid"
	"git.sr.ht/~gioverse/datagrid/column"
	"git.sr.ht/~gioverse/datagrid/debug"
	gridlayout "git.sr.ht/~gioverse/datagrid/layout"
	gridwidget "git.sr.ht/~gioverse/datagrid/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// GridStyle configures the presentation of a data grid.
type GridStyle[T any] struct {
	// State holds the scroll and per-row state of the grid.
	State *gridwidget.Grid
	// Table holds the layout state of the grid.
	Table *datagrid.Table[T]
	// HeaderHeight is the height of the column header strip. The body
	// gets what remains of the container.
	HeaderHeight unit.Dp
	// RowHeight is the height of every row.
	RowHeight unit.Dp
	// CellInset pads the content of every cell.
	CellInset layout.Inset
	// Header configures column titles. Its text is replaced per column.
	Header material.LabelStyle
	// Cell configures cell text. Its text is replaced per cell.
	Cell material.LabelStyle
	// HeaderBg is the background of the header strip.
	HeaderBg color.NRGBA
	// Stripe alternates row backgrounds.
	Stripe gridlayout.Stripe
	// Divider is painted below the header and every row.
	Divider gridlayout.DividerStyle
	// SortIcon, if set, is displayed next to the title of SortColumn.
	SortIcon  *widget.Icon
	SortColumn column.Key
	// OnHeaderClick is invoked with the column whose header was clicked.
	// The grid does not sort; the host reorders rows in response.
	OnHeaderClick func(column.Resolved[T])
	// Scrollbar configures the vertical scrollbar.
	Scrollbar material.ScrollbarStyle
	// Debug outlines every cell.
	Debug bool

	theme *material.Theme
}

// Grid fills in a GridStyle with sensible defaults.
func Grid[T any](th *material.Theme, state *gridwidget.Grid, table *datagrid.Table[T]) GridStyle[T] {
	gs := GridStyle[T]{
		State:        state,
		Table:        table,
		HeaderHeight: unit.Dp(55),
		RowHeight:    unit.Dp(datagrid.DefaultRowHeight),
		CellInset: layout.Inset{
			Left:  unit.Dp(8),
			Right: unit.Dp(8),
		},
		Header:   material.Body2(th, ""),
		Cell:     material.Body2(th, ""),
		HeaderBg: component.WithAlpha(th.Fg, 20),
		Stripe: gridlayout.Stripe{
			Even: th.Bg,
			Odd:  component.WithAlpha(th.Fg, 8),
		},
		Divider:   gridlayout.Divider(component.WithAlpha(th.Fg, 40)),
		Scrollbar: material.Scrollbar(th, &state.Scrollbar),
		theme:     th,
	}
	gs.Header.Font.Weight = text.Bold
	gs.Header.MaxLines = 1
	gs.Cell.MaxLines = 1
	return gs
}

// Layout the grid to fill the maximum constraints. Nothing is painted
// while the container has no area.
func (g GridStyle[T]) Layout(gtx C) D {
	size := gtx.Constraints.Max
	header := gtx.Dp(g.HeaderHeight)
	body := image.Pt(size.X, max(size.Y-header, 0))
	if g.RowHeight > 0 {
		g.Table.RowHeight = gtx.Dp(g.RowHeight)
	}
	g.Table.Update(datagrid.Resize{Width: body.X, Height: body.Y})
	if !g.Table.Ready() {
		g.Table.Metrics.Withheld()
		return D{Size: gtx.Constraints.Min}
	}

	content := image.Pt(contentWidth(g.Table.Columns()), g.Table.ContentHeight())
	g.State.Update(gtx, body, content)
	f := g.Table.Frame(g.State.Viewport(), g.State.Thickness())
	g.State.Settle(f.Scroll)
	g.State.Compact(f.Rows.Len())

	g.layoutHeader(gtx, f, image.Pt(size.X, header))

	off := op.Offset(image.Pt(0, header)).Push(gtx.Ops)
	area := clip.Rect{Max: body}.Push(gtx.Ops)
	g.State.Add(gtx)
	g.layoutBody(gtx, f)
	if f.Scrollbar {
		g.layoutScrollbar(gtx, f, body)
	}
	area.Pop()
	off.Pop()
	return D{Size: size}
}

func (g GridStyle[T]) layoutHeader(gtx C, f datagrid.Frame, size image.Point) {
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	gridlayout.Background(g.HeaderBg).Layout(gtx, func(gtx C) D {
		return D{Size: size}
	})
	cols := g.Table.Columns()
	for _, h := range f.Header {
		h := h
		col := cols[h.Col]
		r := image.Rect(h.Rect.Min.X, 0, h.Rect.Max.X, size.Y)
		click := g.State.Header(col.Key)
		gridlayout.Place(gtx, r, func(gtx C) D {
			return g.outline(gtx, false, func(gtx C) D {
				if h.Selection {
					return D{Size: gtx.Constraints.Min}
				}
				return click.Layout(gtx, func(gtx C) D {
					return g.layoutTitle(gtx, h, col.Key)
				})
			})
		})
		for click.Clicked() {
			if g.OnHeaderClick != nil {
				g.OnHeaderClick(col)
			}
		}
	}
	gtx.Constraints = layout.Exact(size)
	g.Divider.Layout(gtx)
}

func (g GridStyle[T]) layoutTitle(gtx C, h datagrid.Cell, key column.Key) D {
	var icon layout.Widget
	if g.SortIcon != nil && key == g.SortColumn && key != "" {
		icon = func(gtx C) D {
			gtx.Constraints.Max = image.Pt(gtx.Dp(16), gtx.Dp(16))
			return g.SortIcon.Layout(gtx, g.Header.Color)
		}
	}
	gutter := gridlayout.Gutter()
	gutter.LeftWidth = g.CellInset.Left
	return gutter.Layout(gtx, nil, func(gtx C) D {
		l := g.Header
		l.Text = h.Text
		l.Alignment = h.Align
		return layout.W.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return l.Layout(gtx)
		})
	}, icon)
}

func (g GridStyle[T]) layoutBody(gtx C, f datagrid.Frame) {
	var (
		table = g.Table
		rows  = table.Rows()
		sel   = table.Selection()
	)
	for _, c := range f.Cells {
		c := c
		gridlayout.Place(gtx, c.Rect, func(gtx C) D {
			return g.Stripe.Row(c.Row).Layout(gtx, func(gtx C) D {
				g.Divider.Layout(gtx)
				return g.outline(gtx, c.Missing, func(gtx C) D {
					if c.Selection {
						return g.layoutCheck(gtx, c)
					}
					return g.layoutText(gtx, c)
				})
			})
		})
		if c.Selection && sel != nil {
			state := g.State.Row(c.Key)
			if state.Check.Changed() {
				sel.Toggle(rows[c.Row], c.Row)
				// The host owns the selection; repaint with whatever it
				// decided.
				op.InvalidateOp{}.Add(gtx.Ops)
			}
			state.Check.Value = c.Checked
		}
	}
}

func (g GridStyle[T]) layoutText(gtx C, c datagrid.Cell) D {
	l := g.Cell
	l.Text = c.Text
	l.Alignment = c.Align
	return g.CellInset.Layout(gtx, func(gtx C) D {
		return layout.W.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return l.Layout(gtx)
		})
	})
}

func (g GridStyle[T]) layoutCheck(gtx C, c datagrid.Cell) D {
	state := g.State.Row(c.Key)
	state.Check.Value = c.Checked
	return layout.Center.Layout(gtx, material.CheckBox(g.theme, &state.Check, "").Layout)
}

func (g GridStyle[T]) layoutScrollbar(gtx C, f datagrid.Frame, body image.Point) {
	start := float32(f.Scroll.Y) / float32(f.Content.Y)
	end := float32(f.Scroll.Y+body.Y) / float32(f.Content.Y)
	gtx.Constraints = layout.Constraints{Max: body}
	macro := op.Record(gtx.Ops)
	dims := g.Scrollbar.Layout(gtx, layout.Vertical, start, min(end, 1))
	call := macro.Stop()
	defer op.Offset(image.Pt(body.X-dims.Size.X, 0)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	g.State.Measured(dims.Size.X)
}

func (g GridStyle[T]) outline(gtx C, missing bool, w layout.Widget) D {
	if !g.Debug {
		return w(gtx)
	}
	if missing {
		return debug.OutlineColor(gtx, debug.Red, w)
	}
	return debug.Outline(gtx, w)
}

func contentWidth[T any](cols []column.Resolved[T]) int {
	total := 0
	for _, w := range column.Widths(cols) {
		total += w
	}
	return total
}
