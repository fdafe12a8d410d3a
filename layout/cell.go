package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Place lays out w with exactly the size of r, offset to r.Min and clipped
// to r. Nothing is laid out for an empty r.
func Place(gtx C, r image.Rectangle, w layout.Widget) D {
	if r.Empty() {
		return D{}
	}
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	size := r.Size()
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	w(gtx)
	return D{Size: size}
}

// DividerStyle paints a horizontal rule along the bottom edge of the
// available space.
type DividerStyle struct {
	Color color.NRGBA
	Width unit.Dp
}

// Divider configures a one pixel rule.
func Divider(c color.NRGBA) DividerStyle {
	return DividerStyle{
		Color: c,
		Width: unit.Dp(1),
	}
}

// Layout the divider. It occupies no space.
func (d DividerStyle) Layout(gtx C) D {
	if d.Color.A == 0 {
		return D{}
	}
	w := gtx.Dp(d.Width)
	if w <= 0 {
		return D{}
	}
	size := gtx.Constraints.Max
	r := image.Rect(0, size.Y-w, size.X, size.Y)
	paint.FillShape(gtx.Ops, d.Color, clip.Rect(r).Op())
	return D{}
}
