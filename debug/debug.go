/*
Package debug provides tools for debugging grid layout code.
*/
package debug

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	// Black outlines ordinary cells.
	Black = color.NRGBA{A: 255}
	// Red outlines cells whose row has no value for the column.
	Red = color.NRGBA{R: 255, A: 255}
)

// Outline traces a one pixel black outline around the provided widget.
func Outline(gtx C, w layout.Widget) D {
	return OutlineColor(gtx, Black, w)
}

// OutlineColor traces a one pixel outline of color c around the provided
// widget.
func OutlineColor(gtx C, c color.NRGBA, w layout.Widget) D {
	return widget.Border{
		Color: c,
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}
