package main

import (
	"image/color"

	"gioui.org/widget"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// SortAscending marks the column the records are sorted by.
var SortAscending *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.NavigationArrowDropUp)
	return icon
}()

// SortDescending marks the column the records are reverse sorted by.
var SortDescending *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.NavigationArrowDropDown)
	return icon
}()

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Palette derives the grid colors from a single accent hue.
type Palette struct {
	Accent, Header, Even, Odd, Divider color.NRGBA
}

// NewPalette builds a palette around the given hue in degrees.
func NewPalette(hue float64) Palette {
	accent := colorful.Hcl(hue, 0.5, 0.5).Clamped()
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Palette{
		Accent:  ToNRGBA(accent),
		Header:  ToNRGBA(white.BlendLab(accent, 0.25).Clamped()),
		Even:    ToNRGBA(white),
		Odd:     ToNRGBA(white.BlendLab(accent, 0.06).Clamped()),
		Divider: ToNRGBA(white.BlendLab(accent, 0.4).Clamped()),
	}
}
