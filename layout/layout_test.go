package layout

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func newContext() (layout.Context, *op.Ops) {
	var ops op.Ops
	return layout.NewContext(&ops, system.FrameEvent{
		Now: time.Now(),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Size: image.Pt(1000, 1000),
	}), &ops
}

func TestStripe(t *testing.T) {
	even := color.NRGBA{R: 1, A: 255}
	odd := color.NRGBA{G: 1, A: 255}
	s := Stripe{Even: even, Odd: odd}
	for i, want := range []color.NRGBA{even, odd, even, odd} {
		if got := color.NRGBA(s.Row(i)); got != want {
			t.Errorf("row %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestPlace(t *testing.T) {
	gtx, _ := newContext()
	for _, tc := range []struct {
		name   string
		rect   image.Rectangle
		called bool
	}{
		{name: "visible", rect: image.Rect(10, 20, 110, 74), called: true},
		{name: "partially scrolled out", rect: image.Rect(-27, -27, 73, 27), called: true},
		{name: "zero width", rect: image.Rect(10, 20, 10, 74)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got image.Point
			called := false
			dims := Place(gtx, tc.rect, func(gtx C) D {
				called = true
				got = gtx.Constraints.Min
				return D{Size: gtx.Constraints.Max}
			})
			if called != tc.called {
				t.Fatalf("expected called=%v, got %v", tc.called, called)
			}
			if !called {
				return
			}
			if got != tc.rect.Size() {
				t.Errorf("expected exact constraints %v, got %v", tc.rect.Size(), got)
			}
			if dims.Size != tc.rect.Size() {
				t.Errorf("expected dimensions %v, got %v", tc.rect.Size(), dims.Size)
			}
		})
	}
}

func TestBackgroundAndDivider(t *testing.T) {
	gtx, _ := newContext()
	gtx.Constraints = layout.Exact(image.Pt(100, 54))
	dims := Background(color.NRGBA{A: 255}).Layout(gtx, func(gtx C) D {
		return D{Size: gtx.Constraints.Min}
	})
	if dims.Size != image.Pt(100, 54) {
		t.Errorf("background should report the widget size, got %v", dims.Size)
	}
	if d := Divider(color.NRGBA{A: 255}).Layout(gtx); d.Size != (image.Point{}) {
		t.Errorf("divider should occupy no space, got %v", d.Size)
	}
	dims = Gutter().Layout(gtx, nil, func(gtx C) D {
		return D{Size: image.Pt(10, 10)}
	}, func(gtx C) D {
		return D{Size: image.Pt(16, 16)}
	})
	if dims.Size.X != 100 {
		t.Errorf("gutter should fill the width, got %v", dims.Size)
	}
}
