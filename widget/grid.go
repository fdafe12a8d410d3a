package widget

import (
	"image"
	"math"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/widget"
	lru "github.com/hashicorp/golang-lru/v2"

	"git.sr.ht/~gioverse/datagrid/column"
	"git.sr.ht/~gioverse/datagrid/grid"
	"git.sr.ht/~gioverse/datagrid/selection"
)

const (
	// DefaultRowStates is the minimum number of per-row states a Grid
	// keeps.
	DefaultRowStates = 64
	// DefaultRetain is the default multiple of the visible rows whose
	// state a Grid keeps.
	DefaultRetain = 3
)

// Grid holds persistent state for a scrollable data grid.
//
// Per-row state is allocated on demand and evicted least recently used
// first once more than Retain times the visible rows hold state, so the
// memory held by a Grid does not grow with the number of rows.
type Grid struct {
	// Scrollbar is the state of the vertical scrollbar.
	Scrollbar widget.Scrollbar
	// Retain is the multiple of the visible rows whose state is kept.
	// Defaults to DefaultRetain.
	Retain int

	vertical   gesture.Scroll
	horizontal gesture.Scroll
	offset     image.Point
	content    image.Point
	viewport   image.Point
	// thickness is the width of the scrollbar as laid out in the previous
	// frame.
	thickness int
	rows      *lru.Cache[selection.Key, *RowState]
	headers   map[column.Key]*widget.Clickable
}

// Update processes the scroll input received since the last frame for a
// viewport of the given size over content of the given size. It must be
// called before the grid is laid out.
func (g *Grid) Update(gtx layout.Context, viewport, content image.Point) {
	g.viewport = viewport
	g.content = content
	g.offset.Y += g.vertical.Scroll(gtx.Metric, gtx.Queue, gtx.Now, gesture.Vertical)
	g.offset.X += g.horizontal.Scroll(gtx.Metric, gtx.Queue, gtx.Now, gesture.Horizontal)
	if d := g.Scrollbar.ScrollDistance(); d != 0 {
		g.offset.Y += int(math.Round(float64(d * float32(content.Y))))
	}
	g.clamp()
}

// Add registers the scroll gestures over the current clip area.
func (g *Grid) Add(gtx layout.Context) {
	limit := grid.MaxScroll(g.content.Y, g.viewport.Y)
	g.vertical.Add(gtx.Ops, image.Rect(0, -g.offset.Y, 0, limit-g.offset.Y))
	limit = grid.MaxScroll(g.content.X, g.viewport.X)
	g.horizontal.Add(gtx.Ops, image.Rect(-g.offset.X, 0, limit-g.offset.X, 0))
}

// Viewport returns the area of the content to present.
func (g *Grid) Viewport() grid.Viewport {
	return grid.Viewport{
		ScrollX: g.offset.X,
		ScrollY: g.offset.Y,
		Width:   g.viewport.X,
		Height:  g.viewport.Y,
	}
}

// Offset returns the scroll offset in pixels.
func (g *Grid) Offset() image.Point {
	return g.offset
}

// ScrollTo scrolls vertically to y pixels from the top of the content.
func (g *Grid) ScrollTo(y int) {
	g.offset.Y = y
	g.clamp()
}

// ScrollBy scrolls by the given number of pixels.
func (g *Grid) ScrollBy(dx, dy int) {
	g.offset = g.offset.Add(image.Pt(dx, dy))
	g.clamp()
}

// Settle records the offset the grid was actually presented at, which may
// differ from the requested one when the content shrank.
func (g *Grid) Settle(offset image.Point) {
	g.offset = offset
}

func (g *Grid) clamp() {
	if g.content == (image.Point{}) {
		return
	}
	g.offset.X = grid.Clamp(g.offset.X, g.content.X, g.viewport.X)
	g.offset.Y = grid.Clamp(g.offset.Y, g.content.Y, g.viewport.Y)
}

// Thickness returns the scrollbar width measured in the previous frame,
// or zero before the scrollbar was first laid out.
func (g *Grid) Thickness() int {
	return g.thickness
}

// Measured records the width of the scrollbar as laid out.
func (g *Grid) Measured(thickness int) {
	g.thickness = thickness
}

// Row returns the state of the row identified by key, allocating it if
// necessary.
func (g *Grid) Row(key selection.Key) *RowState {
	if g.rows == nil {
		// lru.New only fails for a non-positive size.
		g.rows, _ = lru.New[selection.Key, *RowState](DefaultRowStates)
	}
	if s, ok := g.rows.Get(key); ok {
		return s
	}
	s := &RowState{}
	g.rows.Add(key, s)
	return s
}

// Compact bounds the retained row state to a multiple of the visible
// rows. It returns the number of evicted states.
func (g *Grid) Compact(visible int) int {
	if g.rows == nil {
		return 0
	}
	retain := g.Retain
	if retain <= 0 {
		retain = DefaultRetain
	}
	return g.rows.Resize(max(visible*retain, DefaultRowStates))
}

// Retained returns the number of rows holding state.
func (g *Grid) Retained() int {
	if g.rows == nil {
		return 0
	}
	return g.rows.Len()
}

// Header returns the click state of the header of the column identified
// by key.
func (g *Grid) Header(key column.Key) *widget.Clickable {
	if g.headers == nil {
		g.headers = make(map[column.Key]*widget.Clickable)
	}
	c, ok := g.headers[key]
	if !ok {
		c = &widget.Clickable{}
		g.headers[key] = c
	}
	return c
}
