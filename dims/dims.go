// Package dims turns a stream of container sizes into a stable pair of
// dimensions.
package dims

import "image"

// Dimensions is the size of a container in pixels.
type Dimensions struct {
	Width, Height int
}

// Ready reports whether both dimensions are positive. Grids must not be
// laid out in a container that is not ready.
func (d Dimensions) Ready() bool {
	return d.Width > 0 && d.Height > 0
}

// Point returns the dimensions as an image.Point.
func (d Dimensions) Point() image.Point {
	return image.Pt(d.Width, d.Height)
}

// Observer tracks the size of a container across resize notifications.
// Its zero value is ready to use and reports zero, not ready, dimensions.
//
// Observe may be called any number of times during a frame; only sizes that
// differ from the last emitted one are emitted. A container that collapses
// to (0,0), as a minimised or hidden window does, is emitted once and reads
// as not ready; further (0,0) sizes are dropped.
type Observer struct {
	// OnChange, if set, is invoked with every emitted size.
	OnChange func(Dimensions)

	last Dimensions
}

// Observe records a size notification. It returns the current dimensions
// and whether they changed.
func (o *Observer) Observe(size image.Point) (Dimensions, bool) {
	next := Dimensions{Width: size.X, Height: size.Y}
	if next == o.last {
		return o.last, false
	}
	o.last = next
	if o.OnChange != nil {
		o.OnChange(next)
	}
	return next, true
}

// Dimensions returns the most recently emitted dimensions.
func (o *Observer) Dimensions() Dimensions {
	return o.last
}

// Ready reports whether the most recently emitted dimensions are ready.
func (o *Observer) Ready() bool {
	return o.last.Ready()
}
