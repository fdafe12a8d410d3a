/*
Package grid holds the measurement state of a windowed grid: which rows
and columns intersect the viewport, where each column starts, and when that
knowledge must be thrown away.
*/
package grid

// Range is a half-open range of indices [First, End).
type Range struct {
	First, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End < r.First {
		return 0
	}
	return r.End - r.First
}

// Contains reports whether i lies within the range.
func (r Range) Contains(i int) bool {
	return i >= r.First && i < r.End
}

// Viewport is the visible window onto the grid content, in pixels.
type Viewport struct {
	// ScrollX and ScrollY are the offsets of the viewport from the
	// top-left corner of the content.
	ScrollX, ScrollY int
	// Width and Height are the size of the viewport.
	Width, Height int
}

// Rows returns the range of rows of height rowHeight intersecting the
// vertical interval [scrollY, scrollY+height). At most
// ceil(height/rowHeight)+1 rows are returned, however large count is.
func Rows(count, rowHeight, scrollY, height int) Range {
	if count <= 0 || rowHeight <= 0 || height <= 0 {
		return Range{}
	}
	if scrollY < 0 {
		scrollY = 0
	}
	first := scrollY / rowHeight
	if first >= count {
		return Range{First: count, End: count}
	}
	end := (scrollY + height + rowHeight - 1) / rowHeight
	if end > count {
		end = count
	}
	return Range{First: first, End: end}
}

// MaxScroll returns the largest useful scroll offset for content of the
// given extent inside a viewport of the given size.
func MaxScroll(content, viewport int) int {
	if content <= viewport {
		return 0
	}
	return content - viewport
}

// Clamp limits a scroll offset to [0, MaxScroll(content, viewport)].
func Clamp(scroll, content, viewport int) int {
	if max := MaxScroll(content, viewport); scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
