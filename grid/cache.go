package grid

import "sort"

// Cache memoizes the pixel offset of each column of a windowed grid.
//
// Offsets are measured lazily: a query for column i measures every column
// up to i and no further. Reset discards all measurements.
type Cache struct {
	count    int
	width    func(i int) int
	offsets  []int
	measured int
}

// Reset discards all measurements and configures the cache for count
// columns whose widths are reported by width.
func (c *Cache) Reset(count int, width func(i int) int) {
	c.count = count
	c.width = width
	c.offsets = c.offsets[:0]
	c.measured = 0
}

// Len returns the number of columns.
func (c *Cache) Len() int {
	return c.count
}

// Measured returns how many columns have been measured since the last
// Reset.
func (c *Cache) Measured() int {
	return c.measured
}

// measure ensures columns [0, i] are measured.
func (c *Cache) measure(i int) {
	if i >= c.count {
		i = c.count - 1
	}
	for c.measured <= i {
		offset := 0
		if c.measured > 0 {
			prev := c.measured - 1
			offset = c.offsets[prev] + c.width(prev)
		}
		c.offsets = append(c.offsets, offset)
		c.measured++
	}
}

// Offset returns the horizontal offset of column i. An index at or past
// the end returns the total width.
func (c *Cache) Offset(i int) int {
	if i <= 0 || c.count == 0 {
		return 0
	}
	if i >= c.count {
		return c.Total()
	}
	c.measure(i)
	return c.offsets[i]
}

// Width returns the width of column i.
func (c *Cache) Width(i int) int {
	if i < 0 || i >= c.count {
		return 0
	}
	return c.width(i)
}

// Total returns the summed width of all columns.
func (c *Cache) Total() int {
	if c.count == 0 {
		return 0
	}
	last := c.count - 1
	c.measure(last)
	return c.offsets[last] + c.width(last)
}

// Span returns the range of columns intersecting the horizontal interval
// [left, left+width).
func (c *Cache) Span(left, width int) Range {
	if c.count == 0 || width <= 0 {
		return Range{}
	}
	right := left + width
	// Columns are searched over their end edge so that zero width columns
	// sitting exactly on the boundary are skipped.
	first := sort.Search(c.count, func(i int) bool {
		return c.Offset(i)+c.Width(i) > left
	})
	end := sort.Search(c.count, func(i int) bool {
		return c.Offset(i) >= right
	})
	if end < first {
		end = first
	}
	return Range{First: first, End: end}
}
