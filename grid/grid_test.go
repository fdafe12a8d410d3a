package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widthsOf(widths ...int) (int, func(int) int) {
	return len(widths), func(i int) int {
		return widths[i]
	}
}

func TestCacheLazy(t *testing.T) {
	var c Cache
	n, w := widthsOf(10, 20, 30, 40)
	c.Reset(n, w)
	assert.Equal(t, 0, c.Measured())

	assert.Equal(t, 30, c.Offset(2))
	assert.Equal(t, 3, c.Measured(), "only columns up to the queried one are measured")

	assert.Equal(t, 0, c.Offset(0))
	assert.Equal(t, 100, c.Total())
	assert.Equal(t, 100, c.Offset(4))
	assert.Equal(t, 4, c.Measured())
	assert.Equal(t, 40, c.Width(3))
	assert.Equal(t, 0, c.Width(7))

	c.Reset(0, nil)
	assert.Equal(t, 0, c.Measured())
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, Range{}, c.Span(0, 100))
}

func TestCacheSpan(t *testing.T) {
	var c Cache
	c.Reset(widthsOf(100, 0, 100, 50))
	for _, tc := range []struct {
		name        string
		left, width int
		want        Range
	}{
		{name: "first column only", left: 0, width: 100, want: Range{0, 1}},
		{name: "straddles boundary", left: 50, width: 100, want: Range{0, 3}},
		{name: "skips zero width column at left edge", left: 100, width: 10, want: Range{2, 3}},
		{name: "everything", left: 0, width: 1000, want: Range{0, 4}},
		{name: "past the end", left: 400, width: 10, want: Range{4, 4}},
		{name: "empty viewport", left: 0, width: 0, want: Range{}},
	} {
		assert.Equal(t, tc.want, c.Span(tc.left, tc.width), tc.name)
	}
}

func TestRows(t *testing.T) {
	for _, tc := range []struct {
		name                             string
		count, rowHeight, scroll, height int
		want                             Range
	}{
		{name: "top", count: 5000, rowHeight: 54, scroll: 0, height: 540, want: Range{0, 10}},
		{name: "misaligned", count: 5000, rowHeight: 54, scroll: 27, height: 540, want: Range{0, 11}},
		{name: "bottom", count: 5000, rowHeight: 54, scroll: 5000*54 - 540, height: 540, want: Range{4990, 5000}},
		{name: "fewer rows than viewport", count: 3, rowHeight: 54, scroll: 0, height: 540, want: Range{0, 3}},
		{name: "scrolled past end", count: 3, rowHeight: 54, scroll: 1000, height: 540, want: Range{3, 3}},
		{name: "negative scroll", count: 10, rowHeight: 10, scroll: -5, height: 20, want: Range{0, 2}},
		{name: "no rows", count: 0, rowHeight: 54, scroll: 0, height: 540, want: Range{}},
		{name: "degenerate height", count: 10, rowHeight: 54, scroll: 0, height: 0, want: Range{}},
	} {
		assert.Equal(t, tc.want, Rows(tc.count, tc.rowHeight, tc.scroll, tc.height), tc.name)
	}
}

func TestRowsWindowingBound(t *testing.T) {
	const (
		rowHeight = 54
		height    = 540
		bound     = (height+rowHeight-1)/rowHeight + 1
	)
	for _, count := range []int{11, 500, 5000, 1000000} {
		for scroll := 0; scroll < count*rowHeight; scroll += 37 * rowHeight / 3 {
			r := Rows(count, rowHeight, scroll, height)
			require.LessOrEqual(t, r.Len(), bound, "count %d scroll %d", count, scroll)
			if scroll > 10000 {
				break
			}
		}
	}
}

func TestRange(t *testing.T) {
	r := Range{First: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.Equal(t, 0, Range{First: 5, End: 2}.Len())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-10, 1000, 100))
	assert.Equal(t, 900, Clamp(5000, 1000, 100))
	assert.Equal(t, 0, Clamp(50, 80, 100))
	assert.Equal(t, 450, Clamp(450, 1000, 100))
}

func TestController(t *testing.T) {
	var (
		c        Controller
		baseline []Inputs
	)
	c.OnInvalidate = func(in Inputs) {
		assert.Equal(t, Invalidated, c.State())
		baseline = append(baseline, in)
	}
	in := Inputs{
		Width:    800,
		Height:   600,
		Columns:  3,
		Identity: Fingerprint("a", "b", "c"),
		Widths:   FingerprintInts(200, 300, 300),
	}
	assert.True(t, c.Observe(in), "first observation invalidates")
	assert.Equal(t, Valid, c.State())

	cache := c.Cache(widthsOf(200, 300, 300))
	assert.Equal(t, 500, cache.Offset(2))

	assert.False(t, c.Observe(in), "unchanged inputs never invalidate")
	assert.Equal(t, 3, c.Cache(widthsOf(200, 300, 300)).Measured(), "cache survives")

	for _, mutate := range []func(Inputs) Inputs{
		func(in Inputs) Inputs { in.Width++; return in },
		func(in Inputs) Inputs { in.Height++; return in },
		func(in Inputs) Inputs { in.Columns++; return in },
		func(in Inputs) Inputs { in.Identity = Fingerprint("a", "c", "b"); return in },
		func(in Inputs) Inputs { in.Widths = FingerprintInts(300, 200, 300); return in },
		func(in Inputs) Inputs { in.Selection = !in.Selection; return in },
	} {
		next := mutate(in)
		require.True(t, c.Observe(next))
		assert.Equal(t, 0, c.Cache(widthsOf(200, 300, 300)).Measured(), "cache discarded")
		require.True(t, c.Observe(in))
	}
	assert.Equal(t, 13, c.Invalidations())
	assert.Len(t, baseline, 13)
	assert.Equal(t, in, c.Baseline())

	c.Cache(widthsOf(200, 300, 300)).Offset(2)
	c.Invalidate()
	assert.Equal(t, 0, c.Cache(widthsOf(200, 300, 300)).Measured(), "explicit invalidation discards the cache")
	assert.Equal(t, in, c.Baseline(), "explicit invalidation keeps the baseline")
}

func TestFingerprint(t *testing.T) {
	assert.NotEqual(t, Fingerprint("ab", "c"), Fingerprint("a", "bc"))
	assert.Equal(t, Fingerprint("a", "b"), Fingerprint("a", "b"))
	assert.NotEqual(t, FingerprintInts(1, 2), FingerprintInts(2, 1))
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "invalidated", Invalidated.String())
}
