package dims

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserver(t *testing.T) {
	var (
		o       Observer
		emitted []Dimensions
	)
	o.OnChange = func(d Dimensions) { emitted = append(emitted, d) }

	assert.False(t, o.Ready(), "zero observer must not be ready")

	type step struct {
		name    string
		size    image.Point
		changed bool
		want    Dimensions
		ready   bool
	}
	for _, s := range []step{
		{name: "initial degenerate", size: image.Pt(0, 0), want: Dimensions{}},
		{name: "first real size", size: image.Pt(800, 600), changed: true, want: Dimensions{800, 600}, ready: true},
		{name: "duplicate", size: image.Pt(800, 600), want: Dimensions{800, 600}, ready: true},
		{name: "minimised", size: image.Pt(0, 0), changed: true, want: Dimensions{}},
		{name: "still minimised", size: image.Pt(0, 0), want: Dimensions{}},
		{name: "unminimised", size: image.Pt(800, 600), changed: true, want: Dimensions{800, 600}, ready: true},
		{name: "collapsed height", size: image.Pt(800, 0), changed: true, want: Dimensions{800, 0}},
		{name: "negative width", size: image.Pt(-1, 10), changed: true, want: Dimensions{-1, 10}},
		{name: "restored", size: image.Pt(1024, 768), changed: true, want: Dimensions{1024, 768}, ready: true},
	} {
		got, changed := o.Observe(s.size)
		assert.Equal(t, s.changed, changed, s.name)
		assert.Equal(t, s.want, got, s.name)
		assert.Equal(t, s.ready, o.Ready(), s.name)
	}
	assert.Equal(t, []Dimensions{{800, 600}, {}, {800, 600}, {800, 0}, {-1, 10}, {1024, 768}}, emitted)
	assert.Equal(t, image.Pt(1024, 768), o.Dimensions().Point())
}
