package grid

import (
	"github.com/cespare/xxhash/v2"
)

// State of a Controller.
type State uint8

const (
	// Valid means the cache reflects the last observed inputs.
	Valid State = iota
	// Invalidated means the cache is being discarded. A controller only
	// passes through this state inside Invalidate.
	Invalidated
)

// String converts a state into a printable representation.
func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalidated:
		return "invalidated"
	default:
		return "unknown state"
	}
}

// Inputs are the values that determine the column measurements of a grid.
// Row data is deliberately absent: changing rows never moves columns.
type Inputs struct {
	Width, Height int
	// Columns is the number of resolved columns.
	Columns int
	// Identity fingerprints the ordered column keys.
	Identity uint64
	// Widths fingerprints the resolved column widths.
	Widths uint64
	// Selection reports whether the selection column is present.
	Selection bool
}

// Fingerprint hashes an ordered list of strings. Element boundaries are
// part of the hash, so ["ab", "c"] and ["a", "bc"] differ.
func Fingerprint(parts ...string) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// FingerprintInts hashes an ordered list of integers.
func FingerprintInts(values ...int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		u := uint64(v)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Controller decides when the measurement Cache of a grid must be
// discarded. It is the only owner of the cache.
//
// The zero value is ready to use; the first observation always
// invalidates.
type Controller struct {
	// OnInvalidate, if set, is invoked with the new baseline every time
	// the cache is discarded.
	OnInvalidate func(Inputs)

	state         State
	baseline      Inputs
	observed      bool
	cache         Cache
	stale         bool
	invalidations int
}

// Observe compares in with the inputs of the last observation and
// invalidates the cache if anything differs. It reports whether the cache
// was invalidated.
func (c *Controller) Observe(in Inputs) bool {
	if c.observed && in == c.baseline {
		return false
	}
	c.baseline = in
	c.observed = true
	c.Invalidate()
	return true
}

// Invalidate discards the cache regardless of the inputs. Anything that
// changes a layout input outside of Observe calls this.
func (c *Controller) Invalidate() {
	c.state = Invalidated
	c.cache.Reset(0, nil)
	c.stale = true
	c.invalidations++
	if c.OnInvalidate != nil {
		c.OnInvalidate(c.baseline)
	}
	c.state = Valid
}

// Cache returns the measurement cache, rebuilding it from width if it was
// discarded since the last call.
func (c *Controller) Cache(count int, width func(i int) int) *Cache {
	if c.stale || c.cache.Len() != count {
		c.cache.Reset(count, width)
		c.stale = false
	}
	return &c.cache
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Baseline returns the inputs of the last observation.
func (c *Controller) Baseline() Inputs {
	return c.baseline
}

// Invalidations returns how many times the cache was discarded.
func (c *Controller) Invalidations() int {
	return c.invalidations
}
