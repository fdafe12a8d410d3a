package column

import (
	"errors"
	"fmt"
)

// ErrOverSubscribed indicates that the explicit column widths exceed the
// available width. The layout is truncated rather than given negative
// widths.
var ErrOverSubscribed = errors.New("explicit column widths exceed available width")

// OverSubscribedError reports by how much the explicit widths overflow.
type OverSubscribedError struct {
	Used      int
	Available int
}

func (e *OverSubscribedError) Error() string {
	return fmt.Sprintf("%v: used %d of %d", ErrOverSubscribed, e.Used, e.Available)
}

func (e *OverSubscribedError) Unwrap() error {
	return ErrOverSubscribed
}

// Resolve assigns a concrete width to every column.
//
// If selection is true a synthetic column of selectionWidth pixels is
// prepended. The width left after all explicit widths is shared evenly
// among the columns without one; the last of them also receives the
// remainder of the integer division.
//
// When the explicit widths exceed available, the remaining width is
// clamped to zero and an *OverSubscribedError is returned alongside the
// resolved columns, which remain usable.
//
// Resolve is pure: the same inputs always produce the same widths.
func Resolve[T any](cols []Column[T], available int, selection bool, selectionWidth int) ([]Resolved[T], error) {
	resolved := make([]Resolved[T], 0, len(cols)+1)
	if selection {
		resolved = append(resolved, Resolved[T]{
			Column: Column[T]{
				Key:   SelectionKey,
				Width: selectionWidth,
			},
			Selection: true,
		})
	}
	var (
		used       int
		unresolved int
		last       = -1
	)
	for _, c := range cols {
		resolved = append(resolved, Resolved[T]{Column: c})
	}
	for i, c := range resolved {
		if c.Fixed() || c.Selection {
			used += c.Width
			continue
		}
		unresolved++
		last = i
	}
	var warning error
	remaining := available - used
	if remaining < 0 {
		warning = &OverSubscribedError{Used: used, Available: available}
		remaining = 0
	}
	if unresolved == 0 {
		return resolved, warning
	}
	per := remaining / unresolved
	for i := range resolved {
		c := &resolved[i]
		if c.Fixed() || c.Selection {
			continue
		}
		c.Width = per
		if i == last {
			c.Width += remaining % unresolved
		}
	}
	return resolved, warning
}
