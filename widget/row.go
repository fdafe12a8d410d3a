package widget

import "gioui.org/widget"

// RowState holds persistent state for a single row of a grid.
type RowState struct {
	// Check is the state of the selection checkbox of the row.
	Check widget.Bool
}
