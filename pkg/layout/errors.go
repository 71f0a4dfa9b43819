package layout

import (
	"errors"
	"fmt"

	"menubox/pkg/css"
)

// ErrAlreadyWrapped is returned when a box that already has a wrapper is wrapped again.
var ErrAlreadyWrapped = errors.New("box is already wrapped")

// InvalidGapCountError reports a gap list that did not have 1-4 values.
type InvalidGapCountError = css.GapCountError

// InvalidAlignmentError reports an unknown or misplaced alignment token.
type InvalidAlignmentError struct {
	Alignment string
	Allowed   []Edge
}

func (e *InvalidAlignmentError) Error() string {
	return fmt.Sprintf("invalid alignment %q, must be one of %v", e.Alignment, e.Allowed)
}

// InvalidSideError reports an unknown side token.
type InvalidSideError struct {
	Side string
}

func (e *InvalidSideError) Error() string {
	return fmt.Sprintf("invalid side %q, must be 'top', 'bottom', 'left' or 'right'", e.Side)
}

// InvalidAnchorError reports an anchor keyword used on the wrong axis, e.g.
// anchor_x="top".
type InvalidAnchorError struct {
	Axis  string
	Value string
}

func (e *InvalidAnchorError) Error() string {
	return fmt.Sprintf("invalid %s anchor %q", e.Axis, e.Value)
}
