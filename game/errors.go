package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is matched by every *IllegalMoveError through errors.Is.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError reports an action outside the legal/candidate sets.
type IllegalMoveError struct {
	Action int
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %d: %s", e.Action, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
