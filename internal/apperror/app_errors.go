package apperror

import "errors"

var (
	ErrOutOfBounds        = errors.New("coordinate is out of the board")
	ErrEmptyCell          = errors.New("cell has no token")
	ErrInventoryExhausted = errors.New("no tokens of this size left")
	ErrIllegalStack       = errors.New("token can't cover the top of this cell")
	ErrMatchAlreadyOver   = errors.New("match is already over")
	ErrUnknownMove        = errors.New("unknown move kind")
)
