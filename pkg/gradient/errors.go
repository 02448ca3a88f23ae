package gradient

import "errors"

var (
	ErrNoColors     = errors.New("no colors given")
	ErrTooFewColors = errors.New("continuous gradient needs at least two colors")
	ErrInvalidColor = errors.New("invalid color")
	ErrUnknownMode  = errors.New("unknown gradient mode")
)
