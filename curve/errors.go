package curve

import "errors"

var (
	ErrUnordered   = errors.New("points not ordered by x")
	ErrUnknownMode = errors.New("unknown curve mode")
)
