package preview

import "errors"

var ErrEmptyCanvas = errors.New("empty canvas")
