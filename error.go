package listentry

import "errors"

// ErrOutOfRange indicates an element was requested from an empty list.
var ErrOutOfRange = errors.New("listentry: out of range")
