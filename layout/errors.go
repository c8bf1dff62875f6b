package layout

import "errors"

// ErrUnknownOrder indicates that a storage order name could not be parsed.
var ErrUnknownOrder = errors.New("layout: unknown storage order")
