package persistent

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned by operations which require a non-empty collection,
// e.g. asking an empty queue for its head.
var ErrEmptyCollection = errors.New("empty collection")

// ErrIndexOutOfRange is returned by random-access operations for an index outside
// of [0, length).
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError wraps ErrIndexOutOfRange with the offending index and the length of the
// collection. Test for it with errors.Is(err, ErrIndexOutOfRange).
func IndexError(i, length int) error {
	return fmt.Errorf("%w: %d not in [0…%d)", ErrIndexOutOfRange, i, length)
}
