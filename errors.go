package fenwick

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidSize is returned by New for a negative size.
	ErrInvalidSize = errors.New("fenwick: invalid size")

	// ErrIndexOutOfRange is returned when an index falls outside [0, size).
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")

	// ErrOverflow is returned, under OverflowError, when an update or a sum
	// would leave the range of int64.
	ErrOverflow = errors.New("fenwick: int64 overflow")
)

func indexError(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}
