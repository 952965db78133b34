package fenwick

import "github.com/cockroachdb/errors"

// OverflowPolicy decides what happens when int64 arithmetic overflows.
type OverflowPolicy int

const (
	// OverflowError rejects the offending call with ErrOverflow. Rejected
	// updates leave the tree untouched.
	OverflowError OverflowPolicy = iota
	// OverflowWrap lets sums wrap around in two's complement.
	OverflowWrap
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowError:
		return "error"
	case OverflowWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

type treeOption func(*Tree) error

// Overflow sets the overflow policy of the tree.
//
// Under OverflowError (the default) every slot an update touches is
// checked before any of them is written, and Query and Total
// report ErrOverflow instead of a wrapped sum. Get and SumRange are
// differences of prefix sums and are exact whenever the true result
// fits in an int64.
//
// OverflowWrap skips the checks, which makes Update slightly cheaper.
func Overflow(policy OverflowPolicy) treeOption {
	return func(t *Tree) error {
		if policy != OverflowError && policy != OverflowWrap {
			return errors.Newf("fenwick: unknown overflow policy %d", int(policy))
		}
		t.policy = policy
		return nil
	}
}
