// Package fenwick provides a fixed-size list of int64 values supporting
// point updates and prefix sums.
//
// A Fenwick tree, or binary indexed tree, keeps partial sums instead of
// the values themselves. Both adding to an element and summing a prefix
// of the list run in O(log n) time, using one extra int64 of memory.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package fenwick

import (
	"fmt"

	"github.com/caio/go-fenwick/internal/bitree"
	"github.com/cockroachdb/errors"
)

// Tree is a list of size int64 elements, all initially zero.
//
// Indices are 0-based. Element i lives at position i+1 of the underlying
// store, whose slot 0 is never used.
type Tree struct {
	size   int
	store  []int64
	policy OverflowPolicy
}

// New creates a tree holding size zero elements. A size of 0 is allowed;
// such a tree rejects every index.
func New(size int, options ...treeOption) (*Tree, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	t := &Tree{
		size:   size,
		store:  make([]int64, size+1),
		policy: OverflowError,
	}
	for _, option := range options {
		if err := option(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Policy returns the overflow policy the tree was created with.
func (t *Tree) Policy() OverflowPolicy {
	return t.policy
}

func (t *Tree) checkIndex(i int) error {
	if i < 0 || i >= t.size {
		return indexError(i, t.size)
	}
	return nil
}

// Update adds delta to the element at index i. On error the tree is left
// unchanged.
func (t *Tree) Update(i int, delta int64) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	if t.policy == OverflowError && !bitree.CanAdd(t.store, i+1, delta) {
		return errors.Wrapf(ErrOverflow, "adding %d at index %d", delta, i)
	}
	bitree.Add(t.store, i+1, delta)
	return nil
}

// Query returns the sum of the elements at indices 0 through i,
// inclusive. Query(-1) is the empty prefix and returns 0.
func (t *Tree) Query(i int) (int64, error) {
	if i == -1 {
		return 0, nil
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}
	return t.prefix(i + 1)
}

func (t *Tree) prefix(p int) (int64, error) {
	if t.policy == OverflowWrap {
		return bitree.Prefix(t.store, p), nil
	}
	sum, ok := bitree.CheckedPrefix(t.store, p)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "prefix sum of %d elements", p)
	}
	return sum, nil
}

// Total returns the sum of every element. It is 0 for an empty tree.
func (t *Tree) Total() (int64, error) {
	return t.prefix(t.size)
}

// SumRange returns the sum of the elements at indices lo through hi,
// inclusive.
func (t *Tree) SumRange(lo, hi int) (int64, error) {
	if err := t.checkIndex(lo); err != nil {
		return 0, err
	}
	if err := t.checkIndex(hi); err != nil {
		return 0, err
	}
	if lo > hi {
		return 0, errors.Newf("fenwick: empty range [%d, %d]", lo, hi)
	}
	return bitree.Range(t.store, lo, hi+1), nil
}

// Get returns the element at index i.
func (t *Tree) Get(i int) (int64, error) {
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}
	return bitree.Point(t.store, i+1), nil
}

// Set sets the element at index i to v.
func (t *Tree) Set(i int, v int64) error {
	cur, err := t.Get(i)
	if err != nil {
		return err
	}
	delta := v - cur
	if t.policy == OverflowError && ((cur > 0 && delta > v) || (cur < 0 && delta < v)) {
		return errors.Wrapf(ErrOverflow, "setting index %d from %d to %d", i, cur, v)
	}
	return t.Update(i, delta)
}

// Search returns the smallest index i such that Query(i) >= target, or
// -1 if no prefix sum reaches target. The answer is only meaningful when
// every element is non-negative.
func (t *Tree) Search(target int64) int {
	if t.size == 0 {
		return -1
	}
	p := bitree.Search(t.store, target)
	if p >= t.size {
		return -1
	}
	return p
}

func (t *Tree) String() string {
	total, err := t.Total()
	if err != nil {
		return fmt.Sprintf("Tree<size=%d, total=overflow>", t.size)
	}
	return fmt.Sprintf("Tree<size=%d, total=%d>", t.size, total)
}
