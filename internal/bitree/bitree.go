// Package bitree implements the slot arithmetic of a binary indexed tree
// stored in a 1-based slice.
//
// A store s for n elements has length n+1. Slot 0 is unused; slot p holds
// the sum of the elements at positions p-Lowbit(p)+1 through p. The sum
// of the first k elements adds the slots which correspond to each 1 bit
// in the binary expansion of k.
//
// For example, this is how the sum of the first 13 elements is computed:
// 13 is 1101₂ in binary, so the slots at 1101₂, 1100₂ and 1000₂ are
// added; they contain the range sums of position 13, positions 9 … 12,
// and positions 1 … 8, respectively.
//
// Nothing here checks bounds. Positions passed in must lie in
// [1, len(s)), except where noted.
package bitree

import "math/bits"

// Lowbit returns the lowest set bit of p.
func Lowbit(p int) int {
	return p & -p
}

// Add adds delta to the element at position p. Slots wrap around on
// overflow.
func Add(s []int64, p int, delta int64) {
	for n := len(s); p < n; p += Lowbit(p) {
		s[p] += delta
	}
}

// CanAdd reports whether Add(s, p, delta) would keep every slot it
// touches within the range of int64.
func CanAdd(s []int64, p int, delta int64) bool {
	if delta == 0 {
		return true
	}
	for n := len(s); p < n; p += Lowbit(p) {
		if _, ok := add(s[p], delta); !ok {
			return false
		}
	}
	return true
}

// Prefix returns the sum of the elements at positions 1 through p.
// p may be 0, in which case the sum is 0.
func Prefix(s []int64, p int) int64 {
	var sum int64
	for ; p > 0; p -= Lowbit(p) {
		sum += s[p]
	}
	return sum
}

// CheckedPrefix is like Prefix but reports false if the sum does not fit
// in an int64. Slots may have mixed signs, so intermediate sums are
// allowed to wrap; carry counts the wraps and must net out to zero.
func CheckedPrefix(s []int64, p int) (int64, bool) {
	var sum, carry int64
	for ; p > 0; p -= Lowbit(p) {
		next := sum + s[p]
		switch {
		case s[p] > 0 && next < sum:
			carry++
		case s[p] < 0 && next > sum:
			carry--
		}
		sum = next
	}
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// Point returns the element at position p. It subtracts the slots that
// make up slot p, which takes fewer steps than two prefix sums.
func Point(s []int64, p int) int64 {
	v := s[p]
	stop := p - Lowbit(p)
	for q := p - 1; q > stop; q -= Lowbit(q) {
		v -= s[q]
	}
	return v
}

// Range returns the sum of the elements at positions i+1 through j.
// Both walks stop where they meet, so shared slots are never read.
func Range(s []int64, i, j int) int64 {
	var sum int64
	for j > i {
		sum += s[j]
		j -= Lowbit(j)
	}
	for i > j {
		sum -= s[i]
		i -= Lowbit(i)
	}
	return sum
}

// Search returns the largest position p such that Prefix(s, p) < target.
// The result is only meaningful when every element is non-negative, so
// that prefix sums never decrease. It returns len(s)-1 when no prefix
// reaches target.
func Search(s []int64, target int64) int {
	n := len(s) - 1
	if n <= 0 {
		return 0
	}
	p := 0
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		if q := p + step; q <= n && s[q] < target {
			p = q
			target -= s[q]
		}
	}
	return p
}

func add(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
