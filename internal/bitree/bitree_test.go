package bitree

import (
	"math"
	"math/rand"
	"testing"
)

func TestLowbit(t *testing.T) {
	for p, want := range map[int]int{1: 1, 2: 2, 6: 2, 12: 4, 13: 1, 64: 64, 96: 32} {
		if got := Lowbit(p); got != want {
			t.Errorf("Lowbit(%d) = %d, want %d", p, got, want)
		}
	}
}

// The slot at p must hold the sum of the elements in (p-Lowbit(p), p].
func TestSlotInvariant(t *testing.T) {
	rand.Seed(0xDEADBEEF)

	const n = 100
	s := make([]int64, n+1)
	elems := make([]int64, n+1)

	for i := 0; i < 1000; i++ {
		p := 1 + rand.Intn(n)
		delta := rand.Int63n(200) - 100
		Add(s, p, delta)
		elems[p] += delta
	}

	for p := 1; p <= n; p++ {
		var want int64
		for q := p - Lowbit(p) + 1; q <= p; q++ {
			want += elems[q]
		}
		if s[p] != want {
			t.Fatalf("slot %d = %d, want %d", p, s[p], want)
		}
	}

	var prefix int64
	for p := 1; p <= n; p++ {
		prefix += elems[p]
		if got := Prefix(s, p); got != prefix {
			t.Errorf("Prefix(%d) = %d, want %d", p, got, prefix)
		}
		if got, ok := CheckedPrefix(s, p); !ok || got != prefix {
			t.Errorf("CheckedPrefix(%d) = %d, %t, want %d", p, got, ok, prefix)
		}
		if got := Point(s, p); got != elems[p] {
			t.Errorf("Point(%d) = %d, want %d", p, got, elems[p])
		}
	}

	for i := 0; i < 200; i++ {
		lo := rand.Intn(n + 1)
		hi := lo + rand.Intn(n+1-lo)
		if got, want := Range(s, lo, hi), Prefix(s, hi)-Prefix(s, lo); got != want {
			t.Errorf("Range(%d, %d) = %d, want %d", lo, hi, got, want)
		}
	}
}

func TestPrefixOfNothing(t *testing.T) {
	s := []int64{0, 3, 4}
	if got := Prefix(s, 0); got != 0 {
		t.Errorf("Prefix(0) = %d, want 0", got)
	}
	if got, ok := CheckedPrefix(s, 0); !ok || got != 0 {
		t.Errorf("CheckedPrefix(0) = %d, %t, want 0", got, ok)
	}
}

func TestCanAdd(t *testing.T) {
	s := make([]int64, 5)
	Add(s, 1, math.MaxInt64)

	if !CanAdd(s, 1, 0) {
		t.Errorf("Adding zero should always be allowed")
	}
	if CanAdd(s, 2, 1) {
		t.Errorf("Slot 2 covers position 1 and should overflow")
	}
	if CanAdd(s, 3, 1) {
		t.Errorf("Slot 4 covers position 1 and should overflow")
	}
	if !CanAdd(s, 3, -1) {
		t.Errorf("Slots 3 and 4 hold %d and %d, subtracting 1 should fit", s[3], s[4])
	}
	if CanAdd(s, 3, math.MaxInt64) {
		t.Errorf("Slot 4 should overflow")
	}
	if !CanAdd(s, 1, math.MinInt64) {
		t.Errorf("Adding MinInt64 to MaxInt64 should fit")
	}

	s = make([]int64, 3)
	Add(s, 1, math.MinInt64)
	if CanAdd(s, 2, -1) {
		t.Errorf("Slot 2 holds MinInt64 and should underflow")
	}

	s = make([]int64, 4)
	Add(s, 2, math.MaxInt64)
	Add(s, 3, 1)
	if _, ok := CheckedPrefix(s, 3); ok {
		t.Errorf("CheckedPrefix(3) should overflow")
	}

	// Wrapping in one direction and back again is not an overflow.
	s = make([]int64, 8)
	Add(s, 1, -math.MaxInt64)
	Add(s, 5, math.MaxInt64)
	Add(s, 7, 10)
	if got, ok := CheckedPrefix(s, 7); !ok || got != 10 {
		t.Errorf("CheckedPrefix(7) = %d, %t, want 10", got, ok)
	}
	s = make([]int64, 4)
	Add(s, 2, math.MinInt64)
	Add(s, 3, -1)
	if _, ok := CheckedPrefix(s, 3); ok {
		t.Errorf("CheckedPrefix(3) should underflow")
	}
}

func TestSearch(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 9, 31} {
		s := make([]int64, n+1)
		elems := make([]int64, n+1)
		for p := 1; p <= n; p++ {
			elems[p] = int64(rand.Intn(4))
			Add(s, p, elems[p])
		}

		var total int64
		for p := 1; p <= n; p++ {
			total += elems[p]
		}
		for target := int64(-1); target <= total+1; target++ {
			want := 0
			var sum int64
			for p := 1; p <= n; p++ {
				sum += elems[p]
				if sum >= target {
					break
				}
				want = p
			}
			if got := Search(s, target); got != want {
				t.Errorf("n=%d: Search(%d) = %d, want %d (elements %v)", n, target, got, want, elems[1:])
			}
		}
	}

	if got := Search([]int64{0}, 5); got != 0 {
		t.Errorf("Search on an empty store = %d, want 0", got)
	}
}
