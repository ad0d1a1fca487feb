package algorithm

import (
	"math"
	"strings"
)

// product walks the cartesian product of per-position alphabets like an
// odometer: the rightmost position varies fastest. It keeps only the current
// indices, so memory does not grow with the size of the space.
type product struct {
	sets    [][]rune
	indices []int
	started bool
	done    bool
	buf     strings.Builder
}

func newProduct(sets [][]rune) *product {
	p := &product{
		sets:    sets,
		indices: make([]int, len(sets)),
	}
	for _, set := range sets {
		if len(set) == 0 {
			p.done = true
		}
	}
	return p
}

// advance moves to the next tuple and reports whether one exists. With zero
// positions the product holds exactly one empty tuple.
func (p *product) advance() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.started = true
		return true
	}
	for i := len(p.indices) - 1; i >= 0; i-- {
		p.indices[i]++
		if p.indices[i] < len(p.sets[i]) {
			return true
		}
		p.indices[i] = 0
	}
	p.done = true
	return false
}

func (p *product) current() string {
	p.buf.Reset()
	for i, idx := range p.indices {
		p.buf.WriteRune(p.sets[i][idx])
	}
	return p.buf.String()
}

// productSize multiplies the set sizes, reporting false on int64 overflow.
func productSize(sets [][]rune) (int64, bool) {
	total := int64(1)
	for _, set := range sets {
		var ok bool
		if total, ok = mulInt64(total, int64(len(set))); !ok {
			return math.MaxInt64, false
		}
	}
	return total, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64, false
	}
	return a * b, true
}

func addInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return math.MaxInt64, false
	}
	return a + b, true
}
