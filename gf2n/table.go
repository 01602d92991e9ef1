// Package gf2n builds the logarithmic (power) table of GF(2^n) for a
// given primitive polynomial, and does field arithmetic with it.
package gf2n

import (
	"sync"

	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/gf2"
	"golang.org/x/xerrors"
)

// The range of field exponents n accepted by NewLogTable. Tables
// take O(2^n) memory, so callers must bound n further in practice.
const (
	MinDegree = 1
	MaxDegree = 51
)

// A LogTable maps each exponent i in [-1, 2^n-2] to the element α^i
// of GF(2^n), where α is the root x of the primitive polynomial the
// table was built from. Exponent -1 stands for the zero element.
//
// A LogTable is immutable once built, and safe for concurrent use.
type LogTable struct {
	n         int
	primitive gf2.Poly64
	// elements[i+1] is α^i, for i in [-1, 2^n-2].
	elements []gf2.Poly64

	logsOnce sync.Once
	// logs[x] is the exponent of x, or -1 for zero.
	logs []int
}

// NewLogTable builds the table of GF(2^n) as generated by the given
// primitive polynomial, which must have degree n.
//
// α^0 through α^(n-1) are 1, x, ..., x^(n-1), and α^n is the low n
// bits of primitive. Each later power is the previous one times x,
// with the overflow into bit n folded back in by xoring α^n.
//
// Building the table takes O(2^n) time and memory.
func NewLogTable(n int, primitive gf2.Poly64) (*LogTable, error) {
	if n < MinDegree || n > MaxDegree {
		return nil, xerrors.Errorf("n=%d not in [%d, %d]: %w", n, MinDegree, MaxDegree, errorcode.ErrInvalidParameter)
	}
	if primitive.Degree() != n {
		return nil, xerrors.Errorf("primitive polynomial %s has degree %d, expected %d: %w", primitive, primitive.Degree(), n, errorcode.ErrDegreeMismatch)
	}

	order := 1<<n - 1
	elements := make([]gf2.Poly64, order+1)
	set := func(exp int, x gf2.Poly64) {
		elements[exp+1] = x
	}

	set(-1, 0)
	for i := 0; i < n && i < order; i++ {
		set(i, 1<<i)
	}
	// For n == 1, α^n == α^0 and there's nothing left to fill in.
	if n < order {
		xn := primitive.Trim(n)
		set(n, xn)
		for i := n + 1; i < order; i++ {
			doubled := elements[i] << 1
			if doubled>>n&1 != 0 {
				doubled ^= xn
			}
			set(i, doubled.Trim(n))
		}
	}

	return &LogTable{n: n, primitive: primitive, elements: elements}, nil
}

// Degree returns n for the field GF(2^n).
func (t *LogTable) Degree() int {
	return t.n
}

// Order returns 2^n - 1, the size of the multiplicative group.
func (t *LogTable) Order() int {
	return len(t.elements) - 1
}

// Len returns the number of entries in the table, 2^n, which
// includes the one for exponent -1.
func (t *LogTable) Len() int {
	return len(t.elements)
}

// Primitive returns the primitive polynomial the table was built
// from.
func (t *LogTable) Primitive() gf2.Poly64 {
	return t.primitive
}

// Element returns α^exp, or 0 if exp == -1. It panics if exp is not
// in [-1, 2^n-2].
func (t *LogTable) Element(exp int) gf2.Poly64 {
	if exp < -1 || exp >= t.Order() {
		panic("exponent out of range")
	}
	return t.elements[exp+1]
}

// Pow returns α^exp for any exp, reducing it mod 2^n - 1.
func (t *LogTable) Pow(exp int) gf2.Poly64 {
	return t.elements[t.reduce(exp)+1]
}

// reduce returns exp mod 2^n - 1, in [0, 2^n-2].
func (t *LogTable) reduce(exp int) int {
	order := t.Order()
	exp %= order
	if exp < 0 {
		exp += order
	}
	return exp
}

func (t *LogTable) buildLogs() {
	t.logs = make([]int, len(t.elements))
	for i := range t.logs {
		t.logs[i] = -1
	}
	for exp := t.Order() - 1; exp >= 0; exp-- {
		t.logs[t.elements[exp+1]] = exp
	}
}

// Log returns the exponent i such that α^i == x, or -1 if x == 0. If
// the table was built from a polynomial that isn't primitive, the
// smallest such exponent is returned, and -1 for elements that
// aren't powers of α. It panics if x has degree n or more.
//
// The reverse index is built on first use.
func (t *LogTable) Log(x gf2.Poly64) int {
	if x.BitLen() > t.n {
		panic("element out of range")
	}
	t.logsOnce.Do(t.buildLogs)
	return t.logs[x]
}

// CheckPrimitive returns an error wrapping errorcode.ErrNotPrimitive
// if the powers of α repeat before reaching 2^n - 1, i.e. if the
// table isn't a bijection onto the nonzero elements.
func (t *LogTable) CheckPrimitive() error {
	seen := make([]bool, len(t.elements))
	for exp := 0; exp < t.Order(); exp++ {
		x := t.elements[exp+1]
		if x == 0 || seen[x] {
			return xerrors.Errorf("α^%d = %s repeats a lower power for %s: %w", exp, x, t.primitive, errorcode.ErrNotPrimitive)
		}
		seen[x] = true
	}
	return nil
}
