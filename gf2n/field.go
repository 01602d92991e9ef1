package gf2n

import (
	"math/bits"

	"github.com/akalin/bchgen/gf2"
)

// Times returns the product of u and v as elements of GF(2^n).
func (t *LogTable) Times(u, v gf2.Poly64) gf2.Poly64 {
	if u == 0 || v == 0 {
		return 0
	}
	return t.Pow(t.Log(u) + t.Log(v))
}

// Inverse returns the multiplicative inverse of u, if u != 0. It
// panics if u == 0.
func (t *LogTable) Inverse(u gf2.Poly64) gf2.Poly64 {
	if u == 0 {
		panic("zero has no inverse")
	}
	return t.Pow(-t.Log(u))
}

// Div returns the product of u and v^{-1} as elements of GF(2^n), if
// v != 0. It panics if v == 0.
func (t *LogTable) Div(u, v gf2.Poly64) gf2.Poly64 {
	if v == 0 {
		panic("division by zero")
	}
	if u == 0 {
		return 0
	}
	return t.Pow(t.Log(u) - t.Log(v))
}

// Evaluate returns p(α^exp), treating p as a polynomial with
// coefficients in GF(2).
func (t *LogTable) Evaluate(p gf2.Poly, exp int) gf2.Poly64 {
	order := uint64(t.Order())
	e := uint64(t.reduce(exp))
	var sum gf2.Poly64
	for _, i := range p.Positions() {
		// exp*i can overflow for large fields, so reduce the full
		// 128-bit product.
		hi, lo := bits.Mul64(e, uint64(i)%order)
		sum ^= t.elements[bits.Rem64(hi, lo, order)+1]
	}
	return sum
}
