package gf2

import "math/bits"

// A Poly64 is a polynomial over GF(2) mod x^64. It is used for
// elements of GF(2^n) and for the moduli that define them.
type Poly64 uint64

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^64.
func (p Poly64) Times(q Poly64) Poly64 {
	var prod Poly64
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

// BitLen returns the number of bits needed to represent p, which is
// one more than its degree, or 0 if p == 0.
func (p Poly64) BitLen() int {
	return bits.Len64(uint64(p))
}

// Degree returns the degree of p, or -1 if p == 0.
func (p Poly64) Degree() int {
	return p.BitLen() - 1
}

// Div returns the quotient and remainder of p divided by q as
// polynomials over GF(2). It panics if q == 0.
func (p Poly64) Div(q Poly64) (quo, rem Poly64) {
	if q == 0 {
		panic("division by zero")
	}
	qLen := q.BitLen()
	rem = p
	for rem.BitLen() >= qLen {
		shift := rem.BitLen() - qLen
		rem ^= q << shift
		quo |= 1 << shift
	}
	return quo, rem
}

// Trim returns p mod x^length, i.e. the low length bits of p.
func (p Poly64) Trim(length int) Poly64 {
	if length <= 0 {
		return 0
	}
	if length >= 64 {
		return p
	}
	return p & (1<<length - 1)
}

// MulMod returns the product of p and q mod m. Unlike Times, the
// intermediate values never exceed deg(m) bits, so this is exact for
// any m of degree at most 63. It panics if m == 0.
func (p Poly64) MulMod(q, m Poly64) Poly64 {
	_, p = p.Div(m)
	_, q = q.Div(m)
	n := m.Degree()
	var prod Poly64
	for q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
		if p>>n&1 != 0 {
			p ^= m
		}
	}
	return prod
}

// String returns p in algebraic form, e.g. "x^4 + x + 1".
func (p Poly64) String() string {
	return FromUint64(uint64(p)).String()
}
