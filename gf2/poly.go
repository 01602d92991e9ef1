package gf2

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/akalin/bchgen/errorcode"
	"golang.org/x/xerrors"
)

// A Poly is a polynomial over GF(2) of arbitrary degree. Bit i of
// its underlying integer is the coefficient of x^i.
//
// The zero value is the zero polynomial. Polys are never modified
// after they're made, so they may be freely copied and shared.
type Poly struct {
	v *big.Int
}

var bigZero = new(big.Int)

func (p Poly) int() *big.Int {
	if p.v == nil {
		return bigZero
	}
	return p.v
}

// FromUint64 returns the polynomial whose coefficients are the bits
// of u.
func FromUint64(u uint64) Poly {
	return Poly{new(big.Int).SetUint64(u)}
}

// FromBig returns the polynomial whose coefficients are the bits of
// v. It panics if v is negative.
func FromBig(v *big.Int) Poly {
	if v.Sign() < 0 {
		panic("negative polynomial")
	}
	return Poly{new(big.Int).Set(v)}
}

// FromPositions returns the polynomial with a coefficient of 1 at
// each of the given powers of x.
func FromPositions(positions ...int) Poly {
	v := new(big.Int)
	for _, i := range positions {
		v.SetBit(v, i, 1)
	}
	return Poly{v}
}

// Big returns a copy of the integer representation of p.
func (p Poly) Big() *big.Int {
	return new(big.Int).Set(p.int())
}

// Uint64 returns p as a uint64, and whether it fits.
func (p Poly) Uint64() (uint64, bool) {
	v := p.int()
	return v.Uint64(), v.BitLen() <= 64
}

// IsZero returns whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.int().Sign() == 0
}

// BitLen returns the number of bits needed to represent p, which is
// one more than its degree, or 0 if p is zero.
func (p Poly) BitLen() int {
	return p.int().BitLen()
}

// Degree returns the degree of p, or -1 if p is zero.
func (p Poly) Degree() int {
	return p.BitLen() - 1
}

// Coefficient returns the coefficient of x^i in p.
func (p Poly) Coefficient(i int) uint {
	return p.int().Bit(i)
}

// Equal returns whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	return p.int().Cmp(q.int()) == 0
}

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly) Plus(q Poly) Poly {
	return Poly{new(big.Int).Xor(p.int(), q.int())}
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly) Minus(q Poly) Poly {
	return p.Plus(q)
}

// Times returns the carry-less product of p and q: p shifted by i is
// xored in for every set bit i of q.
func (p Poly) Times(q Poly) Poly {
	prod := new(big.Int)
	shifted := new(big.Int)
	qv := q.int()
	for i := 0; i < qv.BitLen(); i++ {
		if qv.Bit(i) != 0 {
			prod.Xor(prod, shifted.Lsh(p.int(), uint(i)))
		}
	}
	return Poly{prod}
}

// Div returns the quotient and remainder of p divided by q by long
// division, so that quo*q + rem == p and deg(rem) < deg(q). It
// returns errorcode.ErrDivisionByZero if q is zero.
func (p Poly) Div(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return Poly{}, Poly{}, errorcode.ErrDivisionByZero
	}
	qLen := q.BitLen()
	r := new(big.Int).Set(p.int())
	quotient := new(big.Int)
	shifted := new(big.Int)
	for r.BitLen() >= qLen {
		shift := r.BitLen() - qLen
		r.Xor(r, shifted.Lsh(q.int(), uint(shift)))
		quotient.SetBit(quotient, shift, 1)
	}
	return Poly{quotient}, Poly{r}, nil
}

// OfPower returns p(x^power), i.e. each coefficient of x^i in p moves
// to x^(i*power). Over GF(2), p(x^2) == p(x)^2. It panics if power is
// negative.
func (p Poly) OfPower(power int) Poly {
	if power < 0 {
		panic("negative power")
	}
	v := new(big.Int)
	for _, i := range p.Positions() {
		v.SetBit(v, i*power, 1)
	}
	return Poly{v}
}

// Trim returns p mod x^length, i.e. the low length bits of p.
func (p Poly) Trim(length int) Poly {
	if length <= 0 {
		return Poly{}
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(length))
	mask.Sub(mask, big.NewInt(1))
	return Poly{mask.And(mask, p.int())}
}

// Positions returns the powers of x with nonzero coefficients in p,
// in ascending order.
func (p Poly) Positions() []int {
	v := p.int()
	var positions []int
	for i := 0; i < v.BitLen(); i++ {
		if v.Bit(i) != 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// Binary returns the coefficients of p as a binary string, highest
// power first.
func (p Poly) Binary() string {
	return p.int().Text(2)
}

// String returns p in algebraic form, e.g. "x^4 + x + 1".
func (p Poly) String() string {
	positions := p.Positions()
	if len(positions) == 0 {
		return "0"
	}
	terms := make([]string, 0, len(positions))
	for i := len(positions) - 1; i >= 0; i-- {
		switch positions[i] {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(positions[i]))
		}
	}
	return strings.Join(terms, " + ")
}

// ParsePoly parses either an algebraic form like "x^4 + x + 1" or an
// unsigned integer literal like "0b10011", "0x13" or "19" (the
// prefixes accepted by big.Int.SetString with base 0).
func ParsePoly(s string) (Poly, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, 'x') && !strings.HasPrefix(s, "0x") {
		return parseAlgebraic(s)
	}
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 {
		return Poly{}, xerrors.Errorf("cannot parse polynomial %q: %w", s, errorcode.ErrInvalidParameter)
	}
	return Poly{v}, nil
}

func parseAlgebraic(s string) (Poly, error) {
	v := new(big.Int)
	for _, term := range strings.Split(s, "+") {
		term = strings.TrimSpace(term)
		var power int
		switch {
		case term == "1":
			power = 0
		case term == "x":
			power = 1
		case strings.HasPrefix(term, "x^"):
			var err error
			power, err = strconv.Atoi(term[2:])
			if err != nil || power < 0 {
				return Poly{}, xerrors.Errorf("cannot parse term %q of %q: %w", term, s, errorcode.ErrInvalidParameter)
			}
		default:
			return Poly{}, xerrors.Errorf("cannot parse term %q of %q: %w", term, s, errorcode.ErrInvalidParameter)
		}
		// Repeated terms cancel, as they would when added.
		v.SetBit(v, power, v.Bit(power)^1)
	}
	return Poly{v}, nil
}
