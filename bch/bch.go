// Package bch constructs the generator polynomials of binary
// narrow-sense primitive BCH codes.
package bch

import (
	"errors"

	"github.com/akalin/bchgen/cyclotomic"
	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/generator"
	"github.com/akalin/bchgen/gf2"
	"github.com/akalin/bchgen/gf2n"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/xerrors"
)

// A Delegate is notified as each minimal polynomial of a generator is
// computed.
type Delegate interface {
	OnMinimalPolynomial(representative, size int, m gf2.Poly)
}

// DoNothingDelegate is an implementation of Delegate that does
// nothing for all methods.
type DoNothingDelegate struct{}

// OnMinimalPolynomial implements the Delegate interface.
func (DoNothingDelegate) OnMinimalPolynomial(representative, size int, m gf2.Poly) {}

// Options holds all the options for New.
type Options struct {
	// The number of goroutines used to compute each minimal
	// polynomial. If zero, generator.DefaultNumGoroutines() is
	// used.
	NumGoroutines int
	// If nil, DoNothingDelegate is used.
	Delegate Delegate
}

// A Factor is an irreducible factor of a generator polynomial, along
// with its roots.
type Factor struct {
	Coset      *bitset.BitSet
	Polynomial gf2.Poly
}

// A Code describes a binary narrow-sense BCH code of length 2^n - 1.
type Code struct {
	Length           int
	Dimension        int
	DesignedDistance int
	// Generator is the least common multiple of the minimal
	// polynomials of α, α^2, ..., α^(DesignedDistance-1).
	Generator gf2.Poly
	// Roots holds the exponents r of all α^r with Generator(α^r)
	// == 0.
	Roots              *bitset.BitSet
	MinimalPolynomials []Factor
}

// New returns the narrow-sense BCH code over the field described by
// table with the given designed distance, which must be in [2, 2^n -
// 1]. The table must have been built from a primitive polynomial.
func New(table *gf2n.LogTable, designedDistance int, options Options) (*Code, error) {
	order := table.Order()
	if designedDistance < 2 || designedDistance > order {
		return nil, xerrors.Errorf("designed distance %d not in [2, %d]: %w", designedDistance, order, errorcode.ErrInvalidParameter)
	}
	if err := table.CheckPrimitive(); err != nil {
		return nil, err
	}

	delegate := options.Delegate
	if delegate == nil {
		delegate = DoNothingDelegate{}
	}

	roots := bitset.New(uint(order))
	g := gf2.FromUint64(1)
	var factors []Factor
	for r := 1; r < designedDistance; r++ {
		if roots.Test(uint(r)) {
			continue
		}
		coset, err := cyclotomic.CosetOf(table.Degree(), r)
		if err != nil {
			return nil, err
		}
		m, err := minimalPolynomial(coset, table, options.NumGoroutines)
		if err != nil {
			return nil, err
		}
		delegate.OnMinimalPolynomial(r, int(coset.Count()), m)
		roots = cyclotomic.Union(roots, coset)
		g = g.Times(m)
		factors = append(factors, Factor{coset, m})
	}

	xm1 := gf2.FromPositions(0, order)
	if _, rem, err := xm1.Div(g); err != nil {
		return nil, err
	} else if !rem.IsZero() {
		return nil, xerrors.Errorf("generator %s does not divide x^%d + 1", g, order)
	}

	return &Code{
		Length:             order,
		Dimension:          order - g.Degree(),
		DesignedDistance:   designedDistance,
		Generator:          g,
		Roots:              roots,
		MinimalPolynomials: factors,
	}, nil
}

func minimalPolynomial(coset *bitset.BitSet, table *gf2n.LogTable, numGoroutines int) (gf2.Poly, error) {
	m, err := generator.MinimalPolynomial(coset, table, generator.Options{NumGoroutines: numGoroutines})
	if err != nil {
		return gf2.Poly{}, err
	}
	if m.Degree() != int(coset.Count()) {
		return gf2.Poly{}, xerrors.Errorf("minimal polynomial %s of coset %s has degree %d, expected %d", m, coset, m.Degree(), coset.Count())
	}
	return m, nil
}

// ErrRootMismatch is returned by Verify when the generator doesn't
// vanish exactly on the code's roots.
var ErrRootMismatch = errors.New("generator roots mismatch")

// Verify checks that c.Generator evaluated at α^r, with α from table,
// is zero exactly when r is in c.Roots.
func (c *Code) Verify(table *gf2n.LogTable) error {
	if table.Order() != c.Length {
		return xerrors.Errorf("table has order %d, code has length %d: %w", table.Order(), c.Length, errorcode.ErrDegreeMismatch)
	}
	for r := 0; r < c.Length; r++ {
		isRoot := table.Evaluate(c.Generator, r) == 0
		if isRoot != c.Roots.Test(uint(r)) {
			return xerrors.Errorf("g(α^%d) is zero: %t, expected %t: %w", r, isRoot, !isRoot, ErrRootMismatch)
		}
	}
	return nil
}
