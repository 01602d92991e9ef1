// Package generator synthesizes polynomials over GF(2) from sets of
// roots in GF(2^n), given as exponents of α.
package generator

import (
	"runtime"
	"sync"

	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/gf2"
	"github.com/akalin/bchgen/gf2n"
	"github.com/bits-and-blooms/bitset"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/xerrors"
)

// DefaultNumGoroutines returns the default value used for
// Options.NumGoroutines, which is the number of logical cores.
func DefaultNumGoroutines() int {
	if cpuid.CPU.LogicalCores > 0 {
		return cpuid.CPU.LogicalCores
	}
	return runtime.NumCPU()
}

// Options holds the options for synthesizing a polynomial.
type Options struct {
	// The number of goroutines used to compute coefficients. If
	// zero, DefaultNumGoroutines() is used.
	NumGoroutines int
}

func exponentsOf(roots *bitset.BitSet, order int) ([]int, error) {
	exps := make([]int, 0, roots.Count())
	for i, ok := roots.NextSet(0); ok; i, ok = roots.NextSet(i + 1) {
		if i >= uint(order) {
			return nil, xerrors.Errorf("root exponent %d not in [0, %d]: %w", i, order-1, errorcode.ErrInvalidParameter)
		}
		exps = append(exps, int(i))
	}
	return exps, nil
}

// elementarySum returns e_s(α^exps), the xor of α^(sum of S) over all
// s-subsets S of exps.
func elementarySum(exps []int, s int, table *gf2n.LogTable) gf2.Poly64 {
	order := table.Order()
	var sum gf2.Poly64
	var visit func(start, remaining, exp int)
	visit = func(start, remaining, exp int) {
		if remaining == 0 {
			sum ^= table.Element(exp)
			return
		}
		for i := start; i <= len(exps)-remaining; i++ {
			visit(i+1, remaining-1, (exp+exps[i])%order)
		}
	}
	visit(0, s, 0)
	return sum
}

// FromRoots returns the polynomial whose roots are α^r for each
// exponent r in roots, where α generates the field described by
// table:
//
//	x^k + e_1 x^(k-1) + e_2 x^(k-2) + ... + e_k
//
// where k is the number of roots and e_s is the xor of the table
// entries for the sums of all s-subsets of the exponents. Each e_s is
// placed by shifting it left by k - s bits, so if roots is not closed
// under doubling mod 2^n - 1, the coefficients aren't all in GF(2) and
// overlapping bits cancel. If roots is a union of cyclotomic cosets,
// the result is the product of the corresponding minimal polynomials.
//
// An empty set of roots yields the zero polynomial. Root exponents
// must be less than 2^n - 1.
//
// This enumerates every subset of roots, so it takes O(2^k) time.
func FromRoots(roots *bitset.BitSet, table *gf2n.LogTable, options Options) (gf2.Poly, error) {
	exps, err := exponentsOf(roots, table.Order())
	if err != nil {
		return gf2.Poly{}, err
	}
	k := len(exps)
	if k == 0 {
		return gf2.Poly{}, nil
	}

	numGoroutines := options.NumGoroutines
	if numGoroutines <= 0 {
		numGoroutines = DefaultNumGoroutines()
	}
	if numGoroutines > k {
		numGoroutines = k
	}

	// coefficients[s-1] is e_s.
	coefficients := make([]gf2.Poly64, k)
	jobs := make(chan int)
	wg := new(sync.WaitGroup)
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for s := range jobs {
				coefficients[s-1] = elementarySum(exps, s, table)
			}
		}()
	}
	// Larger subset counts are in the middle, so hand those out
	// first.
	for _, s := range jobOrder(k) {
		jobs <- s
	}
	close(jobs)
	wg.Wait()

	p := gf2.FromPositions(k)
	for s, e := range coefficients {
		shifted := gf2.FromUint64(uint64(e)).Times(gf2.FromPositions(k - s - 1))
		p = p.Plus(shifted)
	}
	return p, nil
}

// jobOrder returns 1..k, ordered by descending binomial(k, s).
func jobOrder(k int) []int {
	order := make([]int, 0, k)
	lo, hi := (k+1)/2, (k+1)/2+1
	for lo >= 1 || hi <= k {
		if lo >= 1 {
			order = append(order, lo)
			lo--
		}
		if hi <= k {
			order = append(order, hi)
			hi++
		}
	}
	return order
}

// MinimalPolynomial returns the minimal polynomial over GF(2) of the
// elements α^r for r in coset, which should be a cyclotomic coset.
func MinimalPolynomial(coset *bitset.BitSet, table *gf2n.LogTable, options Options) (gf2.Poly, error) {
	if coset.None() {
		return gf2.Poly{}, xerrors.Errorf("empty coset: %w", errorcode.ErrInvalidParameter)
	}
	return FromRoots(coset, table, options)
}
