// Package cyclotomic partitions the exponents of the nonzero elements
// of GF(2^n) into cyclotomic cosets: the orbits of k under doubling
// mod 2^n - 1.
package cyclotomic

import (
	"github.com/akalin/bchgen/errorcode"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/xerrors"
)

// The range of field exponents n accepted by Cosets and CosetOf.
// Listing every coset takes O(4^n/n) memory, so callers must bound n
// further in practice.
const (
	MinDegree = 1
	MaxDegree = 51
)

func checkDegree(n int) error {
	if n < MinDegree || n > MaxDegree {
		return xerrors.Errorf("n=%d not in [%d, %d]: %w", n, MinDegree, MaxDegree, errorcode.ErrInvalidParameter)
	}
	return nil
}

func order(n int) uint {
	return 1<<uint(n) - 1
}

// cosetOf returns {k, 2k, 4k, ...} mod m, for k < m.
func cosetOf(k, m uint) *bitset.BitSet {
	coset := bitset.New(m)
	x := k
	for {
		coset.Set(x)
		x = 2 * x % m
		if x == k {
			return coset
		}
	}
}

// Cosets returns the cyclotomic cosets of 2 mod 2^n - 1, in
// ascending order of their smallest member. The first one is always
// {0}. Together they partition {0, ..., 2^n - 2}.
//
// Each returned set has length 2^n - 1, so this takes O(2^n) memory
// per coset.
func Cosets(n int) ([]*bitset.BitSet, error) {
	if err := checkDegree(n); err != nil {
		return nil, err
	}

	m := order(n)
	assigned := bitset.New(m)
	var cosets []*bitset.BitSet
	for assigned.Count() < m {
		k, _ := assigned.NextClear(0)
		coset := cosetOf(k, m)
		assigned.InPlaceUnion(coset)
		cosets = append(cosets, coset)
	}
	return cosets, nil
}

// CosetOf returns the cyclotomic coset containing k mod 2^n - 1.
func CosetOf(n, k int) (*bitset.BitSet, error) {
	if err := checkDegree(n); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, xerrors.Errorf("k=%d is negative: %w", k, errorcode.ErrInvalidParameter)
	}
	m := order(n)
	return cosetOf(uint(k)%m, m), nil
}

// Members returns the elements of set in ascending order.
func Members(set *bitset.BitSet) []int {
	members := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		members = append(members, int(i))
	}
	return members
}

// Union returns a new set containing the members of all the given
// sets.
func Union(sets ...*bitset.BitSet) *bitset.BitSet {
	union := bitset.New(0)
	for _, set := range sets {
		union.InPlaceUnion(set)
	}
	return union
}

// Representative returns the smallest member of a nonempty set, and
// false for an empty one.
func Representative(set *bitset.BitSet) (int, bool) {
	i, ok := set.NextSet(0)
	return int(i), ok
}
