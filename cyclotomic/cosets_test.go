package cyclotomic

import (
	"testing"

	"github.com/akalin/bchgen/errorcode"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func membersOf(cosets []*bitset.BitSet) [][]int {
	var members [][]int
	for _, coset := range cosets {
		members = append(members, Members(coset))
	}
	return members
}

func TestCosetsGF16(t *testing.T) {
	cosets, err := Cosets(4)
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{0},
		{1, 2, 4, 8},
		{3, 6, 9, 12},
		{5, 10},
		{7, 11, 13, 14},
	}, membersOf(cosets))
}

func TestCosetsSmall(t *testing.T) {
	cosets, err := Cosets(1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, membersOf(cosets))

	cosets, err = Cosets(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1, 2}}, membersOf(cosets))

	cosets, err = Cosets(3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1, 2, 4}, {3, 5, 6}}, membersOf(cosets))
}

func TestCosetsPartition(t *testing.T) {
	for n := 1; n <= 12; n++ {
		cosets, err := Cosets(n)
		require.NoError(t, err)
		m := 1<<n - 1

		seen := bitset.New(uint(m))
		last := -1
		for _, coset := range cosets {
			require.NotZero(t, coset.Count())
			require.Zero(t, seen.IntersectionCardinality(coset), "n=%d", n)
			seen.InPlaceUnion(coset)

			rep, ok := Representative(coset)
			require.True(t, ok)
			require.Greater(t, rep, last)
			last = rep

			// Closed under doubling, and the size divides n.
			for _, k := range Members(coset) {
				require.True(t, coset.Test(uint(2*k%m)), "n=%d, k=%d", n, k)
			}
			require.Zero(t, n%int(coset.Count()), "n=%d", n)
		}
		require.Equal(t, uint(m), seen.Count())
	}
}

func TestCosetOf(t *testing.T) {
	coset, err := CosetOf(4, 6)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6, 9, 12}, Members(coset))

	coset, err = CosetOf(4, 20)
	require.NoError(t, err)
	require.Equal(t, []int{5, 10}, Members(coset))

	coset, err = CosetOf(5, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, Members(coset))

	_, err = CosetOf(4, -1)
	require.ErrorIs(t, err, errorcode.ErrInvalidParameter)
}

func TestCosetsInvalid(t *testing.T) {
	for _, n := range []int{-1, 0, MaxDegree + 1} {
		_, err := Cosets(n)
		require.ErrorIs(t, err, errorcode.ErrInvalidParameter, "n=%d", n)
		_, err = CosetOf(n, 1)
		require.ErrorIs(t, err, errorcode.ErrInvalidParameter, "n=%d", n)
	}
}

func TestUnion(t *testing.T) {
	a, err := CosetOf(4, 1)
	require.NoError(t, err)
	b, err := CosetOf(4, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 6, 8, 9, 12}, Members(Union(a, b)))
	require.Equal(t, []int{1, 2, 4, 8}, Members(a))

	require.Empty(t, Members(Union()))
	_, ok := Representative(Union())
	require.False(t, ok)
}
