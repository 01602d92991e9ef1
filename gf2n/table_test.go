package gf2n

import (
	"testing"

	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/gf2"
	"github.com/stretchr/testify/require"
)

func elementsOf(table *LogTable) []gf2.Poly64 {
	var elements []gf2.Poly64
	for exp := -1; exp < table.Order(); exp++ {
		elements = append(elements, table.Element(exp))
	}
	return elements
}

func TestNewLogTableGF16(t *testing.T) {
	table, err := NewLogTable(4, 0b10011)
	require.NoError(t, err)
	require.Equal(t, 4, table.Degree())
	require.Equal(t, 15, table.Order())
	require.Equal(t, 16, table.Len())
	require.Equal(t, gf2.Poly64(0b10011), table.Primitive())
	require.Equal(t, []gf2.Poly64{
		0, 1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9,
	}, elementsOf(table))
	require.Equal(t, gf2.Poly64(0b0011), table.Element(4))
	require.NoError(t, table.CheckPrimitive())
}

func TestNewLogTableSmall(t *testing.T) {
	table, err := NewLogTable(1, 0b11)
	require.NoError(t, err)
	require.Equal(t, []gf2.Poly64{0, 1}, elementsOf(table))
	require.NoError(t, table.CheckPrimitive())

	table, err = NewLogTable(2, 0b111)
	require.NoError(t, err)
	require.Equal(t, []gf2.Poly64{0, 1, 2, 3}, elementsOf(table))

	table, err = NewLogTable(3, 0b1011)
	require.NoError(t, err)
	require.Equal(t, []gf2.Poly64{0, 1, 2, 4, 3, 6, 7, 5}, elementsOf(table))
}

func TestNewLogTableBijection(t *testing.T) {
	for _, tc := range []struct {
		n         int
		primitive gf2.Poly64
	}{
		{5, 0b100101},
		{8, 0x187},
		{8, 0x11d},
		{12, 0x1053},
		{16, 0x1100b},
	} {
		table, err := NewLogTable(tc.n, tc.primitive)
		require.NoError(t, err)
		require.Equal(t, 1<<tc.n, table.Len())
		require.Equal(t, gf2.Poly64(0), table.Element(-1))
		require.NoError(t, table.CheckPrimitive(), "n=%d", tc.n)

		seen := make(map[gf2.Poly64]bool)
		for exp := 0; exp < table.Order(); exp++ {
			x := table.Element(exp)
			require.NotZero(t, x)
			require.Less(t, x.BitLen(), tc.n+1)
			require.False(t, seen[x], "exp=%d", exp)
			seen[x] = true
		}
		require.Len(t, seen, table.Order())
	}
}

func TestNewLogTableMatchesMulMod(t *testing.T) {
	const primitive = 0x11d
	table, err := NewLogTable(8, primitive)
	require.NoError(t, err)
	x := gf2.Poly64(1)
	for exp := 0; exp < table.Order(); exp++ {
		require.Equal(t, x, table.Element(exp), "exp=%d", exp)
		x = x.MulMod(2, primitive)
	}
}

func TestNewLogTableErrors(t *testing.T) {
	_, err := NewLogTable(0, 0b11)
	require.ErrorIs(t, err, errorcode.ErrInvalidParameter)

	_, err = NewLogTable(MaxDegree+1, 0b11)
	require.ErrorIs(t, err, errorcode.ErrInvalidParameter)

	_, err = NewLogTable(4, 0b1011)
	require.ErrorIs(t, err, errorcode.ErrDegreeMismatch)

	_, err = NewLogTable(3, 0b10011)
	require.ErrorIs(t, err, errorcode.ErrDegreeMismatch)
}

func TestCheckPrimitiveNonPrimitive(t *testing.T) {
	// x^4 + x^3 + x^2 + x + 1 is irreducible, but x has order 5.
	table, err := NewLogTable(4, 0b11111)
	require.NoError(t, err)
	require.Equal(t, gf2.Poly64(1), table.Element(5))
	err = table.CheckPrimitive()
	require.ErrorIs(t, err, errorcode.ErrNotPrimitive)
	require.Equal(t, errorcode.NotPrimitive, errorcode.FromError(err))
}

func TestElementOutOfRange(t *testing.T) {
	table, err := NewLogTable(4, 0b10011)
	require.NoError(t, err)
	require.Panics(t, func() { table.Element(-2) })
	require.Panics(t, func() { table.Element(15) })
}

func TestPowLog(t *testing.T) {
	table, err := NewLogTable(4, 0b10011)
	require.NoError(t, err)
	require.Equal(t, gf2.Poly64(1), table.Pow(15))
	require.Equal(t, gf2.Poly64(2), table.Pow(16))
	require.Equal(t, table.Element(14), table.Pow(-1))

	require.Equal(t, -1, table.Log(0))
	for exp := 0; exp < table.Order(); exp++ {
		require.Equal(t, exp, table.Log(table.Element(exp)))
	}
	require.Panics(t, func() { table.Log(16) })
}
