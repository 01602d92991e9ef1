package gf2

import (
	"math/big"
	"testing"

	"github.com/akalin/bchgen/errorcode"
	"github.com/stretchr/testify/require"
)

func TestPolyTimesMatchesPoly64(t *testing.T) {
	for i := uint64(0); i < 1<<7; i++ {
		for j := uint64(0); j < 1<<7; j++ {
			expected := FromUint64(uint64(Poly64(i).Times(Poly64(j))))
			require.True(t, expected.Equal(FromUint64(i).Times(FromUint64(j))), "i=%d, j=%d", i, j)
		}
	}
}

func TestPolyTimesCommutative(t *testing.T) {
	for i := uint64(0); i < 1<<6; i++ {
		for j := uint64(0); j < 1<<6; j++ {
			a := FromUint64(i)
			b := FromUint64(j)
			require.True(t, a.Times(b).Equal(b.Times(a)), "i=%d, j=%d", i, j)
		}
	}
}

func TestPolyTimesBilinear(t *testing.T) {
	for i := uint64(0); i < 1<<5; i++ {
		for i2 := uint64(0); i2 < 1<<5; i2++ {
			for j := uint64(1); j < 1<<5; j += 3 {
				a := FromUint64(i)
				a2 := FromUint64(i2)
				b := FromUint64(j)
				require.True(t, a.Plus(a2).Times(b).Equal(a.Times(b).Plus(a2.Times(b))),
					"i=%d, i2=%d, j=%d", i, i2, j)
			}
		}
	}
}

func TestPolyDiv(t *testing.T) {
	for i := uint64(0); i < 1<<8; i++ {
		for j := uint64(1); j < 1<<6; j++ {
			a := FromUint64(i)
			b := FromUint64(j)
			q, r, err := a.Div(b)
			require.NoError(t, err)
			require.True(t, a.Equal(q.Times(b).Plus(r)), "i=%d, j=%d, q=%s, r=%s", i, j, q, r)
			require.Less(t, r.Degree(), b.Degree(), "i=%d, j=%d", i, j)
		}
	}
}

func TestPolyDivExample(t *testing.T) {
	// 100100100000001 / 11001 = 11101000111, remainder 1110.
	a, err := ParsePoly("0b100100100000001")
	require.NoError(t, err)
	q, r, err := a.Div(FromUint64(0b11001))
	require.NoError(t, err)
	require.Equal(t, "11101000111", q.Binary())
	require.Equal(t, "1110", r.Binary())
}

func TestPolyDivWide(t *testing.T) {
	// x^255 + 1 is divisible by the primitive polynomial x^8 +
	// x^4 + x^3 + x^2 + 1, since x has order 255.
	a := FromPositions(255, 0)
	m := FromUint64(0x11d)
	q, r, err := a.Div(m)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.Equal(t, 247, q.Degree())
	require.True(t, a.Equal(q.Times(m)))
}

func TestPolyDivByZero(t *testing.T) {
	_, _, err := FromUint64(5).Div(Poly{})
	require.Equal(t, errorcode.ErrDivisionByZero, err)
}

func TestPolyOfPower(t *testing.T) {
	// (x^2 + x + 1)(x^3) = x^6 + x^3 + 1.
	require.Equal(t, "x^6 + x^3 + 1", FromUint64(7).OfPower(3).String())
	require.True(t, FromUint64(7).Equal(FromUint64(7).OfPower(1)))
	require.True(t, FromUint64(1).Equal(FromUint64(7).OfPower(0)))

	// Squaring is linear over GF(2).
	for i := uint64(0); i < 1<<8; i++ {
		p := FromUint64(i)
		require.True(t, p.Times(p).Equal(p.OfPower(2)), "i=%d", i)
	}
}

func TestPolyTrim(t *testing.T) {
	p := FromPositions(100, 70, 4, 1, 0)
	require.Equal(t, []int{0, 1, 4}, p.Trim(5).Positions())
	require.Equal(t, []int{0, 1, 4, 70}, p.Trim(71).Positions())
	require.True(t, p.Trim(0).IsZero())
	for length := 0; length < 110; length++ {
		require.True(t, p.Trim(length).Equal(p.Trim(length).Trim(length)), "length=%d", length)
	}
}

func TestPolyPositions(t *testing.T) {
	require.Nil(t, Poly{}.Positions())
	require.Equal(t, []int{0, 1, 4}, FromUint64(0b10011).Positions())
	require.Equal(t, []int{3, 64, 200}, FromPositions(200, 64, 3).Positions())
}

func TestPolyZeroValue(t *testing.T) {
	var p Poly
	require.True(t, p.IsZero())
	require.Equal(t, -1, p.Degree())
	require.Equal(t, "0", p.String())
	require.True(t, p.Times(FromUint64(7)).IsZero())
	require.True(t, p.Plus(FromUint64(7)).Equal(FromUint64(7)))
}

func TestPolyUint64(t *testing.T) {
	u, ok := FromUint64(0x1100b).Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(0x1100b), u)

	_, ok = FromPositions(64).Uint64()
	require.False(t, ok)
}

func TestPolyBigIsCopy(t *testing.T) {
	p := FromUint64(5)
	p.Big().SetInt64(7)
	require.Equal(t, big.NewInt(5), p.Big())
}

func TestParsePoly(t *testing.T) {
	for _, tc := range []struct {
		s        string
		expected uint64
	}{
		{"0b10011", 0b10011},
		{"0x13", 0x13},
		{"19", 19},
		{"x^4 + x + 1", 0b10011},
		{"x^4+x+1", 0b10011},
		{" x ", 2},
		{"1", 1},
		{"x^3 + x^3 + x", 2},
	} {
		p, err := ParsePoly(tc.s)
		require.NoError(t, err, "s=%q", tc.s)
		require.True(t, FromUint64(tc.expected).Equal(p), "s=%q, p=%s", tc.s, p)
	}

	for _, s := range []string{"", "-5", "x^-1", "y^2 + 1", "0b102", "x^2 + 2"} {
		_, err := ParsePoly(s)
		require.ErrorIs(t, err, errorcode.ErrInvalidParameter, "s=%q", s)
	}
}
