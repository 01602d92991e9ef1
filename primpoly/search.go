package primpoly

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/gf2"
	"golang.org/x/xerrors"
)

// primeFactors returns the distinct prime factors of m in ascending
// order. m is 2^n - 1 for n <= MaxDegree, so trial division only has
// to go as far as the second largest factor.
func primeFactors(m uint64) []uint64 {
	var factors []uint64
	if m%2 == 0 {
		factors = append(factors, 2)
		for m%2 == 0 {
			m /= 2
		}
	}
	if !probablyPrime(m) {
		for d := uint64(3); d*d <= m; d += 2 {
			if m%d != 0 {
				continue
			}
			factors = append(factors, d)
			for m%d == 0 {
				m /= d
			}
			if probablyPrime(m) {
				break
			}
		}
	}
	if m > 1 {
		factors = append(factors, m)
	}
	return factors
}

func probablyPrime(m uint64) bool {
	return new(big.Int).SetUint64(m).ProbablyPrime(20)
}

// powX returns x^e mod m.
func powX(e uint64, m gf2.Poly64) gf2.Poly64 {
	result := gf2.Poly64(1)
	base := gf2.Poly64(2)
	for ; e != 0; e >>= 1 {
		if e&1 != 0 {
			result = result.MulMod(base, m)
		}
		base = base.MulMod(base, m)
	}
	return result
}

// IsPrimitive returns whether p is a primitive polynomial of degree
// at most MaxDegree, i.e. whether x has order 2^n - 1 modulo p.
func IsPrimitive(p gf2.Poly64) bool {
	n := p.Degree()
	if n < MinDegree || n > MaxDegree || p&1 == 0 {
		return false
	}
	if n == 1 {
		// x + 1 is the only candidate, and GF(2)'s multiplicative
		// group is trivial.
		return p == 3
	}
	order := uint64(1)<<n - 1
	if powX(order, p) != 1 {
		return false
	}
	for _, q := range primeFactors(order) {
		if powX(order/q, p) == 1 {
			return false
		}
	}
	return true
}

// nextCombination advances idx, an ascending combination of values in
// [1, max], to the next one in lexicographic order. It returns false
// if idx was the last one.
func nextCombination(idx []int, max int) bool {
	k := len(idx)
	for i := k - 1; i >= 0; i-- {
		if idx[i] < max-(k-1-i) {
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
	}
	return false
}

// Search returns the first primitive polynomial of degree n with as
// many middle terms as a class k polynomial has (1, 3 or 5), taking
// the powers of the middle terms in ascending lexicographic order.
//
// As a special case, Search(1, 1) returns x + 1, which has no middle
// terms. If there is no such polynomial, an error wrapping
// errorcode.ErrNoDataForField is returned.
func Search(n, k int) (gf2.Poly64, error) {
	if err := checkDegreeAndClass(n, k); err != nil {
		return 0, err
	}
	if n == 1 && k == MinClass {
		return 3, nil
	}

	terms := classBounds[k] - classBounds[k-1]
	if terms <= n-1 {
		idx := make([]int, terms)
		for i := range idx {
			idx[i] = i + 1
		}
		for {
			p := gf2.Poly64(1)<<n | 1
			for _, i := range idx {
				p |= 1 << i
			}
			if IsPrimitive(p) {
				return p, nil
			}
			if !nextCombination(idx, n-1) {
				break
			}
		}
	}
	return 0, xerrors.Errorf("no primitive polynomial of degree %d with %d middle terms: %w", n, terms, errorcode.ErrNoDataForField)
}

// FormatRow searches for every class of primitive polynomial of
// degree n and formats the results as a table row readable by
// Source.
func FormatRow(n int) (string, error) {
	fields := []string{strconv.Itoa(n)}
	for k := MinClass; k <= MaxClass; k++ {
		width := classBounds[k] - classBounds[k-1]
		p, err := Search(n, k)
		if xerrors.Is(err, errorcode.ErrNoDataForField) {
			fields = append(fields, make([]string, width)...)
			continue
		} else if err != nil {
			return "", err
		}

		var middle []string
		for i := n - 1; i > 0; i-- {
			if p>>i&1 != 0 {
				middle = append(middle, strconv.Itoa(i))
			}
		}
		if len(middle) == 0 {
			// x + 1; an explicit 0 keeps the class from
			// reading as missing.
			middle = []string{"0"}
		}
		fields = append(fields, middle...)
	}
	return strings.Join(fields, ","), nil
}
