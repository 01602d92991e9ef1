// Package primpoly looks up primitive polynomials over GF(2) in a
// tabulated source, and can search for them directly.
package primpoly

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/fs"
	"github.com/akalin/bchgen/gf2"
	"github.com/akalin/bchgen/hashutil"
	"github.com/akalin/bchgen/memfs"
	"golang.org/x/xerrors"
)

// The range of field exponents n and class selectors k accepted by
// Lookup and Search.
const (
	MinDegree = 1
	MaxDegree = 51
	MinClass  = 1
	MaxClass  = 3
)

// The middle terms of the class k polynomial for a degree are in
// fields [classBounds[k-1], classBounds[k]) of its row. Field 0 is
// the degree itself.
var classBounds = [MaxClass + 1]int{1, 2, 5, 10}

// DefaultTablePath is the path the built-in table is served under by
// DefaultSource.
const DefaultTablePath = "primitive_polynomials.csv"

//go:embed primitive_polynomials.csv
var defaultTable []byte

// SourceDelegate is notified every time a Source reads its table.
type SourceDelegate interface {
	// OnTableRead is called with the number of bytes in the
	// table at path and their digest, or with a non-nil err if
	// the table couldn't be read.
	OnTableRead(path string, byteCount int64, digest hashutil.Digest, err error)
}

// DoNothingSourceDelegate is an implementation of SourceDelegate
// that does nothing for all methods.
type DoNothingSourceDelegate struct{}

// OnTableRead implements the SourceDelegate interface.
func (DoNothingSourceDelegate) OnTableRead(path string, byteCount int64, digest hashutil.Digest, err error) {
}

// A Source resolves primitive polynomials from a CSV table. Each row
// starts with a degree n, followed by the powers of the middle terms
// of the class 1, 2 and 3 polynomials for that degree, in the fields
// given by classBounds. Lines starting with # are ignored.
//
// The table is re-read on every lookup; callers doing many lookups
// should cache the results.
type Source struct {
	fs       fs.FS
	path     string
	delegate SourceDelegate
}

// NewSource returns a Source that reads the table at path from the
// given filesystem. If delegate is nil, DoNothingSourceDelegate is
// used.
func NewSource(fs fs.FS, path string, delegate SourceDelegate) Source {
	if delegate == nil {
		delegate = DoNothingSourceDelegate{}
	}
	return Source{fs, path, delegate}
}

// DefaultSource returns a Source for the table built into the
// binary, which has every class verified primitive for degrees 1
// through 51.
func DefaultSource(delegate SourceDelegate) Source {
	mfs := memfs.MakeMemFS(memfs.RootDir(), map[string][]byte{
		DefaultTablePath: defaultTable,
	})
	return NewSource(mfs, DefaultTablePath, delegate)
}

// Path returns the path of the table s reads.
func (s Source) Path() string {
	return s.path
}

func checkDegreeAndClass(n, k int) error {
	if n < MinDegree || n > MaxDegree {
		return xerrors.Errorf("n=%d not in [%d, %d]: %w", n, MinDegree, MaxDegree, errorcode.ErrInvalidParameter)
	}
	if k < MinClass || k > MaxClass {
		return xerrors.Errorf("k=%d not in [%d, %d]: %w", k, MinClass, MaxClass, errorcode.ErrInvalidParameter)
	}
	return nil
}

// Lookup returns the class k primitive polynomial of degree n from
// the table: x^n + 1 plus x^i for every power i listed for (n, k).
//
// It returns an error wrapping errorcode.ErrInvalidParameter if n or
// k is out of range, and one wrapping errorcode.ErrNoDataForField if
// the table has no row for n or no class k polynomial in that row.
func (s Source) Lookup(n, k int) (gf2.Poly64, error) {
	if err := checkDegreeAndClass(n, k); err != nil {
		return 0, err
	}

	record, err := s.findRow(n)
	if err != nil {
		return 0, err
	}

	var fields []string
	if lo := classBounds[k-1]; lo < len(record) {
		fields = record[lo:min(classBounds[k], len(record))]
	}
	p := gf2.Poly64(1)<<n | 1
	found := false
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		power, err := strconv.Atoi(field)
		if err != nil || power < 0 || power >= n {
			return 0, xerrors.Errorf("row for n=%d in %s: invalid power %q: %w", n, s.path, field, errorcode.ErrMalformedTable)
		}
		p |= 1 << power
		found = true
	}
	if !found {
		return 0, xerrors.Errorf("n=%d, k=%d in %s: %w", n, k, s.path, errorcode.ErrNoDataForField)
	}
	return p, nil
}

func (s Source) readTable() ([]byte, error) {
	readStream, err := s.fs.GetReadStream(s.path)
	if err != nil {
		s.delegate.OnTableRead(s.path, 0, hashutil.Digest{}, err)
		return nil, xerrors.Errorf("reading primitive polynomial table: %w", err)
	}
	digestingStream := hashutil.MakeDigestingReadStream(readStream)
	byteCount := digestingStream.ByteCount()
	data, err := fs.ReadAndClose(digestingStream)
	s.delegate.OnTableRead(s.path, byteCount, digestingStream.Digest(), err)
	if err != nil {
		return nil, xerrors.Errorf("reading primitive polynomial table %s: %w", s.path, err)
	}
	return data, nil
}

// findRow returns the first row of the table for degree n.
func (s Source) findRow(n int) ([]string, error) {
	data, err := s.readTable()
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, xerrors.Errorf("parsing %s: %v: %w", s.path, err, errorcode.ErrMalformedTable)
		}
		rowDegree, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, xerrors.Errorf("%s:%d: invalid degree %q: %w", s.path, line, record[0], errorcode.ErrMalformedTable)
		}
		if rowDegree == n {
			return record, nil
		}
	}
	return nil, xerrors.Errorf("n=%d in %s: %w", n, s.path, errorcode.ErrNoDataForField)
}
