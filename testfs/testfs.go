// Package testfs wraps an fs.FS for tests, logging every open and
// checking that read streams are closed exactly once and not used
// afterwards.
package testfs

import (
	"fmt"
	"testing"

	"github.com/akalin/bchgen/fs"
)

// TestFS wraps an fs.FS, logging every call to a *testing.T.
type TestFS struct {
	t         *testing.T
	fs        fs.FS
	openPaths map[string]bool
}

// MakeTestFS returns a TestFS that wraps the given implementation.
func MakeTestFS(t *testing.T, wrapped fs.FS) TestFS {
	return TestFS{t, wrapped, make(map[string]bool)}
}

type checkingReadStream struct {
	fs.ReadStream
	openPaths map[string]bool
	path      string
	closed    *bool
}

func (s checkingReadStream) Read(p []byte) (int, error) {
	if *s.closed {
		return 0, fmt.Errorf("%q read after close", s.path)
	}
	return s.ReadStream.Read(p)
}

func (s checkingReadStream) ByteCount() int64 {
	if *s.closed {
		panic(fmt.Sprintf("%q used after close", s.path))
	}
	return s.ReadStream.ByteCount()
}

func (s checkingReadStream) Close() error {
	if *s.closed {
		return fmt.Errorf("%q is already closed", s.path)
	}
	*s.closed = true
	delete(s.openPaths, s.path)
	return s.ReadStream.Close()
}

// GetReadStream implements the fs.FS interface. It fails if path is
// already open.
func (tfs TestFS) GetReadStream(path string) (readStream fs.ReadStream, err error) {
	tfs.t.Helper()
	defer func() {
		tfs.t.Helper()
		var byteCount int64
		if readStream != nil {
			byteCount = readStream.ByteCount()
		}
		tfs.t.Logf("GetReadStream(%q) => (%d bytes, %v)", path, byteCount, err)
	}()

	if tfs.openPaths[path] {
		return nil, fmt.Errorf("%q is already open", path)
	}
	inner, err := tfs.fs.GetReadStream(path)
	if err != nil {
		return nil, err
	}
	tfs.openPaths[path] = true
	return checkingReadStream{inner, tfs.openPaths, path, new(bool)}, nil
}

// OpenCount returns the number of read streams that haven't been
// closed yet.
func (tfs TestFS) OpenCount() int {
	return len(tfs.openPaths)
}
