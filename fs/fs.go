// Package fs abstracts reading whole files, so that tables can come
// from disk, from data built into the binary, or from memory in
// tests.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

// ReadStream is a file opened for reading whose size is known up
// front. It must not be used once it is closed.
type ReadStream interface {
	io.ReadCloser
	ByteCount() int64
}

// ByteCountHolder holds a byte count, and is meant to be embedded
// into a struct to implement ReadStream.ByteCount.
type ByteCountHolder struct {
	Count int64
}

// ByteCount returns h.Count.
func (h ByteCountHolder) ByteCount() int64 {
	return h.Count
}

// FS is the interface used by the primpoly package to read
// tabulated data. Most code uses DefaultFS, but the built-in table
// and tests use other implementations.
type FS interface {
	// GetReadStream returns a ReadStream to read the file at the
	// given path. Exactly one of the returned ReadStream and
	// error is non-nil.
	GetReadStream(path string) (ReadStream, error)
}

// ErrByteCountMismatch is returned by ReadAndClose when a stream
// doesn't hold exactly as many bytes as it says it does.
var ErrByteCountMismatch = errors.New("data doesn't match byte count")

// ReadAndClose reads all the data in the given ReadStream into a
// buffer and returns it, closing it in all cases. It is an error for
// the stream to end before or after its byte count.
//
// If err == nil, the returned buffer will never be nil, even if it
// has length 0.
func ReadAndClose(readStream ReadStream) (data []byte, err error) {
	defer func() {
		closeErr := readStream.Close()
		if err == nil {
			err = closeErr
		}
	}()
	byteCount := readStream.ByteCount()
	if int64(int(byteCount)) != byteCount || byteCount == math.MaxInt64 {
		return nil, errors.New("file too big to read into memory")
	}

	// Read one byte past the end, to detect extra data.
	data = make([]byte, 0, byteCount+1)
	buf := bytes.NewBuffer(data)
	if _, err := buf.ReadFrom(io.LimitReader(readStream, byteCount+1)); err != nil {
		return nil, err
	}
	if int64(buf.Len()) != byteCount {
		return nil, fmt.Errorf("read %d bytes, expected %d: %w", buf.Len(), byteCount, ErrByteCountMismatch)
	}
	return buf.Bytes(), nil
}
