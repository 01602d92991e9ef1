package fs

import (
	"os"
)

// DefaultFS reads files from the operating system, and is the
// implementation of FS used outside of tests.
type DefaultFS struct{}

type osReadStream struct {
	*os.File
	ByteCountHolder
}

// GetReadStream opens the file at path, taking its byte count from
// its size at the time it was opened.
func (DefaultFS) GetReadStream(path string) (ReadStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return osReadStream{f, ByteCountHolder{Count: info.Size()}}, nil
}
