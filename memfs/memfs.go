// Package memfs implements fs.FS over a fixed set of in-memory
// files. It backs the built-in primitive polynomial table and is used
// for testing.
package memfs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/akalin/bchgen/fs"
)

// RootDir returns the root directory of the volume holding the
// working directory, e.g. / or C:\.
func RootDir() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return filepath.VolumeName(filepath.Clean(wd)) + string(filepath.Separator)
}

func toAbsPath(workingDir, path string) string {
	if !filepath.IsAbs(workingDir) {
		panic("workingDir must be an absolute path")
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workingDir, path)
}

// MemFS is a read-only in-memory filesystem with a working
// directory.
type MemFS struct {
	workingDir string
	fileData   map[string][]byte
}

// MakeMemFS makes a MemFS from the given working directory, which
// must be absolute, and file data. Relative paths in fileData are
// taken relative to workingDir.
func MakeMemFS(workingDir string, fileData map[string][]byte) MemFS {
	absFileData := make(map[string][]byte, len(fileData))
	for path, data := range fileData {
		absFileData[toAbsPath(workingDir, path)] = data
	}
	return MemFS{workingDir, absFileData}
}

type bytesReadStream struct {
	*bytes.Reader
	fs.ByteCountHolder
}

func (bytesReadStream) Close() error {
	return nil
}

// MakeReadStream returns an fs.ReadStream that reads from buf.
func MakeReadStream(buf []byte) fs.ReadStream {
	return bytesReadStream{bytes.NewReader(buf), fs.ByteCountHolder{Count: int64(len(buf))}}
}

// GetReadStream implements the fs.FS interface. If the file doesn't
// exist, the returned error is an *os.PathError satisfying
// os.IsNotExist.
func (mfs MemFS) GetReadStream(path string) (fs.ReadStream, error) {
	data, ok := mfs.fileData[toAbsPath(mfs.workingDir, path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return MakeReadStream(data), nil
}
