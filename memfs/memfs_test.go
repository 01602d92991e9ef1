package memfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akalin/bchgen/fs"
	"github.com/stretchr/testify/require"
)

func TestMemFSGetReadStream(t *testing.T) {
	workingDir := filepath.Join(RootDir(), "tables")
	fileData := make(map[string][]byte)
	fileData["table.csv"] = []byte("4,1\n")
	fileData[filepath.Join("dir", "other.csv")] = []byte("5,2\n")
	fileData[filepath.Join(RootDir(), "abs.csv")] = []byte("6,1\n")
	mfs := MakeMemFS(workingDir, fileData)

	expected := make(map[string]string)
	expected["table.csv"] = "4,1\n"
	expected[filepath.Join(workingDir, "table.csv")] = "4,1\n"
	expected[filepath.Join("dir", "other.csv")] = "5,2\n"
	expected[filepath.Join("..", "abs.csv")] = "6,1\n"
	expected[filepath.Join(RootDir(), "abs.csv")] = "6,1\n"
	for path, contents := range expected {
		readStream, err := mfs.GetReadStream(path)
		require.NoError(t, err, "path=%s", path)
		data, err := fs.ReadAndClose(readStream)
		require.NoError(t, err, "path=%s", path)
		require.Equal(t, contents, string(data), "path=%s", path)
	}

	_, err := mfs.GetReadStream("missing.csv")
	require.True(t, os.IsNotExist(err))
}

func TestMakeMemFSRelativeWorkingDir(t *testing.T) {
	require.Panics(t, func() {
		MakeMemFS("tables", map[string][]byte{"table.csv": nil})
	})
}
