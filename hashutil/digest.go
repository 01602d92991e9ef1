package hashutil

import (
	"crypto/md5"
	"encoding/hex"
	"hash"

	"github.com/akalin/bchgen/fs"
)

// A Digest is the MD5 hash of some data, used to identify which
// primitive polynomial table a result came from.
type Digest [md5.Size]byte

// String returns d in lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// DigestOf returns the Digest of data.
func DigestOf(data []byte) Digest {
	return md5.Sum(data)
}

// A DigestingReadStream is an fs.ReadStream that keeps track of the
// MD5 hash of everything read through it. Close and ByteCount are
// passed through to the wrapped stream.
type DigestingReadStream struct {
	fs.ReadStream
	h hash.Hash
}

// MakeDigestingReadStream wraps r so that reads are also fed to an
// MD5 hash.
func MakeDigestingReadStream(r fs.ReadStream) DigestingReadStream {
	return DigestingReadStream{r, md5.New()}
}

func (d DigestingReadStream) Read(p []byte) (n int, err error) {
	n, err = d.ReadStream.Read(p)
	if n > 0 {
		// hash.Hash.Write never returns an error.
		_, _ = d.h.Write(p[:n])
	}
	return n, err
}

// Digest returns the Digest of the data read so far.
func (d DigestingReadStream) Digest() Digest {
	var digest Digest
	d.h.Sum(digest[:0])
	return digest
}
