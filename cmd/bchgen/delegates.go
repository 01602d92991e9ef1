package main

import (
	"log/slog"

	"github.com/akalin/bchgen/gf2"
	"github.com/akalin/bchgen/hashutil"
)

type logDelegate struct {
	logger *slog.Logger
}

func (d logDelegate) OnTableRead(path string, byteCount int64, digest hashutil.Digest, err error) {
	if err != nil {
		d.logger.Warn("Reading primitive polynomial table failed", "path", path, "error", err)
	} else {
		d.logger.Debug("Read primitive polynomial table", "path", path, "bytes", byteCount, "md5", digest.String())
	}
}

func (d logDelegate) OnMinimalPolynomial(representative, size int, m gf2.Poly) {
	d.logger.Debug("Computed minimal polynomial", "coset", representative, "size", size, "polynomial", m.String())
}
