package reading

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// codecFor returns the compression format implied by the file extension, or
// "" for files that are read as-is.
func codecFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return "gzip"
	case ".zst", ".zstd":
		return "zstd"
	case ".br":
		return "brotli"
	case ".lz4":
		return "lz4"
	default:
		return ""
	}
}

// decompressor wraps r in a decoder for codec. The returned close function
// releases the decoder only (never r) and is never nil.
func decompressor(codec string, r io.Reader) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch codec {
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: gzip: %w", ErrDecompress, err)
		}

		return zr, zr.Close, nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
		}

		return zr, func() error {
			zr.Close()

			return nil
		}, nil
	case "brotli":
		return brotli.NewReader(r), noop, nil
	case "lz4":
		return lz4.NewReader(r), noop, nil
	default:
		return r, noop, nil
	}
}
