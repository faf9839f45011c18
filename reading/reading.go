// Package reading loads a whole file into memory as text or bytes.
//
// Files ending in .gz, .zst, .br or .lz4 are decompressed on the fly, and text
// reads decode byte order marks and non UTF-8 charsets so puzzle inputs saved
// by any editor come back as a plain Go string.
//
//	input, err := reading.ReadString("day01.txt")
//	raw, err := reading.ReadFile[[]byte]("day01.txt.gz")
package reading

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/amp-labs/aoc-common/convert"
)

var (
	// ErrDecompress is returned when a compressed file cannot be decoded.
	ErrDecompress = errors.New("failed to decompress file")

	// ErrInvalidUTF8 is returned by text reads under WithStrictUTF8.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

	// ErrUnknownCharset is returned when the text charset cannot be
	// determined or has no decoder.
	ErrUnknownCharset = errors.New("unknown charset")
)

// Content is the shape a file can be read into.
type Content interface {
	string | []byte
}

// ReadFile reads the whole file at path as C. Text content is decoded to
// UTF-8; byte content is returned exactly as stored (after decompression).
//
// Errors from opening or reading the file are the host's *fs.PathError values,
// returned unwrapped.
func ReadFile[C Content](path string, opts ...Option) (C, error) { //nolint:ireturn
	var zero C

	o := newOptions(opts)

	data, err := readAll(path, o)
	if err != nil {
		return zero, err
	}

	if _, isText := any(zero).(string); !isText {
		return C(data), nil
	}

	text, err := decodeText(path, data, o)
	if err != nil {
		return zero, err
	}

	return C(text), nil
}

// ReadString reads the whole file at path as UTF-8 text.
func ReadString(path string, opts ...Option) (string, error) {
	return ReadFile[string](path, opts...)
}

// ReadBytes reads the whole file at path.
func ReadBytes(path string, opts ...Option) ([]byte, error) {
	return ReadFile[[]byte](path, opts...)
}

// ReadLines reads the file at path as text and splits it into lines without
// their terminators.
func ReadLines(path string, opts ...Option) ([]string, error) {
	text, err := ReadString(path, opts...)
	if err != nil {
		return nil, err
	}

	return slices.Collect(convert.Lines(text)), nil
}

// readAll opens path and reads it through readStream.
func readAll(path string, opts *options) ([]byte, error) {
	file, err := os.Open(path) // #nosec G304 -- reading the caller's file is the point
	if err != nil {
		return nil, err
	}

	codec := ""
	if opts.decompress {
		codec = codecFor(path)
	}

	return readStream(file, codec, decompressor)
}

// decodeFunc wraps a reader in the decoder for a codec. See decompressor.
type decodeFunc func(codec string, r io.Reader) (io.Reader, func() error, error)

// readStream reads src through a buffered (and possibly decompressing) reader.
// The decoder and src are closed on every return path; a close error is
// returned when nothing else failed first.
func readStream(src io.ReadCloser, codec string, decode decodeFunc) (data []byte, err error) {
	defer func() {
		if closeErr := src.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	reader, closeDecoder, err := decode(codec, bufio.NewReader(src))
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := closeDecoder(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	data, err = io.ReadAll(reader)
	if err != nil {
		if codec != "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecompress, codec, err)
		}

		return nil, err
	}

	return data, nil
}
