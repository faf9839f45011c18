package reading

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/amp-labs/aoc-common/logger"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// hasBOM reports whether data starts with a UTF-8 or UTF-16 byte order mark.
func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}

// decodeText turns raw file content into a UTF-8 string.
//
// The order is: a forced charset label, then a byte order mark, then plain
// UTF-8, and finally charset detection (unless strict UTF-8 was requested).
func decodeText(path string, data []byte, opts *options) (string, error) {
	if opts.charset != "" {
		return decodeLabel(opts.charset, data)
	}

	if hasBOM(data) {
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

		out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
		if err != nil {
			return "", err
		}

		return string(out), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	if opts.strictUTF8 {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	detector := chardet.NewTextDetector()

	best, err := detector.DetectBest(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnknownCharset, path, err)
	}

	logger.Get().Debug("detected file charset",
		"path", path,
		"charset", best.Charset,
		"confidence", best.Confidence)

	return decodeLabel(best.Charset, data)
}

// decodeLabel decodes data from the charset named by label.
func decodeLabel(label string, data []byte) (string, error) {
	reader, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrUnknownCharset, label, err)
	}

	out, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
