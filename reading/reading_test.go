package reading

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "hello! this is a test!"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func compress(t *testing.T, newWriter func(io.Writer) (io.WriteCloser, error), data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer

	w, err := newWriter(&buf)
	require.NoError(t, err)

	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestReadStringAndBytes(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "test.txt", []byte(sample))

	text, err := ReadString(path)
	require.NoError(t, err)
	assert.Equal(t, sample, text)

	raw, err := ReadBytes(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(sample), raw)

	generic, err := ReadFile[string](path)
	require.NoError(t, err)
	assert.Equal(t, sample, generic)
}

func TestReadEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.txt", nil)

	text, err := ReadString(path)
	require.NoError(t, err)
	assert.Empty(t, text)

	raw, err := ReadBytes(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadString(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)

	_, err = ReadBytes(t.TempDir())
	require.Error(t, err)
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "lines.txt", []byte("1\r\n2\n3\n"))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines)

	_, err = ReadLines(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestReadCompressed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		file      string
		newWriter func(io.Writer) (io.WriteCloser, error)
	}{
		{"gzip", "input.txt.gz", func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		}},
		{"zstd", "input.txt.zst", func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		}},
		{"brotli", "input.txt.br", func(w io.Writer) (io.WriteCloser, error) {
			return brotli.NewWriter(w), nil
		}},
		{"lz4", "input.txt.lz4", func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			compressed := compress(t, tt.newWriter, []byte(sample))
			path := writeFile(t, tt.file, compressed)

			text, err := ReadString(path)
			require.NoError(t, err)
			assert.Equal(t, sample, text)

			raw, err := ReadBytes(path, WithoutDecompression())
			require.NoError(t, err)
			assert.Equal(t, compressed, raw)
		})
	}
}

func TestReadCorruptCompressedFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "broken.gz", []byte("definitely not gzip"))

	_, err := ReadBytes(path)
	require.ErrorIs(t, err, ErrDecompress)

	raw, err := ReadBytes(path, WithoutDecompression())
	require.NoError(t, err)
	assert.Equal(t, []byte("definitely not gzip"), raw)
}

func TestReadByteOrderMarks(t *testing.T) {
	t.Parallel()

	t.Run("utf-8 bom is stripped", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, sample...))

		text, err := ReadString(path)
		require.NoError(t, err)
		assert.Equal(t, sample, text)

		raw, err := ReadBytes(path)
		require.NoError(t, err)
		assert.Len(t, raw, len(sample)+3)
	})

	t.Run("utf-16 little endian", func(t *testing.T) {
		t.Parallel()

		data := []byte{0xFF, 0xFE}
		for _, r := range "héllo" {
			data = append(data, byte(r), byte(r>>8))
		}

		text, err := ReadString(writeFile(t, "utf16.txt", data))
		require.NoError(t, err)
		assert.Equal(t, "héllo", text)
	})
}

func TestReadCharsets(t *testing.T) {
	t.Parallel()

	phrase := strings.Repeat("café crème brûlée, déjà vu à la française. ", 4)

	latin1 := make([]byte, 0, len(phrase))
	for _, r := range phrase {
		latin1 = append(latin1, byte(r))
	}

	path := writeFile(t, "latin1.txt", latin1)

	t.Run("forced label", func(t *testing.T) {
		t.Parallel()

		text, err := ReadString(path, WithCharset("latin1"))
		require.NoError(t, err)
		assert.Equal(t, phrase, text)
	})

	t.Run("unknown label", func(t *testing.T) {
		t.Parallel()

		_, err := ReadString(path, WithCharset("klingon"))
		require.ErrorIs(t, err, ErrUnknownCharset)
	})

	t.Run("strict utf-8", func(t *testing.T) {
		t.Parallel()

		_, err := ReadString(path, WithStrictUTF8())
		require.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("detected", func(t *testing.T) {
		t.Parallel()

		text, err := ReadString(path)
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(text))
		assert.Contains(t, text, "caf")
	})

	t.Run("bytes are untouched", func(t *testing.T) {
		t.Parallel()

		raw, err := ReadBytes(path, WithStrictUTF8())
		require.NoError(t, err)
		assert.Equal(t, latin1, raw)
	})
}
