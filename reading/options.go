package reading

// Option configures how a file is read.
type Option func(*options)

type options struct {
	decompress bool
	charset    string
	strictUTF8 bool
}

func newOptions(opts []Option) *options {
	o := &options{decompress: true}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithoutDecompression reads compressed files as raw bytes instead of
// decoding them based on their extension.
func WithoutDecompression() Option {
	return func(o *options) {
		o.decompress = false
	}
}

// WithCharset decodes text content from the given charset label (for example
// "latin1" or "windows-1252") instead of detecting it.
func WithCharset(label string) Option {
	return func(o *options) {
		o.charset = label
	}
}

// WithStrictUTF8 makes text reads fail with ErrInvalidUTF8 when the content is
// not valid UTF-8, instead of detecting another charset.
func WithStrictUTF8() Option {
	return func(o *options) {
		o.strictUTF8 = true
	}
}
