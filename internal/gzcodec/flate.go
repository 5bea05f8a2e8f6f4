package gzcodec

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// Primitive supplies the raw DEFLATE transform that the codec wraps in the
// gzip container. Implementations must produce and consume bare DEFLATE
// streams with a 32 KiB window and no zlib or gzip framing of their own.
type Primitive interface {
	NewWriter(io.Writer) (io.WriteCloser, error)
	NewReader(io.Reader) (io.ReadCloser, error)
}

// Flate implements Primitive using klauspost/compress's DEFLATE engine.
type Flate struct {
	// Level is passed through to flate.NewWriter. Note that the zero value
	// is flate.NoCompression (stored blocks only).
	Level int
}

var _ Primitive = Flate{}

func (f Flate) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, f.Level)
}

func (f Flate) NewReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}
