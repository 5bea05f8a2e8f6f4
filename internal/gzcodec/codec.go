// Package gzcodec implements the gzip container format (RFC 1952) around an
// injected raw-DEFLATE primitive: header construction, optional-field
// parsing, and the CRC-32 + ISIZE trailer.
package gzcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/micvbang/go-helpy/sizey"
	"github.com/rickhohler/gzipkit/gzerr"
	"github.com/rickhohler/gzipkit/internal/gzcrc"
	"github.com/rickhohler/gzipkit/internal/infrastructure/logger"
)

const (
	gzipID1    = 0x1F
	gzipID2    = 0x8B
	gzipMethod = 0x08 // DEFLATE, the only method RFC 1952 defines

	flagText    = 1 << 0
	flagHdrCRC  = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4

	// RFC 1952 value for "operating system unknown".
	osUnknown = 0xFF

	headerSize    = 10
	trailerSize   = 8
	minStreamSize = headerSize + trailerSize

	// bufSize is the window handed to the primitive per iteration of the
	// streaming loop.
	bufSize = 64 * sizey.KB
)

var le = binary.LittleEndian

// Codec converts between raw byte slices and single-member gzip streams. It
// is stateless apart from its configuration and safe for concurrent use; the
// primitive's writer/reader state is created per call and released before the
// call returns.
type Codec struct {
	log           logger.Logger
	primitive     Primitive
	verifyTrailer bool
}

type Opts struct {
	// Primitive is the DEFLATE/INFLATE engine driven by the codec.
	Primitive Primitive

	// VerifyTrailer makes Decompress check the trailer's CRC-32 and ISIZE
	// against the decompressed output.
	VerifyTrailer bool
}

func WithPrimitive(p Primitive) func(*Opts) {
	return func(opts *Opts) {
		opts.Primitive = p
	}
}

// WithTrailerCheck controls trailer verification on Decompress. Disabling it
// reproduces the behavior of permissive decoders that only parse the trailer
// structurally.
func WithTrailerCheck(verify bool) func(*Opts) {
	return func(opts *Opts) {
		opts.VerifyTrailer = verify
	}
}

func New(log logger.Logger, optFuncs ...func(*Opts)) *Codec {
	opts := Opts{
		Primitive:     Flate{Level: flate.DefaultCompression},
		VerifyTrailer: true,
	}
	for _, optFunc := range optFuncs {
		optFunc(&opts)
	}

	return &Codec{
		log:           log,
		primitive:     opts.Primitive,
		verifyTrailer: opts.VerifyTrailer,
	}
}

// Compress wraps data in a gzip stream: a fixed 10-byte header, the raw
// DEFLATE payload, and a trailer holding the CRC-32 and length mod 2^32 of
// the uncompressed input.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(data)/2+trailerSize))

	// MTIME is left zero; the format allows it and it keeps output
	// deterministic.
	buf.Write([]byte{gzipID1, gzipID2, gzipMethod, 0, 0, 0, 0, 0, 0, osUnknown})

	w, err := c.primitive.NewWriter(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing deflate: %w", gzerr.ErrCompressionFailed, err)
	}

	err = writeChunked(w, data)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("%w: deflating: %w", gzerr.ErrCompressionFailed, err)
	}

	err = w.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: flushing deflate: %w", gzerr.ErrCompressionFailed, err)
	}

	var trailer [trailerSize]byte
	le.PutUint32(trailer[:4], gzcrc.Sum(data))
	le.PutUint32(trailer[4:], uint32(len(data)))
	buf.Write(trailer[:])

	c.log.Debugf("compressed %d bytes to %d bytes", len(data), buf.Len())

	return buf.Bytes(), nil
}

// Decompress parses a single-member gzip stream and returns the decompressed
// payload. The trailer is verified against the output unless the codec was
// configured with WithTrailerCheck(false).
func (c *Codec) Decompress(stream []byte) ([]byte, error) {
	if len(stream) < minStreamSize {
		return nil, fmt.Errorf("%w: stream is %d bytes, shortest valid gzip stream is %d", gzerr.ErrInvalidData, len(stream), minStreamSize)
	}

	cur := newCursor(stream)
	flags, err := parseHeader(cur)
	if err != nil {
		return nil, err
	}

	err = skipOptionalFields(cur, flags)
	if err != nil {
		return nil, err
	}

	if cur.remaining() < trailerSize {
		return nil, fmt.Errorf("%w: optional fields overlap the trailer", gzerr.ErrInvalidData)
	}
	payload, err := cur.readBytes(cur.remaining() - trailerSize)
	if err != nil {
		return nil, err
	}

	r, err := c.primitive.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: initializing inflate: %w", gzerr.ErrDecompressionFailed, err)
	}
	defer r.Close()

	output, err := readChunked(r)
	if err != nil {
		return nil, fmt.Errorf("%w: inflating: %w", gzerr.ErrDecompressionFailed, err)
	}

	if c.verifyTrailer {
		err = verifyTrailer(cur, output)
		if err != nil {
			return nil, err
		}
	}

	c.log.Debugf("decompressed %d bytes to %d bytes", len(stream), len(output))

	return output, nil
}

// parseHeader consumes the fixed 10-byte header and returns the flags byte.
// MTIME, XFLAGS and OS are encoder-defined and not validated.
func parseHeader(cur *cursor) (byte, error) {
	fixed, err := cur.readBytes(headerSize)
	if err != nil {
		return 0, err
	}

	if fixed[0] != gzipID1 || fixed[1] != gzipID2 {
		return 0, fmt.Errorf("%w: bad magic bytes 0x%02X 0x%02X", gzerr.ErrInvalidData, fixed[0], fixed[1])
	}
	if fixed[2] != gzipMethod {
		return 0, fmt.Errorf("%w: unsupported compression method 0x%02X", gzerr.ErrDecompressionFailed, fixed[2])
	}

	return fixed[3], nil
}

// skipOptionalFields advances the cursor past the variable-length header
// fields selected by flags, in the order RFC 1952 stores them. Reserved flag
// bits are ignored.
func skipOptionalFields(cur *cursor, flags byte) error {
	if flags&flagExtra != 0 {
		extraLen, err := cur.readUint16()
		if err != nil {
			return err
		}
		err = cur.skip(int(extraLen))
		if err != nil {
			return err
		}
	}

	if flags&flagName != 0 {
		err := cur.skipString()
		if err != nil {
			return err
		}
	}

	if flags&flagComment != 0 {
		err := cur.skipString()
		if err != nil {
			return err
		}
	}

	if flags&flagHdrCRC != 0 {
		err := cur.skip(2)
		if err != nil {
			return err
		}
	}

	return nil
}

// verifyTrailer reads the 8-byte trailer at the cursor and checks it against
// the decompressed output.
func verifyTrailer(cur *cursor, output []byte) error {
	trailer, err := cur.readBytes(trailerSize)
	if err != nil {
		return err
	}

	digest := le.Uint32(trailer[:4])
	isize := le.Uint32(trailer[4:])

	if !gzcrc.Verify(output, digest) {
		return fmt.Errorf("%w: trailer CRC-32 is 0x%08X, output checksums to 0x%08X", gzerr.ErrTrailerMismatch, digest, gzcrc.Sum(output))
	}
	if isize != uint32(len(output)) {
		return fmt.Errorf("%w: trailer ISIZE is %d, output is %d bytes (mod 2^32)", gzerr.ErrTrailerMismatch, isize, uint32(len(output)))
	}

	return nil
}

// writeChunked feeds data to w in bufSize windows so the primitive never sees
// more than one buffer's worth of input per call.
func writeChunked(w io.Writer, data []byte) error {
	for len(data) > 0 {
		chunk := data[:min(len(data), bufSize)]
		data = data[len(chunk):]

		_, err := w.Write(chunk)
		if err != nil {
			return err
		}
	}
	return nil
}

// readChunked drains r through a bufSize window, accumulating everything it
// produces until the stream ends.
func readChunked(r io.Reader) ([]byte, error) {
	var output []byte
	buf := make([]byte, bufSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			output = append(output, buf[:n]...)
		}
		if err == io.EOF {
			return output, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
