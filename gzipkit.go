// Package gzipkit compresses and decompresses single-member gzip streams
// (RFC 1952) held fully in memory.
package gzipkit

import (
	"github.com/rickhohler/gzipkit/gzerr"
	"github.com/rickhohler/gzipkit/internal/gzcodec"
	"github.com/rickhohler/gzipkit/internal/infrastructure/logger"
)

var (
	ErrInvalidData         = gzerr.ErrInvalidData
	ErrCompressionFailed   = gzerr.ErrCompressionFailed
	ErrDecompressionFailed = gzerr.ErrDecompressionFailed
	ErrTrailerMismatch     = gzerr.ErrTrailerMismatch
)

var defaultCodec = gzcodec.New(logger.NewDiscard())

// Compress returns data wrapped in a gzip stream.
func Compress(data []byte) ([]byte, error) {
	return defaultCodec.Compress(data)
}

// Decompress returns the payload of the gzip stream. The stream's trailer is
// verified against the decompressed output; a stream whose trailer disagrees
// fails with ErrTrailerMismatch.
func Decompress(stream []byte) ([]byte, error) {
	return defaultCodec.Decompress(stream)
}
