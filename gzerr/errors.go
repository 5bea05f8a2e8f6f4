package gzerr

import (
	"errors"
)

var (
	ErrInvalidData         = errors.New("invalid gzip data")
	ErrCompressionFailed   = errors.New("compression failed")
	ErrDecompressionFailed = errors.New("decompression failed")
	ErrTrailerMismatch     = errors.New("trailer mismatch")
)
