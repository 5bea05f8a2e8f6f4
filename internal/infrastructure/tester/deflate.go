package tester

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/require"
)

// DeflateBytes compresses bs into a raw DEFLATE stream, for tests that build
// gzip containers by hand.
func DeflateBytes(t *testing.T, bs []byte) []byte {
	buf := bytes.Buffer{}

	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)

	_, err = w.Write(bs)
	require.NoError(t, err)

	err = w.Close()
	require.NoError(t, err)

	return buf.Bytes()
}
