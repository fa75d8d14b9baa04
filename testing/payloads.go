package testing

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// PayloadStream wraps a payload in a fixed-size stream, the shape a caller
// reading a real file hands to the codec.
//
//   - Writes to the stream do not affect `payload`.
//   - The stream's size is fixed to len(payload); writing past the end
//     triggers an error.
func PayloadStream(t *testing.T, payload []byte) io.ReadWriteSeeker {
	buffer := make([]byte, len(payload))
	copy(buffer, payload)
	return bytesextra.NewReadWriteSeeker(buffer)
}

// RandomPayload returns `size` bytes of random data. Random data has no
// qualifying runs, so it exercises the pure-literal path.
func RandomPayload(t *testing.T, size int) []byte {
	payload := make([]byte, size)
	n, err := rand.Read(payload)
	require.NoError(t, err)
	require.Equal(t, size, n)
	return payload
}

// PaddedPayload builds the layout typical of real binary files: a readable
// header, a null-padded gap, a repeating two-byte section, and a trailer of
// 0xFF fill.
func PaddedPayload(header string, gapSize, patternRepeats, fillSize int) []byte {
	payload := []byte(header)
	payload = append(payload, make([]byte, gapSize)...)
	payload = append(payload, bytes.Repeat([]byte{0x12, 0x34}, patternRepeats)...)
	payload = append(payload, bytes.Repeat([]byte{0xFF}, fillSize)...)
	return payload
}
