// Package soundscript converts arbitrary binary data to and from plain
// UTF-8 text built entirely from Unicode private-use code points
// (U+E000 onward), so any file can travel inside a text document.
//
// Encoding collapses runs of 0x00, 0xFF, and repeating two-byte patterns
// (package runlength), packs the resulting tokens into 12-bit symbols with
// a 48-bit length header (package symbol), and maps each symbol onto one
// code point. Decoding is the exact inverse and is all-or-nothing: any
// out-of-range character, truncation, or length disagreement fails the
// whole call with a typed error from the errors package, never partial
// output.
package soundscript

import (
	"fmt"
	"strings"
	"unicode/utf8"

	codecerr "github.com/jinhibi13-pixel/soundscript/errors"
	"github.com/jinhibi13-pixel/soundscript/runlength"
	"github.com/jinhibi13-pixel/soundscript/symbol"
	"github.com/noxer/bytewriter"
)

// Version of the encoding scheme. Bump only on wire-format changes.
const Version = "1.0"

// Encode converts a byte buffer into its text representation: a four-symbol
// length header followed by the packed body. An empty buffer is valid and
// encodes to just the header. The only failure mode is a buffer too large
// for the 48-bit header.
func Encode(data []byte) (string, error) {
	header, err := symbol.PackHeader(uint64(len(data)))
	if err != nil {
		return "", err
	}
	body := symbol.Pack(runlength.Compress(data))

	builder := strings.Builder{}
	// Every code point we emit is three bytes in UTF-8.
	builder.Grow((len(header) + len(body)) * 3)
	for _, value := range header {
		builder.WriteRune(symbol.CodePoint(value))
	}
	for _, value := range body {
		builder.WriteRune(symbol.CodePoint(value))
	}
	return builder.String(), nil
}

// Decode converts a previously encoded document back into the original
// bytes. Every character must map into the codec's private-use subrange;
// anything else fails with ErrOutOfRangeSymbol. See the errors package for
// the other failure kinds.
func Decode(text string) ([]byte, error) {
	return decode(text, false)
}

// DecodeLax behaves like [Decode] but skips characters outside the
// private-use area entirely, tolerating incidental whitespace a text editor
// may have introduced around the document. Private-use characters above the
// assigned subrange are still rejected.
func DecodeLax(text string) ([]byte, error) {
	return decode(text, true)
}

func decode(text string, lax bool) ([]byte, error) {
	if text == "" {
		return nil, codecerr.ErrEmptyInput
	}

	symbols := make([]symbol.Symbol, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if lax && !symbol.InPrivateUseBand(r) {
			continue
		}
		value, err := symbol.FromRune(r)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, value)
	}

	expectedLength, bodySymbols, err := symbol.ReadHeader(symbols)
	if err != nil {
		return nil, err
	}

	tokens, err := symbol.Unpack(bodySymbols)
	if err != nil {
		return nil, err
	}

	// Compare sizes before allocating: a corrupted header can claim any
	// length up to 2^48-1, and the mismatch is already a decode failure.
	reconstructedLength := uint64(0)
	for _, token := range tokens {
		reconstructedLength += uint64(token.DecodedLength())
	}
	if reconstructedLength != expectedLength {
		return nil, codecerr.ErrLengthMismatch.WithMessage(
			fmt.Sprintf(
				"header records %d bytes, body decodes to %d",
				expectedLength,
				reconstructedLength,
			))
	}

	output := make([]byte, expectedLength)
	writer := bytewriter.New(output)
	written, err := runlength.DecompressTo(tokens, writer)
	if err != nil || uint64(written) != expectedLength {
		// A short write here means the size accounting above disagrees with
		// the expansion; never report success on one.
		return nil, codecerr.ErrLengthMismatch.WithMessage(
			fmt.Sprintf("decoded %d of %d bytes", written, expectedLength))
	}
	return output, nil
}
