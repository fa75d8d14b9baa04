package symbol

import (
	"fmt"

	codecerr "github.com/jinhibi13-pixel/soundscript/errors"
)

// HeaderSymbols is the fixed number of symbols in the length header that
// precedes every encoded body.
const HeaderSymbols = 4

// MaxLength is the largest payload size the 48-bit header can record.
const MaxLength = uint64(1)<<(HeaderSymbols*Bits) - 1

// PackHeader encodes the original payload length as exactly HeaderSymbols
// symbols, most significant first. Lengths above MaxLength fail with
// ErrLengthOverflow.
func PackHeader(length uint64) ([]Symbol, error) {
	if length > MaxLength {
		return nil, codecerr.ErrLengthOverflow.WithMessage(
			fmt.Sprintf("%d bytes, limit is %d", length, MaxLength))
	}

	header := make([]Symbol, HeaderSymbols)
	for i := HeaderSymbols - 1; i >= 0; i-- {
		header[i] = Symbol(length) & MaxSymbol
		length >>= Bits
	}
	return header, nil
}

// ReadHeader consumes exactly HeaderSymbols leading symbols, regardless of
// their content, and returns the recorded length along with the remaining
// body symbols. Fewer symbols than that is ErrMalformedHeader.
func ReadHeader(symbols []Symbol) (uint64, []Symbol, error) {
	if len(symbols) < HeaderSymbols {
		return 0, nil, codecerr.ErrMalformedHeader.WithMessage(
			fmt.Sprintf("need %d symbols, have %d", HeaderSymbols, len(symbols)))
	}

	length := uint64(0)
	for _, current := range symbols[:HeaderSymbols] {
		length = length<<Bits | uint64(current&MaxSymbol)
	}
	return length, symbols[HeaderSymbols:], nil
}
