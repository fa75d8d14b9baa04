// Package symbol implements the 12-bit packed symbol layer: serializing
// token streams into symbols, the fixed-size length header, and the mapping
// between symbols and Unicode private-use code points.
//
// Symbol layout: the top four bits are a tag, the low eight bits are the
// tag's payload.
//
//	0x000..0x0FF  literal byte
//	0x101..0x1FF  run of 0x00, payload = byte count
//	0x201..0x2FF  run of 0xFF, payload = byte count
//	0x301..0x3FF  two-byte pattern run, payload = repetition count,
//	              followed by two symbols carrying the pattern bytes
//
// Everything else (0x100, 0x200, 0x300, 0x400..0xFFF) is reserved extension
// space and is rejected when it appears where a token should start.
package symbol

import (
	"fmt"

	"github.com/boljen/go-bitmap"
	codecerr "github.com/jinhibi13-pixel/soundscript/errors"
)

// Symbol is a 12-bit packed value, the unit mapped one-to-one onto a code
// point. Values above MaxSymbol never appear in a valid stream.
type Symbol uint16

// Bits is the width of one symbol.
const Bits = 12

// MaxSymbol is the largest representable symbol value.
const MaxSymbol Symbol = 1<<Bits - 1

const (
	// PrivateUseBase is the first code point of the Unicode private-use
	// area, and the code point of symbol 0.
	PrivateUseBase rune = 0xE000

	// PrivateUseEnd is the last code point of the private-use area. The
	// codec only emits up to MaxCodePoint; the rest of the band is
	// headroom for future tag values.
	PrivateUseEnd rune = 0xF8FF

	// MaxCodePoint is the largest code point the codec ever emits.
	MaxCodePoint rune = PrivateUseBase + rune(MaxSymbol)
)

const tagShift = 8
const payloadMask = Symbol(0xFF)

const (
	tagLiteral    Symbol = 0x0
	tagZeroRun    Symbol = 0x1
	tagFFRun      Symbol = 0x2
	tagPatternRun Symbol = 0x3
)

// MaxRunPayload is the largest count a single run symbol can carry. Runs
// longer than this are split into consecutive run tokens of the same kind.
const MaxRunPayload = int(payloadMask)

// assignedSymbols marks which of the 4096 symbol values a valid stream may
// contain in token-start position. Cleared bits are reserved extension
// space.
var assignedSymbols bitmap.Bitmap

func init() {
	assignedSymbols = bitmap.New(int(MaxSymbol) + 1)
	for value := Symbol(0); value <= payloadMask; value++ {
		assignedSymbols.Set(int(tagLiteral<<tagShift|value), true)
	}
	// A run of zero bytes (payload 0) is never emitted, so those values
	// stay reserved.
	for _, tag := range []Symbol{tagZeroRun, tagFFRun, tagPatternRun} {
		for count := Symbol(1); count <= payloadMask; count++ {
			assignedSymbols.Set(int(tag<<tagShift|count), true)
		}
	}
}

// Assigned reports whether `value` is a symbol a valid stream may contain in
// token-start position.
func Assigned(value Symbol) bool {
	if value > MaxSymbol {
		return false
	}
	return assignedSymbols.Get(int(value))
}

// CodePoint maps a symbol to its private-use code point.
func CodePoint(value Symbol) rune {
	return PrivateUseBase + rune(value)
}

// FromRune maps a code point back to its symbol value. Runes outside
// [PrivateUseBase, MaxCodePoint] fail with ErrOutOfRangeSymbol.
func FromRune(r rune) (Symbol, error) {
	if r < PrivateUseBase || r > MaxCodePoint {
		return 0, codecerr.ErrOutOfRangeSymbol.WithMessage(
			fmt.Sprintf("U+%04X", r))
	}
	return Symbol(r - PrivateUseBase), nil
}

// InPrivateUseBand reports whether `r` lies anywhere in the private-use
// area, including the reserved space above MaxCodePoint. Lax decoding uses
// this to tell codec characters from incidental surrounding text.
func InPrivateUseBand(r rune) bool {
	return r >= PrivateUseBase && r <= PrivateUseEnd
}
