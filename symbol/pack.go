package symbol

import (
	"fmt"

	codecerr "github.com/jinhibi13-pixel/soundscript/errors"
	"github.com/jinhibi13-pixel/soundscript/runlength"
)

// Pack serializes a token stream into packed symbols, in token order. Runs
// whose count exceeds MaxRunPayload are split into consecutive run tokens of
// the same kind, so Pack is total over every token stream [runlength.Compress]
// can produce.
func Pack(tokens []runlength.Token) []Symbol {
	symbols := make([]Symbol, 0, len(tokens))

	for _, token := range tokens {
		switch token.Kind {
		case runlength.Literal:
			symbols = append(symbols, tagLiteral<<tagShift|Symbol(token.Value))
		case runlength.ZeroRun:
			symbols = appendRunSymbols(symbols, tagZeroRun, token.Count)
		case runlength.FFRun:
			symbols = appendRunSymbols(symbols, tagFFRun, token.Count)
		case runlength.PatternRun:
			for remaining := token.Count; remaining > 0; {
				chunk := remaining
				if chunk > MaxRunPayload {
					chunk = MaxRunPayload
				}
				symbols = append(
					symbols,
					tagPatternRun<<tagShift|Symbol(chunk),
					Symbol(token.Pattern[0]),
					Symbol(token.Pattern[1]),
				)
				remaining -= chunk
			}
		}
	}

	return symbols
}

func appendRunSymbols(symbols []Symbol, tag Symbol, count int) []Symbol {
	for count > 0 {
		chunk := count
		if chunk > MaxRunPayload {
			chunk = MaxRunPayload
		}
		symbols = append(symbols, tag<<tagShift|Symbol(chunk))
		count -= chunk
	}
	return symbols
}

// Unpack is the inverse of [Pack]. It fails with ErrOutOfRangeSymbol on any
// reserved symbol value in token-start position, and with ErrTruncatedBody
// when a pattern-run symbol's two payload symbols are missing.
func Unpack(symbols []Symbol) ([]runlength.Token, error) {
	tokens := make([]runlength.Token, 0, len(symbols))

	for i := 0; i < len(symbols); i++ {
		current := symbols[i]
		if !Assigned(current) {
			return nil, codecerr.ErrOutOfRangeSymbol.WithMessage(
				fmt.Sprintf("symbol %#03x at offset %d is reserved", uint16(current), i))
		}

		payload := current & payloadMask
		switch current >> tagShift {
		case tagLiteral:
			tokens = append(
				tokens,
				runlength.Token{Kind: runlength.Literal, Value: byte(payload)},
			)
		case tagZeroRun:
			tokens = append(
				tokens,
				runlength.Token{Kind: runlength.ZeroRun, Count: int(payload)},
			)
		case tagFFRun:
			tokens = append(
				tokens,
				runlength.Token{Kind: runlength.FFRun, Count: int(payload)},
			)
		case tagPatternRun:
			if i+2 >= len(symbols) {
				return nil, codecerr.ErrTruncatedBody.WithMessage(
					fmt.Sprintf("pattern run at offset %d is missing its pattern", i))
			}
			first, second := symbols[i+1], symbols[i+2]
			if first > payloadMask || second > payloadMask {
				return nil, codecerr.ErrOutOfRangeSymbol.WithMessage(
					fmt.Sprintf("pattern bytes at offset %d exceed 0xFF", i+1))
			}
			tokens = append(
				tokens,
				runlength.Token{
					Kind:    runlength.PatternRun,
					Pattern: [2]byte{byte(first), byte(second)},
					Count:   int(payload),
				},
			)
			i += 2
		}
	}

	return tokens, nil
}
