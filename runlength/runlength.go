package runlength

import (
	"bytes"
	"io"
)

// MinByteRun is the minimum length of a 0x00 or 0xFF run worth collapsing.
// A shorter run would pack no smaller than the literal bytes it replaces.
const MinByteRun = 4

// MinPatternRepeats is the minimum number of repetitions of a two-byte
// pattern worth collapsing. Three repetitions (six bytes) pack into three
// symbols; anything shorter would break even or lose.
const MinPatternRepeats = 3

// Compress scans the buffer and emits the token stream described in the
// package documentation. It never fails; any input, including an empty one,
// has a valid token representation.
//
// Run counts are not bounded here. The bit packer splits runs that exceed
// what a single symbol's payload can represent.
func Compress(data []byte) []Token {
	tokens := make([]Token, 0, len(data)/2)

	for i := 0; i < len(data); {
		switch {
		case data[i] == 0x00:
			if n := countRepeats(data[i:], 0x00); n >= MinByteRun {
				tokens = append(tokens, Token{Kind: ZeroRun, Count: n})
				i += n
				continue
			}
		case data[i] == 0xFF:
			if n := countRepeats(data[i:], 0xFF); n >= MinByteRun {
				tokens = append(tokens, Token{Kind: FFRun, Count: n})
				i += n
				continue
			}
		}

		if n := countPatternRepeats(data[i:]); n >= MinPatternRepeats {
			tokens = append(
				tokens,
				Token{
					Kind:    PatternRun,
					Pattern: [2]byte{data[i], data[i+1]},
					Count:   n,
				},
			)
			i += n * 2
			continue
		}

		tokens = append(tokens, Token{Kind: Literal, Value: data[i]})
		i++
	}

	return tokens
}

// countRepeats gives the length of the run of `value` at the start of `data`.
func countRepeats(data []byte, value byte) int {
	for i, current := range data {
		if current != value {
			return i
		}
	}
	return len(data)
}

// countPatternRepeats gives the number of times the two-byte pattern at the
// start of `data` repeats, including the first occurrence. A buffer shorter
// than one full repetition counts as zero.
func countPatternRepeats(data []byte) int {
	if len(data) < 4 {
		return 0
	}

	first, second := data[0], data[1]
	count := 1
	for i := 2; i+1 < len(data) && data[i] == first && data[i+1] == second; i += 2 {
		count++
	}
	return count
}

// Decompress expands a token stream back into the original bytes. It is the
// exact inverse of [Compress]: Decompress(Compress(b)) == b for every b.
func Decompress(tokens []Token) []byte {
	totalSize := 0
	for _, token := range tokens {
		totalSize += token.DecodedLength()
	}

	buffer := bytes.Buffer{}
	buffer.Grow(totalSize)
	// bytes.Buffer never returns an error, so neither does DecompressTo here.
	DecompressTo(tokens, &buffer)
	return buffer.Bytes()
}

// DecompressTo expands a token stream into `output`, returning the number of
// bytes written. If the writer fails mid-stream the count reflects only what
// was successfully written.
func DecompressTo(tokens []Token, output io.Writer) (int64, error) {
	totalBytesWritten := int64(0)

	for _, token := range tokens {
		var expanded []byte
		switch token.Kind {
		case Literal:
			expanded = []byte{token.Value}
		case ZeroRun:
			expanded = make([]byte, token.Count)
		case FFRun:
			expanded = bytes.Repeat([]byte{0xFF}, token.Count)
		case PatternRun:
			expanded = bytes.Repeat(token.Pattern[:], token.Count)
		}

		n, err := output.Write(expanded)
		totalBytesWritten += int64(n)
		if err != nil {
			return totalBytesWritten, err
		}
	}

	return totalBytesWritten, nil
}
