package symbol_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	codecerr "github.com/jinhibi13-pixel/soundscript/errors"
	rl "github.com/jinhibi13-pixel/soundscript/runlength"
	"github.com/jinhibi13-pixel/soundscript/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PackTestCase struct {
	Tokens          []rl.Token
	ExpectedSymbols []symbol.Symbol
	Name            string
}

func TestPack__Basic(t *testing.T) {
	tests := []PackTestCase{
		{[]rl.Token{}, []symbol.Symbol{}, "empty"},
		{
			[]rl.Token{
				{Kind: rl.Literal, Value: 0x00},
				{Kind: rl.Literal, Value: 0x41},
				{Kind: rl.Literal, Value: 0xFF},
			},
			[]symbol.Symbol{0x000, 0x041, 0x0FF},
			"literals use the byte value directly",
		},
		{
			[]rl.Token{{Kind: rl.ZeroRun, Count: 20}},
			[]symbol.Symbol{0x114},
			"zero run",
		},
		{
			[]rl.Token{{Kind: rl.FFRun, Count: 4}},
			[]symbol.Symbol{0x204},
			"ff run",
		},
		{
			[]rl.Token{
				{Kind: rl.PatternRun, Pattern: [2]byte{0xAB, 0xCD}, Count: 3},
			},
			[]symbol.Symbol{0x303, 0x0AB, 0x0CD},
			"pattern run",
		},
		{
			[]rl.Token{{Kind: rl.ZeroRun, Count: 300}},
			[]symbol.Symbol{0x1FF, 0x12D},
			"oversized zero run splits",
		},
		{
			[]rl.Token{
				{Kind: rl.PatternRun, Pattern: [2]byte{0x01, 0x02}, Count: 256},
			},
			[]symbol.Symbol{0x3FF, 0x001, 0x002, 0x301, 0x001, 0x002},
			"oversized pattern run splits",
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				assert.Equal(t, test.ExpectedSymbols, symbol.Pack(test.Tokens))
			},
		)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"zeros":    make([]byte, 2000),
		"ff":       bytes.Repeat([]byte{0xFF}, 999),
		"pattern":  bytes.Repeat([]byte{0xBE, 0xEF}, 700),
		"literals": {0x41, 0x01, 0x02, 0x41},
	}
	randomData := make([]byte, 513)
	rand.Read(randomData)
	payloads["random"] = randomData

	for name, payload := range payloads {
		t.Run(
			name,
			func(t *testing.T) {
				tokens := rl.Compress(payload)
				symbols := symbol.Pack(tokens)

				unpacked, err := symbol.Unpack(symbols)
				require.NoError(t, err)
				assert.Equal(
					t, payload, rl.Decompress(unpacked), "round trip is lossy")
			},
		)
	}
}

// Splitting an oversized run produces consecutive same-kind tokens rather
// than one token; the byte content must still round-trip exactly.
func TestPackUnpack__SplitRunsStayLossless(t *testing.T) {
	original := []rl.Token{{Kind: rl.ZeroRun, Count: 1000}}
	unpacked, err := symbol.Unpack(symbol.Pack(original))
	require.NoError(t, err)

	assert.Equal(t, rl.Decompress(original), rl.Decompress(unpacked))
}

func TestUnpack__ReservedSymbolFails(t *testing.T) {
	reserved := []symbol.Symbol{0x100, 0x200, 0x300, 0x400, 0x7FF, 0xFFF}
	for _, value := range reserved {
		_, err := symbol.Unpack([]symbol.Symbol{value})
		require.Error(t, err, "symbol %#03x should be rejected", uint16(value))
		assert.ErrorIs(t, err, codecerr.ErrOutOfRangeSymbol)
	}
}

func TestUnpack__TruncatedPatternFails(t *testing.T) {
	truncated := [][]symbol.Symbol{
		{0x303},
		{0x303, 0x0AB},
		{0x041, 0x302, 0x001},
	}
	for _, symbols := range truncated {
		_, err := symbol.Unpack(symbols)
		require.Error(t, err)
		assert.ErrorIs(t, err, codecerr.ErrTruncatedBody)
	}
}

func TestUnpack__WidePatternByteFails(t *testing.T) {
	_, err := symbol.Unpack([]symbol.Symbol{0x303, 0x100, 0x002})
	require.Error(t, err)
	assert.ErrorIs(t, err, codecerr.ErrOutOfRangeSymbol)
}
