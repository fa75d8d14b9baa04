package runlength

// Kind discriminates the token variants produced by [Compress].
type Kind uint8

const (
	// Literal is a single uncompressed byte.
	Literal Kind = iota
	// ZeroRun is a run of identical 0x00 bytes.
	ZeroRun
	// FFRun is a run of identical 0xFF bytes.
	FFRun
	// PatternRun is a repeating two-byte pattern.
	PatternRun
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case ZeroRun:
		return "ZeroRun"
	case FFRun:
		return "FFRun"
	case PatternRun:
		return "PatternRun"
	}
	return "InvalidKind"
}

// Token is one unit of the intermediate stream between raw bytes and packed
// symbols. The concatenated byte contributions of a token sequence always
// reconstruct the source buffer exactly.
type Token struct {
	Kind Kind

	// Value is the byte value of a Literal token. Unused for runs.
	Value byte

	// Pattern holds the ordered two-byte cycle of a PatternRun token.
	Pattern [2]byte

	// Count is the byte count of a ZeroRun/FFRun, or the repetition count of
	// a PatternRun (each repetition contributes two bytes). A valid run
	// always has this be 1 or greater.
	Count int
}

// DecodedLength gives the number of bytes this token contributes to the
// reconstructed buffer.
func (t Token) DecodedLength() int {
	switch t.Kind {
	case Literal:
		return 1
	case ZeroRun, FFRun:
		return t.Count
	case PatternRun:
		return t.Count * 2
	}
	return 0
}
