package soundscript

import "unicode/utf8"

// Stats summarizes one encode invocation, for callers that report on the
// result. It is derived purely from the input and output buffers.
type Stats struct {
	// OriginalBytes is the size of the raw payload.
	OriginalBytes int

	// EncodedChars is the number of code points in the document, header
	// included.
	EncodedChars int

	// EncodedBytes is the UTF-8 size of the document. Private-use code
	// points cost three bytes each, so this is always 3*EncodedChars.
	EncodedBytes int

	// Ratio is EncodedChars per original byte. Below 1.0 means the run
	// compression beat the per-byte symbol cost. Zero for an empty payload.
	Ratio float64
}

// Measure computes the [Stats] for an encoded document.
func Measure(original []byte, encoded string) Stats {
	stats := Stats{
		OriginalBytes: len(original),
		EncodedChars:  utf8.RuneCountInString(encoded),
		EncodedBytes:  len(encoded),
	}
	if stats.OriginalBytes > 0 {
		stats.Ratio = float64(stats.EncodedChars) / float64(stats.OriginalBytes)
	}
	return stats
}
