// Package runlength collapses the three byte patterns that dominate real
// files before they hit the bit packer.
//
// Binary files are full of long stretches of padding: null bytes in sparse
// sections and archives, 0xFF in flash dumps and bitmap masks, and
// alternating two-byte cycles in 16-bit sample data and pixel fills. General
// purpose compression is deliberately out of scope for this codec, but these
// three cases are so common and so cheap to detect that collapsing them
// roughly halves the encoded size of typical padded files.
//
// The compressor scans the buffer once, left to right. At each position it
// checks, in order: a run of 0x00, a run of 0xFF, then a repeating two-byte
// pattern. Whichever qualifies first wins and the cursor jumps past the
// whole run; interior positions are never re-examined, so runs can't
// overlap. A position where nothing qualifies becomes a literal.
//
// The thresholds are chosen so a run token always packs smaller than the
// literal bytes it replaces. A byte run costs one packed symbol, so it must
// cover at least MinByteRun (4) bytes; a pattern run costs three symbols
// (count plus the two pattern bytes), so it must cover at least
// MinPatternRepeats (3) repetitions, i.e. six bytes. A run exactly at the
// threshold is still emitted as a run, which keeps the output a
// deterministic function of the input.
package runlength
