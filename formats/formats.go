// Package formats is the registry of file extensions the CLI recognizes
// when reporting on an encode. It is purely informational: the encoded
// document itself never records the format, so decoding relies on the
// caller's output path, not on this table.
package formats

import (
	_ "embed"
	"strings"

	"github.com/gocarina/gocsv"
)

// FileFormat describes one recognized file extension.
type FileFormat struct {
	// Extension includes the leading dot, lowercase (".mp3").
	Extension string `csv:"extension"`
	// Name is a short human-readable label ("MPEG audio").
	Name string `csv:"name"`
	// Category groups related formats ("audio", "archive", ...).
	Category string `csv:"category"`
}

//go:embed formats.csv
var formatsCSV string

var byExtension map[string]FileFormat

func init() {
	var all []FileFormat
	if err := gocsv.UnmarshalString(formatsCSV, &all); err != nil {
		panic("formats: embedded registry is invalid: " + err.Error())
	}

	byExtension = make(map[string]FileFormat, len(all))
	for _, format := range all {
		byExtension[format.Extension] = format
	}
}

// Lookup returns the format registered for an extension (with leading dot,
// any case). Unrecognized extensions get a generic entry rather than an
// error, matching how the encoder treats content: any file is encodable.
func Lookup(extension string) FileFormat {
	normalized := strings.ToLower(extension)
	if format, ok := byExtension[normalized]; ok {
		return format
	}
	return FileFormat{Extension: normalized, Name: "unrecognized", Category: "generic"}
}

// Known reports whether an extension has a registry entry.
func Known(extension string) bool {
	_, ok := byExtension[strings.ToLower(extension)]
	return ok
}
