package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/jinhibi13-pixel/soundscript"
	"github.com/jinhibi13-pixel/soundscript/formats"
)

// encodedSuffix is appended to an input's name to form the default encode
// output path, and stripped again when deriving a decode output path.
const encodedSuffix = ".soundscript.txt"

func main() {
	app := cli.App{
		Name:    "soundscript",
		Usage:   "Carry any file inside a plain UTF-8 text document",
		Version: soundscript.Version,
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode files as private-use unicode text",
				ArgsUsage: "FILE [FILE ...]",
				Action:    encodeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write to `PATH` instead of FILE" + encodedSuffix,
					},
					&cli.IntFlag{
						Name:  "max-kb",
						Usage: "encode at most `N` KiB of each input",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress the encode report",
					},
				},
			},
			{
				Name:      "decode",
				Usage:     "Restore the original file from encoded text",
				ArgsUsage: "INPUT [OUTPUT]",
				Action:    decodeCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "lax",
						Usage: "ignore characters outside the private-use area",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress the decode report",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "soundscript: %s\n", err)
		os.Exit(1)
	}
}

func encodeCommand(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no input files given")
	}
	if ctx.String("output") != "" && ctx.NArg() > 1 {
		return fmt.Errorf("--output requires exactly one input file")
	}

	var failures error
	for _, path := range ctx.Args().Slice() {
		if err := encodeFile(ctx, path); err != nil {
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", path, err))
		}
	}
	return failures
}

func encodeFile(ctx *cli.Context, inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	if maxKB := ctx.Int("max-kb"); maxKB > 0 && len(data) > maxKB*1024 {
		data = data[:maxKB*1024]
	}

	encoded, err := soundscript.Encode(data)
	if err != nil {
		return err
	}

	outputPath := ctx.String("output")
	if outputPath == "" {
		outputPath = inputPath + encodedSuffix
	}
	if err := os.WriteFile(outputPath, []byte(encoded), 0o644); err != nil {
		return err
	}

	if !ctx.Bool("quiet") {
		printEncodeReport(inputPath, outputPath, data, encoded)
	}
	return nil
}

func printEncodeReport(inputPath, outputPath string, data []byte, encoded string) {
	stats := soundscript.Measure(data, encoded)
	format := formats.Lookup(filepath.Ext(inputPath))

	fmt.Printf("%s -> %s\n", inputPath, outputPath)
	fmt.Printf("  format: %s (%s)\n", format.Name, format.Category)
	fmt.Printf(
		"  size:   %d bytes -> %d chars (%d bytes of UTF-8)\n",
		stats.OriginalBytes,
		stats.EncodedChars,
		stats.EncodedBytes,
	)
	if stats.OriginalBytes > 0 {
		fmt.Printf("  ratio:  %.3f chars/byte\n", stats.Ratio)
	}
}

func decodeCommand(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return fmt.Errorf("usage: decode INPUT [OUTPUT]")
	}
	inputPath := ctx.Args().Get(0)

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	// The file itself may end in a newline some tool appended; outer
	// whitespace is the one mangling we strip before the strict decode.
	text := strings.TrimSpace(string(raw))

	decode := soundscript.Decode
	if ctx.Bool("lax") {
		decode = soundscript.DecodeLax
	}
	data, err := decode(text)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	outputPath := ctx.Args().Get(1)
	if outputPath == "" {
		outputPath = restoredPath(inputPath)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}

	if !ctx.Bool("quiet") {
		fmt.Printf("%s -> %s (%d bytes)\n", inputPath, outputPath, len(data))
	}
	return nil
}

// restoredPath derives a decode output path from the encoded input's name:
// the encoded suffix is stripped and "_restored" is appended to the stem,
// keeping whatever extension the original name carried.
//
//	music.mp3.soundscript.txt -> music_restored.mp3
//	archive.zip               -> archive_restored.zip
func restoredPath(inputPath string) string {
	name := strings.TrimSuffix(inputPath, encodedSuffix)
	name = strings.TrimSuffix(name, ".soundscript")

	extension := filepath.Ext(name)
	stem := strings.TrimSuffix(name, extension)
	if stem == "" {
		stem, extension = name, ""
	}
	return stem + "_restored" + extension
}
