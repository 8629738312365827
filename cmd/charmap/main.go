// Package main provides the charmap command line interface.
//
// charmap encodes a file into a per-character bitmap hex frame and decodes
// such frames back into the original bytes.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/tanagraspace/charmap/charmap"
)

const (
	encodedExt = ".chm"
	decodedExt = ".dechm"
)

func printVersion() {
	fmt.Printf("charmap %s (Go)\n", charmap.Version)
}

func printHelp(progName string) {
	fmt.Printf("charmap: per-character bitmap hex codec (v%s)\n", charmap.Version)
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s [-z] <input> [output]\n", progName)
	fmt.Printf("  %s -d <input%s> [output]\n", progName, encodedExt)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -d             Decode (default is encode)")
	fmt.Println("  -z             Store the encoded frame zstd compressed")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Printf("  Encode:  <input>%s\n", encodedExt)
	fmt.Printf("  Decode:  <input>%s (or <base>%s if input ends in %s)\n", decodedExt, decodedExt, encodedExt)
	fmt.Println()
	fmt.Println("Every byte of the input is one character. Compressed frames are")
	fmt.Println("detected automatically when decoding.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s notes.txt                 # encode to notes.txt%s\n", progName, encodedExt)
	fmt.Printf("  %s -z notes.txt frame.chm    # encode, compressed\n", progName)
	fmt.Printf("  %s -d notes.txt%s           # decode\n", progName, encodedExt)
	fmt.Println()
}

func makeDecodeFilename(input string) string {
	if strings.HasSuffix(input, encodedExt) {
		return strings.TrimSuffix(input, encodedExt) + decodedExt
	}
	return input + decodedExt
}

func doEncode(inputPath, outputPath string, compress bool) int {
	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open input file: %s\n", inputPath)
		return 1
	}

	enc := charmap.NewEncoderBytes(inputData)
	outputData, err := charmap.Seal(enc.Encode(), compress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Encoding failed: %v\n", err)
		return 1
	}

	if outputPath == "" {
		outputPath = inputPath + encodedExt
	}
	if err := os.WriteFile(outputPath, outputData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot write output file: %s\n", outputPath)
		return 1
	}

	fmt.Printf("Input:       %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output:      %s (%d bytes)\n", outputPath, len(outputData))
	fmt.Printf("Characters:  %d distinct\n", len(enc.Bitmaps()))
	if len(inputData) > 0 {
		fmt.Printf("Expansion:   %.2fx\n", float64(len(outputData))/float64(len(inputData)))
	}
	fmt.Printf("Compressed:  %t\n", compress)

	return 0
}

func doDecode(inputPath, outputPath string) int {
	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open input file: %s\n", inputPath)
		return 1
	}

	if len(inputData) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Input file is empty")
		return 1
	}

	frame, err := charmap.Open(inputData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot read frame: %v\n", err)
		return 1
	}

	outputData, err := charmap.DecodeBytes(frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Decoding failed: %v\n", err)
		return 1
	}

	if outputPath == "" {
		outputPath = makeDecodeFilename(inputPath)
	}
	if err := os.WriteFile(outputPath, outputData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot write output file: %s\n", outputPath)
		return 1
	}

	fmt.Printf("Input:       %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output:      %s (%d bytes)\n", outputPath, len(outputData))
	fmt.Printf("Compressed:  %t\n", charmap.IsCompressed(inputData))

	return 0
}

// options holds the parsed command line.
type options struct {
	decode     bool
	compress   bool
	inputPath  string
	outputPath string
}

// parseArgs parses everything after the program name. At most one mode
// flag is accepted, and only in first position.
func parseArgs(args []string) (options, error) {
	var opts options
	if len(args) > 0 {
		switch args[0] {
		case "-d":
			opts.decode = true
			args = args[1:]
		case "-z":
			opts.compress = true
			args = args[1:]
		}
	}

	if len(args) < 1 || len(args) > 2 {
		return options{}, errors.New("expected an input file and an optional output file")
	}
	for _, arg := range args {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			return options{}, errors.Errorf("unexpected option %s: -d and -z cannot be combined or follow a path", arg)
		}
	}

	opts.inputPath = args[0]
	if len(args) == 2 {
		opts.outputPath = args[1]
	}
	return opts, nil
}

func main() {
	args := os.Args
	progName := args[0]

	// Check for help flag
	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		printHelp(progName)
		if len(args) < 2 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Check for version flag
	if args[1] == "-v" || args[1] == "--version" {
		printVersion()
		os.Exit(0)
	}

	opts, err := parseArgs(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Usage: %s [-d|-z] <input> [output]\n", progName)
		os.Exit(1)
	}

	if opts.decode {
		os.Exit(doDecode(opts.inputPath, opts.outputPath))
	}
	os.Exit(doEncode(opts.inputPath, opts.outputPath, opts.compress))
}
