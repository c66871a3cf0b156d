// Command bwtrle compresses a block with the BWT + bitmap-RLE codec, decodes
// it back and reports the sizes.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/axiomhq/bwtrle"
	"github.com/dustin/go-humanize"
	"github.com/v2pro/plz/countlog"
)

const defaultCapacity = 4000

// Config holds driver configuration
type Config struct {
	Input    string // path, "-" for stdin, empty for the built-in sample
	Output   string // optional path for the compressed block
	Capacity int    // size of the compressed and decompressed buffers
	Verbose  bool
}

func main() {
	input := flag.String("in", "", "Input file ('-' for stdin, empty for the built-in sample)")
	output := flag.String("out", "", "Write the compressed block to this file")
	capacity := flag.Int("capacity", getEnvInt("BWTRLE_CAPACITY", defaultCapacity), "Buffer capacity in bytes")
	verbose := flag.Bool("v", false, "Print the decoded block")
	flag.Parse()

	config := Config{
		Input:    *input,
		Output:   *output,
		Capacity: *capacity,
		Verbose:  *verbose,
	}
	if err := run(config, os.Stdin, os.Stdout); err != nil {
		countlog.Error("event!bwtrle.failed", "err", err, "input", config.Input)
		fmt.Fprintf(os.Stderr, "bwtrle: %v\n", err)
		os.Exit(1)
	}
}

func run(config Config, stdin io.Reader, stdout io.Writer) error {
	if config.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", config.Capacity)
	}
	src, err := readInput(config.Input, stdin)
	if err != nil {
		return err
	}

	compressed := make([]byte, config.Capacity)
	n, err := bwtrle.Encode(compressed, src)
	if err != nil {
		return fmt.Errorf("encode %d bytes: %w", len(src), err)
	}
	compressed = compressed[:n]
	countlog.Info("event!bwtrle.encoded", "original", len(src), "compressed", n)

	if config.Output != "" {
		if err := os.WriteFile(config.Output, compressed, 0o644); err != nil {
			return err
		}
	}

	decompressed := make([]byte, config.Capacity)
	m, err := bwtrle.Decode(decompressed, compressed)
	if err != nil {
		return fmt.Errorf("decode %d bytes: %w", n, err)
	}
	decompressed = decompressed[:m]
	if countlog.ShouldLog(countlog.LevelDebug) {
		countlog.Debug("event!bwtrle.decoded", "decompressed", m)
	}
	if !bytes.Equal(src, decompressed) {
		return errors.New("round trip mismatch")
	}

	fmt.Fprintln(stdout, "Burrows-Wheeler transform with bitmap RLE")
	fmt.Fprintf(stdout, "Original:     %s\n", humanize.Bytes(uint64(len(src))))
	fmt.Fprintf(stdout, "Compressed:   %s (reduction of %s)\n", humanize.Bytes(uint64(n)), reduction(len(src), n))
	fmt.Fprintf(stdout, "Decompressed: %s\n", humanize.Bytes(uint64(m)))
	if config.Verbose {
		fmt.Fprintf(stdout, "\nDecoded:\n%s\n", decompressed)
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	switch path {
	case "":
		return []byte(sample), nil
	case "-":
		return io.ReadAll(stdin)
	default:
		return os.ReadFile(path)
	}
}

// reduction formats 1 - compressed/original as a percentage.
func reduction(original, compressed int) string {
	if original == 0 {
		return "n/a"
	}
	return humanize.FtoaWithDigits(100*(1-float64(compressed)/float64(original)), 2) + "%"
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
