package puzzle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultInputDir and DefaultInputPattern reproduce the input/2020/dayN.txt layout.
const (
	DefaultInputDir     = "input/2020"
	DefaultInputPattern = "day%d.txt"
)

// normalize converts CRLF to LF and drops trailing newlines.
func normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimRight(input, "\n")
}

// Lines splits input into lines. An empty input yields no lines.
func Lines(input string) []string {
	input = normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input into blank-line delimited records. Each record keeps its
// inner newlines; runs of blank lines count as one separator.
func Blocks(input string) []string {
	var blocks []string
	for _, b := range strings.Split(normalize(input), "\n\n") {
		b = strings.Trim(b, "\n")
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Ints parses one decimal integer per line.
func Ints(input string) ([]int, error) {
	lines := Lines(input)
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, Malformed(i+1, "not an integer: %q", line)
		}
		out = append(out, n)
	}
	return out, nil
}

// InputPath builds the input file path of a day from a directory and a
// pattern holding exactly one %d verb.
func InputPath(dir, pattern string, day int) string {
	if pattern == "" {
		pattern = DefaultInputPattern
	}
	return filepath.Join(dir, fmt.Sprintf(pattern, day))
}

// ReadInput loads a whole input file. The path "-" reads stdin.
func ReadInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// Hash fingerprints an input so recorded answers can be compared per input.
func Hash(input string) string {
	sum := sha256.Sum256([]byte(normalize(input)))
	return hex.EncodeToString(sum[:])
}
