package input

import (
	"bufio"
	"io"
	"strings"
)

// LineReader yields one trimmed line of input per call
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader creates a line reader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line with surrounding whitespace removed.
// It returns io.EOF once the input is exhausted.
func (l *LineReader) ReadLine() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(l.scanner.Text()), nil
}
