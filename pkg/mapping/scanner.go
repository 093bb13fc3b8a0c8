package mapping

import (
	"bufio"
	"io"
)

const maxLineSize = 1024 * 1024

// Scanner reads a mapping file one line at a time
type Scanner struct {
	scanner *bufio.Scanner
	line    Line
	number  int
}

// NewScanner returns a Scanner reading from r
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Scanner{scanner: s}
}

// Scan advances to the next line, returning false at EOF or on error
func (s *Scanner) Scan() bool {
	if !s.scanner.Scan() {
		return false
	}
	s.number++
	s.line = Parse(s.scanner.Text(), s.number)
	return true
}

// Line returns the most recently scanned line
func (s *Scanner) Line() Line {
	return s.line
}

// Err returns the first non-EOF error encountered
func (s *Scanner) Err() error {
	return s.scanner.Err()
}
