package linesource

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Source yields the lines of a single file, in order, exactly once. It is not
// restartable; consume it top to bottom and Close it.
type Source struct {
	file   *os.File
	reader *bufio.Reader
	line   string
	done   bool
}

// Open prepares a Source for the file at path.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return &Source{file: file, reader: bufio.NewReaderSize(file, 64*1024)}, nil
}

// Next advances to the next line, reporting whether one is available. Lines
// may be arbitrarily long. Lines that are not valid UTF-8 are dropped; the
// rest of the file keeps going.
func (s *Source) Next() bool {
	for !s.done {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			// EOF, or a read error mid-file; either way the sequence ends
			// after whatever this read produced.
			s.done = true
			if line == "" {
				return false
			}
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			continue
		}
		s.line = line
		return true
	}
	return false
}

// Text returns the line Next advanced to.
func (s *Source) Text() string {
	return s.line
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}
