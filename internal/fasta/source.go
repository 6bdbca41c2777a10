package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

const defaultBufSize = 64 * 1024

// Source is a stream of text lines over a file or standard input.
type Source struct {
	name    string
	r       *bufio.Reader
	closers []io.Closer
	line    int
	eof     bool
	err     error
}

// Open opens path as a line source. "-" selects standard input, which is never
// closed by Close. Gzip-compressed files are detected by their magic number.
func Open(path string) (*Source, error) {
	if path == "-" {
		return NewSource(StdinName, os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	s := NewSource(SourceName(path), f)
	if s.err != nil {
		f.Close()
		return nil, s.err
	}
	s.closers = append(s.closers, f)
	return s, nil
}

// NewSource wraps r as a line source named name. The caller keeps ownership of r.
func NewSource(name string, r io.Reader) *Source {
	s := &Source{name: name}
	br := bufio.NewReaderSize(r, defaultBufSize)
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1F && magic[1] == 0x8B {
		gz, err := gzip.NewReader(br)
		if err != nil {
			s.err = fmt.Errorf("failed to open gzip reader: %w", err)
			return s
		}
		s.closers = append(s.closers, gz)
		br = bufio.NewReaderSize(gz, defaultBufSize)
	}
	s.r = br
	return s
}

// Name returns the source name used in results.
func (s *Source) Name() string { return s.name }

// Line returns the 1-based number of the last line returned by Next.
func (s *Source) Line() int { return s.line }

// Next returns the next line with its terminator removed. It returns false at
// end of stream or on a read error (see Err).
func (s *Source) Next() (string, bool) {
	if s.err != nil || s.eof {
		return "", false
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = fmt.Errorf("read %s: %w", s.name, err)
			return "", false
		}
		s.eof = true
		if line == "" {
			return "", false
		}
	}
	s.line++
	return strings.TrimRight(line, "\r\n"), true
}

// Err returns the first read error, if any.
func (s *Source) Err() error { return s.err }

// Close releases the decompressor and the underlying file.
func (s *Source) Close() error {
	var first error
	for i := 0; i < len(s.closers); i++ {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
