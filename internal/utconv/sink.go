package utconv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sink hands out one writer per record identity. Close releases every writer
// handed out so far.
type Sink interface {
	Writer(identity string) (io.Writer, error)
	Close() error
}

// Suffix is appended to identities to form output file names.
const Suffix = ".ut.fasta"

// FileSink appends to <dir>/<identity>.ut.fasta, keeping one handle per identity.
type FileSink struct {
	dir   string
	files map[string]*os.File
	order []string
}

// NewFileSink returns a sink writing into dir, which is created if missing.
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileSink{dir: dir, files: make(map[string]*os.File)}, nil
}

// Path returns the file an identity is written to.
func (s *FileSink) Path(identity string) string {
	return filepath.Join(s.dir, fileName(identity)+Suffix)
}

func fileName(identity string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, identity)
}

// Writer opens (or reuses) the append-mode file for identity.
func (s *FileSink) Writer(identity string) (io.Writer, error) {
	if f, ok := s.files[identity]; ok {
		return f, nil
	}
	f, err := os.OpenFile(s.Path(identity), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output for %s: %w", identity, err)
	}
	s.files[identity] = f
	s.order = append(s.order, identity)
	return f, nil
}

// Paths lists the files opened so far, in first-use order.
func (s *FileSink) Paths() []string {
	out := make([]string, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.Path(id))
	}
	return out
}

// Close closes every open file and returns the first error.
func (s *FileSink) Close() error {
	var first error
	for _, id := range s.order {
		if err := s.files[id].Close(); err != nil && first == nil {
			first = err
		}
	}
	s.files = make(map[string]*os.File)
	s.order = nil
	return first
}
