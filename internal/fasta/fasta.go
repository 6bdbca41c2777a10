// Package fasta streams FASTA formatted data one record at a time. Parsing is
// deliberately conservative: a header is any line starting with '>' and every
// other line belongs to the body of the most recent header.
package fasta

import (
	"errors"
	"path/filepath"
	"strings"
)

// StdinName is the source name reported for standard input.
const StdinName = "stdin"

// ErrMalformedInput is returned when the input does not look like FASTA at all,
// e.g. the very first line of the stream is blank.
var ErrMalformedInput = errors.New("malformed fasta input")

// Record identifies a single FASTA record (header and its owning source). The
// body is not stored; callers consume it through Scanner.Body.
type Record struct {
	// Source is the name of the input the record was read from.
	Source string
	// Header is the raw header line, including the leading '>'.
	Header string
	// Label is the header text with '>' removed and surrounding whitespace trimmed.
	Label string
}

func newRecord(source, header string) Record {
	return Record{Source: source, Header: header, Label: HeaderLabel(header)}
}

// HeaderLabel strips the '>' marker and surrounding whitespace from a header line.
func HeaderLabel(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), ">"))
}

// IsHeader reports whether line is a FASTA header line.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, ">")
}

// SourceName derives the name used to report results for path: the base name
// up to its first dot, or StdinName for "-".
func SourceName(path string) string {
	if path == "-" {
		return StdinName
	}
	base := filepath.Base(path)
	name, _, _ := strings.Cut(base, ".")
	return name
}
