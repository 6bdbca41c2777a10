package fasta

import (
	"fmt"
	"regexp"
)

// Selector restricts scanning to records whose header matches a pattern.
// A nil *Selector accepts every header.
type Selector struct {
	re *regexp.Regexp
}

// NewSelector compiles pattern using RE2 syntax.
func NewSelector(pattern string) (*Selector, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid contig pattern %q: %w", pattern, err)
	}
	return &Selector{re: re}, nil
}

// Matches reports whether the pattern occurs anywhere in header.
func (s *Selector) Matches(header string) bool {
	if s == nil {
		return true
	}
	return s.re.MatchString(header)
}

func (s *Selector) String() string {
	if s == nil {
		return ""
	}
	return s.re.String()
}
