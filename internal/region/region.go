// Package region extracts sub-sequences by 1-based coordinates.
package region

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned for coordinates below 1.
var ErrInvalidRange = errors.New("invalid range")

// Extract returns the part of body between the 1-based positions start and
// stop.
//
// When start < stop the window is read forward and includes both ends. When
// start >= stop the window from start back to stop, both included, is returned
// in reversed order; bases are not complemented. Coordinates past the end of
// body are clamped to it. Positions count characters, not bytes.
func Extract(body string, start, stop int) (string, error) {
	if start < 1 || stop < 1 {
		return "", fmt.Errorf("%w: %d..%d (positions are 1-based)", ErrInvalidRange, start, stop)
	}
	seq := []rune(body)
	n := len(seq)
	if start < stop {
		if stop == n {
			return string(seq[min(start-1, n):]), nil
		}
		lo, hi := min(start-1, n), min(stop, n)
		if lo >= hi {
			return "", nil
		}
		return string(seq[lo:hi]), nil
	}
	if n == 0 {
		return "", nil
	}
	hi := min(start-1, n-1)
	lo := 0
	if stop != 1 {
		lo = stop - 1
	}
	if lo > hi {
		return "", nil
	}
	return reverse(seq[lo : hi+1]), nil
}

func reverse(s []rune) string {
	b := make([]rune, len(s))
	for i, r := range s {
		b[len(s)-1-i] = r
	}
	return string(b)
}
