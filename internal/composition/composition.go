// Package composition accumulates per-record size, GC and lowercase ("repeat")
// counts line by line. Sizes are counted in characters, not bytes.
package composition

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrInvalidComposition is returned when a percentage is requested for a
// zero-length sequence.
var ErrInvalidComposition = errors.New("composition of empty sequence")

// Stats is an immutable snapshot of accumulated counts.
type Stats struct {
	Size   int
	GC     int
	Repeat int

	TrackGC     bool
	TrackRepeat bool
}

// GCPercent returns GC/Size*100 rounded to two decimals, halves to even.
func (s Stats) GCPercent() (float64, error) {
	return percent(s.GC, s.Size)
}

// RepeatPercent returns Repeat/Size*100 rounded to two decimals.
func (s Stats) RepeatPercent() (float64, error) {
	return percent(s.Repeat, s.Size)
}

func percent(n, size int) (float64, error) {
	if size == 0 {
		return 0, ErrInvalidComposition
	}
	return scalar.RoundEven(float64(n)/float64(size)*100, 2), nil
}

// Accumulator keeps running totals. The zero value tracks size only.
type Accumulator struct {
	stats Stats
}

// New returns an accumulator tracking GC and/or repeat content in addition to size.
func New(trackGC, trackRepeat bool) *Accumulator {
	return &Accumulator{stats: Stats{TrackGC: trackGC, TrackRepeat: trackRepeat}}
}

// Update adds one line (or any fragment) of raw, case-preserved sequence.
func (a *Accumulator) Update(line string) {
	if !a.stats.TrackGC && !a.stats.TrackRepeat {
		a.stats.Size += utf8.RuneCountInString(line)
		return
	}
	for _, r := range line {
		a.stats.Size++
		if a.stats.TrackGC {
			switch r {
			case 'G', 'C', 'g', 'c':
				a.stats.GC++
			}
		}
		if a.stats.TrackRepeat && unicode.IsLower(r) {
			a.stats.Repeat++
		}
	}
}

// Stats returns the totals accumulated so far.
func (a *Accumulator) Stats() Stats { return a.stats }

// Of computes the composition of a complete sequence in one call.
func Of(seq string, trackGC, trackRepeat bool) Stats {
	a := New(trackGC, trackRepeat)
	a.Update(seq)
	return a.Stats()
}
