package report

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/jzhangc/gtool/internal/result"
)

// ErrNoGCData is returned when no outcome carries a usable GC percentage.
var ErrNoGCData = errors.New("no GC content to summarize")

// GCSummary describes the spread of GC content across outcomes.
type GCSummary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// gcValues collects GC percentages of successful outcomes with a non-empty
// sequence, alongside a label for each.
func gcValues(outcomes []result.Outcome) (labels []string, values []float64) {
	for _, o := range outcomes {
		if o.Failed() || o.Composition == nil || !o.Composition.TrackGC {
			continue
		}
		v, err := o.Composition.GCPercent()
		if err != nil {
			continue
		}
		label := o.Label
		if label == "" {
			label = o.Name
		}
		labels = append(labels, label)
		values = append(values, v)
	}
	return labels, values
}

// SummarizeGC computes mean, sample standard deviation and range of GC%.
func SummarizeGC(outcomes []result.Outcome) (GCSummary, error) {
	_, values := gcValues(outcomes)
	if len(values) == 0 {
		return GCSummary{}, ErrNoGCData
	}
	s := GCSummary{
		N:    len(values),
		Mean: scalar.RoundEven(stat.Mean(values, nil), 2),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
	if len(values) > 1 {
		s.StdDev = scalar.RoundEven(stat.StdDev(values, nil), 2)
	}
	return s, nil
}

// WriteGCSummary prints s in the report's tab-indented layout.
func WriteGCSummary(w io.Writer, s GCSummary) error {
	_, err := fmt.Fprintf(w, "GC summary (%d)\n\tMean GC%%: %s\n\tStdDev: %s\n\tRange: %s - %s\n",
		s.N, FormatPercent(s.Mean), FormatPercent(s.StdDev), FormatPercent(s.Min), FormatPercent(s.Max))
	return err
}
