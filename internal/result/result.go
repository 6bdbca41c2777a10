// Package result packages per-source and per-record outcomes for rendering.
package result

import "github.com/jzhangc/gtool/internal/composition"

// Kind tells which operation produced an Outcome.
type Kind int

const (
	// WholeFile aggregates every record of a source.
	WholeFile Kind = iota
	// Contig describes one record matched by a pattern.
	Contig
	// Extract carries a sub-sequence of the first matching record.
	Extract
)

func (k Kind) String() string {
	switch k {
	case WholeFile:
		return "whole-file"
	case Contig:
		return "contig"
	case Extract:
		return "extract"
	}
	return "unknown"
}

// Outcome is the immutable result of one unit of work. When Err is set the
// remaining fields are unspecified and must not be rendered.
type Outcome struct {
	Kind Kind
	// Name is the source name (file base name or "stdin").
	Name string
	// Label is the matched header label; empty for WholeFile outcomes.
	Label string
	// Contigs is the number of headers seen; WholeFile only.
	Contigs int
	// Size is the body length (WholeFile, Contig) or the extracted length (Extract).
	Size int
	// Composition is nil unless GC or repeat content was requested.
	Composition *composition.Stats
	// Sequence is the extracted sub-sequence; Extract only.
	Sequence string
	Err      error
}

// Failed reports whether the outcome carries an error.
func (o Outcome) Failed() bool { return o.Err != nil }

// HasSequence reports whether the outcome carries an extracted sequence.
func (o Outcome) HasSequence() bool { return o.Kind == Extract && o.Err == nil }

func compositionOf(s composition.Stats) *composition.Stats {
	if !s.TrackGC && !s.TrackRepeat {
		return nil
	}
	return &s
}

// NewWholeFile packages aggregate statistics over a whole source.
func NewWholeFile(name string, contigs int, stats composition.Stats) Outcome {
	return Outcome{Kind: WholeFile, Name: name, Contigs: contigs, Size: stats.Size, Composition: compositionOf(stats)}
}

// NewContig packages statistics of one matched record.
func NewContig(name, label string, stats composition.Stats) Outcome {
	return Outcome{Kind: Contig, Name: name, Label: label, Size: stats.Size, Composition: compositionOf(stats)}
}

// NewExtract packages an extracted region; stats must describe seq.
func NewExtract(name, label, seq string, stats composition.Stats) Outcome {
	return Outcome{Kind: Extract, Name: name, Label: label, Size: len(seq), Sequence: seq, Composition: compositionOf(stats)}
}

// NewFailed returns an errored outcome for the named source.
func NewFailed(kind Kind, name string, err error) Outcome {
	return Outcome{Kind: kind, Name: name, Err: err}
}

// Batch collects outcomes across sources in processing order.
type Batch struct {
	outcomes []Outcome
}

// Add appends outcomes to the batch.
func (b *Batch) Add(o ...Outcome) { b.outcomes = append(b.outcomes, o...) }

// Outcomes returns a copy of the collected outcomes.
func (b *Batch) Outcomes() []Outcome {
	out := make([]Outcome, len(b.outcomes))
	copy(out, b.outcomes)
	return out
}

// Len returns the number of outcomes collected.
func (b *Batch) Len() int { return len(b.outcomes) }

// Failures counts errored outcomes.
func (b *Batch) Failures() int {
	n := 0
	for _, o := range b.outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}
