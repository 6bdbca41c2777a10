// Package analysis implements the three per-source operations (whole-file
// statistics, per-contig statistics and region extraction) on top of the
// streaming FASTA scanner, and a driver running them over several sources.
package analysis

import (
	"errors"
	"fmt"

	"github.com/jzhangc/gtool/internal/composition"
	"github.com/jzhangc/gtool/internal/fasta"
	"github.com/jzhangc/gtool/internal/region"
	"github.com/jzhangc/gtool/internal/result"
)

// ErrNoMatch is carried by outcomes of sources where no header matched.
var ErrNoMatch = errors.New("no matching contig")

// Options selects which composition counters are tracked.
type Options struct {
	GC     bool
	Repeat bool
}

func (o Options) accumulator() *composition.Accumulator {
	return composition.New(o.GC, o.Repeat)
}

// WholeFileStats aggregates the bodies of every record in src into one
// outcome. Headers are counted but not required.
func WholeFileStats(src *fasta.Source, opts Options) (result.Outcome, error) {
	acc := opts.accumulator()
	sc := fasta.NewScanner(src, nil)
	err := sc.WalkLines(func(line string, header bool) error {
		if !header {
			acc.Update(line)
		}
		return nil
	})
	if err != nil {
		return result.Outcome{}, err
	}
	if err := sc.Err(); err != nil {
		return result.Outcome{}, err
	}
	return result.NewWholeFile(src.Name(), sc.Matched(), acc.Stats()), nil
}

// PerContigStats returns one outcome per record whose header matches sel, in
// file order. When nothing matches a single failed outcome is returned.
func PerContigStats(src *fasta.Source, sel *fasta.Selector, opts Options) ([]result.Outcome, error) {
	var out []result.Outcome
	sc := fasta.NewScanner(src, sel)
	for sc.Next() {
		acc := opts.accumulator()
		if err := sc.Body(func(line string) error {
			acc.Update(line)
			return nil
		}); err != nil {
			return nil, err
		}
		out = append(out, result.NewContig(src.Name(), sc.Record().Label, acc.Stats()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = append(out, result.NewFailed(result.Contig, src.Name(), noMatch(sel)))
	}
	return out, nil
}

// ExtractRegion extracts start..stop (1-based) from the first record whose
// header matches sel. Composition is computed on the extracted sequence.
func ExtractRegion(src *fasta.Source, sel *fasta.Selector, start, stop int, opts Options) (result.Outcome, error) {
	sc := fasta.NewScanner(src, sel).StopAfterFirst()
	if !sc.Next() {
		if err := sc.Err(); err != nil {
			return result.Outcome{}, err
		}
		return result.NewFailed(result.Extract, src.Name(), noMatch(sel)), nil
	}
	rec := sc.Record()
	body, err := sc.Sequence()
	if err == nil {
		err = sc.Err()
	}
	if err != nil {
		return result.Outcome{}, err
	}
	seq, err := region.Extract(body, start, stop)
	if err != nil {
		return result.NewFailed(result.Extract, src.Name(), fmt.Errorf("%s: %w", rec.Label, err)), nil
	}
	acc := opts.accumulator()
	acc.Update(seq)
	return result.NewExtract(src.Name(), rec.Label, seq, acc.Stats()), nil
}

func noMatch(sel *fasta.Selector) error {
	return fmt.Errorf("%w for pattern %q", ErrNoMatch, sel.String())
}
