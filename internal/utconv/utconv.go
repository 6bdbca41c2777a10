// Package utconv converts between DNA and RNA alphabets by swapping T and U in
// sequence lines, writing converted records to a Sink keyed by record identity.
package utconv

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jzhangc/gtool/internal/analysis"
	"github.com/jzhangc/gtool/internal/composition"
	"github.com/jzhangc/gtool/internal/fasta"
	"github.com/jzhangc/gtool/internal/result"
)

var swapper = strings.NewReplacer("t", "u", "T", "U", "u", "t", "U", "T")

// Swap exchanges t<->u and T<->U, leaving every other character untouched.
func Swap(seq string) string { return swapper.Replace(seq) }

// ContigIdentity names the sink entry of one converted record.
func ContigIdentity(source, label string) string {
	return source + "_Contig_" + label
}

// Convert writes every record of src, body lines swapped, to the sink entry
// named after the source.
func Convert(src *fasta.Source, sink Sink) (result.Outcome, error) {
	w, err := sink.Writer(src.Name())
	if err != nil {
		return result.Outcome{}, err
	}
	acc := composition.New(false, false)
	sc := fasta.NewScanner(src, nil)
	err = sc.WalkLines(func(line string, header bool) error {
		if header {
			return writeLine(w, line)
		}
		acc.Update(line)
		return writeLine(w, Swap(line))
	})
	if err == nil {
		err = sc.Err()
	}
	if err != nil {
		return result.Outcome{}, err
	}
	return result.NewWholeFile(src.Name(), sc.Matched(), acc.Stats()), nil
}

// ConvertContigs writes each record matching sel to its own sink entry. When
// nothing matches a single failed outcome carrying analysis.ErrNoMatch is
// returned.
func ConvertContigs(src *fasta.Source, sel *fasta.Selector, sink Sink) ([]result.Outcome, error) {
	var out []result.Outcome
	sc := fasta.NewScanner(src, sel)
	for sc.Next() {
		rec := sc.Record()
		w, err := sink.Writer(ContigIdentity(src.Name(), rec.Label))
		if err != nil {
			return nil, err
		}
		if err := writeLine(w, strings.TrimSpace(rec.Header)); err != nil {
			return nil, err
		}
		acc := composition.New(false, false)
		err = sc.Body(func(line string) error {
			acc.Update(line)
			return writeLine(w, Swap(line))
		})
		if err != nil {
			return nil, err
		}
		out = append(out, result.NewContig(src.Name(), rec.Label, acc.Stats()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = append(out, result.NewFailed(result.Contig, src.Name(),
			fmt.Errorf("%w for pattern %q", analysis.ErrNoMatch, sel.String())))
	}
	return out, nil
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}

// Run converts each path in order. A nil sel converts whole files.
func Run(ctx context.Context, paths []string, sel *fasta.Selector, sink Sink, logger *log.Logger) (*result.Batch, error) {
	mode := result.WholeFile
	if sel != nil {
		mode = result.Contig
	}
	return analysis.ForEachSource(ctx, paths, mode, logger, func(src *fasta.Source) ([]result.Outcome, error) {
		if sel != nil {
			return ConvertContigs(src, sel, sink)
		}
		o, err := Convert(src, sink)
		if err != nil {
			return nil, err
		}
		return []result.Outcome{o}, nil
	})
}
