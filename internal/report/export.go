package report

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/jzhangc/gtool/internal/result"
)

// DefaultLineWidth is the sequence line width of exported FASTA.
const DefaultLineWidth = 60

// WriteFasta writes every extracted sequence in outcomes as a FASTA record
// named after its contig label, wrapping lines at width. It returns the number
// of records written.
func WriteFasta(w io.Writer, outcomes []result.Outcome, width int) (int, error) {
	if width <= 0 {
		width = DefaultLineWidth
	}
	fw := fasta.NewWriter(w, width)
	n := 0
	for _, o := range outcomes {
		if !o.HasSequence() {
			continue
		}
		s := linear.NewSeq(o.Label, alphabet.BytesToLetters([]byte(o.Sequence)), alphabet.DNA)
		if _, err := fw.Write(s); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
