// Package report renders outcomes for people: the tab-indented text report,
// FASTA export of extracted regions, and GC content summaries and charts.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jzhangc/gtool/internal/result"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Fields selects which values are printed.
type Fields struct {
	Size   bool
	GC     bool
	Repeat bool
}

// Printer writes the text report.
type Printer struct {
	w      io.Writer
	fields Fields
	styled bool
}

// NewPrinter returns a printer writing to w; styled enables terminal colors.
func NewPrinter(w io.Writer, fields Fields, styled bool) *Printer {
	return &Printer{w: w, fields: fields, styled: styled}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// PrintAll prints outcomes in order.
func (p *Printer) PrintAll(outcomes []result.Outcome) error {
	for _, o := range outcomes {
		if err := p.Print(o); err != nil {
			return err
		}
	}
	return nil
}

// Print writes one outcome. An extraction printed without size or GC content
// is emitted as a bare FASTA record.
func (p *Printer) Print(o result.Outcome) error {
	var b strings.Builder
	if o.HasSequence() && !p.fields.Size && !p.fields.GC {
		fmt.Fprintf(&b, ">%s\n%s\n", o.Label, o.Sequence)
		_, err := io.WriteString(p.w, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s %s\n", p.style(fieldStyle, "SeqName:"), p.style(nameStyle, o.Name))
	if o.Failed() {
		fmt.Fprintf(&b, "\t%s\n", p.style(errorStyle, "Error"))
		_, err := io.WriteString(p.w, b.String())
		return err
	}
	if o.Kind == result.Contig {
		p.field(&b, "Contig", o.Label)
	}
	if p.fields.Size {
		switch o.Kind {
		case result.WholeFile:
			p.field(&b, "Contig", strconv.Itoa(o.Contigs))
		case result.Extract:
			p.field(&b, "Contig", o.Label)
		}
		p.field(&b, "Size", strconv.Itoa(o.Size))
	}
	if o.Composition != nil {
		if p.fields.GC {
			v, err := o.Composition.GCPercent()
			p.field(&b, "GC%", p.percent(v, err))
		}
		if p.fields.Repeat {
			v, err := o.Composition.RepeatPercent()
			p.field(&b, "Repeat%", p.percent(v, err))
		}
	}
	if o.HasSequence() && o.Sequence != "" {
		p.field(&b, "Seq", o.Sequence)
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "\t%s %s\n", p.style(fieldStyle, name+":"), value)
}

func (p *Printer) percent(v float64, err error) string {
	if err != nil {
		return p.style(errorStyle, "Error")
	}
	return FormatPercent(v)
}

// FormatPercent prints a rounded percentage with at least one decimal
// ("50.0", "66.67").
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
