package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jzhangc/gtool/internal/result"
)

// PlotGC saves a bar chart of GC% per outcome to path. The image format
// follows the file extension (png, svg, pdf, ...).
func PlotGC(path string, outcomes []result.Outcome) error {
	labels, values := gcValues(outcomes)
	if len(values) == 0 {
		return ErrNoGCData
	}

	p := plot.New()
	p.Title.Text = "GC Content per Contig"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	width := vg.Length(len(values)) * vg.Points(36)
	if width < 6*vg.Inch {
		width = 6 * vg.Inch
	}
	return p.Save(width, 4*vg.Inch, path)
}
