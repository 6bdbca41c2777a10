package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jzhangc/gtool/internal/analysis"
	"github.com/jzhangc/gtool/internal/config"
	"github.com/jzhangc/gtool/internal/fasta"
	"github.com/jzhangc/gtool/internal/report"
	"github.com/jzhangc/gtool/internal/result"
)

type statsOptions struct {
	size     bool
	gc       bool
	repeat   bool
	contig   string
	extract  []int
	fastaOut string
	gcPlot   string
	summary  bool
}

func newStatsCmd(g *globalOptions, stdout, stderr io.Writer) *cobra.Command {
	o := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "gtool [flags] FILE... | -",
		Short: "Size, GC and repeat content of FASTA files, and region extraction",
		Long: `gtool reports size, GC content and repeat (lowercase) content of FASTA
files, per file or per contig, and extracts regions of a contig.

Use '-' to read a single FASTA stream from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), g, o, args, stdout, stderr)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&o.size, "size", "s", false, "show size")
	f.BoolVarP(&o.gc, "gcontent", "g", false, "show GC content")
	f.BoolVarP(&o.repeat, "rcontent", "r", false, "show repeats content")
	f.StringVarP(&o.contig, "contig", "c", "", "specify contig to work on, supports regular expressions")
	f.IntSliceVarP(&o.extract, "extract", "e", nil, "extract sequence from START to STOP (`START,STOP`); requires -c and stops at the first match")
	f.StringVar(&o.fastaOut, "fasta-out", "", "also write extracted regions as FASTA to this file")
	f.StringVar(&o.gcPlot, "gc-plot", "", "save a GC content bar chart (png, svg or pdf) to this file; requires -g")
	f.BoolVar(&o.summary, "summary", false, "print mean, standard deviation and range of GC content; requires -g")
	return cmd
}

func (o *statsOptions) validate() error {
	if !o.size && !o.gc && !o.repeat && o.contig == "" && o.extract == nil {
		return usageError("You should at least use one argument.\ngtool --help for more info.")
	}
	if o.extract != nil && o.contig == "" {
		return usageError("-e (--extract) requires -c (--contig).")
	}
	if o.extract != nil && len(o.extract) != 2 {
		return usageError("-e (--extract) takes exactly two positions START,STOP, got %d", len(o.extract))
	}
	if (o.gcPlot != "" || o.summary) && !o.gc {
		return usageError("--gc-plot and --summary require -g (--gcontent).")
	}
	if o.fastaOut != "" && o.extract == nil {
		return usageError("--fasta-out requires -e (--extract).")
	}
	return nil
}

func (o *statsOptions) request() (analysis.Request, error) {
	req := analysis.Request{Options: analysis.Options{GC: o.gc, Repeat: o.repeat}}
	if o.contig != "" {
		sel, err := fasta.NewSelector(o.contig)
		if err != nil {
			return req, usageError("%v", err)
		}
		req.Selector = sel
	}
	if o.extract != nil {
		req.Extract = true
		req.Start, req.Stop = o.extract[0], o.extract[1]
	}
	return req, nil
}

func runStats(ctx context.Context, g *globalOptions, o *statsOptions, paths []string, stdout, stderr io.Writer) error {
	if err := o.validate(); err != nil {
		return err
	}
	req, err := o.request()
	if err != nil {
		return err
	}
	if err := analysis.ValidatePaths(paths); err != nil {
		return usageError("%v", err)
	}
	cfg, logger, cleanup, err := g.setup(stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Debug("starting gtool", "inputs", len(paths), "mode", req.Mode(), "contig", o.contig, "extract", o.extract)
	batch, runErr := analysis.Run(ctx, paths, req, logger)
	if runErr != nil && !errors.Is(runErr, fasta.ErrMalformedInput) {
		return runErr
	}
	outcomes := reportable(batch)
	printer := report.NewPrinter(stdout, report.Fields{Size: o.size, GC: o.gc, Repeat: o.repeat}, colorEnabled(cfg.Color, stdout))
	if err := printer.PrintAll(outcomes); err != nil {
		return err
	}
	if err := writeExtras(o, cfg, outcomes, stdout, logger); err != nil {
		return err
	}
	return malformedExit(runErr, stdout)
}

func writeExtras(o *statsOptions, cfg *config.Config, outcomes []result.Outcome, stdout io.Writer, logger *log.Logger) error {
	if o.summary {
		s, err := report.SummarizeGC(outcomes)
		if err != nil {
			logger.Warn("no GC summary", "err", err)
		} else if err := report.WriteGCSummary(stdout, s); err != nil {
			return err
		}
	}
	if o.gcPlot != "" {
		if err := report.PlotGC(o.gcPlot, outcomes); err != nil {
			logger.Error("failed to write GC plot", "path", o.gcPlot, "err", err)
		} else {
			logger.Info("wrote GC plot", "path", o.gcPlot)
		}
	}
	if o.fastaOut != "" {
		f, err := os.Create(o.fastaOut)
		if err != nil {
			return fmt.Errorf("create fasta output: %w", err)
		}
		n, werr := report.WriteFasta(f, outcomes, cfg.LineWidth)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			return fmt.Errorf("write fasta output: %w", werr)
		}
		logger.Info("wrote extracted regions", "path", o.fastaOut, "records", n)
	}
	return nil
}
