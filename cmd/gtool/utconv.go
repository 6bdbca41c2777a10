package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/jzhangc/gtool/internal/analysis"
	"github.com/jzhangc/gtool/internal/fasta"
	"github.com/jzhangc/gtool/internal/report"
	"github.com/jzhangc/gtool/internal/utconv"
)

type utconvOptions struct {
	size   bool
	contig string
	outDir string
}

func newUTConvCmd(g *globalOptions, stdout, stderr io.Writer) *cobra.Command {
	o := &utconvOptions{}
	cmd := &cobra.Command{
		Use:   "utconv [flags] FILE... | -",
		Short: "Swap T and U in sequence lines (DNA <-> RNA)",
		Long: `utconv swaps t<->u and T<->U in every sequence line and appends the result
to <name>.ut.fasta, or to <name>_Contig_<contig>.ut.fasta for each contig
matched by -c.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUTConv(cmd.Context(), g, o, args, stdout, stderr)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&o.size, "size", "s", false, "show size")
	f.StringVarP(&o.contig, "contig", "c", "", "specify contig to work on, supports regular expressions")
	f.StringVar(&o.outDir, "out-dir", "", "directory for converted files (default from config, else the current directory)")
	return cmd
}

func runUTConv(ctx context.Context, g *globalOptions, o *utconvOptions, paths []string, stdout, stderr io.Writer) error {
	if !o.size && o.contig == "" {
		return usageError("use at least one of -s or -c")
	}
	var sel *fasta.Selector
	if o.contig != "" {
		var err error
		if sel, err = fasta.NewSelector(o.contig); err != nil {
			return usageError("%v", err)
		}
	}
	if err := analysis.ValidatePaths(paths); err != nil {
		return usageError("%v", err)
	}
	cfg, logger, cleanup, err := g.setup(stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	dir := o.outDir
	if dir == "" {
		dir = cfg.OutDir
	}
	sink, err := utconv.NewFileSink(dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Error("failed to close output", "err", err)
		}
	}()

	batch, runErr := utconv.Run(ctx, paths, sel, sink, logger)
	if runErr != nil && !errors.Is(runErr, fasta.ErrMalformedInput) {
		return runErr
	}
	printer := report.NewPrinter(stdout, report.Fields{Size: o.size}, colorEnabled(cfg.Color, stdout))
	if err := printer.PrintAll(reportable(batch)); err != nil {
		return err
	}
	for _, p := range sink.Paths() {
		logger.Debug("wrote converted sequences", "path", p)
	}
	return malformedExit(runErr, stdout)
}
