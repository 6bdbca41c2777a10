package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jzhangc/gtool/internal/config"
	"github.com/jzhangc/gtool/internal/fasta"
	"github.com/jzhangc/gtool/internal/result"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.2.0"

const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitMalformed = 255
)

// exitError carries a process exit status and an optional message for stderr.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func usageError(format string, args ...any) error {
	return &exitError{code: exitUsage, msg: fmt.Sprintf(format, args...)}
}

// reportable drops outcomes of malformed sources; those are announced once
// by malformedExit instead of as an Error block.
func reportable(batch *result.Batch) []result.Outcome {
	if batch == nil {
		return nil
	}
	var out []result.Outcome
	for _, o := range batch.Outcomes() {
		if o.Failed() && errors.Is(o.Err, fasta.ErrMalformedInput) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func malformedExit(err error, stdout io.Writer) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(stdout, "Is this really a fasta file?")
	return &exitError{code: exitMalformed}
}

// globalOptions are shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
}

// setup loads the config file and builds the logger. Callers must run the
// returned cleanup func.
func (g *globalOptions) setup(stderr io.Writer) (*config.Config, *log.Logger, func(), error) {
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		return nil, nil, nil, &exitError{code: exitUsage, msg: fmt.Sprintf("config: %v", err)}
	}
	logger, closeFn := newLogger(cfg, g.verbose, stderr)
	logger.Debug("loaded config", "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "line_width", cfg.LineWidth, "out_dir", cfg.OutDir, "color", cfg.Color)
	return cfg, logger, closeFn, nil
}

// colorEnabled resolves the configured color mode against w.
func colorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalOptions{}
	root := newStatsCmd(g, stdout, stderr)
	root.Version = version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError("%v\nSee '%s --help' for more info.", err, cmd.CommandPath())
	})
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a JSON config file (default ./"+config.DefaultPath+" when present)")
	root.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "enable verbose (debug) logging")
	root.AddCommand(newUTConvCmd(g, stdout, stderr))
	return root
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(stderr, ee.msg)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitFailure
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
