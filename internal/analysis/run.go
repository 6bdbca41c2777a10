package analysis

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/jzhangc/gtool/internal/fasta"
	"github.com/jzhangc/gtool/internal/result"
)

// Request describes one invocation over a list of sources.
type Request struct {
	Options
	// Selector restricts work to matching records; nil means whole-file mode.
	Selector *fasta.Selector
	// Extract enables region extraction between Start and Stop (requires Selector).
	Extract     bool
	Start, Stop int
}

// Validate checks request invariants that do not depend on the input.
func (r Request) Validate() error {
	if r.Extract && r.Selector == nil {
		return errors.New("extraction requires a contig pattern")
	}
	return nil
}

// Mode names the operation selected by the request.
func (r Request) Mode() result.Kind {
	switch {
	case r.Extract:
		return result.Extract
	case r.Selector != nil:
		return result.Contig
	}
	return result.WholeFile
}

// ValidatePaths rejects "-" mixed with other paths or given twice: standard
// input can only be read once per process.
func ValidatePaths(paths []string) error {
	if len(paths) == 0 {
		return errors.New("no input given")
	}
	for _, p := range paths {
		if p == "-" && len(paths) > 1 {
			return errors.New("stdin '-' cannot be mixed with other inputs")
		}
	}
	return nil
}

// SourceFunc processes one opened source.
type SourceFunc func(src *fasta.Source) ([]result.Outcome, error)

// Run processes each path in order with the operation selected by req.
func Run(ctx context.Context, paths []string, req Request, logger *log.Logger) (*result.Batch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return ForEachSource(ctx, paths, req.Mode(), logger, func(src *fasta.Source) ([]result.Outcome, error) {
		switch req.Mode() {
		case result.Extract:
			o, err := ExtractRegion(src, req.Selector, req.Start, req.Stop, req.Options)
			if err != nil {
				return nil, err
			}
			return []result.Outcome{o}, nil
		case result.Contig:
			return PerContigStats(src, req.Selector, req.Options)
		default:
			o, err := WholeFileStats(src, req.Options)
			if err != nil {
				return nil, err
			}
			return []result.Outcome{o}, nil
		}
	})
}

// ForEachSource opens each path in order, hands it to fn and collects the
// outcomes. Every source is closed before the next one is opened. Open
// failures and other per-source errors are recorded as failed outcomes of kind
// mode and do not stop the batch. A malformed source is recorded the same way;
// once every path is processed the batch is returned together with an error
// wrapping fasta.ErrMalformedInput for the first malformed source.
func ForEachSource(ctx context.Context, paths []string, mode result.Kind, logger *log.Logger, fn SourceFunc) (*result.Batch, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := ValidatePaths(paths); err != nil {
		return nil, err
	}
	batch := &result.Batch{}
	var malformed error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		outcomes, err := runOne(path, fn)
		if err != nil {
			if errors.Is(err, fasta.ErrMalformedInput) && malformed == nil {
				malformed = err
			}
			logger.Error("failed to process input", "path", path, "err", err)
			batch.Add(result.NewFailed(mode, fasta.SourceName(path), err))
			continue
		}
		for _, o := range outcomes {
			if o.Failed() {
				logger.Warn("no result", "source", o.Name, "err", o.Err)
			}
		}
		logger.Debug("processed input", "path", path, "mode", mode, "outcomes", len(outcomes))
		batch.Add(outcomes...)
	}
	return batch, malformed
}

func runOne(path string, fn SourceFunc) ([]result.Outcome, error) {
	src, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return fn(src)
}
