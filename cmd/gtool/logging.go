package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jzhangc/gtool/internal/config"
)

// stampedWriter forwards complete log lines to w, each led by the local time
// in RFC3339. A trailing fragment without newline waits for the next Write.
type stampedWriter struct {
	mu      sync.Mutex
	w       io.Writer
	pending []byte
	now     func() time.Time
}

func (s *stampedWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, p...)
	for {
		i := bytes.IndexByte(s.pending, '\n')
		if i < 0 {
			return len(p), nil
		}
		now := time.Now
		if s.now != nil {
			now = s.now
		}
		line := make([]byte, 0, len(time.RFC3339)+2+i)
		line = now().AppendFormat(line, time.RFC3339)
		line = append(line, ' ')
		line = append(line, s.pending[:i+1]...)
		s.pending = s.pending[i+1:]
		if _, err := s.w.Write(line); err != nil {
			return len(p), err
		}
	}
}

// fdWriter lets charmbracelet/log see stderr as a terminal behind the stamp.
type fdWriter struct {
	io.Writer
	fd uintptr
}

func (f fdWriter) Fd() uintptr { return f.fd }

// newLogger builds the process logger writing to stderr and, when configured,
// appending to cfg.LogFile. The returned func closes the log file.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*log.Logger, func()) {
	out := stderr
	closeFn := func() {}
	var logFileErr error
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(stderr, f)
			closeFn = func() { _ = f.Close() }
		} else {
			logFileErr = err
		}
	}

	var w io.Writer = &stampedWriter{w: out}
	if f, ok := stderr.(*os.File); ok {
		w = fdWriter{Writer: w, fd: f.Fd()}
	}
	logger := log.New(w)

	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
		}
	}
	if logFileErr != nil {
		logger.Warn("log_file specified but could not be opened; logging to stderr only", "path", cfg.LogFile, "err", logFileErr)
	}
	return logger, closeFn
}
