package fasta

import (
	"fmt"
	"strings"
)

type scanState int

const (
	seekingMatch scanState = iota
	inMatchedBody
	scanDone
)

// Scanner partitions a Source into records without buffering more than one
// line ahead. Only records accepted by the selector are surfaced.
//
//	sc := fasta.NewScanner(src, sel)
//	for sc.Next() {
//		rec := sc.Record()
//		err := sc.Body(func(line string) error { ... })
//	}
//	err := sc.Err()
type Scanner struct {
	src    *Source
	sel    *Selector
	state  scanState
	rec    Record
	single bool
	count  int

	pending    string
	hasPending bool
}

// NewScanner returns a scanner over src. A nil sel accepts every record.
func NewScanner(src *Source, sel *Selector) *Scanner {
	return &Scanner{src: src, sel: sel}
}

// StopAfterFirst limits the scanner to the first accepted record.
func (sc *Scanner) StopAfterFirst() *Scanner {
	sc.single = true
	return sc
}

// Matched returns the number of records accepted so far.
func (sc *Scanner) Matched() int { return sc.count }

// Record returns the record selected by the last call to Next.
func (sc *Scanner) Record() Record { return sc.rec }

// Err returns the first read error encountered by the underlying source.
func (sc *Scanner) Err() error { return sc.src.Err() }

func (sc *Scanner) readLine() (string, bool) {
	if sc.hasPending {
		sc.hasPending = false
		return sc.pending, true
	}
	return sc.src.Next()
}

func (sc *Scanner) unread(line string) {
	sc.pending = line
	sc.hasPending = true
}

// Next advances to the next accepted record. Any unread body of the current
// record is skipped.
func (sc *Scanner) Next() bool {
	if sc.state == inMatchedBody {
		if err := sc.Body(func(string) error { return nil }); err != nil {
			sc.state = scanDone
		}
	}
	if sc.state == scanDone {
		return false
	}
	for {
		line, ok := sc.readLine()
		if !ok {
			sc.state = scanDone
			return false
		}
		if !IsHeader(line) || !sc.sel.Matches(line) {
			continue
		}
		sc.rec = newRecord(sc.src.Name(), line)
		sc.count++
		sc.state = inMatchedBody
		return true
	}
}

// Body streams the current record's body lines, whitespace-trimmed, to fn. It
// stops at the next header or end of stream. Body may only be consumed once.
func (sc *Scanner) Body(fn func(line string) error) error {
	if sc.state != inMatchedBody {
		return nil
	}
	for {
		line, ok := sc.readLine()
		if !ok {
			sc.state = scanDone
			return nil
		}
		if IsHeader(line) {
			sc.unread(line)
			sc.state = seekingMatch
			if sc.single {
				sc.state = scanDone
			}
			return nil
		}
		if err := fn(strings.TrimSpace(line)); err != nil {
			sc.state = scanDone
			return err
		}
	}
}

// Sequence concatenates the current record's body.
func (sc *Scanner) Sequence() (string, error) {
	var b strings.Builder
	err := sc.Body(func(line string) error {
		b.WriteString(line)
		return nil
	})
	return b.String(), err
}

// WalkLines visits every line of the source in order, trimmed, reporting
// whether it is a header. It ignores the selector. A blank first line means
// the stream is not FASTA and yields ErrMalformedInput; later blank lines are
// skipped.
func (sc *Scanner) WalkLines(fn func(line string, header bool) error) error {
	for {
		line, ok := sc.readLine()
		if !ok {
			sc.state = scanDone
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if sc.src.Line() == 1 {
				sc.state = scanDone
				return fmt.Errorf("%s: line 1 is empty: %w", sc.src.Name(), ErrMalformedInput)
			}
			continue
		}
		header := IsHeader(line)
		if header {
			sc.count++
		}
		if err := fn(line, header); err != nil {
			sc.state = scanDone
			return err
		}
	}
}
