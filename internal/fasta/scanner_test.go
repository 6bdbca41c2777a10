package fasta

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multi = ">chr1 first\nACGT\nacgt\n>chr2\nGG\n\n>plasmid chr1-like\nTTT\n"

func scanner(t *testing.T, input, pattern string) *Scanner {
	t.Helper()
	var sel *Selector
	if pattern != "" {
		var err error
		sel, err = NewSelector(pattern)
		require.NoError(t, err)
	}
	return NewScanner(NewSource("test", strings.NewReader(input)), sel)
}

func TestScannerAllRecords(t *testing.T) {
	sc := scanner(t, multi, "")
	var labels, seqs []string
	for sc.Next() {
		seq, err := sc.Sequence()
		require.NoError(t, err)
		labels = append(labels, sc.Record().Label)
		seqs = append(seqs, seq)
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"chr1 first", "chr2", "plasmid chr1-like"}, labels)
	assert.Equal(t, []string{"ACGTacgt", "GG", "TTT"}, seqs)
	assert.Equal(t, 3, sc.Matched())
}

func TestScannerSkipsUnreadBody(t *testing.T) {
	sc := scanner(t, multi, "")
	require.True(t, sc.Next())
	require.True(t, sc.Next())
	assert.Equal(t, "chr2", sc.Record().Label)
	assert.Equal(t, ">chr2", sc.Record().Header)
	assert.Equal(t, "test", sc.Record().Source)
}

func TestScannerSelectsMatchingHeaders(t *testing.T) {
	sc := scanner(t, multi, "chr1")
	var labels []string
	for sc.Next() {
		labels = append(labels, sc.Record().Label)
	}
	assert.Equal(t, []string{"chr1 first", "plasmid chr1-like"}, labels)
}

func TestScannerStopAfterFirst(t *testing.T) {
	sc := scanner(t, multi, "chr1").StopAfterFirst()
	require.True(t, sc.Next())
	seq, err := sc.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "ACGTacgt", seq)
	assert.False(t, sc.Next())
	assert.Equal(t, 1, sc.Matched())
}

func TestScannerNoMatch(t *testing.T) {
	sc := scanner(t, multi, "chrX")
	assert.False(t, sc.Next())
	assert.Equal(t, 0, sc.Matched())
}

func TestScannerBodyErrorStops(t *testing.T) {
	sc := scanner(t, multi, "")
	require.True(t, sc.Next())
	boom := errors.New("boom")
	err := sc.Body(func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, sc.Next())
}

func TestWalkLinesCountsHeaders(t *testing.T) {
	sc := scanner(t, "ACGT\n>a\nGG\n>b\n", "")
	var body []string
	err := sc.WalkLines(func(line string, header bool) error {
		if !header {
			body = append(body, line)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "GG"}, body)
	assert.Equal(t, 2, sc.Matched())
}

func TestWalkLinesBlankFirstLine(t *testing.T) {
	sc := scanner(t, "\n>a\nACGT\n", "")
	err := sc.WalkLines(func(string, bool) error { return nil })
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestWalkLinesEmptyInput(t *testing.T) {
	sc := scanner(t, "", "")
	calls := 0
	err := sc.WalkLines(func(string, bool) error { calls++; return nil })
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestWalkLinesSkipsLaterBlankLines(t *testing.T) {
	sc := scanner(t, ">a\nAC\n\n  \nGT\n", "")
	var body []string
	err := sc.WalkLines(func(line string, header bool) error {
		if !header {
			body = append(body, line)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"AC", "GT"}, body)
}
