package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genomeFasta = `>chr1 primary
ACgtGC
aaTT
>chr2
GGGG
`

// quietConfig writes a config that keeps log output out of the way of stdout checks.
func quietConfig(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "gtool.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"log_level":"error","color":"never","out_dir":"`+filepath.ToSlash(dir)+`"}`), 0o644))
	return p
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func setup(t *testing.T) (dir, cfg, genome string) {
	t.Helper()
	dir = t.TempDir()
	cfg = quietConfig(t, dir)
	genome = filepath.Join(dir, "genome.fa")
	require.NoError(t, os.WriteFile(genome, []byte(genomeFasta), 0o644))
	return dir, cfg, genome
}

func TestWholeFileReport(t *testing.T) {
	_, cfg, genome := setup(t)
	code, out, _ := runCLI(t, "--config", cfg, "-s", "-g", "-r", genome)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "SeqName: genome\n\tContig: 2\n\tSize: 14\n\tGC%: 57.14\n\tRepeat%: 28.57\n", out)
}

func TestPerContigReport(t *testing.T) {
	_, cfg, genome := setup(t)
	code, out, _ := runCLI(t, "--config", cfg, "-s", "-c", "chr", genome)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "SeqName: genome\n\tContig: chr1 primary\n\tSize: 10\nSeqName: genome\n\tContig: chr2\n\tSize: 4\n", out)
}

func TestNoMatchReportsError(t *testing.T) {
	_, cfg, genome := setup(t)
	code, out, _ := runCLI(t, "--config", cfg, "-s", "-c", "chrX", genome)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "SeqName: genome\n\tError\n", out)
}

func TestExtractPrintsFasta(t *testing.T) {
	_, cfg, genome := setup(t)
	code, out, _ := runCLI(t, "--config", cfg, "-c", "chr1", "-e", "4,1", genome)
	require.Equal(t, exitOK, code)
	assert.Equal(t, ">chr1 primary\ntgCA\n", out)
}

func TestExtractFastaOut(t *testing.T) {
	dir, cfg, genome := setup(t)
	outPath := filepath.Join(dir, "region.fa")
	code, _, _ := runCLI(t, "--config", cfg, "-c", "chr1", "-e", "2,9", "--fasta-out", outPath, genome)
	require.Equal(t, exitOK, code)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []string{">chr1", "primary", "CgtGCaaT"}, strings.Fields(string(data)))
}

func TestMalformedInput(t *testing.T) {
	dir, cfg, _ := setup(t)
	bad := filepath.Join(dir, "bad.fa")
	require.NoError(t, os.WriteFile(bad, []byte("\nACGT\n"), 0o644))
	code, out, _ := runCLI(t, "--config", cfg, "-s", bad)
	assert.Equal(t, exitMalformed, code)
	assert.Equal(t, "Is this really a fasta file?\n", out)
}

func TestMalformedInputKeepsBatchGoing(t *testing.T) {
	dir, cfg, genome := setup(t)
	bad := filepath.Join(dir, "bad.fa")
	require.NoError(t, os.WriteFile(bad, []byte("\nACGT\n"), 0o644))
	code, out, _ := runCLI(t, "--config", cfg, "-s", bad, genome)
	assert.Equal(t, exitMalformed, code)
	assert.Equal(t, "SeqName: genome\n\tContig: 2\n\tSize: 14\nIs this really a fasta file?\n", out)
}

func TestUsageErrors(t *testing.T) {
	_, cfg, genome := setup(t)
	tests := [][]string{
		{"--config", cfg, genome},
		{"--config", cfg, "-e", "1,2", genome},
		{"--config", cfg, "-c", "chr", "-e", "1,2,3", genome},
		{"--config", cfg, "-s", "--summary", genome},
		{"--config", cfg, "-c", "chr(", genome},
		{"--config", cfg, "-s", "-", genome},
		{"--config", cfg, "--bogus", genome},
	}
	for _, args := range tests {
		code, _, stderr := runCLI(t, args...)
		assert.Equal(t, exitUsage, code, strings.Join(args, " "))
		assert.NotEmpty(t, stderr)
	}
}

func TestSummary(t *testing.T) {
	_, cfg, genome := setup(t)
	code, out, _ := runCLI(t, "--config", cfg, "-g", "-c", "chr", "--summary", genome)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "GC summary (2)")
	assert.Contains(t, out, "Mean GC%: 70.0")
}

func TestUTConv(t *testing.T) {
	dir, cfg, genome := setup(t)
	code, out, _ := runCLI(t, "utconv", "--config", cfg, "-s", "-c", "chr2", genome)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "SeqName: genome\n\tContig: chr2\n\tSize: 4\n", out)

	code, out, _ = runCLI(t, "utconv", "--config", cfg, "-s", genome)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "SeqName: genome\n\tContig: 2\n\tSize: 14\n", out)
	data, err := os.ReadFile(filepath.Join(dir, "genome.ut.fasta"))
	require.NoError(t, err)
	assert.Equal(t, ">chr1 primary\nACguGC\naaUU\n>chr2\nGGGG\n", string(data))

	_, err = os.Stat(filepath.Join(dir, "genome_Contig_chr2.ut.fasta"))
	assert.NoError(t, err)
}

func TestUTConvNeedsSizeOrContig(t *testing.T) {
	dir, cfg, genome := setup(t)
	code, _, errOut := runCLI(t, "utconv", "--config", cfg, genome)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "-s")
	_, err := os.Stat(filepath.Join(dir, "genome.ut.fasta"))
	assert.True(t, os.IsNotExist(err))
}

func TestStampedWriterKeepsPartialLines(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sw := &stampedWriter{w: &buf, now: func() time.Time { return at }}
	_, err := sw.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	_, err = sw.Write([]byte("world\nnext"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z hello world\n", buf.String())
	_, err = sw.Write([]byte("\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(buf.String(), "Z next\n"))
}
