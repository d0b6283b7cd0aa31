package codec

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fqfilter/internal/fqerr"
	"fqfilter/internal/testutil"
)

const sample = "@r1\nACGT\n+\nIIII\n"

func readAll(t *testing.T, path string) (string, error) {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	return string(b), err
}

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"reads.fq.gz":   "gzip",
		"READS.FQ.GZ":   "gzip",
		"reads.fq.bgz":  "gzip",
		"reads.fq.zst":  "zstd",
		"reads.fq.zstd": "zstd",
		"reads.fq.lz4":  "lz4",
		"reads.fq.sz":   "snappy",
		"reads.fq.bz2":  "bzip2",
	}
	for path, want := range cases {
		f, ok := Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, want, f.Name, path)
	}
	for _, path := range []string{"reads.fq", "reads.fastq", "reads.gz.txt", ".gz", "-", ""} {
		_, ok := Lookup(path)
		assert.False(t, ok, path)
	}
}

func TestSuffixesSorted(t *testing.T) {
	s := Suffixes()
	assert.IsIncreasing(t, s)
	assert.Contains(t, s, ".gz")
}

func TestOpenRejectsUncompressedBeforeOpening(t *testing.T) {
	// the file does not exist; the contract check must fire first
	_, err := Open(filepath.Join(t.TempDir(), "missing.fastq"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fqerr.ErrInputContract)
	assert.NotErrorIs(t, err, fqerr.ErrIO)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.fq.gz"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fqerr.ErrIO)
}

func TestRoundTripFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.fq.gz", "a.fq.bgz", "a.fq.zst", "a.fq.lz4", "a.fq.sz"} {
		t.Run(name, func(t *testing.T) {
			path := testutil.WriteCompressed(t, dir, name, sample)
			got, err := readAll(t, path)
			require.NoError(t, err)
			assert.Equal(t, sample, got)
		})
	}
}

func TestGzipMultistream(t *testing.T) {
	data := append(testutil.Gzip(t, []byte("@a\nA\n+\nI\n")), testutil.Gzip(t, []byte("@b\nC\n+\nI\n"))...)
	path := testutil.WriteFile(t, t.TempDir(), "multi.fq.bgz", data)

	got, err := readAll(t, path)
	require.NoError(t, err)
	assert.Equal(t, "@a\nA\n+\nI\n@b\nC\n+\nI\n", got)
}

func TestCorruptHeader(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bad.fq.gz", "bad.fq.zst", "bad.fq.lz4", "bad.fq.bz2", "bad.fq.sz"} {
		t.Run(name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, name, []byte(sample))
			_, err := readAll(t, path)
			require.Error(t, err)
			assert.ErrorIs(t, err, fqerr.ErrDecompression)
		})
	}
}

func TestEmptyGzipFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "empty.fq.gz", nil)
	_, err := readAll(t, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fqerr.ErrDecompression)
}

func TestTruncatedGzip(t *testing.T) {
	full := testutil.Gzip(t, []byte(sample+sample+sample))
	path := testutil.WriteFile(t, t.TempDir(), "cut.fq.gz", full[:len(full)-6])

	_, err := readAll(t, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fqerr.ErrDecompression)
	assert.NotErrorIs(t, err, fqerr.ErrIO)
}
