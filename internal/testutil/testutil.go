// Package testutil writes compressed fixtures for tests.
//
// It is imported only from _test.go files.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
)

// Gzip returns data as a single gzip member.
func Gzip(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// Zstd returns data as a zstd frame.
func Zstd(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return buf.Bytes()
}

// LZ4 returns data as an LZ4 frame.
func LZ4(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	return buf.Bytes()
}

// Snappy returns data in the Snappy framing format.
func Snappy(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := s2.NewWriter(&buf, s2.WriterSnappyCompat())
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("snappy write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("snappy close: %v", err)
	}
	return buf.Bytes()
}

// Compress encodes data according to the suffix of name.
func Compress(t testing.TB, name string, data []byte) []byte {
	t.Helper()
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz", ".bgz":
		return Gzip(t, data)
	case ".zst", ".zstd":
		return Zstd(t, data)
	case ".lz4":
		return LZ4(t, data)
	case ".sz":
		return Snappy(t, data)
	default:
		t.Fatalf("testutil: no encoder for %q", ext)
		return nil
	}
}

// WriteFile writes raw bytes to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteCompressed writes text compressed by the suffix of name.
func WriteCompressed(t testing.TB, dir, name, text string) string {
	t.Helper()
	return WriteFile(t, dir, name, Compress(t, name, []byte(text)))
}
