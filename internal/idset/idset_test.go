package idset

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fqfilter/internal/fqerr"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadBasic(t *testing.T) {
	s, err := Load(write(t, "ids.txt", "a\nb\nc"), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	for _, id := range []string{"a", "b", "c"} {
		assert.True(t, s.Contains(id), id)
	}
	assert.False(t, s.Contains("d"))
}

func TestReadLineRules(t *testing.T) {
	s, err := Read(strings.NewReader("a\r\nb \n\nA\na\n"), nil)
	require.NoError(t, err)

	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b "), "trailing spaces are part of the identifier")
	assert.False(t, s.Contains("b"))
	assert.True(t, s.Contains(""), "an empty line is the empty identifier")
	assert.True(t, s.Contains("A"))
	assert.False(t, s.Contains("a\r"))
	assert.Equal(t, 4, s.Len(), "duplicates collapse")
}

func TestReadEmpty(t *testing.T) {
	s, err := Read(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains(""))
}

func TestReadInvalidUTF8(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("ok\n\xff\xfe\n")), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fqerr.ErrIO)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	assert.ErrorIs(t, err, fqerr.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLogsEachID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Read(strings.NewReader("x\ny\n"), logger)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "msg=id"))
	assert.Contains(t, buf.String(), "value=y")
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.False(t, s.Contains("a"))
	assert.Zero(t, s.Len())
}
