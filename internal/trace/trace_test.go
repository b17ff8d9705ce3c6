package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iradirad2/cachesim/internal/cache"
)

func writeTrace(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestNextReadsWellFormedLines(t *testing.T) {
	path := writeTrace(t, "r 0x0\nw 0X10\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	op, addr, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cache.OpRead, op)
	assert.EqualValues(t, 0x0, addr)

	op, addr, ok, err = r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cache.OpWrite, op)
	assert.EqualValues(t, 0x10, addr)

	_, _, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNextRejectsBlankLine(t *testing.T) {
	path := writeTrace(t, "r 0x0\n\nw 0x4\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, _, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, _, ok, err = r.Next()
	require.Error(t, err)
	assert.False(t, ok)
}

func TestNextRejectsUnknownOperation(t *testing.T) {
	path := writeTrace(t, "x 0x0\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, _, ok, err := r.Next()
	require.Error(t, err)
	assert.False(t, ok)
}

func TestNextRejectsMissingHexPrefix(t *testing.T) {
	path := writeTrace(t, "r 10\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, _, ok, err := r.Next()
	require.Error(t, err)
	assert.False(t, ok)
}

func TestNextRejectsMalformedAddress(t *testing.T) {
	path := writeTrace(t, "r 0xZZ\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, _, ok, err := r.Next()
	require.Error(t, err)
	assert.False(t, ok)
}

func TestNextReportsLineNumberInError(t *testing.T) {
	path := writeTrace(t, "r 0x0\nr 0x4\nbogus\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, _, _, _ = r.Next()
	_, _, _, _ = r.Next()
	_, _, ok, err := r.Next()
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "line 3")
}

func TestOpenMissingFileFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
}
