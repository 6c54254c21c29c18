package pidfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/infrastructure/pidfile"
)

func TestAcquire_WritesOwnPID(t *testing.T) {
	// Arrange
	pf := pidfile.New(filepath.Join(t.TempDir(), "run", "spacerush.pid"))

	// Act
	err := pf.Acquire()

	// Assert
	require.NoError(t, err)
	pid, ok := pf.Owner()
	assert.True(t, ok)
	assert.Equal(t, os.Getpid(), pid)

	require.NoError(t, pf.Release())
	_, ok = pf.Owner()
	assert.False(t, ok)
}

func TestAcquire_ReplacesGarbage(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "spacerush.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0o644))
	pf := pidfile.New(path)

	// Act
	err := pf.Acquire()

	// Assert
	require.NoError(t, err)
	pid, _ := pf.Owner()
	assert.Equal(t, os.Getpid(), pid)
}

func TestAcquire_RefusesLiveOwner(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "spacerush.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getppid())+"\n"), 0o644))
	pf := pidfile.New(path)

	// Act
	err := pf.Acquire()

	// Assert
	assert.ErrorIs(t, err, pidfile.ErrLocked)
}

func TestRelease_MissingFileIsFine(t *testing.T) {
	pf := pidfile.New(filepath.Join(t.TempDir(), "none.pid"))
	assert.NoError(t, pf.Release())
}
