package file_log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendTerms(t *testing.T, l *FileLog, terms ...uint64) {
	t.Helper()
	for _, term := range terms {
		_, err := l.AppendEntry(&entries.LogEntry{Term: term, Type: entries.EntryType_NO_OP})
		require.NoError(t, err)
	}
}

func TestEntriesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1, 1, 2)
	require.NoError(t, l.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, uint64(3), reopened.GetLastIndex())
	term, err := reopened.GetTermAtIndex(3)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), term)
	assert.NoError(t, log.Validate(reopened))
}

func TestInsertLogEntryTruncatesConflictingSuffix(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1, 1, 1, 1)

	require.NoError(t, l.InsertLogEntry(&entries.LogEntry{Index: 3, Term: 2}))
	assert.Equal(t, uint64(3), l.GetLastIndex())
	require.NoError(t, l.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, uint64(3), reopened.GetLastIndex())
	term, _ := reopened.GetTermAtIndex(3)
	assert.Equal(t, uint64(2), term)
}

func TestInsertLogEntryRejectsGap(t *testing.T) {
	l, err := Open(t.TempDir())
	require.NoError(t, err)
	defer l.Close()

	err = l.InsertLogEntry(&entries.LogEntry{Index: 2, Term: 1})
	assert.ErrorIs(t, err, log.ErrIndexOutOfBounds)
}

func TestTornTailIsDropped(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1, 1)
	require.NoError(t, l.Close())

	path := filepath.Join(dir, logFilename)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b[:len(b)-2], 0o644))

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, uint64(1), reopened.GetLastIndex())

	appendTerms(t, reopened, 3)
	assert.Equal(t, uint64(2), reopened.GetLastIndex())
}

func TestChecksumMismatchIsCorruption(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1, 1)
	require.NoError(t, l.Close())

	path := filepath.Join(dir, logFilename)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	// second byte is inside the first record's payload
	b[1] ^= 0xff
	require.NoError(t, os.WriteFile(path, b, 0o644))

	_, err = Open(dir)
	assert.ErrorIs(t, err, storage.ErrCorrupted)
}

func TestDamagedLengthMidFileIsCorruption(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1, 1, 2)
	require.NoError(t, l.Close())

	path := filepath.Join(dir, logFilename)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	// The first length prefix now claims 32MiB, far past the end of the file.
	copy(b, []byte{0x80, 0x80, 0x80, 0x10})
	require.NoError(t, os.WriteFile(path, b, 0o644))

	_, err = Open(dir)
	assert.ErrorIs(t, err, storage.ErrCorrupted)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b, after, "a damaged log must not be rewritten")
}

func TestOverflowingLengthIsCorruption(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1, 1)
	require.NoError(t, l.Close())

	path := filepath.Join(dir, logFilename)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	overflow := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	require.NoError(t, os.WriteFile(path, append(overflow, b...), 0o644))

	_, err = Open(dir)
	assert.ErrorIs(t, err, storage.ErrCorrupted)
}

func TestTruncatedLengthPrefixIsTorn(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	require.NoError(t, err)
	appendTerms(t, l, 1)
	require.NoError(t, l.Close())

	path := filepath.Join(dir, logFilename)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(b, 0x80), 0o644))

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, uint64(1), reopened.GetLastIndex())
}
