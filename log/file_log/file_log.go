// Package file_log is a durable log.Log. Every record is a length-prefixed
// protobuf entry followed by its CRC32; each write is fsynced before it
// returns.
package file_log

import (
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/storage"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

const (
	logFilename = "raft_log"
	// maxRecordSize bounds a single entry. A length prefix above it can only
	// come from damage, never from an unfinished append.
	maxRecordSize = 4 << 20
)

type FileLog struct {
	mu       sync.Mutex
	dir      string
	filename string
	file     *os.File
	entries  []*entries.LogEntry
}

// Open loads every record in dataDir. A torn record at the end of the file is
// dropped; any other damage is reported as storage.ErrCorrupted. A record is
// torn only when it runs past the end of the file by less than maxRecordSize.
func Open(dataDir string) (*FileLog, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir data dir: %w", err)
	}
	l := &FileLog{
		dir:      dataDir,
		filename: filepath.Join(dataDir, logFilename),
	}

	b, err := os.ReadFile(l.filename)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read log: %w", err)
	}
	loaded, validLen, err := decodeRecords(b)
	if err != nil {
		return nil, err
	}
	l.entries = loaded

	if validLen < len(b) {
		slog.Warn("Dropping torn record at end of log.", "file", l.filename, "bytes", len(b)-validLen)
		if err := storage.WriteFileAtomic(l.dir, l.filename, b[:validLen], "log"); err != nil {
			return nil, err
		}
	}

	l.file, err = os.OpenFile(l.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return l, nil
}

func appendRecord(b []byte, entry *entries.LogEntry) ([]byte, error) {
	payload, err := proto.Marshal(entry)
	if err != nil {
		return nil, err
	}
	if len(payload) > maxRecordSize {
		return nil, fmt.Errorf("log entry %d is %d bytes, more than %d", entry.Index, len(payload), maxRecordSize)
	}
	b = protowire.AppendBytes(b, payload)
	return protowire.AppendFixed32(b, crc32.ChecksumIEEE(payload)), nil
}

func decodeRecords(b []byte) ([]*entries.LogEntry, int, error) {
	var decoded []*entries.LogEntry
	offset := 0
	for offset < len(b) {
		record := len(decoded) + 1
		length, n := protowire.ConsumeVarint(b[offset:])
		if n < 0 {
			if protowire.ParseError(n) == io.ErrUnexpectedEOF {
				// The length prefix itself was cut short by the end of the file.
				return decoded, offset, nil
			}
			return nil, 0, fmt.Errorf("%w: log record %d has a malformed length", storage.ErrCorrupted, record)
		}
		if length > maxRecordSize {
			return nil, 0, fmt.Errorf("%w: log record %d claims %d bytes", storage.ErrCorrupted, record, length)
		}
		end := offset + n + int(length) + 4
		if end > len(b) {
			// The append never finished.
			return decoded, offset, nil
		}
		payload := b[offset+n : offset+n+int(length)]
		sum, _ := protowire.ConsumeFixed32(b[offset+n+int(length):])
		if crc32.ChecksumIEEE(payload) != sum {
			return nil, 0, fmt.Errorf("%w: log record %d checksum mismatch", storage.ErrCorrupted, record)
		}
		entry := new(entries.LogEntry)
		if err := proto.Unmarshal(payload, entry); err != nil {
			return nil, 0, fmt.Errorf("%w: log record %d: %v", storage.ErrCorrupted, record, err)
		}
		if entry.Index != uint64(record) {
			return nil, 0, fmt.Errorf("%w: log record %d has index %d", storage.ErrCorrupted, record, entry.Index)
		}
		decoded = append(decoded, entry)
		offset = end
	}
	return decoded, offset, nil
}

func (l *FileLog) GetLastIndex() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.entries))
}

func (l *FileLog) GetLength() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.entries))
}

func (l *FileLog) GetEntry(index uint64) (*entries.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index == 0 || uint64(len(l.entries)) < index {
		return nil, log.ErrIndexOutOfBounds
	}
	return l.entries[index-1], nil
}

func (l *FileLog) GetEntries(from, to uint64) ([]*entries.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if from == 0 || from > to || uint64(len(l.entries)) < to {
		return nil, log.ErrIndexOutOfBounds
	}
	return append([]*entries.LogEntry{}, l.entries[from-1:to]...), nil
}

func (l *FileLog) GetTermAtIndex(index uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index == 0 || uint64(len(l.entries)) < index {
		return 0, log.ErrIndexOutOfBounds
	}
	return l.entries[index-1].Term, nil
}

func (l *FileLog) InsertLogEntry(entry *entries.LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if entry.Index == 0 || uint64(len(l.entries)) < entry.Index-1 {
		return log.ErrIndexOutOfBounds
	}
	if entry.Index <= uint64(len(l.entries)) {
		if err := l.truncateLocked(entry.Index - 1); err != nil {
			return err
		}
	}
	return l.appendLocked(entry)
}

func (l *FileLog) AppendEntry(entry *entries.LogEntry) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.Index = uint64(len(l.entries) + 1)
	if err := l.appendLocked(entry); err != nil {
		return 0, err
	}
	return entry.Index, nil
}

func (l *FileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *FileLog) appendLocked(entry *entries.LogEntry) error {
	record, err := appendRecord(nil, entry)
	if err != nil {
		return err
	}
	if _, err := l.file.Write(record); err != nil {
		return fmt.Errorf("write log record %d: %w", entry.Index, err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("fsync log record %d: %w", entry.Index, err)
	}
	l.entries = append(l.entries, entry)
	return nil
}

// truncateLocked keeps the first keep entries and rewrites the file.
func (l *FileLog) truncateLocked(keep uint64) error {
	var b []byte
	var err error
	for _, entry := range l.entries[:keep] {
		b, err = appendRecord(b, entry)
		if err != nil {
			return err
		}
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	if err := storage.WriteFileAtomic(l.dir, l.filename, b, "log"); err != nil {
		return err
	}
	l.file, err = os.OpenFile(l.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("reopen log: %w", err)
	}
	l.entries = l.entries[:keep]
	return nil
}
