package memory_log

import (
	"sync"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/proto/entries"
)

type InMemoryLog struct {
	entries []*entries.LogEntry
	mutex   sync.Mutex
}

func New(initial ...*entries.LogEntry) *InMemoryLog {
	return &InMemoryLog{
		entries: append([]*entries.LogEntry{}, initial...),
	}
}

func (l *InMemoryLog) GetLastIndex() uint64 {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[len(l.entries)-1].Index
}

func (l *InMemoryLog) GetLength() uint64 {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return uint64(len(l.entries))
}

func (l *InMemoryLog) GetTermAtIndex(index uint64) (uint64, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if index == 0 || uint64(len(l.entries)) < index {
		return 0, log.ErrIndexOutOfBounds
	}
	return l.entries[index-1].Term, nil
}

func (l *InMemoryLog) GetEntry(index uint64) (*entries.LogEntry, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if index == 0 || uint64(len(l.entries)) < index {
		return nil, log.ErrIndexOutOfBounds
	}
	return l.entries[index-1], nil
}

func (l *InMemoryLog) GetEntries(from, to uint64) ([]*entries.LogEntry, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if from == 0 || from > to || uint64(len(l.entries)) < to {
		return nil, log.ErrIndexOutOfBounds
	}
	return append([]*entries.LogEntry{}, l.entries[from-1:to]...), nil
}

func (l *InMemoryLog) InsertLogEntry(entry *entries.LogEntry) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if entry.Index == 0 || uint64(len(l.entries)) < entry.Index-1 {
		return log.ErrIndexOutOfBounds
	}
	l.entries = l.entries[:entry.Index-1]
	l.entries = append(l.entries, entry)
	return nil
}

func (l *InMemoryLog) AppendEntry(entry *entries.LogEntry) (uint64, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	entry.Index = uint64(len(l.entries) + 1)
	l.entries = append(l.entries, entry)
	return entry.Index, nil
}
