package log

import (
	"errors"
	"fmt"

	"github.com/r-moraru/cluster-consensus/proto/entries"
)

var ErrIndexOutOfBounds = errors.New("log index out of bounds")

// Log is the replicated log of a single node. Indexes start at 1 and the log
// has no gaps.
type Log interface {
	GetLastIndex() uint64
	GetLength() uint64
	GetEntry(index uint64) (*entries.LogEntry, error)
	// GetEntries returns entries in [from, to].
	GetEntries(from, to uint64) ([]*entries.LogEntry, error)
	GetTermAtIndex(index uint64) (uint64, error)
	// InsertLogEntry stores entry at entry.Index, dropping every entry at or
	// after that index first.
	InsertLogEntry(entry *entries.LogEntry) error
	// AppendEntry stores entry at GetLastIndex()+1 and returns that index.
	AppendEntry(entry *entries.LogEntry) (uint64, error)
}

func GetTermAtIndexHelper(l Log, index uint64) (uint64, error) {
	if index == 0 {
		return 0, nil
	}
	return l.GetTermAtIndex(index)
}

func GetLastIndexAndTerm(l Log) (uint64, uint64, error) {
	lastIndex := l.GetLastIndex()
	lastTerm, err := GetTermAtIndexHelper(l, lastIndex)
	if err != nil {
		return 0, 0, err
	}
	return lastIndex, lastTerm, nil
}

// Validate checks that indexes are contiguous and terms never decrease.
func Validate(l Log) error {
	length := l.GetLength()
	if length == 0 {
		return nil
	}
	all, err := l.GetEntries(1, length)
	if err != nil {
		return err
	}
	var prevTerm uint64
	for i, entry := range all {
		if entry.Index != uint64(i+1) {
			return fmt.Errorf("entry at position %d has index %d", i+1, entry.Index)
		}
		if entry.Term < prevTerm {
			return fmt.Errorf("entry %d has term %d below previous term %d", entry.Index, entry.Term, prevTerm)
		}
		prevTerm = entry.Term
	}
	return nil
}
