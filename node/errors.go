package node

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeHalted is returned once a node stopped, either on shutdown or
	// after it found its persisted state unusable.
	ErrNodeHalted = errors.New("node halted")
	// ErrEntryOverwritten means the entry a caller waits on was replaced by
	// a later leader before it committed.
	ErrEntryOverwritten = errors.New("log entry overwritten before commit")
)

type StaleTermError struct {
	Term        uint64
	CurrentTerm uint64
}

func (e *StaleTermError) Error() string {
	return fmt.Sprintf("stale term %d, current term is %d", e.Term, e.CurrentTerm)
}

type LogMismatchError struct {
	PrevLogIndex uint64
	PrevLogTerm  uint64
}

func (e *LogMismatchError) Error() string {
	return fmt.Sprintf("log does not match at index %d term %d", e.PrevLogIndex, e.PrevLogTerm)
}

// NotLeaderError carries the best known leader, which may be empty.
type NotLeaderError struct {
	LeaderID      string
	LeaderAddress string
}

func (e *NotLeaderError) Error() string {
	if e.LeaderID == "" {
		return "not leader, leader unknown"
	}
	return fmt.Sprintf("not leader, try %s (%s)", e.LeaderID, e.LeaderAddress)
}

type QuorumUnavailableError struct {
	Reason string
}

func (e *QuorumUnavailableError) Error() string {
	return "quorum unavailable: " + e.Reason
}

func (e *QuorumUnavailableError) Retryable() bool {
	return true
}

type ConfigurationChangeInProgressError struct {
	PendingIndex uint64
}

func (e *ConfigurationChangeInProgressError) Error() string {
	return fmt.Sprintf("configuration change at index %d is still pending", e.PendingIndex)
}

// IsRetryable reports whether err is a transient condition a caller may retry.
func IsRetryable(err error) bool {
	var retryable interface{ Retryable() bool }
	return errors.As(err, &retryable) && retryable.Retryable()
}
