package node

import (
	"context"
	"fmt"

	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/network"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"google.golang.org/protobuf/types/known/anypb"
)

type State uint64

const (
	Leader State = iota
	Follower
	Candidate
)

func (s State) String() string {
	switch s {
	case Leader:
		return "leader"
	case Follower:
		return "follower"
	case Candidate:
		return "candidate"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type ReplicationStatus uint64

const (
	NotLeader ReplicationStatus = iota
	NotTracked
	InProgress
	Replicated
	ApplyError
)

func (s ReplicationStatus) String() string {
	switch s {
	case NotLeader:
		return "not_leader"
	case NotTracked:
		return "not_tracked"
	case InProgress:
		return "in_progress"
	case Replicated:
		return "replicated"
	case ApplyError:
		return "apply_error"
	}
	return "unknown"
}

func (s ReplicationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ReplicationStatus) UnmarshalText(text []byte) error {
	for candidate := NotLeader; candidate <= ApplyError; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown replication status %q", text)
}

type ReplicationResponse struct {
	ReplicationStatus ReplicationStatus `json:"replication_status"`
	LeaderID          string            `json:"leader_id,omitempty"`
	LeaderAddress     string            `json:"leader_address,omitempty"`
	Index             uint64            `json:"index,omitempty"`
	Term              uint64            `json:"term,omitempty"`
	Error             string            `json:"error,omitempty"`
	Result            *anypb.Any        `json:"-"`
}

type LeadershipChange struct {
	Term     uint64 `json:"term"`
	LeaderID string `json:"leader_id"`
	IsLeader bool   `json:"is_leader"`
}

type Status struct {
	ID            string              `json:"id"`
	State         State               `json:"state"`
	Term          uint64              `json:"term"`
	LeaderID      string              `json:"leader_id"`
	LeaderAddress string              `json:"leader_address"`
	CommitIndex   uint64              `json:"commit_index"`
	LastApplied   uint64              `json:"last_applied"`
	LastLogIndex  uint64              `json:"last_log_index"`
	Members       []membership.Member `json:"members"`
	PendingChange uint64              `json:"pending_change_index,omitempty"`
}

type Node interface {
	network.Handler

	Run(ctx context.Context) error
	GetState() State
	GetCurrentLeaderID() string
	Status() Status

	// Submit appends command to the leader's log and returns its position.
	Submit(ctx context.Context, clientID string, serializationID uint64, command *anypb.Any) (index uint64, term uint64, err error)
	ProposeConfigChange(ctx context.Context, change membership.Change) (index uint64, term uint64, err error)
	WaitCommitted(ctx context.Context, index, term uint64) error
	WaitApplied(ctx context.Context, index uint64) error
	// ReadIndex confirms leadership with a quorum and waits until the local
	// state machine has caught up with the commit index observed at the call.
	ReadIndex(ctx context.Context) (uint64, error)
	Subscribe(onLeadershipChange func(LeadershipChange), onCommit func(*entries.LogEntry))
}
