package network

import (
	"context"
	"errors"

	"github.com/r-moraru/cluster-consensus/proto/raft_service"
)

var ErrUnknownPeer = errors.New("unknown peer")

type ResponseStatus int64

const (
	Success ResponseStatus = iota
	LogInconsistency
	NotReceived
	TermIssue
)

func (s ResponseStatus) String() string {
	switch s {
	case Success:
		return "success"
	case LogInconsistency:
		return "log_inconsistency"
	case NotReceived:
		return "not_received"
	case TermIssue:
		return "term_issue"
	}
	return "unknown"
}

// Network carries raft RPCs between cluster members. Calls are bounded by
// ctx; a transport failure is reported as an error and is always transient.
type Network interface {
	GetId() string
	GetPeerList() []string
	AddPeer(peerId, address string) error
	RemovePeer(peerId string)
	SendRequestVote(ctx context.Context, peerId string, req *raft_service.RequestVoteRequest) (*raft_service.RequestVoteResponse, error)
	SendAppendEntries(ctx context.Context, peerId string, req *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error)
}

// StatusOf classifies the outcome of an AppendEntries call made in term.
func StatusOf(res *raft_service.AppendEntriesResponse, err error, term uint64) ResponseStatus {
	if err != nil || res == nil {
		return NotReceived
	}
	if res.GetTerm() > term {
		return TermIssue
	}
	if res.GetSuccess() {
		return Success
	}
	return LogInconsistency
}
