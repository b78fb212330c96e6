package network

import (
	"context"
	"fmt"

	"github.com/r-moraru/cluster-consensus/proto/raft_service"
)

// Message is one of VoteRequest, VoteResponse, AppendRequest or
// AppendResponse.
type Message interface {
	isMessage()
}

type VoteRequest struct {
	*raft_service.RequestVoteRequest
}

type VoteResponse struct {
	*raft_service.RequestVoteResponse
}

type AppendRequest struct {
	*raft_service.AppendEntriesRequest
}

type AppendResponse struct {
	*raft_service.AppendEntriesResponse
}

func (VoteRequest) isMessage()    {}
func (VoteResponse) isMessage()   {}
func (AppendRequest) isMessage()  {}
func (AppendResponse) isMessage() {}

// Handler is the receiving side of the raft RPCs.
type Handler interface {
	HandleRequestVote(ctx context.Context, req *raft_service.RequestVoteRequest) (*raft_service.RequestVoteResponse, error)
	HandleAppendEntries(ctx context.Context, req *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error)
}

// Dispatch delivers a request message to h and wraps the reply.
func Dispatch(ctx context.Context, h Handler, msg Message) (Message, error) {
	switch m := msg.(type) {
	case VoteRequest:
		res, err := h.HandleRequestVote(ctx, m.RequestVoteRequest)
		if err != nil {
			return nil, err
		}
		return VoteResponse{res}, nil
	case AppendRequest:
		res, err := h.HandleAppendEntries(ctx, m.AppendEntriesRequest)
		if err != nil {
			return nil, err
		}
		return AppendResponse{res}, nil
	default:
		return nil, fmt.Errorf("cannot dispatch %T", msg)
	}
}
