package raft_server

import (
	"context"
	"errors"
	"fmt"

	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/node"
	"google.golang.org/protobuf/types/known/anypb"
)

type ReadMode string

const (
	// StaleReads serve from the local state machine. Any node answers, and
	// the value may lag behind the leader.
	StaleReads ReadMode = "stale"
	// LinearizableReads go through the leader's read index.
	LinearizableReads ReadMode = "linearizable"
)

func ParseReadMode(s string) (ReadMode, error) {
	switch ReadMode(s) {
	case StaleReads, LinearizableReads:
		return ReadMode(s), nil
	}
	return "", fmt.Errorf("unknown read mode %q", s)
}

type QueryResponse struct {
	Key       string   `json:"key"`
	Value     string   `json:"value,omitempty"`
	Found     bool     `json:"found"`
	ReadMode  ReadMode `json:"read_mode"`
	ReadIndex uint64   `json:"read_index,omitempty"`
}

type MembershipResponse struct {
	Index   uint64              `json:"index"`
	Term    uint64              `json:"term"`
	Members []membership.Member `json:"members"`
}

func notLeaderResponse(err error) (node.ReplicationResponse, bool) {
	var notLeader *node.NotLeaderError
	if !errors.As(err, &notLeader) {
		return node.ReplicationResponse{}, false
	}
	return node.ReplicationResponse{
		ReplicationStatus: node.NotLeader,
		// best effort, might not be leader
		LeaderID:      notLeader.LeaderID,
		LeaderAddress: notLeader.LeaderAddress,
	}, true
}

// HandleReplicationRequest submits command and waits until it is applied or
// ctx ends. Commands without a client id are not tracked by the state
// machine, so only their commit is reported.
func (s *RaftServer) HandleReplicationRequest(ctx context.Context, clientID string, serializationID uint64, command *anypb.Any) (node.ReplicationResponse, error) {
	index, term, err := s.Node.Submit(ctx, clientID, serializationID, command)
	if err != nil {
		if res, ok := notLeaderResponse(err); ok {
			return res, nil
		}
		return node.ReplicationResponse{}, err
	}
	res := node.ReplicationResponse{
		ReplicationStatus: node.InProgress,
		LeaderID:          s.Node.GetCurrentLeaderID(),
		Index:             index,
		Term:              term,
	}

	if err := s.Node.WaitCommitted(ctx, index, term); err != nil {
		switch {
		case errors.Is(err, node.ErrEntryOverwritten):
			res.ReplicationStatus = node.NotTracked
			return res, nil
		case ctx.Err() != nil:
			return res, nil
		}
		return res, err
	}

	if clientID == "" {
		if err := s.Node.WaitApplied(ctx, index); err != nil {
			if ctx.Err() != nil {
				return res, nil
			}
			return res, err
		}
		res.ReplicationStatus = node.Replicated
		return res, nil
	}

	select {
	case <-ctx.Done():
		return res, nil
	case result := <-s.StateMachine.WaitForResult(ctx, clientID, serializationID):
		if ctx.Err() != nil {
			return res, nil
		}
		if result.Error != nil {
			s.logger().Warn("State machine rejected command.", "client_id", clientID, "serialization_id", serializationID, "error", result.Error)
			res.ReplicationStatus = node.ApplyError
			res.Error = result.Error.Error()
			return res, nil
		}
		res.Result = result.Result
		res.ReplicationStatus = node.Replicated
		return res, nil
	}
}

func (s *RaftServer) HandleQueryRequest(ctx context.Context, key string, mode ReadMode) (QueryResponse, error) {
	if mode == "" {
		mode = s.ReadMode
	}
	res := QueryResponse{Key: key, ReadMode: mode}
	if mode == LinearizableReads {
		readIndex, err := s.Node.ReadIndex(ctx)
		if err != nil {
			return res, err
		}
		res.ReadIndex = readIndex
	}
	res.Value, res.Found = s.StateMachine.Get(key)
	return res, nil
}

func (s *RaftServer) HandleAddNode(ctx context.Context, nodeID, address string) (MembershipResponse, error) {
	return s.changeMembership(ctx, membership.Change{Op: membership.AddNode, NodeID: nodeID, Address: address})
}

func (s *RaftServer) HandleRemoveNode(ctx context.Context, nodeID string) (MembershipResponse, error) {
	return s.changeMembership(ctx, membership.Change{Op: membership.RemoveNode, NodeID: nodeID})
}

func (s *RaftServer) changeMembership(ctx context.Context, change membership.Change) (MembershipResponse, error) {
	index, term, err := s.Node.ProposeConfigChange(ctx, change)
	if err != nil {
		return MembershipResponse{}, err
	}
	if err := s.Node.WaitCommitted(ctx, index, term); err != nil {
		return MembershipResponse{Index: index, Term: term}, err
	}
	s.logger().Info("Membership changed.", "change", change.String(), "index", index)
	return MembershipResponse{Index: index, Term: term, Members: s.Node.Status().Members}, nil
}

func (s *RaftServer) HandleStatusRequest() node.Status {
	return s.Node.Status()
}
