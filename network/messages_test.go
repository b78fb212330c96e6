package network

import (
	"context"
	"errors"
	"testing"

	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	voteReq   *raft_service.RequestVoteRequest
	appendReq *raft_service.AppendEntriesRequest
	err       error
}

func (h *stubHandler) HandleRequestVote(_ context.Context, req *raft_service.RequestVoteRequest) (*raft_service.RequestVoteResponse, error) {
	h.voteReq = req
	if h.err != nil {
		return nil, h.err
	}
	return &raft_service.RequestVoteResponse{Term: req.Term, VoteGranted: true}, nil
}

func (h *stubHandler) HandleAppendEntries(_ context.Context, req *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error) {
	h.appendReq = req
	if h.err != nil {
		return nil, h.err
	}
	return &raft_service.AppendEntriesResponse{Term: req.Term, Success: true, MatchIndex: req.PrevLogIndex}, nil
}

func TestDispatchRoutesVoteRequest(t *testing.T) {
	h := &stubHandler{}
	req := &raft_service.RequestVoteRequest{Term: 3, CandidateId: "node2"}

	reply, err := Dispatch(context.Background(), h, VoteRequest{req})

	require.NoError(t, err)
	res, ok := reply.(VoteResponse)
	require.True(t, ok)
	assert.True(t, res.VoteGranted)
	assert.Same(t, req, h.voteReq)
	assert.Nil(t, h.appendReq)
}

func TestDispatchRoutesAppendRequest(t *testing.T) {
	h := &stubHandler{}
	req := &raft_service.AppendEntriesRequest{Term: 3, LeaderId: "node1", PrevLogIndex: 7}

	reply, err := Dispatch(context.Background(), h, AppendRequest{req})

	require.NoError(t, err)
	res, ok := reply.(AppendResponse)
	require.True(t, ok)
	assert.Equal(t, uint64(7), res.MatchIndex)
	assert.Nil(t, h.voteReq)
}

func TestDispatchRejectsResponses(t *testing.T) {
	_, err := Dispatch(context.Background(), &stubHandler{}, VoteResponse{&raft_service.RequestVoteResponse{}})
	assert.Error(t, err)
}

func TestDispatchPropagatesHandlerError(t *testing.T) {
	handlerErr := errors.New("halted")
	_, err := Dispatch(context.Background(), &stubHandler{err: handlerErr}, AppendRequest{&raft_service.AppendEntriesRequest{}})
	assert.ErrorIs(t, err, handlerErr)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, NotReceived, StatusOf(nil, errors.New("timeout"), 2))
	assert.Equal(t, NotReceived, StatusOf(nil, nil, 2))
	assert.Equal(t, TermIssue, StatusOf(&raft_service.AppendEntriesResponse{Term: 3}, nil, 2))
	assert.Equal(t, Success, StatusOf(&raft_service.AppendEntriesResponse{Term: 2, Success: true}, nil, 2))
	assert.Equal(t, LogInconsistency, StatusOf(&raft_service.AppendEntriesResponse{Term: 2}, nil, 2))
}
