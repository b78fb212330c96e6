package raft_node

import (
	"context"
	"testing"

	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/r-moraru/cluster-consensus/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite

	node *testNode
}

func (s *HandlersTestSuite) SetupTest() {
	s.node = newTestNode(s.T(), "node1", []string{"node1", "node2", "node3"}, entry(1, 1), entry(2, 2))
	s.node.mu.Lock()
	s.node.currentTerm = 2
	s.node.mu.Unlock()
}

func (s *HandlersTestSuite) requestVote(term uint64, candidate string, lastIndex, lastTerm uint64) *raft_service.RequestVoteResponse {
	res, err := s.node.HandleRequestVote(context.Background(), &raft_service.RequestVoteRequest{
		Term:         term,
		CandidateId:  candidate,
		LastLogIndex: lastIndex,
		LastLogTerm:  lastTerm,
	})
	require.NoError(s.T(), err)
	return res
}

func (s *HandlersTestSuite) appendEntries(req *raft_service.AppendEntriesRequest) *raft_service.AppendEntriesResponse {
	res, err := s.node.HandleAppendEntries(context.Background(), req)
	require.NoError(s.T(), err)
	return res
}

func (s *HandlersTestSuite) TestGrantsVoteToUpToDateCandidate() {
	t := s.T()

	res := s.requestVote(3, "node2", 2, 2)

	assert.True(t, res.VoteGranted)
	assert.Equal(t, uint64(3), res.Term)
	hardState, err := s.node.stable.Load()
	require.NoError(t, err)
	assert.Equal(t, storage.HardState{CurrentTerm: 3, VotedFor: "node2"}, hardState)
}

func (s *HandlersTestSuite) TestGrantsOneVotePerTerm() {
	t := s.T()

	assert.True(t, s.requestVote(3, "node2", 2, 2).VoteGranted)
	assert.False(t, s.requestVote(3, "node3", 5, 2).VoteGranted)
	// A retried request from the same candidate is granted again.
	assert.True(t, s.requestVote(3, "node2", 2, 2).VoteGranted)
}

func (s *HandlersTestSuite) TestRejectsStaleTermVote() {
	t := s.T()

	res := s.requestVote(1, "node2", 10, 1)

	assert.False(t, res.VoteGranted)
	assert.Equal(t, uint64(2), res.Term)
}

func (s *HandlersTestSuite) TestRejectsCandidateWithOlderLog() {
	t := s.T()

	assert.False(t, s.requestVote(3, "node2", 5, 1).VoteGranted)
	assert.False(t, s.requestVote(3, "node3", 1, 2).VoteGranted)
	// The term is adopted even though the vote was refused.
	assert.Equal(t, uint64(3), s.node.GetCurrentTerm())
	assert.Equal(t, "", s.node.GetVotedFor())
}

func (s *HandlersTestSuite) TestLeaderStepsDownOnHigherTermVote() {
	t := s.T()
	s.node.makeLeader(2)
	require.Equal(t, node.Leader, s.node.GetState())

	res := s.requestVote(4, "node2", 10, 3)

	assert.True(t, res.VoteGranted)
	assert.Equal(t, node.Follower, s.node.GetState())
	assert.Equal(t, uint64(4), s.node.GetCurrentTerm())
}

func (s *HandlersTestSuite) TestRejectsStaleTermAppend() {
	t := s.T()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{Term: 1, LeaderId: "node2"})

	assert.False(t, res.Success)
	assert.Equal(t, uint64(2), res.Term)
	assert.Equal(t, "", s.node.GetCurrentLeaderID())
}

func (s *HandlersTestSuite) TestRejectsMissingPrevEntryWithHint() {
	t := s.T()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{Term: 2, LeaderId: "node2", PrevLogIndex: 7, PrevLogTerm: 2})

	assert.False(t, res.Success)
	assert.Equal(t, uint64(2), res.MatchIndex)
	assert.Equal(t, "node2", s.node.GetCurrentLeaderID())
}

func (s *HandlersTestSuite) TestRejectsPrevTermMismatch() {
	t := s.T()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{Term: 3, LeaderId: "node2", PrevLogIndex: 2, PrevLogTerm: 3})

	assert.False(t, res.Success)
	assert.Equal(t, uint64(1), res.MatchIndex)
	assert.Equal(t, uint64(3), res.Term)
}

func (s *HandlersTestSuite) TestAppendsAndAdvancesCommitIndex() {
	t := s.T()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{
		Term:          2,
		LeaderId:      "node2",
		LeaderAddress: "node2:5000",
		PrevLogIndex:  2,
		PrevLogTerm:   2,
		Entries:       []*entries.LogEntry{entry(3, 2), entry(4, 2)},
		LeaderCommit:  10,
	})

	assert.True(t, res.Success)
	assert.Equal(t, uint64(4), res.MatchIndex)
	assert.Equal(t, uint64(4), s.node.log.GetLastIndex())
	// Commit never runs past what this request proved to match.
	assert.Equal(t, uint64(4), s.node.GetCommitIndex())
	status := s.node.Status()
	assert.Equal(t, "node2", status.LeaderID)
	assert.Equal(t, "node2:5000", status.LeaderAddress)
}

func (s *HandlersTestSuite) TestHeartbeatCommitsKnownPrefixOnly() {
	t := s.T()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{Term: 2, LeaderId: "node2", PrevLogIndex: 1, PrevLogTerm: 1, LeaderCommit: 2})

	assert.True(t, res.Success)
	assert.Equal(t, uint64(1), s.node.GetCommitIndex())
	assert.Equal(t, uint64(2), s.node.log.GetLastIndex())
}

func (s *HandlersTestSuite) TestDuplicateAppendIsIdempotent() {
	t := s.T()
	req := &raft_service.AppendEntriesRequest{
		Term:         2,
		LeaderId:     "node2",
		PrevLogIndex: 1,
		PrevLogTerm:  1,
		Entries:      []*entries.LogEntry{entry(2, 2), entry(3, 2)},
	}

	assert.True(t, s.appendEntries(req).Success)
	assert.True(t, s.appendEntries(req).Success)

	// An older, shorter request must not cut the log.
	res := s.appendEntries(&raft_service.AppendEntriesRequest{
		Term:         2,
		LeaderId:     "node2",
		PrevLogIndex: 1,
		PrevLogTerm:  1,
		Entries:      []*entries.LogEntry{entry(2, 2)},
	})
	assert.True(t, res.Success)
	assert.Equal(t, uint64(3), s.node.log.GetLastIndex())
}

func (s *HandlersTestSuite) TestReplacesConflictingSuffix() {
	t := s.T()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{
		Term:         3,
		LeaderId:     "node3",
		PrevLogIndex: 1,
		PrevLogTerm:  1,
		Entries:      []*entries.LogEntry{entry(2, 3)},
	})

	assert.True(t, res.Success)
	term, err := s.node.log.GetTermAtIndex(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), term)
}

func (s *HandlersTestSuite) TestConflictWithCommittedEntryHalts() {
	t := s.T()
	s.node.mu.Lock()
	s.node.commitIndex = 2
	s.node.mu.Unlock()

	_, err := s.node.HandleAppendEntries(context.Background(), &raft_service.AppendEntriesRequest{
		Term:         3,
		LeaderId:     "node3",
		PrevLogIndex: 1,
		PrevLogTerm:  1,
		Entries:      []*entries.LogEntry{entry(2, 3)},
	})

	assert.ErrorIs(t, err, storage.ErrCorrupted)
	_, err = s.node.HandleAppendEntries(context.Background(), &raft_service.AppendEntriesRequest{Term: 3, LeaderId: "node3"})
	assert.ErrorIs(t, err, node.ErrNodeHalted)
}

func (s *HandlersTestSuite) TestCandidateStepsDownOnSameTermAppend() {
	t := s.T()
	s.node.mu.Lock()
	s.node.state = node.Candidate
	s.node.votedFor = "node1"
	s.node.mu.Unlock()

	res := s.appendEntries(&raft_service.AppendEntriesRequest{Term: 2, LeaderId: "node3", PrevLogIndex: 2, PrevLogTerm: 2})

	assert.True(t, res.Success)
	assert.Equal(t, node.Follower, s.node.GetState())
	assert.Equal(t, "node1", s.node.GetVotedFor())
}

func (s *HandlersTestSuite) TestLeaderChangeIsPublished() {
	t := s.T()
	changes := make(chan node.LeadershipChange, 4)
	s.node.Subscribe(func(change node.LeadershipChange) { changes <- change }, nil)
	go s.node.runNotifier(s.node.ctx)

	s.appendEntries(&raft_service.AppendEntriesRequest{Term: 2, LeaderId: "node3", PrevLogIndex: 2, PrevLogTerm: 2})

	change := <-changes
	assert.Equal(t, node.LeadershipChange{Term: 2, LeaderID: "node3", IsLeader: false}, change)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
