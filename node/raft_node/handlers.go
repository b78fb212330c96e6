package raft_node

import (
	"context"
	"fmt"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/r-moraru/cluster-consensus/storage"
)

func (n *Node) buildRequestVoteResponseLocked(voteGranted bool) *raft_service.RequestVoteResponse {
	return &raft_service.RequestVoteResponse{Term: n.currentTerm, VoteGranted: voteGranted}
}

func (n *Node) buildAppendEntriesResponseLocked(success bool, matchIndex uint64) *raft_service.AppendEntriesResponse {
	return &raft_service.AppendEntriesResponse{Term: n.currentTerm, Success: success, MatchIndex: matchIndex}
}

func (n *Node) candidateLogUpToDateLocked(lastLogIndex, lastLogTerm uint64) (bool, error) {
	lastIndex, lastTerm, err := log.GetLastIndexAndTerm(n.log)
	if err != nil {
		return false, err
	}
	if lastLogTerm != lastTerm {
		return lastLogTerm > lastTerm, nil
	}
	return lastLogIndex >= lastIndex, nil
}

func (n *Node) HandleRequestVote(ctx context.Context, req *raft_service.RequestVoteRequest) (*raft_service.RequestVoteResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stoppedLocked() {
		return nil, node.ErrNodeHalted
	}

	if req.GetTerm() < n.currentTerm {
		n.logger.Debug("Rejecting vote request.", "candidate", req.GetCandidateId(), "error", &node.StaleTermError{Term: req.GetTerm(), CurrentTerm: n.currentTerm})
		return n.buildRequestVoteResponseLocked(false), nil
	}
	if req.GetTerm() > n.currentTerm {
		n.stepDownLocked(req.GetTerm())
		if n.stoppedLocked() {
			return nil, node.ErrNodeHalted
		}
	}

	if n.votedFor != "" && n.votedFor != req.GetCandidateId() {
		return n.buildRequestVoteResponseLocked(false), nil
	}
	upToDate, err := n.candidateLogUpToDateLocked(req.GetLastLogIndex(), req.GetLastLogTerm())
	if err != nil {
		n.haltLocked(err)
		return nil, err
	}
	if !upToDate {
		return n.buildRequestVoteResponseLocked(false), nil
	}

	n.votedFor = req.GetCandidateId()
	if err := n.persistLocked(); err != nil {
		return nil, err
	}
	n.resetElectionTimerLocked()
	n.logger.Info("Granted vote.", "candidate", req.GetCandidateId(), "term", n.currentTerm)
	return n.buildRequestVoteResponseLocked(true), nil
}

func (n *Node) HandleAppendEntries(ctx context.Context, req *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stoppedLocked() {
		return nil, node.ErrNodeHalted
	}

	if req.GetTerm() < n.currentTerm {
		n.logger.Debug("Rejecting append entries.", "leader", req.GetLeaderId(), "error", &node.StaleTermError{Term: req.GetTerm(), CurrentTerm: n.currentTerm})
		return n.buildAppendEntriesResponseLocked(false, 0), nil
	}
	if req.GetTerm() > n.currentTerm || n.state != node.Follower {
		n.stepDownLocked(req.GetTerm())
		if n.stoppedLocked() {
			return nil, node.ErrNodeHalted
		}
	}
	if n.leaderID != req.GetLeaderId() {
		n.leaderID = req.GetLeaderId()
		n.leaderAddress = req.GetLeaderAddress()
		n.publishLeadershipLocked()
	}
	n.resetElectionTimerLocked()

	lastIndex := n.log.GetLastIndex()
	if req.GetPrevLogIndex() > lastIndex {
		return n.buildAppendEntriesResponseLocked(false, lastIndex), nil
	}
	prevTerm, err := log.GetTermAtIndexHelper(n.log, req.GetPrevLogIndex())
	if err != nil {
		n.haltLocked(err)
		return nil, err
	}
	if prevTerm != req.GetPrevLogTerm() {
		n.logger.Debug("Rejecting append entries.", "leader", req.GetLeaderId(), "error", &node.LogMismatchError{PrevLogIndex: req.GetPrevLogIndex(), PrevLogTerm: req.GetPrevLogTerm()})
		hint := req.GetPrevLogIndex()
		if hint > 0 {
			hint--
		}
		return n.buildAppendEntriesResponseLocked(false, hint), nil
	}

	if err := n.storeEntriesLocked(req); err != nil {
		return nil, err
	}

	matchIndex := req.GetPrevLogIndex() + uint64(len(req.GetEntries()))
	if req.GetLeaderCommit() > n.commitIndex {
		n.setCommitIndexLocked(min(req.GetLeaderCommit(), matchIndex))
	}
	return n.buildAppendEntriesResponseLocked(true, matchIndex), nil
}

// storeEntriesLocked skips entries the log already holds, drops the first
// conflicting suffix and appends the rest. Every write is durable when it
// returns.
func (n *Node) storeEntriesLocked(req *raft_service.AppendEntriesRequest) error {
	lastIndex := n.log.GetLastIndex()
	changed := false
	for i, entry := range req.GetEntries() {
		if entry.GetIndex() != req.GetPrevLogIndex()+uint64(i)+1 {
			return fmt.Errorf("entry %d of append from %s has index %d", i, req.GetLeaderId(), entry.GetIndex())
		}
		if entry.GetIndex() <= lastIndex {
			term, err := n.log.GetTermAtIndex(entry.GetIndex())
			if err != nil {
				n.haltLocked(err)
				return err
			}
			if term == entry.GetTerm() {
				continue
			}
			if entry.GetIndex() <= n.commitIndex {
				err := fmt.Errorf("%w: leader %s conflicts with committed entry %d", storage.ErrCorrupted, req.GetLeaderId(), entry.GetIndex())
				n.haltLocked(err)
				return err
			}
			n.logger.Info("Dropping conflicting log suffix.", "from_index", entry.GetIndex(), "last_index", lastIndex)
		}
		if err := n.log.InsertLogEntry(entry); err != nil {
			err = fmt.Errorf("store entry %d: %w", entry.GetIndex(), err)
			n.haltLocked(err)
			return err
		}
		lastIndex = entry.GetIndex()
		changed = true
	}
	if !changed {
		return nil
	}
	// Waiters on overwritten entries must re-check.
	n.notifyCommitLocked()
	return n.refreshPendingConfigLocked()
}
