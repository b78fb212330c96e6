package raft_node

import (
	"context"
	"fmt"
	"time"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/network"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (n *Node) Submit(ctx context.Context, clientID string, serializationID uint64, command *anypb.Any) (uint64, uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stoppedLocked() {
		return 0, 0, node.ErrNodeHalted
	}
	if n.state != node.Leader {
		return 0, 0, n.notLeaderErrorLocked()
	}
	if !n.hasRecentQuorumLocked() {
		return 0, 0, &node.QuorumUnavailableError{Reason: "leader has not heard from a quorum within the election timeout"}
	}

	index, err := n.appendLocked(&entries.LogEntry{
		Term:            n.currentTerm,
		Type:            entries.EntryType_NORMAL,
		ClientID:        clientID,
		SerializationID: serializationID,
		Command:         command,
	})
	if err != nil {
		return 0, 0, err
	}
	return index, n.currentTerm, nil
}

// appendLocked adds a leader entry to the local log and starts replicating it.
func (n *Node) appendLocked(entry *entries.LogEntry) (uint64, error) {
	if entry.Timestamp == nil {
		entry.Timestamp = timestamppb.Now()
	}
	index, err := n.log.AppendEntry(entry)
	if err != nil {
		err = fmt.Errorf("append entry: %w", err)
		n.haltLocked(err)
		return 0, err
	}
	n.logger.Debug("Appended entry.", "index", index, "term", entry.Term, "type", entry.Type)
	n.advanceCommitIndexLocked()
	n.replicateAllLocked()
	return index, nil
}

// hasRecentQuorumLocked reports whether a quorum of voters, the leader
// included, answered within the maximum election timeout.
func (n *Node) hasRecentQuorumLocked() bool {
	deadline := time.Now().Add(-2 * n.cfg.ElectionTimeout)
	acks := 0
	for _, peerId := range n.config.Voters() {
		if peerId == n.id {
			acks++
			continue
		}
		if p, ok := n.progress[peerId]; ok && p.lastAck.After(deadline) {
			acks++
		}
	}
	return acks >= n.config.Quorum()
}

func (n *Node) replicateAllLocked() {
	for peerId := range n.progress {
		n.replicateLocked(peerId)
	}
}

// replicateLocked sends the next batch of entries to peerId. Only one append
// per peer is in flight; a request made meanwhile is folded into the next one.
func (n *Node) replicateLocked(peerId string) {
	p, ok := n.progress[peerId]
	if !ok {
		return
	}
	if p.inflight {
		p.pending = true
		return
	}
	req, err := n.buildAppendEntriesLocked(p, n.cfg.MaxAppendEntries)
	if err != nil {
		n.haltLocked(err)
		return
	}
	p.inflight = true
	p.pending = false
	go n.sendAppendEntries(n.leaderCtx, peerId, req)
}

func (n *Node) buildAppendEntriesLocked(p *progress, maxEntries int) (*raft_service.AppendEntriesRequest, error) {
	prevLogIndex := p.next - 1
	prevLogTerm, err := log.GetTermAtIndexHelper(n.log, prevLogIndex)
	if err != nil {
		return nil, fmt.Errorf("term at %d: %w", prevLogIndex, err)
	}
	var batch []*entries.LogEntry
	lastIndex := n.log.GetLastIndex()
	if maxEntries > 0 && p.next <= lastIndex {
		to := min(lastIndex, p.next+uint64(maxEntries)-1)
		batch, err = n.log.GetEntries(p.next, to)
		if err != nil {
			return nil, fmt.Errorf("entries [%d, %d]: %w", p.next, to, err)
		}
	}
	return &raft_service.AppendEntriesRequest{
		Term:          n.currentTerm,
		LeaderId:      n.id,
		PrevLogIndex:  prevLogIndex,
		PrevLogTerm:   prevLogTerm,
		Entries:       batch,
		LeaderCommit:  n.commitIndex,
		LeaderAddress: n.cfg.Address,
	}, nil
}

func (n *Node) sendAppendEntries(ctx context.Context, peerId string, req *raft_service.AppendEntriesRequest) {
	rpcCtx, cancel := context.WithTimeout(ctx, n.cfg.RPCTimeout)
	res, err := n.network.SendAppendEntries(rpcCtx, peerId, req)
	cancel()

	n.mu.Lock()
	defer n.mu.Unlock()
	n.handleAppendResponseLocked(peerId, req, res, err)
}

func (n *Node) handleAppendResponseLocked(peerId string, req *raft_service.AppendEntriesRequest, res *raft_service.AppendEntriesResponse, err error) {
	status := network.StatusOf(res, err, req.Term)
	if status == network.TermIssue {
		if res.Term > n.currentTerm {
			n.logger.Info("Follower has a newer term.", "peer", peerId, "peer_term", res.Term)
			n.stepDownLocked(res.Term)
		}
		return
	}
	// Responses to an earlier leadership are stale.
	if n.state != node.Leader || n.currentTerm != req.Term {
		return
	}
	p, ok := n.progress[peerId]
	if !ok {
		return
	}
	p.inflight = false

	switch status {
	case network.NotReceived:
		n.logger.Debug("Append entries not delivered.", "peer", peerId, "error", err)
		return
	case network.Success:
		p.lastAck = time.Now()
		match := req.PrevLogIndex + uint64(len(req.Entries))
		if match > p.match {
			p.match = match
		}
		if p.next < p.match+1 {
			p.next = p.match + 1
		}
		n.advanceCommitIndexLocked()
	case network.LogInconsistency:
		p.lastAck = time.Now()
		n.logger.Debug("Backing off.", "peer", peerId, "error", &node.LogMismatchError{PrevLogIndex: req.PrevLogIndex, PrevLogTerm: req.PrevLogTerm}, "follower_hint", res.MatchIndex)
		next := min(req.PrevLogIndex, res.MatchIndex+1)
		if next < 1 {
			next = 1
		}
		if next <= p.match {
			next = p.match + 1
		}
		p.next = next
		p.pending = true
	}

	if n.state == node.Leader && (p.pending || p.next <= n.log.GetLastIndex()) {
		n.replicateLocked(peerId)
	}
}

// advanceCommitIndexLocked commits the highest index held by a quorum of the
// committed configuration, but only if that entry belongs to the current term.
func (n *Node) advanceCommitIndexLocked() {
	if n.state != node.Leader {
		return
	}
	voters := n.config.Voters()
	matchIndexes := make([]uint64, 0, len(voters))
	for _, peerId := range voters {
		if peerId == n.id {
			matchIndexes = append(matchIndexes, n.log.GetLastIndex())
		} else if p, ok := n.progress[peerId]; ok {
			matchIndexes = append(matchIndexes, p.match)
		} else {
			matchIndexes = append(matchIndexes, 0)
		}
	}
	slices.Sort(matchIndexes)
	majorityMatchIndex := matchIndexes[len(matchIndexes)-n.config.Quorum()]
	if majorityMatchIndex <= n.commitIndex {
		return
	}
	term, err := n.log.GetTermAtIndex(majorityMatchIndex)
	if err != nil {
		n.haltLocked(err)
		return
	}
	if term != n.currentTerm {
		return
	}
	n.setCommitIndexLocked(majorityMatchIndex)
}

func (n *Node) setCommitIndexLocked(commitIndex uint64) {
	if commitIndex <= n.commitIndex {
		return
	}
	previous := n.commitIndex
	n.commitIndex = commitIndex
	n.logger.Debug("Commit index advanced.", "commit_index", commitIndex)
	if err := n.applyCommittedConfigLocked(previous+1, commitIndex); err != nil {
		n.haltLocked(err)
		return
	}
	n.notifyCommitLocked()
	n.signalApply()
}

func (n *Node) notifyCommitLocked() {
	close(n.commitNotify)
	n.commitNotify = make(chan struct{})
}

// WaitCommitted blocks until the entry at index with term is committed. It
// fails with node.ErrEntryOverwritten once another entry took its place.
func (n *Node) WaitCommitted(ctx context.Context, index, term uint64) error {
	for {
		n.mu.Lock()
		if n.stoppedLocked() {
			n.mu.Unlock()
			return node.ErrNodeHalted
		}
		if index <= n.log.GetLastIndex() {
			entryTerm, err := n.log.GetTermAtIndex(index)
			if err != nil {
				n.mu.Unlock()
				return err
			}
			if entryTerm != term {
				n.mu.Unlock()
				return node.ErrEntryOverwritten
			}
			if index <= n.commitIndex {
				n.mu.Unlock()
				return nil
			}
		}
		notify := n.commitNotify
		n.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-n.ctx.Done():
			return node.ErrNodeHalted
		case <-notify:
		}
	}
}
