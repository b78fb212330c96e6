package raft_node

import (
	"context"
	"time"

	"github.com/r-moraru/cluster-consensus/network"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
)

func (n *Node) runHeartbeats(ctx context.Context, term uint64) {
	ticker := time.NewTicker(n.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		n.mu.Lock()
		if n.state != node.Leader || n.currentTerm != term {
			n.mu.Unlock()
			return
		}
		for peerId, p := range n.progress {
			req, err := n.buildAppendEntriesLocked(p, 0)
			if err != nil {
				n.haltLocked(err)
				n.mu.Unlock()
				return
			}
			go n.sendHeartbeat(ctx, peerId, req)
		}
		n.mu.Unlock()
	}
}

// sendHeartbeat runs beside the replication stream, so a lost append never
// silences the leader. Its reply leaves inflight and pending alone.
func (n *Node) sendHeartbeat(ctx context.Context, peerId string, req *raft_service.AppendEntriesRequest) {
	rpcCtx, cancel := context.WithTimeout(ctx, n.cfg.RPCTimeout)
	res, err := n.network.SendAppendEntries(rpcCtx, peerId, req)
	cancel()

	n.mu.Lock()
	defer n.mu.Unlock()
	n.handleHeartbeatResponseLocked(peerId, req, res, err)
}

func (n *Node) handleHeartbeatResponseLocked(peerId string, req *raft_service.AppendEntriesRequest, res *raft_service.AppendEntriesResponse, err error) {
	status := network.StatusOf(res, err, req.Term)
	if status == network.TermIssue {
		if res.Term > n.currentTerm {
			n.logger.Info("Follower has a newer term.", "peer", peerId, "peer_term", res.Term)
			n.stepDownLocked(res.Term)
		}
		return
	}
	if n.state != node.Leader || n.currentTerm != req.Term {
		return
	}
	p, ok := n.progress[peerId]
	if !ok {
		return
	}

	switch status {
	case network.NotReceived:
		return
	case network.Success:
		p.lastAck = time.Now()
		if req.PrevLogIndex > p.match {
			p.match = req.PrevLogIndex
			if p.next < p.match+1 {
				p.next = p.match + 1
			}
			n.advanceCommitIndexLocked()
		}
	case network.LogInconsistency:
		p.lastAck = time.Now()
	}

	// An idle replication stream resumes here after a lost or rejected append.
	if n.state == node.Leader && !p.inflight && (status == network.LogInconsistency || p.next <= n.log.GetLastIndex()) {
		n.replicateLocked(peerId)
	}
}

// confirmLeadership sends one round of empty AppendEntries outside the
// regular replication stream and returns once a quorum acknowledged the
// current term.
func (n *Node) confirmLeadership(ctx context.Context) error {
	n.mu.Lock()
	if n.state != node.Leader {
		err := n.notLeaderErrorLocked()
		n.mu.Unlock()
		return err
	}
	term := n.currentTerm
	quorum := n.config.Quorum()
	acks := 0
	requests := make(map[string]*raft_service.AppendEntriesRequest)
	for _, peerId := range n.config.Voters() {
		if peerId == n.id {
			acks++
			continue
		}
		p, ok := n.progress[peerId]
		if !ok {
			continue
		}
		req, err := n.buildAppendEntriesLocked(p, 0)
		if err != nil {
			n.haltLocked(err)
			n.mu.Unlock()
			return err
		}
		requests[peerId] = req
	}
	n.mu.Unlock()

	if acks >= quorum {
		return nil
	}

	results := make(chan bool, len(requests))
	for peerId, req := range requests {
		go func(peerId string, req *raft_service.AppendEntriesRequest) {
			rpcCtx, cancel := context.WithTimeout(ctx, n.cfg.RPCTimeout)
			defer cancel()
			res, err := n.network.SendAppendEntries(rpcCtx, peerId, req)
			status := network.StatusOf(res, err, term)

			n.mu.Lock()
			defer n.mu.Unlock()
			switch status {
			case network.TermIssue:
				if res.Term > n.currentTerm {
					n.stepDownLocked(res.Term)
				}
			case network.Success, network.LogInconsistency:
				if p, ok := n.progress[peerId]; ok && n.currentTerm == term {
					p.lastAck = time.Now()
				}
			}
			results <- status == network.Success || status == network.LogInconsistency
		}(peerId, req)
	}

	for range requests {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ok := <-results:
			if ok {
				acks++
			}
		}
		if acks >= quorum {
			n.mu.Lock()
			defer n.mu.Unlock()
			if n.state != node.Leader || n.currentTerm != term {
				return n.notLeaderErrorLocked()
			}
			return nil
		}
	}
	return &node.QuorumUnavailableError{Reason: "leadership not confirmed by a quorum"}
}

// ReadIndex returns a commit index that is safe to serve linearizable reads
// from once the local state machine has applied it.
func (n *Node) ReadIndex(ctx context.Context) (uint64, error) {
	readIndex, err := n.waitOwnTermCommitted(ctx)
	if err != nil {
		return 0, err
	}
	if err := n.confirmLeadership(ctx); err != nil {
		return 0, err
	}
	if err := n.WaitApplied(ctx, readIndex); err != nil {
		return 0, err
	}
	return readIndex, nil
}

// waitOwnTermCommitted blocks until the leader committed an entry of its own
// term, which makes its commit index at least as new as any earlier leader's.
func (n *Node) waitOwnTermCommitted(ctx context.Context) (uint64, error) {
	for {
		n.mu.Lock()
		if n.stoppedLocked() {
			n.mu.Unlock()
			return 0, node.ErrNodeHalted
		}
		if n.state != node.Leader {
			err := n.notLeaderErrorLocked()
			n.mu.Unlock()
			return 0, err
		}
		if n.commitIndex > 0 {
			term, err := n.log.GetTermAtIndex(n.commitIndex)
			if err != nil {
				n.mu.Unlock()
				return 0, err
			}
			if term == n.currentTerm {
				readIndex := n.commitIndex
				n.mu.Unlock()
				return readIndex, nil
			}
		}
		notify := n.commitNotify
		n.mu.Unlock()

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-n.ctx.Done():
			return 0, node.ErrNodeHalted
		case <-notify:
		}
	}
}
