package raft_node

import (
	"context"
	"time"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
)

func (n *Node) randomElectionTimeoutLocked() time.Duration {
	return n.cfg.ElectionTimeout + time.Duration(n.rand.Int63n(int64(n.cfg.ElectionTimeout)))
}

func (n *Node) resetElectionTimerLocked() {
	n.electionDeadline = time.Now().Add(n.randomElectionTimeoutLocked())
}

func (n *Node) runElectionTimer(ctx context.Context) {
	n.mu.Lock()
	timer := time.NewTimer(time.Until(n.electionDeadline))
	n.mu.Unlock()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		n.mu.Lock()
		if !time.Now().Before(n.electionDeadline) {
			if n.state != node.Leader && n.config.Contains(n.id) {
				n.startElectionLocked()
			} else {
				n.resetElectionTimerLocked()
			}
		}
		wait := time.Until(n.electionDeadline)
		n.mu.Unlock()
		timer.Reset(wait)
	}
}

func (n *Node) startElectionLocked() {
	if n.stoppedLocked() {
		return
	}
	n.state = node.Candidate
	n.currentTerm++
	n.votedFor = n.id
	n.leaderID = ""
	n.leaderAddress = ""
	if err := n.persistLocked(); err != nil {
		return
	}
	n.resetElectionTimerLocked()

	lastIndex, lastTerm, err := log.GetLastIndexAndTerm(n.log)
	if err != nil {
		n.haltLocked(err)
		return
	}
	req := &raft_service.RequestVoteRequest{
		Term:         n.currentTerm,
		CandidateId:  n.id,
		LastLogIndex: lastIndex,
		LastLogTerm:  lastTerm,
	}
	quorum := n.config.Quorum()
	n.logger.Info("Starting election.", "term", n.currentTerm, "quorum", quorum)

	if quorum <= 1 {
		n.becomeLeaderLocked()
		return
	}
	peers := make([]string, 0, n.config.Size())
	for _, peerId := range n.config.Voters() {
		if peerId != n.id {
			peers = append(peers, peerId)
		}
	}
	go n.collectVotes(n.ctx, req, peers, quorum)
}

type vote struct {
	peerId string
	res    *raft_service.RequestVoteResponse
	err    error
}

// collectVotes fans the request out to every voter. Each call is bounded by
// the RPC timeout; a missing answer counts as no vote.
func (n *Node) collectVotes(ctx context.Context, req *raft_service.RequestVoteRequest, peers []string, quorum int) {
	votes := make(chan vote, len(peers))
	for _, peerId := range peers {
		go func(peerId string) {
			rpcCtx, cancel := context.WithTimeout(ctx, n.cfg.RPCTimeout)
			defer cancel()
			res, err := n.network.SendRequestVote(rpcCtx, peerId, req)
			votes <- vote{peerId: peerId, res: res, err: err}
		}(peerId)
	}

	granted := 1
	for range peers {
		var v vote
		select {
		case <-ctx.Done():
			return
		case v = <-votes:
		}
		if v.err != nil || v.res == nil {
			n.logger.Debug("No vote received.", "peer", v.peerId, "term", req.Term, "error", v.err)
			continue
		}

		n.mu.Lock()
		done := n.handleVoteLocked(req.Term, v, &granted, quorum)
		n.mu.Unlock()
		if done {
			return
		}
	}
}

// handleVoteLocked reports whether the candidacy for term is over.
func (n *Node) handleVoteLocked(term uint64, v vote, granted *int, quorum int) bool {
	if v.res.Term > n.currentTerm {
		n.logger.Info("Peer has a newer term, abandoning election.", "peer", v.peerId, "peer_term", v.res.Term)
		n.stepDownLocked(v.res.Term)
		return true
	}
	if n.state != node.Candidate || n.currentTerm != term {
		return true
	}
	if !v.res.VoteGranted {
		return false
	}
	*granted++
	n.logger.Debug("Vote granted.", "peer", v.peerId, "term", term, "votes", *granted)
	if *granted >= quorum {
		n.becomeLeaderLocked()
		return true
	}
	return false
}
