package raft_node

import (
	"context"
	"fmt"
	"time"

	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
)

// ProposeConfigChange appends a configuration change. It takes effect on every
// node only once committed, so it is approved by the old configuration's
// quorum. An added node receives entries as a learner until then.
func (n *Node) ProposeConfigChange(ctx context.Context, change membership.Change) (uint64, uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stoppedLocked() {
		return 0, 0, node.ErrNodeHalted
	}
	if n.state != node.Leader {
		return 0, 0, n.notLeaderErrorLocked()
	}
	if n.pendingConfigIndex != 0 {
		return 0, 0, &node.ConfigurationChangeInProgressError{PendingIndex: n.pendingConfigIndex}
	}
	if err := n.config.Validate(change); err != nil {
		return 0, 0, err
	}
	command, err := change.ToAny()
	if err != nil {
		return 0, 0, fmt.Errorf("encode configuration change: %w", err)
	}

	if change.Op == membership.AddNode {
		if err := n.trackLearnerLocked(change, n.log.GetLastIndex()+1); err != nil {
			return 0, 0, fmt.Errorf("add learner %s: %w", change.NodeID, err)
		}
	}
	n.pendingConfigIndex = n.log.GetLastIndex() + 1
	n.pendingChange = change
	index, err := n.appendLocked(&entries.LogEntry{
		Term:    n.currentTerm,
		Type:    entries.EntryType_CONFIG_CHANGE,
		Command: command,
	})
	if err != nil {
		return 0, 0, err
	}
	n.logger.Info("Proposed configuration change.", "change", change.String(), "index", index)
	return index, n.currentTerm, nil
}

// refreshPendingConfigLocked finds the uncommitted configuration change in
// the log, if any.
func (n *Node) refreshPendingConfigLocked() error {
	n.pendingConfigIndex = 0
	n.pendingChange = membership.Change{}
	lastIndex := n.log.GetLastIndex()
	for index := n.commitIndex + 1; index <= lastIndex; index++ {
		entry, err := n.log.GetEntry(index)
		if err != nil {
			return err
		}
		if entry.Type != entries.EntryType_CONFIG_CHANGE {
			continue
		}
		change, err := membership.ChangeFromAny(entry.Command)
		if err != nil {
			n.logger.Warn("Ignoring undecodable configuration change.", "index", index, "error", err)
			continue
		}
		n.pendingConfigIndex = index
		n.pendingChange = change
	}
	return nil
}

// applyCommittedConfigLocked installs the configuration changes committed in
// [from, to].
func (n *Node) applyCommittedConfigLocked(from, to uint64) error {
	for index := from; index <= to; index++ {
		entry, err := n.log.GetEntry(index)
		if err != nil {
			return fmt.Errorf("read committed entry %d: %w", index, err)
		}
		if entry.Type != entries.EntryType_CONFIG_CHANGE {
			continue
		}
		change, err := membership.ChangeFromAny(entry.Command)
		if err != nil {
			n.logger.Warn("Ignoring undecodable configuration change.", "index", index, "error", err)
			continue
		}
		if n.pendingConfigIndex == index {
			n.pendingConfigIndex = 0
			n.pendingChange = membership.Change{}
		}
		next, err := n.config.Apply(change)
		if err != nil {
			n.logger.Warn("Ignoring inapplicable configuration change.", "index", index, "change", change.String(), "error", err)
			continue
		}
		n.config = next
		n.logger.Info("Configuration change committed.", "index", index, "change", change.String(), "members", n.config.Voters())
		n.installChangeLocked(change)
	}
	return nil
}

func (n *Node) installChangeLocked(change membership.Change) {
	switch change.Op {
	case membership.AddNode:
		if change.NodeID == n.id {
			return
		}
		if err := n.network.AddPeer(change.NodeID, change.Address); err != nil {
			n.logger.Warn("Failed to add peer to network.", "peer", change.NodeID, "error", err)
		}
		if n.state != node.Leader {
			return
		}
		p, ok := n.progress[change.NodeID]
		if !ok {
			p = &progress{next: n.log.GetLastIndex() + 1, lastAck: time.Now()}
			n.progress[change.NodeID] = p
		}
		p.learner = false
	case membership.RemoveNode:
		if change.NodeID == n.id {
			if n.state == node.Leader {
				n.logger.Info("Removed from configuration, stepping down.")
				n.stepDownLocked(n.currentTerm)
			}
			return
		}
		n.network.RemovePeer(change.NodeID)
		if n.progress != nil {
			delete(n.progress, change.NodeID)
		}
	}
}
