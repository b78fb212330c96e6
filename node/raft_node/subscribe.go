package raft_node

import (
	"context"

	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
)

// Subscribe registers callbacks for leadership changes and for every entry
// once it is applied. Callbacks run on node goroutines and must not block.
func (n *Node) Subscribe(onLeadershipChange func(node.LeadershipChange), onCommit func(*entries.LogEntry)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	subscribers := make([]subscriber, len(n.subscribers), len(n.subscribers)+1)
	copy(subscribers, n.subscribers)
	n.subscribers = append(subscribers, subscriber{
		onLeadershipChange: onLeadershipChange,
		onCommit:           onCommit,
	})
}

func (n *Node) publishLeadershipLocked() {
	n.events = append(n.events, node.LeadershipChange{
		Term:     n.currentTerm,
		LeaderID: n.leaderID,
		IsLeader: n.state == node.Leader,
	})
	select {
	case n.eventCh <- struct{}{}:
	default:
	}
}

// runNotifier delivers leadership events in the order they happened.
func (n *Node) runNotifier(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-n.eventCh:
		}

		n.mu.Lock()
		events := n.events
		n.events = nil
		subscribers := n.subscribers
		n.mu.Unlock()

		for _, event := range events {
			for _, s := range subscribers {
				if s.onLeadershipChange != nil {
					s.onLeadershipChange(event)
				}
			}
		}
	}
}
