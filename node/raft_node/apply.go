package raft_node

import (
	"context"
	"fmt"

	"github.com/r-moraru/cluster-consensus/node"
)

func (n *Node) signalApply() {
	select {
	case n.applyCh <- struct{}{}:
	default:
	}
}

// runApplier hands committed entries to the state machine one at a time, in
// index order, without holding the node lock.
func (n *Node) runApplier(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-n.applyCh:
		}

		for {
			n.mu.Lock()
			if n.lastApplied >= n.commitIndex || n.stoppedLocked() {
				n.mu.Unlock()
				break
			}
			index := n.lastApplied + 1
			entry, err := n.log.GetEntry(index)
			subscribers := n.subscribers
			n.mu.Unlock()

			if err != nil {
				n.halt(fmt.Errorf("read entry %d to apply: %w", index, err))
				return
			}
			if err := n.stateMachine.Apply(entry); err != nil {
				n.halt(fmt.Errorf("apply entry %d: %w", index, err))
				return
			}

			n.mu.Lock()
			n.lastApplied = index
			close(n.applyNotify)
			n.applyNotify = make(chan struct{})
			n.mu.Unlock()

			for _, s := range subscribers {
				if s.onCommit != nil {
					s.onCommit(entry)
				}
			}
		}
	}
}

func (n *Node) WaitApplied(ctx context.Context, index uint64) error {
	for {
		n.mu.Lock()
		if n.stoppedLocked() {
			n.mu.Unlock()
			return node.ErrNodeHalted
		}
		if n.lastApplied >= index {
			n.mu.Unlock()
			return nil
		}
		notify := n.applyNotify
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
