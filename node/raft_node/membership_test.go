package raft_node

import (
	"context"
	"testing"

	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configEntry(t *testing.T, index, term uint64, change membership.Change) *entries.LogEntry {
	t.Helper()
	command, err := change.ToAny()
	require.NoError(t, err)
	return &entries.LogEntry{Index: index, Term: term, Type: entries.EntryType_CONFIG_CHANGE, Command: command}
}

func TestProposeConfigChangeRequiresLeader(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})

	_, _, err := n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.AddNode, NodeID: "node4", Address: "node4:5000"})

	var notLeader *node.NotLeaderError
	assert.ErrorAs(t, err, &notLeader)
}

func TestProposeConfigChangeValidates(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.makeLeader(1)

	_, _, err := n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.AddNode, NodeID: "node2", Address: "node2:5000"})
	assert.ErrorIs(t, err, membership.ErrAlreadyMember)

	_, _, err = n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.RemoveNode, NodeID: "node9"})
	assert.ErrorIs(t, err, membership.ErrNotMember)
}

func TestSingleNodeAddCommitsImmediately(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1"})
	n.makeLeader(1)

	index, term, err := n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.AddNode, NodeID: "node2", Address: "node2:5000"})

	require.NoError(t, err)
	assert.Equal(t, uint64(2), index)
	assert.Equal(t, uint64(1), term)
	assert.NoError(t, n.WaitCommitted(context.Background(), index, term))
	assert.Equal(t, []string{"node1", "node2"}, n.GetConfiguration().Voters())
	assert.Equal(t, []string{"node2"}, n.network.GetPeerList())
	assert.False(t, n.progressOf("node2").learner)
}

func TestSecondChangeIsRejectedWhilePending(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.makeLeader(1)

	index, _, err := n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.AddNode, NodeID: "node4", Address: "node4:5000"})
	require.NoError(t, err)

	_, _, err = n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.RemoveNode, NodeID: "node3"})

	var inProgress *node.ConfigurationChangeInProgressError
	require.ErrorAs(t, err, &inProgress)
	assert.Equal(t, index, inProgress.PendingIndex)
	assert.Equal(t, index, n.Status().PendingChange)
}

func TestAddedNodeIsLearnerUntilCommit(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.makeLeader(1)

	index, _, err := n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.AddNode, NodeID: "node4", Address: "node4:5000"})
	require.NoError(t, err)
	assert.True(t, n.progressOf("node4").learner)
	assert.Equal(t, []string{"node1", "node2", "node3"}, n.GetConfiguration().Voters())

	// The learner's acknowledgement does not count toward the old quorum.
	n.respond("node4",
		&raft_service.AppendEntriesRequest{Term: 1, PrevLogIndex: 0, Entries: []*entries.LogEntry{{Index: 1, Term: 1}, {Index: 2, Term: 1}}},
		&raft_service.AppendEntriesResponse{Term: 1, Success: true, MatchIndex: index})
	assert.Equal(t, uint64(0), n.GetCommitIndex())

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 1, PrevLogIndex: 0, Entries: []*entries.LogEntry{{Index: 1, Term: 1}, {Index: 2, Term: 1}}},
		&raft_service.AppendEntriesResponse{Term: 1, Success: true, MatchIndex: index})

	assert.Equal(t, index, n.GetCommitIndex())
	assert.Equal(t, []string{"node1", "node2", "node3", "node4"}, n.GetConfiguration().Voters())
	assert.False(t, n.progressOf("node4").learner)
	assert.Zero(t, n.Status().PendingChange)
}

func TestRemovedLeaderStepsDown(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.makeLeader(1)

	index, _, err := n.ProposeConfigChange(context.Background(), membership.Change{Op: membership.RemoveNode, NodeID: "node1"})
	require.NoError(t, err)
	assert.Equal(t, node.Leader, n.GetState())

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 1, PrevLogIndex: 0, Entries: []*entries.LogEntry{{Index: 1, Term: 1}, {Index: 2, Term: 1}}},
		&raft_service.AppendEntriesResponse{Term: 1, Success: true, MatchIndex: index})

	assert.Equal(t, node.Follower, n.GetState())
	assert.Equal(t, []string{"node2", "node3"}, n.GetConfiguration().Voters())
}

func TestFollowerAppliesConfigOnlyAtCommit(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	change := membership.Change{Op: membership.RemoveNode, NodeID: "node3"}

	_, err := n.HandleAppendEntries(context.Background(), &raft_service.AppendEntriesRequest{
		Term:     1,
		LeaderId: "node2",
		Entries:  []*entries.LogEntry{configEntry(t, 1, 1, change)},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n.Status().PendingChange)
	assert.Equal(t, []string{"node1", "node2", "node3"}, n.GetConfiguration().Voters())

	_, err = n.HandleAppendEntries(context.Background(), &raft_service.AppendEntriesRequest{
		Term:         1,
		LeaderId:     "node2",
		PrevLogIndex: 1,
		PrevLogTerm:  1,
		LeaderCommit: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"node1", "node2"}, n.GetConfiguration().Voters())
	assert.Equal(t, []string{"node2"}, n.network.GetPeerList())
	assert.Zero(t, n.Status().PendingChange)
}

func TestRestartReplaysCommittedConfiguration(t *testing.T) {
	first := newTestNode(t, "node1", []string{"node1", "node2"}, entry(1, 1))
	_, err := first.HandleAppendEntries(context.Background(), &raft_service.AppendEntriesRequest{
		Term:         1,
		LeaderId:     "node2",
		PrevLogIndex: 1,
		PrevLogTerm:  1,
		Entries:      []*entries.LogEntry{configEntry(t, 2, 1, membership.Change{Op: membership.AddNode, NodeID: "node3", Address: "node3:5000"})},
		LeaderCommit: 2,
	})
	require.NoError(t, err)
	require.NoError(t, first.kv.Apply(entry(1, 1)))
	logEntries, err := first.log.GetEntries(1, 2)
	require.NoError(t, err)
	require.NoError(t, first.kv.Apply(logEntries[1]))

	restarted, err := New(first.cfg, first.log, first.stable, first.kv, first.network)

	require.NoError(t, err)
	t.Cleanup(restarted.cancel)
	assert.Equal(t, []string{"node1", "node2", "node3"}, restarted.GetConfiguration().Voters())
	assert.Equal(t, uint64(1), restarted.GetCurrentTerm())
}
