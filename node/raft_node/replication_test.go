package raft_node

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/r-moraru/cluster-consensus/log/memory_log"
	"github.com/r-moraru/cluster-consensus/network/local_network"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/r-moraru/cluster-consensus/state_machine/kv_store"
	state_machine_mocks "github.com/r-moraru/cluster-consensus/state_machine/mocks"
	"github.com/r-moraru/cluster-consensus/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (n *testNode) progressOf(peerId string) progress {
	n.mu.Lock()
	defer n.mu.Unlock()
	return *n.progress[peerId]
}

func (n *testNode) respond(peerId string, req *raft_service.AppendEntriesRequest, res *raft_service.AppendEntriesResponse) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handleAppendResponseLocked(peerId, req, res, nil)
}

func runNode(t *testing.T, n *testNode) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- n.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
}

func TestSingleNodeLeaderCommitsOnAppend(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1"})
	n.makeLeader(1)
	assert.Equal(t, uint64(1), n.GetCommitIndex(), "the leader's no-op commits at once")

	command, err := kv_store.WriteCommand("x", "1")
	require.NoError(t, err)
	index, term, err := n.Submit(context.Background(), "client", 1, command)

	require.NoError(t, err)
	assert.Equal(t, uint64(2), index)
	assert.Equal(t, uint64(1), term)
	assert.NoError(t, n.WaitCommitted(context.Background(), index, term))
}

func TestSubmitOnFollowerReturnsLeaderHint(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.mu.Lock()
	n.leaderID = "node2"
	n.leaderAddress = "node2:5000"
	n.mu.Unlock()

	_, _, err := n.Submit(context.Background(), "client", 1, nil)

	var notLeader *node.NotLeaderError
	require.ErrorAs(t, err, &notLeader)
	assert.Equal(t, "node2", notLeader.LeaderID)
	assert.Equal(t, "node2:5000", notLeader.LeaderAddress)
}

func TestSubmitWithoutRecentQuorumIsRetryable(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.makeLeader(1)
	n.mu.Lock()
	for _, p := range n.progress {
		p.lastAck = time.Now().Add(-time.Hour * 24)
	}
	n.mu.Unlock()

	_, _, err := n.Submit(context.Background(), "client", 1, nil)

	var unavailable *node.QuorumUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.True(t, node.IsRetryable(err))
}

func TestCommitsOnlyCurrentTermEntries(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"}, entry(1, 1), entry(2, 1))
	n.makeLeader(3)
	require.Equal(t, uint64(3), n.log.GetLastIndex())

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 3, PrevLogIndex: 0, Entries: []*entries.LogEntry{entry(1, 1), entry(2, 1)}},
		&raft_service.AppendEntriesResponse{Term: 3, Success: true, MatchIndex: 2})

	assert.Equal(t, uint64(2), n.progressOf("node2").match)
	assert.Equal(t, uint64(0), n.GetCommitIndex(), "entries of an earlier term never commit by counting")

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 3, PrevLogIndex: 2, PrevLogTerm: 1, Entries: []*entries.LogEntry{{Index: 3, Term: 3}}},
		&raft_service.AppendEntriesResponse{Term: 3, Success: true, MatchIndex: 3})

	assert.Equal(t, uint64(3), n.GetCommitIndex())
}

func TestBackoffFollowsHint(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"},
		entry(1, 1), entry(2, 1), entry(3, 1), entry(4, 1), entry(5, 1))
	n.makeLeader(2)
	assert.Equal(t, uint64(6), n.progressOf("node2").next)

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 2, PrevLogIndex: 5, PrevLogTerm: 1},
		&raft_service.AppendEntriesResponse{Term: 2, Success: false, MatchIndex: 2})
	assert.Equal(t, uint64(3), n.progressOf("node2").next)

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 2, PrevLogIndex: 2, PrevLogTerm: 1},
		&raft_service.AppendEntriesResponse{Term: 2, Success: false, MatchIndex: 9})
	assert.Equal(t, uint64(2), n.progressOf("node2").next, "one step back without a useful hint")
}

func TestBackoffNeverGoesBelowMatch(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"},
		entry(1, 1), entry(2, 1), entry(3, 1), entry(4, 1), entry(5, 1))
	n.makeLeader(2)
	n.mu.Lock()
	n.progress["node2"].match = 4
	n.mu.Unlock()

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 2, PrevLogIndex: 5, PrevLogTerm: 1},
		&raft_service.AppendEntriesResponse{Term: 2, Success: false, MatchIndex: 0})

	assert.Equal(t, uint64(5), n.progressOf("node2").next)
}

func TestStaleResponseIsIgnored(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"}, entry(1, 1))
	n.makeLeader(2)

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 1, PrevLogIndex: 0, Entries: []*entries.LogEntry{entry(1, 1)}},
		&raft_service.AppendEntriesResponse{Term: 1, Success: true, MatchIndex: 1})

	assert.Equal(t, uint64(0), n.progressOf("node2").match)
}

func TestNewerTermResponseStepsDown(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"})
	n.makeLeader(2)

	n.respond("node2",
		&raft_service.AppendEntriesRequest{Term: 2},
		&raft_service.AppendEntriesResponse{Term: 5, Success: false})

	assert.Equal(t, node.Follower, n.GetState())
	assert.Equal(t, uint64(5), n.GetCurrentTerm())
	hardState, err := n.stable.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), hardState.CurrentTerm)
}

func TestBatchesAreBounded(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"},
		entry(1, 1), entry(2, 1), entry(3, 1), entry(4, 1))
	n.makeLeader(2)

	n.mu.Lock()
	defer n.mu.Unlock()
	req, err := n.buildAppendEntriesLocked(&progress{next: 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), req.PrevLogIndex)
	assert.Equal(t, uint64(1), req.PrevLogTerm)
	require.Len(t, req.Entries, 2)
	assert.Equal(t, uint64(3), req.Entries[1].Index)

	heartbeat, err := n.buildAppendEntriesLocked(&progress{next: 6}, 0)
	require.NoError(t, err)
	assert.Empty(t, heartbeat.Entries)
	assert.Equal(t, uint64(2), heartbeat.PrevLogTerm)
	assert.Equal(t, "node1:5000", heartbeat.LeaderAddress)
}

func TestWaitCommittedReportsOverwrittenEntry(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"}, entry(1, 1), entry(2, 1), entry(3, 1))

	result := make(chan error, 1)
	go func() {
		result <- n.WaitCommitted(context.Background(), 3, 1)
	}()
	time.Sleep(10 * time.Millisecond)

	_, err := n.HandleAppendEntries(context.Background(), &raft_service.AppendEntriesRequest{
		Term:         2,
		LeaderId:     "node2",
		PrevLogIndex: 2,
		PrevLogTerm:  1,
		Entries:      []*entries.LogEntry{entry(3, 2)},
	})
	require.NoError(t, err)

	select {
	case err := <-result:
		assert.ErrorIs(t, err, node.ErrEntryOverwritten)
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken by the overwrite")
	}
}

func TestWaitCommittedHonoursContext(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1", "node2", "node3"}, entry(1, 1))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := n.WaitCommitted(ctx, 1, 1)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAppliesCommittedEntriesInOrder(t *testing.T) {
	n := newTestNode(t, "node1", []string{"node1"})
	var mu sync.Mutex
	var applied []uint64
	n.Subscribe(nil, func(e *entries.LogEntry) {
		mu.Lock()
		defer mu.Unlock()
		applied = append(applied, e.Index)
	})
	runNode(t, n)
	n.makeLeader(1)

	var last uint64
	for i, key := range []string{"a", "b", "c"} {
		command, err := kv_store.WriteCommand(key, key+key)
		require.NoError(t, err)
		last, _, err = n.Submit(context.Background(), "client", uint64(i+1), command)
		require.NoError(t, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, n.WaitApplied(ctx, last))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(applied) == 4
	}, time.Second, 5*time.Millisecond)

	value, found := n.kv.Get("b")
	assert.True(t, found)
	assert.Equal(t, "bb", value)
	result := <-n.kv.WaitForResult(ctx, "client", 3)
	require.NoError(t, result.Error)
	assert.Equal(t, last, n.GetLastApplied())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uint64{1, 2, 3, 4}, applied)
}

func TestApplyFailureHaltsNode(t *testing.T) {
	stateMachine := state_machine_mocks.NewStateMachine(t)
	stateMachine.EXPECT().GetLastApplied().Return(uint64(0)).Once()
	stateMachine.EXPECT().Apply(mock.Anything).Return(errors.New("disk gone")).Once()
	raftNode, err := New(Config{
		ElectionTimeout:   time.Hour,
		HeartbeatInterval: time.Hour,
		Members:           members("node1"),
	}, memory_log.New(), storage.NewMemoryStore(), stateMachine, local_network.NewFabric().Endpoint("node1"))
	require.NoError(t, err)
	n := &testNode{Node: raftNode}

	done := make(chan error, 1)
	go func() {
		done <- n.Run(context.Background())
	}()
	n.makeLeader(1)

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "disk gone")
	case <-time.After(2 * time.Second):
		t.Fatal("node did not halt")
	}
	_, _, err = n.Submit(context.Background(), "client", 1, nil)
	assert.ErrorIs(t, err, node.ErrNodeHalted)
}
