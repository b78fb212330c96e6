package local_network

import (
	"context"
	"testing"
	"time"

	"github.com/r-moraru/cluster-consensus/network"
	node_mocks "github.com/r-moraru/cluster-consensus/node/mocks"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/proto"
)

type LocalNetworkTestSuite struct {
	suite.Suite

	fabric *Fabric
	node2  *node_mocks.Node
	net1   *Network
}

func (s *LocalNetworkTestSuite) SetupTest() {
	s.fabric = NewFabric()
	s.node2 = node_mocks.NewNode(s.T())
	s.fabric.Register("node2", s.node2)
	s.net1 = s.fabric.Endpoint("node1")
	require.NoError(s.T(), s.net1.AddPeer("node2", "node2"))
}

func (s *LocalNetworkTestSuite) TestDeliversCopyOfRequest() {
	t := s.T()
	req := &raft_service.AppendEntriesRequest{
		Term:     2,
		LeaderId: "node1",
		Entries:  []*entries.LogEntry{{Index: 1, Term: 2, Type: entries.EntryType_NO_OP}},
	}
	s.node2.EXPECT().HandleAppendEntries(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, got *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error) {
			assert.NotSame(t, req, got)
			assert.NotSame(t, req.Entries[0], got.Entries[0])
			assert.True(t, proto.Equal(req.Entries[0], got.Entries[0]))
			return &raft_service.AppendEntriesResponse{Term: 2, Success: true, MatchIndex: 1}, nil
		}).Once()

	res, err := s.net1.SendAppendEntries(context.Background(), "node2", req)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, uint64(1), res.MatchIndex)
}

func (s *LocalNetworkTestSuite) TestUnknownPeer() {
	_, err := s.net1.SendRequestVote(context.Background(), "node3", &raft_service.RequestVoteRequest{})
	assert.ErrorIs(s.T(), err, network.ErrUnknownPeer)
}

func (s *LocalNetworkTestSuite) TestIsolatedNodeIsUnreachable() {
	s.fabric.Isolate("node2")

	_, err := s.net1.SendRequestVote(context.Background(), "node2", &raft_service.RequestVoteRequest{Term: 1})

	assert.ErrorIs(s.T(), err, ErrPartitioned)
}

func (s *LocalNetworkTestSuite) TestPartitionAndHeal() {
	t := s.T()
	s.fabric.Partition([]string{"node1"}, []string{"node2"})

	_, err := s.net1.SendRequestVote(context.Background(), "node2", &raft_service.RequestVoteRequest{Term: 1})
	assert.ErrorIs(t, err, ErrPartitioned)

	s.fabric.Heal()
	s.node2.EXPECT().HandleRequestVote(mock.Anything, &raft_service.RequestVoteRequest{Term: 1}).
		Return(&raft_service.RequestVoteResponse{Term: 1, VoteGranted: true}, nil).Once()
	res, err := s.net1.SendRequestVote(context.Background(), "node2", &raft_service.RequestVoteRequest{Term: 1})
	require.NoError(t, err)
	assert.True(t, res.VoteGranted)
}

func (s *LocalNetworkTestSuite) TestDropEverything() {
	s.fabric.SetDropRate(1)

	_, err := s.net1.SendRequestVote(context.Background(), "node2", &raft_service.RequestVoteRequest{Term: 1})

	assert.ErrorIs(s.T(), err, ErrDropped)
}

func (s *LocalNetworkTestSuite) TestDelayRespectsContext() {
	s.fabric.SetDelay(time.Second, 2*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.net1.SendRequestVote(ctx, "node2", &raft_service.RequestVoteRequest{Term: 1})

	assert.ErrorIs(s.T(), err, context.DeadlineExceeded)
}

func (s *LocalNetworkTestSuite) TestUnregisteredNodeIsUnreachable() {
	s.fabric.Unregister("node2")

	_, err := s.net1.SendRequestVote(context.Background(), "node2", &raft_service.RequestVoteRequest{Term: 1})

	assert.ErrorIs(s.T(), err, ErrUnreachable)
}

func (s *LocalNetworkTestSuite) TestPeerList() {
	t := s.T()
	require.NoError(t, s.net1.AddPeer("node5", "node5"))
	require.NoError(t, s.net1.AddPeer("node3", "node3"))
	assert.Equal(t, []string{"node2", "node3", "node5"}, s.net1.GetPeerList())

	s.net1.RemovePeer("node3")
	assert.Equal(t, []string{"node2", "node5"}, s.net1.GetPeerList())
}

func TestLocalNetworkTestSuite(t *testing.T) {
	suite.Run(t, new(LocalNetworkTestSuite))
}
