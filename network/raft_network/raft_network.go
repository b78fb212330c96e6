// Package raft_network carries raft RPCs over gRPC.
package raft_network

import (
	"context"
	"log/slog"
	"sync"

	"github.com/r-moraru/cluster-consensus/network"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type peer struct {
	address string
	client  raft_service.RaftServiceClient
	conn    *grpc.ClientConn
}

type Network struct {
	nodeId   string
	dialOpts []grpc.DialOption
	logger   *slog.Logger

	mu    sync.RWMutex
	peers map[string]*peer
}

// New returns a network with no peers. dialOpts are added to every
// connection after the default insecure transport credentials.
func New(nodeId string, logger *slog.Logger, dialOpts ...grpc.DialOption) *Network {
	if logger == nil {
		logger = slog.Default()
	}
	return &Network{
		nodeId:   nodeId,
		dialOpts: dialOpts,
		logger:   logger.With("node_id", nodeId),
		peers:    make(map[string]*peer),
	}
}

func (n *Network) GetId() string {
	return n.nodeId
}

func (n *Network) GetPeerList() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	peerList := maps.Keys(n.peers)
	slices.Sort(peerList)
	return peerList
}

// AddPeer connects lazily; dialing never blocks. Adding a known peer at the
// same address is a no-op.
func (n *Network) AddPeer(peerId, address string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if p, found := n.peers[peerId]; found {
		if p.address == address {
			return nil
		}
		p.close()
	}
	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, n.dialOpts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return err
	}
	n.peers[peerId] = &peer{
		address: address,
		client:  raft_service.NewRaftServiceClient(conn),
		conn:    conn,
	}
	n.logger.Debug("Added peer.", "peer", peerId, "address", address)
	return nil
}

func (n *Network) RemovePeer(peerId string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	p, found := n.peers[peerId]
	if !found {
		return
	}
	p.close()
	delete(n.peers, peerId)
	n.logger.Debug("Removed peer.", "peer", peerId)
}

// Close drops every peer connection.
func (n *Network) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for peerId, p := range n.peers {
		p.close()
		delete(n.peers, peerId)
	}
}

func (p *peer) close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

func (n *Network) client(peerId string) (raft_service.RaftServiceClient, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	p, found := n.peers[peerId]
	if !found {
		return nil, network.ErrUnknownPeer
	}
	return p.client, nil
}

type result[T any] struct {
	res T
	err error
}

func (n *Network) SendRequestVote(ctx context.Context, peerId string, req *raft_service.RequestVoteRequest) (*raft_service.RequestVoteResponse, error) {
	peerClient, err := n.client(peerId)
	if err != nil {
		return nil, err
	}

	resChan := make(chan result[*raft_service.RequestVoteResponse], 1)
	go func() {
		res, err := peerClient.RequestVote(ctx, req)
		resChan <- result[*raft_service.RequestVoteResponse]{res: res, err: err}
	}()

	select {
	case r := <-resChan:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (n *Network) SendAppendEntries(ctx context.Context, peerId string, req *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error) {
	peerClient, err := n.client(peerId)
	if err != nil {
		return nil, err
	}

	resChan := make(chan result[*raft_service.AppendEntriesResponse], 1)
	go func() {
		res, err := peerClient.AppendEntries(ctx, req)
		resChan <- result[*raft_service.AppendEntriesResponse]{res: res, err: err}
	}()

	select {
	case r := <-resChan:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
