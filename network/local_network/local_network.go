// Package local_network is an in-process network.Network used to run whole
// clusters inside one test binary. Requests are marshalled and unmarshalled
// so nodes never share request objects.
package local_network

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/r-moraru/cluster-consensus/network"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/proto"
)

var (
	ErrPartitioned = errors.New("network partition")
	ErrDropped     = errors.New("message dropped")
	ErrUnreachable = errors.New("target node not registered")
)

type Fabric struct {
	mu       sync.RWMutex
	handlers map[string]network.Handler
	// group assigns nodes to partitions; nodes talk only within a group.
	group    map[string]int
	isolated map[string]bool
	dropRate float64
	delayMin time.Duration
	delayMax time.Duration
	rand     *rand.Rand
}

func NewFabric() *Fabric {
	return &Fabric{
		handlers: make(map[string]network.Handler),
		group:    make(map[string]int),
		isolated: make(map[string]bool),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Fabric) Register(id string, h network.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[id] = h
}

// Unregister makes id unreachable, as if its process crashed.
func (f *Fabric) Unregister(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.handlers, id)
}

func (f *Fabric) Isolate(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.isolated[id] = true
}

// Partition splits the cluster into the given groups. Nodes not listed stay
// in group 0 together with the first group.
func (f *Fabric) Partition(groups ...[]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.group = make(map[string]int)
	for i, members := range groups {
		for _, id := range members {
			f.group[id] = i
		}
	}
}

func (f *Fabric) Heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.group = make(map[string]int)
	f.isolated = make(map[string]bool)
}

func (f *Fabric) SetDropRate(rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dropRate = rate
}

func (f *Fabric) SetDelay(min, max time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delayMin = min
	f.delayMax = max
}

func (f *Fabric) reachableLocked(from, to string) bool {
	if f.isolated[from] || f.isolated[to] {
		return false
	}
	return f.group[from] == f.group[to]
}

func (f *Fabric) deliver(ctx context.Context, from, to string, msg network.Message) (network.Message, error) {
	f.mu.Lock()
	h, found := f.handlers[to]
	reachable := f.reachableLocked(from, to)
	dropped := f.dropRate > 0 && f.rand.Float64() < f.dropRate
	delay := f.delayMin
	if f.delayMax > f.delayMin {
		delay += time.Duration(f.rand.Int63n(int64(f.delayMax - f.delayMin)))
	}
	f.mu.Unlock()

	if !found {
		return nil, ErrUnreachable
	}
	if !reachable {
		return nil, ErrPartitioned
	}
	if dropped {
		return nil, ErrDropped
	}
	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	reply, err := network.Dispatch(ctx, h, msg)
	if err != nil {
		return nil, err
	}

	// The partition may have changed while the handler ran.
	f.mu.RLock()
	reachable = f.reachableLocked(from, to)
	f.mu.RUnlock()
	if !reachable {
		return nil, ErrPartitioned
	}
	return reply, ctx.Err()
}

// Network is one node's endpoint on a Fabric.
type Network struct {
	fabric *Fabric
	id     string

	mu    sync.RWMutex
	peers map[string]string
}

func (f *Fabric) Endpoint(id string) *Network {
	return &Network{
		fabric: f,
		id:     id,
		peers:  make(map[string]string),
	}
}

func (n *Network) GetId() string {
	return n.id
}

func (n *Network) GetPeerList() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	peerList := maps.Keys(n.peers)
	slices.Sort(peerList)
	return peerList
}

func (n *Network) AddPeer(peerId, address string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.peers[peerId] = address
	return nil
}

func (n *Network) RemovePeer(peerId string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.peers, peerId)
}

func (n *Network) hasPeer(peerId string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, found := n.peers[peerId]
	return found
}

func (n *Network) SendRequestVote(ctx context.Context, peerId string, req *raft_service.RequestVoteRequest) (*raft_service.RequestVoteResponse, error) {
	if !n.hasPeer(peerId) {
		return nil, network.ErrUnknownPeer
	}
	copied := new(raft_service.RequestVoteRequest)
	if err := roundTrip(req, copied); err != nil {
		return nil, err
	}
	reply, err := n.fabric.deliver(ctx, n.id, peerId, network.VoteRequest{RequestVoteRequest: copied})
	if err != nil {
		return nil, err
	}
	res, ok := reply.(network.VoteResponse)
	if !ok {
		return nil, errors.New("unexpected reply to vote request")
	}
	return res.RequestVoteResponse, nil
}

func (n *Network) SendAppendEntries(ctx context.Context, peerId string, req *raft_service.AppendEntriesRequest) (*raft_service.AppendEntriesResponse, error) {
	if !n.hasPeer(peerId) {
		return nil, network.ErrUnknownPeer
	}
	copied := new(raft_service.AppendEntriesRequest)
	if err := roundTrip(req, copied); err != nil {
		return nil, err
	}
	reply, err := n.fabric.deliver(ctx, n.id, peerId, network.AppendRequest{AppendEntriesRequest: copied})
	if err != nil {
		return nil, err
	}
	res, ok := reply.(network.AppendResponse)
	if !ok {
		return nil, errors.New("unexpected reply to append entries")
	}
	return res.AppendEntriesResponse, nil
}

func roundTrip(src, dst proto.Message) error {
	b, err := proto.Marshal(src)
	if err != nil {
		return err
	}
	return proto.Unmarshal(b, dst)
}
