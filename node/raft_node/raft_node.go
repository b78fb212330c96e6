package raft_node

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/r-moraru/cluster-consensus/log"
	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/network"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/state_machine"
	"github.com/r-moraru/cluster-consensus/storage"
)

const defaultMaxAppendEntries = 64

type Config struct {
	// ElectionTimeout is the lower bound of the randomized election timeout.
	// Every wait is drawn from [ElectionTimeout, 2*ElectionTimeout).
	ElectionTimeout   time.Duration
	HeartbeatInterval time.Duration
	RPCTimeout        time.Duration
	MaxAppendEntries  int

	// Address is handed to followers as the leader hint.
	Address string
	// Members is the configuration the cluster was bootstrapped with.
	Members []membership.Member

	Logger *slog.Logger
}

type progress struct {
	next     uint64
	match    uint64
	inflight bool
	pending  bool
	lastAck  time.Time
	learner  bool
}

type subscriber struct {
	onLeadershipChange func(node.LeadershipChange)
	onCommit           func(*entries.LogEntry)
}

type Node struct {
	mu     sync.Mutex
	id     string
	cfg    Config
	logger *slog.Logger
	rand   *rand.Rand

	state            node.State
	currentTerm      uint64
	votedFor         string
	leaderID         string
	leaderAddress    string
	electionDeadline time.Time

	commitIndex uint64
	lastApplied uint64

	config             *membership.Configuration
	pendingConfigIndex uint64
	pendingChange      membership.Change

	// Leader bookkeeping
	progress    map[string]*progress
	leaderCtx   context.Context
	stopLeading context.CancelFunc

	ctx     context.Context
	cancel  context.CancelFunc
	haltErr error

	applyCh      chan struct{}
	commitNotify chan struct{}
	applyNotify  chan struct{}

	subscribers []subscriber
	events      []node.LeadershipChange
	eventCh     chan struct{}

	log          log.Log
	stable       storage.StableStore
	stateMachine state_machine.StateMachine
	network      network.Network
}

func New(cfg Config, log log.Log, stable storage.StableStore, stateMachine state_machine.StateMachine, network network.Network) (*Node, error) {
	if cfg.ElectionTimeout <= 0 || cfg.HeartbeatInterval <= 0 {
		return nil, errors.New("election timeout and heartbeat interval must be positive")
	}
	if cfg.RPCTimeout <= 0 {
		cfg.RPCTimeout = cfg.ElectionTimeout / 2
	}
	if cfg.MaxAppendEntries <= 0 {
		cfg.MaxAppendEntries = defaultMaxAppendEntries
	}
	id := network.GetId()
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hardState, err := stable.Load()
	if err != nil {
		return nil, fmt.Errorf("load hard state: %w", err)
	}
	if err := validateLog(log); err != nil {
		return nil, err
	}
	lastApplied := stateMachine.GetLastApplied()
	if lastApplied > log.GetLastIndex() {
		return nil, fmt.Errorf("%w: state machine applied %d but log ends at %d", storage.ErrCorrupted, lastApplied, log.GetLastIndex())
	}

	seed := fnv.New64a()
	seed.Write([]byte(id))

	ctx, cancel := context.WithCancel(context.Background())
	n := &Node{
		id:           id,
		cfg:          cfg,
		logger:       logger.With("node_id", id),
		rand:         rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(seed.Sum64()))),
		state:        node.Follower,
		currentTerm:  hardState.CurrentTerm,
		votedFor:     hardState.VotedFor,
		commitIndex:  lastApplied,
		lastApplied:  lastApplied,
		config:       membership.New(cfg.Members...),
		ctx:          ctx,
		cancel:       cancel,
		applyCh:      make(chan struct{}, 1),
		commitNotify: make(chan struct{}),
		applyNotify:  make(chan struct{}),
		eventCh:      make(chan struct{}, 1),
		log:          log,
		stable:       stable,
		stateMachine: stateMachine,
		network:      network,
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.applyCommittedConfigLocked(1, n.commitIndex); err != nil {
		cancel()
		return nil, err
	}
	for _, member := range n.config.Members() {
		if member.ID == n.id {
			continue
		}
		if err := n.network.AddPeer(member.ID, member.Address); err != nil {
			cancel()
			return nil, fmt.Errorf("add peer %s: %w", member.ID, err)
		}
	}
	if err := n.refreshPendingConfigLocked(); err != nil {
		cancel()
		return nil, err
	}
	n.resetElectionTimerLocked()
	return n, nil
}

func validateLog(l log.Log) error {
	if err := log.Validate(l); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrCorrupted, err)
	}
	return nil
}

// Run drives the node until ctx is cancelled or the node halts. The returned
// error is non-nil only when the node halted on unusable persisted state.
func (n *Node) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, n.cancel)
	defer stop()

	n.logger.Info("Starting raft node.", "term", n.GetCurrentTerm(), "members", n.GetConfiguration().Voters())
	n.signalApply()

	wg := sync.WaitGroup{}
	wg.Add(3)
	go func() {
		defer wg.Done()
		n.runElectionTimer(n.ctx)
	}()
	go func() {
		defer wg.Done()
		n.runApplier(n.ctx)
	}()
	go func() {
		defer wg.Done()
		n.runNotifier(n.ctx)
	}()

	<-n.ctx.Done()
	n.mu.Lock()
	n.stopLeadingLocked()
	n.mu.Unlock()
	wg.Wait()

	n.mu.Lock()
	defer n.mu.Unlock()
	n.logger.Info("Raft node stopped.", "term", n.currentTerm)
	return n.haltErr
}

// haltLocked stops the node for good. Only persisted state problems end up
// here; peer failures never do.
func (n *Node) haltLocked(err error) {
	if n.haltErr == nil {
		n.haltErr = err
		n.logger.Error("Halting node.", "error", err)
	}
	n.cancel()
}

func (n *Node) halt(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.haltLocked(err)
}

func (n *Node) stoppedLocked() bool {
	return n.ctx.Err() != nil
}

func (n *Node) persistLocked() error {
	err := n.stable.Save(storage.HardState{CurrentTerm: n.currentTerm, VotedFor: n.votedFor})
	if err != nil {
		err = fmt.Errorf("persist hard state: %w", err)
		n.haltLocked(err)
	}
	return err
}

// stepDownLocked moves the node to Follower, adopting term if it is newer.
func (n *Node) stepDownLocked(term uint64) {
	if term > n.currentTerm {
		n.currentTerm = term
		n.votedFor = ""
		n.leaderID = ""
		n.leaderAddress = ""
		if err := n.persistLocked(); err != nil {
			return
		}
	}
	if n.state == node.Follower {
		return
	}
	wasLeader := n.state == node.Leader
	n.state = node.Follower
	n.stopLeadingLocked()
	n.resetElectionTimerLocked()
	n.logger.Info("Stepping down to follower.", "term", n.currentTerm)
	if wasLeader {
		n.publishLeadershipLocked()
	}
}

func (n *Node) becomeLeaderLocked() {
	n.state = node.Leader
	n.leaderID = n.id
	n.leaderAddress = n.cfg.Address
	n.logger.Info("Became leader.", "term", n.currentTerm)

	n.resetLeaderBookkeepingLocked()
	n.leaderCtx, n.stopLeading = context.WithCancel(n.ctx)
	go n.runHeartbeats(n.leaderCtx, n.currentTerm)

	n.publishLeadershipLocked()
	// A fresh entry in the new term lets earlier entries commit.
	n.appendLocked(&entries.LogEntry{Term: n.currentTerm, Type: entries.EntryType_NO_OP})
}

func (n *Node) resetLeaderBookkeepingLocked() {
	lastIndex := n.log.GetLastIndex()
	now := time.Now()
	n.progress = make(map[string]*progress)
	for _, peerId := range n.config.Voters() {
		if peerId == n.id {
			continue
		}
		n.progress[peerId] = &progress{next: lastIndex + 1, lastAck: now}
	}
	if n.pendingConfigIndex != 0 && n.pendingChange.Op == membership.AddNode {
		if err := n.trackLearnerLocked(n.pendingChange, lastIndex+1); err != nil {
			n.logger.Warn("Failed to add learner to network.", "peer", n.pendingChange.NodeID, "error", err)
		}
	}
}

func (n *Node) trackLearnerLocked(change membership.Change, next uint64) error {
	if change.NodeID == n.id {
		return nil
	}
	if err := n.network.AddPeer(change.NodeID, change.Address); err != nil {
		return err
	}
	n.progress[change.NodeID] = &progress{next: next, lastAck: time.Now(), learner: true}
	return nil
}

func (n *Node) stopLeadingLocked() {
	if n.stopLeading != nil {
		n.stopLeading()
		n.stopLeading = nil
	}
	n.progress = nil
}

func (n *Node) GetId() string {
	return n.id
}

func (n *Node) GetState() node.State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Node) GetCurrentTerm() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentTerm
}

func (n *Node) GetVotedFor() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.votedFor
}

func (n *Node) GetCurrentLeaderID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.leaderID
}

func (n *Node) GetCommitIndex() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.commitIndex
}

func (n *Node) GetLastApplied() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastApplied
}

func (n *Node) GetConfiguration() *membership.Configuration {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.config
}

func (n *Node) Status() node.Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return node.Status{
		ID:            n.id,
		State:         n.state,
		Term:          n.currentTerm,
		LeaderID:      n.leaderID,
		LeaderAddress: n.leaderAddress,
		CommitIndex:   n.commitIndex,
		LastApplied:   n.lastApplied,
		LastLogIndex:  n.log.GetLastIndex(),
		Members:       n.config.Members(),
		PendingChange: n.pendingConfigIndex,
	}
}

func (n *Node) notLeaderErrorLocked() error {
	return &node.NotLeaderError{LeaderID: n.leaderID, LeaderAddress: n.leaderAddress}
}
