package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/raft_server"
)

const nodeIDFile = "node_id"

// Config holds process-level settings used for wiring a node.
type Config struct {
	NodeID  string
	DataDir string
	// ListenAddr serves the raft RPCs, HTTPAddr the client API.
	ListenAddr string
	HTTPAddr   string
	// AdvertiseHTTP is the client API address handed out as the leader hint.
	AdvertiseHTTP string
	// Peers is the bootstrap configuration, node ids mapped to raft addresses.
	Peers []membership.Member
	// Join starts the node outside the configuration, waiting to be added.
	Join bool

	ElectionTimeout   time.Duration
	HeartbeatInterval time.Duration
	RPCTimeout        time.Duration
	RequestTimeout    time.Duration
	MaxAppendEntries  int

	ReadMode raft_server.ReadMode
	LogLevel slog.Level
}

func Default() Config {
	return Config{
		DataDir:           "data",
		ListenAddr:        "localhost:5001",
		HTTPAddr:          "localhost:8001",
		ElectionTimeout:   500 * time.Millisecond,
		HeartbeatInterval: 50 * time.Millisecond,
		RPCTimeout:        200 * time.Millisecond,
		RequestTimeout:    5 * time.Second,
		MaxAppendEntries:  64,
		ReadMode:          raft_server.LinearizableReads,
		LogLevel:          slog.LevelInfo,
	}
}

// Load parses args on top of the RAFT_* environment, flags winning.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("raftd", flag.ContinueOnError)

	fs.StringVar(&cfg.NodeID, "id", env(getenv, "RAFT_NODE_ID", cfg.NodeID), "node id, generated and kept in the data dir when empty")
	fs.StringVar(&cfg.DataDir, "data-dir", env(getenv, "RAFT_DATA_DIR", cfg.DataDir), "directory for the log and hard state")
	fs.StringVar(&cfg.ListenAddr, "listen", env(getenv, "RAFT_LISTEN_ADDR", cfg.ListenAddr), "raft rpc listen address")
	fs.StringVar(&cfg.HTTPAddr, "http", env(getenv, "RAFT_HTTP_ADDR", cfg.HTTPAddr), "client api listen address")
	fs.StringVar(&cfg.AdvertiseHTTP, "advertise-http", env(getenv, "RAFT_ADVERTISE_HTTP", ""), "client api address given to redirected clients")
	peers := fs.String("peers", env(getenv, "RAFT_PEERS", ""), "bootstrap configuration as id=host:port,...")
	fs.BoolVar(&cfg.Join, "join", envBool(getenv, "RAFT_JOIN"), "start outside the configuration and wait to be added")
	fs.DurationVar(&cfg.ElectionTimeout, "election-timeout", envDuration(getenv, "RAFT_ELECTION_TIMEOUT", cfg.ElectionTimeout), "minimum election timeout")
	fs.DurationVar(&cfg.HeartbeatInterval, "heartbeat", envDuration(getenv, "RAFT_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval), "heartbeat interval")
	fs.DurationVar(&cfg.RPCTimeout, "rpc-timeout", envDuration(getenv, "RAFT_RPC_TIMEOUT", cfg.RPCTimeout), "timeout of a single raft rpc")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", envDuration(getenv, "RAFT_REQUEST_TIMEOUT", cfg.RequestTimeout), "how long client requests wait for replication")
	fs.IntVar(&cfg.MaxAppendEntries, "max-append-entries", cfg.MaxAppendEntries, "entries per append request")
	readMode := fs.String("read-mode", env(getenv, "RAFT_READ_MODE", string(cfg.ReadMode)), "stale or linearizable")
	logLevel := fs.String("log-level", env(getenv, "RAFT_LOG_LEVEL", cfg.LogLevel.String()), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.Peers, err = ParsePeers(*peers); err != nil {
		return cfg, err
	}
	if cfg.ReadMode, err = raft_server.ParseReadMode(*readMode); err != nil {
		return cfg, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return cfg, fmt.Errorf("log level: %w", err)
	}
	if cfg.AdvertiseHTTP == "" {
		cfg.AdvertiseHTTP = cfg.HTTPAddr
	}
	return cfg, nil
}

func env(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(getenv func(string) string, key string) bool {
	switch strings.ToLower(getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(key))
	if err != nil {
		return fallback
	}
	return d
}

// ParsePeers reads "id=host:port" pairs separated by commas.
func ParsePeers(s string) ([]membership.Member, error) {
	var members []membership.Member
	seen := map[string]bool{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, address, ok := strings.Cut(pair, "=")
		if !ok || id == "" || address == "" {
			return nil, fmt.Errorf("malformed peer %q, want id=host:port", pair)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate peer %q", id)
		}
		seen[id] = true
		members = append(members, membership.Member{ID: id, Address: address})
	}
	return members, nil
}

// ResolveNodeID fills in NodeID from the data dir, generating and storing a
// new one on first start.
func (c *Config) ResolveNodeID() error {
	path := filepath.Join(c.DataDir, nodeIDFile)
	stored, err := os.ReadFile(path)
	switch {
	case err == nil:
		storedID := strings.TrimSpace(string(stored))
		if c.NodeID != "" && c.NodeID != storedID {
			return fmt.Errorf("data dir %s belongs to node %s, not %s", c.DataDir, storedID, c.NodeID)
		}
		c.NodeID = storedID
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read node id: %w", err)
	}

	if c.NodeID == "" {
		c.NodeID = uuid.New().String()
	}
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.NodeID+"\n"), 0o644); err != nil {
		return fmt.Errorf("write node id: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.NodeID == "" {
		return errors.New("node id is required")
	}
	if c.ElectionTimeout <= 0 || c.HeartbeatInterval <= 0 {
		return errors.New("election timeout and heartbeat interval must be positive")
	}
	// Heartbeats must land several times within the shortest election timeout.
	if c.HeartbeatInterval*5 > c.ElectionTimeout || c.HeartbeatInterval*10 < c.ElectionTimeout {
		return fmt.Errorf("heartbeat %s should be between 1/10 and 1/5 of the election timeout %s", c.HeartbeatInterval, c.ElectionTimeout)
	}
	// A lost rpc plus the next heartbeat must still fit in an election timeout.
	if c.RPCTimeout <= 0 || c.RPCTimeout+c.HeartbeatInterval >= c.ElectionTimeout {
		return fmt.Errorf("rpc timeout %s plus heartbeat %s must stay below the election timeout %s", c.RPCTimeout, c.HeartbeatInterval, c.ElectionTimeout)
	}
	if _, err := raft_server.ParseReadMode(string(c.ReadMode)); err != nil {
		return err
	}
	if len(c.Peers) == 0 {
		return errors.New("peers are required")
	}
	isMember := false
	for _, peer := range c.Peers {
		if peer.ID == c.NodeID {
			isMember = true
			if peer.Address != c.ListenAddr {
				return fmt.Errorf("peer %s is listed at %s but listens on %s", peer.ID, peer.Address, c.ListenAddr)
			}
		}
	}
	if isMember == c.Join {
		if c.Join {
			return fmt.Errorf("joining node %s is already listed in peers", c.NodeID)
		}
		return fmt.Errorf("node %s is not listed in peers, start it with -join", c.NodeID)
	}
	return nil
}
