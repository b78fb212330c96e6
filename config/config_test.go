package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/raft_server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func mapEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, noEnv)
	require.NoError(t, err)

	assert.Equal(t, Default().ElectionTimeout, cfg.ElectionTimeout)
	assert.Equal(t, raft_server.LinearizableReads, cfg.ReadMode)
	assert.Equal(t, cfg.HTTPAddr, cfg.AdvertiseHTTP)
	assert.Empty(t, cfg.Peers)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	getenv := mapEnv(map[string]string{
		"RAFT_NODE_ID":            "node1",
		"RAFT_PEERS":              "node1=localhost:5001,node2=localhost:5002",
		"RAFT_READ_MODE":          "stale",
		"RAFT_HEARTBEAT_INTERVAL": "30ms",
		"RAFT_JOIN":               "true",
	})
	cfg, err := Load([]string{"-id", "node3", "-heartbeat", "40ms", "-log-level", "debug"}, getenv)
	require.NoError(t, err)

	assert.Equal(t, "node3", cfg.NodeID)
	assert.Equal(t, 40*time.Millisecond, cfg.HeartbeatInterval)
	assert.Equal(t, raft_server.StaleReads, cfg.ReadMode)
	assert.True(t, cfg.Join)
	assert.Equal(t, []membership.Member{
		{ID: "node1", Address: "localhost:5001"},
		{ID: "node2", Address: "localhost:5002"},
	}, cfg.Peers)
	assert.Equal(t, "DEBUG", cfg.LogLevel.String())
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load([]string{"-read-mode", "eventual"}, noEnv)
	assert.Error(t, err)

	_, err = Load([]string{"-log-level", "loud"}, noEnv)
	assert.Error(t, err)

	_, err = Load([]string{"-peers", "node1"}, noEnv)
	assert.Error(t, err)
}

func TestParsePeers(t *testing.T) {
	members, err := ParsePeers(" a=h1:1, b=h2:2 ,")
	require.NoError(t, err)
	assert.Equal(t, []membership.Member{{ID: "a", Address: "h1:1"}, {ID: "b", Address: "h2:2"}}, members)

	_, err = ParsePeers("a=h1:1,a=h2:2")
	assert.Error(t, err)

	_, err = ParsePeers("=h1:1")
	assert.Error(t, err)
}

func TestResolveNodeIDGeneratesAndPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{DataDir: dir}
	require.NoError(t, cfg.ResolveNodeID())
	_, err := uuid.Parse(cfg.NodeID)
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, nodeIDFile))
	require.NoError(t, err)
	assert.Equal(t, cfg.NodeID+"\n", string(stored))

	restarted := Config{DataDir: dir}
	require.NoError(t, restarted.ResolveNodeID())
	assert.Equal(t, cfg.NodeID, restarted.NodeID)
}

func TestResolveNodeIDRejectsForeignDataDir(t *testing.T) {
	dir := t.TempDir()
	first := Config{DataDir: dir, NodeID: "node1"}
	require.NoError(t, first.ResolveNodeID())

	second := Config{DataDir: dir, NodeID: "node2"}
	assert.Error(t, second.ResolveNodeID())
}

func validConfig() Config {
	cfg := Default()
	cfg.NodeID = "node1"
	cfg.ListenAddr = "localhost:5001"
	cfg.Peers = []membership.Member{
		{ID: "node1", Address: "localhost:5001"},
		{ID: "node2", Address: "localhost:5002"},
		{ID: "node3", Address: "localhost:5003"},
	}
	return cfg
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := map[string]func(*Config){
		"missing id":           func(c *Config) { c.NodeID = "" },
		"heartbeat too slow":   func(c *Config) { c.HeartbeatInterval = 200 * time.Millisecond },
		"heartbeat too fast":   func(c *Config) { c.HeartbeatInterval = 10 * time.Millisecond },
		"rpc timeout too long": func(c *Config) { c.RPCTimeout = time.Second },
		"rpc timeout equals election timeout": func(c *Config) {
			c.RPCTimeout = c.ElectionTimeout
		},
		"rpc timeout leaves no heartbeat": func(c *Config) {
			c.RPCTimeout = c.ElectionTimeout - c.HeartbeatInterval
		},
		"unknown read mode":    func(c *Config) { c.ReadMode = "eventual" },
		"no peers":             func(c *Config) { c.Peers = nil },
		"not a member":         func(c *Config) { c.NodeID = "node4" },
		"member joining":       func(c *Config) { c.Join = true },
		"wrong listen address": func(c *Config) { c.ListenAddr = "localhost:6001" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	joining := validConfig()
	joining.NodeID = "node4"
	joining.ListenAddr = "localhost:5004"
	joining.Join = true
	assert.NoError(t, joining.Validate())
}
