package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/raft_server"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
)

const (
	ReplicatePath = "/replicate"
	ReadPath      = "/read"
	MembersPath   = "/members"
	StatusPath    = "/status"

	clientIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	clientIDLength   = 16
)

var ErrNoLeader = errors.New("no leader reachable")

// RaftClient talks to a cluster through any of its nodes and follows leader
// hints. Every command gets one serialization id that is reused across
// retries, so a command committed twice is applied once.
type RaftClient struct {
	Client
	clientID  string
	endpoints []string
	attempts  int
	backoff   time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	serial  uint64
	current string
}

func NewRaftClient(endpoints []string, timeout time.Duration, logger *slog.Logger) (*RaftClient, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("at least one endpoint is required")
	}
	clientID, err := gonanoid.Generate(clientIDAlphabet, clientIDLength)
	if err != nil {
		return nil, fmt.Errorf("generate client id: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	normalized := make([]string, 0, len(endpoints))
	for _, endpoint := range endpoints {
		normalized = append(normalized, baseURL(endpoint))
	}
	return &RaftClient{
		Client:    Client{httpClient: &http.Client{Timeout: timeout}},
		clientID:  clientID,
		endpoints: normalized,
		attempts:  10,
		backoff:   100 * time.Millisecond,
		logger:    logger.With("client_id", clientID),
		current:   normalized[0],
	}, nil
}

func baseURL(address string) string {
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return strings.TrimSuffix(address, "/")
}

func (c *RaftClient) ClientID() string {
	return c.clientID
}

func (c *RaftClient) nextSerial() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serial++
	return c.serial
}

func (c *RaftClient) target() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// redirect moves to the hinted leader, or to the next endpoint without one.
func (c *RaftClient) redirect(leaderAddress string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if leaderAddress != "" {
		c.current = baseURL(leaderAddress)
		return
	}
	for i, endpoint := range c.endpoints {
		if endpoint == c.current {
			c.current = c.endpoints[(i+1)%len(c.endpoints)]
			return
		}
	}
	c.current = c.endpoints[0]
}

func (c *RaftClient) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.backoff):
		return nil
	}
}

// retry runs call against the current target until it succeeds, fails for
// good or the attempts run out.
func (c *RaftClient) retry(ctx context.Context, call func(target string) (done bool, err error)) error {
	var lastErr error = ErrNoLeader
	for attempt := 0; attempt < c.attempts; attempt++ {
		target := c.target()
		done, err := call(target)
		if done {
			return err
		}
		if err != nil {
			lastErr = err
			var statusErr *StatusError
			switch {
			case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusMisdirectedRequest:
				c.redirect(statusErr.Body.LeaderAddress)
			case errors.As(err, &statusErr) && !statusErr.Body.Retryable:
				return err
			case !errors.As(err, &statusErr):
				c.logger.Debug("Node unreachable.", "target", target, "error", err)
				c.redirect("")
			}
		}
		if err := c.wait(ctx); err != nil {
			return err
		}
	}
	return lastErr
}

// Replicate submits command and returns once it was applied, failed to apply
// or the retries ran out.
func (c *RaftClient) Replicate(ctx context.Context, command *anypb.Any) (*raft_server.ReplicationResponse, error) {
	commandJSON, err := protojson.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("encode command: %w", err)
	}
	payload := raft_server.ReplicationRequest{
		ClientID:        c.clientID,
		SerializationID: c.nextSerial(),
		Command:         commandJSON,
	}

	var res *raft_server.ReplicationResponse
	err = c.retry(ctx, func(target string) (bool, error) {
		res = new(raft_server.ReplicationResponse)
		if err := c.post(ctx, target+ReplicatePath, payload, res); err != nil {
			return false, err
		}
		switch res.ReplicationStatus {
		case node.Replicated, node.ApplyError:
			return true, nil
		case node.NotLeader:
			c.redirect(res.LeaderAddress)
		default:
			c.logger.Debug("Command not applied yet, retrying.", "status", res.ReplicationStatus, "serialization_id", payload.SerializationID)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Result decodes the protojson result of a replicated command.
func Result(res *raft_server.ReplicationResponse) (*anypb.Any, error) {
	if len(res.Result) == 0 {
		return nil, nil
	}
	result := new(anypb.Any)
	if err := protojson.Unmarshal(res.Result, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *RaftClient) Read(ctx context.Context, key string, mode raft_server.ReadMode) (*raft_server.QueryResponse, error) {
	query := url.Values{"key": {key}}
	if mode != "" {
		query.Set("mode", string(mode))
	}
	var res *raft_server.QueryResponse
	err := c.retry(ctx, func(target string) (bool, error) {
		res = new(raft_server.QueryResponse)
		err := c.get(ctx, target+ReadPath+"?"+query.Encode(), res)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *RaftClient) AddNode(ctx context.Context, nodeID, address string) (*raft_server.MembershipResponse, error) {
	var res *raft_server.MembershipResponse
	err := c.retry(ctx, func(target string) (bool, error) {
		res = new(raft_server.MembershipResponse)
		err := c.post(ctx, target+MembersPath, raft_server.AddNodeRequest{NodeID: nodeID, Address: address}, res)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *RaftClient) RemoveNode(ctx context.Context, nodeID string) (*raft_server.MembershipResponse, error) {
	var res *raft_server.MembershipResponse
	err := c.retry(ctx, func(target string) (bool, error) {
		res = new(raft_server.MembershipResponse)
		err := c.delete(ctx, target+MembersPath+"/"+url.PathEscape(nodeID), res)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Status asks one endpoint, without following leader hints.
func (c *RaftClient) Status(ctx context.Context, endpoint string) (json.RawMessage, error) {
	var res json.RawMessage
	if err := c.get(ctx, baseURL(endpoint)+StatusPath, &res); err != nil {
		return nil, err
	}
	return res, nil
}
