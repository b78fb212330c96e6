// Package membership holds the cluster configuration and the changes that
// are replicated through the log to mutate it.
package membership

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	ErrAlreadyMember = errors.New("node is already a member")
	ErrNotMember     = errors.New("node is not a member")
	ErrInvalidChange = errors.New("invalid configuration change")
)

type Member struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// Configuration is the set of voting members. It is never edited in place
// once published; Apply returns a new value.
type Configuration struct {
	members map[string]string
}

func New(members ...Member) *Configuration {
	c := &Configuration{members: make(map[string]string, len(members))}
	for _, m := range members {
		c.members[m.ID] = m.Address
	}
	return c
}

func (c *Configuration) Contains(id string) bool {
	_, found := c.members[id]
	return found
}

func (c *Configuration) Address(id string) (string, bool) {
	addr, found := c.members[id]
	return addr, found
}

// Voters returns member ids in sorted order.
func (c *Configuration) Voters() []string {
	ids := maps.Keys(c.members)
	slices.Sort(ids)
	return ids
}

func (c *Configuration) Members() []Member {
	members := make([]Member, 0, len(c.members))
	for _, id := range c.Voters() {
		members = append(members, Member{ID: id, Address: c.members[id]})
	}
	return members
}

func (c *Configuration) Size() int {
	return len(c.members)
}

func (c *Configuration) Quorum() int {
	return len(c.members)/2 + 1
}

func (c *Configuration) Clone() *Configuration {
	return &Configuration{members: maps.Clone(c.members)}
}

// Validate reports whether change can be applied to c.
func (c *Configuration) Validate(change Change) error {
	if change.NodeID == "" {
		return fmt.Errorf("%w: empty node id", ErrInvalidChange)
	}
	switch change.Op {
	case AddNode:
		if change.Address == "" {
			return fmt.Errorf("%w: empty address for %s", ErrInvalidChange, change.NodeID)
		}
		if c.Contains(change.NodeID) {
			return fmt.Errorf("add %s: %w", change.NodeID, ErrAlreadyMember)
		}
	case RemoveNode:
		if !c.Contains(change.NodeID) {
			return fmt.Errorf("remove %s: %w", change.NodeID, ErrNotMember)
		}
		if len(c.members) == 1 {
			return fmt.Errorf("%w: cannot remove the last member", ErrInvalidChange)
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidChange, change.Op)
	}
	return nil
}

func (c *Configuration) Apply(change Change) (*Configuration, error) {
	if err := c.Validate(change); err != nil {
		return nil, err
	}
	next := c.Clone()
	switch change.Op {
	case AddNode:
		next.members[change.NodeID] = change.Address
	case RemoveNode:
		delete(next.members, change.NodeID)
	}
	return next, nil
}

type Op string

const (
	AddNode    Op = "add_node"
	RemoveNode Op = "remove_node"
)

type Change struct {
	Op      Op     `json:"op"`
	NodeID  string `json:"node_id"`
	Address string `json:"address,omitempty"`
}

func (c Change) String() string {
	if c.Op == AddNode {
		return fmt.Sprintf("%s %s@%s", c.Op, c.NodeID, c.Address)
	}
	return fmt.Sprintf("%s %s", c.Op, c.NodeID)
}

// ToAny packs the change as a structpb.Struct so it can ride in a log entry.
func (c Change) ToAny() (*anypb.Any, error) {
	payload, err := structpb.NewStruct(map[string]interface{}{
		"op":      string(c.Op),
		"node_id": c.NodeID,
		"address": c.Address,
	})
	if err != nil {
		return nil, err
	}
	return anypb.New(payload)
}

func ChangeFromAny(command *anypb.Any) (Change, error) {
	if command == nil {
		return Change{}, fmt.Errorf("%w: empty command", ErrInvalidChange)
	}
	payload := &structpb.Struct{}
	if err := command.UnmarshalTo(payload); err != nil {
		return Change{}, fmt.Errorf("%w: %v", ErrInvalidChange, err)
	}
	fields := payload.GetFields()
	return Change{
		Op:      Op(fields["op"].GetStringValue()),
		NodeID:  fields["node_id"].GetStringValue(),
		Address: fields["address"].GetStringValue(),
	}, nil
}
