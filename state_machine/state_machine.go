package state_machine

import (
	"context"

	"github.com/golang/protobuf/ptypes/any"
	"github.com/r-moraru/cluster-consensus/proto/entries"
)

type ApplyResult struct {
	Result *any.Any
	Error  error
}

// StateMachine receives every committed entry exactly in index order. Apply
// may be called again for entries it has already seen after a restart.
type StateMachine interface {
	Apply(entry *entries.LogEntry) error
	GetLastApplied() uint64
	WaitForResult(ctx context.Context, clientID string, serializationID uint64) chan ApplyResult
	Get(key string) (string, bool)
}
