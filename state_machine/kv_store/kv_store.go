package kv_store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang/protobuf/ptypes/any"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/state_machine"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	ErrInvalidIndex = errors.New("index is invalid, must be lastApplied + 1")
	ErrBadRequest   = errors.New("bad request format")
)

const (
	writeRequest  = "write"
	readRequest   = "read"
	deleteRequest = "delete"
)

type request struct {
	RequestType string
	Key         string
	Value       string
}

type response struct {
	Success  bool
	KeyFound bool
	Value    string
}

// KvStore is an in-memory string map driven by committed log entries.
// Results are kept per (clientID, serializationID) so a command that is
// committed twice is executed once.
type KvStore struct {
	mu          sync.RWMutex
	lastApplied uint64
	store       map[string]string
	status      map[string]map[uint64]state_machine.ApplyResult
	applied     chan struct{}
}

func New() *KvStore {
	return &KvStore{
		store:   make(map[string]string),
		status:  make(map[string]map[uint64]state_machine.ApplyResult),
		applied: make(chan struct{}),
	}
}

func WriteCommand(key, value string) (*anypb.Any, error) {
	return encodeRequest(request{RequestType: writeRequest, Key: key, Value: value})
}

func ReadCommand(key string) (*anypb.Any, error) {
	return encodeRequest(request{RequestType: readRequest, Key: key})
}

func DeleteCommand(key string) (*anypb.Any, error) {
	return encodeRequest(request{RequestType: deleteRequest, Key: key})
}

func encodeRequest(req request) (*anypb.Any, error) {
	if err := checkRequest(&req); err != nil {
		return nil, err
	}
	payload, err := structpb.NewStruct(map[string]interface{}{
		"request_type": req.RequestType,
		"key":          req.Key,
		"value":        req.Value,
	})
	if err != nil {
		return nil, err
	}
	return anypb.New(payload)
}

func decodeRequest(command *any.Any) (*request, error) {
	if command == nil {
		return nil, fmt.Errorf("%w: empty command", ErrBadRequest)
	}
	payload := &structpb.Struct{}
	if err := command.UnmarshalTo(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	fields := payload.GetFields()
	req := &request{
		RequestType: fields["request_type"].GetStringValue(),
		Key:         fields["key"].GetStringValue(),
		Value:       fields["value"].GetStringValue(),
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func checkRequest(req *request) error {
	switch req.RequestType {
	case writeRequest, readRequest, deleteRequest:
	default:
		return fmt.Errorf("%w: unknown request type %q", ErrBadRequest, req.RequestType)
	}
	if req.Key == "" {
		return fmt.Errorf("%w: empty key", ErrBadRequest)
	}
	return nil
}

// DecodeResult unpacks the result of an applied command.
func DecodeResult(result *any.Any) (success, keyFound bool, value string, err error) {
	payload := &structpb.Struct{}
	if err := result.UnmarshalTo(payload); err != nil {
		return false, false, "", err
	}
	fields := payload.GetFields()
	return fields["success"].GetBoolValue(), fields["key_found"].GetBoolValue(), fields["value"].GetStringValue(), nil
}

func (r response) encode() (*any.Any, error) {
	payload, err := structpb.NewStruct(map[string]interface{}{
		"success":   r.Success,
		"key_found": r.KeyFound,
		"value":     r.Value,
	})
	if err != nil {
		return nil, err
	}
	return anypb.New(payload)
}

func (s *KvStore) processRequestLocked(req *request) response {
	resp := response{}
	switch req.RequestType {
	case writeRequest:
		s.store[req.Key] = req.Value
		resp.Success = true
	case readRequest:
		resp.Value, resp.KeyFound = s.store[req.Key]
		resp.Success = true
	case deleteRequest:
		_, resp.KeyFound = s.store[req.Key]
		delete(s.store, req.Key)
		resp.Success = true
	}
	return resp
}

func (s *KvStore) Apply(entry *entries.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Index <= s.lastApplied {
		return nil
	}
	if entry.Index != s.lastApplied+1 {
		return fmt.Errorf("%w: got %d, last applied %d", ErrInvalidIndex, entry.Index, s.lastApplied)
	}
	if entry.Type == entries.EntryType_NORMAL {
		s.applyCommandLocked(entry)
	}
	s.lastApplied = entry.Index
	close(s.applied)
	s.applied = make(chan struct{})
	return nil
}

func (s *KvStore) applyCommandLocked(entry *entries.LogEntry) {
	if entry.ClientID != "" {
		if _, found := s.status[entry.ClientID][entry.SerializationID]; found {
			slog.Debug("Skipping duplicate command.", "client_id", entry.ClientID, "serialization_id", entry.SerializationID, "index", entry.Index)
			return
		}
	}

	var result state_machine.ApplyResult
	req, err := decodeRequest(entry.Command)
	if err != nil {
		slog.Warn("Rejecting malformed command.", "index", entry.Index, "error", err)
		result.Error = err
	} else {
		result.Result, result.Error = s.processRequestLocked(req).encode()
	}

	if entry.ClientID == "" {
		return
	}
	if _, found := s.status[entry.ClientID]; !found {
		s.status[entry.ClientID] = make(map[uint64]state_machine.ApplyResult)
	}
	s.status[entry.ClientID][entry.SerializationID] = result
}

func (s *KvStore) GetLastApplied() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastApplied
}

func (s *KvStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, found := s.store[key]
	return val, found
}

func (s *KvStore) getResult(clientID string, serializationID uint64) (state_machine.ApplyResult, bool, chan struct{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, found := s.status[clientID][serializationID]
	return result, found, s.applied
}

func (s *KvStore) WaitForResult(ctx context.Context, clientID string, serializationID uint64) chan state_machine.ApplyResult {
	resChan := make(chan state_machine.ApplyResult, 1)

	go func() {
		for {
			result, found, applied := s.getResult(clientID, serializationID)
			if found {
				resChan <- result
				return
			}
			select {
			case <-ctx.Done():
				resChan <- state_machine.ApplyResult{Error: ctx.Err()}
				return
			case <-applied:
			}
		}
	}()

	return resChan
}
