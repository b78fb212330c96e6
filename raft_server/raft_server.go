package raft_server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/r-moraru/cluster-consensus/membership"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/state_machine"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
)

type ReplicationRequest struct {
	ClientID        string          `json:"client_id"`
	SerializationID uint64          `json:"serialization_id"`
	Command         json.RawMessage `json:"command"`
}

// ReplicationResponse is node.ReplicationResponse with the result rendered
// as protojson.
type ReplicationResponse struct {
	node.ReplicationResponse
	Result json.RawMessage `json:"result,omitempty"`
}

type AddNodeRequest struct {
	NodeID  string `json:"node_id"`
	Address string `json:"address"`
}

type ErrorResponse struct {
	Error         string `json:"error"`
	LeaderID      string `json:"leader_id,omitempty"`
	LeaderAddress string `json:"leader_address,omitempty"`
	Retryable     bool   `json:"retryable"`
}

type RaftServer struct {
	Node         node.Node
	StateMachine state_machine.StateMachine
	ReadMode     ReadMode
	// RequestTimeout bounds how long a request waits for replication.
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

func New(raftNode node.Node, stateMachine state_machine.StateMachine, readMode ReadMode, requestTimeout time.Duration, logger *slog.Logger) *RaftServer {
	return &RaftServer{
		Node:           raftNode,
		StateMachine:   stateMachine,
		ReadMode:       readMode,
		RequestTimeout: requestTimeout,
		Logger:         logger,
	}
}

func (s *RaftServer) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *RaftServer) requestContext(req *http.Request) (context.Context, context.CancelFunc) {
	if s.RequestTimeout <= 0 {
		return context.WithCancel(req.Context())
	}
	return context.WithTimeout(req.Context(), s.RequestTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	res, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal error sending response.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(res)
}

func (s *RaftServer) writeError(w http.ResponseWriter, err error) {
	res := ErrorResponse{Error: err.Error(), Retryable: node.IsRetryable(err)}
	status := http.StatusInternalServerError

	var notLeader *node.NotLeaderError
	var inProgress *node.ConfigurationChangeInProgressError
	switch {
	case errors.As(err, &notLeader):
		status = http.StatusMisdirectedRequest
		res.LeaderID = notLeader.LeaderID
		res.LeaderAddress = notLeader.LeaderAddress
	case errors.As(err, &inProgress):
		status = http.StatusConflict
		res.Retryable = true
	case errors.Is(err, membership.ErrAlreadyMember), errors.Is(err, membership.ErrNotMember), errors.Is(err, membership.ErrInvalidChange):
		status = http.StatusBadRequest
	case res.Retryable, errors.Is(err, node.ErrNodeHalted):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		res.Retryable = true
	default:
		s.logger().Error("Request failed.", "error", err)
	}
	writeJSON(w, status, res)
}

func (s *RaftServer) CreateReplicationHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := s.requestContext(req)
		defer cancel()

		replicationRequest := new(ReplicationRequest)
		if err := json.NewDecoder(req.Body).Decode(replicationRequest); err != nil {
			http.Error(w, "Unable to decode replication request.", http.StatusBadRequest)
			return
		}
		command := new(anypb.Any)
		if err := protojson.Unmarshal(replicationRequest.Command, command); err != nil {
			http.Error(w, "Unable to decode replication command.", http.StatusBadRequest)
			return
		}

		replicationResponse, err := s.HandleReplicationRequest(
			ctx,
			replicationRequest.ClientID,
			replicationRequest.SerializationID,
			command,
		)
		if err != nil {
			s.writeError(w, err)
			return
		}

		res := ReplicationResponse{ReplicationResponse: replicationResponse}
		if replicationResponse.Result != nil {
			res.Result, err = protojson.Marshal(replicationResponse.Result)
			if err != nil {
				http.Error(w, "Internal error encoding result.", http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *RaftServer) CreateQueryHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := s.requestContext(req)
		defer cancel()

		key := req.URL.Query().Get("key")
		if key == "" {
			http.Error(w, "Missing key.", http.StatusBadRequest)
			return
		}
		var mode ReadMode
		if raw := req.URL.Query().Get("mode"); raw != "" {
			var err error
			if mode, err = ParseReadMode(raw); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		res, err := s.HandleQueryRequest(ctx, key, mode)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *RaftServer) CreateAddNodeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := s.requestContext(req)
		defer cancel()

		addNodeRequest := new(AddNodeRequest)
		if err := json.NewDecoder(req.Body).Decode(addNodeRequest); err != nil {
			http.Error(w, "Unable to decode add node request.", http.StatusBadRequest)
			return
		}
		res, err := s.HandleAddNode(ctx, addNodeRequest.NodeID, addNodeRequest.Address)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *RaftServer) CreateRemoveNodeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := s.requestContext(req)
		defer cancel()

		res, err := s.HandleRemoveNode(ctx, req.PathValue("id"))
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *RaftServer) CreateStatusHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, s.HandleStatusRequest())
	}
}

func (s *RaftServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /replicate", s.CreateReplicationHandler())
	mux.HandleFunc("GET /read", s.CreateQueryHandler())
	mux.HandleFunc("POST /members", s.CreateAddNodeHandler())
	mux.HandleFunc("DELETE /members/{id}", s.CreateRemoveNodeHandler())
	mux.HandleFunc("GET /status", s.CreateStatusHandler())
	return mux
}

// Run serves the client API on listenAddr until ctx is cancelled.
func (s *RaftServer) Run(ctx context.Context, listenAddr string) error {
	server := &http.Server{Addr: listenAddr, Handler: s.Handler()}
	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	})
	defer stop()

	s.logger().Info("Serving client API.", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
