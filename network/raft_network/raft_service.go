package raft_network

import (
	"context"

	"github.com/r-moraru/cluster-consensus/network"
	pb "github.com/r-moraru/cluster-consensus/proto/raft_service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RaftService exposes a node's RPC handlers over gRPC.
type RaftService struct {
	pb.UnimplementedRaftServiceServer
	Handler network.Handler
}

func NewRaftService(handler network.Handler) *RaftService {
	return &RaftService{Handler: handler}
}

func (r *RaftService) AppendEntries(ctx context.Context, req *pb.AppendEntriesRequest) (*pb.AppendEntriesResponse, error) {
	reply, err := network.Dispatch(ctx, r.Handler, network.AppendRequest{AppendEntriesRequest: req})
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return reply.(network.AppendResponse).AppendEntriesResponse, nil
}

func (r *RaftService) RequestVote(ctx context.Context, req *pb.RequestVoteRequest) (*pb.RequestVoteResponse, error) {
	reply, err := network.Dispatch(ctx, r.Handler, network.VoteRequest{RequestVoteRequest: req})
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return reply.(network.VoteResponse).RequestVoteResponse, nil
}
