package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/r-moraru/cluster-consensus/config"
	"github.com/r-moraru/cluster-consensus/log/file_log"
	"github.com/r-moraru/cluster-consensus/network/raft_network"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/node/raft_node"
	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/r-moraru/cluster-consensus/proto/raft_service"
	"github.com/r-moraru/cluster-consensus/raft_server"
	"github.com/r-moraru/cluster-consensus/state_machine/kv_store"
	"github.com/r-moraru/cluster-consensus/storage/file_store"
	"google.golang.org/grpc"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Node stopped.", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := cfg.ResolveNodeID(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger = logger.With("node_id", cfg.NodeID)

	raftLog, err := file_log.Open(filepath.Join(cfg.DataDir, "log"))
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer raftLog.Close()
	stable, err := file_store.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open hard state: %w", err)
	}
	stateMachine := kv_store.New()

	network := raft_network.New(cfg.NodeID, logger)
	defer network.Close()

	raftNode, err := raft_node.New(raft_node.Config{
		ElectionTimeout:   cfg.ElectionTimeout,
		HeartbeatInterval: cfg.HeartbeatInterval,
		RPCTimeout:        cfg.RPCTimeout,
		MaxAppendEntries:  cfg.MaxAppendEntries,
		Address:           cfg.AdvertiseHTTP,
		Members:           cfg.Peers,
		Logger:            logger,
	}, raftLog, stable, stateMachine, network)
	if err != nil {
		return err
	}
	raftNode.Subscribe(func(change node.LeadershipChange) {
		if change.IsLeader {
			logger.Info("Became leader.", "term", change.Term)
			return
		}
		logger.Info("Leader changed.", "term", change.Term, "leader_id", change.LeaderID)
	}, func(entry *entries.LogEntry) {
		if entry.GetType() == entries.EntryType_CONFIG_CHANGE {
			logger.Info("Configuration change applied.", "index", entry.GetIndex())
		}
	})

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}
	grpcServer := grpc.NewServer()
	raft_service.RegisterRaftServiceServer(grpcServer, raft_network.NewRaftService(raftNode))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errs := make(chan error, 3)

	go func() {
		logger.Info("Serving raft rpcs.", "address", cfg.ListenAddr)
		errs <- grpcServer.Serve(listener)
	}()
	go func() {
		server := raft_server.New(raftNode, stateMachine, cfg.ReadMode, cfg.RequestTimeout, logger)
		errs <- server.Run(ctx, cfg.HTTPAddr)
	}()
	go func() {
		errs <- raftNode.Run(ctx)
	}()

	var firstErr error
	for i := 0; i < cap(errs); i++ {
		if err := <-errs; err != nil && firstErr == nil && !errors.Is(err, grpc.ErrServerStopped) {
			firstErr = err
		}
		if i == 0 {
			cancel()
			grpcServer.GracefulStop()
		}
	}
	return firstErr
}
