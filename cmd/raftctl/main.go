package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/r-moraru/cluster-consensus/clients"
	"github.com/r-moraru/cluster-consensus/node"
	"github.com/r-moraru/cluster-consensus/raft_server"
	"github.com/r-moraru/cluster-consensus/state_machine/kv_store"
	"google.golang.org/protobuf/types/known/anypb"
)

const usage = `usage: raftctl [flags] <command> [args]

commands:
  set <key> <value>
  get <key>
  delete <key>
  add-node <id> <raft address>
  remove-node <id>
  status

flags:
`

func main() {
	var (
		endpoints = flag.String("endpoints", "localhost:8001", "comma separated client api addresses")
		timeout   = flag.Duration("timeout", 10*time.Second, "overall request timeout")
		readMode  = flag.String("read-mode", "", "stale or linearizable, the node default when empty")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	client, err := clients.NewRaftClient(strings.Split(*endpoints, ","), *timeout, nil)
	if err != nil {
		fail(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	args := flag.Args()
	switch args[0] {
	case "set":
		need(args, 3)
		command, err := kv_store.WriteCommand(args[1], args[2])
		if err != nil {
			fail(err)
		}
		replicate(ctx, client, command)
	case "delete":
		need(args, 2)
		command, err := kv_store.DeleteCommand(args[1])
		if err != nil {
			fail(err)
		}
		replicate(ctx, client, command)
	case "get":
		need(args, 2)
		var mode raft_server.ReadMode
		if *readMode != "" {
			if mode, err = raft_server.ParseReadMode(*readMode); err != nil {
				fail(err)
			}
		}
		res, err := client.Read(ctx, args[1], mode)
		if err != nil {
			fail(err)
		}
		if !res.Found {
			fmt.Fprintf(os.Stderr, "%s not found\n", args[1])
			os.Exit(1)
		}
		fmt.Println(res.Value)
	case "add-node":
		need(args, 3)
		res, err := client.AddNode(ctx, args[1], args[2])
		if err != nil {
			fail(err)
		}
		printJSON(res)
	case "remove-node":
		need(args, 2)
		res, err := client.RemoveNode(ctx, args[1])
		if err != nil {
			fail(err)
		}
		printJSON(res)
	case "status":
		for _, endpoint := range strings.Split(*endpoints, ",") {
			res, err := client.Status(ctx, endpoint)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", endpoint, err)
				continue
			}
			fmt.Printf("%s: %s\n", endpoint, res)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}

func replicate(ctx context.Context, client *clients.RaftClient, command *anypb.Any) {
	res, err := client.Replicate(ctx, command)
	if err != nil {
		fail(err)
	}
	if res.ReplicationStatus == node.ApplyError {
		fail(fmt.Errorf("command rejected: %s", res.Error))
	}
	result, err := clients.Result(res)
	if err != nil {
		fail(err)
	}
	if result == nil {
		fmt.Printf("ok index=%d term=%d\n", res.Index, res.Term)
		return
	}
	success, _, _, err := kv_store.DecodeResult(result)
	if err != nil {
		fail(err)
	}
	if !success {
		fail(fmt.Errorf("command failed at index %d", res.Index))
	}
	fmt.Printf("ok index=%d term=%d\n", res.Index, res.Term)
}

func need(args []string, n int) {
	if len(args) != n {
		flag.Usage()
		os.Exit(2)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
