// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package rpctest provides an in-process node serving the subset of the
// Ethereum JSON-RPC API needed to read contract storage. It is intended for
// tests needing a network endpoint without depending on a real network.
package rpctest

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"

	"github.com/Fantom-foundation/hostsim/go/host"

	// geth dependencies
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Query records a single storage request received by a Node.
type Query struct {
	Contract host.Address
	Key      host.Key
	Block    rpc.BlockNumber
}

// Node is a fake network node. Storage is organized per block; queries for
// the latest block or for blocks without explicit content are answered from
// the latest state.
type Node struct {
	server *rpc.Server
	http   *httptest.Server

	mu      sync.Mutex
	latest  map[host.Address]map[host.Key]host.Word
	blocks  map[uint64]map[host.Address]map[host.Key]host.Word
	queries []Query
	failure error
	blocked chan struct{}
	raw     hexutil.Bytes
}

// NewNode creates a node with empty storage. Close must be called to release
// its resources.
func NewNode() *Node {
	node := &Node{
		server: rpc.NewServer(),
		latest: map[host.Address]map[host.Key]host.Word{},
		blocks: map[uint64]map[host.Address]map[host.Key]host.Word{},
	}
	if err := node.server.RegisterName("eth", &ethService{node: node}); err != nil {
		panic(err)
	}
	return node
}

// URL starts serving the node over HTTP, if not done before, and returns
// the endpoint to be used for connecting to it.
func (n *Node) URL() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.http == nil {
		n.http = httptest.NewServer(n.server)
	}
	return n.http.URL
}

// Client creates an in-process client connected to this node.
func (n *Node) Client() *rpc.Client {
	return rpc.DialInProc(n.server)
}

// SetStorage defines the value of a slot in the latest state.
func (n *Node) SetStorage(contract host.Address, key host.Key, value host.Word) {
	n.mu.Lock()
	defer n.mu.Unlock()
	setSlot(n.latest, contract, key, value)
}

// SetStorageAt defines the value of a slot at the given block.
func (n *Node) SetStorageAt(block uint64, contract host.Address, key host.Key, value host.Word) {
	n.mu.Lock()
	defer n.mu.Unlock()
	state, found := n.blocks[block]
	if !found {
		state = map[host.Address]map[host.Key]host.Word{}
		n.blocks[block] = state
	}
	setSlot(state, contract, key, value)
}

// SetFailure makes all subsequent queries fail with the given error. A nil
// error restores normal operation.
func (n *Node) SetFailure(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failure = err
}

// SetRawResponse makes all subsequent queries return the given bytes
// instead of stored values.
func (n *Node) SetRawResponse(data []byte) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.raw = data
}

// Block makes queries hang until the returned function is called or the
// request context is done.
func (n *Node) Block() (release func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	blocked := make(chan struct{})
	n.blocked = blocked
	var once sync.Once
	return func() {
		once.Do(func() { close(blocked) })
	}
}

// Queries returns all storage queries received so far.
func (n *Node) Queries() []Query {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Query(nil), n.queries...)
}

func (n *Node) Close() {
	n.mu.Lock()
	server := n.http
	n.mu.Unlock()
	if server != nil {
		server.Close()
	}
	n.server.Stop()
}

func setSlot(state map[host.Address]map[host.Key]host.Word, contract host.Address, key host.Key, value host.Word) {
	storage, found := state[contract]
	if !found {
		storage = map[host.Key]host.Word{}
		state[contract] = storage
	}
	storage[key] = value
}

type ethService struct {
	node *Node
}

// GetStorageAt serves eth_getStorageAt.
func (s *ethService) GetStorageAt(ctx context.Context, address common.Address, key common.Hash, block rpc.BlockNumber) (hexutil.Bytes, error) {
	n := s.node
	n.mu.Lock()
	n.queries = append(n.queries, Query{Contract: host.Address(address), Key: host.Key(key), Block: block})
	blocked, failure, raw := n.blocked, n.failure, n.raw
	n.mu.Unlock()

	if blocked != nil {
		select {
		case <-blocked:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if failure != nil {
		return nil, failure
	}
	if raw != nil {
		return raw, nil
	}
	if block < 0 && block != rpc.LatestBlockNumber {
		return nil, errors.New("unsupported block tag")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	state := n.latest
	if block >= 0 {
		if pinned, found := n.blocks[uint64(block)]; found {
			state = pinned
		}
	}
	value := state[host.Address(address)][host.Key(key)]
	return value[:], nil
}
