// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package remote provides StorageReader implementations sourcing storage
// values from a node of a real network via its JSON-RPC interface.
package remote

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/hostsim/go/host"

	// geth dependencies
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	ErrEmptyEndpoint     = ConstError("empty endpoint")
	ErrMalformedResponse = ConstError("malformed storage response")
)

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Dialer establishes a connection to the node reachable through the given
// endpoint.
type Dialer func(ctx context.Context, endpoint string) (host.StorageReaderCloser, error)

// Dial connects to the node at the given endpoint. Supported are http(s),
// ws(s) and IPC endpoints. For http endpoints no connection is established
// before the first query, so failures to reach the node are reported by
// StorageAt, not by Dial.
func Dial(ctx context.Context, endpoint string) (host.StorageReaderCloser, error) {
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}
	client, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	log.Debug("Connected to storage node", "endpoint", endpoint)
	return NewReader(client), nil
}

// Reader reads storage slots through the eth_getStorageAt RPC method.
type Reader struct {
	client *ethclient.Client
}

// NewReader wraps an established RPC client. The reader takes ownership of
// the client and closes it on Close.
func NewReader(client *rpc.Client) *Reader {
	return &Reader{client: ethclient.NewClient(client)}
}

func (r *Reader) StorageAt(ctx context.Context, contract host.Address, key host.Key, block *uint64) (host.Word, error) {
	var number *big.Int
	if block != nil {
		number = new(big.Int).SetUint64(*block)
	}
	data, err := r.client.StorageAt(ctx, common.Address(contract), common.Hash(key), number)
	if err != nil {
		return host.Word{}, err
	}
	return decodeWord(data)
}

func (r *Reader) Close() {
	r.client.Close()
}

// decodeWord interprets a storage response. Nodes encode slot values as 32
// bytes; shorter values are accepted as big-endian numbers.
func decodeWord(data []byte) (host.Word, error) {
	var res host.Word
	if len(data) > len(res) {
		return res, fmt.Errorf("%w: %d bytes", ErrMalformedResponse, len(data))
	}
	copy(res[len(res)-len(data):], data)
	return res, nil
}
