// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package harness

import (
	"time"

	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/Fantom-foundation/hostsim/go/remote"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/exp/maps"
)

const (
	// DefaultEndpoint is the endpoint reported by harnesses built without an
	// explicit one. It is not contacted unless configured explicitly.
	DefaultEndpoint = "https://sepolia-rollup.arbitrum.io/rpc"

	// DefaultQueryTimeout bounds each remote storage query.
	DefaultQueryTimeout = 10 * time.Second
)

// Storage is a collection of storage slots grouped by contract.
type Storage map[host.Address]map[host.Key]host.Word

// Builder accumulates the configuration of a Harness. A Builder is a value;
// every With method returns an updated copy and leaves the receiver
// unchanged, so partially configured builders may be shared between tests.
// Setting options has no side effects, connections are established by Build.
type Builder struct {
	sender      *host.Address
	contract    *host.Address
	endpoint    *string
	pinnedBlock *uint64
	storage     Storage
	baseFee     *host.Value
	timestamp   *uint64
	timeout     *time.Duration
	order       ResolutionOrder
	cacheSize   int
	reader      host.StorageReader
	dialer      remote.Dialer
	logger      log.Logger
}

func NewBuilder() Builder {
	return Builder{}
}

// WithSender sets the address reported as message sender.
func (b Builder) WithSender(sender host.Address) Builder {
	b.sender = &sender
	return b
}

// WithContractAddress sets the address of the contract under test. Storage
// is resolved for this address.
func (b Builder) WithContractAddress(contract host.Address) Builder {
	b.contract = &contract
	return b
}

// WithNetworkEndpoint sets the endpoint of a node storage is read from and
// optionally the block to read it at. A nil block refers to the latest block.
func (b Builder) WithNetworkEndpoint(url string, pinnedBlock *uint64) Builder {
	b.endpoint = &url
	b.pinnedBlock = nil
	if pinnedBlock != nil {
		block := *pinnedBlock
		b.pinnedBlock = &block
	}
	return b
}

// WithPinnedBlock sets the block remote storage is read at.
func (b Builder) WithPinnedBlock(block uint64) Builder {
	b.pinnedBlock = &block
	return b
}

// WithStorage defines the value of a single slot in the local storage.
func (b Builder) WithStorage(contract host.Address, key host.Key, value host.Word) Builder {
	b.storage = cloneStorage(b.storage)
	if b.storage == nil {
		b.storage = Storage{}
	}
	slots, found := b.storage[contract]
	if !found {
		slots = map[host.Key]host.Word{}
		b.storage[contract] = slots
	}
	slots[key] = value
	return b
}

// WithStorageMap replaces the local storage by a copy of the given one.
func (b Builder) WithStorageMap(storage Storage) Builder {
	b.storage = cloneStorage(storage)
	return b
}

func (b Builder) WithBaseFee(fee host.Value) Builder {
	b.baseFee = &fee
	return b
}

func (b Builder) WithTimestamp(timestamp uint64) Builder {
	b.timestamp = &timestamp
	return b
}

// WithQueryTimeout bounds the duration of each remote storage query. Zero
// disables the bound.
func (b Builder) WithQueryTimeout(timeout time.Duration) Builder {
	b.timeout = &timeout
	return b
}

// WithResolutionOrder selects whether remote or local storage takes
// precedence. The default is NetworkFirst.
func (b Builder) WithResolutionOrder(order ResolutionOrder) Builder {
	b.order = order
	return b
}

// WithRemoteCache retains up to size remote slot values read through the
// connection established by the harness. Zero, the default, disables
// caching. Readers set through WithStorageReader are never cached.
func (b Builder) WithRemoteCache(size int) Builder {
	b.cacheSize = size
	return b
}

// WithStorageReader makes the harness read remote storage through the given
// reader instead of connecting to an endpoint. The harness does not close
// the reader.
func (b Builder) WithStorageReader(reader host.StorageReader) Builder {
	b.reader = reader
	return b
}

// WithDialer replaces the function used for connecting to endpoints.
func (b Builder) WithDialer(dialer remote.Dialer) Builder {
	b.dialer = dialer
	return b
}

func (b Builder) WithLogger(logger log.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a harness from the accumulated configuration. Unset fields
// are filled with defaults. If an endpoint was configured, a connection is
// attempted; failing to connect is not an error, the harness retries on the
// first storage access and reads zero values until it succeeds.
func (b Builder) Build() (*Harness, error) {
	timeout := valueOr(b.timeout, DefaultQueryTimeout)
	if timeout < 0 {
		return nil, ErrInvalidTimeout
	}
	if b.cacheSize < 0 {
		return nil, ErrInvalidCacheSize
	}

	h := &Harness{
		sender:      valueOr(b.sender, host.Address{}),
		contract:    valueOr(b.contract, host.Address{}),
		endpoint:    valueOr(b.endpoint, DefaultEndpoint),
		dialNeeded:  b.endpoint != nil && *b.endpoint != "",
		pinnedBlock: b.pinnedBlock,
		storage:     cloneStorage(b.storage),
		baseFee:     valueOr(b.baseFee, host.Value{}),
		timestamp:   valueOr(b.timestamp, 0),
		timeout:     timeout,
		order:       b.order,
		cacheSize:   b.cacheSize,
		dialer:      b.dialer,
		logger:      b.logger,
	}
	if h.storage == nil {
		h.storage = Storage{}
	}
	if h.dialer == nil {
		h.dialer = remote.Dial
	}
	if h.logger == nil {
		h.logger = log.Root()
	}
	h.logger = h.logger.With("contract", h.contract)

	if b.reader != nil {
		h.reader = b.reader
		h.dialNeeded = false
	} else if h.dialNeeded {
		h.connect()
	}
	return h, nil
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}

func cloneStorage(storage Storage) Storage {
	if storage == nil {
		return nil
	}
	res := make(Storage, len(storage))
	for contract, slots := range storage {
		res[contract] = maps.Clone(slots)
	}
	return res
}

