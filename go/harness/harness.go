// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package harness provides a host double for unit-testing contract logic
// without a live chain. Storage reads may be answered from a local override
// map or by a node of a real network; all other capabilities return
// deterministic placeholder values.
package harness

import (
	"sync"
	"time"

	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/Fantom-foundation/hostsim/go/remote"
	"github.com/ethereum/go-ethereum/log"
)

var _ host.Host = (*Harness)(nil)

// Harness implements all host capabilities for a single simulated contract
// invocation. Its configuration is fixed at construction; create instances
// using a Builder. A Harness may be used by multiple goroutines.
type Harness struct {
	sender      host.Address
	contract    host.Address
	endpoint    string
	pinnedBlock *uint64
	storage     Storage
	baseFee     host.Value
	timestamp   uint64
	timeout     time.Duration
	order       ResolutionOrder
	cacheSize   int
	dialer      remote.Dialer
	logger      log.Logger

	mu         sync.Mutex
	reader     host.StorageReader       // once set, never replaced until Close
	owned      host.StorageReaderCloser // reader established by the harness itself
	dialNeeded bool                     // an endpoint was configured but is not connected
}

// NetworkEndpoint returns the configured endpoint, or DefaultEndpoint.
func (h *Harness) NetworkEndpoint() string {
	return h.endpoint
}

// PinnedBlock returns the block remote storage is read at, if any.
func (h *Harness) PinnedBlock() (uint64, bool) {
	if h.pinnedBlock == nil {
		return 0, false
	}
	return *h.pinnedBlock, true
}

// Connected reports whether a remote storage source is available.
func (h *Harness) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reader != nil
}

// Close releases the network connection established by the harness. After
// closing, storage is resolved from the local map only.
func (h *Harness) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.owned != nil {
		h.owned.Close()
	}
	h.reader = nil
	h.owned = nil
	h.dialNeeded = false
}

// --- MessageAccess ---

func (h *Harness) Sender() host.Address {
	return h.sender
}

func (h *Harness) IsReentrant() bool {
	return false
}

func (h *Harness) Value() host.Value {
	return host.Value{}
}

func (h *Harness) Origin() host.Address {
	return host.Address{}
}

// --- CalldataAccess ---

func (h *Harness) Args(int) host.Data {
	return host.Data{}
}

func (h *Harness) ReadReturnData(int, *int) host.Data {
	return host.Data{}
}

func (h *Harness) ReturnDataLen() int {
	return 0
}

func (h *Harness) EmitOutput(host.Data) {}

// --- DeploymentAccess ---

func (h *Harness) Create1() {}

func (h *Harness) Create2() {}

// --- StorageAccess (see storage.go for Load) ---

// Cache discards the write; storage of the harness is read-only.
func (h *Harness) Cache(host.Key, host.Word) {}

func (h *Harness) FlushCache(bool) {}

func (h *Harness) EmitLog(host.Data) {}

// --- CallAccess ---

func (h *Harness) Call() {}

func (h *Harness) StaticCall() {}

func (h *Harness) DelegateCall() {}

// --- BlockAccess ---

func (h *Harness) BaseFee() host.Value {
	return h.baseFee
}

func (h *Harness) Coinbase() host.Address {
	return host.Address{}
}

// Number returns the pinned block, or zero if storage is read at the latest
// block.
func (h *Harness) Number() uint64 {
	block, _ := h.PinnedBlock()
	return block
}

func (h *Harness) Timestamp() uint64 {
	return h.timestamp
}

func (h *Harness) GasLimit() uint64 {
	return 0
}

// --- ChainAccess ---

func (h *Harness) ChainId() uint64 {
	return 0
}

// --- AccountAccess ---

func (h *Harness) Balance(host.Address) host.Value {
	return host.Value{}
}

// SelfAddress returns the address of the contract under test.
func (h *Harness) SelfAddress() host.Address {
	return h.contract
}

func (h *Harness) Code(host.Address) host.Code {
	return host.Code{}
}

func (h *Harness) CodeSize(host.Address) int {
	return 0
}

func (h *Harness) CodeHash(host.Address) host.Hash {
	return host.Hash{}
}

// --- MemoryAccess ---

func (h *Harness) PayForGrowth(uint16) {}

// --- MeteringAccess ---

func (h *Harness) GasLeft() uint64 {
	return 0
}

func (h *Harness) InkLeft() uint64 {
	return 0
}

func (h *Harness) GasPrice() host.Value {
	return host.Value{}
}

func (h *Harness) InkPrice() uint32 {
	return 0
}

// --- CryptographyAccess ---

// Keccak256 returns the zero hash for any input. It is a placeholder, not a
// hash function; tests must not depend on its result.
func (h *Harness) Keccak256(host.Data) host.Hash {
	return host.Hash{}
}
