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
	"context"
	"fmt"

	"github.com/Fantom-foundation/hostsim/go/bridge"
	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/Fantom-foundation/hostsim/go/remote"
)

// ResolutionOrder defines which storage source is consulted first.
type ResolutionOrder int

const (
	// NetworkFirst answers every read from the network whenever a connection
	// is available; local storage is only used without one. Local overrides
	// are thus unreachable for harnesses connected to a node.
	NetworkFirst ResolutionOrder = iota
	// LocalFirst answers reads of slots present in the local storage locally
	// and forwards all other reads to the network, if available.
	LocalFirst
)

func (o ResolutionOrder) String() string {
	switch o {
	case NetworkFirst:
		return "network-first"
	case LocalFirst:
		return "local-first"
	}
	return fmt.Sprintf("ResolutionOrder(%d)", o)
}

// Source identifies where the value of a storage read came from.
type Source int

const (
	// SourceDefault marks the zero value of a slot neither the network nor
	// the local storage provided a value for.
	SourceDefault Source = iota
	SourceLocal
	SourceRemote
	// SourceRemoteFailed marks the zero value substituted for a failed or
	// timed out network query.
	SourceRemoteFailed
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceLocal:
		return "local"
	case SourceRemote:
		return "remote"
	case SourceRemoteFailed:
		return "remote-failed"
	}
	return fmt.Sprintf("Source(%d)", s)
}

// Load reads the storage slot with the given key of the contract under test.
// It never fails: slots without a value and failed network queries read as
// zero. Use LoadSlot to tell these cases apart.
func (h *Harness) Load(key host.Key) host.Word {
	value, _ := h.LoadSlot(key)
	return value
}

// LoadSlot resolves the given slot of the contract under test and reports
// the source of the result.
func (h *Harness) LoadSlot(key host.Key) (host.Word, Source) {
	value, source := h.resolve(key)
	h.logger.Trace("Resolved storage slot", "key", key, "value", value, "source", source)
	return value, source
}

func (h *Harness) resolve(key host.Key) (host.Word, Source) {
	if h.order == LocalFirst {
		if value, found := h.localSlot(key); found {
			return value, SourceLocal
		}
	}
	if reader := h.connection(); reader != nil {
		return h.remoteSlot(reader, key)
	}
	if value, found := h.localSlot(key); found {
		return value, SourceLocal
	}
	return host.Word{}, SourceDefault
}

func (h *Harness) localSlot(key host.Key) (host.Word, bool) {
	value, found := h.storage[h.contract][key]
	return value, found
}

// remoteSlot queries the slot from the network, blocking until the result
// is available or the query timeout expired.
func (h *Harness) remoteSlot(reader host.StorageReader, key host.Key) (host.Word, Source) {
	value, err := bridge.Run(h.timeout, func(ctx context.Context) (host.Word, error) {
		return reader.StorageAt(ctx, h.contract, key, h.pinnedBlock)
	})
	if err != nil {
		h.logger.Debug("Storage query failed, reading zero", "key", key, "err", err)
		return host.Word{}, SourceRemoteFailed
	}
	return value, SourceRemote
}

// connection returns the remote storage source, connecting to the
// configured endpoint if this has not succeeded before.
func (h *Harness) connection() host.StorageReader {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.reader == nil && h.dialNeeded {
		h.connectLocked()
	}
	return h.reader
}

func (h *Harness) connect() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connectLocked()
}

func (h *Harness) connectLocked() {
	reader, err := bridge.Run(h.timeout, func(ctx context.Context) (host.StorageReaderCloser, error) {
		return h.dialer(ctx, h.endpoint)
	})
	if err != nil {
		h.logger.Debug("Failed to connect to storage node", "endpoint", h.endpoint, "err", err)
		return
	}
	if h.cacheSize > 0 {
		cached, err := remote.NewCachedReader(reader, h.cacheSize)
		if err != nil {
			reader.Close()
			h.logger.Debug("Failed to set up storage cache", "err", err)
			return
		}
		reader = cached
	}
	h.reader = reader
	h.owned = reader
	h.dialNeeded = false
}
