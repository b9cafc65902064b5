// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package remote

import (
	"context"
	"fmt"

	"github.com/Fantom-foundation/hostsim/go/host"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedReader is a read-through cache in front of another StorageReader.
// Successful responses are retained in an LRU governed fixed-capacity cache,
// failures are not cached. Values read from the latest block are cached as
// well, so a cached reader observes a single snapshot of each slot. The
// reader is thread-safe.
type CachedReader struct {
	source host.StorageReaderCloser
	cache  *lru.Cache[slotQuery, host.Word]
}

type slotQuery struct {
	contract host.Address
	key      host.Key
	pinned   bool
	block    uint64
}

// NewCachedReader wraps the given source in a cache of the given capacity.
func NewCachedReader(source host.StorageReaderCloser, capacity int) (*CachedReader, error) {
	cache, err := lru.New[slotQuery, host.Word](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage cache: %w", err)
	}
	return &CachedReader{source: source, cache: cache}, nil
}

func (r *CachedReader) StorageAt(ctx context.Context, contract host.Address, key host.Key, block *uint64) (host.Word, error) {
	query := slotQuery{contract: contract, key: key}
	if block != nil {
		query.pinned = true
		query.block = *block
	}
	if value, found := r.cache.Get(query); found {
		return value, nil
	}
	value, err := r.source.StorageAt(ctx, contract, key, block)
	if err != nil {
		return value, err
	}
	r.cache.Add(query, value)
	return value, nil
}

// Len returns the number of cached slots.
func (r *CachedReader) Len() int {
	return r.cache.Len()
}

func (r *CachedReader) Close() {
	r.cache.Purge()
	r.source.Close()
}
