// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package host

import "context"

//go:generate mockgen -source storage_reader.go -destination storage_reader_mock.go -package host

// StorageReader is the single operation a harness needs from a remote
// network: reading a storage slot of a contract. If block is nil, the
// latest block is queried. Implementations must be safe for concurrent use.
type StorageReader interface {
	StorageAt(ctx context.Context, contract Address, key Key, block *uint64) (Word, error)
}

// StorageReaderCloser is a StorageReader holding resources, like a network
// connection, to be released once no longer needed.
type StorageReaderCloser interface {
	StorageReader
	Close()
}
