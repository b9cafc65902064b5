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

import (
	"sync"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// The helpers in this file compute the storage keys Solidity assigns to
// elements of dynamically sized state variables. They allow tests to address
// real on-chain state of mappings and arrays through StorageAccess.Load.

// MappingSlot returns the storage key of the entry with the given key in a
// mapping declared at the given slot.
func MappingSlot(key Word, slot Key) Key {
	var data [64]byte
	copy(data[:32], key[:])
	copy(data[32:], slot[:])
	return Key(keccak256(data[:]))
}

// ArraySlot returns the storage key of the element with the given index in
// a dynamic array declared at the given slot. Elements are assumed to occupy
// a full slot each.
func ArraySlot(slot Key, index uint64) Key {
	base := keccak256(slot[:])
	position := new(uint256.Int).SetBytes(base[:])
	position.Add(position, uint256.NewInt(index))
	return KeyFromUint256(position)
}

// AddressToWord left-pads an address to a full word, the encoding used for
// address keys of mappings.
func AddressToWord(address Address) (result Word) {
	copy(result[12:], address[:])
	return
}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

func keccak256(data []byte) Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}
