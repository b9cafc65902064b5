// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package examples contains small contracts written against the host
// capability interfaces. They demonstrate how contract logic is unit-tested
// using a harness instead of a live chain.
package examples

import (
	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/holiman/uint256"
)

// Uint256Field binds a 256-bit unsigned state variable to a storage slot.
type Uint256Field struct {
	storage host.StorageAccess
	slot    host.Key
}

func NewUint256Field(storage host.StorageAccess, slot host.Key) Uint256Field {
	return Uint256Field{storage: storage, slot: slot}
}

func (f Uint256Field) Get() *uint256.Int {
	return f.storage.Load(f.slot).ToUint256()
}

// Set stages the new value in the storage cache of the host.
func (f Uint256Field) Set(value *uint256.Int) {
	f.storage.Cache(f.slot, host.Word(value.Bytes32()))
}

// Uint256Mapping binds a mapping with 256-bit unsigned values to the storage
// slot it is declared at. Entries are located using host.MappingSlot.
type Uint256Mapping struct {
	storage host.StorageAccess
	slot    host.Key
}

func NewUint256Mapping(storage host.StorageAccess, slot host.Key) Uint256Mapping {
	return Uint256Mapping{storage: storage, slot: slot}
}

func (m Uint256Mapping) Entry(key host.Word) Uint256Field {
	return NewUint256Field(m.storage, host.MappingSlot(key, m.slot))
}
