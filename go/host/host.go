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

// Host is the full set of capabilities a contract may use to interact with
// its execution environment. In production it is implemented by the real
// chain; in tests it is replaced by a harness. Contracts should depend on
// the narrowest group they need, while a Host implementation has to provide
// all of them.
type Host interface {
	MessageAccess
	CalldataAccess
	DeploymentAccess
	StorageAccess
	CallAccess
	BlockAccess
	ChainAccess
	AccountAccess
	MemoryAccess
	MeteringAccess
	CryptographyAccess
}

// MessageAccess provides the properties of the message being processed.
type MessageAccess interface {
	Sender() Address
	IsReentrant() bool
	Value() Value
	Origin() Address
}

// CalldataAccess provides the input of the current call and the return data
// of the last sub-call.
type CalldataAccess interface {
	Args(length int) Data
	ReadReturnData(offset int, size *int) Data
	ReturnDataLen() int
	EmitOutput(Data)
}

type DeploymentAccess interface {
	Create1()
	Create2()
}

// StorageAccess provides access to the persistent storage of the contract
// running on the host.
type StorageAccess interface {
	// Load reads the storage slot with the given key of the current contract.
	// It never fails; unknown slots read as zero.
	Load(Key) Word
	// Cache stages a write of a storage slot, to be committed on FlushCache.
	Cache(Key, Word)
	// FlushCache commits staged writes. If clear is set, the stage is emptied.
	FlushCache(clear bool)
	EmitLog(Data)
}

type CallAccess interface {
	Call()
	StaticCall()
	DelegateCall()
}

// BlockAccess provides information on the block the current transaction is
// processed in.
type BlockAccess interface {
	BaseFee() Value
	Coinbase() Address
	Number() uint64
	Timestamp() uint64
	GasLimit() uint64
}

type ChainAccess interface {
	ChainId() uint64
}

// AccountAccess provides information on accounts, including the one of the
// contract itself.
type AccountAccess interface {
	Balance(Address) Value
	SelfAddress() Address
	Code(Address) Code
	CodeSize(Address) int
	CodeHash(Address) Hash
}

type MemoryAccess interface {
	PayForGrowth(pages uint16)
}

type MeteringAccess interface {
	GasLeft() uint64
	InkLeft() uint64
	GasPrice() Value
	InkPrice() uint32
}

type CryptographyAccess interface {
	Keccak256(Data) Hash
}
