// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/holiman/uint256"
)

// NumberStoreHost lists the capabilities used by NumberStore.
type NumberStoreHost interface {
	host.MessageAccess
	host.StorageAccess
}

// NumberStore keeps a single number in storage slot 0.
type NumberStore struct {
	host   NumberStoreHost
	number Uint256Field
}

func NewNumberStore(h NumberStoreHost) *NumberStore {
	return &NumberStore{
		host:   h,
		number: NewUint256Field(h, host.NewKey(0)),
	}
}

// CheckSender returns the sender of the current message.
func (s *NumberStore) CheckSender() host.Address {
	return s.host.Sender()
}

func (s *NumberStore) SetNumber(number *uint256.Int) {
	s.number.Set(number)
}

func (s *NumberStore) Number() *uint256.Int {
	return s.number.Get()
}
