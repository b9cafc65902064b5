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

// CounterHost lists the capabilities used by Counter.
type CounterHost interface {
	host.MessageAccess
	host.StorageAccess
}

// Counter maintains a global count in slot 0 and a count per sender in a
// mapping declared at slot 1. All arithmetic wraps at 2^256. Updates return
// the new value, since staged writes are not visible to subsequent reads
// before the host committed them.
type Counter struct {
	host      CounterHost
	count     Uint256Field
	perSender Uint256Mapping
}

func NewCounter(h CounterHost) *Counter {
	return &Counter{
		host:      h,
		count:     NewUint256Field(h, host.NewKey(0)),
		perSender: NewUint256Mapping(h, host.NewKey(1)),
	}
}

func (c *Counter) Count() *uint256.Int {
	return c.count.Get()
}

func (c *Counter) Increment() *uint256.Int {
	return c.Add(uint256.NewInt(1))
}

func (c *Counter) Add(delta *uint256.Int) *uint256.Int {
	res := new(uint256.Int).Add(c.count.Get(), delta)
	c.count.Set(res)
	return res
}

func (c *Counter) Mul(factor *uint256.Int) *uint256.Int {
	res := new(uint256.Int).Mul(c.count.Get(), factor)
	c.count.Set(res)
	return res
}

// CountOf returns the number of increments performed by the given account.
func (c *Counter) CountOf(account host.Address) *uint256.Int {
	return c.perSender.Entry(host.AddressToWord(account)).Get()
}

// IncrementMine increments the global count and the one of the sender.
func (c *Counter) IncrementMine() (total, mine *uint256.Int) {
	entry := c.perSender.Entry(host.AddressToWord(c.host.Sender()))
	mine = new(uint256.Int).AddUint64(entry.Get(), 1)
	entry.Set(mine)
	return c.Increment(), mine
}
