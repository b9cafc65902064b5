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
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

// Key represents the 256-bit (32 bytes) key of a storage slot.
type Key [32]byte

// Word represents an arbitrary 256-bit (32 byte) word, in particular the
// value stored in a storage slot.
type Word [32]byte

// Value represents an amount of chain currency, typically wei.
type Value [32]byte

// Hash represents the 256-bit (32 bytes) hash of a code, a block, a topic
// or similar sequence of cryptographic summary information.
type Hash [32]byte

// Code represents the byte-code of a contract.
type Code []byte

// Data represents the input or output of contract invocations.
type Data []byte

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *Address) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

func (k Key) String() string {
	return fmt.Sprintf("0x%x", k[:])
}

func (k Key) MarshalText() ([]byte, error) {
	return bytesToText(k[:])
}

func (k *Key) UnmarshalText(data []byte) error {
	return textToBytes(k[:], data)
}

func (k Key) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes(k[:])
}

// NewKey creates a key from up to 4 uint64 arguments, most significant first.
// No argument results in the zero key.
func NewKey(args ...uint64) Key {
	return Key(NewValue(args...))
}

// KeyFromUint256 converts a *uint256.Int to a Key. A nil input yields the
// zero key.
func KeyFromUint256(value *uint256.Int) (result Key) {
	if value == nil {
		return result
	}
	return value.Bytes32()
}

func (w Word) String() string {
	return fmt.Sprintf("0x%x", w[:])
}

func (w Word) MarshalText() ([]byte, error) {
	return bytesToText(w[:])
}

func (w *Word) UnmarshalText(data []byte) error {
	return textToBytes(w[:], data)
}

func (w Word) IsZero() bool {
	return w == Word{}
}

func (w Word) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes(w[:])
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

func (v Value) ToBig() *big.Int {
	return new(big.Int).SetBytes(v[:])
}

func (v Value) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes(v[:])
}

func (v Value) String() string {
	return v.ToUint256().String()
}

func (v Value) Cmp(o Value) int {
	return bytes.Compare(v[:], o[:])
}

func (v Value) MarshalText() ([]byte, error) {
	return bytesToText(v[:])
}

func (v *Value) UnmarshalText(data []byte) error {
	return textToBytes(v[:], data)
}

// NewValue creates a new Value instance from up to 4 uint64 arguments. The
// arguments are given in the order from most significant to least significant
// by padding leading zeros as needed. No argument results in a value of zero.
func NewValue(args ...uint64) (result Value) {
	if len(args) > 4 {
		panic("Too many arguments")
	}
	offset := 4 - len(args)
	for i := 0; i < len(args); i++ {
		start := (offset * 8) + i*8
		binary.BigEndian.PutUint64(result[start:start+8], args[i])
	}
	return
}

// ValueFromUint256 converts a *uint256.Int to a Value.
// If the input is nil, it returns 0.
func ValueFromUint256(value *uint256.Int) (result Value) {
	if value == nil {
		return result
	}
	return value.Bytes32()
}

// ParseAddress parses a 0x-prefixed 40 digit hex string.
func ParseAddress(s string) (Address, error) {
	var res Address
	err := res.UnmarshalText([]byte(s))
	return res, err
}

// ParseKey parses a storage key given either as a decimal number or as a
// 0x-prefixed hex number of at most 64 digits.
func ParseKey(s string) (Key, error) {
	if hexDigits, found := strings.CutPrefix(s, "0x"); found {
		number, ok := new(big.Int).SetString(hexDigits, 16)
		if !ok || number.Sign() < 0 {
			return Key{}, fmt.Errorf("invalid key %q: not a hex number", s)
		}
		value, overflow := uint256.FromBig(number)
		if overflow {
			return Key{}, fmt.Errorf("invalid key %q: exceeds 256 bits", s)
		}
		return KeyFromUint256(value), nil
	}
	var value uint256.Int
	if err := value.SetFromDecimal(s); err != nil {
		return Key{}, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return KeyFromUint256(&value), nil
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(data); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg, data)
	return nil
}
