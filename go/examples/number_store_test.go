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
	"testing"

	"github.com/Fantom-foundation/hostsim/go/harness"
	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/Fantom-foundation/hostsim/go/remote/rpctest"
	"github.com/holiman/uint256"
	"go.uber.org/mock/gomock"
)

// recordingHost captures staged storage writes on top of a harness.
type recordingHost struct {
	*harness.Harness
	writes map[host.Key]host.Word
}

func newRecordingHost(t *testing.T, builder harness.Builder) *recordingHost {
	t.Helper()
	h, err := builder.Build()
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	t.Cleanup(h.Close)
	return &recordingHost{Harness: h, writes: map[host.Key]host.Word{}}
}

func (r *recordingHost) Cache(key host.Key, value host.Word) {
	r.writes[key] = value
}

func TestNumberStore_ReadsNumberFromLocalStorage(t *testing.T) {
	h, err := harness.NewBuilder().
		WithStorage(host.Address{}, host.NewKey(0), host.Word(uint256.NewInt(5).Bytes32())).
		Build()
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	store := NewNumberStore(h)
	if got := store.Number(); !got.Eq(uint256.NewInt(5)) {
		t.Errorf("unexpected number, wanted 5, got %v", got)
	}
}

func TestNumberStore_ReadsNumberFromNode(t *testing.T) {
	node := rpctest.NewNode()
	defer node.Close()

	contract, err := host.ParseAddress("0x2460d3db27c4bef88557e8dc9136e6fad189e8c3")
	if err != nil {
		t.Fatalf("invalid address: %v", err)
	}
	node.SetStorage(contract, host.NewKey(0), host.Word{31: 5})

	h, err := harness.NewBuilder().
		WithContractAddress(contract).
		WithNetworkEndpoint(node.URL(), nil).
		Build()
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	defer h.Close()

	if got := NewNumberStore(h).Number(); !got.Eq(uint256.NewInt(5)) {
		t.Errorf("unexpected number, wanted 5, got %v", got)
	}
}

func TestNumberStore_CheckSenderReportsMessageSender(t *testing.T) {
	sender := host.Address{0xab, 19: 0xcd}
	h, err := harness.NewBuilder().WithSender(sender).Build()
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	if got := NewNumberStore(h).CheckSender(); got != sender {
		t.Errorf("unexpected sender, wanted %v, got %v", sender, got)
	}
}

func TestNumberStore_SetNumberStagesWrite(t *testing.T) {
	recorder := newRecordingHost(t, harness.NewBuilder())
	NewNumberStore(recorder).SetNumber(uint256.NewInt(9))

	want := host.Word{31: 9}
	if got := recorder.writes[host.NewKey(0)]; got != want || len(recorder.writes) != 1 {
		t.Errorf("unexpected writes, wanted slot 0 = %v, got %v", want, recorder.writes)
	}
}

func TestNumberStore_SetNumberIsNotVisibleOnHarness(t *testing.T) {
	h, err := harness.NewBuilder().Build()
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	store := NewNumberStore(h)
	store.SetNumber(uint256.NewInt(9))
	if got := store.Number(); !got.IsZero() {
		t.Errorf("harness storage should be read-only, got %v", got)
	}
}

func TestNumberStore_ReadsThroughStorageReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := host.NewMockStorageReader(ctrl)
	block := uint64(77)
	reader.EXPECT().StorageAt(gomock.Any(), host.Address{1}, host.NewKey(0), &block).Return(host.Word{31: 3}, nil)

	h, err := harness.NewBuilder().
		WithContractAddress(host.Address{1}).
		WithPinnedBlock(block).
		WithStorageReader(reader).
		Build()
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	if got := NewNumberStore(h).Number(); !got.Eq(uint256.NewInt(3)) {
		t.Errorf("unexpected number, wanted 3, got %v", got)
	}
}
