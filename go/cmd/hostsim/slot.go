// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/urfave/cli/v2"
)

var SlotCmd = AddCommonFlags(cli.Command{
	Action:    doSlot,
	Name:      "slot",
	Usage:     "Read individual storage slots of a contract",
	ArgsUsage: "<key>...",
})

func doSlot(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return fmt.Errorf("missing storage key")
	}
	keys := make([]host.Key, 0, context.Args().Len())
	for _, arg := range context.Args().Slice() {
		key, err := host.ParseKey(arg)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}

	h, err := buildHarness(context)
	if err != nil {
		return err
	}
	defer h.Close()

	for _, key := range keys {
		value, source := h.LoadSlot(key)
		fmt.Fprintf(context.App.Writer, "%v %v %v\n", key, value, source)
	}
	return nil
}
