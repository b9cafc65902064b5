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
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Fantom-foundation/hostsim/go/harness"
	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/dsnet/golib/unitconv"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var fromFlag = &cli.StringFlag{
	Name:  "from",
	Usage: "first storage key to read",
	Value: "0",
}

var countFlag = &cli.Uint64Flag{
	Name:  "count",
	Usage: "number of consecutive storage keys to read",
	Value: 16,
}

var jobsFlag = &cli.IntFlag{
	Name:    "jobs",
	Aliases: []string{"j"},
	Usage:   "number of queries run simultaneously",
	Value:   runtime.NumCPU(),
}

var ScanCmd = AddCommonFlags(cli.Command{
	Action: doScan,
	Name:   "scan",
	Usage:  "Read a range of consecutive storage slots and list the non-zero ones",
	Flags: []cli.Flag{
		fromFlag,
		countFlag,
		jobsFlag,
	},
})

type scanResult struct {
	value  host.Word
	source harness.Source
}

func doScan(context *cli.Context) error {
	from, err := host.ParseKey(context.String(fromFlag.Name))
	if err != nil {
		return err
	}
	count := context.Uint64(countFlag.Name)
	jobs := context.Int(jobsFlag.Name)
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	h, err := buildHarness(context)
	if err != nil {
		return err
	}
	defer h.Close()

	start := time.Now()
	results := scan(h, from, count, jobs)
	duration := time.Since(start)

	keys := maps.Keys(results)
	slices.SortFunc(keys, func(a, b host.Key) int {
		return bytes.Compare(a[:], b[:])
	})

	failed := 0
	out := context.App.Writer
	for _, key := range keys {
		result := results[key]
		if result.source == harness.SourceRemoteFailed {
			failed++
		}
		if result.value.IsZero() {
			continue
		}
		fmt.Fprintf(out, "%v %v %v\n", key, result.value, result.source)
	}

	rate := float64(count) / duration.Seconds()
	fmt.Fprintf(out, "Read %d slots in %s (%sslots/s), %d failed\n",
		count, formatDuration(duration), unitconv.FormatPrefix(rate, unitconv.SI, 0), failed,
	)
	return nil
}

// scan loads count consecutive slots starting at from, running up to jobs
// loads in parallel. Keys wrap around at 2^256.
func scan(h *harness.Harness, from host.Key, count uint64, jobs int) map[host.Key]scanResult {
	var mu sync.Mutex
	results := make(map[host.Key]scanResult, count)

	var group errgroup.Group
	group.SetLimit(jobs)
	first := from.ToUint256()
	for i := uint64(0); i < count; i++ {
		key := host.KeyFromUint256(new(uint256.Int).Add(first, uint256.NewInt(i)))
		group.Go(func() error {
			value, source := h.LoadSlot(key)
			mu.Lock()
			results[key] = scanResult{value: value, source: source}
			mu.Unlock()
			return nil
		})
	}
	group.Wait()
	return results
}
