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
	"log/slog"
	"os"
	"time"

	"github.com/Fantom-foundation/hostsim/go/harness"
	"github.com/Fantom-foundation/hostsim/go/host"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var endpointFlag = &cli.StringFlag{
	Name:    "endpoint",
	Aliases: []string{"e"},
	Usage:   "JSON-RPC endpoint of the node storage is read from",
	Value:   harness.DefaultEndpoint,
}

var contractFlag = &cli.StringFlag{
	Name:     "contract",
	Aliases:  []string{"c"},
	Usage:    "address of the contract whose storage is read",
	Required: true,
}

var blockFlag = &cli.Uint64Flag{
	Name:  "block",
	Usage: "block to read storage at; the latest block if not set",
}

var timeoutFlag = &cli.DurationFlag{
	Name:  "timeout",
	Usage: "bound of each storage query",
	Value: harness.DefaultQueryTimeout,
}

var cacheFlag = &cli.IntFlag{
	Name:  "cache",
	Usage: "number of slot values retained to avoid repeated queries",
}

var verbosityFlag = &cli.IntFlag{
	Name:  "verbosity",
	Usage: "log level: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
	Value: 3,
}

var commonFlags = []cli.Flag{
	endpointFlag,
	contractFlag,
	blockFlag,
	timeoutFlag,
	cacheFlag,
	verbosityFlag,
}

func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, commonFlags...)

	action := command.Action
	command.Action = func(ctx *cli.Context) error {
		setupLogging(ctx.Int(verbosityFlag.Name))
		return action(ctx)
	}
	return command
}

func setupLogging(verbosity int) {
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	handler := log.NewTerminalHandlerWithLevel(os.Stderr, verbosityToLevel(verbosity), useColor)
	log.SetDefault(log.NewLogger(handler))
}

func verbosityToLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return log.LevelCrit
	case verbosity == 1:
		return log.LevelError
	case verbosity == 2:
		return log.LevelWarn
	case verbosity == 3:
		return log.LevelInfo
	case verbosity == 4:
		return log.LevelDebug
	}
	return log.LevelTrace
}

// buildHarness creates a harness connected to the endpoint selected on the
// command line.
func buildHarness(ctx *cli.Context) (*harness.Harness, error) {
	contract, err := host.ParseAddress(ctx.String(contractFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid contract address: %w", err)
	}
	var block *uint64
	if ctx.IsSet(blockFlag.Name) {
		number := ctx.Uint64(blockFlag.Name)
		block = &number
	}
	return harness.NewBuilder().
		WithContractAddress(contract).
		WithNetworkEndpoint(ctx.String(endpointFlag.Name), block).
		WithQueryTimeout(ctx.Duration(timeoutFlag.Name)).
		WithRemoteCache(ctx.Int(cacheFlag.Name)).
		Build()
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
