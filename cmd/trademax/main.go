package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/tradecycle/logger"
)

const version = "1.3"

var (
	configFlag = cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML settings file (default: $TRADEMAX_CONFIG)",
	}
	iterationsFlag = cli.IntFlag{
		Name:    "iterations",
		Aliases: []string{"n"},
		Usage:   "number of solves; the best cycle structure wins",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the restart shuffles (0: default seed)",
	}
	shrinkFlag = cli.IntFlag{
		Name:  "shrink",
		Usage: "edge elimination level before solving (0-2)",
	}
	prioritiesFlag = cli.StringFlag{
		Name:  "priorities",
		Usage: "priority scheme: none, linear, triangle, square or explicit",
	}
	timeBudgetFlag = cli.DurationFlag{
		Name:  "time-budget",
		Usage: "stop restarting after this long",
	}
	dotFlag = cli.StringFlag{
		Name:  "dot",
		Usage: "write the trade cycles as a Graphviz file",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "FATAL ERROR:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "trademax",
		HelpName:  "trademax",
		Usage:     "find the trades that move the most items in a math trade",
		ArgsUsage: "[want-list file, may be .gz; default or '-': stdin]",
		Version:   version,
		Flags: []cli.Flag{
			&configFlag,
			&iterationsFlag,
			&seedFlag,
			&shrinkFlag,
			&prioritiesFlag,
			&timeBudgetFlag,
			&dotFlag,
			&logger.LogLevelFlag,
		},
		Action: run,
	}
}
