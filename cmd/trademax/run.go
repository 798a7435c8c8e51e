package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/config"
	"github.com/katalvlaran/tradecycle/logger"
	"github.com/katalvlaran/tradecycle/report"
	"github.com/katalvlaran/tradecycle/search"
	"github.com/katalvlaran/tradecycle/shrink"
	"github.com/katalvlaran/tradecycle/wantlist"
)

// run reads want lists, solves them and prints the report to stdout.
func run(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}

	in, err := openInput(ctx.Args().First())
	if err != nil {
		return err
	}
	defer in.Close()

	doc, err := wantlist.Parse(in, cfg.ParseOptions())
	if err != nil {
		return err
	}
	applyFlags(ctx, &cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Logging.Level, "trademax")
	out := ctx.App.Writer
	if out == nil {
		out = os.Stdout
	}

	return solve(out, log, &cfg, doc)
}

// applyFlags lets explicitly set command line flags win over the file,
// the environment and the directives.
func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet(logger.LogLevelFlag.Name) {
		cfg.Logging.Level = ctx.String(logger.LogLevelFlag.Name)
	}
	if ctx.IsSet(iterationsFlag.Name) {
		cfg.Search.Iterations = ctx.Int(iterationsFlag.Name)
	}
	if ctx.IsSet(seedFlag.Name) {
		cfg.Search.Seed = ctx.Int64(seedFlag.Name)
	}
	if ctx.IsSet(shrinkFlag.Name) {
		cfg.Search.ShrinkLevel = ctx.Int(shrinkFlag.Name)
	}
	if ctx.IsSet(prioritiesFlag.Name) {
		cfg.Priorities.Scheme = ctx.String(prioritiesFlag.Name)
	}
	if ctx.IsSet(timeBudgetFlag.Name) {
		cfg.Search.TimeBudget = ctx.Duration(timeBudgetFlag.Name)
	}
	if ctx.IsSet(dotFlag.Name) {
		cfg.Output.DotFile = ctx.String(dotFlag.Name)
	}
}

func solve(out io.Writer, log logger.Logger, cfg *config.Config, doc *wantlist.Document) error {
	fmt.Fprintf(out, "trademax %s\n", version)
	if len(cfg.Applied) > 0 {
		fmt.Fprintf(out, "Options: %s\n", strings.Join(cfg.Applied, " "))
	}
	fmt.Fprintln(out)

	b, err := builder.Build(doc.Lists, cfg.BuilderOptions(doc.Official)...)
	if err != nil {
		return err
	}
	log.Infof("built %d items (%d dummies), %d problems", b.Items, b.DummyItems, len(b.Problems))
	if cfg.Output.ShowMissing {
		report.Missing(out, b)
	}
	if cfg.Output.ShowErrors {
		report.Problems(out, b)
	}

	opts := append(cfg.SearchOptions(log),
		search.WithShrunk(func(rep *shrink.Report) {
			if cfg.Search.ShrinkVerbose {
				report.WriteStages(out, rep)
				fmt.Fprintln(out)
			}
			if cfg.Output.ShowWants {
				report.WriteWants(out, b.Graph, cfg.WantsOptions())
				fmt.Fprintln(out)
			}
		}),
		search.WithProgress(func(imp search.Improvement) {
			fmt.Fprintf(out, "[ %d : %s ]\n", imp.SumSquares, strings.Trim(fmt.Sprint(imp.Sizes), "[]"))
		}))
	res, err := search.Solve(b.Graph, opts...)
	if err != nil {
		if errors.HasAssertionFailure(err) {
			log.Criticalf("internal invariant violated: %+v", err)
		}
		return err
	}
	hours, minutes, seconds := logger.ParseTime(res.Elapsed)
	log.Noticef("solved in %dh %dm %ds", hours, minutes, seconds)

	if cfg.Search.Iterations > 1 {
		fmt.Fprintf(out, "Completed %d iterations.\n\n", res.Iterations)
	}
	report.Write(out, b.Graph, res, b, cfg.ReportOptions())

	if cfg.Output.DotFile != "" {
		return writeDOT(cfg.Output.DotFile, b, res)
	}
	return nil
}

func writeDOT(path string, b *builder.Result, res *search.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() { err = errors.CombineErrors(err, f.Close()) }()

	return report.WriteDOT(f, b.Graph, res)
}
