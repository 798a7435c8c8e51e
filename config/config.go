// Package config holds the settings of a trade run: defaults, a YAML file,
// TRADEMAX_* environment overrides and the "#!" directives of the input.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/logger"
	"github.com/katalvlaran/tradecycle/report"
	"github.com/katalvlaran/tradecycle/search"
	"github.com/katalvlaran/tradecycle/wantlist"
)

// EnvConfig names the variable holding the config file path.
const EnvConfig = "TRADEMAX_CONFIG"

var (
	// ErrUnknownDirective is returned for a "#!" token nobody understands.
	ErrUnknownDirective = errors.New("config: unknown directive")

	// ErrBadDirectiveValue is returned for a directive with an invalid argument.
	ErrBadDirectiveValue = errors.New("config: bad directive value")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)

type Config struct {
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Input struct {
		CaseSensitive    bool `yaml:"case_sensitive"`
		RequireColons    bool `yaml:"require_colons"`
		RequireUsernames bool `yaml:"require_usernames"`
	} `yaml:"input"`
	Priorities struct {
		Scheme       string `yaml:"scheme"`
		SmallStep    int64  `yaml:"small_step"`
		BigStep      int64  `yaml:"big_step"`
		NonTradeCost int64  `yaml:"nontrade_cost"`
		AllowDummies bool   `yaml:"allow_dummies"`
	} `yaml:"priorities"`
	Search struct {
		Iterations    int           `yaml:"iterations"`
		Seed          int64         `yaml:"seed"`
		ShrinkLevel   int           `yaml:"shrink_level"`
		ShrinkVerbose bool          `yaml:"shrink_verbose"`
		TimeBudget    time.Duration `yaml:"time_budget"`
	} `yaml:"search"`
	Output struct {
		ShowErrors      bool   `yaml:"show_errors"`
		ShowRepeats     bool   `yaml:"show_repeats"`
		ShowLoops       bool   `yaml:"show_loops"`
		ShowSummary     bool   `yaml:"show_summary"`
		ShowNonTrades   bool   `yaml:"show_nontrades"`
		ShowStats       bool   `yaml:"show_stats"`
		ShowMissing     bool   `yaml:"show_missing"`
		SortByItem      bool   `yaml:"sort_by_item"`
		ShowElapsedTime bool   `yaml:"show_elapsed_time"`
		ShowWants       bool   `yaml:"show_wants"`
		DotFile         string `yaml:"dot_file"`
	} `yaml:"output"`

	// Applied lists every directive accepted by ApplyDirective, in order.
	Applied []string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Logging.Level = logger.DefaultLevel
	c.Priorities.Scheme = builder.SchemeNone.String()
	c.Priorities.SmallStep = builder.DefaultSmallStep
	c.Priorities.BigStep = builder.DefaultBigStep
	c.Priorities.NonTradeCost = builder.DefaultNonTradeCost
	c.Search.Iterations = 1
	c.Output.ShowErrors = true
	c.Output.ShowRepeats = true
	c.Output.ShowLoops = true
	c.Output.ShowSummary = true
	c.Output.ShowNonTrades = true
	c.Output.ShowStats = true
	return c
}

// Load returns Default overlaid with the YAML file at path (or at
// $TRADEMAX_CONFIG when path is empty) and then with environment overrides.
// A missing file is an error only when a path was given.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrapf(err, "config: read %s", path)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return c, errors.Wrapf(err, "config: parse %s", path)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TRADEMAX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TRADEMAX_PRIORITIES"); v != "" {
		c.Priorities.Scheme = v
	}
	if v := os.Getenv("TRADEMAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "TRADEMAX_ITERATIONS=%q", v)
		}
		c.Search.Iterations = n
	}
	if v := os.Getenv("TRADEMAX_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "TRADEMAX_SEED=%q", v)
		}
		c.Search.Seed = n
	}
	if v := os.Getenv("TRADEMAX_SHRINK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "TRADEMAX_SHRINK=%q", v)
		}
		c.Search.ShrinkLevel = n
	}
	if v := os.Getenv("TRADEMAX_TIME_BUDGET"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "TRADEMAX_TIME_BUDGET=%q", v)
		}
		c.Search.TimeBudget = d
	}
	return nil
}

// Validate checks every value that the components would reject.
func (c *Config) Validate() error {
	if _, ok := builder.ParseScheme(c.Priorities.Scheme); !ok {
		return errors.Wrapf(ErrInvalid, "priority scheme %q", c.Priorities.Scheme)
	}
	switch {
	case c.Priorities.SmallStep < 0:
		return errors.Wrapf(ErrInvalid, "small step %d", c.Priorities.SmallStep)
	case c.Priorities.BigStep < 0:
		return errors.Wrapf(ErrInvalid, "big step %d", c.Priorities.BigStep)
	case c.Priorities.NonTradeCost <= 0 || c.Priorities.NonTradeCost >= core.MaxCost:
		return errors.Wrapf(ErrInvalid, "non-trade cost %d", c.Priorities.NonTradeCost)
	case c.Search.Iterations < 1:
		return errors.Wrapf(ErrInvalid, "iterations %d", c.Search.Iterations)
	case c.Search.Seed < 0:
		return errors.Wrapf(ErrInvalid, "seed %d", c.Search.Seed)
	case c.Search.ShrinkLevel < 0 || c.Search.ShrinkLevel > 9:
		return errors.Wrapf(ErrInvalid, "shrink level %d", c.Search.ShrinkLevel)
	case c.Search.TimeBudget < 0:
		return errors.Wrapf(ErrInvalid, "time budget %v", c.Search.TimeBudget)
	}
	return nil
}

// ParseOptions returns the want-list reader settings. The reader applies
// every "#!" directive to c as it reads it.
func (c *Config) ParseOptions() wantlist.Options {
	return wantlist.Options{
		CaseSensitive:    c.Input.CaseSensitive,
		RequireColons:    c.Input.RequireColons,
		RequireUsernames: c.Input.RequireUsernames,
		Directive:        c.ApplyDirective,
	}
}

// BuilderOptions returns the graph builder settings. Call Validate first.
func (c *Config) BuilderOptions(official []string) []builder.BuilderOption {
	scheme, _ := builder.ParseScheme(c.Priorities.Scheme)
	return []builder.BuilderOption{
		builder.WithScheme(scheme),
		builder.WithSmallStep(c.Priorities.SmallStep),
		builder.WithBigStep(c.Priorities.BigStep),
		builder.WithNonTradeCost(c.Priorities.NonTradeCost),
		builder.WithDummies(c.Priorities.AllowDummies),
		builder.WithRepeats(c.Output.ShowRepeats),
		builder.WithOfficialNames(official),
	}
}

// SearchOptions returns the solver settings. Call Validate first.
func (c *Config) SearchOptions(log logger.Logger) []search.Option {
	return []search.Option{
		search.WithIterations(c.Search.Iterations),
		search.WithSeed(c.Search.Seed),
		search.WithShrinkLevel(c.Search.ShrinkLevel),
		search.WithShrinkVerbose(c.Search.ShrinkVerbose),
		search.WithTimeBudget(c.Search.TimeBudget),
		search.WithLogger(log),
	}
}

// ReportOptions returns the sections to print.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		ShowLoops:       c.Output.ShowLoops,
		ShowSummary:     c.Output.ShowSummary,
		ShowNonTrades:   c.Output.ShowNonTrades,
		ShowStats:       c.Output.ShowStats,
		ShowElapsedTime: c.Output.ShowElapsedTime,
		SortByItem:      c.Output.SortByItem,
	}
}

// WantsOptions returns the settings echoed by SHOW-WANTS.
func (c *Config) WantsOptions() report.WantsOptions {
	scheme, _ := builder.ParseScheme(c.Priorities.Scheme)
	return report.WantsOptions{
		Scheme:       scheme,
		NonTradeCost: c.Priorities.NonTradeCost,
		AllowDummies: c.Priorities.AllowDummies,
	}
}
