package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/config"
	"github.com/katalvlaran/tradecycle/logger"
	"github.com/katalvlaran/tradecycle/wantlist"
)

// clearEnv blanks every variable Load reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvConfig, "TRADEMAX_LOG_LEVEL", "TRADEMAX_PRIORITIES", "TRADEMAX_ITERATIONS",
		"TRADEMAX_SEED", "TRADEMAX_SHRINK", "TRADEMAX_TIME_BUDGET",
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "INFO", c.Logging.Level)
	assert.Equal(t, "NONE", c.Priorities.Scheme)
	assert.Equal(t, builder.DefaultNonTradeCost, c.Priorities.NonTradeCost)
	assert.Equal(t, 1, c.Search.Iterations)
	assert.True(t, c.Output.ShowLoops)
	assert.False(t, c.Output.ShowMissing)
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "trademax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
priorities:
  scheme: triangle
  big_step: 20
search:
  iterations: 50
  shrink_level: 2
  time_budget: 30s
output:
  sort_by_item: true
  dot_file: trades.dot
`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "triangle", c.Priorities.Scheme)
	assert.Equal(t, int64(20), c.Priorities.BigStep)
	assert.Equal(t, builder.DefaultSmallStep, c.Priorities.SmallStep)
	assert.Equal(t, 50, c.Search.Iterations)
	assert.Equal(t, 30*time.Second, c.Search.TimeBudget)
	assert.True(t, c.Output.SortByItem)
	assert.True(t, c.Output.ShowStats)
	assert.Equal(t, "trades.dot", c.Output.DotFile)

	t.Setenv(config.EnvConfig, path)
	t.Setenv("TRADEMAX_ITERATIONS", "7")
	t.Setenv("TRADEMAX_SEED", "99")
	t.Setenv("TRADEMAX_TIME_BUDGET", "1m")
	c, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Search.Iterations)
	assert.Equal(t, int64(99), c.Search.Seed)
	assert.Equal(t, time.Minute, c.Search.TimeBudget)
	assert.Equal(t, 2, c.Search.ShrinkLevel)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("search: [1, 2"), 0o600))
	_, err = config.Load(bad)
	assert.Error(t, err)

	t.Setenv("TRADEMAX_SHRINK", "deep")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
	}{
		{"scheme", func(c *config.Config) { c.Priorities.Scheme = "cubic" }},
		{"small step", func(c *config.Config) { c.Priorities.SmallStep = -1 }},
		{"non-trade cost", func(c *config.Config) { c.Priorities.NonTradeCost = 0 }},
		{"iterations", func(c *config.Config) { c.Search.Iterations = 0 }},
		{"seed", func(c *config.Config) { c.Search.Seed = -4 }},
		{"shrink", func(c *config.Config) { c.Search.ShrinkLevel = 10 }},
		{"time budget", func(c *config.Config) { c.Search.TimeBudget = -time.Second }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.edit(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}

func TestApplyDirectives(t *testing.T) {
	c := config.Default()
	err := c.ApplyDirectives([]string{
		"ALLOW-DUMMIES", "linear-priorities", "ITERATIONS=100", "SEED=42",
		"SHRINK=2", "SMALL-STEP=0", "BIG-STEP=5", "NONTRADE-COST=777",
		"HIDE-NONTRADES", "SHOW-MISSING", "REQUIRE-COLONS", "SHOW-WANTS",
	})
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.True(t, c.Priorities.AllowDummies)
	assert.Equal(t, "LINEAR", c.Priorities.Scheme)
	assert.Equal(t, 100, c.Search.Iterations)
	assert.Equal(t, int64(42), c.Search.Seed)
	assert.Equal(t, 2, c.Search.ShrinkLevel)
	assert.Equal(t, int64(0), c.Priorities.SmallStep)
	assert.Equal(t, int64(5), c.Priorities.BigStep)
	assert.Equal(t, int64(777), c.Priorities.NonTradeCost)
	assert.False(t, c.Output.ShowNonTrades)
	assert.True(t, c.Output.ShowMissing)
	assert.True(t, c.Input.RequireColons)
	assert.True(t, c.Output.ShowWants)
	assert.Len(t, c.Applied, 12)
	assert.Equal(t, "LINEAR-PRIORITIES", c.Applied[1])

	opts := c.ParseOptions()
	assert.True(t, opts.RequireColons)
	assert.Len(t, c.BuilderOptions(nil), 7)
	assert.Len(t, c.SearchOptions(logger.NewNopLogger()), 6)
	assert.False(t, c.ReportOptions().ShowNonTrades)
	assert.True(t, c.WantsOptions().AllowDummies)
}

func TestApplyDirectiveErrors(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"FROBNICATE", config.ErrUnknownDirective},
		{"COLOR=3", config.ErrUnknownDirective},
		{"SCALED-PRIORITIES", config.ErrBadDirectiveValue},
		{"ITERATIONS=0", config.ErrBadDirectiveValue},
		{"ITERATIONS=ten", config.ErrBadDirectiveValue},
		{"SEED=-1", config.ErrBadDirectiveValue},
		{"SHRINK=12", config.ErrBadDirectiveValue},
		{"SMALL-STEP=", config.ErrBadDirectiveValue},
		{"NONTRADE-COST=99999999999999999999", config.ErrBadDirectiveValue},
	}
	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			c := config.Default()
			before := c
			assert.ErrorIs(t, c.ApplyDirective(tc.token), tc.want)
			assert.Equal(t, before, c)
		})
	}
}

func TestParseOptionsApplyDirectives(t *testing.T) {
	c := config.Default()
	doc, err := wantlist.Parse(strings.NewReader("#! ITERATIONS=5 show-wants\nA : B\n"), c.ParseOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, doc.DirectiveLines)
	assert.Equal(t, 5, c.Search.Iterations)
	assert.True(t, c.Output.ShowWants)
	assert.Equal(t, []string{"ITERATIONS=5", "SHOW-WANTS"}, c.Applied)

	tests := []struct {
		input string
		line  int
		want  error
	}{
		{"#! FROBNICATE\nA : B\n", 1, config.ErrUnknownDirective},
		{"# header\n\n#! LINEAR-PRIORITIES SHRINK=12\n", 3, config.ErrBadDirectiveValue},
	}
	for _, tc := range tests {
		c := config.Default()
		_, err := wantlist.Parse(strings.NewReader(tc.input), c.ParseOptions())
		assert.ErrorIs(t, err, tc.want, tc.input)

		var pe *wantlist.ParseError
		require.True(t, errors.As(err, &pe), tc.input)
		assert.Equal(t, tc.line, pe.Line, tc.input)
	}
}
