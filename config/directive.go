package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/builder"
)

var (
	digits   = regexp.MustCompile(`^\d+$`)
	positive = regexp.MustCompile(`^[1-9]\d*$`)
	oneDigit = regexp.MustCompile(`^[0-9]$`)
)

// numeric lists the NAME=value directives and the shape of their value.
var numeric = map[string]struct {
	re   *regexp.Regexp
	want string
}{
	"SMALL-STEP":    {digits, "a non-negative integer"},
	"BIG-STEP":      {digits, "a non-negative integer"},
	"NONTRADE-COST": {positive, "a positive integer"},
	"ITERATIONS":    {positive, "a positive integer"},
	"SEED":          {positive, "a positive integer"},
	"SHRINK":        {oneDigit, "a single digit"},
}

// flags maps argument-less directives to the setting they switch.
func (c *Config) flags() map[string]func() {
	return map[string]func(){
		"CASE-SENSITIVE":      func() { c.Input.CaseSensitive = true },
		"REQUIRE-COLONS":      func() { c.Input.RequireColons = true },
		"REQUIRE-USERNAMES":   func() { c.Input.RequireUsernames = true },
		"HIDE-ERRORS":         func() { c.Output.ShowErrors = false },
		"HIDE-REPEATS":        func() { c.Output.ShowRepeats = false },
		"HIDE-LOOPS":          func() { c.Output.ShowLoops = false },
		"HIDE-SUMMARY":        func() { c.Output.ShowSummary = false },
		"HIDE-NONTRADES":      func() { c.Output.ShowNonTrades = false },
		"HIDE-STATS":          func() { c.Output.ShowStats = false },
		"SHOW-MISSING":        func() { c.Output.ShowMissing = true },
		"SORT-BY-ITEM":        func() { c.Output.SortByItem = true },
		"ALLOW-DUMMIES":       func() { c.Priorities.AllowDummies = true },
		"SHOW-ELAPSED-TIME":   func() { c.Output.ShowElapsedTime = true },
		"SHRINK-VERBOSE":      func() { c.Search.ShrinkVerbose = true },
		"SHOW-WANTS":          func() { c.Output.ShowWants = true },
		"LINEAR-PRIORITIES":   func() { c.Priorities.Scheme = builder.SchemeLinear.String() },
		"TRIANGLE-PRIORITIES": func() { c.Priorities.Scheme = builder.SchemeTriangle.String() },
		"SQUARE-PRIORITIES":   func() { c.Priorities.Scheme = builder.SchemeSquare.String() },
		"EXPLICIT-PRIORITIES": func() { c.Priorities.Scheme = builder.SchemeExplicit.String() },
	}
}

// ApplyDirective applies one "#!" token such as "ITERATIONS=100" or
// "LINEAR-PRIORITIES". Tokens are matched case-insensitively.
func (c *Config) ApplyDirective(token string) error {
	d := strings.ToUpper(strings.TrimSpace(token))
	if set, ok := c.flags()[d]; ok {
		set()
		c.Applied = append(c.Applied, d)
		return nil
	}
	if d == "SCALED-PRIORITIES" {
		return errors.Wrapf(ErrBadDirectiveValue, "%s is no longer supported", d)
	}

	name, value, ok := strings.Cut(d, "=")
	if !ok {
		return errors.Wrapf(ErrUnknownDirective, "%q", d)
	}
	arg, ok := numeric[name]
	if !ok {
		return errors.Wrapf(ErrUnknownDirective, "%q", d)
	}
	n, err := parseInt(name, value, arg.re, arg.want)
	if err != nil {
		return err
	}
	switch name {
	case "SMALL-STEP":
		c.Priorities.SmallStep = n
	case "BIG-STEP":
		c.Priorities.BigStep = n
	case "NONTRADE-COST":
		c.Priorities.NonTradeCost = n
	case "ITERATIONS":
		c.Search.Iterations = int(n)
	case "SEED":
		c.Search.Seed = n
	case "SHRINK":
		c.Search.ShrinkLevel = int(n)
	}
	c.Applied = append(c.Applied, d)
	return nil
}

// ApplyDirectives applies tokens in order and stops at the first error.
func (c *Config) ApplyDirectives(tokens []string) error {
	for _, t := range tokens {
		if err := c.ApplyDirective(t); err != nil {
			return err
		}
	}
	return nil
}

func parseInt(name, value string, re *regexp.Regexp, want string) (int64, error) {
	if !re.MatchString(value) {
		return 0, errors.Wrapf(ErrBadDirectiveValue, "%s argument must be %s", name, want)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadDirectiveValue, "%s argument out of range", name)
	}
	return n, nil
}
