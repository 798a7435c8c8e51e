package wantlist

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/builder"
)

// ErrSyntax is the sentinel behind every *ParseError.
var ErrSyntax = errors.New("wantlist: syntax error")

// ParseError reports a fatal format error. Err is set when a directive was
// rejected by Options.Directive.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wantlist: %s: %v (line %d)", e.Msg, e.Err, e.Line)
	}
	return fmt.Sprintf("wantlist: %s (line %d)", e.Msg, e.Line)
}

// Unwrap returns the directive error, or ErrSyntax for format errors.
func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrSyntax
}

// Document is a parsed input file.
type Document struct {
	// Directives are the upper-cased "#!" tokens in order of appearance.
	Directives []string
	// DirectiveLines holds the input line of each directive.
	DirectiveLines []int
	// Official lists the official names; nil when the file has no block.
	Official []string
	Lists    []builder.WantList
}

// Options configures Parse. Directives in the input can switch these on too.
type Options struct {
	CaseSensitive    bool
	RequireColons    bool
	RequireUsernames bool
	// Directive, when set, is called with every "#!" token as it is read.
	// An error stops parsing with a *ParseError for that line.
	Directive func(token string) error
}

const (
	directiveCaseSensitive    = "CASE-SENSITIVE"
	directiveRequireColons    = "REQUIRE-COLONS"
	directiveRequireUsernames = "REQUIRE-USERNAMES"

	beginOfficial = "!BEGIN-OFFICIAL-NAMES"
	endOfficial   = "!END-OFFICIAL-NAMES"

	// userSpace stands in for spaces inside a username while tokenizing.
	userSpace = "#"

	maxLineSize = 16 << 20
)
