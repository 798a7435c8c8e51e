package wantlist

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/tradecycle/builder"
)

var (
	header    = regexp.MustCompile(`^(.*\)\s+)?[^(\s)]\S*$`)
	nameSplit = regexp.MustCompile(`[:\s]`)
)

// Parse reads a want-list document from r.
func Parse(r io.Reader, opts Options) (*Document, error) {
	p := &parser{
		opts:  opts,
		upper: cases.Upper(language.Und),
		doc:   &Document{},
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "wantlist: read line %d", p.line+1)
	}

	return p.doc, nil
}

type parser struct {
	opts    Options
	upper   cases.Caser
	doc     *Document
	line    int
	seen    map[string]struct{} // official names
	reading bool                // inside the official names block
}

func (p *parser) fail(msg string) error {
	return &ParseError{Line: p.line, Msg: msg}
}

func (p *parser) fold(s string) string {
	if p.opts.CaseSensitive {
		return s
	}
	return p.upper.String(s)
}

func (p *parser) parseLine(line string) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "#!"):
		return p.directives(line[2:])
	case strings.HasPrefix(line, "#"):
		return nil
	}

	if strings.Contains(line, "#") {
		if !p.reading {
			return p.fail("Comments (#...) cannot be used after beginning of line")
		}
		if strings.Contains(nameSplit.Split(line, 2)[0], "#") {
			return p.fail("# symbol cannot be used in an item name")
		}
	}

	if strings.EqualFold(line, beginOfficial) {
		if p.doc.Official != nil {
			return p.fail("Cannot begin official names more than once")
		}
		if len(p.doc.Lists) > 0 {
			return p.fail("Official names cannot be declared after first real want list")
		}
		p.doc.Official = []string{}
		p.seen = make(map[string]struct{})
		p.reading = true
		return nil
	}
	if strings.EqualFold(line, endOfficial) {
		if !p.reading {
			return p.fail("!END-OFFICIAL-NAMES without matching !BEGIN-OFFICIAL-NAMES")
		}
		p.reading = false
		return nil
	}
	if p.reading {
		return p.official(line)
	}

	return p.wantList(line)
}

func (p *parser) directives(body string) error {
	if len(p.doc.Lists) > 0 {
		return p.fail("Options (#!...) cannot be declared after first real want list")
	}
	if p.doc.Official != nil {
		return p.fail("Options (#!...) cannot be declared after official names")
	}
	for _, d := range strings.Fields(p.upper.String(body)) {
		switch d {
		case directiveCaseSensitive:
			p.opts.CaseSensitive = true
		case directiveRequireColons:
			p.opts.RequireColons = true
		case directiveRequireUsernames:
			p.opts.RequireUsernames = true
		}
		if p.opts.Directive != nil {
			if err := p.opts.Directive(d); err != nil {
				return &ParseError{Line: p.line, Msg: "Bad option " + d, Err: err}
			}
		}
		p.doc.Directives = append(p.doc.Directives, d)
		p.doc.DirectiveLines = append(p.doc.DirectiveLines, p.line)
	}
	return nil
}

func (p *parser) official(line string) error {
	switch line[0] {
	case ':':
		return p.fail("Line cannot begin with colon")
	case '%':
		return p.fail("Cannot give official names for dummy items")
	}
	name := p.fold(nameSplit.Split(line, 2)[0])
	if _, dup := p.seen[name]; dup {
		return p.fail("Official name " + name + " already defined")
	}
	p.seen[name] = struct{}{}
	p.doc.Official = append(p.doc.Official, name)
	return nil
}

func (p *parser) wantList(line string) error {
	var err error
	if line, err = p.username(line); err != nil {
		return err
	}

	// semicolons
	line = strings.ReplaceAll(line, ";", " ; ")
	if semi := strings.Index(line, ";"); semi != -1 {
		if semi < strings.Index(line, ":") {
			return p.fail("Semicolon cannot appear before colon")
		}
		before := strings.TrimSpace(line[:semi])
		if before == "" || strings.HasSuffix(before, ")") {
			return p.fail("Semicolon cannot appear before first item on line")
		}
	}

	// colon
	if colon := strings.Index(line, ":"); colon != -1 {
		if strings.LastIndex(line, ":") != colon {
			return p.fail("Cannot have more that one colon on a line")
		}
		if !header.MatchString(strings.TrimSpace(line[:colon])) {
			return p.fail("Must have exactly one item before a colon (:)")
		}
		line = line[:colon] + " " + line[colon+1:]
	} else if p.opts.RequireColons {
		return p.fail("Missing colon with REQUIRE-COLONS selected")
	}

	tokens := strings.Fields(p.fold(line))
	wl := builder.WantList{Line: p.line}
	if strings.HasPrefix(tokens[0], "(") {
		user := strings.TrimSuffix(strings.TrimPrefix(tokens[0], "("), ")")
		wl.User = strings.ReplaceAll(user, userSpace, " ")
		tokens = tokens[1:]
	}
	wl.Item = tokens[0]
	for _, tok := range tokens[1:] {
		if tok == ";" {
			wl.Wants = append(wl.Wants, builder.Want{Break: true})
			continue
		}
		wl.Wants = append(wl.Wants, builder.Want{Name: tok})
	}
	p.doc.Lists = append(p.doc.Lists, wl)

	return nil
}

// username validates the parenthesized owner and hides its spaces.
func (p *parser) username(line string) (string, error) {
	open := strings.Index(line, "(")
	if open == -1 && p.opts.RequireUsernames {
		return "", p.fail("Missing username with REQUIRE-USERNAMES selected")
	}
	switch {
	case open == 0:
		if strings.LastIndex(line, "(") > 0 {
			return "", p.fail("Cannot have more than one '(' per line")
		}
		closing := strings.Index(line, ")")
		switch {
		case closing == -1:
			return "", p.fail("Missing ')' in username")
		case closing == len(line)-1:
			return "", p.fail("Username cannot appear on a line by itself")
		case strings.LastIndex(line, ")") > closing:
			return "", p.fail("Cannot have more than one ')' per line")
		case closing == 1:
			return "", p.fail("Cannot have empty parentheses")
		}
		user := strings.ReplaceAll(line[:closing+1], " ", userSpace)
		return user + " " + line[closing+1:], nil
	case open > 0:
		return "", p.fail("Username can only be used at the front of a want list")
	case strings.Index(line, ")") > 0:
		return "", p.fail("Bad ')' on a line that does not have a '('")
	}
	return line, nil
}
