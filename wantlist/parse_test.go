package wantlist_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/wantlist"
)

const sample = `#! ALLOW-DUMMIES require-colons
# a comment

!BEGIN-OFFICIAL-NAMES
alpha   the first copy
beta # shelf two
!END-OFFICIAL-NAMES
(jo ann) alpha : beta ; gamma
(bob) beta:alpha
`

func TestParseDocument(t *testing.T) {
	doc, err := wantlist.Parse(strings.NewReader(sample), wantlist.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ALLOW-DUMMIES", "REQUIRE-COLONS"}, doc.Directives)
	assert.Equal(t, []int{1, 1}, doc.DirectiveLines)
	assert.Equal(t, []string{"ALPHA", "BETA"}, doc.Official)
	require.Len(t, doc.Lists, 2)

	assert.Equal(t, builder.WantList{
		User: "JO ANN",
		Item: "ALPHA",
		Wants: []builder.Want{
			{Name: "BETA"}, {Break: true}, {Name: "GAMMA"},
		},
		Line: 8,
	}, doc.Lists[0])
	assert.Equal(t, "BOB", doc.Lists[1].User)
	assert.Equal(t, []builder.Want{{Name: "ALPHA"}}, doc.Lists[1].Wants)
}

func TestParseCaseSensitive(t *testing.T) {
	doc, err := wantlist.Parse(strings.NewReader("#! case-sensitive\n(Ann) Book : game\n"), wantlist.Options{})
	require.NoError(t, err)
	require.Len(t, doc.Lists, 1)
	assert.Equal(t, "Ann", doc.Lists[0].User)
	assert.Equal(t, "Book", doc.Lists[0].Item)
	assert.Equal(t, "game", doc.Lists[0].Wants[0].Name)

	doc, err = wantlist.Parse(strings.NewReader("Book game\n"), wantlist.Options{CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, "Book", doc.Lists[0].Item)
}

func TestParseWithoutColons(t *testing.T) {
	doc, err := wantlist.Parse(strings.NewReader("A B C\nB A\nC\n"), wantlist.Options{})
	require.NoError(t, err)
	require.Len(t, doc.Lists, 3)
	assert.Len(t, doc.Lists[0].Wants, 2)
	assert.Empty(t, doc.Lists[2].Wants)
	assert.Nil(t, doc.Official)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		msg   string
	}{
		{"late directive", "A : B\n#! CASE-SENSITIVE", 2, "Options (#!...) cannot be declared after first real want list"},
		{"inline comment", "A : B # c", 1, "Comments (#...) cannot be used after beginning of line"},
		{"semicolon before colon", "A ; B : C", 1, "Semicolon cannot appear before colon"},
		{"leading semicolon", "(ann) ; A", 1, "Semicolon cannot appear before first item on line"},
		{"two colons", "A : B : C", 1, "Cannot have more that one colon on a line"},
		{"two items before colon", "A B : C", 1, "Must have exactly one item before a colon (:)"},
		{"missing colon", "#! REQUIRE-COLONS\nA B", 2, "Missing colon with REQUIRE-COLONS selected"},
		{"missing username", "#! REQUIRE-USERNAMES\nA : B", 2, "Missing username with REQUIRE-USERNAMES selected"},
		{"unclosed username", "(ann", 1, "Missing ')' in username"},
		{"username alone", "(ann)", 1, "Username cannot appear on a line by itself"},
		{"empty username", "() A : B", 1, "Cannot have empty parentheses"},
		{"late username", "A (ann) : B", 1, "Username can only be used at the front of a want list"},
		{"stray paren", "A : B)", 1, "Bad ')' on a line that does not have a '('"},
		{"two open parens", "(a) (b) A", 1, "Cannot have more than one '(' per line"},
		{"two close parens", "(a)) A", 1, "Cannot have more than one ')' per line"},
		{"unmatched end", "!END-OFFICIAL-NAMES", 1, "!END-OFFICIAL-NAMES without matching !BEGIN-OFFICIAL-NAMES"},
		{"second begin", "!BEGIN-OFFICIAL-NAMES\n!BEGIN-OFFICIAL-NAMES", 2, "Cannot begin official names more than once"},
		{"late official", "A : B\n!BEGIN-OFFICIAL-NAMES", 2, "Official names cannot be declared after first real want list"},
		{"duplicate official", "!BEGIN-OFFICIAL-NAMES\nA\na", 3, "Official name A already defined"},
		{"dummy official", "!BEGIN-OFFICIAL-NAMES\n%A", 2, "Cannot give official names for dummy items"},
		{"colon official", "!BEGIN-OFFICIAL-NAMES\n:A", 2, "Line cannot begin with colon"},
		{"hash in name", "!BEGIN-OFFICIAL-NAMES\nA#B copy", 2, "# symbol cannot be used in an item name"},
		{"directive after official", "!BEGIN-OFFICIAL-NAMES\nA\n!END-OFFICIAL-NAMES\n#! CASE-SENSITIVE", 4, "Options (#!...) cannot be declared after official names"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wantlist.Parse(strings.NewReader(tc.input), wantlist.Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, wantlist.ErrSyntax)

			var pe *wantlist.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.msg, pe.Msg)
		})
	}
}

func TestParseErrorString(t *testing.T) {
	err := &wantlist.ParseError{Line: 3, Msg: "Bad thing"}
	assert.Equal(t, "wantlist: Bad thing (line 3)", err.Error())
}

func TestParseRejectsDirectiveWithLine(t *testing.T) {
	unknown := errors.New("unknown option")
	var seen []string
	opts := wantlist.Options{Directive: func(token string) error {
		if token == "FROBNICATE" {
			return unknown
		}
		seen = append(seen, token)
		return nil
	}}

	_, err := wantlist.Parse(strings.NewReader("#! ALLOW-DUMMIES\n# note\n#! frobnicate\nA : B\n"), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, unknown)
	assert.NotErrorIs(t, err, wantlist.ErrSyntax)
	assert.Equal(t, []string{"ALLOW-DUMMIES"}, seen)

	var pe *wantlist.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "wantlist: Bad option FROBNICATE: unknown option (line 3)", err.Error())
}
