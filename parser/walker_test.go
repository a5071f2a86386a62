package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

func TestParseQuantifierWithNothingToRepeatFails(t *testing.T) {
	tokens := []token.Token{quantifierTok(1, 3, true)}

	_, err := Parse(tokens, noFlags(), Options{})
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrNothingToRepeat, perr.Kind())
}

func TestParseQuantifierOutOfOrderFails(t *testing.T) {
	tokens := []token.Token{charTok('a'), quantifierTok(5, 2, true)}

	_, err := Parse(tokens, noFlags(), Options{})
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrRangeOutOfOrder, perr.Kind())
}

func TestParseUnboundedQuantifier(t *testing.T) {
	tokens := []token.Token{charTok('a'), {Type: token.Quantifier, Min: 0, Max: -1, Greedy: true}}

	root, err := Parse(tokens, noFlags(), Options{})
	require.NoError(t, err)
	q := firstElement(t, root).(*ast.Quantifier)
	require.Equal(t, ast.Unbounded, q.Max)
}

func TestParseAlternationProducesMultipleBranches(t *testing.T) {
	tokens := []token.Token{
		charTok('a'),
		{Type: token.Alternator},
		charTok('b'),
	}

	root, err := Parse(tokens, noFlags(), Options{})
	require.NoError(t, err)
	require.Len(t, root.Pattern.Alternatives, 2)
	require.Equal(t, 'a', root.Pattern.Alternatives[0].Elements[0].(*ast.Character).Value)
	require.Equal(t, 'b', root.Pattern.Alternatives[1].Elements[0].(*ast.Character).Value)
}

func TestParseUnclosedGroupFails(t *testing.T) {
	tokens := []token.Token{
		groupOpenTok(token.GroupOpenGroup, 0, ""),
		charTok('a'),
	}

	_, err := Parse(tokens, noFlags(), Options{})
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrUnclosedGroup, perr.Kind())
}

func TestParseSimpleAssertions(t *testing.T) {
	tests := []struct {
		raw  string
		want ast.AssertionKind
	}{
		{"^", ast.AssertionLineStart},
		{"$", ast.AssertionLineEnd},
		{`\A`, ast.AssertionStringStart},
		{`\z`, ast.AssertionStringEnd},
		{`\Z`, ast.AssertionStringEndNewline},
		{`\G`, ast.AssertionSearchStart},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tokens := []token.Token{{Type: token.Assertion, Raw: tt.raw}}
			root, err := Parse(tokens, noFlags(), Options{})
			require.NoError(t, err)
			a := firstElement(t, root).(*ast.Assertion)
			require.Equal(t, tt.want, a.AssertionKind)
		})
	}
}

func TestParseWordBoundaryNegation(t *testing.T) {
	tokens := []token.Token{{Type: token.Assertion, Raw: `\B`}}
	root, err := Parse(tokens, noFlags(), Options{})
	require.NoError(t, err)
	a := firstElement(t, root).(*ast.Assertion)
	require.Equal(t, ast.AssertionWordBoundary, a.AssertionKind)
	require.True(t, a.Negate)
}

func TestParseFlagsDirective(t *testing.T) {
	tokens := []token.Token{
		{Type: token.Directive, Kind: token.DirectiveFlags, Flags: &token.FlagsDelta{Enable: "i", Disable: "x"}},
	}
	root, err := Parse(tokens, noFlags(), Options{})
	require.NoError(t, err)
	d := firstElement(t, root).(*ast.Directive)
	require.Equal(t, ast.DirectiveFlags, d.DirectiveKind)
	require.Equal(t, "i", d.Flags.Enable)
	require.Equal(t, "x", d.Flags.Disable)
}

func TestParseKeepDirective(t *testing.T) {
	tokens := []token.Token{{Type: token.Directive, Kind: token.DirectiveKeep}}
	root, err := Parse(tokens, noFlags(), Options{})
	require.NoError(t, err)
	d := firstElement(t, root).(*ast.Directive)
	require.Equal(t, ast.DirectiveKeep, d.DirectiveKind)
	require.Nil(t, d.Flags)
}

func TestParseVariableLengthCharacterSets(t *testing.T) {
	tests := []struct {
		kind string
		want ast.VariableLengthCharacterSetKind
	}{
		{token.VariableLengthNewline, ast.VariableLengthNewline},
		{token.VariableLengthGrapheme, ast.VariableLengthGrapheme},
	}
	for _, tt := range tests {
		tokens := []token.Token{{Type: token.VariableLengthCharacterSet, Kind: tt.kind}}
		root, err := Parse(tokens, noFlags(), Options{})
		require.NoError(t, err)
		v := firstElement(t, root).(*ast.VariableLengthCharacterSet)
		require.Equal(t, tt.want, v.SetKind)
	}
}

func TestParseUnexpectedTokenFails(t *testing.T) {
	tokens := []token.Token{{Type: token.GroupClose}}

	_, err := Parse(tokens, noFlags(), Options{})
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrUnexpectedToken, perr.Kind())
}
