package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// (?i:(?>a)) with optimize:true: outer carries Flags, inner is atomic.
// Merging would have to drop one side, so the collapse is rejected.
func TestGroupMergeRejectedWhenOuterFlagsAndInnerAtomic(t *testing.T) {
	tokens := []token.Token{
		{Type: token.GroupOpen, Kind: token.GroupOpenGroup, Flags: &token.FlagsDelta{Enable: "i"}},
		{Type: token.GroupOpen, Kind: token.GroupOpenAtomic},
		charTok('a'),
		groupCloseTok(),
		groupCloseTok(),
	}

	root, err := Parse(tokens, noFlags(), Options{Optimize: true})
	require.NoError(t, err)

	outer, ok := firstElement(t, root).(*ast.Group)
	require.True(t, ok)
	require.NotNil(t, outer.Flags)
	require.Equal(t, "i", outer.Flags.Enable)

	inner, ok := outer.Alternatives[0].Elements[0].(*ast.Group)
	require.True(t, ok)
	require.True(t, inner.Atomic)
}

// (?>(?i:a)) with optimize:true: outer atomic, inner carries flags — this
// merge is lossless (atomic propagates, flags are kept) so it collapses.
func TestGroupMergeAllowedWhenOuterAtomicAndInnerFlags(t *testing.T) {
	tokens := []token.Token{
		{Type: token.GroupOpen, Kind: token.GroupOpenAtomic},
		{Type: token.GroupOpen, Kind: token.GroupOpenGroup, Flags: &token.FlagsDelta{Enable: "i"}},
		charTok('a'),
		groupCloseTok(),
		groupCloseTok(),
	}

	root, err := Parse(tokens, noFlags(), Options{Optimize: true})
	require.NoError(t, err)

	merged, ok := firstElement(t, root).(*ast.Group)
	require.True(t, ok)
	require.True(t, merged.Atomic)
	require.NotNil(t, merged.Flags)
	require.Equal(t, "i", merged.Flags.Enable)
}

func TestParseLookaheadNegated(t *testing.T) {
	tokens := []token.Token{
		{Type: token.GroupOpen, Kind: token.GroupOpenLookahead, Negate: true},
		charTok('a'),
		groupCloseTok(),
	}

	root, err := Parse(tokens, noFlags(), Options{})
	require.NoError(t, err)

	a, ok := firstElement(t, root).(*ast.Assertion)
	require.True(t, ok)
	require.Equal(t, ast.AssertionLookahead, a.AssertionKind)
	require.True(t, a.Negate)
}
