package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQuantifierRejectsOutOfOrderRange(t *testing.T) {
	c := NewCharacter('a')
	_, err := NewQuantifier(c, 3, 2, true, false)
	require.ErrorIs(t, err, ErrRangeOutOfOrder)
}

func TestNewQuantifierAllowsUnboundedMax(t *testing.T) {
	c := NewCharacter('a')
	q, err := NewQuantifier(c, 2, Unbounded, true, false)
	require.NoError(t, err)
	require.Equal(t, Unbounded, q.Max)
	require.Same(t, q, c.Parent())
}

func TestNewCharacterClassRangeRejectsDescendingRange(t *testing.T) {
	min := NewCharacter('z')
	max := NewCharacter('a')
	_, err := NewCharacterClassRange(min, max)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewCharacterClassRangeWiresParent(t *testing.T) {
	min := NewCharacter('a')
	max := NewCharacter('z')
	r, err := NewCharacterClassRange(min, max)
	require.NoError(t, err)
	require.Same(t, r, min.Parent())
	require.Same(t, r, max.Parent())
}

func TestNewCapturingGroupRejectsInvalidName(t *testing.T) {
	_, err := NewCapturingGroup(1, "1bad")
	require.ErrorIs(t, err, ErrInvalidGroupName)
}

func TestNewCapturingGroupAcceptsUnderscoreName(t *testing.T) {
	g, err := NewCapturingGroup(1, "_under_score1")
	require.NoError(t, err)
	require.Equal(t, "_under_score1", g.Name)
}

func TestAlternativeAppendSetsParent(t *testing.T) {
	alt := NewAlternative()
	ch := NewCharacter('x')
	alt.Append(ch)
	require.Same(t, alt, ch.Parent())
	require.Same(t, ch, alt.Last())
}

func TestAlternativePopLast(t *testing.T) {
	alt := NewAlternative()
	a := NewCharacter('a')
	b := NewCharacter('b')
	alt.Append(a)
	alt.Append(b)

	popped := alt.PopLast()
	require.Same(t, b, popped)
	require.Same(t, a, alt.Last())
}

func TestCharacterSetSupportsNegate(t *testing.T) {
	require.True(t, CharacterSetSupportsNegate(CharacterSetDigit))
	require.True(t, CharacterSetSupportsNegate(CharacterSetProperty))
	require.False(t, CharacterSetSupportsNegate(CharacterSetAny))
}

func TestBackreferenceIsNamed(t *testing.T) {
	numbered := NewNumberedBackreference(1)
	require.False(t, numbered.IsNamed())

	named := NewNamedBackreference("foo")
	require.True(t, named.IsNamed())
}

func TestSubroutineIsNamed(t *testing.T) {
	numbered := NewNumberedSubroutine(2)
	require.False(t, numbered.IsNamed())

	named := NewNamedSubroutine("bar")
	require.True(t, named.IsNamed())
}

func TestGroupAppendAlternativeWiresParent(t *testing.T) {
	g := NewGroup(false, nil)
	alt := NewAlternative()
	g.AppendAlternative(alt)
	require.Same(t, g, alt.Parent())
	require.Len(t, g.Alternatives, 1)
}

func TestCharacterClassAppendElementAndPop(t *testing.T) {
	cc := NewCharacterClass(false)
	ch := NewCharacter('m')
	cc.AppendElement(ch)
	require.Same(t, cc, ch.Parent())
	require.Same(t, ch, cc.Last())

	popped := cc.PopLast()
	require.Same(t, ch, popped)
	require.Nil(t, cc.Last())
}

func TestCharacterClassIntersectionAppendClass(t *testing.T) {
	inter := NewCharacterClassIntersection()
	base := NewCharacterClass(false)
	inter.AppendClass(base)
	require.Same(t, inter, base.Parent())
	require.Len(t, inter.Classes, 1)
}

func TestAssertionIsLookaround(t *testing.T) {
	simple := NewAssertion(AssertionLineStart, false)
	require.False(t, simple.IsLookaround())

	look := NewLookaround(AssertionLookbehind, false)
	require.True(t, look.IsLookaround())
}

func TestErrorsAreDistinctSentinels(t *testing.T) {
	require.False(t, errors.Is(ErrRangeOutOfOrder, ErrInvalidRange))
	require.False(t, errors.Is(ErrInvalidRange, ErrInvalidGroupName))
}
