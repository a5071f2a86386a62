// Package parser implements the recursive-descent walker that converts a
// flat token stream into an Oniguruma-style regex AST (spec.md §4).
package parser

import (
	"fmt"

	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// Parse converts tokens into a RegExp AST. flags are carried verbatim
// into the resulting ast.Flags node (spec §6.2); opts enables the
// optional structural optimizations of spec §4.4 and §4.6.
//
// Parse owns its context exclusively: two calls never share state and
// may run concurrently on distinct inputs (spec §5).
func Parse(tokens []token.Token, flags token.Flags, opts Options) (*ast.RegExp, error) {
	c := newContext(tokens, opts.Optimize)

	pattern := ast.NewPattern()
	root := ast.NewRegExp(pattern, ast.NewFlags(flags.IgnoreCase, flags.DotAll, flags.Extended))

	if err := c.parseAlternatives(pattern, ""); err != nil {
		return nil, err
	}

	if err := validate(c); err != nil {
		return nil, err
	}

	return root, nil
}

// alternativeOwner is implemented by every AST node that owns a slice of
// *ast.Alternative: Pattern, Group, CapturingGroup, and lookaround
// Assertion.
type alternativeOwner interface {
	ast.Node
	AppendAlternative(a *ast.Alternative)
}

// parseAlternatives runs the body loop shared by the pattern's top level
// and every group body (spec §4.1 main loop, §4.6 body loop). terminator
// is the token.Type that closes the body ("" for the top level, which is
// instead closed by token exhaustion). Reaching token exhaustion before a
// non-empty terminator is seen fails with UnclosedGroup.
func (c *context) parseAlternatives(owner alternativeOwner, terminator token.Type) error {
	alt := ast.NewAlternative()
	owner.AppendAlternative(alt)

	for {
		tok, ok := c.peek()
		if !ok {
			if terminator == "" {
				return nil
			}
			return c.fail(ErrUnclosedGroup, "group was not closed before the end of the pattern", nil)
		}

		if terminator != "" && tok.Type == terminator {
			c.advance()
			return nil
		}

		switch tok.Type {
		case token.Alternator:
			c.advance()
			alt = ast.NewAlternative()
			owner.AppendAlternative(alt)
			continue

		case token.Quantifier:
			c.advance()
			if err := c.applyQuantifier(alt, tok); err != nil {
				return err
			}
			continue
		}

		c.advance()
		node, err := c.dispatch(tok)
		if err != nil {
			return err
		}
		alt.Append(node)
	}
}

// dispatch consumes no further tokens than the single already-advanced
// tok (plus, for grouped constructs, whatever its nested sub-parse
// consumes) and returns exactly one node. It is shared by the
// alternative-body loop and the character-class-body loop (spec §4.1,
// §9 "shared sub-parsing").
func (c *context) dispatch(tok token.Token) (ast.Node, error) {
	switch tok.Type {
	case token.Assertion:
		return c.parseAssertionToken(tok)
	case token.Backreference:
		return c.parseBackreference(tok)
	case token.Character:
		return ast.NewCharacter(tok.Value), nil
	case token.CharacterClassOpen:
		return c.parseCharacterClass(tok)
	case token.CharacterSet:
		return c.parseCharacterSetToken(tok)
	case token.Directive:
		return c.parseDirectiveToken(tok)
	case token.GroupOpen:
		return c.parseGroup(tok)
	case token.Subroutine:
		return c.parseSubroutine(tok)
	case token.VariableLengthCharacterSet:
		return c.parseVariableLengthCharacterSetToken(tok)
	default:
		return nil, c.fail(ErrUnexpectedToken, fmt.Sprintf("unexpected token of type %s", tok.Type), &tok)
	}
}

// parseAssertionToken maps a simple (non-lookaround) assertion token's
// raw text to its AssertionKind (spec §4.1). Lookaround tokens are
// tokenized as GroupOpen and handled by parseGroup instead.
func (c *context) parseAssertionToken(tok token.Token) (ast.Node, error) {
	switch tok.Raw {
	case "^":
		return ast.NewAssertion(ast.AssertionLineStart, false), nil
	case "$":
		return ast.NewAssertion(ast.AssertionLineEnd, false), nil
	case `\A`:
		return ast.NewAssertion(ast.AssertionStringStart, false), nil
	case `\z`:
		return ast.NewAssertion(ast.AssertionStringEnd, false), nil
	case `\Z`:
		return ast.NewAssertion(ast.AssertionStringEndNewline, false), nil
	case `\b`:
		return ast.NewAssertion(ast.AssertionWordBoundary, false), nil
	case `\B`:
		return ast.NewAssertion(ast.AssertionWordBoundary, true), nil
	case `\G`:
		return ast.NewAssertion(ast.AssertionSearchStart, false), nil
	default:
		return nil, c.fail(ErrUnknownKind, fmt.Sprintf("unrecognized assertion %q", tok.Raw), &tok)
	}
}

func (c *context) parseDirectiveToken(tok token.Token) (ast.Node, error) {
	switch tok.Kind {
	case token.DirectiveFlags:
		return ast.NewDirective(ast.DirectiveFlags, tokenFlagsDelta(tok.Flags)), nil
	case token.DirectiveKeep:
		return ast.NewDirective(ast.DirectiveKeep, nil), nil
	default:
		return nil, c.fail(ErrUnknownKind, fmt.Sprintf("unrecognized directive kind %q", tok.Kind), &tok)
	}
}

func (c *context) parseVariableLengthCharacterSetToken(tok token.Token) (ast.Node, error) {
	switch tok.Kind {
	case token.VariableLengthNewline:
		return ast.NewVariableLengthCharacterSet(ast.VariableLengthNewline), nil
	case token.VariableLengthGrapheme:
		return ast.NewVariableLengthCharacterSet(ast.VariableLengthGrapheme), nil
	default:
		return nil, c.fail(ErrUnknownKind, fmt.Sprintf("unrecognized variable-length set kind %q", tok.Kind), &tok)
	}
}

func tokenFlagsDelta(f *token.FlagsDelta) *ast.FlagsDelta {
	if f == nil {
		return nil
	}
	return &ast.FlagsDelta{Enable: f.Enable, Disable: f.Disable}
}

// applyQuantifier pops the last element of alt and wraps it in a
// Quantifier (spec §4.7).
func (c *context) applyQuantifier(alt *ast.Alternative, tok token.Token) error {
	if alt.Last() == nil {
		return c.fail(ErrNothingToRepeat, "quantifier has no preceding element to repeat", &tok)
	}
	prev := alt.PopLast()

	max := tok.Max
	if max < 0 {
		max = ast.Unbounded
	}
	q, err := ast.NewQuantifier(prev, tok.Min, max, tok.Greedy, tok.Possessive)
	if err != nil {
		kind, ok := astErrorKind(err)
		if !ok {
			kind = ErrRangeOutOfOrder
		}
		return c.fail(kind, "quantifier max is less than min", &tok)
	}

	if q.Min != q.Max && ancestorIsLookbehind(alt) {
		return c.fail(ErrVariableLookbehind, "variable-length quantifier is not allowed inside a lookbehind", &tok)
	}

	alt.Append(q)
	return nil
}

// ancestorIsLookbehind reports whether any ancestor of n (starting with
// n's parent) is a lookbehind Assertion (spec §4.7).
func ancestorIsLookbehind(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if a, ok := p.(*ast.Assertion); ok && a.AssertionKind == ast.AssertionLookbehind {
			return true
		}
	}
	return false
}
