package parser

import (
	"fmt"

	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// parseGroup dispatches on the opening token's kind (spec §4.6).
func (c *context) parseGroup(tok token.Token) (ast.Node, error) {
	switch tok.Kind {
	case token.GroupOpenCapturing:
		return c.parseCapturingGroup(tok)
	case token.GroupOpenGroup:
		return c.parseNonCapturingGroup(tok, false)
	case token.GroupOpenAtomic:
		return c.parseNonCapturingGroup(tok, true)
	case token.GroupOpenLookahead:
		return c.parseLookaround(tok, ast.AssertionLookahead)
	case token.GroupOpenLookbehind:
		return c.parseLookaround(tok, ast.AssertionLookbehind)
	default:
		return nil, c.fail(ErrUnknownKind, fmt.Sprintf("unrecognized group opening kind %q", tok.Kind), &tok)
	}
}

func (c *context) parseCapturingGroup(tok token.Token) (ast.Node, error) {
	number := len(c.capturingGroups) + 1
	g, err := ast.NewCapturingGroup(number, tok.Name)
	if err != nil {
		kind, ok := astErrorKind(err)
		if !ok {
			kind = ErrInvalidGroupName
		}
		return nil, c.fail(kind, fmt.Sprintf("invalid capturing group name %q", tok.Name), &tok)
	}

	// Register before parsing the body so nested same-named groups
	// register in source order (spec §4.6).
	c.registerCapturingGroup(g)

	if err := c.parseAlternatives(g, token.GroupClose); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *context) parseNonCapturingGroup(tok token.Token, atomic bool) (ast.Node, error) {
	g := ast.NewGroup(atomic, tokenFlagsDelta(tok.Flags))
	if err := c.parseAlternatives(g, token.GroupClose); err != nil {
		return nil, err
	}
	if c.optimize {
		return collapseRedundantGroup(g), nil
	}
	return g, nil
}

func (c *context) parseLookaround(tok token.Token, kind ast.AssertionKind) (ast.Node, error) {
	a := ast.NewLookaround(kind, tok.Negate)
	if err := c.parseAlternatives(a, token.GroupClose); err != nil {
		return nil, err
	}
	return a, nil
}

// collapseRedundantGroup implements the redundant-nesting collapse of
// spec §4.6: a Group with exactly one alternative, exactly one element,
// whose sole element is itself a Group or CapturingGroup, collapses to
// that inner node when doing so is lossless.
func collapseRedundantGroup(outer *ast.Group) ast.Node {
	if len(outer.Alternatives) != 1 {
		return outer
	}
	elements := outer.Alternatives[0].Elements
	if len(elements) != 1 {
		return outer
	}

	switch inner := elements[0].(type) {
	case *ast.CapturingGroup:
		if outer.Atomic || outer.Flags != nil {
			return outer
		}
		return inner

	case *ast.Group:
		if !groupMergeLegal(outer, inner) {
			return outer
		}
		inner.Atomic = outer.Atomic || inner.Atomic
		if outer.Flags != nil {
			inner.Flags = outer.Flags
		}
		return inner

	default:
		return outer
	}
}

// groupMergeLegal reports whether collapsing outer into inner preserves
// semantics (spec §4.6): outer-atomic + inner-flags is legal (inner
// keeps its flags and gains atomic); outer-flags + inner-atomic, and
// outer-flags + inner-flags, are illegal (the merge would have to drop
// one side's setting).
func groupMergeLegal(outer, inner *ast.Group) bool {
	if outer.Flags != nil && inner.Atomic {
		return false
	}
	if outer.Flags != nil && inner.Flags != nil {
		return false
	}
	return true
}
