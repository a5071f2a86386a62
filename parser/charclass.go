package parser

import (
	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// parseCharacterClass parses a bracketed class body (spec §4.4). The
// three states of the §4.12 state machine (CLASS_BODY,
// CLASS_INTERSECTION_BODY, RANGE_EXPECTING_RHS) are modeled by plain
// recursion rather than an explicit state enum: the hyphen handler
// recurses back into dispatch for its right-hand side, and a fresh
// "base" class is pushed whenever "&&" is seen.
func (c *context) parseCharacterClass(tok token.Token) (ast.Node, error) {
	outer := ast.NewCharacterClass(tok.Negate)
	intersection := ast.NewCharacterClassIntersection()
	outer.AppendElement(intersection)

	base := ast.NewCharacterClass(false)
	intersection.AppendClass(base)

	for {
		next, ok := c.peek()
		if !ok {
			return nil, c.fail(ErrUnclosedClass, "character class was not closed before the end of the pattern", nil)
		}

		switch next.Type {
		case token.CharacterClassIntersector:
			c.advance()
			base = ast.NewCharacterClass(false)
			intersection.AppendClass(base)

		case token.CharacterClassClose:
			c.advance()
			if c.optimize {
				return optimizeCharacterClass(outer, intersection), nil
			}
			return outer, nil

		case token.CharacterClassHyphen:
			c.advance()
			node, err := c.parseClassHyphen(base)
			if err != nil {
				return nil, err
			}
			base.AppendElement(node)

		default:
			c.advance()
			node, err := c.dispatch(next)
			if err != nil {
				return nil, err
			}
			base.AppendElement(node)
		}
	}
}

// parseClassHyphen implements spec §4.3. prev is the last element
// already appended to base; the lookahead token (not yet consumed) is
// next.
func (c *context) parseClassHyphen(base *ast.CharacterClass) (ast.Node, error) {
	prev := base.Last()
	next, hasNext := c.peek()

	eligible := prev != nil && !isCharacterClassNode(prev) && hasNext &&
		next.Type != token.CharacterClassOpen &&
		next.Type != token.CharacterClassClose &&
		next.Type != token.CharacterClassIntersector

	if !eligible {
		return ast.NewCharacter('-'), nil
	}

	c.advance()
	rhs, err := c.dispatch(next)
	if err != nil {
		return nil, err
	}

	prevChar, prevOK := prev.(*ast.Character)
	rhsChar, rhsOK := rhs.(*ast.Character)
	if !prevOK || !rhsOK {
		return nil, c.fail(ErrInvalidRange, "character class range endpoints must both be single characters", &next)
	}

	base.PopLast()
	rng, err := ast.NewCharacterClassRange(prevChar, rhsChar)
	if err != nil {
		return nil, c.fail(ErrInvalidRange, "character class range is out of order", &next)
	}
	return rng, nil
}

func isCharacterClassNode(n ast.Node) bool {
	_, ok := n.(*ast.CharacterClass)
	return ok
}
