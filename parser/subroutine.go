package parser

import (
	"fmt"

	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// parseSubroutine accepts \g<...> and \g'...' tokens (spec §4.8).
// Resolution to an absolute group number happens here, at parse time, so
// that a forward "+n" reference is stable even if later mutation of the
// tree were to change the group count; existence/uniqueness of the
// resolved target is checked later by the post-pass validator (spec
// §4.11), not here.
func (c *context) parseSubroutine(tok token.Token) (ast.Node, error) {
	ref, ok := stripDelimited(tok.Raw, `\g<`, `>`)
	if !ok {
		ref, ok = stripDelimited(tok.Raw, `\g'`, `'`)
	}
	if !ok {
		return nil, c.fail(ErrUnknownKind, fmt.Sprintf("malformed subroutine call %q", tok.Raw), &tok)
	}

	var node *ast.Subroutine
	if sign, parsed, matched := parseSignedGroupRef(ref, true); matched {
		var num int
		switch sign {
		case "+":
			num = len(c.capturingGroups) + parsed
		case "-":
			num = len(c.capturingGroups) + 1 - parsed
		default:
			num = parsed
		}
		c.hasNumericRef = true
		node = ast.NewNumberedSubroutine(num)
	} else {
		node = ast.NewNamedSubroutine(ref)
	}

	c.addPendingSubroutine(node, c.current)
	return node, nil
}
