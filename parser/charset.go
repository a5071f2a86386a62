package parser

import (
	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
	"github.com/vcschapp/oniguruma-to-es/unicodeprop"
)

// parseCharacterSetToken builds a CharacterSet node, normalizing and
// possibly reclassifying a "property" kind (spec §4.5).
func (c *context) parseCharacterSetToken(tok token.Token) (ast.Node, error) {
	kind := ast.CharacterSetKind(tok.Kind)
	property := tok.Property

	if kind == ast.CharacterSetProperty {
		normalized := unicodeprop.NormalizeName(property)
		if unicodeprop.PosixProperties[normalized] {
			kind = ast.CharacterSetPosix
			property = normalized
		} else {
			property = formatPropertyName(property)
		}
	}

	negate := tok.Negate
	if !ast.CharacterSetSupportsNegate(kind) {
		negate = false
	}

	return ast.NewCharacterSet(kind, negate, property), nil
}

// formatPropertyName resolves a \p{...} property name to its canonical
// target name via the property map, falling back to script-name
// reformatting when the name is unrecognized (spec §4.9).
func formatPropertyName(property string) string {
	if canonical, ok := unicodeprop.Resolve(property); ok {
		return canonical
	}
	return unicodeprop.ReformatScriptName(property)
}
