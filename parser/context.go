package parser

import (
	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// Options configures optional behaviors of Parse (spec §6.3).
type Options struct {
	// Optimize enables the structural rewrites of spec §4.4 and §4.6.
	// When false the AST retains full structural fidelity: character
	// class intersections are always wrapped, and redundant group
	// nesting is preserved.
	Optimize bool
}

// pendingSubroutine is a subroutine reference awaiting post-pass
// validation (spec §4.8, §4.11).
type pendingSubroutine struct {
	node       *ast.Subroutine
	tokenIndex int
}

// context carries the ambient, single-parse state threaded through the
// recursive descent walk: the cursor into tokens, the registrars for
// numbered and named capturing groups, the subroutines awaiting
// post-pass validation, and the "has a numeric reference appeared"
// flag. A single context is owned exclusively by one call to Parse; it
// is never shared across goroutines (spec §5).
type context struct {
	tokens   []token.Token
	current  int
	optimize bool

	capturingGroups []*ast.CapturingGroup
	namedGroups     map[string][]*ast.CapturingGroup

	pendingSubroutines []pendingSubroutine
	hasNumericRef      bool
}

func newContext(tokens []token.Token, optimize bool) *context {
	return &context{
		tokens:      tokens,
		optimize:    optimize,
		namedGroups: make(map[string][]*ast.CapturingGroup),
	}
}

func (c *context) atEnd() bool { return c.current >= len(c.tokens) }

// peek returns the token at the cursor without consuming it, and false
// if the cursor is at the end of the stream.
func (c *context) peek() (token.Token, bool) {
	if c.atEnd() {
		return token.Token{}, false
	}
	return c.tokens[c.current], true
}

// advance returns the token at the cursor and moves the cursor forward
// one position. It must only be called when atEnd() is false.
func (c *context) advance() token.Token {
	tok := c.tokens[c.current]
	c.current++
	return tok
}

// registerCapturingGroup appends g to the numbered registrar and, if g
// is named, to the named registrar. It must be called before the
// group's body is parsed so nested same-named groups register in
// source order (spec §4.6).
func (c *context) registerCapturingGroup(g *ast.CapturingGroup) {
	c.capturingGroups = append(c.capturingGroups, g)
	if g.Name != "" {
		c.namedGroups[g.Name] = append(c.namedGroups[g.Name], g)
	}
}

func (c *context) addPendingSubroutine(s *ast.Subroutine, tokenIndex int) {
	c.pendingSubroutines = append(c.pendingSubroutines, pendingSubroutine{node: s, tokenIndex: tokenIndex})
}

func (c *context) fail(kind ErrorKind, message string, tok *token.Token) error {
	e := newError(kind, message)
	if tok != nil {
		e.Raw = tok.Raw
	}
	e.TokenIndex = c.current
	return e
}
