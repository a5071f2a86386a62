package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vcschapp/oniguruma-to-es/ast"
	"github.com/vcschapp/oniguruma-to-es/token"
)

// parseBackreference accepts tokens of form \n, \nn, \nnn, \k<name>,
// \k'name', \k<n>, \k<-n> (and single-quote variants) (spec §4.2).
func (c *context) parseBackreference(tok token.Token) (ast.Node, error) {
	raw := tok.Raw

	if inner, ok := stripDelimited(raw, `\k<`, `>`); ok {
		return c.resolveDelimitedBackref(inner, tok)
	}
	if inner, ok := stripDelimited(raw, `\k'`, `'`); ok {
		return c.resolveDelimitedBackref(inner, tok)
	}

	// Bare \n / \nn / \nnn form.
	digits := strings.TrimPrefix(raw, `\`)
	num, ok := parseGroupRefDigits(digits)
	if !ok {
		return nil, c.fail(ErrUnknownKind, fmt.Sprintf("malformed backreference %q", raw), &tok)
	}
	return c.resolveNumberedBackref(num, tok)
}

// resolveDelimitedBackref handles the \k<...>/\k'...' forms, where ref
// is the text between the delimiters.
func (c *context) resolveDelimitedBackref(ref string, tok token.Token) (ast.Node, error) {
	if sign, parsed, ok := parseSignedGroupRef(ref, false); ok {
		var num int
		if sign == "-" {
			num = len(c.capturingGroups) + 1 - parsed
		} else {
			num = parsed
		}
		if parsed > len(c.capturingGroups) {
			return nil, c.fail(ErrInsufficientGroups, fmt.Sprintf("backreference to group %d but only %d group(s) exist so far", parsed, len(c.capturingGroups)), &tok)
		}
		c.hasNumericRef = true
		return ast.NewNumberedBackreference(num), nil
	}

	if strings.ContainsAny(ref, "-+") {
		return nil, c.fail(ErrInvalidBackrefName, fmt.Sprintf("%q is not a valid backreference name", ref), &tok)
	}

	groups, ok := c.namedGroups[ref]
	if !ok || len(groups) == 0 {
		return nil, c.fail(ErrUndefinedGroupName, fmt.Sprintf("no capturing group named %q", ref), &tok)
	}
	return ast.NewNamedBackreference(ref), nil
}

func (c *context) resolveNumberedBackref(num int, tok token.Token) (ast.Node, error) {
	if num < 1 || num > len(c.capturingGroups) {
		return nil, c.fail(ErrInsufficientGroups, fmt.Sprintf("backreference to group %d but only %d group(s) exist so far", num, len(c.capturingGroups)), &tok)
	}
	c.hasNumericRef = true
	return ast.NewNumberedBackreference(num), nil
}

// stripDelimited reports whether s starts with prefix and ends with
// suffix (with at least that much content), returning the text between
// them.
func stripDelimited(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) || len(s) < len(prefix)+len(suffix) {
		return "", false
	}
	return s[len(prefix) : len(s)-len(suffix)], true
}

// parseSignedGroupRef matches ^(-?)0*([1-9]\d*)$, or, when allowPlus is
// true, ^([-+]?)0*([1-9]\d*)$ (spec §4.2, §4.8). It returns the sign
// ("", "-", or "+"), the parsed magnitude, and whether s matched.
func parseSignedGroupRef(s string, allowPlus bool) (sign string, parsed int, ok bool) {
	if s == "" {
		return "", 0, false
	}
	i := 0
	switch s[0] {
	case '-':
		sign = "-"
		i++
	case '+':
		if allowPlus {
			sign = "+"
			i++
		}
	}
	digits := s[i:]
	n, ok := parseGroupRefDigits(digits)
	if !ok {
		return "", 0, false
	}
	return sign, n, true
}

// parseGroupRefDigits matches 0*([1-9]\d*) and returns the parsed value.
func parseGroupRefDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	if s[i] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
