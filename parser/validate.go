package parser

import "fmt"

// validate runs the post-pass checks of spec §4.11, after the walk has
// produced a complete tree. It runs unconditionally, independent of
// Options.Optimize: these are semantic checks, not rewrites.
func validate(c *context) error {
	if c.hasNumericRef && len(c.namedGroups) > 0 {
		return newPostPassError(ErrNumericRefWithNamedCapture,
			"pattern mixes a numeric reference with one or more named capturing groups", nil)
	}

	for _, pending := range c.pendingSubroutines {
		if err := validateSubroutine(c, pending); err != nil {
			return err
		}
	}

	return nil
}

func validateSubroutine(c *context, pending pendingSubroutine) error {
	s := pending.node

	if !s.IsNamed() {
		if s.Number < 1 || s.Number > len(c.capturingGroups) {
			return newPostPassError(ErrSubroutineGroupUndefined,
				fmt.Sprintf("subroutine refers to group number %d, which does not exist", s.Number), &pending)
		}
		return nil
	}

	groups, ok := c.namedGroups[s.Name]
	if !ok || len(groups) == 0 {
		return newPostPassError(ErrSubroutineNameUndefined,
			fmt.Sprintf("subroutine refers to undefined group name %q", s.Name), &pending)
	}
	if len(groups) > 1 {
		return newPostPassError(ErrSubroutineNameAmbiguous,
			fmt.Sprintf("subroutine refers to ambiguous group name %q", s.Name), &pending)
	}
	return nil
}

// newPostPassError builds an *Error for a failure discovered after the
// walk has finished, when there is no current cursor position to read
// the offending token from (fail, by contrast, always reports relative
// to context.current). pending is nil for the single pattern-wide
// NumericRefWithNamedCapture check, which names no specific token.
func newPostPassError(kind ErrorKind, message string, pending *pendingSubroutine) *Error {
	e := newError(kind, message)
	if pending != nil {
		e.TokenIndex = pending.tokenIndex
	}
	return e
}
