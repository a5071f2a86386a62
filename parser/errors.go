package parser

import (
	"errors"
	"fmt"

	"github.com/vcschapp/oniguruma-to-es/ast"
)

// ErrorKind enumerates the parse-failure diagnostics of spec.md §7. There
// is no recovery: the first failure aborts the walk.
type ErrorKind string

const (
	ErrUnexpectedToken    ErrorKind = "UnexpectedToken"
	ErrUnclosedGroup      ErrorKind = "UnclosedGroup"
	ErrUnclosedClass      ErrorKind = "UnclosedClass"
	ErrInvalidRange       ErrorKind = "InvalidRange"
	ErrRangeOutOfOrder    ErrorKind = "RangeOutOfOrder"
	ErrNothingToRepeat    ErrorKind = "NothingToRepeat"
	ErrVariableLookbehind ErrorKind = "VariableLookbehind"

	ErrInsufficientGroups ErrorKind = "InsufficientGroups"
	ErrUndefinedGroupName ErrorKind = "UndefinedGroupName"
	ErrInvalidBackrefName ErrorKind = "InvalidBackrefName"

	ErrSubroutineGroupUndefined ErrorKind = "SubroutineGroupUndefined"
	ErrSubroutineNameUndefined  ErrorKind = "SubroutineNameUndefined"
	ErrSubroutineNameAmbiguous  ErrorKind = "SubroutineNameAmbiguous"

	ErrNumericRefWithNamedCapture ErrorKind = "NumericRefWithNamedCapture"
	ErrInvalidGroupName           ErrorKind = "InvalidGroupName"
	ErrUnknownKind                ErrorKind = "UnknownKind"
)

// Error is a typed parse failure. It identifies the offending construct
// by its raw token text where one is available, the way
// opal-lang-opal's parser.ParseError carries a Token alongside Message
// instead of folding everything into a bare string.
type Error struct {
	ErrorKind  ErrorKind
	Message    string
	TokenIndex int    // index into the token stream, -1 if not applicable
	Raw        string // raw token text, empty if not applicable
}

func (e *Error) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%s: %s (at %q, token %d)", e.ErrorKind, e.Message, e.Raw, e.TokenIndex)
	}
	return fmt.Sprintf("%s: %s", e.ErrorKind, e.Message)
}

// Kind returns the error's ErrorKind, for callers that prefer an
// accessor to a field access.
func (e *Error) Kind() ErrorKind { return e.ErrorKind }

// newError builds an *Error, defaulting TokenIndex to -1.
func newError(kind ErrorKind, message string) *Error {
	return &Error{ErrorKind: kind, Message: message, TokenIndex: -1}
}

// astErrorKind maps a sentinel error returned by an ast constructor to
// the ErrorKind the caller should report.
func astErrorKind(err error) (ErrorKind, bool) {
	switch {
	case errors.Is(err, ast.ErrRangeOutOfOrder):
		return ErrRangeOutOfOrder, true
	case errors.Is(err, ast.ErrInvalidRange):
		return ErrInvalidRange, true
	case errors.Is(err, ast.ErrInvalidGroupName):
		return ErrInvalidGroupName, true
	default:
		return "", false
	}
}
