package ast

import "unicode"

// ValidGroupName reports whether name matches the identifier grammar
// this parser accepts for capturing-group names (spec §4.10):
//
//	^[$_\p{IDS}][$‌‍\p{IDC}]*$
//
// Oniguruma's own name grammar is strictly broader; this parser
// intentionally narrows it to the identifier grammar acceptable to
// downstream consumers, rejecting names that would not be portable.
func ValidGroupName(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !isIdentifierStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentifierContinue(r) {
			return false
		}
	}
	return true
}

const (
	zeroWidthNonJoiner = '‌'
	zeroWidthJoiner    = '‍'
)

func isIdentifierStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.IsOneOf(idStartCategories, r)
}

func isIdentifierContinue(r rune) bool {
	if r == '$' || r == zeroWidthNonJoiner || r == zeroWidthJoiner {
		return true
	}
	return unicode.IsOneOf(idContinueCategories, r)
}

// idStartCategories approximates Unicode's ID_Start (\p{IDS}) property
// using the general-category tables the standard library ships.
var idStartCategories = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
}

// idContinueCategories approximates ID_Continue (\p{IDC}): ID_Start plus
// combining marks, digits, and connector punctuation.
var idContinueCategories = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
	unicode.Mn,
	unicode.Mc,
	unicode.Nd,
	unicode.Pc,
	unicode.Other_ID_Continue,
}
