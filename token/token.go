// Package token defines the token contract package parser consumes
// (spec.md §6.1). The tokenizer that produces a []Token from source text
// is an external collaborator out of this repository's scope; this
// package only fixes the shape of its output so the parser core compiles
// and is testable standalone.
package token

// Type enumerates the token variants the walker dispatches on
// (spec §4.1).
type Type string

const (
	Alternator                 Type = "Alternator"
	Assertion                  Type = "Assertion"
	Backreference              Type = "Backreference"
	Character                  Type = "Character"
	CharacterClassHyphen       Type = "CharacterClassHyphen"
	CharacterClassOpen         Type = "CharacterClassOpen"
	CharacterClassClose        Type = "CharacterClassClose"
	CharacterClassIntersector  Type = "CharacterClassIntersector"
	CharacterSet               Type = "CharacterSet"
	Directive                  Type = "Directive"
	GroupOpen                  Type = "GroupOpen"
	GroupClose                 Type = "GroupClose"
	Quantifier                 Type = "Quantifier"
	Subroutine                 Type = "Subroutine"
	VariableLengthCharacterSet Type = "VariableLengthCharacterSet"
)

// GroupOpen kinds (spec §4.6).
const (
	GroupOpenCapturing  = "capturing"
	GroupOpenGroup      = "group"
	GroupOpenAtomic     = "atomic"
	GroupOpenLookahead  = "lookahead"
	GroupOpenLookbehind = "lookbehind"
)

// Directive kinds (spec §3.1).
const (
	DirectiveFlags = "flags"
	DirectiveKeep  = "keep"
)

// VariableLengthCharacterSet kinds (spec §3.1).
const (
	VariableLengthNewline  = "newline"
	VariableLengthGrapheme = "grapheme"
)

// FlagsDelta describes the enable/disable flag letters carried by a
// Directive token of kind "flags" or a GroupOpen token of kind "group".
type FlagsDelta struct {
	Enable  string
	Disable string
}

// Token is one lexeme of the flat stream the tokenizer hands to the
// parser. Not every field is meaningful for every Type; see spec §6.1
// for the field-to-type mapping.
type Token struct {
	Type Type
	Raw  string // original source text, used in diagnostics

	Value rune // Character

	Kind   string // Assertion / CharacterSet / Directive / GroupOpen / VariableLengthCharacterSet
	Negate bool   // Assertion (word_boundary), CharacterSet, CharacterClassOpen, GroupOpen (lookaround)

	Min, Max              int // Quantifier
	Greedy, Possessive    bool
	Number                int    // GroupOpen (capturing)
	Name                  string // GroupOpen (capturing)
	Property              string // CharacterSet (kind property)
	Flags                 *FlagsDelta
}

// Flags describes the pattern-level flags the caller supplies alongside
// the token stream (spec §6.2). They are carried verbatim into the
// resulting ast.Flags node; the parser performs no interpretation of
// them.
type Flags struct {
	IgnoreCase bool
	DotAll     bool
	Extended   bool
}
