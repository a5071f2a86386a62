// Package ast defines the Abstract Syntax Tree nodes produced by package
// parser for Oniguruma-style regular expressions. The node taxonomy is
// closed: every node's Kind is one of the constants declared below, and
// downstream consumers may exhaustively switch on it.
package ast

import "errors"

// Errors returned by node constructors when an invariant would be
// violated at construction time. Callers in package parser translate
// these into the richer parser.Error diagnostics of spec §7.
var (
	// ErrRangeOutOfOrder is returned by NewQuantifier when max < min.
	ErrRangeOutOfOrder = errors.New("ast: quantifier max is less than min")

	// ErrInvalidRange is returned by NewCharacterClassRange when
	// max.Value < min.Value.
	ErrInvalidRange = errors.New("ast: character class range min is greater than max")

	// ErrInvalidGroupName is returned by NewCapturingGroup when name does
	// not match the accepted identifier grammar (spec §4.10).
	ErrInvalidGroupName = errors.New("ast: invalid capturing group name")
)

// Kind tags the variant of a Node. The set of values is closed; see
// spec.md §3.1.
type Kind string

const (
	KindRegExp                     Kind = "RegExp"
	KindPattern                    Kind = "Pattern"
	KindFlags                      Kind = "Flags"
	KindAlternative                Kind = "Alternative"
	KindGroup                      Kind = "Group"
	KindCapturingGroup             Kind = "CapturingGroup"
	KindAssertion                  Kind = "Assertion"
	KindCharacter                  Kind = "Character"
	KindCharacterSet               Kind = "CharacterSet"
	KindVariableLengthCharacterSet Kind = "VariableLengthCharacterSet"
	KindCharacterClass             Kind = "CharacterClass"
	KindCharacterClassIntersection Kind = "CharacterClassIntersection"
	KindCharacterClassRange        Kind = "CharacterClassRange"
	KindQuantifier                 Kind = "Quantifier"
	KindBackreference              Kind = "Backreference"
	KindSubroutine                 Kind = "Subroutine"
	KindDirective                  Kind = "Directive"
)

// Node is the interface every AST node implements. Parent returns the
// owning node, or nil for the root RegExp and for nodes not yet attached
// to a parent.
type Node interface {
	Kind() Kind
	Parent() Node
	SetParent(parent Node)
}

// node is embedded by every concrete node type. It carries the one field
// every node needs (the non-owning parent back-link) so each variant only
// declares its own additional fields, the way ast.ParserState centralized
// the teacher's one piece of shared bookkeeping.
type node struct {
	parent Node
}

func (n *node) Parent() Node { return n.parent }

func (n *node) SetParent(parent Node) { n.parent = parent }

// Unbounded marks a Quantifier.Max (or, by convention, any other
// "repeat forever" field) as having no upper bound.
const Unbounded = -1

// ---------------------------------------------------------------------
// RegExp / Pattern / Flags
// ---------------------------------------------------------------------

// RegExp is the root node of a parsed pattern.
type RegExp struct {
	node
	Pattern *Pattern
	Flags   *Flags
}

func (n *RegExp) Kind() Kind { return KindRegExp }

// NewRegExp creates the root node and wires Pattern/Flags ownership.
func NewRegExp(pattern *Pattern, flags *Flags) *RegExp {
	r := &RegExp{Pattern: pattern, Flags: flags}
	if pattern != nil {
		pattern.SetParent(r)
	}
	if flags != nil {
		flags.SetParent(r)
	}
	return r
}

// Pattern holds the top-level alternation of a RegExp.
type Pattern struct {
	node
	Alternatives []*Alternative
}

func (n *Pattern) Kind() Kind { return KindPattern }

// NewPattern creates an empty Pattern with no alternatives. Use
// AppendAlternative to add its first branch.
func NewPattern() *Pattern { return &Pattern{} }

// AppendAlternative adds a new alternation branch, owned by this Pattern.
func (n *Pattern) AppendAlternative(a *Alternative) {
	a.SetParent(n)
	n.Alternatives = append(n.Alternatives, a)
}

// Flags carries the pattern-level flags, passed through verbatim by the
// caller (spec §6.2).
type Flags struct {
	node
	IgnoreCase bool
	DotAll     bool
	Extended   bool
}

func (n *Flags) Kind() Kind { return KindFlags }

// NewFlags creates a Flags node.
func NewFlags(ignoreCase, dotAll, extended bool) *Flags {
	return &Flags{IgnoreCase: ignoreCase, DotAll: dotAll, Extended: extended}
}

// ---------------------------------------------------------------------
// Alternative
// ---------------------------------------------------------------------

// Alternative is one branch of an alternation: an ordered sequence of
// elements. An empty Elements slice is legal (an empty branch).
type Alternative struct {
	node
	Elements []Node
}

func (n *Alternative) Kind() Kind { return KindAlternative }

// NewAlternative creates an empty Alternative.
func NewAlternative() *Alternative { return &Alternative{} }

// Append adds an element to the end of this Alternative, owned by it.
func (n *Alternative) Append(e Node) {
	e.SetParent(n)
	n.Elements = append(n.Elements, e)
}

// Last returns the last element, or nil if Elements is empty.
func (n *Alternative) Last() Node {
	if len(n.Elements) == 0 {
		return nil
	}
	return n.Elements[len(n.Elements)-1]
}

// PopLast removes and returns the last element. It panics if Elements is
// empty; callers (the quantifier parser) must check Last() first.
func (n *Alternative) PopLast() Node {
	last := n.Elements[len(n.Elements)-1]
	n.Elements = n.Elements[:len(n.Elements)-1]
	return last
}

// ---------------------------------------------------------------------
// FlagsDelta (scoped inline flag changes)
// ---------------------------------------------------------------------

// FlagsDelta describes the enable/disable flag letters of a scoped
// modifier group or a Directive of kind "flags".
type FlagsDelta struct {
	Enable  string
	Disable string
}

// ---------------------------------------------------------------------
// Group / CapturingGroup
// ---------------------------------------------------------------------

// Group is a non-capturing group: plain (?:...), atomic (?>...), or a
// scoped inline-flag group (?i:...).
type Group struct {
	node
	Alternatives []*Alternative
	Atomic       bool
	Flags        *FlagsDelta // nil unless this group scopes a flag change
}

func (n *Group) Kind() Kind { return KindGroup }

// NewGroup creates an empty non-capturing Group.
func NewGroup(atomic bool, flags *FlagsDelta) *Group {
	return &Group{Atomic: atomic, Flags: flags}
}

// AppendAlternative adds a new alternation branch, owned by this Group.
func (n *Group) AppendAlternative(a *Alternative) {
	a.SetParent(n)
	n.Alternatives = append(n.Alternatives, a)
}

// CapturingGroup is a parenthesized sub-pattern whose match is recorded
// under Number and, optionally, Name.
type CapturingGroup struct {
	node
	Alternatives []*Alternative
	Number       int
	Name         string // empty if unnamed
}

func (n *CapturingGroup) Kind() Kind { return KindCapturingGroup }

// NewCapturingGroup creates an empty CapturingGroup, validating name per
// spec §4.10 when name is non-empty.
func NewCapturingGroup(number int, name string) (*CapturingGroup, error) {
	if name != "" && !ValidGroupName(name) {
		return nil, ErrInvalidGroupName
	}
	return &CapturingGroup{Number: number, Name: name}, nil
}

// AppendAlternative adds a new alternation branch, owned by this group.
func (n *CapturingGroup) AppendAlternative(a *Alternative) {
	a.SetParent(n)
	n.Alternatives = append(n.Alternatives, a)
}

// ---------------------------------------------------------------------
// Assertion
// ---------------------------------------------------------------------

// AssertionKind enumerates the zero-width assertions (spec §3.1).
type AssertionKind string

const (
	AssertionLineStart        AssertionKind = "line_start"
	AssertionLineEnd          AssertionKind = "line_end"
	AssertionStringStart      AssertionKind = "string_start"
	AssertionStringEnd        AssertionKind = "string_end"
	AssertionStringEndNewline AssertionKind = "string_end_newline"
	AssertionSearchStart      AssertionKind = "search_start"
	AssertionWordBoundary     AssertionKind = "word_boundary"
	AssertionLookahead        AssertionKind = "lookahead"
	AssertionLookbehind       AssertionKind = "lookbehind"
)

// Assertion is a zero-width assertion. Alternatives is populated only for
// the lookaround kinds (Lookahead, Lookbehind).
type Assertion struct {
	node
	AssertionKind AssertionKind
	Negate        bool
	Alternatives  []*Alternative
}

func (n *Assertion) Kind() Kind { return KindAssertion }

// NewAssertion creates a simple (non-lookaround) Assertion.
func NewAssertion(kind AssertionKind, negate bool) *Assertion {
	return &Assertion{AssertionKind: kind, Negate: negate}
}

// NewLookaround creates a lookahead or lookbehind Assertion with no
// alternatives yet; use AppendAlternative to populate its body.
func NewLookaround(kind AssertionKind, negate bool) *Assertion {
	return &Assertion{AssertionKind: kind, Negate: negate}
}

// AppendAlternative adds a new alternation branch to a lookaround,
// owned by this Assertion.
func (n *Assertion) AppendAlternative(a *Alternative) {
	a.SetParent(n)
	n.Alternatives = append(n.Alternatives, a)
}

// IsLookaround reports whether this assertion carries a body.
func (n *Assertion) IsLookaround() bool {
	return n.AssertionKind == AssertionLookahead || n.AssertionKind == AssertionLookbehind
}

// ---------------------------------------------------------------------
// Character / CharacterSet / VariableLengthCharacterSet
// ---------------------------------------------------------------------

// Character is a single literal code point.
type Character struct {
	node
	Value rune
}

func (n *Character) Kind() Kind { return KindCharacter }

// NewCharacter creates a Character node for the given code point.
func NewCharacter(value rune) *Character { return &Character{Value: value} }

// CharacterSetKind enumerates the built-in character-set shorthands
// (spec §3.1). The set is open-ended in the spec ("…"); flavor-specific
// kinds beyond the ones named there are passed through as-is.
type CharacterSetKind string

const (
	CharacterSetAny      CharacterSetKind = "any"
	CharacterSetDigit    CharacterSetKind = "digit"
	CharacterSetHex      CharacterSetKind = "hex"
	CharacterSetPosix    CharacterSetKind = "posix"
	CharacterSetProperty CharacterSetKind = "property"
	CharacterSetSpace    CharacterSetKind = "space"
	CharacterSetWord     CharacterSetKind = "word"
)

// negatableCharacterSetKinds are the kinds for which Negate is
// meaningful (spec §4.5).
var negatableCharacterSetKinds = map[CharacterSetKind]bool{
	CharacterSetDigit:    true,
	CharacterSetHex:      true,
	CharacterSetPosix:    true,
	CharacterSetProperty: true,
	CharacterSetSpace:    true,
	CharacterSetWord:     true,
}

// CharacterSetSupportsNegate reports whether kind is one of the
// negatable character-set kinds.
func CharacterSetSupportsNegate(kind CharacterSetKind) bool {
	return negatableCharacterSetKinds[kind]
}

// CharacterSet is a built-in character-set shorthand such as \d, \p{...},
// or [:alpha:].
type CharacterSet struct {
	node
	SetKind  CharacterSetKind
	Negate   bool
	Property string // set for kinds Posix and Property
}

func (n *CharacterSet) Kind() Kind { return KindCharacterSet }

// NewCharacterSet creates a CharacterSet node.
func NewCharacterSet(kind CharacterSetKind, negate bool, property string) *CharacterSet {
	return &CharacterSet{SetKind: kind, Negate: negate, Property: property}
}

// VariableLengthCharacterSetKind enumerates the variable-length
// character sets (spec §3.1).
type VariableLengthCharacterSetKind string

const (
	VariableLengthNewline  VariableLengthCharacterSetKind = "newline"
	VariableLengthGrapheme VariableLengthCharacterSetKind = "grapheme"
)

// VariableLengthCharacterSet is a construct that can match more than one
// code point, such as \R (newline) or \X (grapheme cluster).
type VariableLengthCharacterSet struct {
	node
	SetKind VariableLengthCharacterSetKind
}

func (n *VariableLengthCharacterSet) Kind() Kind { return KindVariableLengthCharacterSet }

// NewVariableLengthCharacterSet creates a VariableLengthCharacterSet node.
func NewVariableLengthCharacterSet(kind VariableLengthCharacterSetKind) *VariableLengthCharacterSet {
	return &VariableLengthCharacterSet{SetKind: kind}
}

// ---------------------------------------------------------------------
// CharacterClass / CharacterClassIntersection / CharacterClassRange
// ---------------------------------------------------------------------

// CharacterClass is a bracketed set expression. Elements either holds
// exactly one CharacterClassIntersection (the general case produced
// during parsing) or has been collapsed to direct member nodes by the
// optimizer (spec §3.3). The same type also represents the inner "base"
// of each intersection operand and any nested class appearing as a plain
// element of another class.
type CharacterClass struct {
	node
	Negate   bool
	Elements []Node
}

func (n *CharacterClass) Kind() Kind { return KindCharacterClass }

// NewCharacterClass creates an empty CharacterClass.
func NewCharacterClass(negate bool) *CharacterClass {
	return &CharacterClass{Negate: negate}
}

// AppendElement adds a direct member to this class (or class base),
// owned by it.
func (n *CharacterClass) AppendElement(e Node) {
	e.SetParent(n)
	n.Elements = append(n.Elements, e)
}

// Last returns the last element, or nil if Elements is empty.
func (n *CharacterClass) Last() Node {
	if len(n.Elements) == 0 {
		return nil
	}
	return n.Elements[len(n.Elements)-1]
}

// PopLast removes and returns the last element. It panics if Elements is
// empty.
func (n *CharacterClass) PopLast() Node {
	last := n.Elements[len(n.Elements)-1]
	n.Elements = n.Elements[:len(n.Elements)-1]
	return last
}

// CharacterClassIntersection groups the operands of a class intersection
// (a && b && c).
type CharacterClassIntersection struct {
	node
	Classes []*CharacterClass
}

func (n *CharacterClassIntersection) Kind() Kind { return KindCharacterClassIntersection }

// NewCharacterClassIntersection creates an empty intersection.
func NewCharacterClassIntersection() *CharacterClassIntersection {
	return &CharacterClassIntersection{}
}

// AppendClass adds an operand to the intersection, owned by it.
func (n *CharacterClassIntersection) AppendClass(c *CharacterClass) {
	c.SetParent(n)
	n.Classes = append(n.Classes, c)
}

// CharacterClassRange is an inclusive range a-z within a character
// class.
type CharacterClassRange struct {
	node
	Min *Character
	Max *Character
}

func (n *CharacterClassRange) Kind() Kind { return KindCharacterClassRange }

// NewCharacterClassRange creates a range node, enforcing
// Min.Value <= Max.Value (spec §3.3).
func NewCharacterClassRange(min, max *Character) (*CharacterClassRange, error) {
	if max.Value < min.Value {
		return nil, ErrInvalidRange
	}
	r := &CharacterClassRange{Min: min, Max: max}
	min.SetParent(r)
	max.SetParent(r)
	return r, nil
}

// ---------------------------------------------------------------------
// Quantifier
// ---------------------------------------------------------------------

// Quantifier repeats the immediately preceding element.
type Quantifier struct {
	node
	Min        int
	Max        int // Unbounded (-1) for no upper bound
	Greedy     bool
	Possessive bool
	Element    Node
}

func (n *Quantifier) Kind() Kind { return KindQuantifier }

// NewQuantifier creates a Quantifier wrapping element, enforcing
// max >= min unless max is Unbounded (spec §3.3).
func NewQuantifier(element Node, min, max int, greedy, possessive bool) (*Quantifier, error) {
	if max != Unbounded && max < min {
		return nil, ErrRangeOutOfOrder
	}
	q := &Quantifier{Min: min, Max: max, Greedy: greedy, Possessive: possessive, Element: element}
	element.SetParent(q)
	return q, nil
}

// ---------------------------------------------------------------------
// Backreference / Subroutine
// ---------------------------------------------------------------------

// Backreference refers back to an earlier capturing group, by Number
// (Name empty) or by Name (Number zero).
type Backreference struct {
	node
	Number int
	Name   string
}

func (n *Backreference) Kind() Kind { return KindBackreference }

// NewNumberedBackreference creates a numbered Backreference.
func NewNumberedBackreference(number int) *Backreference {
	return &Backreference{Number: number}
}

// NewNamedBackreference creates a named Backreference.
func NewNamedBackreference(name string) *Backreference {
	return &Backreference{Name: name}
}

// IsNamed reports whether this is a named (rather than numbered)
// backreference.
func (n *Backreference) IsNamed() bool { return n.Name != "" }

// Subroutine calls back into the sub-pattern of a capturing group
// without creating a new capture, by Number (Name empty) or by Name
// (Number zero).
type Subroutine struct {
	node
	Number int
	Name   string
}

func (n *Subroutine) Kind() Kind { return KindSubroutine }

// NewNumberedSubroutine creates a numbered Subroutine.
func NewNumberedSubroutine(number int) *Subroutine {
	return &Subroutine{Number: number}
}

// NewNamedSubroutine creates a named Subroutine.
func NewNamedSubroutine(name string) *Subroutine {
	return &Subroutine{Name: name}
}

// IsNamed reports whether this is a named (rather than numbered)
// subroutine call.
func (n *Subroutine) IsNamed() bool { return n.Name != "" }

// ---------------------------------------------------------------------
// Directive
// ---------------------------------------------------------------------

// DirectiveKind enumerates the inline directives (spec §3.1).
type DirectiveKind string

const (
	DirectiveFlags DirectiveKind = "flags"
	DirectiveKeep  DirectiveKind = "keep"
)

// Directive is an inline modifier: a scope-less flag change, or \K
// (keep).
type Directive struct {
	node
	DirectiveKind DirectiveKind
	Flags         *FlagsDelta // set only when DirectiveKind is DirectiveFlags
}

func (n *Directive) Kind() Kind { return KindDirective }

// NewDirective creates a Directive node.
func NewDirective(kind DirectiveKind, flags *FlagsDelta) *Directive {
	return &Directive{DirectiveKind: kind, Flags: flags}
}
