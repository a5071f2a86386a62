// Package unicodeprop normalizes Unicode property names across regex
// flavor conventions (spec.md §4.9, §6.5).
//
// PosixProperties and JsUnicodePropertiesMap play the role of the
// read-only Unicode data tables spec §6.5 names as an external
// collaborator: in a production build they would be generated from the
// Unicode Character Database, but that generation pipeline is out of
// this repository's scope, so they are carried here as plain Go maps
// covering the POSIX bracket names and the general categories plus a
// handful of common binary properties and long/short aliases.
package unicodeprop

import "strings"

// PosixProperties is the set of POSIX bracket-expression class names,
// normalized (lowercase, no whitespace/underscores). Oniguruma also
// recognizes "word" and "ascii" as POSIX-like names alongside the twelve
// IEEE Std 1003.1 names.
var PosixProperties = map[string]bool{
	"alnum":  true,
	"alpha":  true,
	"ascii":  true,
	"blank":  true,
	"cntrl":  true,
	"digit":  true,
	"graph":  true,
	"lower":  true,
	"print":  true,
	"punct":  true,
	"space":  true,
	"upper":  true,
	"word":   true,
	"xdigit": true,
}

// JsUnicodePropertiesMap maps a normalized Unicode property name
// (lowercase, no whitespace/underscores) to its canonical target-flavor
// name. Names absent from this map are assumed to be script names and
// are run through ReformatScriptName instead (spec §4.9).
var JsUnicodePropertiesMap = map[string]string{
	// General categories, short and long forms.
	"l":  "Letter",
	"lu": "Uppercase_Letter",
	"ll": "Lowercase_Letter",
	"lt": "Titlecase_Letter",
	"lm": "Modifier_Letter",
	"lo": "Other_Letter",
	"m":  "Mark",
	"mn": "Nonspacing_Mark",
	"mc": "Spacing_Mark",
	"me": "Enclosing_Mark",
	"n":  "Number",
	"nd": "Decimal_Number",
	"nl": "Letter_Number",
	"no": "Other_Number",
	"p":  "Punctuation",
	"pc": "Connector_Punctuation",
	"pd": "Dash_Punctuation",
	"ps": "Open_Punctuation",
	"pe": "Close_Punctuation",
	"pi": "Initial_Punctuation",
	"pf": "Final_Punctuation",
	"po": "Other_Punctuation",
	"s":  "Symbol",
	"sm": "Math_Symbol",
	"sc": "Currency_Symbol",
	"sk": "Modifier_Symbol",
	"so": "Other_Symbol",
	"z":  "Separator",
	"zs": "Space_Separator",
	"zl": "Line_Separator",
	"zp": "Paragraph_Separator",
	"c":  "Other",
	"cc": "Control",
	"cf": "Format",
	"co": "Private_Use",
	"cs": "Surrogate",
	"cn": "Unassigned",

	"letter":             "Letter",
	"uppercaseletter":    "Uppercase_Letter",
	"lowercaseletter":    "Lowercase_Letter",
	"titlecaseletter":    "Titlecase_Letter",
	"mark":               "Mark",
	"number":             "Number",
	"punctuation":        "Punctuation",
	"symbol":             "Symbol",
	"separator":          "Separator",

	// Common binary properties.
	"alphabetic":    "Alphabetic",
	"anyletter":     "Alphabetic",
	"whitespace":    "White_Space",
	"uppercase":     "Uppercase",
	"lowercase":     "Lowercase",
	"ascii":         "ASCII",
	"any":           "Any",
	"assigned":      "Assigned",
	"emoji":         "Emoji",
	"idstart":       "ID_Start",
	"idcontinue":    "ID_Continue",
}

// NormalizeName lower-cases the ASCII letters of s (other letters are
// kept as they are) and strips spaces, tabs, newlines and underscores,
// matching how Oniguruma and downstream consumers compare property
// names loosely (spec §4.9, §4.5).
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '_':
			continue
		default:
			b.WriteRune(toLowerASCII(r))
		}
	}
	return b.String()
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// Resolve normalizes name and looks it up in JsUnicodePropertiesMap,
// returning the canonical target name and true on a hit. On a miss, the
// caller should fall back to ReformatScriptName.
func Resolve(name string) (canonical string, ok bool) {
	normalized := NormalizeName(name)
	canonical, ok = JsUnicodePropertiesMap[normalized]
	return canonical, ok
}

// ReformatScriptName reformats an unrecognized property name into
// canonical script casing: trim surrounding whitespace, collapse
// internal whitespace to underscores, split camelCase word boundaries
// with underscores, and Titlecase each resulting word (spec §4.9).
//
// No fallback lookup is performed here: if the heuristic produces a name
// nobody recognizes, that name is returned as-is — validating it belongs
// to a downstream consumer, not this parser.
func ReformatScriptName(s string) string {
	words := splitWords(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = titlecase(w)
	}
	return strings.Join(words, "_")
}

// splitWords scans s once, the way unescape.JavaStringLiteral scans its
// input once, emitting a new word whenever it crosses whitespace,
// an underscore/hyphen separator, or a lowercase-to-uppercase boundary
// (the camelCase split).
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == ' ' || r == '\t' || r == '_' || r == '-':
			flush()
		case i > 0 && isUpper(r) && isLower(runes[i-1]):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

// titlecase upper-cases the first rune of w and lower-cases the rest.
func titlecase(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	runes[0] = toUpperASCII(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = toLowerASCII(runes[i])
	}
	return string(runes)
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
