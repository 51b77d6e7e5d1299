// Package normalize rewrites raw lexeme text into its canonical
// Penn-Treebank-style form. Each rewrite family can be toggled independently
// through a Policy; with the zero Policy the input passes through unchanged.
//
// Apply is a pure function and idempotent: applying the same policy to its
// own output returns the output unchanged.
package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/jamesainslie/go-treebank/internal/charclass"
)

// Policy selects which rewrite families Apply performs.
type Policy struct {
	Quote      bool // typographic double quotes -> "
	Apostrophe bool // apostrophe variants -> '
	Currency   bool // currency symbols -> $, cents sign -> "cents"
	Ampersand  bool // ampersand glyph and &amp; -> &
	Fractions  bool // vulgar fraction glyphs -> "n/d"
	Ellipsis   bool // ellipsis glyph -> "..."
	MDash      bool // em-dash glyphs -> "--"
	Dash       bool // other non-ASCII dashes -> "-"
	HTMLSymbol bool // named symbol entities -> literal character
	HTMLAccent bool // named accent entities -> literal character

	UndoPennParens   bool // -LRB- etc. -> literal bracket
	UnescapeSlash    bool // \/ -> /
	UnescapeAsterisk bool // \* -> *
}

// AllPolicy returns a Policy with every rewrite family enabled.
func AllPolicy() Policy {
	return Policy{
		Quote:            true,
		Apostrophe:       true,
		Currency:         true,
		Ampersand:        true,
		Fractions:        true,
		Ellipsis:         true,
		MDash:            true,
		Dash:             true,
		HTMLSymbol:       true,
		HTMLAccent:       true,
		UndoPennParens:   true,
		UnescapeSlash:    true,
		UnescapeAsterisk: true,
	}
}

// Apply returns the normalized form of raw under p. It returns raw itself
// (no allocation) when no enabled family changes the text, so callers can
// detect the no-op case with a string comparison.
func Apply(raw string, p Policy) string {
	if raw == "" {
		return raw
	}

	// Whole-token rewrites first: bracket codes and entities are scanned as
	// single lexemes, so they are matched against the full text.
	if p.UndoPennParens {
		if lit, ok := charclass.PennBracket(raw); ok {
			return lit
		}
	}
	if (p.HTMLSymbol || p.HTMLAccent || p.Ampersand) && charclass.MatchEntity(raw) == len(raw) {
		if decoded, ok := decodeEntity(raw[1:len(raw)-1], p); ok {
			// The decoded character may itself belong to a rewrite family,
			// e.g. &frac12; with fraction expansion on.
			return applyRunes(decoded, p)
		}
	}

	return applyRunes(raw, p)
}

// applyRunes performs the per-rune rewrite families over s.
func applyRunes(s string, p Policy) string {
	var b strings.Builder
	changed := false

	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])

		if r == '\\' && i+w < len(s) {
			next := s[i+w]
			if (next == '/' && p.UnescapeSlash) || (next == '*' && p.UnescapeAsterisk) {
				b.WriteByte(next)
				changed = true
				i += w + 1
				continue
			}
		}

		if rep, ok := rewriteRune(r, p); ok {
			b.WriteString(rep)
			changed = true
		} else {
			b.WriteRune(r)
		}
		i += w
	}

	if !changed {
		return s
	}
	return b.String()
}

// rewriteRune maps a single rune under the enabled families.
func rewriteRune(r rune, p Policy) (string, bool) {
	switch {
	case p.Quote && r != '"' && charclass.IsDoubleQuote(r):
		return "\"", true
	case p.Apostrophe && r != '\'' && charclass.IsApostrophe(r):
		return "'", true
	case p.Currency && r == charclass.Cent:
		return "cents", true
	case p.Currency && r != '$' && charclass.IsCurrency(r):
		return "$", true
	case p.Ampersand && r == '＆': // fullwidth ampersand
		return "&", true
	case p.Fractions:
		if f, ok := charclass.Fraction(r); ok {
			return f, true
		}
	}
	switch {
	case p.Ellipsis && r == charclass.Ellipsis:
		return "...", true
	case p.MDash && charclass.IsEmDash(r):
		return "--", true
	case p.Dash && charclass.IsOtherDash(r):
		return "-", true
	}
	return "", false
}
