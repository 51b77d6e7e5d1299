// Package scanner turns section text into a left-to-right sequence of raw
// lexemes with exact byte offsets. It is a longest-match engine over a fixed,
// priority-ordered rule table: at each position every active rule proposes a
// match length, the longest wins and ties go to the earlier-declared rule.
// A catch-all rule matching any single rune makes the scan total, so
// malformed input degrades to one-character lexemes instead of failing.
package scanner

import (
	"unicode"
	"unicode/utf8"
)

// Options selects which gated rule families are active. The bracket-code,
// entity, punctuation, currency, number, word and catch-all rules are always
// active.
type Options struct {
	// SGML keeps a balanced <...> run as one lexeme.
	SGML bool
	// Newlines emits newline runs as lexemes instead of eliding them.
	Newlines bool
	// Whitespace emits every whitespace run as a lexeme. Implies nothing
	// about Newlines; when both are set the newline rule wins ties on pure
	// newline runs.
	Whitespace bool
	// SplitDashedWords stops the word rule at hyphens so each segment and
	// the hyphen itself surface as separate lexemes.
	SplitDashedWords bool
}

// Lexeme is a raw matched span. Start and End are byte offsets into the
// scanned text, sentinel included; Text is always the exact substring.
type Lexeme struct {
	Text  string
	Start int
	End   int
}

// Scanner produces lexemes for one piece of text. It is single-use and not
// restartable; create a new Scanner per scan.
type Scanner struct {
	src   string // text plus sentinel newline
	pos   int
	opts  Options
	rules []rule
}

// New returns a Scanner over text. A sentinel newline is appended internally
// so rules that look ahead always see a defined character; the sentinel is
// part of the scanned range and callers that care about the original extent
// must trim lexeme material past len(text) themselves.
func New(text string, opts Options) *Scanner {
	return &Scanner{
		src:   text + "\n",
		opts:  opts,
		rules: buildRules(opts),
	}
}

// Next returns the next lexeme. The second result is false once the input is
// exhausted. Offsets across successive calls are strictly increasing.
func (s *Scanner) Next() (Lexeme, bool) {
	s.skipElided()
	if s.pos >= len(s.src) {
		return Lexeme{}, false
	}

	best := 0
	for _, r := range s.rules {
		if n := r.match(s.src, s.pos, s.opts); n > best {
			best = n
		}
	}
	// The catch-all rule guarantees best >= 1.
	lex := Lexeme{
		Text:  s.src[s.pos : s.pos+best],
		Start: s.pos,
		End:   s.pos + best,
	}
	s.pos += best
	return lex, true
}

// skipElided advances past whitespace that no active rule will claim.
func (s *Scanner) skipElided() {
	if s.opts.Whitespace {
		return
	}
	for s.pos < len(s.src) {
		r, w := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		if s.opts.Newlines && isEOL(r) {
			return
		}
		s.pos += w
	}
}
