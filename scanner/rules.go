package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-treebank/internal/charclass"
)

// rule proposes a match at a position. match returns the number of bytes the
// rule would consume, or 0 when it does not apply.
type rule struct {
	name  string
	match func(src string, pos int, opts Options) int
}

// buildRules assembles the active rule table in declaration-priority order.
// Gated rules are left out entirely so the hot loop never re-checks options.
func buildRules(opts Options) []rule {
	rules := make([]rule, 0, 9)
	if opts.SGML {
		rules = append(rules, rule{"sgml", matchSGML})
	}
	if opts.Newlines {
		rules = append(rules, rule{"newline", matchNewlineRun})
	}
	if opts.Whitespace {
		rules = append(rules, rule{"whitespace", matchWhitespaceRun})
	}
	rules = append(rules,
		rule{"penn-bracket", matchPennBracket},
		rule{"entity", matchEntity},
		rule{"punct-run", matchPunctRun},
		rule{"currency", matchCurrency},
		rule{"number", matchNumber},
		rule{"word", matchWord},
		rule{"any", matchAny},
	)
	return rules
}

// eolMarkers are the runes treated as line breaks by the newline rule.
const eolMarkers = "\n\v\f\r\u0085\u2028\u2029"

func isEOL(r rune) bool {
	for _, m := range eolMarkers {
		if r == m {
			return true
		}
	}
	return false
}

// matchSGML consumes a balanced <...> run as a single lexeme. An unterminated
// tag (no closing > before a line break) does not match and the < degrades to
// a single-character lexeme.
func matchSGML(src string, pos int, _ Options) int {
	if src[pos] != '<' {
		return 0
	}
	for i := pos + 1; i < len(src); i++ {
		switch src[i] {
		case '>':
			return i + 1 - pos
		case '\n', '\r':
			return 0
		}
	}
	return 0
}

func matchNewlineRun(src string, pos int, _ Options) int {
	i := pos
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !isEOL(r) {
			break
		}
		i += w
	}
	return i - pos
}

func matchWhitespaceRun(src string, pos int, _ Options) int {
	i := pos
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += w
	}
	return i - pos
}

func matchPennBracket(src string, pos int, _ Options) int {
	return charclass.MatchPennBracket(src[pos:])
}

func matchEntity(src string, pos int, _ Options) int {
	return charclass.MatchEntity(src[pos:])
}

// matchPunctRun groups adjacent repeated sentence-final punctuation, e.g.
// "...", "?!?" or an ellipsis glyph followed by a period. Single marks do not
// match here; they fall through to the catch-all rule.
func matchPunctRun(src string, pos int, _ Options) int {
	i := pos
	count := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !charclass.IsSentenceFinal(r) {
			break
		}
		i += w
		count++
	}
	if count < 2 {
		return 0
	}
	return i - pos
}

func matchCurrency(src string, pos int, _ Options) int {
	r, w := utf8.DecodeRuneInString(src[pos:])
	if charclass.IsCurrency(r) {
		return w
	}
	return 0
}

// matchNumber consumes a digit run, allowing a comma or period that sits
// between two digits ("1,234.56" is one lexeme).
func matchNumber(src string, pos int, _ Options) int {
	if !isDigit(src[pos]) {
		return 0
	}
	i := pos + 1
	for i < len(src) {
		c := src[i]
		switch {
		case isDigit(c):
			i++
		case (c == ',' || c == '.') && i+1 < len(src) && isDigit(src[i+1]):
			i += 2
		default:
			return i - pos
		}
	}
	return i - pos
}

// matchWord consumes a maximal run of letters and digits, with apostrophes
// and hyphens accepted only between two word characters. With
// SplitDashedWords set, hyphens end the run so each segment surfaces on its
// own.
func matchWord(src string, pos int, opts Options) int {
	r, w := utf8.DecodeRuneInString(src[pos:])
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	i := pos + w
	for i < len(src) {
		r, w = utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			i += w
		case charclass.IsApostrophe(r) && startsWordChar(src[i+w:]):
			i += w
		case r == '-' && !opts.SplitDashedWords && startsWordChar(src[i+w:]):
			i += w
		case r == '\\' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			// Penn-Treebank escape: \/ and \* stay inside the word run
			// ("1\/2" is one lexeme).
			i += 2
		default:
			return i - pos
		}
	}
	return i - pos
}

// matchAny is the catch-all rule: one rune, always matches.
func matchAny(src string, pos int, _ Options) int {
	_, w := utf8.DecodeRuneInString(src[pos:])
	return w
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func startsWordChar(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
