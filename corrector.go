package treebank

import (
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-treebank/normalize"
	"github.com/jamesainslie/go-treebank/scanner"
)

// tokenEdit is the one corrective mutation allowed on a section's otherwise
// append-only token sequence: remove the trailing tokens and append a single
// replacement. Modeling the correction as an explicit edit keeps the
// offset-sorted invariant checkable at the one place it is applied.
type tokenEdit struct {
	remove int
	insert Token
}

// abbrevEdit implements the one-lexeme-lookback abbreviation correction.
// When the section's last two tokens are a word immediately followed by a
// lone period, and the incoming lexeme starts lowercase, the period was an
// abbreviation marker rather than a sentence boundary: the two tokens merge
// into one spanning both. The correction looks back exactly two tokens and
// never cascades, so multi-level abbreviations such as "U.S." stay split.
func abbrevEdit(sec *Section, next scanner.Lexeme) (tokenEdit, bool) {
	n := len(sec.tokens)
	if n < 2 {
		return tokenEdit{}, false
	}
	dot := sec.tokens[n-1]
	word := sec.tokens[n-2]
	if sec.rawSpan(dot) != "." || word.End != dot.Start {
		return tokenEdit{}, false
	}
	r, _ := utf8.DecodeRuneInString(next.Text)
	if !unicode.IsLower(r) {
		return tokenEdit{}, false
	}
	return tokenEdit{
		remove: 2,
		insert: Token{Start: word.Start, End: dot.End},
	}, true
}

// applyEdit removes the edit's trailing tokens and appends the replacement,
// recomputing its normalized form. The replacement spans exactly the removed
// tokens, so the strict offset ordering of the sequence is preserved.
func (s *Section) applyEdit(e tokenEdit, pol normalize.Policy) {
	s.tokens = s.tokens[:len(s.tokens)-e.remove]
	tok := e.insert
	raw := s.rawSpan(tok)
	if norm := normalize.Apply(raw, pol); norm != raw {
		tok.Norm = norm
	}
	s.tokens = append(s.tokens, tok)
}

// rawSpan returns the verbatim substring a token covers, clamped to the
// section text so spans touching the scanner's sentinel stay in range.
func (s *Section) rawSpan(t Token) string {
	end := t.End
	if end > len(s.text) {
		end = len(s.text)
	}
	return s.text[t.Start:end]
}
