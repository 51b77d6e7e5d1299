package treebank

import (
	"github.com/jamesainslie/go-treebank/normalize"
	"github.com/jamesainslie/go-treebank/scanner"
)

// Config is the immutable option set governing one tokenizer instance. The
// Tokenize* options activate scanner rule families; the Normalize* options
// activate normalizer rewrite families and are all forced off when the
// master Normalize switch is off. UndoPennParens and the Unescape* options
// rewrite escape sequences and apply independently of the master switch.
//
// The zero value tokenizes words and punctuation only, with no
// normalization. TOML field names are provided so configurations can be
// loaded from files.
type Config struct {
	TokenizeSgml            bool `toml:"tokenize_sgml"`
	TokenizeNewline         bool `toml:"tokenize_newline"`
	TokenizeWhitespace      bool `toml:"tokenize_whitespace"`
	TokenizeAllDashedWords  bool `toml:"tokenize_all_dashed_words"`
	AbbrevPrecedesLowercase bool `toml:"abbrev_precedes_lowercase"`

	Normalize           bool `toml:"normalize"`
	NormalizeQuote      bool `toml:"normalize_quote"`
	NormalizeApostrophe bool `toml:"normalize_apostrophe"`
	NormalizeCurrency   bool `toml:"normalize_currency"`
	NormalizeAmpersand  bool `toml:"normalize_ampersand"`
	NormalizeFractions  bool `toml:"normalize_fractions"`
	NormalizeEllipsis   bool `toml:"normalize_ellipsis"`
	NormalizeMDash      bool `toml:"normalize_mdash"`
	NormalizeDash       bool `toml:"normalize_dash"`
	NormalizeHtmlSymbol bool `toml:"normalize_html_symbol"`
	NormalizeHtmlAccent bool `toml:"normalize_html_accent"`

	UndoPennParens   bool `toml:"undo_penn_parens"`
	UnescapeSlash    bool `toml:"unescape_slash"`
	UnescapeAsterisk bool `toml:"unescape_asterisk"`
}

// PlainConfig returns the pure-tokenization preset: SGML tags are kept as
// single tokens, everything else is off.
func PlainConfig() Config {
	return Config{TokenizeSgml: true}
}

// DefaultConfig returns the recommended preset: abbreviation correction and
// every normalization family enabled.
func DefaultConfig() Config {
	return Config{
		TokenizeSgml:            true,
		AbbrevPrecedesLowercase: true,
		Normalize:               true,
		NormalizeQuote:          true,
		NormalizeApostrophe:     true,
		NormalizeCurrency:       true,
		NormalizeAmpersand:      true,
		NormalizeFractions:      true,
		NormalizeEllipsis:       true,
		NormalizeMDash:          true,
		NormalizeDash:           true,
		NormalizeHtmlSymbol:     true,
		NormalizeHtmlAccent:     true,
		UndoPennParens:          true,
		UnescapeSlash:           true,
		UnescapeAsterisk:        true,
	}
}

// scanOpts derives the scanner rule activation from the configuration.
func (c Config) scanOpts() scanner.Options {
	return scanner.Options{
		SGML:             c.TokenizeSgml,
		Newlines:         c.TokenizeNewline,
		Whitespace:       c.TokenizeWhitespace,
		SplitDashedWords: c.TokenizeAllDashedWords,
	}
}

// policy derives the normalizer rewrite policy. The master switch forces
// every Normalize* sub-option off regardless of its individual setting.
func (c Config) policy() normalize.Policy {
	p := normalize.Policy{
		UndoPennParens:   c.UndoPennParens,
		UnescapeSlash:    c.UnescapeSlash,
		UnescapeAsterisk: c.UnescapeAsterisk,
	}
	if !c.Normalize {
		return p
	}
	p.Quote = c.NormalizeQuote
	p.Apostrophe = c.NormalizeApostrophe
	p.Currency = c.NormalizeCurrency
	p.Ampersand = c.NormalizeAmpersand
	p.Fractions = c.NormalizeFractions
	p.Ellipsis = c.NormalizeEllipsis
	p.MDash = c.NormalizeMDash
	p.Dash = c.NormalizeDash
	p.HTMLSymbol = c.NormalizeHtmlSymbol
	p.HTMLAccent = c.NormalizeHtmlAccent
	return p
}
