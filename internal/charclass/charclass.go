// Package charclass provides character classification tables shared by the
// scanner and the normalizer: quote and dash variants, currency symbols,
// vulgar fractions, Penn-Treebank bracket codes and HTML entity prefixes.
// All tables are built once at package load.
package charclass

// doubleQuotes maps typographic double-quote variants. The plain ASCII
// double quote is included so membership tests cover the canonical form.
var doubleQuotes = map[rune]bool{
	'"':      true,
	'“': true, // left double quotation mark
	'”': true, // right double quotation mark
	'„': true, // double low-9 quotation mark
	'‟': true, // double high-reversed-9 quotation mark
	'«': true, // left-pointing double angle quotation mark
	'»': true, // right-pointing double angle quotation mark
	'″': true, // double prime
}

// apostrophes maps single-quote and apostrophe variants, including the
// directional single quotes that show up inside contractions.
var apostrophes = map[rune]bool{
	'\'':     true,
	'‘': true, // left single quotation mark
	'’': true, // right single quotation mark
	'‚': true, // single low-9 quotation mark
	'‛': true, // single high-reversed-9 quotation mark
	'′': true, // prime
	'ʼ': true, // modifier letter apostrophe
	'`':      true,
	'´': true, // acute accent
}

// emDashes are the dash glyphs that widen to a double hyphen.
var emDashes = map[rune]bool{
	'—': true, // em dash
	'―': true, // horizontal bar
	'⸺': true, // two-em dash
	'⸻': true, // three-em dash
}

// otherDashes are non-ASCII dash glyphs that collapse to a single hyphen.
var otherDashes = map[rune]bool{
	'‐': true, // hyphen
	'‑': true, // non-breaking hyphen
	'‒': true, // figure dash
	'–': true, // en dash
	'−': true, // minus sign
}

// currency holds currency symbols, the cents sign included.
var currency = map[rune]bool{
	'$':      true,
	'¢': true, // cent sign
	'£': true, // pound sign
	'¤': true, // generic currency sign
	'¥': true, // yen sign
	'€': true, // euro sign
	'₤': true, // lira sign
	'₩': true, // won sign
	'₹': true, // rupee sign
	'₽': true, // ruble sign
}

// fractions maps Unicode vulgar-fraction glyphs to their spelled-out form.
var fractions = map[rune]string{
	'¼': "1/4",
	'½': "1/2",
	'¾': "3/4",
	'⅓': "1/3",
	'⅔': "2/3",
	'⅕': "1/5",
	'⅖': "2/5",
	'⅗': "3/5",
	'⅘': "4/5",
	'⅙': "1/6",
	'⅚': "5/6",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
}

// pennBrackets maps Penn-Treebank escape codes to the bracket characters
// they stand in for.
var pennBrackets = map[string]string{
	"-LRB-": "(",
	"-RRB-": ")",
	"-LSB-": "[",
	"-RSB-": "]",
	"-LCB-": "{",
	"-RCB-": "}",
}

// Ellipsis is the Unicode horizontal ellipsis glyph.
const Ellipsis = '…'

// Cent is the cents sign, the one currency symbol that spells out instead of
// unifying to the dollar sign.
const Cent = '¢'

// IsDoubleQuote reports whether r is a typographic double-quote variant.
func IsDoubleQuote(r rune) bool { return doubleQuotes[r] }

// IsApostrophe reports whether r is a single-quote or apostrophe variant.
func IsApostrophe(r rune) bool { return apostrophes[r] }

// IsEmDash reports whether r is an em-dash-like glyph.
func IsEmDash(r rune) bool { return emDashes[r] }

// IsOtherDash reports whether r is a non-ASCII dash glyph other than the
// em-dash family.
func IsOtherDash(r rune) bool { return otherDashes[r] }

// IsCurrency reports whether r is a currency symbol.
func IsCurrency(r rune) bool { return currency[r] }

// IsSentenceFinal reports whether r can terminate a sentence.
func IsSentenceFinal(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == Ellipsis
}

// Fraction returns the spelled-out "n/d" form of a vulgar-fraction glyph.
func Fraction(r rune) (string, bool) {
	s, ok := fractions[r]
	return s, ok
}

// PennBracket returns the literal bracket for a Penn-Treebank escape code.
func PennBracket(code string) (string, bool) {
	s, ok := pennBrackets[code]
	return s, ok
}

// MatchPennBracket returns the length of the Penn-Treebank bracket code at
// the start of s, or 0 if none is present. All codes are five bytes.
func MatchPennBracket(s string) int {
	if len(s) < 5 || s[0] != '-' {
		return 0
	}
	if _, ok := pennBrackets[s[:5]]; ok {
		return 5
	}
	return 0
}

// maxEntityLen bounds the entity-name scan. The longest named HTML entities
// are around 32 characters.
const maxEntityLen = 34

// MatchEntity returns the length of an HTML entity form "&name;" at the
// start of s, or 0 if none is present. It only checks the shape of the
// entity, not whether the name is a known one.
func MatchEntity(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}
	limit := len(s)
	if limit > maxEntityLen {
		limit = maxEntityLen
	}
	for i := 1; i < limit; i++ {
		c := s[i]
		switch {
		case c == ';':
			if i == 1 {
				return 0
			}
			return i + 1
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			// entity name continues
		default:
			return 0
		}
	}
	return 0
}
