package normalize

// symbolEntities are the named HTML entities decoded by the HTMLSymbol
// family. The ampersand entity is listed separately so the Ampersand family
// can decode it on its own.
var symbolEntities = map[string]string{
	"lt":     "<",
	"gt":     ">",
	"quot":   "\"",
	"apos":   "'",
	"nbsp":   " ",
	"ndash":  "–",
	"mdash":  "—",
	"hellip": "…",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
	"laquo":  "«",
	"raquo":  "»",
	"cent":   "¢",
	"pound":  "£",
	"yen":    "¥",
	"euro":   "€",
	"curren": "¤",
	"frac14": "¼",
	"frac12": "½",
	"frac34": "¾",
	"sect":   "§",
	"para":   "¶",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"deg":    "°",
	"plusmn": "±",
	"middot": "·",
	"bull":   "•",
	"dagger": "†",
	"Dagger": "‡",
	"permil": "‰",
	"times":  "×",
	"divide": "÷",
}

// accentEntities are the Latin-1 accented-letter entities decoded by the
// HTMLAccent family.
var accentEntities = map[string]string{
	"agrave": "à", "Agrave": "À",
	"aacute": "á", "Aacute": "Á",
	"acirc": "â", "Acirc": "Â",
	"atilde": "ã", "Atilde": "Ã",
	"auml": "ä", "Auml": "Ä",
	"aring": "å", "Aring": "Å",
	"aelig": "æ", "AElig": "Æ",
	"ccedil": "ç", "Ccedil": "Ç",
	"egrave": "è", "Egrave": "È",
	"eacute": "é", "Eacute": "É",
	"ecirc": "ê", "Ecirc": "Ê",
	"euml": "ë", "Euml": "Ë",
	"igrave": "ì", "Igrave": "Ì",
	"iacute": "í", "Iacute": "Í",
	"icirc": "î", "Icirc": "Î",
	"iuml": "ï", "Iuml": "Ï",
	"ntilde": "ñ", "Ntilde": "Ñ",
	"ograve": "ò", "Ograve": "Ò",
	"oacute": "ó", "Oacute": "Ó",
	"ocirc": "ô", "Ocirc": "Ô",
	"otilde": "õ", "Otilde": "Õ",
	"ouml": "ö", "Ouml": "Ö",
	"oslash": "ø", "Oslash": "Ø",
	"ugrave": "ù", "Ugrave": "Ù",
	"uacute": "ú", "Uacute": "Ú",
	"ucirc": "û", "Ucirc": "Û",
	"uuml": "ü", "Uuml": "Ü",
	"yacute": "ý", "Yacute": "Ý",
	"yuml": "ÿ",
	"szlig": "ß",
}

// decodeEntity resolves a bare entity name (without the leading & and
// trailing ;) under the enabled families.
func decodeEntity(name string, p Policy) (string, bool) {
	if p.Ampersand && name == "amp" {
		return "&", true
	}
	if p.HTMLSymbol {
		if v, ok := symbolEntities[name]; ok {
			return v, true
		}
	}
	if p.HTMLAccent {
		if v, ok := accentEntities[name]; ok {
			return v, true
		}
	}
	return "", false
}
