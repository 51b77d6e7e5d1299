package treebank

// Token is one finalized span in a section. Start and End are byte offsets
// into the section text; End-Start is the raw span length. Norm holds the
// normalized text only when it differs from the raw substring — an empty
// Norm means the raw text is canonical.
type Token struct {
	Start int
	End   int
	Norm  string
}

// Section is a contiguous portion of a document's text with its token
// sequence. Tokens are appended during one tokenization pass and, after a
// successful pass, are strictly ordered by offset and pairwise
// non-overlapping.
type Section struct {
	text      string
	tokens    []Token
	tokenized bool
}

// NewSection creates an untokenized section over text.
func NewSection(text string) *Section {
	return &Section{text: text}
}

// Text returns the section's source text.
func (s *Section) Text() string { return s.text }

// Tokens returns the section's token sequence. The returned slice is owned
// by the section; callers must not mutate it.
func (s *Section) Tokens() []Token { return s.tokens }

// Tokenized reports whether a tokenization pass has completed on the section.
func (s *Section) Tokenized() bool { return s.tokenized }

// Clear removes all tokens and the tokenized flag so the section can be
// tokenized again. Re-tokenizing without clearing first is rejected by the
// tokenizer.
func (s *Section) Clear() {
	s.tokens = nil
	s.tokenized = false
}

// TokenText returns the canonical text of t: the normalized form when one is
// attached, the raw substring otherwise.
func (s *Section) TokenText(t Token) string {
	if t.Norm != "" {
		return t.Norm
	}
	end := t.End
	if end > len(s.text) {
		end = len(s.text)
	}
	return s.text[t.Start:end]
}

// Strings returns the canonical text of every token in order.
func (s *Section) Strings() []string {
	out := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = s.TokenText(t)
	}
	return out
}

// Document is an ordered collection of sections. Sections share no mutable
// state and can be tokenized independently.
type Document struct {
	Sections []*Section
}

// NewDocument creates a document with one section per text.
func NewDocument(texts ...string) *Document {
	doc := &Document{Sections: make([]*Section, len(texts))}
	for i, text := range texts {
		doc.Sections[i] = NewSection(text)
	}
	return doc
}

// Tokenized reports whether every section in the document has completed
// tokenization.
func (d *Document) Tokenized() bool {
	for _, sec := range d.Sections {
		if !sec.Tokenized() {
			return false
		}
	}
	return len(d.Sections) > 0
}
