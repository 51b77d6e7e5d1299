package treebank

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenizeStrings(t *testing.T, text string, cfg Config) []string {
	t.Helper()
	sec := NewSection(text)
	require.NoError(t, New(cfg).TokenizeSection(sec))
	return sec.Strings()
}

func TestAbbreviationCorrection(t *testing.T) {
	in := "Abbrev. has no answer."

	withCorrection := tokenizeStrings(t, in, Config{AbbrevPrecedesLowercase: true})
	assert.Equal(t, []string{"Abbrev.", "has", "no", "answer", "."}, withCorrection)

	withoutCorrection := tokenizeStrings(t, in, Config{})
	assert.Equal(t, []string{"Abbrev", ".", "has", "no", "answer", "."}, withoutCorrection)
}

func TestAbbreviationCorrection_DoesNotChain(t *testing.T) {
	// Multi-level abbreviations stay split: only the final word+period pair
	// preceding a lowercase token merges.
	got := tokenizeStrings(t, "U.S. grew fast.", Config{AbbrevPrecedesLowercase: true})
	assert.Equal(t, []string{"U", ".", "S.", "grew", "fast", "."}, got)
}

func TestAbbreviationCorrection_NotBeforeUppercase(t *testing.T) {
	got := tokenizeStrings(t, "Abbrev. Then more.", Config{AbbrevPrecedesLowercase: true})
	assert.Equal(t, []string{"Abbrev", ".", "Then", "more", "."}, got)
}

func TestDashedWords(t *testing.T) {
	joined := tokenizeStrings(t, "ethno-centric", Config{})
	assert.Equal(t, []string{"ethno-centric"}, joined)

	split := tokenizeStrings(t, "ethno-centric", Config{TokenizeAllDashedWords: true})
	assert.Equal(t, []string{"ethno", "-", "centric"}, split)
}

func TestCurrency(t *testing.T) {
	got := tokenizeStrings(t, "I paid $50 USD", Config{})
	assert.Equal(t, []string{"I", "paid", "$", "50", "USD"}, got)
}

func TestPennBracketRestoration(t *testing.T) {
	tokens := Tokenize("a -LRB- b", Config{UndoPennParens: true})
	require.Len(t, tokens, 3)
	assert.Equal(t, "(", tokens[1].Norm)
	assert.Equal(t, 2, tokens[1].Start)
	assert.Equal(t, 7, tokens[1].End)
}

func TestNormalizationMasterSwitch(t *testing.T) {
	cfg := Config{NormalizeQuote: true, NormalizeEllipsis: true} // master off
	tokens := Tokenize("“so…”", cfg)
	for _, tok := range tokens {
		assert.Empty(t, tok.Norm, "normalization must be forced off without the master switch")
	}

	cfg.Normalize = true
	sec := NewSection("“so…”")
	require.NoError(t, New(cfg).TokenizeSection(sec))
	assert.Equal(t, []string{"\"", "so", "...", "\""}, sec.Strings())
}

func TestNoNormalizationMeansRawSpans(t *testing.T) {
	in := "He said: “don’t pay £50…”"
	sec := NewSection(in)
	require.NoError(t, New(PlainConfig()).TokenizeSection(sec))
	require.NotEmpty(t, sec.Tokens())
	for _, tok := range sec.Tokens() {
		assert.Empty(t, tok.Norm)
		assert.Equal(t, in[tok.Start:tok.End], sec.TokenText(tok))
	}
}

func TestOffsetsSortedAndNonOverlapping(t *testing.T) {
	inputs := []string{
		"Abbrev. has no answer.",
		"I paid $50 USD for 1,234.56 -LRB- net -RRB-.",
		"line one\nline two\n",
		"“quoted…” twice-over &amp; more",
	}
	configs := map[string]Config{
		"plain":      PlainConfig(),
		"default":    DefaultConfig(),
		"whitespace": {TokenizeWhitespace: true},
		"newline":    {TokenizeNewline: true},
	}
	for name, cfg := range configs {
		for _, in := range inputs {
			tokens := Tokenize(in, cfg)
			for i, tok := range tokens {
				assert.Less(t, tok.Start, tok.End, "%s: empty span in %q", name, in)
				assert.LessOrEqual(t, tok.End, len(in), "%s: span past end of %q", name, in)
				if i > 0 {
					assert.GreaterOrEqual(t, tok.Start, tokens[i-1].End,
						"%s: overlap at token %d in %q", name, i, in)
				}
			}
		}
	}
}

func TestWhitespaceTokensPartitionInput(t *testing.T) {
	in := "a  b\nc\td "
	sec := NewSection(in)
	require.NoError(t, New(Config{TokenizeWhitespace: true}).TokenizeSection(sec))

	var b strings.Builder
	prev := 0
	for _, tok := range sec.Tokens() {
		require.Equal(t, prev, tok.Start, "gap before token at %d", tok.Start)
		b.WriteString(in[tok.Start:tok.End])
		prev = tok.End
	}
	assert.Equal(t, len(in), prev)
	assert.Equal(t, in, b.String())
}

func TestSentinelNeverSurfaces(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cfg  Config
		want []string
	}{
		{"plain text", "abc", Config{}, []string{"abc"}},
		{"newline option without trailing newline", "abc", Config{TokenizeNewline: true}, []string{"abc"}},
		{"trailing newline kept but not doubled", "abc\n", Config{TokenizeNewline: true}, []string{"abc", "\n"}},
		{"whitespace option on empty input", "", Config{TokenizeWhitespace: true}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := NewSection(tt.in)
			require.NoError(t, New(tt.cfg).TokenizeSection(sec))
			assert.Equal(t, tt.want, sec.Strings())
			for _, tok := range sec.Tokens() {
				assert.LessOrEqual(t, tok.End, len(tt.in))
			}
		})
	}
}

func TestTokenizeToStrings(t *testing.T) {
	got := TokenizeToStrings("Abbrev. has no answer.")
	assert.Equal(t, []string{"Abbrev.", "has", "no", "answer", "."}, got)

	got = TokenizeToStrings("don’t “stop”")
	assert.Equal(t, []string{"don't", "\"", "stop", "\""}, got)
}

func TestTokenizeSection_AlreadyTokenized(t *testing.T) {
	tok := New(DefaultConfig())
	sec := NewSection("one two")

	require.NoError(t, tok.TokenizeSection(sec))
	assert.True(t, sec.Tokenized())

	err := tok.TokenizeSection(sec)
	require.ErrorIs(t, err, ErrAlreadyTokenized)

	sec.Clear()
	assert.False(t, sec.Tokenized())
	require.NoError(t, tok.TokenizeSection(sec))
	assert.Equal(t, []string{"one", "two"}, sec.Strings())
}

func TestTokenizeDocument(t *testing.T) {
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("Section %d. It has no answer.", i)
	}
	doc := NewDocument(texts...)

	tok := New(DefaultConfig(), WithWorkers(8))
	require.NoError(t, tok.TokenizeDocument(context.Background(), doc))
	assert.True(t, doc.Tokenized())

	for _, sec := range doc.Sections {
		got := sec.Strings()
		assert.Equal(t, "It", got[3])
		assert.Equal(t, []string{"has", "no", "answer", "."}, got[4:])
	}
}

func TestTokenizeDocument_FailsOnDirtySection(t *testing.T) {
	doc := NewDocument("fresh text", "also fresh")
	tok := New(DefaultConfig())
	require.NoError(t, tok.TokenizeSection(doc.Sections[1]))

	err := tok.TokenizeDocument(context.Background(), doc)
	require.ErrorIs(t, err, ErrAlreadyTokenized)
}

func TestTokenText_PrefersNorm(t *testing.T) {
	sec := NewSection("don’t")
	require.NoError(t, New(DefaultConfig()).TokenizeSection(sec))
	tokens := sec.Tokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, "don't", tokens[0].Norm)
	assert.Equal(t, "don't", sec.TokenText(tokens[0]))
	assert.Equal(t, "don’t", sec.Text()[tokens[0].Start:tokens[0].End])
}
