package scanner

import (
	"strings"
	"testing"
)

// collect drains a scanner into lexeme texts.
func collect(t *testing.T, text string, opts Options) []string {
	t.Helper()
	sc := New(text, opts)
	var out []string
	for {
		lex, ok := sc.Next()
		if !ok {
			break
		}
		if lex.End <= len(text) && lex.Text != text[lex.Start:lex.End] {
			t.Fatalf("lexeme text %q does not match span %d..%d", lex.Text, lex.Start, lex.End)
		}
		out = append(out, lex.Text)
	}
	return out
}

func TestScanner_Words(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{"simple words", "the quick fox", Options{}, []string{"the", "quick", "fox"}},
		{"contraction", "don't stop", Options{}, []string{"don't", "stop"}},
		{"typographic apostrophe", "don’t", Options{}, []string{"don’t"}},
		{"dashed word joined", "ethno-centric", Options{}, []string{"ethno-centric"}},
		{"dashed word split", "ethno-centric", Options{SplitDashedWords: true}, []string{"ethno", "-", "centric"}},
		{"trailing hyphen not internal", "pre- war", Options{}, []string{"pre", "-", "war"}},
		{"digits start word run", "3rd place", Options{}, []string{"3rd", "place"}},
		{"escaped slash stays inside", `1\/2 cup`, Options{}, []string{`1\/2`, "cup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.in, tt.opts)
			if !equal(got, tt.want) {
				t.Errorf("scan(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanner_Punctuation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single period", "End.", []string{"End", "."}},
		{"ellipsis grouped", "Wait...", []string{"Wait", "..."}},
		{"mixed run grouped", "What?!?", []string{"What", "?!?"}},
		{"ellipsis glyph", "so…", []string{"so", "…"}},
		{"comma single", "a, b", []string{"a", ",", "b"}},
		{"currency split from number", "I paid $50 USD", []string{"I", "paid", "$", "50", "USD"}},
		{"cents sign", "worth 5¢ now", []string{"worth", "5", "¢", "now"}},
		{"grouped number", "1,234.56 total", []string{"1,234.56", "total"}},
		{"penn bracket code", "a -LRB- b", []string{"a", "-LRB-", "b"}},
		{"html entity", "AT&amp;T", []string{"AT", "&amp;", "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.in, Options{})
			if !equal(got, tt.want) {
				t.Errorf("scan(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanner_SGML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{"tag kept", "<b>bold</b>", Options{SGML: true}, []string{"<b>", "bold", "</b>"}},
		{"tag with attrs", `<a href="x">y`, Options{SGML: true}, []string{`<a href="x">`, "y"}},
		{"unterminated tag degrades", "a < b", Options{SGML: true}, []string{"a", "<", "b"}},
		{"tag split when disabled", "<b>", Options{}, []string{"<", "b", ">"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.in, tt.opts)
			if !equal(got, tt.want) {
				t.Errorf("scan(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanner_Whitespace(t *testing.T) {
	// With a whitespace rule active the sentinel newline surfaces as the
	// final lexeme; callers strip it.
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{"elided by default", "a  b", Options{}, []string{"a", "b"}},
		{"whitespace runs kept", "a  b", Options{Whitespace: true}, []string{"a", "  ", "b", "\n"}},
		{"newlines kept", "a\n\nb", Options{Newlines: true}, []string{"a", "\n\n", "b", "\n"}},
		{"spaces still elided with newlines", "a \n b", Options{Newlines: true}, []string{"a", "\n", "b", "\n"}},
		{"mixed run with whitespace on", "a \n b", Options{Whitespace: true}, []string{"a", " \n ", "b", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.in, tt.opts)
			if !equal(got, tt.want) {
				t.Errorf("scan(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanner_OffsetsStrictlyIncreasing(t *testing.T) {
	inputs := []string{
		"The U.S. economy grew 3.5% -- fast!",
		"café &eacute; -LRB- “quoted” …",
		"no\nnewlines \t mixed   whitespace",
		"",
	}
	for _, in := range inputs {
		for _, opts := range []Options{{}, {Whitespace: true}, {Newlines: true}, {SGML: true, SplitDashedWords: true}} {
			sc := New(in, opts)
			prev := -1
			for {
				lex, ok := sc.Next()
				if !ok {
					break
				}
				if lex.Start < 0 || lex.End <= lex.Start {
					t.Fatalf("degenerate span %d..%d in %q", lex.Start, lex.End, in)
				}
				if lex.Start < prev {
					t.Fatalf("offsets went backwards at %d (prev end %d) in %q", lex.Start, prev, in)
				}
				prev = lex.End
			}
		}
	}
}

func TestScanner_WhitespaceCoversInput(t *testing.T) {
	in := "He said, “wait…” twice-over.\nDone."
	sc := New(in, Options{Whitespace: true})
	var b strings.Builder
	for {
		lex, ok := sc.Next()
		if !ok {
			break
		}
		b.WriteString(lex.Text)
	}
	// Sentinel included: total coverage of the text plus the trailing newline.
	if b.String() != in+"\n" {
		t.Errorf("concatenated lexemes = %q, want %q", b.String(), in+"\n")
	}
}

func TestScanner_CatchAllNeverFails(t *testing.T) {
	// Malformed and exotic input degrades to single-rune lexemes.
	in := "\\ ~ \x80 ☃"
	got := collect(t, in, Options{})
	want := []string{"\\", "~", "\x80", "☃"}
	if !equal(got, want) {
		t.Errorf("scan(%q) = %q, want %q", in, got, want)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
