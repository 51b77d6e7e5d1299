package treebank

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-treebank/normalize"
	"github.com/jamesainslie/go-treebank/scanner"
)

// Tokenizer converts raw text into ordered token spans following
// Penn-Treebank/Ontonotes conventions. The rule configuration is fixed at
// construction; one Tokenizer is safe for concurrent use because every
// tokenization pass keeps its state local to the section being processed.
type Tokenizer struct {
	cfg     Config
	workers int
	logger  *slog.Logger
}

// New creates a Tokenizer with the given rule configuration.
func New(cfg Config, opts ...Option) *Tokenizer {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Tokenizer{
		cfg:     cfg,
		workers: s.workers,
		logger:  s.logger,
	}
}

// Config returns the tokenizer's rule configuration.
func (t *Tokenizer) Config() Config { return t.cfg }

// TokenizeSection runs one tokenization pass over sec, appending its tokens
// and marking it complete. The section must not already hold tokens; callers
// re-tokenizing must Clear first or ErrAlreadyTokenized is returned.
func (t *Tokenizer) TokenizeSection(sec *Section) error {
	if sec.tokenized || len(sec.tokens) > 0 {
		return fmt.Errorf("%w: %d tokens present", ErrAlreadyTokenized, len(sec.tokens))
	}

	pol := t.cfg.policy()
	sc := scanner.New(sec.text, t.cfg.scanOpts())
	for {
		lex, ok := sc.Next()
		if !ok {
			break
		}
		if t.cfg.AbbrevPrecedesLowercase {
			if edit, ok := abbrevEdit(sec, lex); ok {
				sec.applyEdit(edit, pol)
			}
		}
		tok := Token{Start: lex.Start, End: lex.End}
		if norm := normalize.Apply(lex.Text, pol); norm != lex.Text {
			tok.Norm = norm
		}
		sec.tokens = append(sec.tokens, tok)
	}

	sec.trimSentinel()
	sec.tokenized = true
	return nil
}

// TokenizeDocument tokenizes every section of doc. Sections share no state
// and are processed concurrently, bounded by the worker count. The first
// failing section aborts the remainder; sections already processed keep
// their tokens.
func (t *Tokenizer) TokenizeDocument(ctx context.Context, doc *Document) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	for _, sec := range doc.Sections {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return t.TokenizeSection(sec)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	t.logger.Debug("tokenized document", "sections", len(doc.Sections))
	return nil
}

// trimSentinel removes token material derived from the sentinel newline the
// scanner appends. Only the final token can touch the sentinel: it is
// dropped when it lies entirely past the real text and truncated when a
// trailing whitespace or newline run absorbed the sentinel.
func (s *Section) trimSentinel() {
	n := len(s.tokens)
	if n == 0 {
		return
	}
	last := s.tokens[n-1]
	switch {
	case last.Start >= len(s.text):
		s.tokens = s.tokens[:n-1]
	case last.End > len(s.text):
		s.tokens[n-1].End = len(s.text)
	}
}

// Tokenize runs one pass over text under cfg and returns the token spans.
func Tokenize(text string, cfg Config) []Token {
	sec := NewSection(text)
	// The section is fresh, so the pass cannot fail.
	_ = New(cfg).TokenizeSection(sec)
	return sec.Tokens()
}

// TokenizeToStrings tokenizes text with the default configuration and
// returns the normalized-or-raw text of each token, for ad hoc use outside
// the document model.
func TokenizeToStrings(text string) []string {
	sec := NewSection(text)
	_ = New(DefaultConfig()).TokenizeSection(sec)
	return sec.Strings()
}
