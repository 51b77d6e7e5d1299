// Package treebank provides deterministic, rule-based tokenization of raw
// document text into ordered token spans, approximating Penn-Treebank and
// Ontonotes conventions.
//
// # Quick Start
//
//	tokens := treebank.Tokenize("I paid $50 USD.", treebank.DefaultConfig())
//	for _, tok := range tokens {
//	    fmt.Println(tok.Start, tok.End)
//	}
//
//	fmt.Println(treebank.TokenizeToStrings("Abbrev. has no answer."))
//	// [Abbrev. has no answer .]
//
// # Document Model
//
// Text is tokenized per section. Sections are independent and a Tokenizer
// processes a document's sections in parallel:
//
//	doc := treebank.NewDocument(chapter1, chapter2)
//	tok := treebank.New(treebank.DefaultConfig())
//	if err := tok.TokenizeDocument(ctx, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// Re-tokenizing a section that already holds tokens returns
// ErrAlreadyTokenized; call Section.Clear first.
//
// # Configuration
//
// Config is a flat set of boolean rules. PlainConfig gives pure
// tokenization with no normalization; DefaultConfig enables abbreviation
// correction and every normalization family. The master Normalize switch
// forces all Normalize* sub-options off when disabled.
package treebank
