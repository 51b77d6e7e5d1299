package treebank

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrAlreadyTokenized indicates a section that already holds tokens was
	// passed for tokenization. Callers must Clear the section first;
	// appending a second pass would corrupt offsets.
	ErrAlreadyTokenized = errors.New("treebank: section already tokenized")
)
