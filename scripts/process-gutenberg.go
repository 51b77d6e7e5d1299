//go:build ignore

// Process raw Project Gutenberg downloads into corpus format: a headered
// .txt body plus a .gold sidecar of whitespace-derived token spans.
// Usage: go run ./scripts/process-gutenberg.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Book metadata
var books = map[string]struct {
	Title  string
	Author string
	Year   string
}{
	"pride_and_prejudice": {"Pride and Prejudice", "Jane Austen", "1813"},
	"moby_dick":           {"Moby Dick", "Herman Melville", "1851"},
	"great_expectations":  {"Great Expectations", "Charles Dickens", "1861"},
	"tom_sawyer":          {"The Adventures of Tom Sawyer", "Mark Twain", "1876"},
}

const (
	rawDir = "testdata/raw"
	outDir = "testdata/corpus"
)

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	for id, meta := range books {
		rawPath := filepath.Join(rawDir, id+".txt")
		data, err := os.ReadFile(rawPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", id, err)
			continue
		}

		body := stripBoilerplate(string(data))

		txtPath := filepath.Join(outDir, id+".txt")
		out, err := os.Create(txtPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", txtPath, err)
			os.Exit(1)
		}
		w := bufio.NewWriter(out)
		fmt.Fprintf(w, "# Source: https://www.gutenberg.org\n")
		fmt.Fprintf(w, "# Title: %s (%s, %s)\n", meta.Title, meta.Author, meta.Year)
		fmt.Fprintf(w, "# Genre: literature\n\n")
		fmt.Fprintln(w, body)
		w.Flush()
		out.Close()

		goldPath := filepath.Join(outDir, id+".gold")
		if err := writeGold(goldPath, body); err != nil {
			fmt.Fprintf(os.Stderr, "gold %s: %v\n", goldPath, err)
			os.Exit(1)
		}

		fmt.Printf("processed %s\n", id)
	}
}

// stripBoilerplate cuts the Gutenberg license header and footer.
func stripBoilerplate(text string) string {
	if i := strings.Index(text, "*** START OF"); i >= 0 {
		if j := strings.IndexByte(text[i:], '\n'); j >= 0 {
			text = text[i+j+1:]
		}
	}
	if i := strings.Index(text, "*** END OF"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// writeGold emits whitespace-delimited spans as gold reference tokens.
// Trailing sentence punctuation is split off so the reference resembles
// treebank segmentation rather than plain space splitting.
func writeGold(path, body string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	start := -1
	for i, r := range body {
		if unicode.IsSpace(r) {
			if start >= 0 {
				emitSpan(w, body, start, i)
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		emitSpan(w, body, start, len(body))
	}
	return w.Flush()
}

func emitSpan(w *bufio.Writer, body string, start, end int) {
	word := body[start:end]
	trimmed := strings.TrimRight(word, ".!?,;:")
	if trimmed != "" && len(trimmed) < len(word) {
		fmt.Fprintf(w, "%d\t%d\n", start, start+len(trimmed))
		for i := start + len(trimmed); i < end; i++ {
			fmt.Fprintf(w, "%d\t%d\n", i, i+1)
		}
		return
	}
	fmt.Fprintf(w, "%d\t%d\n", start, end)
}
