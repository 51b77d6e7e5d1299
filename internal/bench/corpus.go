// Package bench provides corpus loading and evaluation utilities for the
// tokenizer: documents with gold token spans, boundary-matching metrics and
// configuration sweeps.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source string
	Title  string
	Genre  string
}

// ParseHeader extracts metadata from "# Key: value" header comments.
// Returns the header, remaining text after the header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Genre:"); ok {
			h.Genre = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := text[bodyStart:]
	body = strings.TrimSpace(body)

	return h, body, nil
}

// Span is a gold token span with byte offsets into the document body.
type Span struct {
	Start int
	End   int
}

// ParseGold parses a gold sidecar file: one "start<TAB>end" pair per line,
// offsets into the document body, blank lines and # comments skipped.
func ParseGold(text string) ([]Span, error) {
	var spans []Span
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected start<TAB>end, got %q", lineNo, line)
		}
		start, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad start offset: %w", lineNo, err)
		}
		end, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad end offset: %w", lineNo, err)
		}
		if end <= start {
			return nil, fmt.Errorf("line %d: empty span %d..%d", lineNo, start, end)
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan gold: %w", err)
	}

	return spans, nil
}

// Doc represents a loaded corpus document with its gold token spans.
type Doc struct {
	ID     string // filename without extension
	Source string
	Title  string
	Genre  string
	Text   string // body text
	Gold   []Span // nil when no sidecar exists (throughput-only document)
}

// GoldEnds returns the gold token end offsets in order.
func (d *Doc) GoldEnds() []int {
	ends := make([]int, len(d.Gold))
	for i, s := range d.Gold {
		ends[i] = s.End
	}
	return ends
}

// LoadDoc loads a corpus document and its optional ".gold" sidecar.
func LoadDoc(path string) (*Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	doc := &Doc{
		ID:     id,
		Source: header.Source,
		Title:  header.Title,
		Genre:  header.Genre,
		Text:   body,
	}

	goldPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".gold"
	goldData, err := os.ReadFile(goldPath)
	switch {
	case err == nil:
		doc.Gold, err = ParseGold(string(goldData))
		if err != nil {
			return nil, fmt.Errorf("parse gold %s: %w", goldPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// throughput-only document
	default:
		return nil, fmt.Errorf("read gold: %w", err)
	}

	return doc, nil
}

// LoadCorpus loads all .txt documents from a directory.
func LoadCorpus(dir string) ([]*Doc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Doc
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := LoadDoc(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
