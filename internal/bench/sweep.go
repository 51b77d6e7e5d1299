package bench

import (
	"fmt"
	"sort"
	"time"

	treebank "github.com/jamesainslie/go-treebank"
)

// Variant names one tokenizer configuration under evaluation.
type Variant struct {
	Name   string
	Config treebank.Config
}

// DefaultVariants returns the built-in configuration variants compared by a
// sweep.
func DefaultVariants() []Variant {
	withDashes := treebank.DefaultConfig()
	withDashes.TokenizeAllDashedWords = true

	noAbbrev := treebank.DefaultConfig()
	noAbbrev.AbbrevPrecedesLowercase = false

	plainAbbrev := treebank.PlainConfig()
	plainAbbrev.AbbrevPrecedesLowercase = true

	return []Variant{
		{Name: "plain", Config: treebank.PlainConfig()},
		{Name: "plain+abbrev", Config: plainAbbrev},
		{Name: "default", Config: treebank.DefaultConfig()},
		{Name: "default-abbrev", Config: noAbbrev},
		{Name: "default+dashes", Config: withDashes},
	}
}

// SweepResult holds metrics for one configuration variant.
type SweepResult struct {
	Variant    string
	Metrics    Metrics
	Throughput Throughput
}

// EvaluateDoc tokenizes one document and scores the predicted token end
// offsets against the document's gold spans.
func EvaluateDoc(tok *treebank.Tokenizer, doc *Doc, cfg Config) (Metrics, Throughput, error) {
	sec := treebank.NewSection(doc.Text)

	start := time.Now()
	if err := tok.TokenizeSection(sec); err != nil {
		return Metrics{}, Throughput{}, fmt.Errorf("tokenizing %s: %w", doc.ID, err)
	}
	elapsed := time.Since(start)

	tokens := sec.Tokens()
	tp := Throughput{Bytes: len(doc.Text), Tokens: len(tokens), Elapsed: elapsed}

	if doc.Gold == nil {
		return Metrics{}, tp, nil
	}

	predicted := make([]int, len(tokens))
	for i, t := range tokens {
		predicted[i] = t.End
	}

	return Evaluate(predicted, doc.GoldEnds(), cfg), tp, nil
}

// Sweep evaluates each variant over the corpus and returns results sorted by
// weighted score descending.
func Sweep(docs []*Doc, variants []Variant, cfg Config) ([]SweepResult, error) {
	var results []SweepResult

	for _, v := range variants {
		tok := treebank.New(v.Config)

		var totalTP, totalFP, totalFN int
		var thr Throughput
		for _, doc := range docs {
			m, t, err := EvaluateDoc(tok, doc, cfg)
			if err != nil {
				return nil, err
			}
			totalTP += m.TruePositives
			totalFP += m.FalsePositives
			totalFN += m.FalseNegatives
			thr.Add(t)
		}

		results = append(results, SweepResult{
			Variant:    v.Name,
			Metrics:    Compute(totalTP, totalFP, totalFN, cfg),
			Throughput: thr,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
