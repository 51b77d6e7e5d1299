package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	treebank "github.com/jamesainslie/go-treebank"
)

func testDoc() *Doc {
	// "Hello world." tokenizes to Hello / world / . under every variant.
	return &Doc{
		ID:   "test",
		Text: "Hello world.",
		Gold: []Span{{0, 5}, {6, 11}, {11, 12}},
	}
}

func TestEvaluateDoc(t *testing.T) {
	tok := treebank.New(treebank.DefaultConfig())

	m, thr, err := EvaluateDoc(tok, testDoc(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, m.TruePositives)
	assert.Zero(t, m.FalsePositives)
	assert.Zero(t, m.FalseNegatives)
	assert.Equal(t, 12, thr.Bytes)
	assert.Equal(t, 3, thr.Tokens)
}

func TestEvaluateDoc_NoGold(t *testing.T) {
	tok := treebank.New(treebank.PlainConfig())
	doc := &Doc{ID: "raw", Text: "just throughput text"}

	m, thr, err := EvaluateDoc(tok, doc, DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, m)
	assert.Equal(t, 3, thr.Tokens)
}

func TestSweep(t *testing.T) {
	docs := []*Doc{testDoc()}

	results, err := Sweep(docs, DefaultVariants(), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, len(DefaultVariants()))

	// Every variant agrees on this simple document, so all score perfectly
	// and results remain sorted by weighted score.
	for _, r := range results {
		assert.InDelta(t, 1.0, r.Metrics.WeightedScore, 1e-9, "variant %s", r.Variant)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t,
			results[i-1].Metrics.WeightedScore, results[i].Metrics.WeightedScore)
	}
}

func TestDefaultVariants_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range DefaultVariants() {
		assert.False(t, seen[v.Name], "duplicate variant %s", v.Name)
		seen[v.Name] = true
	}
}
