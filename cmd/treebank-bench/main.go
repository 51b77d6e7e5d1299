package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	treebank "github.com/jamesainslie/go-treebank"
	"github.com/jamesainslie/go-treebank/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing corpus files")
		tolerance = flag.Int("tolerance", 0, "Character tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		sweep     = flag.Bool("sweep", false, "Compare all built-in configuration variants")
		variant   = flag.String("variant", "default", "Configuration variant to evaluate")
	)
	flag.Parse()

	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	if *sweep {
		runSweep(docs, cfg)
		return
	}
	runSingle(docs, *variant, cfg)
}

func runSingle(docs []*bench.Doc, name string, cfg bench.Config) {
	v, ok := findVariant(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant: %s\n", name)
		os.Exit(1)
	}

	tok := treebank.New(v.Config)

	var totalTP, totalFP, totalFN int
	var thr bench.Throughput
	for _, doc := range docs {
		m, t, err := bench.EvaluateDoc(tok, doc, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error evaluating %s: %v\n", doc.ID, err)
			os.Exit(1)
		}
		totalTP += m.TruePositives
		totalFP += m.FalsePositives
		totalFN += m.FalseNegatives
		thr.Add(t)
	}

	m := bench.Compute(totalTP, totalFP, totalFN, cfg)
	fmt.Printf("Variant: %s\n", v.Name)
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", totalTP, totalFP, totalFN)
	fmt.Printf("Throughput: %.1f MB/s, %.0f tokens/s\n", thr.MBPerSec(), thr.TokensPerSec())
}

func runSweep(docs []*bench.Doc, cfg bench.Config) {
	fmt.Printf("Configuration Sweep (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("%-16s %-8s %-8s %-8s %-8s %-8s\n", "Variant", "Prec", "Rec", "F1", "Weighted", "MB/s")

	results, err := bench.Sweep(docs, bench.DefaultVariants(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-16s %-8.2f %-8.2f %-8.2f %-8.2f %-8.1f\n",
			r.Variant, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1,
			r.Metrics.WeightedScore, r.Throughput.MBPerSec())
	}

	fmt.Println(strings.Repeat("-", 64))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Best: %s (Weighted: %.2f)\n", best.Variant, best.Metrics.WeightedScore)
	}
}

func findVariant(name string) (bench.Variant, bool) {
	for _, v := range bench.DefaultVariants() {
		if v.Name == name {
			return v, true
		}
	}
	return bench.Variant{}, false
}
