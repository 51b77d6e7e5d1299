package bench

import "time"

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // character match tolerance for boundary offsets
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results for token boundary matching.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted token boundaries against gold boundaries.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	fp := len(predicted) - tp
	fn := len(truth) - tp

	return Compute(tp, fp, fn, cfg)
}

// Compute derives precision, recall, F1 and the weighted score from raw
// match counts.
func Compute(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Throughput holds scan-rate measurements for one or more passes.
type Throughput struct {
	Bytes   int
	Tokens  int
	Elapsed time.Duration
}

// Add accumulates another measurement.
func (t *Throughput) Add(other Throughput) {
	t.Bytes += other.Bytes
	t.Tokens += other.Tokens
	t.Elapsed += other.Elapsed
}

// MBPerSec returns megabytes of input scanned per second.
func (t Throughput) MBPerSec() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Bytes) / 1e6 / t.Elapsed.Seconds()
}

// TokensPerSec returns tokens produced per second.
func (t Throughput) TokensPerSec() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Tokens) / t.Elapsed.Seconds()
}
