package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_ExactMatch(t *testing.T) {
	cfg := DefaultConfig()
	m := Evaluate([]int{5, 11, 12}, []int{5, 11, 12}, cfg)

	assert.Equal(t, 3, m.TruePositives)
	assert.Equal(t, 0, m.FalsePositives)
	assert.Equal(t, 0, m.FalseNegatives)
	assert.InDelta(t, 1.0, m.F1, 1e-9)
}

func TestEvaluate_Tolerance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tolerance = 1

	m := Evaluate([]int{6, 12}, []int{5, 11, 20}, cfg)
	assert.Equal(t, 2, m.TruePositives)
	assert.Equal(t, 0, m.FalsePositives)
	assert.Equal(t, 1, m.FalseNegatives)

	// Each gold boundary matches at most one prediction.
	m = Evaluate([]int{5, 5}, []int{5}, cfg)
	assert.Equal(t, 1, m.TruePositives)
	assert.Equal(t, 1, m.FalsePositives)
}

func TestEvaluate_Mismatch(t *testing.T) {
	cfg := DefaultConfig()
	m := Evaluate([]int{1, 2}, []int{10, 20}, cfg)

	assert.Equal(t, 0, m.TruePositives)
	assert.Equal(t, 2, m.FalsePositives)
	assert.Equal(t, 2, m.FalseNegatives)
	assert.Zero(t, m.Precision)
	assert.Zero(t, m.Recall)
	assert.Zero(t, m.F1)
}

func TestCompute_WeightedScore(t *testing.T) {
	cfg := Config{Tolerance: 0, PrecisionWeight: 2.0, RecallWeight: 1.0}
	m := Compute(1, 0, 1, cfg) // precision 1.0, recall 0.5

	assert.InDelta(t, 1.0, m.Precision, 1e-9)
	assert.InDelta(t, 0.5, m.Recall, 1e-9)
	assert.InDelta(t, (2.0*1.0+1.0*0.5)/3.0, m.WeightedScore, 1e-9)
}

func TestThroughput(t *testing.T) {
	thr := Throughput{Bytes: 2_000_000, Tokens: 400_000, Elapsed: 2 * time.Second}
	assert.InDelta(t, 1.0, thr.MBPerSec(), 1e-9)
	assert.InDelta(t, 200_000.0, thr.TokensPerSec(), 1e-9)

	thr.Add(Throughput{Bytes: 2_000_000, Elapsed: 2 * time.Second})
	assert.InDelta(t, 1.0, thr.MBPerSec(), 1e-9)

	var zero Throughput
	assert.Zero(t, zero.MBPerSec())
	assert.Zero(t, zero.TokensPerSec())
}
