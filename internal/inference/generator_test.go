package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_CountAndWidth(t *testing.T) {
	gen := NewGenerator(1)

	instances, labels := gen.Batch(5)
	require.Len(t, instances, 5)
	require.Len(t, labels, 5)

	for i, instance := range instances {
		assert.Len(t, instance, FeatureCount, "instance %d has wrong width", i)
	}
}

func TestBatch_LabelRule(t *testing.T) {
	gen := NewGenerator(1)

	_, labels := gen.Batch(10)
	for i, label := range labels {
		if i%3 == 0 {
			assert.Equal(t, LabelFraud, label, "index %d", i)
		} else {
			assert.Equal(t, LabelNormal, label, "index %d", i)
		}
	}
}

func TestBatch_Deterministic(t *testing.T) {
	a, _ := NewGenerator(42).Batch(7)
	b, _ := NewGenerator(42).Batch(7)
	assert.Equal(t, a, b)
}

func TestTransaction_FraudShift(t *testing.T) {
	gen := NewGenerator(7)

	const n = 300
	var fraudSum, normalSum float64
	for i := 0; i < n; i++ {
		for _, v := range gen.Transaction(true)[:FeatureCount-1] {
			fraudSum += v
		}
		for _, v := range gen.Transaction(false)[:FeatureCount-1] {
			normalSum += v
		}
	}

	draws := float64(n * (FeatureCount - 1))
	assert.InDelta(t, 2.0, fraudSum/draws, 0.15, "fraud components should center near +2")
	assert.InDelta(t, 0.0, normalSum/draws, 0.15, "normal components should center near 0")
}

func TestTransaction_AmountDistribution(t *testing.T) {
	gen := NewGenerator(11)

	const n = 2000
	var fraudTotal, normalTotal float64
	for i := 0; i < n; i++ {
		fraudAmount := gen.Transaction(true)[FeatureCount-1]
		normalAmount := gen.Transaction(false)[FeatureCount-1]

		require.Greater(t, fraudAmount, 0.0)
		require.Greater(t, normalAmount, 0.0)
		fraudTotal += fraudAmount
		normalTotal += normalAmount
	}

	// Gamma(3, 100) has mean 300; Gamma(2, 50) has mean 100.
	assert.InDelta(t, 300.0, fraudTotal/n, 30.0)
	assert.InDelta(t, 100.0, normalTotal/n, 10.0)
}
