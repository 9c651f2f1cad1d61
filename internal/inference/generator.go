package inference

import (
	"math"
	"math/rand/v2"
)

// FeatureCount is the number of features per transaction: the 28 PCA
// components V1-V28 of the credit-card dataset plus the amount.
const FeatureCount = 29

// Display labels for generated transactions.
const (
	LabelFraud  = "Fraud-like"
	LabelNormal = "Normal-like"
)

// Generator produces synthetic transactions shaped like the credit-card
// fraud dataset. Fraud-like transactions shift the PCA components up and
// draw larger amounts, so a working model should score them higher.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. A zero seed selects a random stream;
// a non-zero seed makes the output reproducible.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Transaction returns one feature vector of length FeatureCount.
func (g *Generator) Transaction(fraud bool) []float64 {
	features := make([]float64, FeatureCount)
	for i := 0; i < FeatureCount-1; i++ {
		if fraud {
			features[i] = g.rng.NormFloat64() + 2
		} else {
			features[i] = g.rng.NormFloat64()
		}
	}
	if fraud {
		features[FeatureCount-1] = g.gamma(3, 100)
	} else {
		features[FeatureCount-1] = g.gamma(2, 50)
	}
	return features
}

// Batch returns n transactions with their display labels. Every third
// transaction is fraud-like so one request exercises both shapes.
func (g *Generator) Batch(n int) ([][]float64, []string) {
	instances := make([][]float64, 0, n)
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fraud := i%3 == 0
		instances = append(instances, g.Transaction(fraud))
		if fraud {
			labels = append(labels, LabelFraud)
		} else {
			labels = append(labels, LabelNormal)
		}
	}
	return instances, labels
}

// gamma draws from a Gamma(shape, scale) distribution using the
// Marsaglia-Tsang squeeze method. Requires shape >= 1, which both
// amount distributions satisfy.
func (g *Generator) gamma(shape, scale float64) float64 {
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := g.rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := g.rng.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}
