// SPDX-License-Identifier: MIT

package dist_test

import (
	"testing"

	"github.com/katalvlaran/lvstat/dist"
)

// benchmarkBinomialProb evaluates the whole support of Binomial(n, 0.37).
func benchmarkBinomialProb(b *testing.B, n int) {
	bin, err := dist.NewBinomial(n, 0.37)
	if err != nil {
		b.Fatalf("NewBinomial failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for k := 0; k <= n; k++ {
			_ = bin.Prob(k)
		}
	}
}

// BenchmarkBinomialProb_Small covers the direct-product regime.
func BenchmarkBinomialProb_Small(b *testing.B) { benchmarkBinomialProb(b, 30) }

// BenchmarkBinomialProb_Large forces the log-space regime.
func BenchmarkBinomialProb_Large(b *testing.B) { benchmarkBinomialProb(b, 3000) }

// BenchmarkNormalDensity measures a single density evaluation.
func BenchmarkNormalDensity(b *testing.B) {
	n, err := dist.NewNormal(0, 1)
	if err != nil {
		b.Fatalf("NewNormal failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = n.Density(float64(i%16) - 8)
	}
}
