package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/reliefgo"
	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/testutil"
)

const (
	benchInstances = 500
	benchFeatures  = 20
)

func benchDataset(b *testing.B) *dataset.Dataset {
	b.Helper()

	rng := testutil.NewRNG(42)
	data := rng.UniformMatrix(benchInstances, benchFeatures)
	target := testutil.ThresholdTarget(data, 0, 1)

	ds, err := dataset.New(data, target)
	if err != nil {
		b.Fatal(err)
	}
	return ds
}

// BenchmarkReliefF compares the three update modes on one dataset.
func BenchmarkReliefF(b *testing.B) {
	modes := []struct {
		name  string
		build func() (*reliefgo.Estimator, error)
	}{
		{name: "KNearest", build: reliefgo.ReliefF().Continuous().Build},
		{name: "Diff", build: reliefgo.ReliefF().Continuous().Diff().Build},
		{name: "ExpRank", build: reliefgo.ReliefF().Continuous().ExpRank().Build},
	}

	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			est, err := mode.build()
			if err != nil {
				b.Fatal(err)
			}
			ds := benchDataset(b)
			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := est.EstimateDataset(ctx, ds); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReliefFParallelism sweeps the worker cap on a fixed dataset.
func BenchmarkReliefFParallelism(b *testing.B) {
	for _, parallelism := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("P%d", parallelism), func(b *testing.B) {
			est, err := reliefgo.ReliefF().
				Continuous().
				Parallelism(parallelism).
				Build()
			if err != nil {
				b.Fatal(err)
			}
			ds := benchDataset(b)
			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := est.EstimateDataset(ctx, ds); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCutoffEstimators covers the neighbor-free SURF family.
func BenchmarkCutoffEstimators(b *testing.B) {
	estimators := []struct {
		name  string
		build func() (*reliefgo.Estimator, error)
	}{
		{name: "SURF", build: reliefgo.SURF().Continuous().Build},
		{name: "SURFStar", build: reliefgo.SURFStar().Continuous().Build},
		{name: "MultiSURF", build: reliefgo.MultiSURF().Continuous().Build},
	}

	for _, tc := range estimators {
		b.Run(tc.name, func(b *testing.B) {
			est, err := tc.build()
			if err != nil {
				b.Fatal(err)
			}
			ds := benchDataset(b)
			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := est.EstimateDataset(ctx, ds); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkIterativeRelief runs a short fixed number of passes so the
// per-pass cost is comparable across runs.
func BenchmarkIterativeRelief(b *testing.B) {
	est, err := reliefgo.IterativeRelief().
		Continuous().
		Iterations(5).
		Tolerance(0).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	ds := benchDataset(b)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := est.EstimateDataset(ctx, ds); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDatasetNew measures validation plus the deep copy of input.
func BenchmarkDatasetNew(b *testing.B) {
	rng := testutil.NewRNG(42)
	data := rng.UniformMatrix(benchInstances, benchFeatures)
	target := testutil.ThresholdTarget(data, 0, 1)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.New(data, target); err != nil {
			b.Fatal(err)
		}
	}
}
