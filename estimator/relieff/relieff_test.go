package relieff

import (
	"context"
	"testing"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/neighbor"
	"github.com/hupe1980/reliefgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	testCases := []struct {
		mode Mode
		want string
	}{
		{ModeKNearest, "k_nearest"},
		{ModeDiff, "diff"},
		{ModeExpRank, "exp_rank"},
		{Mode(0), "Mode(0)"},
		{Mode(42), "Mode(42)"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.mode.String())
	}
}

func TestModeValidate(t *testing.T) {
	require.NoError(t, ModeKNearest.Validate())
	require.NoError(t, ModeDiff.Validate())
	require.NoError(t, ModeExpRank.Validate())

	var invalidMode *ErrInvalidMode
	err := Mode(42).Validate()
	require.ErrorAs(t, err, &invalidMode)
	assert.Equal(t, Mode(42), invalidMode.Mode)
}

func TestNewValidation(t *testing.T) {
	t.Run("MissingFeatureType", func(t *testing.T) {
		_, err := New()

		var ift *distance.ErrInvalidFeatureType
		require.ErrorAs(t, err, &ift)
	})

	t.Run("UnknownFeatureType", func(t *testing.T) {
		_, err := New(func(o *Options) {
			o.FeatureType = distance.FeatureType(99)
		})

		var ift *distance.ErrInvalidFeatureType
		require.ErrorAs(t, err, &ift)
		assert.Equal(t, distance.FeatureType(99), ift.FeatureType)
	})

	t.Run("UnknownMode", func(t *testing.T) {
		_, err := New(func(o *Options) {
			o.FeatureType = distance.Continuous
			o.Mode = Mode(7)
		})

		var im *ErrInvalidMode
		require.ErrorAs(t, err, &im)
		assert.Equal(t, Mode(7), im.Mode)
	})

	t.Run("ZeroNeighborCount", func(t *testing.T) {
		_, err := New(func(o *Options) {
			o.FeatureType = distance.Continuous
			o.K = 0
		})

		var inc *neighbor.ErrInvalidNeighborCount
		require.ErrorAs(t, err, &inc)
	})

	t.Run("Defaults", func(t *testing.T) {
		r, err := New(func(o *Options) {
			o.FeatureType = distance.Continuous
		})
		require.NoError(t, err)

		assert.Equal(t, ModeKNearest, r.opts.Mode)
		assert.Equal(t, 10, r.opts.K)
		assert.Equal(t, "ReliefF", r.Name())
	})
}

func TestEstimateNeighborCountTooLarge(t *testing.T) {
	ds, err := dataset.New([][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}, []int{0, 1, 0, 1})
	require.NoError(t, err)

	r, err := New(func(o *Options) {
		o.FeatureType = distance.Continuous
	})
	require.NoError(t, err)

	_, err = r.Estimate(context.Background(), ds)

	var inc *neighbor.ErrInvalidNeighborCount
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 10, inc.K)
	assert.Equal(t, 4, inc.N)
}

func TestEstimateDiscriminativeRanking(t *testing.T) {
	// The target depends only on features 0 and 1 (label = feature 0 >
	// feature 1), so both must outrank every noise feature.
	testCases := []struct {
		name        string
		featureType distance.FeatureType
		mode        Mode
	}{
		{"KNearestContinuous", distance.Continuous, ModeKNearest},
		{"KNearestDiscrete", distance.Discrete, ModeKNearest},
		{"DiffContinuous", distance.Continuous, ModeDiff},
		{"DiffDiscrete", distance.Discrete, ModeDiff},
		{"ExpRankContinuous", distance.Continuous, ModeExpRank},
		{"ExpRankDiscrete", distance.Discrete, ModeExpRank},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := testutil.NewRNG(4711)

			var data [][]float64
			if tc.featureType == distance.Continuous {
				data = rng.UniformMatrix(200, 5)
			} else {
				data = rng.DiscreteMatrix(200, 5, 3)
			}
			target := testutil.ThresholdTarget(data, 0, 1)

			ds, err := dataset.New(data, target)
			require.NoError(t, err)

			r, err := New(func(o *Options) {
				o.FeatureType = tc.featureType
				o.Mode = tc.mode
			})
			require.NoError(t, err)

			w, err := r.Estimate(context.Background(), ds)
			require.NoError(t, err)
			require.Len(t, w, 5)

			for j := 2; j < 5; j++ {
				assert.Greater(t, w[0], w[j], "feature 0 must outrank noise feature %d", j)
				assert.Greater(t, w[1], w[j], "feature 1 must outrank noise feature %d", j)
			}
		})
	}
}

func TestEstimateExpRankLargeDataset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large dataset test in short mode")
	}

	rng := testutil.NewRNG(4711)
	data := rng.UniformMatrix(1000, 10)
	target := testutil.ThresholdTarget(data, 0, 1)

	ds, err := dataset.New(data, target)
	require.NoError(t, err)

	r, err := New(func(o *Options) {
		o.FeatureType = distance.Continuous
		o.Mode = ModeExpRank
	})
	require.NoError(t, err)

	w, err := r.Estimate(context.Background(), ds)
	require.NoError(t, err)
	require.Len(t, w, 10)

	for j := 2; j < 10; j++ {
		assert.Greater(t, w[0], w[j], "feature 0 must outrank noise feature %d", j)
		assert.Greater(t, w[1], w[j], "feature 1 must outrank noise feature %d", j)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	rng := testutil.NewRNG(42)
	data := rng.UniformMatrix(80, 4)
	target := testutil.ThresholdTarget(data, 0, 1)

	ds, err := dataset.New(data, target)
	require.NoError(t, err)

	estimate := func(parallelism int) []float64 {
		r, err := New(func(o *Options) {
			o.FeatureType = distance.Continuous
			o.Mode = ModeExpRank
			o.Parallelism = parallelism
		})
		require.NoError(t, err)

		w, err := r.Estimate(context.Background(), ds)
		require.NoError(t, err)
		return w
	}

	first := estimate(1)
	assert.Equal(t, first, estimate(1), "repeated runs must match bit for bit")
	assert.Equal(t, first, estimate(4), "parallel runs must match sequential bit for bit")
}

func TestEstimateIdenticalRows(t *testing.T) {
	// No feature distinguishes anything, so every mode must collapse the
	// weights to zero.
	data := testutil.ConstantMatrix(10, 3, 0.5)
	target := testutil.AlternatingTarget(10)

	ds, err := dataset.New(data, target)
	require.NoError(t, err)

	for _, mode := range []Mode{ModeKNearest, ModeDiff, ModeExpRank} {
		t.Run(mode.String(), func(t *testing.T) {
			r, err := New(func(o *Options) {
				o.FeatureType = distance.Continuous
				o.Mode = mode
				o.K = 3
			})
			require.NoError(t, err)

			w, err := r.Estimate(context.Background(), ds)
			require.NoError(t, err)

			for j, v := range w {
				assert.InDelta(t, 0, v, 1e-12, "feature %d", j)
			}
		})
	}
}

func TestEstimateNormalizationBounds(t *testing.T) {
	rng := testutil.NewRNG(7)
	data := rng.UniformMatrix(60, 4)
	target := testutil.ThresholdTarget(data, 0, 1)

	ds, err := dataset.New(data, target)
	require.NoError(t, err)

	for _, mode := range []Mode{ModeKNearest, ModeDiff, ModeExpRank} {
		t.Run(mode.String(), func(t *testing.T) {
			r, err := New(func(o *Options) {
				o.FeatureType = distance.Continuous
				o.Mode = mode
				o.K = 5
			})
			require.NoError(t, err)

			w, err := r.Estimate(context.Background(), ds)
			require.NoError(t, err)

			for j, v := range w {
				assert.GreaterOrEqual(t, v, -1.0, "feature %d", j)
				assert.LessOrEqual(t, v, 1.0, "feature %d", j)
			}
		})
	}
}

func TestEstimateContextCanceled(t *testing.T) {
	rng := testutil.NewRNG(1)
	data := rng.UniformMatrix(20, 3)
	target := testutil.ThresholdTarget(data, 0, 1)

	ds, err := dataset.New(data, target)
	require.NoError(t, err)

	r, err := New(func(o *Options) {
		o.FeatureType = distance.Continuous
		o.K = 3
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Estimate(ctx, ds)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultSigma(t *testing.T) {
	r, err := New(func(o *Options) {
		o.FeatureType = distance.Continuous
		o.Mode = ModeExpRank
	})
	require.NoError(t, err)

	// Standard deviation of the rank distribution 1..n-1.
	assert.InDelta(t, 28.866, r.sigma(101), 1e-2)

	// Tiny datasets floor at 1.
	assert.Equal(t, 1.0, r.sigma(2))
	assert.Equal(t, 1.0, r.sigma(3))

	// An explicit Sigma wins.
	r2, err := New(func(o *Options) {
		o.FeatureType = distance.Continuous
		o.Mode = ModeExpRank
		o.Sigma = 8
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, r2.sigma(101))
}

func TestExpRankKernel(t *testing.T) {
	kernel := expRankKernel(4, 2)

	require.Len(t, kernel, 4)
	assert.InDelta(t, 0.7788, kernel[0], 1e-4) // exp(-(1/2)^2)
	assert.InDelta(t, 0.3678, kernel[1], 1e-4) // exp(-1)
	for i := 1; i < len(kernel); i++ {
		assert.Less(t, kernel[i], kernel[i-1], "kernel must decay with rank")
	}
}
