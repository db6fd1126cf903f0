package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureTypeString(t *testing.T) {
	assert.Equal(t, "continuous", Continuous.String())
	assert.Equal(t, "discrete", Discrete.String())
	assert.Equal(t, "FeatureType(0)", FeatureType(0).String())
	assert.Equal(t, "FeatureType(42)", FeatureType(42).String())
}

func TestFeatureTypeValidate(t *testing.T) {
	require.NoError(t, Continuous.Validate())
	require.NoError(t, Discrete.Validate())

	err := FeatureType(99).Validate()
	require.Error(t, err)

	var ift *ErrInvalidFeatureType
	require.ErrorAs(t, err, &ift)
	assert.Equal(t, FeatureType(99), ift.FeatureType)

	// The zero value means "not set" and must be rejected too.
	assert.Error(t, FeatureType(0).Validate())
}

func TestProviderContinuous(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		ranges   []float64
		expected []float64
	}{
		{"Simple", []float64{1, 2}, []float64{3, 2}, []float64{4, 1}, []float64{0.5, 0}},
		{"Negative", []float64{-1, 0}, []float64{1, -2}, []float64{2, 2}, []float64{1, 1}},
		{"DegenerateRangeGuardedToOne", []float64{5}, []float64{5}, []float64{1}, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := Provider(Continuous, tt.ranges)
			require.NoError(t, err)

			dst := make([]float64, len(tt.a))
			diff(tt.a, tt.b, dst)

			for j := range dst {
				assert.InDelta(t, tt.expected[j], dst[j], 1e-12)
			}
		})
	}
}

func TestProviderDiscrete(t *testing.T) {
	diff, err := Provider(Discrete, nil)
	require.NoError(t, err)

	dst := make([]float64, 3)
	diff([]float64{1, 2, 3}, []float64{1, 5, 3}, dst)
	assert.Equal(t, []float64{0, 1, 0}, dst)
}

func TestProviderInvalid(t *testing.T) {
	_, err := Provider(FeatureType(7), nil)
	require.Error(t, err)

	var ift *ErrInvalidFeatureType
	require.ErrorAs(t, err, &ift)
	assert.Equal(t, FeatureType(7), ift.FeatureType)
}

func TestWeighted(t *testing.T) {
	diff, err := Provider(Continuous, []float64{2, 2})
	require.NoError(t, err)

	a := []float64{0, 0}
	b := []float64{1, 2}
	scratch := make([]float64, 2)

	t.Run("Uniform", func(t *testing.T) {
		got := Weighted(diff, a, b, nil, scratch)
		assert.InDelta(t, 1.5, got, 1e-12)
	})

	t.Run("Biased", func(t *testing.T) {
		got := Weighted(diff, a, b, []float64{1, 0}, scratch)
		assert.InDelta(t, 0.5, got, 1e-12)
	})
}
