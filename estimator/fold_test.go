package estimator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	// Each row adds row+1 into every component, so the total over n rows
	// is n*(n+1)/2 regardless of how the rows are chunked.
	setup := func() (InstanceFunc, error) {
		return func(row int, acc Weights) error {
			for j := range acc {
				acc[j] += float64(row + 1)
			}
			return nil
		}, nil
	}

	for _, parallelism := range []int{0, 1, 2, 4, 16} {
		w, err := Fold(context.Background(), 10, 3, parallelism, setup)
		require.NoError(t, err)
		require.Len(t, w, 3)

		for _, v := range w {
			assert.InDelta(t, 55.0, v, 1e-12)
		}
	}
}

func TestFoldDeterministic(t *testing.T) {
	// Contributions with wildly different magnitudes expose any change in
	// summation grouping. Chunk boundaries and merge order are fixed, so
	// the result must be bit-identical at every parallelism.
	setup := func() (InstanceFunc, error) {
		return func(row int, acc Weights) error {
			v := 1.0
			for i := 0; i < row%7; i++ {
				v *= 10
			}
			acc[0] += v
			acc[1] += 1.0 / v
			return nil
		}, nil
	}

	sequential, err := Fold(context.Background(), 1000, 2, 1, setup)
	require.NoError(t, err)

	for _, parallelism := range []int{2, 4, 8} {
		parallel, err := Fold(context.Background(), 1000, 2, parallelism, setup)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel)
	}
}

func TestFoldSetupError(t *testing.T) {
	setupErr := errors.New("setup failed")

	_, err := Fold(context.Background(), 10, 2, 2, func() (InstanceFunc, error) {
		return nil, setupErr
	})
	require.ErrorIs(t, err, setupErr)
}

func TestFoldInstanceError(t *testing.T) {
	rowErr := errors.New("bad row")

	_, err := Fold(context.Background(), 10, 2, 2, func() (InstanceFunc, error) {
		return func(row int, acc Weights) error {
			if row == 7 {
				return rowErr
			}
			return nil
		}, nil
	})
	require.ErrorIs(t, err, rowErr)
}

func TestFoldContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fold(ctx, 10, 2, 2, func() (InstanceFunc, error) {
		return func(row int, acc Weights) error { return nil }, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
