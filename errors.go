package reliefgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/estimator/relieff"
	"github.com/hupe1980/reliefgo/neighbor"
)

var (
	// ErrNilEstimator is returned when New is called without an engine.
	ErrNilEstimator = errors.New("estimator must not be nil")

	// ErrInvalidDataset is returned when the sample matrix and target
	// vector cannot form a dataset. The concrete cause
	// (dataset.ErrNoData, *dataset.ErrRaggedRow, ...) can be accessed
	// via errors.Is and errors.As.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrInvalidFeatureType is returned when an estimator is configured
	// without a feature type or with an unrecognized one.
	ErrInvalidFeatureType = errors.New("invalid feature type")

	// ErrInvalidMode is returned when a ReliefF estimator is configured
	// with an unrecognized update mode.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidNeighborCount is returned when a neighbor count is not
	// positive or exceeds what the dataset can provide.
	ErrInvalidNeighborCount = errors.New("invalid neighbor count")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Dataset unification.
	if errors.Is(err, dataset.ErrNoData) ||
		errors.Is(err, dataset.ErrTooFewInstances) ||
		errors.Is(err, dataset.ErrNoFeatures) {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	var rr *dataset.ErrRaggedRow
	if errors.As(err, &rr) {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	var tl *dataset.ErrTargetLength
	if errors.As(err, &tl) {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}

	// Option normalization.
	var ft *distance.ErrInvalidFeatureType
	if errors.As(err, &ft) {
		return fmt.Errorf("%w: %w", ErrInvalidFeatureType, err)
	}
	var im *relieff.ErrInvalidMode
	if errors.As(err, &im) {
		return fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}
	var nc *neighbor.ErrInvalidNeighborCount
	if errors.As(err, &nc) {
		return fmt.Errorf("%w: %w", ErrInvalidNeighborCount, err)
	}

	return err
}
