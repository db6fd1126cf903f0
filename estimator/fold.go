package estimator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// InstanceFunc computes one instance's weight contribution and adds it
// into acc.
type InstanceFunc func(row int, acc Weights) error

// foldChunk is the number of rows a worker processes per setup call.
// Chunk boundaries are fixed, never derived from the parallelism, so
// the summation grouping is the same no matter how many workers run.
const foldChunk = 64

// Fold reduces per-instance weight contributions over all n rows of a
// dataset with m features.
//
// Rows are partitioned into fixed-size contiguous chunks. A worker
// claims a chunk, calls setup once (giving it its own scanner and
// scratch memory) and then the returned InstanceFunc for every row in
// the chunk, accumulating into a chunk-private vector. After all
// workers finish, the chunk vectors are summed in chunk order. Because
// neither the chunk boundaries nor the merge order depend on
// parallelism or scheduling, the result is bit-identical for any
// parallelism, including 1.
//
// parallelism caps the number of concurrent workers; <= 0 selects
// GOMAXPROCS. Cancellation is checked per row; a canceled fold returns
// ctx.Err() and no partial result.
func Fold(ctx context.Context, n, m, parallelism int, setup func() (InstanceFunc, error)) (Weights, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	accs := make([]Weights, 0, (n+foldChunk-1)/foldChunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for start := 0; start < n; start += foldChunk {
		end := min(start+foldChunk, n)
		acc := Zero(m)
		accs = append(accs, acc)

		g.Go(func() error {
			fn, err := setup()
			if err != nil {
				return err
			}
			for row := start; row < end; row++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(row, acc); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := Zero(m)
	for _, acc := range accs {
		total.Add(acc)
	}
	return total, nil
}
