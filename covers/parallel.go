// Multi-index enumeration across goroutines.
package covers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kirby/fpgroup"
)

// EnumerateIndices counts the covers of g at each of the given
// indices, running one enumeration per goroutine. This is the safe
// parallel granularity: every enumeration owns a private clone of the
// presentation and its own work buffers, sharing only the immutable
// permutation tables.
//
// The result maps index → cover count. The first failing enumeration
// cancels the rest.
func EnumerateIndices(ctx context.Context, g *fpgroup.Presentation, indices []int) (map[int]int, error) {
	eg, ctx := errgroup.WithContext(ctx)

	counts := make([]int, len(indices))
	for i, index := range indices {
		eg.Go(func() error {
			n, err := Enumerate(g.Clone(), index,
				func(*fpgroup.Presentation) bool { return true },
				WithContext(ctx))
			counts[i] = n

			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int]int, len(indices))
	for i, index := range indices {
		out[index] = counts[i]
	}

	return out, nil
}
