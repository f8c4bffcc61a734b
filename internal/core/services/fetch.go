package services

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// fetchAll runs fetch once per distinct key over at most limit goroutines and
// returns the results keyed by input. The first failure cancels the rest.
func fetchAll[K comparable, V any](
	ctx context.Context,
	limit int,
	keys []K,
	fetch func(ctx context.Context, key K) (V, error),
) (map[K]V, error) {
	distinct := make([]K, 0, len(keys))
	seen := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, key)
	}

	if limit < 1 {
		limit = 1
	}

	values := make([]V, len(distinct))
	p := pool.New().
		WithMaxGoroutines(limit).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, key := range distinct {
		p.Go(func(ctx context.Context) error {
			value, err := fetch(ctx, key)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	results := make(map[K]V, len(distinct))
	for i, key := range distinct {
		results[key] = values[i]
	}
	return results, nil
}
