package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// fetchAll calls fetch once per distinct key with at most limit calls in flight.
// Failed keys are reported to onErr and left out of the result.
func fetchAll[T any](ctx context.Context, limit int, keys []string, fetch func(context.Context, string) (T, error), onErr func(key string, err error)) map[string]T {
	var (
		mu  sync.Mutex
		out = make(map[string]T, len(keys))
		g   errgroup.Group
	)
	if limit > 0 {
		g.SetLimit(limit)
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.Go(func() error {
			v, err := fetch(ctx, key)
			if err != nil {
				onErr(key, err)
				return nil
			}
			mu.Lock()
			out[key] = v
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
