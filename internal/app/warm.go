package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"homebase/internal/domain"
)

// Warm pre-populates the cache with the stable reads: tags, the promotional
// lists, and every seeded detail view. Reads run concurrently, bounded by
// workers. Failures are logged and skipped; warming is best-effort.
func Warm(ctx context.Context, q *QueryService, ids []string, workers int) {
	if workers <= 0 {
		workers = 4
	}

	jobs := []func(context.Context) error{
		func(ctx context.Context) error { _, err := q.Tags(ctx); return err },
		func(ctx context.Context) error { _, err := q.Recommended(ctx); return err },
		func(ctx context.Context) error { _, err := q.Popular(ctx); return err },
	}
	for _, id := range ids {
		id := id
		jobs = append(jobs, func(ctx context.Context) error {
			_, err := q.GetExperience(ctx, id)
			if err == domain.ErrNotFound {
				return nil
			}
			return err
		})
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	for _, job := range jobs {
		job := job
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("cache warm aborted")
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := job(ctx); err != nil {
				log.Warn().Err(err).Msg("cache warm read failed")
			}
		}()
	}
	wg.Wait()
	log.Info().Int("reads", len(jobs)).Msg("cache warm completed")
}
