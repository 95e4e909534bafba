package app_test

import (
	"context"
	"testing"
	"time"

	"homebase/internal/app"
	"homebase/internal/domain"
)

func TestWarm_PopulatesCache(t *testing.T) {
	repo := &fakeRepo{
		entries: []domain.Experience{
			{ID: "1", Name: "Sunset Yoga", IsRecommended: true, IsPopular: true},
			{ID: "2", Name: "Scooter Rental"},
		},
		tags: []string{"Wellness", "Transport"},
	}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, time.Minute)

	app.Warm(context.Background(), q, []string{"1", "2", "unknown"}, 2)

	for _, key := range []string{
		"tags",
		"experiences:recommended",
		"experiences:popular",
		"experience:1",
		"experience:2",
	} {
		if _, ok := cache.store[key]; !ok {
			t.Fatalf("key %q not warmed; cache has %v", key, keysOf(cache.store))
		}
	}
	// unknown ids are skipped, not cached
	if _, ok := cache.store["experience:unknown"]; ok {
		t.Fatal("unknown id was cached")
	}
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
