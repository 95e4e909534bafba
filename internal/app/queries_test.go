package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"homebase/internal/app"
	"homebase/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	entries   []domain.Experience
	tags      []string
	bookCalls int
	bookOK    bool
}

func (f *fakeRepo) Filter(ctx context.Context, opts domain.FilterOptions) ([]domain.Experience, error) {
	return f.entries, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (domain.Experience, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Experience{}, domain.ErrNotFound
}

func (f *fakeRepo) DistinctTags(ctx context.Context) ([]string, error) { return f.tags, nil }

func (f *fakeRepo) Recommended(ctx context.Context) ([]domain.Experience, error) {
	var out []domain.Experience
	for _, e := range f.entries {
		if e.IsRecommended {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) Popular(ctx context.Context) ([]domain.Experience, error) {
	var out []domain.Experience
	for _, e := range f.entries {
		if e.IsPopular {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) Book(ctx context.Context, id, userID string) (bool, error) {
	f.bookCalls++
	return f.bookOK, nil
}

// fakeCache is mutex-guarded because the warmer reads and writes it from
// several goroutines.
type fakeCache struct {
	mu    sync.Mutex
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Experience:
		*d = v.(domain.Experience)
	case *[]domain.Experience:
		*d = v.([]domain.Experience)
	case *[]domain.TagInfo:
		*d = v.([]domain.TagInfo)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

// ---- tests ----

func TestGetExperience_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{entries: []domain.Experience{{ID: "1", Name: "Sunset Yoga"}}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	// miss populates the cache
	e, err := q.GetExperience(context.Background(), "1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e.Name != "Sunset Yoga" {
		t.Fatalf("unexpected experience: %+v", e)
	}

	// mutate repo to prove the second read is served from cache
	repo.entries[0].Name = "SHOULD NOT SEE THIS"

	e2, err := q.GetExperience(context.Background(), "1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e2.Name != "Sunset Yoga" {
		t.Fatalf("expected cached name, got %s", e2.Name)
	}
}

func TestGetExperience_NotFoundIsNotCached(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, time.Minute)

	if _, err := q.GetExperience(context.Background(), "missing"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(cache.store) != 0 {
		t.Fatalf("miss must not populate cache: %v", cache.store)
	}
}

func TestTags_ResolvesDescriptors(t *testing.T) {
	repo := &fakeRepo{tags: []string{"Wellness", "Mystery"}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, time.Minute)

	out, err := q.Tags(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(out))
	}
	if out[0].Name != "Wellness" || out[0].IconName != "infinity" {
		t.Fatalf("wellness descriptor: %+v", out[0])
	}
	// unknown tags fall back to the neutral descriptor
	if out[1].IconName != "circle" {
		t.Fatalf("unknown tag descriptor: %+v", out[1])
	}

	// second call comes from cache
	repo.tags = []string{"Changed"}
	out2, _ := q.Tags(context.Background())
	if out2[0].Name != "Wellness" {
		t.Fatalf("expected cached tags, got %+v", out2)
	}
}

func TestRecommended_Cache(t *testing.T) {
	repo := &fakeRepo{entries: []domain.Experience{
		{ID: "1", Name: "Sunset Yoga", IsRecommended: true},
		{ID: "2", Name: "Scooter Rental"},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, time.Minute)

	out, err := q.Recommended(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("unexpected recommended: %+v", out)
	}

	// mutating the returned slice must not poison the cached copy
	out[0].Name = "mutated"
	out2, _ := q.Recommended(context.Background())
	if out2[0].Name != "Sunset Yoga" {
		t.Fatalf("cached copy was poisoned: %+v", out2[0])
	}
}
