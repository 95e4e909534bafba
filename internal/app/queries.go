package app

import (
	"context"
	"time"

	"homebase/internal/domain"
)

const (
	keyTags        = "tags"
	keyRecommended = "experiences:recommended"
	keyPopular     = "experiences:popular"
)

func keyExperience(id string) string { return "experience:" + id }

type QueryService struct {
	repo     domain.ExperienceRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ExperienceRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// Filter is never cached: its result depends on the wall clock when
// availableNow is set and on every booking decrement.
func (s *QueryService) Filter(ctx context.Context, opts domain.FilterOptions) ([]domain.Experience, error) {
	return s.repo.Filter(ctx, opts)
}

func (s *QueryService) GetExperience(ctx context.Context, id string) (domain.Experience, error) {
	key := keyExperience(id)
	var exp domain.Experience
	if ok, _ := s.cache.Get(ctx, key, &exp); ok {
		return exp, nil
	}
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Experience{}, err
	}
	_ = s.cache.Set(ctx, key, exp, int(s.cacheTTL.Seconds()))
	return exp, nil
}

// Tags resolves the distinct catalog tags to their display descriptors.
func (s *QueryService) Tags(ctx context.Context) ([]domain.TagInfo, error) {
	var out []domain.TagInfo
	if ok, _ := s.cache.Get(ctx, keyTags, &out); ok {
		return out, nil
	}
	names, err := s.repo.DistinctTags(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]domain.TagInfo, 0, len(names))
	for _, n := range names {
		out = append(out, domain.ResolveTag(n))
	}
	_ = s.cache.Set(ctx, keyTags, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) Recommended(ctx context.Context) ([]domain.Experience, error) {
	return s.cachedList(ctx, keyRecommended, s.repo.Recommended)
}

func (s *QueryService) Popular(ctx context.Context) ([]domain.Experience, error) {
	return s.cachedList(ctx, keyPopular, s.repo.Popular)
}

func (s *QueryService) cachedList(ctx context.Context, key string, load func(context.Context) ([]domain.Experience, error)) ([]domain.Experience, error) {
	var out []domain.Experience
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers mutating the result cannot poison
	// what a fake in-process cache stored by reference
	_ = s.cache.Set(ctx, key, copyExperiences(out), int(s.cacheTTL.Seconds()))
	return out, nil
}

func copyExperiences(in []domain.Experience) []domain.Experience {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Experience, len(in))
	copy(out, in)
	return out
}
