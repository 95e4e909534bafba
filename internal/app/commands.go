package app

import (
	"context"

	"homebase/internal/domain"
)

// BookingService is the only writer against the catalog.
type BookingService struct {
	repo  domain.ExperienceRepository
	cache domain.Cache
}

func NewBookingService(r domain.ExperienceRepository, c domain.Cache) *BookingService {
	return &BookingService{repo: r, cache: c}
}

// Book reserves one spot on the entry. False means the id is unknown or the
// entry is fully booked; the store does not distinguish the two. After a
// successful decrement the cached views that embed available_spots are
// evicted so readers see the new count.
func (s *BookingService) Book(ctx context.Context, id, userID string) (bool, error) {
	ok, err := s.repo.Book(ctx, id, userID)
	if err != nil || !ok {
		return ok, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, keyExperience(id))
		_ = s.cache.Del(ctx, keyRecommended)
		_ = s.cache.Del(ctx, keyPopular)
	}
	return true, nil
}
