package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"homebase/internal/domain"
)

// Store is the in-memory catalog. It exclusively owns its entries: all
// reads return copies and Book is the only mutation. The mutex makes the
// check-then-decrement in Book atomic now that the store sits behind an
// HTTP boundary.
type Store struct {
	mu      sync.RWMutex
	entries []domain.Experience
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides the wall clock used for the availableNow predicate
// and the "today first" sort rank.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(seed []domain.Experience, opts ...Option) *Store {
	s := &Store{
		entries: make([]domain.Experience, len(seed)),
		now:     time.Now,
	}
	for i, e := range seed {
		s.entries[i] = cloneExperience(e)
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func cloneExperience(e domain.Experience) domain.Experience {
	e.Tags = append([]string(nil), e.Tags...)
	return e
}

// Filter scans the catalog, applies each requested predicate conjunctively
// and returns a freshly sorted copy. Absent optional fields impose no
// constraint. Date/time comparisons are lexical over the zero-padded forms.
func (s *Store) Filter(ctx context.Context, opts domain.FilterOptions) ([]domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	today := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	out := make([]domain.Experience, 0, len(s.entries))
	for _, e := range s.entries {
		if !matches(e, opts, today, currentTime) {
			continue
		}
		out = append(out, cloneExperience(e))
	}

	// Stable 5-level tie-break: services last, today's entries first,
	// time ascending on a shared date, then date ascending.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aSvc := a.Category == domain.CategoryService
		bSvc := b.Category == domain.CategoryService
		if aSvc != bSvc {
			return !aSvc
		}
		aToday := a.Date == today
		bToday := b.Date == today
		if aToday != bToday {
			return aToday
		}
		if a.Date == b.Date && a.Time != "" && b.Time != "" {
			return a.Time < b.Time
		}
		if a.Date != "" && b.Date != "" {
			return a.Date < b.Date
		}
		return false
	})
	return out, nil
}

func matches(e domain.Experience, opts domain.FilterOptions, today, currentTime string) bool {
	if opts.Category != "" && opts.Category != domain.CategoryAll && e.Category != opts.Category {
		return false
	}
	// Entries without a date are date-agnostic and always pass.
	if opts.Date != "" && e.Date != "" && e.Date != opts.Date {
		return false
	}
	if opts.Time != "" && e.Time != "" && e.Time < opts.Time {
		return false
	}
	if opts.MinPrice != nil && !e.IsFree && e.Price < *opts.MinPrice {
		return false
	}
	if opts.MaxPrice != nil && !e.IsFree && e.Price > *opts.MaxPrice {
		return false
	}
	if opts.AvailableNow && !availableNow(e, today, currentTime) {
		return false
	}
	if len(opts.Tags) > 0 && !hasAnyTag(e, opts.Tags) {
		return false
	}
	// opts.Weekend is intentionally not consulted.
	return true
}

// availableNow keeps services without a fixed slot, today's entries whose
// time has not passed, and anything dated in the future.
func availableNow(e domain.Experience, today, currentTime string) bool {
	if e.Category == domain.CategoryService && (e.Date == "" || e.Time == "") {
		return true
	}
	if e.Date == today && e.Time >= currentTime {
		return true
	}
	return e.Date > today
}

func hasAnyTag(e domain.Experience, want []string) bool {
	for _, t := range e.Tags {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}

func (s *Store) GetByID(ctx context.Context, id string) (domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return cloneExperience(e), nil
		}
	}
	return domain.Experience{}, domain.ErrNotFound
}

// DistinctTags returns the union of all tag sets, deduplicated, in first
// appearance order.
func (s *Store) DistinctTags(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, e := range s.entries {
		for _, t := range e.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) Recommended(ctx context.Context) ([]domain.Experience, error) {
	return s.flagged(func(e domain.Experience) bool { return e.IsRecommended })
}

func (s *Store) Popular(ctx context.Context) ([]domain.Experience, error) {
	return s.flagged(func(e domain.Experience) bool { return e.IsPopular })
}

func (s *Store) flagged(keep func(domain.Experience) bool) ([]domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Experience
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, cloneExperience(e))
		}
	}
	return out, nil
}

// Book decrements the entry's available spots by one. It reports false and
// leaves the catalog untouched when the id is unknown or no spots remain;
// the caller cannot tell the two causes apart from the return value alone.
func (s *Store) Book(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		if s.entries[i].AvailableSpots <= 0 {
			return false, nil
		}
		s.entries[i].AvailableSpots--
		return true, nil
	}
	return false, nil
}
