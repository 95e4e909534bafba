package domain

import (
	"context"
	"errors"
)

// ErrNotFound signals a lookup miss. It is the only lookup failure mode.
var ErrNotFound = errors.New("experience not found")

// ExperienceRepository is the catalog port. The store owns all entries;
// readers get copies and Book is the single write path.
type ExperienceRepository interface {
	// Read paths
	Filter(ctx context.Context, opts FilterOptions) ([]Experience, error)
	GetByID(ctx context.Context, id string) (Experience, error)
	DistinctTags(ctx context.Context) ([]string, error)
	Recommended(ctx context.Context) ([]Experience, error)
	Popular(ctx context.Context) ([]Experience, error)

	// Write path. Reports false without mutating anything when the id is
	// unknown or the entry has no spots left. userID is accepted for a
	// future booking ledger; no decision uses it yet.
	Book(ctx context.Context, id, userID string) (bool, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
