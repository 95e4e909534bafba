package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"homebase/internal/domain"
)

// DefaultSeed returns the built-in catalog used when no seed file is
// configured. The data is injected configuration, not computed.
func DefaultSeed() []domain.Experience {
	return []domain.Experience{
		{
			ID:                 "1",
			Name:               "Sunset Yoga",
			Description:        "Join our beachside sunset yoga session, perfect for all levels. Mats provided.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1545205597-3d9d02c29597?q=80&w=2670&auto=format&fit=crop",
			Date:               "2023-09-15",
			Time:               "18:00",
			Duration:           "1 hour",
			Price:              0,
			IsFree:             true,
			IncludedInStay:     true,
			Category:           domain.CategoryEvent,
			Tags:               []string{"Wellness"},
			AvailableSpots:     8,
			TotalSpots:         12,
			ColivingLocationID: "loc1",
			IsRecommended:      true,
			IsPopular:          true,
		},
		{
			ID:                 "2",
			Name:               "Scooter Rental",
			Description:        "Explore the island with our comfortable scooters. Includes helmet and insurance.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1583430999850-319c9be05465?q=80&w=2574&auto=format&fit=crop",
			Duration:           "Daily",
			Price:              12,
			Category:           domain.CategoryService,
			Tags:               []string{"Transport"},
			AvailableSpots:     5,
			TotalSpots:         10,
			ColivingLocationID: "loc1",
			IsRecommended:      true,
		},
		{
			ID:                 "3",
			Name:               "Community Dinner",
			Description:        "A family-style dinner with the entire community. Tonight's theme: Local Cuisine!",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?q=80&w=2670&auto=format&fit=crop",
			Date:               "2023-09-15",
			Time:               "19:30",
			Duration:           "2 hours",
			Price:              8,
			Category:           domain.CategoryEvent,
			Tags:               []string{"Food"},
			AvailableSpots:     15,
			TotalSpots:         20,
			ColivingLocationID: "loc1",
			IsPopular:          true,
		},
		{
			ID:                 "4",
			Name:               "Surf Lesson",
			Description:        "Learn to surf with our experienced instructors. All equipment provided.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=2673&auto=format&fit=crop",
			Date:               "2023-09-16",
			Time:               "09:00",
			Duration:           "2 hours",
			Price:              25,
			Category:           domain.CategoryEvent,
			Tags:               []string{"Adventure"},
			AvailableSpots:     4,
			TotalSpots:         6,
			ColivingLocationID: "loc1",
			IsRecommended:      true,
			IsPopular:          true,
		},
		{
			ID:                 "5",
			Name:               "Airport Shuttle",
			Description:        "Convenient shuttle service to and from the airport. Book at least 24h in advance.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1570125909232-eb263c188f7e?q=80&w=2671&auto=format&fit=crop",
			Duration:           "On demand",
			Price:              15,
			Category:           domain.CategoryService,
			Tags:               []string{"Transport"},
			AvailableSpots:     8,
			TotalSpots:         8,
			ColivingLocationID: "loc1",
		},
		{
			ID:                 "6",
			Name:               "Coworking Day Pass",
			Description:        "Access to our premium coworking space with high-speed internet and coffee.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1497366811353-6870744d04b2?q=80&w=2669&auto=format&fit=crop",
			Duration:           "Daily 8am-8pm",
			Price:              10,
			Category:           domain.CategoryService,
			Tags:               []string{"Workspace"},
			AvailableSpots:     12,
			TotalSpots:         20,
			ColivingLocationID: "loc1",
			IsPopular:          true,
		},
		{
			ID:                 "7",
			Name:               "Waterfall Hike",
			Description:        "Guided hike to a stunning local waterfall. Moderate difficulty level.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1565019011521-254775ab7675?q=80&w=2573&auto=format&fit=crop",
			Date:               "2023-09-17",
			Time:               "07:30",
			Duration:           "4 hours",
			Price:              20,
			Category:           domain.CategoryEvent,
			Tags:               []string{"Adventure"},
			AvailableSpots:     8,
			TotalSpots:         10,
			ColivingLocationID: "loc1",
			IsRecommended:      true,
			IsPopular:          true,
		},
		{
			ID:                 "8",
			Name:               "Morning Meditation",
			Description:        "Start your day with a guided meditation session in our garden.",
			PropertyName:       "Homebase",
			Location:           "Sri Lanka",
			ImageURL:           "https://images.unsplash.com/photo-1536623975707-c4b3b2af565d?q=80&w=2670&auto=format&fit=crop",
			Date:               "2023-09-16",
			Time:               "07:00",
			Duration:           "45 minutes",
			Price:              0,
			IsFree:             true,
			IncludedInStay:     true,
			Category:           domain.CategoryEvent,
			Tags:               []string{"Wellness"},
			AvailableSpots:     10,
			TotalSpots:         15,
			ColivingLocationID: "loc1",
		},
	}
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// LoadSeedFile reads and validates a JSON seed (an array of experiences).
func LoadSeedFile(path string) ([]domain.Experience, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var entries []domain.Experience
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := ValidateSeed(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ValidateSeed enforces the catalog invariants: unique non-empty ids, a
// valid category, 0 <= available <= total, non-negative price, and
// zero-padded date/time forms. The zero-padding requirement is what makes
// the engine's lexical comparisons safe.
func ValidateSeed(entries []domain.Experience) error {
	ids := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d: empty id", i)
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("entry %d: duplicate id %q", i, e.ID)
		}
		ids[e.ID] = struct{}{}
		if !e.Category.Valid() {
			return fmt.Errorf("entry %q: invalid category %q", e.ID, e.Category)
		}
		if e.AvailableSpots < 0 || e.AvailableSpots > e.TotalSpots {
			return fmt.Errorf("entry %q: available_spots %d outside [0,%d]", e.ID, e.AvailableSpots, e.TotalSpots)
		}
		if e.Price < 0 {
			return fmt.Errorf("entry %q: negative price", e.ID)
		}
		if e.Date != "" && !dateRe.MatchString(e.Date) {
			return fmt.Errorf("entry %q: date %q is not zero-padded YYYY-MM-DD", e.ID, e.Date)
		}
		if e.Time != "" && !timeRe.MatchString(e.Time) {
			return fmt.Errorf("entry %q: time %q is not zero-padded HH:MM", e.ID, e.Time)
		}
	}
	return nil
}
