package domain

// Category partitions the catalog into its two browsing views.
type Category string

const (
	CategoryAll     Category = "all"
	CategoryEvent   Category = "event"
	CategoryService Category = "service"
)

func (c Category) Valid() bool {
	return c == CategoryEvent || c == CategoryService
}

// Experience is one bookable activity or service in the catalog.
//
// Date and Time are zero-padded lexical forms ("2023-09-15", "18:00"); an
// empty string means the entry is not bound to a date or time (typical for
// services). All ordering over these fields is plain string comparison,
// which is only correct because the values are zero-padded.
type Experience struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	PropertyName       string   `json:"property_name"`
	Location           string   `json:"location"`
	ImageURL           string   `json:"image_url"`
	Date               string   `json:"date"`
	Time               string   `json:"time"`
	Duration           string   `json:"duration"`
	Price              float64  `json:"price"`
	IsFree             bool     `json:"is_free"`
	IncludedInStay     bool     `json:"included_in_stay"`
	Category           Category `json:"category"`
	Tags               []string `json:"tags"`
	AvailableSpots     int      `json:"available_spots"`
	TotalSpots         int      `json:"total_spots"`
	HostContact        string   `json:"host_contact,omitempty"`
	ColivingLocationID string   `json:"coliving_location_id"`
	IsRecommended      bool     `json:"is_recommended"`
	IsPopular          bool     `json:"is_popular"`
}

// FilterOptions selects a projection of the catalog. Every field is
// optional; a zero value means "no constraint". Price display precedence
// (IsFree over IncludedInStay over Price) is the display layer's concern,
// but the price predicates here honor IsFree: free entries always pass
// MinPrice/MaxPrice.
type FilterOptions struct {
	Category     Category
	Date         string
	Time         string
	MinPrice     *float64
	MaxPrice     *float64
	AvailableNow bool
	Tags         []string

	// Weekend is bound from clients for shape compatibility but no
	// predicate consumes it yet.
	Weekend *bool
}
