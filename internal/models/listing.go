package models

// ListingItem is a single listing in the catalog: what is for sale, for how much, and where.
type ListingItem struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Price      int64      `json:"price"`
	Coordinate Coordinate `json:"location"`
	Images     []string   `json:"images"`
}

// RankedItem is a ListingItem with its straight-line distance from an origin.
type RankedItem struct {
	ListingItem
	DistanceKm float64 `json:"distance_km"`
}

// FeedCard is one card of the home screen carousel.
type FeedCard struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Price      int64      `json:"price"`
	PriceLabel string     `json:"price_label"`
	Coordinate Coordinate `json:"location"`
	Geohash    string     `json:"geohash"`
	Images     []string   `json:"images"`
	DistanceKm *float64   `json:"distance_km,omitempty"`
}

// HomeFeed is the home screen payload. When Ranked is false no location was
// available and Items are in catalog order with no nearest item.
type HomeFeed struct {
	Ranked    bool        `json:"ranked"`
	Origin    *Coordinate `json:"origin,omitempty"`
	NearestID *int64      `json:"nearest_id"`
	Items     []FeedCard  `json:"items"`
}

// Focus is the card selected by a horizontal scroll offset.
type Focus struct {
	Index   int    `json:"index"`
	InRange bool   `json:"in_range"`
	ID      *int64 `json:"id"`
}
