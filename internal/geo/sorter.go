package geo

import (
	"cmp"
	"slices"

	"listing-api/internal/models"
)

// SortByDistance ranks items by distance from origin, nearest first.
// Items at equal distance keep their input order. The input slice is not modified.
func SortByDistance(origin models.Coordinate, items []models.ListingItem) []models.RankedItem {
	ranked := make([]models.RankedItem, 0, len(items))
	for _, item := range items {
		item.Images = slices.Clone(item.Images)
		ranked = append(ranked, models.RankedItem{
			ListingItem: item,
			DistanceKm:  Distance(origin, item.Coordinate),
		})
	}

	slices.SortStableFunc(ranked, func(a, b models.RankedItem) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return ranked
}

// NearestID returns the id of the first ranked item, or false if there is none.
func NearestID(ranked []models.RankedItem) (int64, bool) {
	if len(ranked) == 0 {
		return 0, false
	}
	return ranked[0].ID, true
}
