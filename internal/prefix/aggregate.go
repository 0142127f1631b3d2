// Package prefix groups locations into coarse postcode buckets.
package prefix

import (
	"sort"

	"locations-sqlgen/internal/models"
)

// Of returns the first length characters of postcode, or false when the postcode is shorter.
func Of(postcode string, length int) (string, bool) {
	runes := []rune(postcode)
	if length <= 0 || len(runes) < length {
		return "", false
	}
	return string(runes[:length]), true
}

// Aggregate groups locations by postcode prefix and summarizes each group. Locations whose postcode is
// shorter than length are left out. Summaries are sorted by prefix.
func Aggregate(locations []models.Location, length int) []models.PrefixSummary {
	groups := make(map[string][]models.Location)
	for _, loc := range locations {
		p, ok := Of(loc.Postcode, length)
		if !ok {
			continue
		}
		groups[p] = append(groups[p], loc)
	}

	summaries := make([]models.PrefixSummary, 0, len(groups))
	for p, group := range groups {
		summaries = append(summaries, summarize(p, group))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Prefix < summaries[j].Prefix
	})

	return summaries
}

func summarize(p string, group []models.Location) models.PrefixSummary {
	var sumLat, sumLon float64
	cities := make([]string, 0, len(group))
	provinces := make([]string, 0, len(group))
	for _, loc := range group {
		sumLat += loc.Latitude
		sumLon += loc.Longitude
		cities = append(cities, loc.City)
		provinces = append(provinces, loc.Province)
	}

	n := float64(len(group))
	return models.PrefixSummary{
		Prefix:       p,
		AvgLatitude:  sumLat / n,
		AvgLongitude: sumLon / n,
		Province:     Mode(provinces),
		City:         Mode(cities),
	}
}

// Mode returns the most frequent value. Ties go to the lexicographically smallest value.
func Mode(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best string
	bestCount := 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}
