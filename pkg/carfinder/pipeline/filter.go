// Package pipeline filters, sorts and paginates listings for display.
package pipeline

import (
	"strings"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

// Filter returns the listings matching every set criterion. Empty criteria
// return the input unchanged. A listing with an unknown price or year is
// dropped as soon as a bound on that value is set.
func Filter(listings []dal.Listing, c dal.Criteria) []dal.Listing {
	if c.IsZero() {
		return listings
	}
	out := make([]dal.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l dal.Listing, c dal.Criteria) bool {
	return equalFold(l.Make, c.Make) &&
		modelMatch(l, c.Model) &&
		priceMatch(l.Price, int(c.PriceMin), int(c.PriceMax)) &&
		yearMatch(l.Year, int(c.YearMin)) &&
		equalFold(l.Fuel, c.Fuel) &&
		equalFold(l.Transmission, c.Transmission) &&
		equalFold(l.Body, c.Body)
}

func equalFold(value, want string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(strings.TrimSpace(value), want)
}

func modelMatch(l dal.Listing, model string) bool {
	model = strings.ToLower(strings.TrimSpace(model))
	if model == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Model), model) ||
		strings.Contains(strings.ToLower(l.Model+" "+l.Variant), model)
}

func priceMatch(price, min, max int) bool {
	if min <= 0 && max <= 0 {
		return true
	}
	if price <= 0 {
		return false
	}
	return (min <= 0 || price >= min) && (max <= 0 || price <= max)
}

func yearMatch(year, min int) bool {
	if min <= 0 {
		return true
	}
	return year > 0 && year >= min
}
