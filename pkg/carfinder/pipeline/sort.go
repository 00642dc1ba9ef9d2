package pipeline

import "github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"

// SortKey names a listing ordering
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortYearNew    SortKey = "year-new"
	SortYearOld    SortKey = "year-old"
	SortMileageLow SortKey = "mileage-low"
)

// SortKeys lists the supported orderings.
func SortKeys() []SortKey {
	return []SortKey{SortRelevance, SortPriceLow, SortPriceHigh, SortYearNew, SortYearOld, SortMileageLow}
}

// ParseSortKey returns the key named by s, falling back to SortRelevance.
func ParseSortKey(s string) SortKey {
	for _, k := range SortKeys() {
		if string(k) == s {
			return k
		}
	}
	return SortRelevance
}

type keyFunc func(dal.Listing) int

// Sort returns a stably ordered copy of listings. Listings lacking the value
// being sorted on go last, in input order. Relevance and unknown keys keep
// the input order.
func Sort(listings []dal.Listing, key SortKey) []dal.Listing {
	out := append([]dal.Listing(nil), listings...)

	var value keyFunc
	desc := false
	switch key {
	case SortPriceLow:
		value = func(l dal.Listing) int { return l.Price }
	case SortPriceHigh:
		value, desc = func(l dal.Listing) int { return l.Price }, true
	case SortYearNew:
		value, desc = func(l dal.Listing) int { return l.Year }, true
	case SortYearOld:
		value = func(l dal.Listing) int { return l.Year }
	case SortMileageLow:
		value = func(l dal.Listing) int { return l.Mileage }
	default:
		return out
	}

	return MergeSort(out, func(a, b dal.Listing) bool {
		va, vb := value(a), value(b)
		switch {
		case vb <= 0:
			return va > 0
		case va <= 0:
			return false
		case desc:
			return va > vb
		default:
			return va < vb
		}
	})
}

// MergeSort is a stable sort: elements for which neither less(a, b) nor
// less(b, a) holds keep their relative order.
func MergeSort(listings []dal.Listing, less func(a, b dal.Listing) bool) []dal.Listing {
	if len(listings) <= 1 {
		return listings
	}

	middle := len(listings) / 2
	left := MergeSort(listings[:middle], less)
	right := MergeSort(listings[middle:], less)
	return merge(left, right, less)
}

func merge(left, right []dal.Listing, less func(a, b dal.Listing) bool) []dal.Listing {
	result := make([]dal.Listing, len(left)+len(right))
	for i := 0; len(left) > 0 || len(right) > 0; i++ {
		if len(left) > 0 && len(right) > 0 {
			if less(right[0], left[0]) {
				result[i] = right[0]
				right = right[1:]
			} else {
				result[i] = left[0]
				left = left[1:]
			}
		} else if len(left) > 0 {
			result[i] = left[0]
			left = left[1:]
		} else if len(right) > 0 {
			result[i] = right[0]
			right = right[1:]
		}
	}
	return result
}
