package pipeline

import "github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"

// DefaultPageSize is the number of listings shown per page.
const DefaultPageSize = 10

// Paginate returns the 1-based page of listings. Pages below 1 clamp to the
// first page, a size below 1 uses DefaultPageSize and pages past the end are
// empty.
func Paginate(listings []dal.Listing, page, size int) []dal.Listing {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if page > PageCount(len(listings), size) {
		return []dal.Listing{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}

// PageCount returns the number of pages needed for total listings.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
