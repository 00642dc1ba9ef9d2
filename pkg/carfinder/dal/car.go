package dal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Listing defines a normalized classifieds listing. Every field is optional,
// numeric zero values mean the upstream source did not provide them.
type Listing struct {
	ID           string   `json:"id"`
	Make         string   `json:"make,omitempty"`
	Model        string   `json:"model,omitempty"`
	Variant      string   `json:"variant,omitempty"`
	Year         int      `json:"year,omitempty"`
	Price        int      `json:"price,omitempty"`
	Mileage      int      `json:"mileage,omitempty"`
	Fuel         string   `json:"fuel,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Body         string   `json:"body,omitempty"`
	Power        string   `json:"power,omitempty"`
	Doors        int      `json:"doors,omitempty"`
	Color        string   `json:"color,omitempty"`
	Location     string   `json:"location,omitempty"`
	Source       string   `json:"source,omitempty"`
	URL          string   `json:"url,omitempty"`
	Images       []string `json:"images"`
	DealScore    *float64 `json:"dealScore,omitempty"`
}

// Criteria defines the free-form filters of a listing search
type Criteria struct {
	Make         string  `json:"make,omitempty"`
	Model        string  `json:"model,omitempty"`
	PriceMin     FlexInt `json:"priceMin,omitempty"`
	PriceMax     FlexInt `json:"priceMax,omitempty"`
	YearMin      FlexInt `json:"yearMin,omitempty"`
	Fuel         string  `json:"fuel,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Body         string  `json:"body,omitempty"`
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// FlexInt is an integer that also decodes from numeric strings, which is what
// HTML forms post. An empty string or null decodes to zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	if math.IsNaN(v) || v >= math.MaxInt || v < math.MinInt {
		return fmt.Errorf("invalid number %q: out of range", s)
	}
	*n = FlexInt(v)
	return nil
}

// SearchResponse defines the HTTP response of a listing search
type SearchResponse struct {
	Cars       []Listing         `json:"cars"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	TotalPages int               `json:"totalPages,omitempty"`
	DeepLinks  map[string]string `json:"deepLinks,omitempty"`
	Error      string            `json:"error,omitempty"`
}
