package dal

import "fmt"

// Vehicle defines a catalog entry the questionnaire answers are scored against
type Vehicle struct {
	Name   string   `json:"name"`
	Fuel   string   `json:"fuel"`
	Type   string   `json:"type"`
	Price  string   `json:"price"`
	Rating string   `json:"rating"`
	Tags   []string `json:"tags"`
}

// HasTag reports whether the vehicle carries tag.
func (v Vehicle) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var catalogs = map[Market][]Vehicle{
	MarketNL: {
		{Name: "Volkswagen ID.3", Fuel: "Electric", Type: "Compact", Price: "€35,000", Rating: "4.5", Tags: []string{"electric", "compact", "eco", "tech"}},
		{Name: "Toyota Prius", Fuel: "Hybrid", Type: "Mid-size", Price: "€32,000", Rating: "4.3", Tags: []string{"hybrid", "midsize", "eco", "economy"}},
		{Name: "BMW 3 Series", Fuel: "Petrol", Type: "Mid-size", Price: "€45,000", Rating: "4.6", Tags: []string{"petrol", "midsize", "performance", "luxury"}},
		{Name: "Nissan Leaf", Fuel: "Electric", Type: "Compact", Price: "€28,000", Rating: "4.2", Tags: []string{"electric", "compact", "eco", "parking"}},
		{Name: "Volvo XC40", Fuel: "Hybrid", Type: "SUV", Price: "€42,000", Rating: "4.4", Tags: []string{"hybrid", "large", "safety", "family"}},
		{Name: "Tesla Model 3", Fuel: "Electric", Type: "Mid-size", Price: "€48,000", Rating: "4.7", Tags: []string{"electric", "midsize", "tech", "performance"}},
		{Name: "Peugeot 208", Fuel: "Petrol", Type: "Compact", Price: "€18,000", Rating: "4.1", Tags: []string{"petrol", "compact", "budget", "parking"}},
		{Name: "Audi A4", Fuel: "Diesel", Type: "Mid-size", Price: "€52,000", Rating: "4.5", Tags: []string{"diesel", "midsize", "luxury", "highway"}},
	},
	MarketDE: {
		{Name: "BMW i4", Fuel: "Electric", Type: "Mid-size", Price: "€55,000", Rating: "4.6", Tags: []string{"electric", "midsize", "performance", "autobahn"}},
		{Name: "Mercedes C-Class", Fuel: "Hybrid", Type: "Mid-size", Price: "€48,000", Rating: "4.5", Tags: []string{"hybrid", "midsize", "luxury", "highway"}},
		{Name: "Volkswagen Golf", Fuel: "Petrol", Type: "Compact", Price: "€25,000", Rating: "4.4", Tags: []string{"petrol", "compact", "mid", "mixed"}},
		{Name: "Audi e-tron", Fuel: "Electric", Type: "SUV", Price: "€75,000", Rating: "4.7", Tags: []string{"electric", "large", "luxury", "tech"}},
		{Name: "Porsche Taycan", Fuel: "Electric", Type: "Sports", Price: "€85,000", Rating: "4.8", Tags: []string{"electric", "sports", "luxury", "performance"}},
		{Name: "BMW X3", Fuel: "Diesel", Type: "SUV", Price: "€55,000", Rating: "4.5", Tags: []string{"diesel", "large", "family", "allweather"}},
		{Name: "Mercedes A-Class", Fuel: "Petrol", Type: "Compact", Price: "€28,000", Rating: "4.3", Tags: []string{"petrol", "compact", "mid", "tech"}},
		{Name: "Audi A6", Fuel: "Diesel", Type: "Large", Price: "€65,000", Rating: "4.6", Tags: []string{"diesel", "large", "luxury", "autobahn"}},
	},
}

// Catalog returns a copy of the vehicle catalog of a market.
func Catalog(m Market) ([]Vehicle, error) {
	vehicles, ok := catalogs[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarket, m)
	}
	return append([]Vehicle(nil), vehicles...), nil
}
