package dal

var mockListings = map[Market][]Listing{
	MarketNL: {
		{ID: "nl-001", Make: "Volkswagen", Model: "ID.3", Variant: "Pro 58 kWh", Year: 2021, Price: 24950, Mileage: 48000, Fuel: "Electric", Transmission: "Automatic", Body: "Hatchback", Power: "150 kW", Doors: 5, Color: "Grey", Location: "Amsterdam", Source: "Mock", URL: "https://example.com/listings/nl-001", Images: []string{}},
		{ID: "nl-002", Make: "Toyota", Model: "Prius", Variant: "1.8 Hybrid Business", Year: 2019, Price: 19500, Mileage: 86000, Fuel: "Hybrid", Transmission: "Automatic", Body: "Hatchback", Power: "90 kW", Doors: 5, Color: "White", Location: "Utrecht", Source: "Mock", URL: "https://example.com/listings/nl-002", Images: []string{}},
		{ID: "nl-003", Make: "BMW", Model: "3 Series", Variant: "320i M Sport", Year: 2020, Price: 31900, Mileage: 62000, Fuel: "Petrol", Transmission: "Automatic", Body: "Sedan", Power: "135 kW", Doors: 4, Color: "Black", Location: "Rotterdam", Source: "Mock", URL: "https://example.com/listings/nl-003", Images: []string{}},
		{ID: "nl-004", Make: "Nissan", Model: "Leaf", Variant: "Tekna 40 kWh", Year: 2018, Price: 13750, Mileage: 71000, Fuel: "Electric", Transmission: "Automatic", Body: "Hatchback", Power: "110 kW", Doors: 5, Color: "Blue", Location: "Den Haag", Source: "Mock", URL: "https://example.com/listings/nl-004", Images: []string{}},
		{ID: "nl-005", Make: "Volvo", Model: "XC40", Variant: "T5 Recharge", Year: 2022, Price: 38900, Mileage: 23000, Fuel: "Hybrid", Transmission: "Automatic", Body: "SUV", Power: "192 kW", Doors: 5, Color: "White", Location: "Eindhoven", Source: "Mock", URL: "https://example.com/listings/nl-005", Images: []string{}},
		{ID: "nl-006", Make: "Tesla", Model: "Model 3", Variant: "Long Range", Year: 2021, Price: 33400, Mileage: 55000, Fuel: "Electric", Transmission: "Automatic", Body: "Sedan", Power: "324 kW", Doors: 4, Color: "Red", Location: "Amsterdam", Source: "Mock", URL: "https://example.com/listings/nl-006", Images: []string{}},
		{ID: "nl-007", Make: "Peugeot", Model: "208", Variant: "1.2 PureTech Allure", Year: 2020, Price: 15250, Mileage: 39000, Fuel: "Petrol", Transmission: "Manual", Body: "Hatchback", Power: "74 kW", Doors: 5, Color: "Yellow", Location: "Groningen", Source: "Mock", URL: "https://example.com/listings/nl-007", Images: []string{}},
		{ID: "nl-008", Make: "Audi", Model: "A4", Variant: "Avant 35 TDI", Year: 2019, Price: 26900, Mileage: 104000, Fuel: "Diesel", Transmission: "Automatic", Body: "Estate", Power: "120 kW", Doors: 5, Color: "Grey", Location: "Breda", Source: "Mock", URL: "https://example.com/listings/nl-008", Images: []string{}},
		{ID: "nl-009", Make: "Kia", Model: "Niro", Variant: "e-Niro DynamicLine", Year: 2020, Price: 22400, Mileage: 58000, Fuel: "Electric", Transmission: "Automatic", Body: "SUV", Power: "150 kW", Doors: 5, Color: "Silver", Location: "Zwolle", Source: "Mock", URL: "https://example.com/listings/nl-009", Images: []string{}},
		{ID: "nl-010", Make: "Renault", Model: "Clio", Variant: "TCe 90 Zen", Year: 2017, Price: 9950, Mileage: 92000, Fuel: "Petrol", Transmission: "Manual", Body: "Hatchback", Power: "66 kW", Doors: 5, Color: "Red", Location: "Haarlem", Source: "Mock", URL: "https://example.com/listings/nl-010", Images: []string{}},
		{ID: "nl-011", Make: "Skoda", Model: "Octavia", Variant: "Combi 2.0 TDI", Year: 2018, Price: 16800, Mileage: 141000, Fuel: "Diesel", Transmission: "Manual", Body: "Estate", Power: "110 kW", Doors: 5, Color: "Blue", Location: "Arnhem", Source: "Mock", URL: "https://example.com/listings/nl-011", Images: []string{}},
		{ID: "nl-012", Make: "Volkswagen", Model: "Golf", Variant: "1.5 eTSI Life", Year: 2021, Price: 23750, Mileage: 31000, Fuel: "Petrol", Transmission: "Automatic", Body: "Hatchback", Power: "96 kW", Doors: 5, Color: "White", Location: "Leiden", Source: "Mock", URL: "https://example.com/listings/nl-012", Images: []string{}},
	},
	MarketDE: {
		{ID: "de-001", Make: "BMW", Model: "i4", Variant: "eDrive40", Year: 2022, Price: 47900, Mileage: 21000, Fuel: "Electric", Transmission: "Automatic", Body: "Sedan", Power: "250 kW", Doors: 5, Color: "Blue", Location: "München", Source: "Mock", URL: "https://example.com/listings/de-001", Images: []string{}},
		{ID: "de-002", Make: "Mercedes-Benz", Model: "C-Class", Variant: "C 300 e", Year: 2021, Price: 39500, Mileage: 44000, Fuel: "Hybrid", Transmission: "Automatic", Body: "Sedan", Power: "235 kW", Doors: 4, Color: "Black", Location: "Stuttgart", Source: "Mock", URL: "https://example.com/listings/de-002", Images: []string{}},
		{ID: "de-003", Make: "Volkswagen", Model: "Golf", Variant: "2.0 TDI Style", Year: 2020, Price: 21900, Mileage: 67000, Fuel: "Diesel", Transmission: "Manual", Body: "Hatchback", Power: "110 kW", Doors: 5, Color: "Grey", Location: "Hamburg", Source: "Mock", URL: "https://example.com/listings/de-003", Images: []string{}},
		{ID: "de-004", Make: "Audi", Model: "e-tron", Variant: "55 quattro", Year: 2020, Price: 45900, Mileage: 58000, Fuel: "Electric", Transmission: "Automatic", Body: "SUV", Power: "300 kW", Doors: 5, Color: "White", Location: "Ingolstadt", Source: "Mock", URL: "https://example.com/listings/de-004", Images: []string{}},
		{ID: "de-005", Make: "BMW", Model: "X3", Variant: "xDrive20d", Year: 2019, Price: 32500, Mileage: 98000, Fuel: "Diesel", Transmission: "Automatic", Body: "SUV", Power: "140 kW", Doors: 5, Color: "Black", Location: "Berlin", Source: "Mock", URL: "https://example.com/listings/de-005", Images: []string{}},
		{ID: "de-006", Make: "Mercedes-Benz", Model: "A-Class", Variant: "A 180", Year: 2018, Price: 19900, Mileage: 75000, Fuel: "Petrol", Transmission: "Manual", Body: "Hatchback", Power: "100 kW", Doors: 5, Color: "Silver", Location: "Köln", Source: "Mock", URL: "https://example.com/listings/de-006", Images: []string{}},
	},
}

// MockListings returns a copy of the offline listings of a market with their
// deal scores. Unknown markets have none.
func MockListings(m Market) []Listing {
	src := mockListings[m]
	if src == nil {
		return nil
	}
	out := make([]Listing, len(src))
	for i, l := range src {
		out[i] = l.WithDealScore()
	}
	return out
}
