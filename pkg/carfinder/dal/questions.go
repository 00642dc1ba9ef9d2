package dal

import "fmt"

// Option is a single selectable answer of a question
type Option struct {
	Icon        string `json:"icon"`
	Text        string `json:"text"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// Question is one step of the questionnaire
type Question struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Options  []Option `json:"options"`
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

var questionnaires = map[Market][]Question{
	MarketNL: {
		{
			Title:    "How do you primarily use your car?",
			Subtitle: "This helps us understand your driving patterns",
			Options: []Option{
				{Icon: "🏙️", Text: "City driving", Description: "Mostly within Amsterdam, Rotterdam, Utrecht", Value: "city"},
				{Icon: "🛣️", Text: "Mixed driving", Description: "City and highway combination", Value: "mixed"},
				{Icon: "🚗", Text: "Highway commuting", Description: "Regular longer distances", Value: "highway"},
				{Icon: "🚐", Text: "Family transport", Description: "School runs, weekend trips", Value: "family"},
			},
		},
		{
			Title:    "What's your fuel preference?",
			Subtitle: "Consider Dutch environmental zones and incentives",
			Options: []Option{
				{Icon: "⚡", Text: "Electric", Description: "Zero emissions, great for city zones", Value: "electric"},
				{Icon: "🔋", Text: "Hybrid", Description: "Best of both worlds", Value: "hybrid"},
				{Icon: "⛽", Text: "Petrol", Description: "Traditional and flexible", Value: "petrol"},
				{Icon: "🚛", Text: "Diesel", Description: "Good for long distances", Value: "diesel"},
			},
		},
		{
			Title:    "What size car fits your needs?",
			Subtitle: "Consider Dutch parking spaces and narrow streets",
			Options: []Option{
				{Icon: "🚗", Text: "Compact", Description: "Easy to park, fuel efficient", Value: "compact"},
				{Icon: "🚙", Text: "Mid-size", Description: "Balance of space and maneuverability", Value: "midsize"},
				{Icon: "🚐", Text: "Large/SUV", Description: "Maximum space and comfort", Value: "large"},
				{Icon: "🏎️", Text: "Sports car", Description: "Performance and style", Value: "sports"},
			},
		},
		{
			Title:    "What's your budget range?",
			Subtitle: "Including Dutch taxes and insurance considerations",
			Options: []Option{
				{Icon: "💰", Text: "€15,000 - €25,000", Description: "Practical and economical", Value: "budget"},
				{Icon: "💎", Text: "€25,000 - €40,000", Description: "Good features and quality", Value: "mid"},
				{Icon: "🌟", Text: "€40,000 - €60,000", Description: "Premium features", Value: "premium"},
				{Icon: "👑", Text: "€60,000+", Description: "Luxury and top performance", Value: "luxury"},
			},
		},
		{
			Title:    "What matters most to you?",
			Subtitle: "Choose your top priority",
			Options: []Option{
				{Icon: "🌱", Text: "Environmental impact", Description: "Low emissions, sustainability", Value: "eco"},
				{Icon: "💸", Text: "Low running costs", Description: "Fuel efficiency, maintenance", Value: "economy"},
				{Icon: "👨‍👩‍👧‍👦", Text: "Family practicality", Description: "Space, safety, convenience", Value: "practical"},
				{Icon: "🏎️", Text: "Performance & style", Description: "Power, design, prestige", Value: "performance"},
			},
		},
		{
			Title:    "Any specific preferences?",
			Subtitle: "Final considerations for Dutch roads",
			Options: []Option{
				{Icon: "🅿️", Text: "Easy parking", Description: "Compact for city parking", Value: "parking"},
				{Icon: "⚡", Text: "Latest tech", Description: "Advanced features and connectivity", Value: "tech"},
				{Icon: "🛡️", Text: "Maximum safety", Description: "Top safety ratings", Value: "safety"},
				{Icon: "🎨", Text: "Unique design", Description: "Stand out from the crowd", Value: "design"},
			},
		},
	},
	MarketDE: {
		{
			Title:    "Wie nutzen Sie Ihr Auto hauptsächlich?",
			Subtitle: "Das hilft uns, Ihre Fahrgewohnheiten zu verstehen",
			Options: []Option{
				{Icon: "🏙️", Text: "Stadtfahrten", Description: "Meist in Berlin, München, Hamburg", Value: "city"},
				{Icon: "🛣️", Text: "Gemischtes Fahren", Description: "Stadt und Autobahn kombiniert", Value: "mixed"},
				{Icon: "🏎️", Text: "Autobahn-Pendler", Description: "Regelmäßige längere Strecken", Value: "highway"},
				{Icon: "🚐", Text: "Familientransport", Description: "Schulweg, Wochenendausflüge", Value: "family"},
			},
		},
		{
			Title:    "Welcher Kraftstoff ist Ihnen wichtig?",
			Subtitle: "Bedenken Sie deutsche Umweltzonen und Förderungen",
			Options: []Option{
				{Icon: "⚡", Text: "Elektrisch", Description: "Null Emissionen, ideal für Umweltzonen", Value: "electric"},
				{Icon: "🔋", Text: "Hybrid", Description: "Das Beste aus beiden Welten", Value: "hybrid"},
				{Icon: "⛽", Text: "Benzin", Description: "Traditionell und flexibel", Value: "petrol"},
				{Icon: "🚛", Text: "Diesel", Description: "Gut für lange Strecken", Value: "diesel"},
			},
		},
		{
			Title:    "Welche Fahrzeuggröße passt zu Ihnen?",
			Subtitle: "Für deutsche Straßen und Autobahn-Fahrten",
			Options: []Option{
				{Icon: "🚗", Text: "Kompakt", Description: "Wendig und sparsam", Value: "compact"},
				{Icon: "🚙", Text: "Mittelklasse", Description: "Balance aus Platz und Wendigkeit", Value: "midsize"},
				{Icon: "🚐", Text: "Groß/SUV", Description: "Maximaler Platz und Komfort", Value: "large"},
				{Icon: "🏎️", Text: "Sportwagen", Description: "Leistung und Stil", Value: "sports"},
			},
		},
		{
			Title:    "Was ist Ihr Budgetrahmen?",
			Subtitle: "Inklusive deutscher Steuern und Versicherung",
			Options: []Option{
				{Icon: "💰", Text: "€15.000 - €25.000", Description: "Praktisch und wirtschaftlich", Value: "budget"},
				{Icon: "💎", Text: "€25.000 - €40.000", Description: "Gute Ausstattung und Qualität", Value: "mid"},
				{Icon: "🌟", Text: "€40.000 - €60.000", Description: "Premium-Features", Value: "premium"},
				{Icon: "👑", Text: "€60.000+", Description: "Luxus und Top-Performance", Value: "luxury"},
			},
		},
		{
			Title:    "Was ist Ihnen am wichtigsten?",
			Subtitle: "Wählen Sie Ihre Top-Priorität",
			Options: []Option{
				{Icon: "🌱", Text: "Umweltfreundlichkeit", Description: "Niedrige Emissionen, Nachhaltigkeit", Value: "eco"},
				{Icon: "💸", Text: "Niedrige Betriebskosten", Description: "Kraftstoffeffizienz, Wartung", Value: "economy"},
				{Icon: "👨‍👩‍👧‍👦", Text: "Familientauglichkeit", Description: "Platz, Sicherheit, Komfort", Value: "practical"},
				{Icon: "🏎️", Text: "Performance & Stil", Description: "Leistung, Design, Prestige", Value: "performance"},
			},
		},
		{
			Title:    "Besondere Wünsche?",
			Subtitle: "Letzte Überlegungen für deutsche Straßen",
			Options: []Option{
				{Icon: "🏎️", Text: "Autobahn-Performance", Description: "Hohe Geschwindigkeiten, Stabilität", Value: "autobahn"},
				{Icon: "⚡", Text: "Modernste Technik", Description: "Neueste Features und Konnektivität", Value: "tech"},
				{Icon: "🛡️", Text: "Maximale Sicherheit", Description: "Top-Sicherheitsbewertungen", Value: "safety"},
				{Icon: "❄️", Text: "Allwetter-Tauglich", Description: "Gut für alle Jahreszeiten", Value: "allweather"},
			},
		},
	},
}

// Questions returns the questionnaire of a market.
func Questions(m Market) ([]Question, error) {
	qs, ok := questionnaires[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarket, m)
	}
	return append([]Question(nil), qs...), nil
}
