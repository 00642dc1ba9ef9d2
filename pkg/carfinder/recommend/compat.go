package recommend

// compatibility maps an answer value to vehicle tags that partially satisfy it.
var compatibility = map[string][]string{
	"city":        {"compact", "parking", "electric"},
	"mixed":       {"midsize", "hybrid"},
	"highway":     {"large", "diesel", "autobahn"},
	"family":      {"large", "safety", "practical"},
	"budget":      {"compact", "economy"},
	"mid":         {"midsize"},
	"premium":     {"luxury"},
	"luxury":      {"performance"},
	"eco":         {"electric", "hybrid"},
	"economy":     {"compact", "hybrid"},
	"practical":   {"midsize", "large"},
	"performance": {"sports", "luxury"},
}

// isCompatible reports whether answer maps to at least one tag of the vehicle.
func isCompatible(answer string, hasTag func(string) bool) bool {
	for _, tag := range compatibility[answer] {
		if hasTag(tag) {
			return true
		}
	}
	return false
}
