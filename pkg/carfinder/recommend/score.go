// Package recommend scores a vehicle catalog against questionnaire answers.
package recommend

import (
	"math"
	"sort"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const (
	// MaxRecommendations is the number of vehicles Score returns at most.
	MaxRecommendations = 4

	exactPoints      = 20
	compatiblePoints = 10
)

// Answers maps a question index to the selected option value.
type Answers map[int]string

// Values returns the answer values in question order.
func (a Answers) Values() []string {
	keys := make([]int, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, a[k])
	}
	return values
}

// Recommendation is a catalog vehicle with its match percentage
type Recommendation struct {
	dal.Vehicle
	Match int `json:"match"`
}

// Match computes the match percentage of a single vehicle. It is 0 when no
// answers were given.
func Match(answers Answers, v dal.Vehicle) int {
	var score, maxScore int
	for _, answer := range answers.Values() {
		maxScore += exactPoints
		switch {
		case v.HasTag(answer):
			score += exactPoints
		case isCompatible(answer, v.HasTag):
			score += compatiblePoints
		}
	}
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(maxScore)))
}

// Score rates every vehicle of the catalog and returns the best matches,
// highest first. Vehicles with equal matches keep their catalog order.
func Score(answers Answers, catalog []dal.Vehicle) []Recommendation {
	scored := make([]Recommendation, 0, len(catalog))
	for _, v := range catalog {
		scored = append(scored, Recommendation{Vehicle: v, Match: Match(answers, v)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Match > scored[j].Match
	})
	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}
	return scored
}

// Recommend scores the catalog of market m.
func Recommend(m dal.Market, answers Answers) ([]Recommendation, error) {
	catalog, err := dal.Catalog(m)
	if err != nil {
		return nil, err
	}
	return Score(answers, catalog), nil
}
