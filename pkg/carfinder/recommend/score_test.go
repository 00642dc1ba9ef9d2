package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

func names(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestMatch(t *testing.T) {
	id3 := dal.Vehicle{Name: "Volkswagen ID.3", Tags: []string{"electric", "compact", "eco", "tech"}}

	tests := []struct {
		name     string
		answers  Answers
		expected int
	}{
		{name: "NoAnswers", answers: Answers{}, expected: 0},
		{name: "NilAnswers", answers: nil, expected: 0},
		{name: "AllTagsMatch", answers: Answers{0: "compact", 1: "electric"}, expected: 100},
		{name: "CompatibleAndExact", answers: Answers{0: "city", 1: "electric"}, expected: 75},
		{name: "NothingMatches", answers: Answers{0: "diesel", 1: "sports"}, expected: 0},
		{name: "UnknownAnswer", answers: Answers{0: "spaceship"}, expected: 0},
		{name: "RoundsToNearest", answers: Answers{0: "electric", 1: "city", 2: "diesel"}, expected: 50},
		{name: "RoundsUp", answers: Answers{0: "city", 1: "diesel", 2: "sports"}, expected: 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Match(tc.answers, id3))
		})
	}
}

func TestScore_TopFourSorted(t *testing.T) {
	catalog, err := dal.Catalog(dal.MarketNL)
	require.NoError(t, err)

	recs := Score(Answers{0: "city", 1: "electric"}, catalog)
	require.Len(t, recs, MaxRecommendations)
	assert.Equal(t, []string{"Volkswagen ID.3", "Nissan Leaf", "Tesla Model 3", "Peugeot 208"}, names(recs))
	assert.Equal(t, []int{75, 75, 75, 25}, []int{recs[0].Match, recs[1].Match, recs[2].Match, recs[3].Match})
}

func TestScore_NonIncreasing(t *testing.T) {
	answerSets := []Answers{
		{},
		{0: "family"},
		{0: "highway", 1: "diesel", 2: "large", 3: "luxury", 4: "performance", 5: "autobahn"},
		{0: "mixed", 1: "hybrid", 2: "midsize", 3: "mid", 4: "eco", 5: "tech"},
	}
	for _, m := range dal.Markets() {
		catalog, err := dal.Catalog(m)
		require.NoError(t, err)
		for _, answers := range answerSets {
			recs := Score(answers, catalog)
			assert.LessOrEqual(t, len(recs), MaxRecommendations)
			for i := 1; i < len(recs); i++ {
				assert.GreaterOrEqual(t, recs[i-1].Match, recs[i].Match, "market %s answers %v", m, answers)
			}
		}
	}
}

func TestScore_NoAnswersKeepsCatalogOrder(t *testing.T) {
	catalog, err := dal.Catalog(dal.MarketDE)
	require.NoError(t, err)

	recs := Score(Answers{}, catalog)
	require.Len(t, recs, MaxRecommendations)
	for i, r := range recs {
		assert.Equal(t, 0, r.Match)
		assert.Equal(t, catalog[i].Name, r.Name)
	}
}

func TestScore_SmallCatalog(t *testing.T) {
	catalog := []dal.Vehicle{
		{Name: "A", Tags: []string{"petrol"}},
		{Name: "B", Tags: []string{"electric"}},
	}
	recs := Score(Answers{0: "electric"}, catalog)
	assert.Equal(t, []string{"B", "A"}, names(recs))

	assert.Empty(t, Score(Answers{0: "electric"}, nil))
}

func TestAnswers_ValuesInQuestionOrder(t *testing.T) {
	a := Answers{5: "tech", 0: "city", 2: "compact"}
	assert.Equal(t, []string{"city", "compact", "tech"}, a.Values())

	a[2] = "large"
	assert.Equal(t, []string{"city", "large", "tech"}, a.Values())
}

func TestRecommend(t *testing.T) {
	recs, err := Recommend(dal.MarketDE, Answers{0: "highway", 1: "electric", 2: "sports"})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Porsche Taycan", recs[0].Name)

	_, err = Recommend(dal.Market("fr"), Answers{})
	assert.ErrorIs(t, err, dal.ErrUnknownMarket)
}
