package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const mobileDePage = `<html><body>
<div data-testid="result-list">
	<article>
		<a href="/inserat/123">BMW i4 eDrive40 Gran Coupé</a>
		<span>EZ 03/2022 • 21.000 km • 250 kW</span>
		<span>47.900 €</span>
		<img data-src="https://img.example/i4.jpg">
	</article>
	<article>
		<a href="/inserat/123">BMW i4 eDrive40 Gran Coupé</a>
		<a href="https://suchen.mobile.de/inserat/456">  Volkswagen   Golf </a>
		<span>€ 21.900</span>
	</article>
	<div><a href="/fahrzeuge/details">Not a listing</a></div>
</div>
<a href="/inserat/999">Outside the result list</a>
</body></html>`

func TestBuildMobileDeURL(t *testing.T) {
	tests := []struct {
		name     string
		criteria dal.Criteria
		expected url.Values
	}{
		{name: "Empty", criteria: dal.Criteria{}, expected: url.Values{"isSearchRequest": {"true"}}},
		{
			name:     "MakeModelPrice",
			criteria: dal.Criteria{Make: "Audi", Model: "A4 Avant", PriceMax: 25000},
			expected: url.Values{
				"makeModelVariant1.makeId":           {"Audi"},
				"makeModelVariant1.modelDescription": {"A4 Avant"},
				"maxPrice":                           {"25000"},
				"isSearchRequest":                    {"true"},
			},
		},
		{
			name:     "Ranges",
			criteria: dal.Criteria{PriceMin: 5000, YearMin: 2015, Fuel: "diesel"},
			expected: url.Values{
				"minPrice":                 {"5000"},
				"minFirstRegistrationDate": {"2015-01-01"},
				"isSearchRequest":          {"true"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := BuildMobileDeURL(DefaultMobileDeURL, tc.criteria)
			require.NoError(t, err)

			u, err := url.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, "suchen.mobile.de", u.Host)
			assert.Equal(t, "/fahrzeuge/search.html", u.Path)
			assert.Equal(t, tc.expected, u.Query())
		})
	}
}

func TestParseMobileDe(t *testing.T) {
	listings, err := ParseMobileDe([]byte(mobileDePage))
	require.NoError(t, err)
	require.Len(t, listings, 2)

	i4 := listings[0]
	assert.Equal(t, "mobile.de:https://suchen.mobile.de/inserat/123", i4.ID)
	assert.Equal(t, "https://suchen.mobile.de/inserat/123", i4.URL)
	assert.Equal(t, "BMW", i4.Make)
	assert.Equal(t, "i4 eDrive40", i4.Model)
	assert.Equal(t, 47900, i4.Price)
	assert.Equal(t, 21000, i4.Mileage)
	assert.Equal(t, 2022, i4.Year)
	assert.Equal(t, []string{"https://img.example/i4.jpg"}, i4.Images)
	assert.Equal(t, "mobile.de", i4.Source)
	require.NotNil(t, i4.DealScore)
	assert.InDelta(t, 0.05, *i4.DealScore, 1e-9)

	golf := listings[1]
	assert.Equal(t, "https://suchen.mobile.de/inserat/456", golf.URL)
	assert.Equal(t, "Volkswagen", golf.Make)
	assert.Equal(t, "Golf", golf.Model)
	assert.Equal(t, 21900, golf.Price)
	assert.Zero(t, golf.Mileage)
	require.NotNil(t, golf.DealScore)
	assert.InDelta(t, 0.562, *golf.DealScore, 1e-9)
}

func TestParseMobileDe_NoResultList(t *testing.T) {
	listings, err := ParseMobileDe([]byte(`<html><body><a href="/inserat/1">x</a></body></html>`))
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
}

func TestMobileDe_Search(t *testing.T) {
	var gotQuery url.Values
	var gotHeader http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Clone()
		_, _ = w.Write([]byte(mobileDePage))
	}))
	defer ts.Close()

	m := NewMobileDe(WithBaseURL(ts.URL+"/fahrzeuge/search.html"), WithRateLimit(0, 0))
	listings, err := m.Search(context.Background(), dal.Criteria{Make: "BMW", PriceMax: 50000})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "BMW", listings[0].Make)

	assert.Equal(t, "BMW", gotQuery.Get("makeModelVariant1.makeId"))
	assert.Equal(t, "50000", gotQuery.Get("maxPrice"))
	assert.Equal(t, "de-DE,de;q=0.9,en;q=0.8", gotHeader.Get("Accept-Language"))

	listings, err = NewMobileDe(WithBaseURL(ts.URL), WithRateLimit(0, 0), WithLimit(1)).Search(context.Background(), dal.Criteria{})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestMobileDe_SearchUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := NewMobileDe(WithBaseURL(ts.URL), WithRateLimit(0, 0)).Search(context.Background(), dal.Criteria{})
	assert.ErrorIs(t, err, ErrUpstreamStatus)
}

func TestMulti_MarktplaatsAndMobileDe(t *testing.T) {
	mp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resultPage))
	}))
	defer mp.Close()
	md := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(mobileDePage))
	}))
	defer md.Close()

	multi := Multi{
		NewMarktplaats(WithBaseURL(mp.URL), WithRateLimit(0, 0)),
		NewMobileDe(WithBaseURL(md.URL), WithRateLimit(0, 0)),
	}
	listings, err := multi.Search(context.Background(), dal.Criteria{})
	require.NoError(t, err)
	require.Len(t, listings, 5)
	assert.Equal(t, "Marktplaats", listings[0].Source)
	assert.Equal(t, "mobile.de", listings[4].Source)
}
