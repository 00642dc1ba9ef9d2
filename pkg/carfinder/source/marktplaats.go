package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const (
	DefaultMarktplaatsURL = "https://www.marktplaats.nl/l/auto-s/"

	imageObjectMarker = `"imageObject":[`
)

// Marktplaats scrapes the Dutch classifieds site marktplaats.nl. The result
// page embeds schema.org ImageObject entries, which are the only structured
// data extracted.
type Marktplaats struct {
	scraper
}

// NewMarktplaats returns a Marktplaats source for the Dutch market.
func NewMarktplaats(opts ...Option) *Marktplaats {
	return &Marktplaats{scraper: newScraper(DefaultMarktplaatsURL, dal.MarketNL, opts)}
}

// Name implements Source.
func (m *Marktplaats) Name() string { return "Marktplaats" }

// Search implements Source. Pages without extractable data yield an empty
// result, not an error.
func (m *Marktplaats) Search(ctx context.Context, c dal.Criteria) ([]dal.Listing, error) {
	u, err := BuildMarktplaatsURL(m.baseURL, c)
	if err != nil {
		return nil, err
	}

	body, err := m.fetch(ctx, "marktplaats", u)
	if err != nil {
		return nil, err
	}

	listings := m.truncate(ToListings(ExtractImageObjects(string(body)), m.Name(), m.newID))
	m.log.Debug("marktplaats search", zap.String("url", u), zap.Int("listings", len(listings)))
	return listings, nil
}

// BuildMarktplaatsURL encodes the criteria the site understands into a
// search page URL. Fuel, transmission and body have no stable query
// parameter and are left out.
func BuildMarktplaatsURL(base string, c dal.Criteria) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("marktplaats: parse base url: %w", err)
	}
	q := u.Query()

	query := strings.TrimSpace(strings.TrimSpace(c.Make) + " " + strings.TrimSpace(c.Model))
	if query != "" {
		q.Set("query", query)
	}
	if c.PriceMin > 0 {
		q.Set("priceFrom", strconv.Itoa(int(c.PriceMin)))
	}
	if c.PriceMax > 0 {
		q.Set("priceTo", strconv.Itoa(int(c.PriceMax)))
	}
	if c.YearMin > 0 {
		q.Set("constructionYearFrom", strconv.Itoa(int(c.YearMin)))
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ImageObject is the subset of a schema.org ImageObject the page embeds
type ImageObject struct {
	Name       string `json:"name"`
	ContentURL string `json:"contentUrl"`
}

var whitespace = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// ExtractImageObjects returns the first embedded "imageObject" array of an
// HTML page. Anything it cannot find or parse yields nil.
func ExtractImageObjects(html string) []ImageObject {
	start := strings.Index(html, imageObjectMarker)
	if start == -1 {
		return nil
	}
	after := html[start+len(imageObjectMarker)-1:]
	end := strings.Index(after, "]")
	if end == -1 {
		return nil
	}

	var objs []ImageObject
	if err := json.Unmarshal([]byte(whitespace.Replace(after[:end+1])), &objs); err != nil {
		return nil
	}
	return objs
}

// ToListings converts image objects into listings. The make is the first
// word of the image name and the model the next two.
func ToListings(objs []ImageObject, source string, newID func() string) []dal.Listing {
	listings := make([]dal.Listing, 0, len(objs))
	for _, obj := range objs {
		brand, model := splitTitle(obj.Name)
		l := dal.Listing{
			ID:     newID(),
			Make:   brand,
			Model:  model,
			Source: source,
			Images: []string{},
		}
		if obj.ContentURL != "" {
			l.Images = []string{obj.ContentURL}
		}
		listings = append(listings, l.WithDealScore())
	}
	return listings
}

// splitTitle reads a listing title as a make followed by up to two model
// words. An empty title has the make "Unknown".
func splitTitle(title string) (brand, model string) {
	words := strings.Fields(title)
	if len(words) == 0 {
		return "Unknown", ""
	}
	if len(words) > 1 {
		model = strings.Join(words[1:min(len(words), 3)], " ")
	}
	return words[0], model
}
