package source

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const (
	DefaultMobileDeURL = "https://suchen.mobile.de/fahrzeuge/search.html"

	mobileDeOrigin   = "https://suchen.mobile.de"
	mobileDeName     = "mobile.de"
	resultListTestID = "result-list"
	listingPathPart  = "/inserat/"
)

var (
	priceRe   = regexp.MustCompile(`(?:€|EUR)\s*(\d[\d.]*)|(\d[\d.]*)(?:,\d+)?\s*(?:€|EUR)`)
	mileageRe = regexp.MustCompile(`(?i)(\d[\d.]*)\s*km\b`)
	yearRe    = regexp.MustCompile(`EZ\s*(?:\d{1,2}/)?((?:19|20)\d{2})`)
)

// MobileDe scrapes the German classifieds site mobile.de. Listings are read
// from the result cards of the search page.
type MobileDe struct {
	scraper
}

// NewMobileDe returns a mobile.de source for the German market.
func NewMobileDe(opts ...Option) *MobileDe {
	return &MobileDe{scraper: newScraper(DefaultMobileDeURL, dal.MarketDE, opts)}
}

// Name implements Source.
func (m *MobileDe) Name() string { return mobileDeName }

// Search implements Source. Pages without a result list yield an empty
// result, not an error.
func (m *MobileDe) Search(ctx context.Context, c dal.Criteria) ([]dal.Listing, error) {
	u, err := BuildMobileDeURL(m.baseURL, c)
	if err != nil {
		return nil, err
	}

	body, err := m.fetch(ctx, mobileDeName, u)
	if err != nil {
		return nil, err
	}

	listings, err := ParseMobileDe(body)
	if err != nil {
		return nil, err
	}
	listings = m.truncate(listings)
	m.log.Debug("mobile.de search", zap.String("url", u), zap.Int("listings", len(listings)))
	return listings, nil
}

// BuildMobileDeURL encodes the criteria into a mobile.de search URL. The make
// is passed as free text; mobile.de make ids are not mapped.
func BuildMobileDeURL(base string, c dal.Criteria) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("mobile.de: parse base url: %w", err)
	}
	q := u.Query()

	if m := strings.TrimSpace(c.Make); m != "" {
		q.Set("makeModelVariant1.makeId", m)
	}
	if m := strings.TrimSpace(c.Model); m != "" {
		q.Set("makeModelVariant1.modelDescription", m)
	}
	if c.PriceMin > 0 {
		q.Set("minPrice", strconv.Itoa(int(c.PriceMin)))
	}
	if c.PriceMax > 0 {
		q.Set("maxPrice", strconv.Itoa(int(c.PriceMax)))
	}
	if c.YearMin > 0 {
		q.Set("minFirstRegistrationDate", fmt.Sprintf("%d-01-01", int(c.YearMin)))
	}
	q.Set("isSearchRequest", "true")

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseMobileDe reads the listings of a mobile.de result page. Every link to
// a listing inside the result list is one listing; price, mileage, first
// registration and thumbnail come from the card enclosing the link.
func ParseMobileDe(page []byte) ([]dal.Listing, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("mobile.de: parse page: %w", err)
	}

	listings := []dal.Listing{}
	list := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "data-testid") == resultListTestID
	})
	if list == nil {
		return listings, nil
	}

	seen := make(map[string]bool)
	walk(list, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.A {
			return
		}
		href := attr(n, "href")
		if !strings.Contains(href, listingPathPart) || seen[href] {
			return
		}
		seen[href] = true
		listings = append(listings, mobileDeListing(n, href))
	})
	return listings, nil
}

func mobileDeListing(a *html.Node, href string) dal.Listing {
	link := href
	if !strings.HasPrefix(href, "http") {
		link = mobileDeOrigin + href
	}

	title := collapseSpace(textOf(a))
	if title == "" {
		title = "Listing"
	}
	brand, model := splitTitle(title)

	l := dal.Listing{
		ID:     mobileDeName + ":" + link,
		Make:   brand,
		Model:  model,
		Source: mobileDeName,
		URL:    link,
		Images: []string{},
	}

	card := enclosingCard(a)
	if card == nil {
		return l.WithDealScore()
	}
	walk(card, func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			text := n.Data
			if l.Price == 0 {
				l.Price = firstNumber(priceRe, text)
			}
			if l.Mileage == 0 {
				l.Mileage = firstNumber(mileageRe, text)
			}
			if l.Year == 0 {
				l.Year = firstNumber(yearRe, text)
			}
		case n.Type == html.ElementNode && n.DataAtom == atom.Img && len(l.Images) == 0:
			src := attr(n, "src")
			if src == "" {
				src = attr(n, "data-src")
			}
			if src != "" {
				l.Images = []string{src}
			}
		}
	})
	return l.WithDealScore()
}

// enclosingCard returns the nearest article or div around n.
func enclosingCard(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && (p.DataAtom == atom.Article || p.DataAtom == atom.Div) {
			return p
		}
	}
	return nil
}

// firstNumber returns the first non-empty group of re matched in text as an
// integer, ignoring thousands separators.
func firstNumber(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	for _, g := range m[min(len(m), 1):] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(g, ".", ""))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
	})
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
