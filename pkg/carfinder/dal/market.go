package dal

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Market identifies the country a questionnaire, catalog and listing search
// is tailored to.
type Market string

const (
	MarketNL Market = "nl"
	MarketDE Market = "de"

	// DefaultMarket is used when a request does not name a market.
	DefaultMarket = MarketNL
)

var ErrUnknownMarket = errors.New("unknown market")

var locales = map[Market]language.Tag{
	MarketNL: language.MustParse("nl-NL"),
	MarketDE: language.MustParse("de-DE"),
}

// Markets returns the supported markets.
func Markets() []Market {
	return []Market{MarketNL, MarketDE}
}

// ParseMarket resolves a market identifier case-insensitively. An empty
// identifier yields DefaultMarket.
func ParseMarket(s string) (Market, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultMarket, nil
	}
	m := Market(s)
	if _, ok := locales[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMarket, s)
	}
	return m, nil
}

// Locale returns the language tag of the market.
func (m Market) Locale() language.Tag {
	if tag, ok := locales[m]; ok {
		return tag
	}
	return language.English
}

// AcceptLanguage builds an Accept-Language header value preferring the
// market locale, then its base language, then English.
func (m Market) AcceptLanguage() string {
	tag := m.Locale()
	base, _ := tag.Base()
	if base.String() == "en" {
		return "en"
	}
	return fmt.Sprintf("%s,%s;q=0.9,en;q=0.8", tag, base)
}
