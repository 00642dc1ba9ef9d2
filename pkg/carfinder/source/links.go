package source

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const marktplaatsQueryURL = "https://www.marktplaats.nl/q/auto's/"

// DeepLinks returns search page links on the supported classifieds sites,
// keyed by site name, so users can continue browsing there.
func DeepLinks(c dal.Criteria) map[string]string {
	return map[string]string{
		"marktplaats": marktplaatsLink(c),
		"mobile.de":   mobileDeLink(c),
	}
}

func marktplaatsLink(c dal.Criteria) string {
	var parts []string
	for _, p := range []string{c.Make, c.Model} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, url.PathEscape(p))
		}
	}
	link := marktplaatsQueryURL + strings.Join(parts, "+") + "/"
	if c.PriceMax > 0 {
		link += "?prijsTot=" + strconv.Itoa(int(c.PriceMax))
	}
	return link
}

func mobileDeLink(c dal.Criteria) string {
	link, err := BuildMobileDeURL(DefaultMobileDeURL, c)
	if err != nil {
		return DefaultMobileDeURL
	}
	return link
}
