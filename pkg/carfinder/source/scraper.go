package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const (
	DefaultLimit   = 20
	DefaultTimeout = 20 * time.Second

	userAgent    = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36"
	maxBodyBytes = 8 << 20
)

// ErrUpstreamStatus is returned when the classifieds site answers with a
// non-2xx status.
var ErrUpstreamStatus = errors.New("unexpected upstream status")

// scraper holds what every classifieds site source shares: where to fetch,
// how fast, and how many listings to keep.
type scraper struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	limit   int
	market  dal.Market
	log     *zap.Logger
	newID   func() string
}

// Option configures a scraping source
type Option func(*scraper)

// WithBaseURL overrides the search page URL.
func WithBaseURL(u string) Option {
	return func(s *scraper) { s.baseURL = u }
}

// WithHTTPClient overrides the HTTP client. The client is copied, never
// modified.
func WithHTTPClient(c *http.Client) Option {
	return func(s *scraper) { s.client = c }
}

// WithTimeout bounds a single upstream request.
func WithTimeout(d time.Duration) Option {
	return func(s *scraper) { s.timeout = d }
}

// WithRateLimit throttles upstream requests to r per second with the given burst.
func WithRateLimit(r float64, burst int) Option {
	return func(s *scraper) {
		if r <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithLimit caps the number of listings returned per search.
func WithLimit(n int) Option {
	return func(s *scraper) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *scraper) { s.log = l }
}

func newScraper(baseURL string, market dal.Market, opts []Option) scraper {
	s := scraper{
		baseURL: baseURL,
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		limit:   DefaultLimit,
		market:  market,
		log:     zap.NewNop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}

	client := *s.client
	if s.timeout > 0 {
		client.Timeout = s.timeout
	}
	s.client = &client
	return s
}

// fetch downloads the page at u on behalf of the named site.
func (s *scraper) fetch(ctx context.Context, site, u string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: wait for rate limiter: %w", site, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", site, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", s.market.AcceptLanguage())

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch %s: %w", site, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s: %w: %d", site, ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", site, err)
	}
	s.log.Debug("fetched result page",
		zap.String("url", u),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return body, nil
}

func (s *scraper) truncate(listings []dal.Listing) []dal.Listing {
	if len(listings) > s.limit {
		return listings[:s.limit]
	}
	return listings
}
