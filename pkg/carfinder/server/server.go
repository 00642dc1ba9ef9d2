package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/metrics"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/store"
)

// Searcher retrieves listings for a market
type Searcher interface {
	Search(ctx context.Context, m dal.Market, c dal.Criteria) ([]dal.Listing, error)
}

// SavedSearches persists saved searches
type SavedSearches interface {
	Create(ss store.SavedSearch) (store.SavedSearch, error)
	Get(id string) (store.SavedSearch, error)
	List() ([]store.SavedSearch, error)
	Delete(id string) error
}

// Deps are the collaborators of the HTTP server
type Deps struct {
	Logger   *zap.Logger
	Searcher Searcher
	Saved    SavedSearches
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// NewHTTPServer returns a new HTTP server
func NewHTTPServer(addr string, deps Deps) *http.Server {
	server := newHTTPServer(deps)
	return &http.Server{
		Addr:              addr,
		Handler:           server.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

type httpServer struct {
	log      *zap.Logger
	searcher Searcher
	saved    SavedSearches
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func newHTTPServer(deps Deps) *httpServer {
	h := &httpServer{
		log:      deps.Logger,
		searcher: deps.Searcher,
		saved:    deps.Saved,
		metrics:  deps.Metrics,
		gatherer: deps.Gatherer,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.gatherer == nil {
		h.gatherer = prometheus.DefaultGatherer
	}
	return h
}

func (h *httpServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search-cars", h.SearchCars).Methods(http.MethodPost)
	api.HandleFunc("/listings", h.GetListings).Methods(http.MethodGet)
	api.HandleFunc("/questions", h.GetQuestions).Methods(http.MethodGet)
	api.HandleFunc("/recommendations", h.Recommend).Methods(http.MethodPost)

	if h.saved != nil {
		api.HandleFunc("/saved-searches", h.CreateSavedSearch).Methods(http.MethodPost)
		api.HandleFunc("/saved-searches", h.ListSavedSearches).Methods(http.MethodGet)
		api.HandleFunc("/saved-searches/{id}", h.GetSavedSearch).Methods(http.MethodGet)
		api.HandleFunc("/saved-searches/{id}", h.DeleteSavedSearch).Methods(http.MethodDelete)
		api.HandleFunc("/saved-searches/{id}/results", h.GetSavedSearchResults).Methods(http.MethodGet)
	}
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *httpServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
