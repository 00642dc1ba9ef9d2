package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/metrics"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/pipeline"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/recommend"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/source"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/store"
)

const (
	searchFailedMessage = "Failed to fetch listings"
	maxBodyBytes        = 1 << 20
)

type searchRequest struct {
	Market string `json:"market"`
	dal.Criteria
	Sort string      `json:"sort"`
	Page dal.FlexInt `json:"page"`
}

// SearchCars defines a POST handler that retrieves listings from the source
// of the requested market, then sorts and paginates them
func (h *httpServer) SearchCars(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Info("search request decode failed", zap.Error(err))
		writeSearchError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	market, err := dal.ParseMarket(req.Market)
	if err != nil {
		// No source serves an unsupported market; it is answered with no cars.
		h.log.Debug("search for unsupported market", zap.String("market", req.Market))
		market = metrics.MarketUnsupported
	}

	resp, err := h.search(r, market, req.Criteria, pipeline.ParseSortKey(req.Sort), int(req.Page))
	if err != nil {
		h.log.Error("search-cars failed", zap.String("market", string(market)), zap.Error(err))
		writeSearchError(w, http.StatusInternalServerError, searchFailedMessage)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.log)
}

// GetListings defines a GET handler running the offline listings of a market
// through the filter, sort and pagination pipeline
func (h *httpServer) GetListings(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()

	market, err := dal.ParseMarket(vars.Get("market"))
	if err != nil {
		writeSearchError(w, http.StatusBadRequest, err.Error())
		return
	}

	criteria, err := criteriaFromQuery(vars)
	if err != nil {
		h.log.Info("listing query validation failed", zap.Error(err))
		writeSearchError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := validatePositiveInt(vars, "page")
	if err != nil {
		writeSearchError(w, http.StatusBadRequest, err.Error())
		return
	}

	listings, err := source.Mock{Market: market}.Search(r.Context(), criteria)
	if err != nil {
		writeSearchError(w, http.StatusInternalServerError, searchFailedMessage)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(listings, pipeline.ParseSortKey(vars.Get("sort")), page), h.log)
}

type questionsResponse struct {
	Market    dal.Market     `json:"market"`
	Questions []dal.Question `json:"questions"`
}

// GetQuestions defines a GET handler returning the questionnaire of a market
func (h *httpServer) GetQuestions(w http.ResponseWriter, r *http.Request) {
	market, err := dal.ParseMarket(r.URL.Query().Get("market"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	questions, err := dal.Questions(market)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, questionsResponse{Market: market, Questions: questions}, h.log)
}

type recommendRequest struct {
	Market  string            `json:"market"`
	Answers recommend.Answers `json:"answers"`
}

type recommendResponse struct {
	Market          dal.Market                 `json:"market"`
	Answered        int                        `json:"answered"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// Recommend defines a POST handler scoring the market catalog against
// questionnaire answers
func (h *httpServer) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	market, err := dal.ParseMarket(req.Market)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateAnswers(market, req.Answers); err != nil {
		h.log.Info("answer validation failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := recommend.Recommend(market, req.Answers)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveRecommendation(string(market))
	}
	writeJSON(w, http.StatusOK, recommendResponse{Market: market, Answered: len(req.Answers), Recommendations: recs}, h.log)
}

// Health reports that the server is up
func (h *httpServer) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.log)
}

type savedSearchRequest struct {
	Name     string       `json:"name"`
	Market   string       `json:"market"`
	Criteria dal.Criteria `json:"criteria"`
	Sort     string       `json:"sort"`
}

// CreateSavedSearch defines a POST handler storing a search for later reruns
func (h *httpServer) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	var req savedSearchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	market, err := dal.ParseMarket(req.Market)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ss, err := h.saved.Create(store.SavedSearch{
		Name:     name,
		Market:   market,
		Criteria: req.Criteria,
		Sort:     pipeline.ParseSortKey(req.Sort),
	})
	if err != nil {
		h.log.Error("create saved search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save search")
		return
	}
	writeJSON(w, http.StatusCreated, ss, h.log)
}

// ListSavedSearches defines a GET handler listing saved searches, newest first
func (h *httpServer) ListSavedSearches(w http.ResponseWriter, r *http.Request) {
	list, err := h.saved.List()
	if err != nil {
		h.log.Error("list saved searches failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list saved searches")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]store.SavedSearch{"savedSearches": list}, h.log)
}

// GetSavedSearch defines a GET handler returning one saved search
func (h *httpServer) GetSavedSearch(w http.ResponseWriter, r *http.Request) {
	ss, ok := h.lookupSavedSearch(w, mux.Vars(r)["id"])
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ss, h.log)
}

// DeleteSavedSearch defines a DELETE handler removing a saved search
func (h *httpServer) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.saved.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "saved search not found")
		return
	}
	if err != nil {
		h.log.Error("delete saved search failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete saved search")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSavedSearchResults defines a GET handler rerunning a saved search
func (h *httpServer) GetSavedSearchResults(w http.ResponseWriter, r *http.Request) {
	ss, ok := h.lookupSavedSearch(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	page, err := validatePositiveInt(r.URL.Query(), "page")
	if err != nil {
		writeSearchError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.search(r, ss.Market, ss.Criteria, ss.Sort, page)
	if err != nil {
		h.log.Error("saved search failed", zap.String("id", ss.ID), zap.Error(err))
		writeSearchError(w, http.StatusInternalServerError, searchFailedMessage)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.log)
}

func (h *httpServer) lookupSavedSearch(w http.ResponseWriter, id string) (store.SavedSearch, bool) {
	ss, err := h.saved.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "saved search not found")
		return store.SavedSearch{}, false
	}
	if err != nil {
		h.log.Error("get saved search failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load saved search")
		return store.SavedSearch{}, false
	}
	return ss, true
}

func (h *httpServer) search(r *http.Request, m dal.Market, c dal.Criteria, sort pipeline.SortKey, page int) (dal.SearchResponse, error) {
	start := time.Now()
	listings, err := h.searcher.Search(r.Context(), m, c)
	if h.metrics != nil {
		h.metrics.ObserveSearch(string(m), time.Since(start), err)
	}
	if err != nil {
		return dal.SearchResponse{}, err
	}

	resp := pageOf(listings, sort, page)
	resp.DeepLinks = source.DeepLinks(c)
	return resp, nil
}

func pageOf(listings []dal.Listing, sort pipeline.SortKey, page int) dal.SearchResponse {
	if page < 1 {
		page = 1
	}
	sorted := pipeline.Sort(listings, sort)
	return dal.SearchResponse{
		Cars:       pipeline.Paginate(sorted, page, pipeline.DefaultPageSize),
		Total:      len(sorted),
		Page:       page,
		PerPage:    pipeline.DefaultPageSize,
		TotalPages: pipeline.PageCount(len(sorted), pipeline.DefaultPageSize),
	}
}

func criteriaFromQuery(vars url.Values) (dal.Criteria, error) {
	priceMin, err := validatePositiveInt(vars, "priceMin")
	if err != nil {
		return dal.Criteria{}, err
	}
	priceMax, err := validatePositiveInt(vars, "priceMax")
	if err != nil {
		return dal.Criteria{}, err
	}
	yearMin, err := validatePositiveInt(vars, "yearMin")
	if err != nil {
		return dal.Criteria{}, err
	}
	return dal.Criteria{
		Make:         vars.Get("make"),
		Model:        vars.Get("model"),
		PriceMin:     dal.FlexInt(priceMin),
		PriceMax:     dal.FlexInt(priceMax),
		YearMin:      dal.FlexInt(yearMin),
		Fuel:         vars.Get("fuel"),
		Transmission: vars.Get("transmission"),
		Body:         vars.Get("body"),
	}, nil
}

func validatePositiveInt(vars url.Values, key string) (int, error) {
	raw := strings.TrimSpace(vars.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %q", key, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be a positive number: %d", key, n)
	}
	return n, nil
}

func validateAnswers(m dal.Market, answers recommend.Answers) error {
	questions, err := dal.Questions(m)
	if err != nil {
		return err
	}
	for idx, value := range answers {
		if idx < 0 || idx >= len(questions) {
			return fmt.Errorf("question %d does not exist", idx)
		}
		if !questions[idx].HasOption(value) {
			return fmt.Errorf("%q is not an option of question %d", value, idx)
		}
	}
	return nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg}, zap.NewNop())
}

func writeSearchError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dal.SearchResponse{Cars: []dal.Listing{}, Page: 1, Error: msg}, zap.NewNop())
}
