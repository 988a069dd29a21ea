package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"catchlog/internal/models"
	"catchlog/internal/providers"
	"catchlog/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	cacheKeyCatches = "catches"
	cacheKeyStats   = "stats"
)

// apiResponse is the wire envelope: success plus either the payload or
// per-field error messages.
type apiResponse struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type ApiController struct {
	logger  providers.Logger
	service services.CatchServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.CatchServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(apiResponse{Success: true, Data: result})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) CreateCatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.CatchInput
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Errors:  map[string]string{"body": "request body must be valid JSON"},
		})
		return
	}

	if errs := payload.Validate(); len(errs) > 0 {
		ac.logger.Debugf(providers.TypePost, "Rejected catch payload: %d invalid fields", len(errs))
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Errors: errs})
		return
	}

	rec, err := ac.service.AddCatch(&payload)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Failed to add catch: %s", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false})
		return
	}

	// The list and summary caches are stale the moment a record lands.
	ac.cache.Del(cacheKeyCatches)
	ac.cache.Del(cacheKeyStats)

	ac.logger.Infof(providers.TypePost, "Logged catch %s (%s, %g lbs)", rec.Id, rec.Species, rec.Weight)
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: rec})
}

func (ac *ApiController) GetCatches(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyCatches, func() (any, error) {
		return ac.service.GetCatches(), nil
	})
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyStats, func() (any, error) {
		return ac.service.GetSummary(), nil
	})
}
