package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/rating"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/store"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/symbols"
)

// maxBatchSize caps one analyze request; larger batches belong in the CLI.
const maxBatchSize = 50

// Analyzer is the part of the rating engine the API needs.
type Analyzer interface {
	AnalyzeBatch(ctx context.Context, syms []string) []rating.BatchItem
}

// Server serves the rating HTTP API. The store may be nil, in which case
// analyze responses are not persisted and the history endpoint returns
// empty.
type Server struct {
	analyzer Analyzer
	ratings  store.RatingStore
	log      *slog.Logger
}

// NewServer creates a Server wired with the given collaborators.
func NewServer(analyzer Analyzer, ratings store.RatingStore, log *slog.Logger) *Server {
	return &Server{analyzer: analyzer, ratings: ratings, log: log}
}

// RegisterRoutes registers all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/ratings", s.handleRatings)
	mux.HandleFunc("GET /api/symbols", s.handleSymbols)
}

// Handler returns an http.Handler with CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	tickers := req.list()
	if len(tickers) == 0 {
		writeError(w, http.StatusBadRequest, "tickers required")
		return
	}
	if len(tickers) > maxBatchSize {
		writeError(w, http.StatusBadRequest, "too many tickers (max "+strconv.Itoa(maxBatchSize)+")")
		return
	}

	items := s.analyzer.AnalyzeBatch(r.Context(), tickers)

	if s.ratings != nil {
		var results []domain.RatingResult
		for _, item := range items {
			if item.Result != nil {
				results = append(results, *item.Result)
			}
		}
		if err := s.ratings.SaveRatings(r.Context(), results, time.Now()); err != nil {
			s.log.Warn("persisting analyze results", "error", err)
		}
	}

	writeJSON(w, AnalyzeResponse{AnalysisResults: items})
}

func (s *Server) handleRatings(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	if s.ratings == nil {
		writeJSON(w, RatingsResponse{Ratings: []store.StoredRating{}})
		return
	}

	ratings, err := s.ratings.RecentRatings(r.Context(), limit)
	if err != nil {
		s.log.Error("reading rating history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read ratings")
		return
	}
	if ratings == nil {
		ratings = []store.StoredRating{}
	}
	writeJSON(w, RatingsResponse{Ratings: ratings})
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, SymbolsResponse{Symbols: symbols.All()})
}
