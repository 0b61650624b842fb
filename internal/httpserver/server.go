// internal/httpserver/server.go
//
// HTTP server wiring for the solver's report API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Simulation reports: GET /runs, GET /runs/{id}, POST /runs.
//
// Notes:
//   - There are no endpoints for playing games; only simulations run here.
//   - POST /runs is bounded by MaxGamesPerRequest and the request timeout.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/simulate"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/strategy"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Options configures a Server.
type Options struct {
	Timeout            time.Duration
	ClientOrigin       string
	MaxGamesPerRequest int
	MaxGuesses         int
	Workers            int
}

// Server bundles router, run store, dictionary and metrics.
type Server struct {
	r       *chi.Mux
	store   store.Store
	dict    *words.Dictionary
	metrics *metrics.Recorder
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, rec *metrics.Recorder, opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxGamesPerRequest <= 0 {
		opts.MaxGamesPerRequest = 5000
	}
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, metrics: rec, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)               // one log line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(cors(opts.ClientOrigin))     // credentials-free single-origin CORS

	// --- diagnostics ---
	s.r.With(jsonContentType).Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/metrics","GET /runs","GET /runs/{id}","POST /runs"]}`))
	})
	s.r.With(jsonContentType).Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "words": s.dict.Len()})
	})
	s.r.Method(http.MethodGet, "/metrics", rec.Handler())

	// --- simulation reports ---
	s.r.Route("/runs", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/", s.handleListRuns)
		r.Post("/", s.handleCreateRun)
		r.Get("/{id}", s.handleGetRun)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a JSON Content-Type header on responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single origin to read reports.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs method, path, status and latency through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

// ------------------------------- RUNS --------------------------------------

// createRunReq is the payload for POST /runs.
type createRunReq struct {
	Games    int    `json:"games"`
	Strategy string `json:"strategy"`
	Seed     uint64 `json:"seed"`
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list runs")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	_ = json.NewEncoder(w).Encode(runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get run")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	_ = json.NewEncoder(w).Encode(run)
}

// handleCreateRun runs a bounded simulation synchronously, stores the report
// and returns it.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Games <= 0 || req.Games > s.opts.MaxGamesPerRequest {
		writeError(w, http.StatusBadRequest, "games_out_of_range")
		return
	}

	rep, err := simulate.Run(r.Context(), s.dict, simulate.Options{
		Games:      req.Games,
		Workers:    s.opts.Workers,
		Strategy:   req.Strategy,
		MaxGuesses: s.opts.MaxGuesses,
		Seed:       req.Seed,
	}, s.metrics)
	switch {
	case errors.Is(err, strategy.ErrUnknownStrategy):
		writeError(w, http.StatusBadRequest, "unknown_strategy")
		return
	case err != nil:
		log.Warn().Err(err).Msg("simulation failed")
		writeError(w, http.StatusServiceUnavailable, "simulation_failed")
		return
	}

	if err := s.store.SaveRun(r.Context(), rep); err != nil {
		log.Error().Err(err).Str("run", rep.ID).Msg("save run")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rep)
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
