package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/simulate"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

type ServerSuite struct {
	suite.Suite
	store  store.Store
	server *httpserver.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	dict, err := words.Default(words.DefaultLength)
	s.Require().NoError(err)
	s.store = store.NewMemoryStore()
	s.server = httpserver.New(s.store, dict, metrics.New(), httpserver.Options{
		MaxGamesPerRequest: 100,
		Workers:            2,
	})
}

func (s *ServerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	s.server.Router().ServeHTTP(w, req)
	return w
}

func (s *ServerSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "application/json")
	s.JSONEq(`{"ok":true,"words":504}`, w.Body.String())
}

func (s *ServerSuite) TestUnknownRouteIsJSON404() {
	w := s.do(http.MethodGet, "/game/new", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"not_found"}`, w.Body.String())
}

func (s *ServerSuite) TestCreateRunStoresReport() {
	w := s.do(http.MethodPost, "/runs", map[string]any{"games": 20, "strategy": "narrowing", "seed": 5})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var rep simulate.Report
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rep))
	s.Equal(20, rep.Games)
	s.Equal(uint64(5), rep.Seed)
	s.Equal(rep.Games, rep.Wins+rep.Losses)

	stored, err := s.store.GetRun(context.Background(), rep.ID)
	s.Require().NoError(err)
	s.Equal(rep.Wins, stored.Wins)

	w = s.do(http.MethodGet, "/runs/"+rep.ID, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "wordle_simulation_runs_total")
}

func (s *ServerSuite) TestCreateRunValidation() {
	w := s.do(http.MethodPost, "/runs", map[string]any{"games": 0})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/runs", map[string]any{"games": 1000})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/runs", map[string]any{"games": 5, "strategy": "entropy"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"unknown_strategy"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/runs", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.server.Router().ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestListRuns() {
	base := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.store.SaveRun(context.Background(), simulate.Report{
			ID: id, Games: 1, StartedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	w := s.do(http.MethodGet, "/runs?limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var runs []simulate.Report
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &runs))
	s.Require().Len(runs, 2)
	s.Equal("c", runs[0].ID)
	s.Equal("b", runs[1].ID)

	w = s.do(http.MethodGet, "/runs?limit=abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerSuite) TestGetMissingRun() {
	w := s.do(http.MethodGet, "/runs/missing", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerSuite) TestCORSPreflight() {
	w := s.do(http.MethodOptions, "/runs", nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
