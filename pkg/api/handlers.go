package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dd0wney/cluso-socialgraph/pkg/dataset"
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
	"github.com/dd0wney/cluso-socialgraph/pkg/logging"
	"github.com/dd0wney/cluso-socialgraph/pkg/validation"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

// handleAnalyze analyses a graph posted as {"nodes": [...], "edges": [[a, b], ...], "seed": n}.
// Malformed or invalid bodies get 400; graphs that cannot be built get 422.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req validation.GraphRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := validation.ValidateGraphRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ds := &dataset.Dataset{Nodes: req.Nodes, Edges: req.Edges}
	g, err := s.engine.BuildGraph(ds.Nodes, ds.EdgeList())
	if err != nil {
		status := http.StatusInternalServerError
		if graph.IsConstructionError(err) {
			status = http.StatusUnprocessableEntity
		}
		s.respondError(w, status, err.Error())
		return
	}

	seed := s.defaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}
	s.analyze(w, r, g, seed)
}

func (s *Server) handleFriendshipDataset(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, dataset.Friendship())
}

// handleFriendshipReport analyses the built-in dataset; ?seed= overrides the layout seed.
func (s *Server) handleFriendshipReport(w http.ResponseWriter, r *http.Request) {
	seed := s.defaultSeed
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid seed %q", raw))
			return
		}
		seed = parsed
	}

	g, err := dataset.Friendship().Graph()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "building friendship dataset failed")
		s.logger.Error("friendship dataset", logging.Error(err))
		return
	}
	s.analyze(w, r, g, seed)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request, g *graph.Graph, seed uint64) {
	report, err := s.engine.Analyze(r.Context(), g, seed)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, r.Context().Err()) {
			status = http.StatusServiceUnavailable
		}
		s.respondError(w, status, "analysis failed")
		s.logger.Error("analysis failed", logging.Error(err))
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
