package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Shaloh69/UCRoadWays-sub000/internal/logger"
	"github.com/Shaloh69/UCRoadWays-sub000/internal/metrics"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/engine"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/snapshot"
	"github.com/gorilla/mux"
)

// Server exposes the analysis engine over a JSON API for one project
// snapshot.
type Server struct {
	projectPath string
	port        int
	eng         *engine.Engine
	log         *slog.Logger

	mu     sync.RWMutex
	system *model.RoadSystem
}

// New creates a server for the given project directory.
func New(projectPath string, port int, eng *engine.Engine) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		eng:         eng,
		log:         logger.L(),
	}
}

// Load reads the project snapshot and drops every cached result. The swap
// waits for in-flight API requests, so none of them can store a result
// computed from the previous snapshot.
func (s *Server) Load() error {
	sys, err := snapshot.LoadProject(s.projectPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.system = sys
	s.eng.InvalidateAll()
	s.mu.Unlock()
	s.log.Info("snapshot_loaded", "project", s.projectPath, "system", sys.ID,
		"buildings", len(sys.Buildings), "roads", len(sys.Roads))
	return nil
}

// Start loads the snapshot and launches the HTTP server.
func (s *Server) Start() error {
	if err := s.Load(); err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server_start", "addr", "http://localhost"+addr, "project", s.projectPath)
	return http.ListenAndServe(addr, s.Router())
}

// Router returns the API routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	// Registered ahead of the subrouter: reload takes the write lock itself.
	r.HandleFunc("/api/reload", s.handleReload).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.holdSnapshot)
	api.HandleFunc("/buildings", s.handleBuildings).Methods("GET")
	api.HandleFunc("/buildings/{id}/connectivity", s.handleConnectivity).Methods("GET")
	api.HandleFunc("/buildings/{id}/accessibility", s.handleAccessibility).Methods("GET")
	api.HandleFunc("/buildings/{id}/validation", s.handleValidation).Methods("GET")
	api.HandleFunc("/buildings/{id}/path", s.handlePath).Methods("GET")
	api.HandleFunc("/buildings/{id}/invalidate", s.handleInvalidate).Methods("POST")
	api.HandleFunc("/network", s.handleNetwork).Methods("GET")
	api.HandleFunc("/network/intersections", s.handleIntersections).Methods("GET")
	api.HandleFunc("/cache", s.handleCacheStats).Methods("GET")

	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("http_request", "method", r.Method, "path", r.URL.Path, "dur_ms", time.Since(start).Milliseconds())
	})
}

// holdSnapshot keeps the loaded snapshot fixed for the whole request.
func (s *Server) holdSnapshot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		next.ServeHTTP(w, r)
	})
}

// current returns the loaded snapshot. Callers hold s.mu.
func (s *Server) current() (*model.RoadSystem, error) {
	if s.system == nil {
		return nil, errors.New("no snapshot loaded")
	}
	return s.system, nil
}

func (s *Server) building(r *http.Request) (*model.Building, error) {
	sys, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.eng.Building(sys, mux.Vars(r)["id"])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrBuildingNotFound), errors.Is(err, engine.ErrFloorNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

type buildingSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Floors int    `json:"floors"`
}

func (s *Server) handleBuildings(w http.ResponseWriter, _ *http.Request) {
	sys, err := s.current()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]buildingSummary, 0, len(sys.Buildings))
	for _, b := range sys.Buildings {
		out = append(out, buildingSummary{ID: b.ID, Name: b.Name, Floors: len(b.Floors)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"buildings": out,
		"count":     len(out),
	})
}

func (s *Server) handleConnectivity(w http.ResponseWriter, r *http.Request) {
	b, err := s.building(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.eng.ComputeConnectivity(b))
}

func (s *Server) handleAccessibility(w http.ResponseWriter, r *http.Request) {
	b, err := s.building(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.eng.ComputeAccessibility(b))
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	b, err := s.building(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.eng.ValidationReport(b))
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	b, err := s.building(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from and to query parameters are required"})
		return
	}
	path, err := s.eng.ShortestPath(b, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	ids := make([]string, len(path))
	for i, f := range path {
		ids[i] = f.ID
	}
	resp := map[string]any{
		"from":      from,
		"to":        to,
		"reachable": len(path) > 0,
		"floors":    ids,
	}
	if len(path) > 0 {
		resp["hops"] = len(path) - 1
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	s.eng.InvalidateCache(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNetwork(w http.ResponseWriter, _ *http.Request) {
	sys, err := s.current()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.eng.AnalyzeRoadNetwork(sys))
}

func (s *Server) handleIntersections(w http.ResponseWriter, _ *http.Request) {
	sys, err := s.current()
	if err != nil {
		writeError(w, err)
		return
	}
	found := s.eng.DetectRoadIntersections(sys)
	writeJSON(w, http.StatusOK, map[string]any{
		"intersections": found,
		"count":         len(found),
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.CacheStats())
}

func (s *Server) handleReload(w http.ResponseWriter, _ *http.Request) {
	if err := s.Load(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
