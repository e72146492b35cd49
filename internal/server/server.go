// Package server exposes the simulator over a small JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/liinajapson/budget-tool/internal/allocation"
	"github.com/liinajapson/budget-tool/internal/scenario"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

const maxBodyBytes = 1 << 20

type Server struct {
	logger *zap.Logger
	router *mux.Router
}

type errorResponse struct {
	Error string `json:"error"`
}

type presetSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Applicants  int    `json:"applicants"`
	Tiers       string `json:"tiers"`
}

func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger, router: mux.NewRouter()}
	s.router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/simulate", s.simulate).Methods(http.MethodPost)
	api.HandleFunc("/presets", s.listPresets).Methods(http.MethodGet)
	api.HandleFunc("/presets/{name}", s.getPreset).Methods(http.MethodGet)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve blocks until the listener fails. The listener is opened by the
// caller so it can report the bound address first.
func (s *Server) Serve(listener net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("serving", zap.String("addr", listener.Addr().String()))
	return srv.Serve(listener)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// simulate accepts a scenario document. apiVersion, kind and metadata.name
// may be omitted.
func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var doc scenario.Scenario
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode scenario: %w", err))
		return
	}
	if doc.APIVersion == "" {
		doc.APIVersion = scenario.APIVersionV1
	}
	if doc.Kind == "" {
		doc.Kind = scenario.KindScholarshipScenario
	}
	if doc.Metadata.Name == "" {
		doc.Metadata.Name = "api"
	}

	explain, _ := strconv.ParseBool(r.URL.Query().Get("explain"))
	if err := doc.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, _, err := simulate.Run(doc, simulate.Options{Explain: explain})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, allocation.ErrNoApplicants) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}
	s.logger.Info("simulated",
		zap.String("run_id", result.RunID),
		zap.String("scenario", result.Scenario),
		zap.Int("applicants", result.Summary.Applicants),
		zap.Int("funded", result.Summary.FundedCount),
	)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) listPresets(w http.ResponseWriter, _ *http.Request) {
	var out []presetSummary
	for _, name := range scenario.PresetNames() {
		doc, err := scenario.PresetByName(name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, presetSummary{
			Name:        name,
			Description: doc.Metadata.Description,
			Applicants:  doc.Applicants(),
			Tiers:       scenario.FormatTiers(doc.Tiers),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getPreset(w http.ResponseWriter, r *http.Request) {
	doc, err := scenario.PresetByName(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
