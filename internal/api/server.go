// Package api serves the brain's pipelines to foreground callers as JSON over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/brain"
	"github.com/4rgon4ut/StakingBrain/internal/gate"
	"github.com/4rgon4ut/StakingBrain/internal/ledger"
	"github.com/4rgon4ut/StakingBrain/internal/model"
)

const (
	ValidatorsPath     = "/api/v1/validators"
	ExitPath           = "/api/v1/validators/exit"
	ReconciliationPath = "/api/v1/reconciliation"

	// maxBodyBytes bounds request bodies; keystore batches with slashing
	// protection history are the largest.
	maxBodyBytes = 64 << 20
)

// Brain is the orchestrator surface the API exposes.
type Brain interface {
	ImportValidators(ctx context.Context, req model.ImportRequest) (*model.ImportKeystoresResponse, error)
	UpdateValidators(ctx context.Context, req model.UpdateRequest) error
	DeleteValidators(ctx context.Context, req model.DeleteRequest) (*model.DeleteKeystoresResponse, error)
	ExitValidators(ctx context.Context, req model.ExitRequest) error
	Validators(ctx context.Context) []model.ValidatorStatus
}

// StateReporter reports the reconciliation gate state.
type StateReporter interface {
	State() gate.State
}

// ReconciliationResponse is the body of GET /api/v1/reconciliation.
type ReconciliationResponse struct {
	State gate.State `json:"state"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server is the brain HTTP API.
type Server struct {
	logger zerolog.Logger
	brain  Brain
	gate   StateReporter
	server *http.Server
}

// NewServer creates a server listening on addr once started.
func NewServer(logger zerolog.Logger, addr string, b Brain, g StateReporter) *Server {
	s := &Server{
		logger: logger.With().Str("component", "api").Logger(),
		brain:  b,
		gate:   g,
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed API handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ValidatorsPath, s.getValidators)
	mux.HandleFunc("POST "+ValidatorsPath, s.importValidators)
	mux.HandleFunc("PATCH "+ValidatorsPath, s.updateValidators)
	mux.HandleFunc("DELETE "+ValidatorsPath, s.deleteValidators)
	mux.HandleFunc("POST "+ExitPath, s.exitValidators)
	mux.HandleFunc("GET "+ReconciliationPath, s.reconciliation)
	return s.accessLog(mux)
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info().Str("address", l.Addr().String()).Msg("api listening")
	if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve api: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(l)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) getValidators(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.brain.Validators(r.Context()))
}

func (s *Server) importValidators(w http.ResponseWriter, r *http.Request) {
	var req model.ImportRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp, err := s.brain.ImportValidators(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) updateValidators(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.brain.UpdateValidators(r.Context(), req); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteValidators(w http.ResponseWriter, r *http.Request) {
	var req model.DeleteRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp, err := s.brain.DeleteValidators(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) exitValidators(w http.ResponseWriter, r *http.Request) {
	var req model.ExitRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.brain.ExitValidators(r.Context(), req); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) reconciliation(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, ReconciliationResponse{State: s.gate.State()})
}

// decode reads a JSON body into v, answering 400 when it cannot.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("malformed request body: %v", err)})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, brain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to write response")
	}
}
