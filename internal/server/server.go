// Package server exposes the ranking pipeline over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utakatalp/league-ranking/internal/league"
)

// MaxBodyBytes caps the size of submitted game text.
const MaxBodyBytes = 1 << 20

// Server wraps the router and its dependencies.
type Server struct {
	logger  *slog.Logger
	metrics *Metrics
	parser  *league.Parser
	router  *mux.Router
}

// New builds a server whose metrics are registered with reg.
func New(logger *slog.Logger, reg *prometheus.Registry) *Server {
	s := &Server{
		logger:  logger,
		metrics: NewMetrics(reg),
		parser:  league.NewParser(logger),
		router:  mux.NewRouter(),
	}

	s.router.HandleFunc("/rankings", s.handleRankings).Methods(http.MethodPost)
	s.router.HandleFunc("/selfcheck", s.handleSelfCheck).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.Use(s.logRequests)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeText(w, r, http.StatusRequestEntityTooLarge, "request body too large\n")
			return
		}
		s.writeText(w, r, http.StatusBadRequest, "reading body failed\n")
		return
	}

	games := 0
	counted := func(yield func(league.Game) bool) {
		for g := range s.parser.Games(string(body)) {
			games++
			if !yield(g) {
				return
			}
		}
	}
	rankings := league.Rank(league.CalculatePoints(counted))
	s.metrics.GamesParsed.Add(float64(games))
	s.metrics.Teams.Observe(float64(len(rankings)))

	var buf bytes.Buffer
	if err := league.WriteRankings(&buf, rankings); err != nil {
		s.logger.Error("formatting rankings", "err", err)
		s.writeText(w, r, http.StatusInternalServerError, "formatting rankings failed\n")
		return
	}
	s.writeText(w, r, http.StatusOK, buf.String())
}

func (s *Server) handleSelfCheck(w http.ResponseWriter, r *http.Request) {
	if err := league.SelfCheck(); err != nil {
		s.logger.Error("self-check", "err", err)
		s.writeText(w, r, http.StatusInternalServerError, err.Error()+"\n")
		return
	}
	s.writeText(w, r, http.StatusOK, league.CheckPassed+"\n")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeText(w, r, http.StatusOK, "ok\n")
}

func (s *Server) writeText(w http.ResponseWriter, r *http.Request, code int, body string) {
	route := r.URL.Path
	if cr := mux.CurrentRoute(r); cr != nil {
		if tpl, err := cr.GetPathTemplate(); err == nil {
			route = tpl
		}
	}
	s.metrics.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := io.WriteString(w, body); err != nil {
		s.logger.Warn("writing response", "route", route, "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
