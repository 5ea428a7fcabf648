// Package server exposes solver.Solve over HTTP.
//
// Routes:
//
//	POST /solve    body: maze text; query: heading, step, turn
//	GET  /healthz  liveness probe
//
// Every request runs its own search; the handler keeps no state between requests.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/solver"
	"github.com/katalvlaran/mazepath/statespace"
)

// DefaultMaxBody caps the accepted maze size in bytes.
const DefaultMaxBody = 1 << 20

// SolveResponse is the JSON body returned by POST /solve.
type SolveResponse struct {
	MinimalCost int64            `json:"minimalCost"`
	TileCount   int              `json:"tileCount"`
	Tiles       [][2]int         `json:"tiles"`
	Expanded    int              `json:"expanded"`
	Heading     string           `json:"heading"`
	Costs       statespace.Costs `json:"costs"`
}

// ErrorResponse is the JSON body returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server routes HTTP requests to the solver.
type Server struct {
	router  *mux.Router
	log     logrus.FieldLogger
	maxBody int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxBody caps the request body size. Non-positive values are ignored.
func WithMaxBody(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// New builds a Server with its routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		log:     logrus.StandardLogger(),
		maxBody: DefaultMaxBody,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	heading, opts, err := parseQuery(r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	pz, err := gridmap.Parse(string(body))
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	cfg := search.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	ans, err := solver.SolvePuzzle(pz, heading, opts...)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}

	s.log.WithFields(logrus.Fields{
		"map":      pz.Map.Fingerprint(),
		"rows":     pz.Map.Height(),
		"cols":     pz.Map.Width(),
		"cost":     ans.MinimalCost,
		"tiles":    ans.TileCount,
		"expanded": ans.Expanded,
		"elapsed":  time.Since(began),
	}).Info("solved")

	resp := SolveResponse{
		MinimalCost: ans.MinimalCost,
		TileCount:   ans.TileCount,
		Tiles:       make([][2]int, 0, len(ans.Tiles)),
		Expanded:    ans.Expanded,
		Heading:     heading.String(),
		Costs:       cfg.Costs,
	}
	for _, p := range ans.Tiles {
		resp.Tiles = append(resp.Tiles, [2]int{p.Row, p.Col})
	}
	s.write(w, http.StatusOK, resp)
}

// parseQuery reads the optional heading, step and turn parameters.
func parseQuery(r *http.Request) (statespace.Heading, []search.Option, error) {
	q := r.URL.Query()
	heading := solver.DefaultHeading
	if v := q.Get("heading"); v != "" {
		h, err := statespace.ParseHeading(v)
		if err != nil {
			return 0, nil, err
		}
		heading = h
	}

	var opts []search.Option
	for _, p := range []struct {
		key string
		opt func(int64) search.Option
	}{
		{"step", search.WithStepCost},
		{"turn", search.WithTurnCost},
	} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, nil, errors.Join(search.ErrOptionViolation, err)
		}
		opts = append(opts, p.opt(n))
	}

	return heading, opts, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrUnreachableGoal):
		return http.StatusUnprocessableEntity
	case errors.Is(err, search.ErrInvalidInput), errors.Is(err, search.ErrOptionViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).WithField("status", status).Warn("solve rejected")
	s.write(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("encode response")
	}
}
