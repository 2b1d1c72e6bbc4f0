package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mitchellh/mapstructure"
	"github.com/san-kum/rootfind/internal/expr"
	"github.com/san-kum/rootfind/internal/metrics"
	"github.com/san-kum/rootfind/internal/plot"
	"github.com/san-kum/rootfind/internal/report"
	"github.com/san-kum/rootfind/internal/rootfind"
)

const (
	plotWidth  = 640
	plotHeight = 480
	maxBody    = 1 << 20
)

// Solver runs one request. *rootfind.Registry satisfies it.
type Solver interface {
	Solve(ctx context.Context, req rootfind.Request) (*rootfind.Result, error)
	Parse(name string) (rootfind.Method, error)
	Lookup(m rootfind.Method) (rootfind.Descriptor, error)
	Methods() []rootfind.Descriptor
}

// Server holds the HTTP handlers.
type Server struct {
	Solver  Solver
	Metrics *metrics.Solver
	Logger  *slog.Logger
}

// SolveResponse is the body of /solve. PlotURL is set when a root was found.
type SolveResponse struct {
	report.ExportData
	Table   report.Table `json:"table"`
	PlotURL string       `json:"plot_url,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds the router. A nil Metrics disables /metrics.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/methods", s.GetMethods)
	r.Get("/solve", s.Solve)
	r.Post("/solve", s.Solve)
	r.Get("/plot.svg", s.GetPlot)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}
	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, http.StatusOK, map[string]string{"status": "ok"})
}

// GetMethods handles GET /methods.
func (s *Server) GetMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, http.StatusOK, s.Solver.Methods())
}

// Solve handles /solve with form or JSON input.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.Logger.Warn("solve: bad request", "error", err)
		writeJSON(w, s.Logger, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	res, err := s.Solver.Solve(r.Context(), req)
	if s.Metrics != nil {
		s.Metrics.Observe(res, time.Since(start))
	}

	status := http.StatusOK
	switch {
	case errors.Is(err, rootfind.ErrInvalidRequest):
		writeJSON(w, s.Logger, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		s.Logger.Info("solve failed", "method", req.Method, "error", err)
		status = http.StatusUnprocessableEntity
	}

	resp := SolveResponse{
		ExportData: report.NewExportData(res),
		Table:      report.FromResult(res),
	}
	if res.HasRoot() {
		resp.PlotURL = PlotURL(res.Expression, res.Root)
	}
	writeJSON(w, s.Logger, status, resp)
}

// GetPlot handles GET /plot.svg?function=..&root=..
func (s *Server) GetPlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	src := q.Get("function")
	if strings.TrimSpace(src) == "" {
		writeJSON(w, s.Logger, http.StatusBadRequest, errorResponse{Error: "missing function"})
		return
	}
	e, err := expr.Parse(src)
	if err != nil {
		writeJSON(w, s.Logger, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	fig := plot.New(e, plot.DefaultDomain)
	if raw := q.Get("root"); raw != "" {
		root, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, s.Logger, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid root %q", raw)})
			return
		}
		fig.MarkRoot(root)
	}

	svg, err := fig.SVG(plotWidth, plotHeight)
	if err != nil {
		writeJSON(w, s.Logger, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		s.Logger.Error("plot write failed", "error", err)
	}
}

// PlotURL links a solve result to its plot.
func PlotURL(function string, root float64) string {
	v := url.Values{}
	v.Set("function", function)
	v.Set("root", strconv.FormatFloat(root, 'g', -1, 64))
	return "/plot.svg?" + v.Encode()
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (rootfind.Request, error) {
	raw, err := readFields(w, r)
	if err != nil {
		return rootfind.Request{}, err
	}

	name, _ := raw["method"].(string)
	if name == "" {
		return rootfind.Request{}, errors.New("missing method")
	}
	method, err := s.Solver.Parse(name)
	if err != nil {
		return rootfind.Request{}, err
	}
	desc, err := s.Solver.Lookup(method)
	if err != nil {
		return rootfind.Request{}, err
	}

	for _, key := range append([]string{"function"}, desc.Params...) {
		if isBlank(raw[key]) {
			return rootfind.Request{}, fmt.Errorf("missing %s for %s", key, desc.Title)
		}
	}
	delete(raw, "method")
	for k, v := range raw {
		if isBlank(v) {
			delete(raw, k)
		}
	}

	req := rootfind.Request{
		DecimalPlaces: rootfind.DefaultDecimalPlaces,
		MaxIter:       rootfind.DefaultMaxIter,
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &req,
	})
	if err != nil {
		return rootfind.Request{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return rootfind.Request{}, fmt.Errorf("invalid parameters: %w", err)
	}
	req.Method = method
	return req, nil
}

// readFields collects the request fields from a JSON body or from the form
// (query string and urlencoded or multipart body).
func readFields(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		raw := map[string]any{}
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		return raw, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBody); err != nil {
			return nil, fmt.Errorf("invalid form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form: %w", err)
	}

	raw := make(map[string]any, len(r.Form))
	for k, v := range r.Form {
		if len(v) > 0 {
			raw[k] = strings.TrimSpace(v[0])
		}
	}
	return raw, nil
}

func isBlank(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error("response encode failed", "error", err)
		http.Error(w, "response encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
