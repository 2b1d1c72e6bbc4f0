package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/san-kum/rootfind/internal/logging"
	"github.com/san-kum/rootfind/internal/metrics"
	"github.com/san-kum/rootfind/internal/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *metrics.Solver) {
	t.Helper()
	m := metrics.NewSolver()
	return NewHandler(&Server{
		Solver:  rootfind.NewRegistry(),
		Metrics: m,
		Logger:  logging.NewNop(),
	}), m
}

func postForm(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSolve_Form(t *testing.T) {
	h, _ := newTestHandler(t)
	w := postForm(h, url.Values{
		"function":       {"x**2 - 2"},
		"method":         {"bisection"},
		"decimal_places": {"5"},
		"max_iter":       {"50"},
		"a":              {"0"},
		"b":              {"2"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Bisection Method", body["title"])
	assert.Equal(t, "converged", body["status"])
	assert.Equal(t, 1.41422, body["root"])
	assert.EqualValues(t, 16, body["iterations"])
	assert.Equal(t, "x^2 - 2", body["function"])
	assert.Contains(t, body["plot_url"], "/plot.svg?function=")

	table := body["table"].(map[string]any)
	assert.Len(t, table["rows"], 16)
}

func TestSolve_JSON(t *testing.T) {
	h, _ := newTestHandler(t)
	payload := `{"function": "x^3 - x - 2", "method": "newton", "x0": 1.5, "decimal_places": "5"}`
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "newton_raphson", body["method"])
	assert.Equal(t, "3*x^2 - 1", body["derivative"])
	assert.Equal(t, 1.52138, body["root"])
	assert.EqualValues(t, 3, body["iterations"])
}

func TestSolve_Exhausted(t *testing.T) {
	h, _ := newTestHandler(t)
	w := postForm(h, url.Values{
		"function": {"x^2 - 2"}, "method": {"bisection"}, "max_iter": {"5"}, "a": {"0"}, "b": {"2"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "exhausted", body["status"])
	assert.Equal(t, false, body["converged"])
	assert.Equal(t, 1.4375, body["root"])
}

func TestSolve_FailedSolve(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		form url.Values
		msg  string
	}{
		{
			name: "invalid interval",
			form: url.Values{"function": {"x^2 + 1"}, "method": {"bisection"}, "a": {"-1"}, "b": {"1"}},
			msg:  "Invalid interval. f(a) and f(b) must have opposite signs.",
		},
		{
			name: "zero derivative",
			form: url.Values{"function": {"x^2"}, "method": {"newton_raphson"}, "x0": {"0"}},
			msg:  "Zero derivative. Choose another initial guess.",
		},
		{
			name: "division by zero",
			form: url.Values{"function": {"3"}, "method": {"secant"}, "x0": {"0"}, "x1": {"1"}},
			msg:  "Division by zero.",
		},
		{
			name: "newton overflow",
			form: url.Values{"function": {"cos(x)"}, "method": {"newton_raphson"}, "x0": {"5e-324"}, "max_iter": {"1"}},
			msg:  "Error: the iteration diverged",
		},
		{
			name: "parse error",
			form: url.Values{"function": {"x +* 2"}, "method": {"secant"}, "x0": {"0"}, "x1": {"1"}},
			msg:  "Error: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(h, tt.form)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			body := decode(t, w)
			assert.Equal(t, "failed", body["status"])
			assert.Nil(t, body["root"])
			assert.Empty(t, body["records"])
			assert.Contains(t, body["error"], tt.msg)
			assert.NotContains(t, body, "plot_url")
		})
	}
}

func TestSolve_BadRequest(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing method", url.Values{"function": {"x"}}},
		{"unknown method", url.Values{"function": {"x"}, "method": {"golden"}}},
		{"missing function", url.Values{"method": {"bisection"}, "a": {"0"}, "b": {"1"}}},
		{"missing bracket", url.Values{"function": {"x"}, "method": {"bisection"}, "a": {"0"}}},
		{"missing guess", url.Values{"function": {"x"}, "method": {"secant"}, "x0": {"0"}}},
		{"non numeric", url.Values{"function": {"x"}, "method": {"newton_raphson"}, "x0": {"abc"}}},
		{"negative decimals", url.Values{"function": {"x"}, "method": {"newton_raphson"}, "x0": {"1"}, "decimal_places": {"-1"}}},
		{"zero max_iter", url.Values{"function": {"x"}, "method": {"newton_raphson"}, "x0": {"1"}, "max_iter": {"0"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(h, tt.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPlot(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, PlotURL("x^2 - 2", 1.41421), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Function Plot")
	assert.Contains(t, w.Body.String(), "Root at x = 1.41421")

	for _, target := range []string{"/plot.svg", "/plot.svg?function=x%2B%2B", "/plot.svg?function=x&root=abc"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plot.svg?function=sqrt(-1-x%5E2)", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetMethodsAndHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/methods", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var methods []rootfind.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &methods))
	require.Len(t, methods, 4)
	assert.Equal(t, rootfind.Bisection, methods[0].Method)
	assert.Equal(t, []string{"x0", "x1"}, methods[3].Params)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	postForm(h, url.Values{"function": {"x - 1"}, "method": {"secant"}, "x0": {"0"}, "x1": {"2"}})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `rootfind_solves_total{method="secant",status="converged"} 1`)
}
