package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vdobler/seasonal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, source string) *HttpServer {
	t.Helper()
	chart, err := seasonal.NewChart(seasonal.Narrow)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	view := seasonal.NewView(chart, seasonal.NewFuture(seasonal.Loader{Source: source}))
	view.Report = func(error) {}
	view.Start(context.Background())
	ht, err := New(view)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	return ht
}

func get(ht *HttpServer, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	ht.Handler().ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	ht := newTestServer(t, "../testdata/small.json")
	w := get(ht, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("Got status %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`id="seasonal-d3"`, `id="nsubp"`, `max="6"`, "api/v1/subplot?nsubp=", "(narrow)"} {
		if !strings.Contains(body, want) {
			t.Errorf("Missing %s", want)
		}
	}
}

func TestChartAndSubplot(t *testing.T) {
	ht := newTestServer(t, "../testdata/small.json")

	w := get(ht, "/api/v1/chart")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("Got %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if n := strings.Count(w.Body.String(), `class="plotline"`); n != 3 {
		t.Errorf("Got %d plot lines, want 3", n)
	}

	w = get(ht, "/api/v1/subplot?nsubp=2")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("Got status %d %s: %s", w.Code, w.Header().Get("Content-Type"), w.Body)
	}
	if n := strings.Count(w.Body.String(), `class="rawplot"`); n != 1 {
		t.Errorf("Got %d raw lines, want 1", n)
	}

	var state struct {
		State   string
		Subplot int
	}
	w = get(ht, "/api/v1/state")
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if state.State != "rendered" || state.Subplot != 11 {
		t.Errorf("Got %+v, want rendered 11", state)
	}
}

func TestSubplotErrors(t *testing.T) {
	ht := newTestServer(t, "../testdata/small.json")
	for _, tc := range []struct {
		url  string
		code int
	}{
		{"/api/v1/subplot?nsubp=9", http.StatusBadRequest},
		{"/api/v1/subplot?nsubp=abc", http.StatusBadRequest},
		{"/api/v1/subplot", http.StatusBadRequest},
		{"/api/v1/subplot?nsubp=3", http.StatusNotFound},
	} {
		w := get(ht, tc.url)
		if w.Code != tc.code {
			t.Errorf("%s: Got %d, want %d", tc.url, w.Code, tc.code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] == "" {
			t.Errorf("%s: Got body %s", tc.url, w.Body)
		}
	}
}

func TestRawAndDataset(t *testing.T) {
	ht := newTestServer(t, "../testdata/small.json")

	w := get(ht, "/api/v1/raw")
	var raw []struct {
		Month string  `json:"month"`
		CO2   float64 `json:"co2"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if len(raw) != 6 || raw[0].Month != "1960-01-01" || raw[1].Month != "1960-02-01" {
		t.Errorf("Got %v", raw)
	}

	w = get(ht, "/assets/seasonal_smoothing.json")
	if w.Code != http.StatusOK {
		t.Fatalf("Got status %d", w.Code)
	}
	ds, err := seasonal.ParseDataset("response", w.Body)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if len(ds.Indices) != 3 {
		t.Errorf("Got %d subplots, want 3", len(ds.Indices))
	}
}

func TestLoadFailure(t *testing.T) {
	ht := newTestServer(t, "../testdata/missing.json")
	for _, url := range []string{"/api/v1/chart", "/api/v1/raw", "/assets/seasonal_smoothing.json"} {
		if w := get(ht, url); w.Code != http.StatusBadGateway {
			t.Errorf("%s: Got %d, want 502", url, w.Code)
		}
	}
	var state map[string]interface{}
	json.Unmarshal(get(ht, "/api/v1/state").Body.Bytes(), &state)
	if state["state"] != "failed" {
		t.Errorf("Got %v, want failed", state)
	}
}
