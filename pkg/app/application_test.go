package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carebook/pkg/config"
	"carebook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type routes map[string]httprouter.Handle

func (r routes) RegisterRoutes(router *httprouter.Router) {
	for path, h := range r {
		router.GET(path, h)
		router.POST(path, h)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		RateLimitRPS:    1,
		RateLimitBurst:  1,
		RequestTimeout:  time.Second,
		MaxRequestSize:  1024,
		ShutdownTimeout: time.Second,
		Log:             logger.Discard(),
	}
}

func ok(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

func TestSetApp_RoutesHealthAndApplication(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(routes{"/health": ok}, routes{"/api/v1/providers": ok})
	defer a.rateLimiter.Stop()

	for _, path := range []string{"/health", "/api/v1/providers"} {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: expected request id header", path)
		}
	}
}

func TestSetApp_ApplicationMiddleware(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(routes{"/health": ok}, routes{"/api/v1/providers/1/bookings": ok})
	defer a.rateLimiter.Stop()

	post := func(contentType string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/1/bookings", strings.NewReader(`{}`))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post(""); code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415 without content type, got %d", code)
	}
	if code := post("application/json"); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if code := post("application/json"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", code)
	}
}

func TestGracefulShutdown_ClosesResources(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(routes{"/health": ok}, routes{})

	closed := 0
	a.OnShutdown(closerFunc(func() error {
		closed++
		return nil
	}))

	a.gracefulShutdown()

	if closed != 1 {
		t.Errorf("expected closer to run once, got %d", closed)
	}
}
