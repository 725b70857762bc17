package api_test

import (
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	store := seededStore(t, 0)
	h := newRouter(t, store, false, nil)

	r := do(t, h, http.MethodGet, "/health", "")
	if r.status != http.StatusOK || r.body["status"] != "ok" || r.body["service"] != "trivia" {
		t.Fatalf("unexpected health response: %d %s", r.status, r.raw)
	}

	store.PingErr = errors.New("connection refused")
	r = do(t, h, http.MethodGet, "/health", "")
	if r.status != http.StatusServiceUnavailable || r.body["status"] != "unavailable" {
		t.Fatalf("expected 503 when the store is down, got %d %s", r.status, r.raw)
	}
}

func TestVersionHandler(t *testing.T) {
	h := newRouter(t, seededStore(t, 0), false, nil)

	r := do(t, h, http.MethodGet, "/version", "")
	if r.status != http.StatusOK {
		t.Fatalf("expected 200, got %d", r.status)
	}
	if r.body["version"] != "test" || r.body["buildTime"] != "now" {
		t.Fatalf("unexpected version body: %s", r.raw)
	}
}
