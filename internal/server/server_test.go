package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithCORS_WildcardByDefault(t *testing.T) {
	h := WithCORS(nil, okHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/predict?date=2024-03-04", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin=%q", got)
	}
}

func TestWithCORS_Preflight(t *testing.T) {
	h := WithCORS([]string{"http://localhost:3000"}, okHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("preflight status=%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin=%q", got)
	}
}

func TestWithCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	h := WithCORS([]string{"http://localhost:3000"}, okHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://elsewhere.example")
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected Access-Control-Allow-Origin=%q", got)
	}
}

func TestShutdown_NotStarted(t *testing.T) {
	var s Server
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on idle server: %v", err)
	}
}

func TestRun_ReturnsAfterShutdown(t *testing.T) {
	s := New("127.0.0.1:0", okHandler())
	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-done; !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("Run returned %v", err)
	}
}

func TestRun_ZeroValue(t *testing.T) {
	var s Server
	if err := s.Run(); !errors.Is(err, errNotConfigured) {
		t.Fatalf("expected errNotConfigured, got %v", err)
	}
}
