package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func runCORS(t *testing.T, origins []string, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/providers", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()

	NewCORSMiddleware(origins).Handle(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	rec, reached := runCORS(t, []string{"*"}, http.MethodGet, "https://app.example.com")
	if !reached {
		t.Fatal("request should reach the next handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}

func TestCORSMiddleware_Allowlist(t *testing.T) {
	origins := []string{"https://app.example.com"}

	rec, _ := runCORS(t, origins, http.MethodGet, "https://app.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q, want the listed origin echoed", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q, want Origin", got)
	}

	rec, reached := runCORS(t, origins, http.MethodGet, "https://evil.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for an unlisted origin, want empty", got)
	}
	if !reached {
		t.Error("unlisted origin should still reach the handler; the browser enforces the block")
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	rec, reached := runCORS(t, []string{"*"}, http.MethodOptions, "https://app.example.com")
	if reached {
		t.Error("preflight should short-circuit before the next handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("preflight response missing Allow-Methods header")
	}
}
