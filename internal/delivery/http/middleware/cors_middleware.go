package middleware

import "net/http"

type CORSMiddleware struct {
	allowAll bool
	origins  map[string]bool
}

// NewCORSMiddleware builds the middleware from the configured origin
// allowlist. A "*" entry allows every origin.
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	m := &CORSMiddleware{origins: make(map[string]bool)}
	for _, o := range allowedOrigins {
		if o == "*" {
			m.allowAll = true
			continue
		}
		m.origins[o] = true
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch origin := req.Header.Get("Origin"); {
		case m.allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case m.origins[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
