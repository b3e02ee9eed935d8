package middleware

import "net/http"

type CORSMiddleware struct {
	origin string
}

// NewCORSMiddleware allows credentialed requests from the single configured
// frontend origin.
func NewCORSMiddleware(origin string) *CORSMiddleware {
	return &CORSMiddleware{
		origin: origin,
	}
}

func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("Access-Control-Allow-Origin", m.origin)
		headers.Set("Access-Control-Allow-Methods", "GET,PUT,POST,DELETE")
		headers.Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-CSRF-Token")
		headers.Set("Access-Control-Allow-Credentials", "true")
		headers.Set("X-Content-Type-Options", "nosniff")

		if r.Method == http.MethodOptions {
			headers.Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
