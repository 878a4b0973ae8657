package middlewares

import (
	"net/http"
	"time"
)

// RequestLogger is the plain request-line access log, used alongside
// the structured one in development.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)

		m.AccessLog.Printf("{%s} | {%s} ==> {%s} | {%s}", r.RemoteAddr, r.Method, r.RequestURI, duration)
	})
}
