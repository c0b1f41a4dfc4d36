package middleware

import (
	"net/http"

	"eventify-backend/logger"
)

func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debugf(r.Context(), "Request - %s %s", r.Method, r.URL)
		next.ServeHTTP(w, r)
	})
}
