package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"eventify-backend/logger"
	"eventify-backend/response"
)

// PanicHandler is the process-wide fallback: anything uncaught becomes a 500
// with a generic message, full detail logged server-side only.
func PanicHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				const size = 1 << 16
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]
				logger.Errorf(r.Context(), "panic: %v\n%s", err, buf)

				res := response.InternalError("Internal Server Error", fmt.Errorf("%v", err))
				res.Stack = string(buf)
				res.Send(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
