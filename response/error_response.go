package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eventify-backend/config"
	"eventify-backend/logger"
)

// ErrorResponse is the uniform error body: {message, error?, stack?}. Stack
// traces are only filled outside production.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Err        string `json:"error,omitempty"`
	Stack      string `json:"stack,omitempty"`
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Message: %s, Error: %s", r.StatusCode, r.Message, r.Err)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	logger.Errorf(ctx, r.Error())
	if config.Production() {
		r.Stack = ""
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

func BadRequest(message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func Unauthorized(message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func Forbidden(message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusForbidden,
		Message:    message,
	}
}

func NotFound(message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalError(message string, err error) ErrorResponse {
	r := ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

func RouteNotFound(path, method string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("The requested resource was not found: path: %s, method: %s", path, method),
	}
}
