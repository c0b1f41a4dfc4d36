package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body. The event and payment endpoints return
// their entities unwrapped, so there is no envelope here.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// Message is the confirmation body returned by the delete endpoints.
type Message struct {
	Message string `json:"message"`
}
