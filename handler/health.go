package handler

import (
	"net/http"
	"time"

	"eventify-backend/response"
	"eventify-backend/store"
)

// Status answers the root path with a plain status line.
func Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Eventify API is running"))
	}
}

type healthResponse struct {
	Status         string    `json:"status"`
	MongoConnected bool      `json:"mongoConnected"`
	Timestamp      time.Time `json:"timestamp"`
}

func Health(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, healthResponse{
			Status:         "ok",
			MongoConnected: st.Healthy(r.Context()),
			Timestamp:      time.Now().UTC(),
		})
	}
}
