package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventify-backend/event"
	"eventify-backend/logger"
	"eventify-backend/middleware"
	"eventify-backend/model"
	"eventify-backend/response"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ListConcerts(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		events, err := service.ListConcerts(ctx)
		if err != nil {
			logger.Errorf(ctx, "listConcerts: %+v", err)
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, events)
	}
}

func CreateConcert(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.ConcertEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		ev, err := service.CreateConcert(ctx, middleware.UserFrom(ctx), req)
		if err != nil {
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusCreated, ev)
	}
}

func UpdateConcert(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}

		var req model.ConcertEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		ev, err := service.UpdateConcert(ctx, middleware.UserFrom(ctx), id, req)
		switch {
		case errors.Is(err, event.ErrNotFound):
			response.NotFound("Concert event not found").Send(ctx, w)
			return
		case errors.Is(err, event.ErrNotOwner):
			response.Forbidden("Not authorized to update this event").Send(ctx, w)
			return
		case err != nil:
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, ev)
	}
}

func DeleteConcert(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}

		err = service.DeleteConcert(ctx, middleware.UserFrom(ctx), id)
		switch {
		case errors.Is(err, event.ErrNotFound):
			response.NotFound("Concert event not found").Send(ctx, w)
			return
		case errors.Is(err, event.ErrNotOwner):
			response.Forbidden("Not authorized to delete this event").Send(ctx, w)
			return
		case err != nil:
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, response.Message{Message: "Concert event deleted successfully"})
	}
}
