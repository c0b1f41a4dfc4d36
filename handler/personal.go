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

func ListPersonal(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		events, err := service.ListPersonal(ctx)
		if err != nil {
			logger.Errorf(ctx, "listPersonal: %+v", err)
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, events)
	}
}

func CreatePersonal(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.PersonalEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		ev, err := service.CreatePersonal(ctx, middleware.UserFrom(ctx), req)
		if err != nil {
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusCreated, ev)
	}
}

// Non-owner mutations on personal events return 401 where concerts return
// 403; the drift is kept for client compatibility.
func UpdatePersonal(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}

		var req model.PersonalEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		ev, err := service.UpdatePersonal(ctx, middleware.UserFrom(ctx), id, req)
		switch {
		case errors.Is(err, event.ErrNotFound):
			response.NotFound("Event not found").Send(ctx, w)
			return
		case errors.Is(err, event.ErrNotOwner):
			response.Unauthorized("Not authorized").Send(ctx, w)
			return
		case err != nil:
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, ev)
	}
}

func DeletePersonal(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}

		err = service.DeletePersonal(ctx, middleware.UserFrom(ctx), id)
		switch {
		case errors.Is(err, event.ErrNotFound):
			response.NotFound("Event not found").Send(ctx, w)
			return
		case errors.Is(err, event.ErrNotOwner):
			response.Unauthorized("Not authorized").Send(ctx, w)
			return
		case err != nil:
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, response.Message{Message: "Event removed"})
	}
}

func ToggleRSVP(service *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}

		ev, err := service.ToggleRSVP(ctx, middleware.UserFrom(ctx), id)
		switch {
		case errors.Is(err, event.ErrNotFound):
			response.NotFound("Event not found").Send(ctx, w)
			return
		case err != nil:
			response.BadRequest(err.Error()).Send(ctx, w)
			return
		}
		response.JSON(w, http.StatusOK, ev)
	}
}
