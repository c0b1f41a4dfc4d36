package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventify-backend/logger"
	"eventify-backend/model"
	"eventify-backend/response"
	"eventify-backend/user"
)

func Register(service *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		logger.Infof(ctx, "Register attempt for email: %s", req.Email)

		res, err := service.Register(ctx, req)
		switch {
		case errors.Is(err, user.ErrUserExists):
			response.BadRequest("User already exists").Send(ctx, w)
			return
		case errors.Is(err, user.ErrMissingFields):
			response.BadRequest("Invalid user data").Send(ctx, w)
			return
		case err != nil:
			response.InternalError("Registration failed", err).Send(ctx, w)
			return
		}

		response.JSON(w, http.StatusCreated, res)
	}
}

func Login(service *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		logger.Infof(ctx, "Login attempt for email: %s", req.Email)

		res, err := service.Login(ctx, req)
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized("Invalid email or password").Send(ctx, w)
			return
		}
		if err != nil {
			response.InternalError("Login failed", err).Send(ctx, w)
			return
		}

		response.JSON(w, http.StatusOK, res)
	}
}
