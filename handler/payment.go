package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventify-backend/middleware"
	"eventify-backend/model"
	"eventify-backend/monitoring"
	"eventify-backend/payment"
	"eventify-backend/response"
)

func CreateOrder(service *payment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		order, err := service.CreateOrder(ctx, req.Amount)
		if err != nil {
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}

		monitoring.OrderCreated()
		response.JSON(w, http.StatusOK, order)
	}
}

type verifyResponse struct {
	Message string         `json:"message"`
	Payment *model.Payment `json:"payment"`
}

func VerifyPayment(service *payment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("Invalid request body").Send(ctx, w)
			return
		}

		p, err := service.VerifyAndRecord(ctx, middleware.UserFrom(ctx), req)
		if errors.Is(err, payment.ErrInvalidSignature) {
			response.BadRequest("Invalid signature sent!").Send(ctx, w)
			return
		}
		if err != nil {
			response.InternalError(err.Error(), nil).Send(ctx, w)
			return
		}

		monitoring.PaymentVerified()
		response.JSON(w, http.StatusCreated, verifyResponse{
			Message: "Payment verified successfully",
			Payment: p,
		})
	}
}
