package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"eventify-backend/config"
	"eventify-backend/model"
	"eventify-backend/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidSignature = errors.New("invalid signature sent")

// Notifier is fired after a verified payment. Its outcome never affects the
// payment response.
type Notifier interface {
	Send(paymentID primitive.ObjectID)
}

// Service creates gateway orders and records verified payments in the ledger.
type Service struct {
	gateway  Gateway
	payments store.Payments
	notifier Notifier
}

func NewService(gateway Gateway, payments store.Payments, notifier Notifier) *Service {
	return &Service{gateway: gateway, payments: payments, notifier: notifier}
}

// CreateOrder places an order for the amount, converted to paise, under a
// random receipt id, and returns the processor's order object verbatim.
func (s *Service) CreateOrder(ctx context.Context, amount float64) (map[string]interface{}, error) {
	paise := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).IntPart()

	data := map[string]interface{}{
		"amount":   paise,
		"currency": "INR",
		"receipt":  receiptID(),
	}
	return s.gateway.CreateOrder(data)
}

func receiptID() string {
	return "receipt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// VerifySignature recomputes the gateway's HMAC-SHA256 over
// "<orderID>|<paymentID>" and compares in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyAndRecord validates the callback signature, persists the payment and
// fires the receipt notifier on its own goroutine.
func (s *Service) VerifyAndRecord(ctx context.Context, authUser *model.User, req model.VerifyRequest) (*model.Payment, error) {
	secret := viper.GetString(config.RazorpayKeySecret)
	if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		return nil, ErrInvalidSignature
	}

	eventID, err := primitive.ObjectIDFromHex(req.PaymentData.ConcertEventID)
	if err != nil {
		return nil, fmt.Errorf("verifyAndRecord: invalid concert event id %q: %w", req.PaymentData.ConcertEventID, err)
	}

	p := &model.Payment{
		UserID:            authUser.ID,
		ConcertEventID:    eventID,
		TicketCategory:    req.PaymentData.TicketCategory,
		Amount:            req.PaymentData.Amount,
		Name:              req.PaymentData.CustomerDetails.Name,
		Address:           req.PaymentData.CustomerDetails.Address,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpayOrderID:   req.RazorpayOrderID,
	}
	if err := s.payments.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("verifyAndRecord: %w", err)
	}

	if s.notifier != nil {
		go s.notifier.Send(p.ID)
	}
	return p, nil
}
