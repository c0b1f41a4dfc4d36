package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID            primitive.ObjectID `bson:"user" json:"user"`
	ConcertEventID    primitive.ObjectID `bson:"concertEvent" json:"concertEvent"`
	TicketCategory    string             `bson:"ticketCategory" json:"ticketCategory"`
	Amount            float64            `bson:"amount" json:"amount"`
	RazorpayPaymentID string             `bson:"razorpayPaymentId" json:"razorpayPaymentId"`
	RazorpayOrderID   string             `bson:"razorpayOrderId" json:"razorpayOrderId"`
	Name              string             `bson:"name" json:"name"`
	Address           string             `bson:"address" json:"address"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Receipt is a payment joined with the buyer and the booked event for the
// receipt email.
type Receipt struct {
	Payment Payment
	Buyer   *Owner
	Event   *ConcertEvent
}

type CustomerDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type PaymentData struct {
	ConcertEventID  string          `json:"concertEventId"`
	TicketCategory  string          `json:"ticketCategory"`
	Amount          float64         `json:"amount"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type OrderRequest struct {
	Amount float64 `json:"amount"`
}

type VerifyRequest struct {
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id"`
	RazorpaySignature string      `json:"razorpay_signature"`
	PaymentData       PaymentData `json:"paymentData"`
}
