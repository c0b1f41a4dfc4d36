package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"eventify-backend/config"
	c "eventify-backend/context"
	"eventify-backend/logger"
	"eventify-backend/model"
	"eventify-backend/store"

	"github.com/domodwyer/mailyak/v3"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpAddr = "smtp.gmail.com:587"
)

// Notifier sends payment receipts. Every failure is logged and swallowed so a
// receipt can never fail a payment response.
type Notifier struct {
	payments store.Payments
	users    store.Users
	concerts store.ConcertEvents
}

func NewNotifier(payments store.Payments, users store.Users, concerts store.ConcertEvents) *Notifier {
	return &Notifier{payments: payments, users: users, concerts: concerts}
}

// Send reloads the payment with buyer and event joined and dispatches the
// receipt. Runs detached from the request that triggered it.
func (n *Notifier) Send(paymentID primitive.ObjectID) {
	ctx := c.NewContext("receipt." + paymentID.Hex())
	ctx, cancel := c.NewContextWithTimeOut(ctx, c.DefaultHttpTimeout)
	defer cancel()

	receipt, err := n.load(ctx, paymentID)
	if err != nil {
		logger.Errorf(ctx, "send: error loading receipt: %+v", err)
		return
	}
	if receipt.Buyer == nil || receipt.Buyer.Email == "" {
		logger.Warnf(ctx, "send: payment %s has no buyer email, skipping receipt", paymentID.Hex())
		return
	}

	emailUser := viper.GetString(config.EmailUser)
	emailPass := viper.GetString(config.EmailPass)
	if emailUser == "" || emailPass == "" {
		logger.Infof(ctx, "Mock email sent to %s", receipt.Buyer.Email)
		return
	}

	m := mailyak.New(smtpAddr, smtp.PlainAuth("", emailUser, emailPass, smtpHost))
	m.From(emailUser)
	m.To(receipt.Buyer.Email)
	m.Subject("🎫 Payment Receipt - Eventify")

	eventName := ""
	if receipt.Event != nil {
		eventName = receipt.Event.Name
	}
	fmt.Fprintf(m.HTML(), `
		<h2>Payment Successful via Razorpay!</h2>
		<p>Thank you just booked a ticket for <strong>%s</strong>.</p>
		<p>Ticket: %s</p>
		<p>Amount: ₹%v</p>
		<p>Transaction ID: %s</p>
	`, eventName, strings.ToUpper(receipt.Payment.TicketCategory), receipt.Payment.Amount, receipt.Payment.RazorpayPaymentID)

	if err := m.Send(); err != nil {
		logger.Errorf(ctx, "send: error sending receipt email: %+v", err)
		return
	}
	logger.Infof(ctx, "Receipt email sent to %s", receipt.Buyer.Email)
}

// load composes the read-side joins: payment, buyer, booked event and its
// organizer.
func (n *Notifier) load(ctx context.Context, paymentID primitive.ObjectID) (*model.Receipt, error) {
	p, err := n.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	receipt := &model.Receipt{Payment: *p}

	owners, err := n.users.FindOwners(ctx, []primitive.ObjectID{p.UserID})
	if err != nil {
		return nil, fmt.Errorf("load: error joining buyer: %w", err)
	}
	if o, ok := owners[p.UserID]; ok {
		buyer := o
		receipt.Buyer = &buyer
	}

	ev, err := n.concerts.FindByID(ctx, p.ConcertEventID)
	if err != nil {
		// A deleted event must not block the receipt of a recorded payment.
		logger.Warnf(ctx, "load: concert event %s not found for payment %s", p.ConcertEventID.Hex(), paymentID.Hex())
		return receipt, nil
	}

	organizers, err := n.users.FindOwners(ctx, []primitive.ObjectID{ev.UserID})
	if err != nil {
		return nil, fmt.Errorf("load: error joining organizer: %w", err)
	}
	if o, ok := organizers[ev.UserID]; ok {
		organizer := o
		ev.User = &organizer
	}
	receipt.Event = ev

	return receipt, nil
}
