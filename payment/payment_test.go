package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"testing"
	"time"

	"eventify-backend/config"
	"eventify-backend/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePayments struct {
	inserted []model.Payment
}

func (f *fakePayments) Insert(ctx context.Context, p *model.Payment) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	f.inserted = append(f.inserted, *p)
	return nil
}

func (f *fakePayments) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error) {
	for i := range f.inserted {
		if f.inserted[i].ID == id {
			p := f.inserted[i]
			return &p, nil
		}
	}
	return nil, nil
}

type fakeGateway struct {
	data map[string]interface{}
}

func (f *fakeGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	f.data = data
	return map[string]interface{}{"id": "order_123", "amount": data["amount"], "status": "created"}, nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []primitive.ObjectID
}

func (f *fakeNotifier) Send(id primitive.ObjectID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, id)
}

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	signature := sign("order_1", "pay_1", "gateway-secret")

	assert.True(t, VerifySignature("order_1", "pay_1", signature, "gateway-secret"))
	assert.False(t, VerifySignature("order_1", "pay_1", signature, "other-secret"))
	assert.False(t, VerifySignature("order_2", "pay_1", signature, "gateway-secret"))
	assert.False(t, VerifySignature("order_1", "pay_1", "", "gateway-secret"))
}

func TestCreateOrderScalesToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	s := NewService(gw, &fakePayments{}, nil)

	order, err := s.CreateOrder(context.Background(), 499.5)
	require.Nil(t, err)

	assert.Equal(t, int64(49950), gw.data["amount"])
	assert.Equal(t, "INR", gw.data["currency"])
	receipt, ok := gw.data["receipt"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(receipt, "receipt_"))
	assert.Equal(t, "order_123", order["id"])
}

func TestVerifyAndRecordRejectsBadSignature(t *testing.T) {
	viper.Set(config.RazorpayKeySecret, "gateway-secret")
	defer viper.Set(config.RazorpayKeySecret, "")

	ledger := &fakePayments{}
	s := NewService(&fakeGateway{}, ledger, &fakeNotifier{})

	u := &model.User{ID: primitive.NewObjectID()}
	req := model.VerifyRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "deadbeef",
	}

	p, err := s.VerifyAndRecord(context.Background(), u, req)
	require.Equal(t, ErrInvalidSignature, err)
	assert.Nil(t, p)
	assert.Empty(t, ledger.inserted)
}

func TestVerifyAndRecordPersistsPayment(t *testing.T) {
	viper.Set(config.RazorpayKeySecret, "gateway-secret")
	defer viper.Set(config.RazorpayKeySecret, "")

	ledger := &fakePayments{}
	notifier := &fakeNotifier{}
	s := NewService(&fakeGateway{}, ledger, notifier)

	u := &model.User{ID: primitive.NewObjectID()}
	eventID := primitive.NewObjectID()
	req := model.VerifyRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: sign("order_1", "pay_1", "gateway-secret"),
		PaymentData: model.PaymentData{
			ConcertEventID: eventID.Hex(),
			TicketCategory: "platinum",
			Amount:         200,
			CustomerDetails: model.CustomerDetails{
				Name:    "Asha",
				Address: "12 MG Road",
			},
		},
	}

	p, err := s.VerifyAndRecord(context.Background(), u, req)
	require.Nil(t, err)
	require.NotNil(t, p)

	require.Len(t, ledger.inserted, 1)
	saved := ledger.inserted[0]
	assert.Equal(t, u.ID, saved.UserID)
	assert.Equal(t, eventID, saved.ConcertEventID)
	assert.Equal(t, "platinum", saved.TicketCategory)
	assert.Equal(t, float64(200), saved.Amount)
	assert.Equal(t, "Asha", saved.Name)
	assert.Equal(t, "12 MG Road", saved.Address)
	assert.Equal(t, "pay_1", saved.RazorpayPaymentID)
	assert.Equal(t, "order_1", saved.RazorpayOrderID)

	// The notifier runs detached from the request path.
	assert.Eventually(t, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return len(notifier.sent) == 1 && notifier.sent[0] == p.ID
	}, time.Second, 10*time.Millisecond)
}

func TestVerifyAndRecordRejectsMalformedEventID(t *testing.T) {
	viper.Set(config.RazorpayKeySecret, "gateway-secret")
	defer viper.Set(config.RazorpayKeySecret, "")

	ledger := &fakePayments{}
	s := NewService(&fakeGateway{}, ledger, nil)

	u := &model.User{ID: primitive.NewObjectID()}
	req := model.VerifyRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: sign("order_1", "pay_1", "gateway-secret"),
		PaymentData:       model.PaymentData{ConcertEventID: "not-an-id"},
	}

	p, err := s.VerifyAndRecord(context.Background(), u, req)
	require.NotNil(t, err)
	assert.Nil(t, p)
	assert.Empty(t, ledger.inserted)
}
