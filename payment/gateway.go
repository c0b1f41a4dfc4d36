package payment

import (
	"fmt"

	"eventify-backend/config"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/spf13/viper"
)

// Gateway creates orders with the external payment processor.
type Gateway interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds the adapter from RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET.
func NewRazorpayGateway() Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(
			viper.GetString(config.RazorpayKeyID),
			viper.GetString(config.RazorpayKeySecret),
		),
	}
}

func (g *razorpayGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("createOrder: error calling gateway: %w", err)
	}
	return order, nil
}
