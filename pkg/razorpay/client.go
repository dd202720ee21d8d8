package razorpay

import (
	"fmt"

	"github.com/google/uuid"
	razorpaygo "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/pkg/config"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
)

// GatewayOrder is the subset of the gateway's order response the checkout
// flow needs.
type GatewayOrder struct {
	ID          string
	AmountPaise int64
	Currency    enums.Currency
	Receipt     string
}

// OrderCreator creates an order on the payment gateway. Checkout depends on
// this interface so tests can substitute a stub.
type OrderCreator interface {
	CreateOrder(amount decimal.Decimal, customerEmail string) (*GatewayOrder, error)
}

// Client wraps the Razorpay SDK with the conversions the storefront needs:
// rupee amounts become paise and every order carries a generated receipt.
type Client struct {
	api       *razorpaygo.Client
	keySecret string
}

// NewClient builds a gateway client from configuration.
func NewClient(cfg config.RazorpayConfig) (*Client, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay key id and secret are required")
	}
	return &Client{
		api:       razorpaygo.NewClient(cfg.KeyID, cfg.KeySecret),
		keySecret: cfg.KeySecret,
	}, nil
}

// CreateOrder registers a pending order with the gateway. The amount is a
// rupee value and is converted to paise on the wire.
func (c *Client) CreateOrder(amount decimal.Decimal, customerEmail string) (*GatewayOrder, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("order amount must be positive, got %s", amount)
	}

	paise := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	receipt := "rcpt_" + uuid.NewString()

	payload := map[string]interface{}{
		"amount":   paise,
		"currency": string(enums.CurrencyINR),
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"customer_email": customerEmail,
		},
	}

	body, err := c.api.Order.Create(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("gateway returned order without id")
	}

	return &GatewayOrder{
		ID:          id,
		AmountPaise: paise,
		Currency:    enums.CurrencyINR,
		Receipt:     receipt,
	}, nil
}

// VerifyPaymentSignature checks the callback signature with this client's
// key secret.
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return VerifySignature(c.keySecret, orderID, paymentID, signature)
}
