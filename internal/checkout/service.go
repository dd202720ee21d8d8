package checkout

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db"
	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
	"github.com/kisansetu/kisansetu-server/pkg/razorpay"
)

// OrderStatusPaid is the payment status stamped on orders created by a
// verified checkout.
const OrderStatusPaid = "Paid"

// Service orchestrates the checkout state machine: gateway order creation,
// pending session persistence, and verified promotion to a confirmed order.
type Service interface {
	InitiatePayment(ctx context.Context, input InitiateInput) (*InitiateResult, error)
	VerifyAndCreateOrder(ctx context.Context, input VerifyInput) (*VerifyResult, error)
}

// InitiateInput is the validated cart summary at checkout start.
type InitiateInput struct {
	CustomerEmail string
	TotalAmount   decimal.Decimal
	Items         []ItemInput
}

// ItemInput is one cart line in the checkout payload.
type ItemInput struct {
	ProductID   string
	Quantity    int
	TotalAmount decimal.Decimal
}

// InitiateResult is returned to the caller to drive the gateway widget.
type InitiateResult struct {
	GatewayOrderID string          `json:"orderId"`
	AmountPaise    int64           `json:"amount"`
	Currency       enums.Currency  `json:"currency"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// VerifyInput carries the gateway callback parameters.
type VerifyInput struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

// VerifyResult reports the promoted order.
type VerifyResult struct {
	GatewayOrderID string    `json:"orderId"`
	PaymentID      string    `json:"paymentId"`
	OrderDate      time.Time `json:"orderDate"`
	ItemCount      int       `json:"itemCount"`
}

type service struct {
	repo      *Repository
	dbClient  *db.Client
	gateway   razorpay.OrderCreator
	keySecret string
	logg      *logger.Logger
	now       func() time.Time
}

// NewService constructs the checkout service.
func NewService(repo *Repository, dbClient *db.Client, gateway razorpay.OrderCreator, keySecret string, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	if keySecret == "" {
		return nil, fmt.Errorf("gateway key secret required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		dbClient:  dbClient,
		gateway:   gateway,
		keySecret: keySecret,
		logg:      logg,
		now:       time.Now,
	}, nil
}

// InitiatePayment creates the gateway-side order first, then records the
// pending session. The gateway is the source of truth for the pending
// payment: a session-write failure is logged with the gateway order id but
// does not fail the call, so the customer can still pay and support can
// reconcile from the log line.
func (s *service) InitiatePayment(ctx context.Context, input InitiateInput) (*InitiateResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.CustomerEmail))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customerEmail is required")
	}
	if input.TotalAmount.Sign() <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "totalAmount must be positive")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cartItems must not be empty")
	}
	for _, item := range input.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "each cart item needs a productId and positive quantity")
		}
	}

	gatewayOrder, err := s.gateway.CreateOrder(input.TotalAmount, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating gateway order")
	}

	session := &models.PaymentSession{
		GatewayOrderID: gatewayOrder.ID,
		CustomerEmail:  email,
		TotalAmount:    input.TotalAmount,
		ItemCount:      len(input.Items),
		Status:         enums.PaymentSessionInitiated,
	}
	items := make([]models.PaymentSessionItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.PaymentSessionItem{
			GatewayOrderID: gatewayOrder.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			TotalAmount:    item.TotalAmount,
		})
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateSession(ctx, session, items)
	})
	if err != nil {
		s.logg.Error(s.logg.WithFields(ctx, map[string]any{
			"gateway_order_id": gatewayOrder.ID,
			"customer_email":   email,
		}), "payment session write failed after gateway order creation", err)
	}

	return &InitiateResult{
		GatewayOrderID: gatewayOrder.ID,
		AmountPaise:    gatewayOrder.AmountPaise,
		Currency:       gatewayOrder.Currency,
		TotalAmount:    input.TotalAmount,
	}, nil
}

// VerifyAndCreateOrder checks the callback signature and, inside a single
// transaction, promotes the session snapshot to an Order, records the
// payment detail, marks the session completed, and clears the cart.
func (s *service) VerifyAndCreateOrder(ctx context.Context, input VerifyInput) (*VerifyResult, error) {
	orderID := strings.TrimSpace(input.GatewayOrderID)
	paymentID := strings.TrimSpace(input.PaymentID)
	if orderID == "" || paymentID == "" || input.Signature == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "orderId, paymentId and signature are required")
	}

	if !razorpay.VerifySignature(s.keySecret, orderID, paymentID, input.Signature) {
		return nil, pkgerrors.New(pkgerrors.CodeVerification, "signature mismatch")
	}

	session, err := s.repo.FindSession(ctx, orderID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment session not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading payment session")
	}
	if !session.Status.CanTransitionTo(enums.PaymentSessionCompleted) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "payment session already completed")
	}

	items, err := s.repo.ListSessionItems(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading session items")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no items recorded for this payment session")
	}

	exists, err := s.repo.OrderExists(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking for existing order")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order already created for this payment")
	}

	orderDate := s.now().UTC()
	order := &models.Order{
		GatewayOrderID: orderID,
		CustomerEmail:  session.CustomerEmail,
		TotalAmount:    session.TotalAmount,
		PaymentID:      paymentID,
		OrderDate:      orderDate,
		Status:         OrderStatusPaid,
		DeliveryStatus: enums.DeliveryProcessing,
	}
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			GatewayOrderID: orderID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			TotalAmount:    item.TotalAmount,
		})
	}
	detail := &models.PaymentDetail{
		PaymentID:      paymentID,
		GatewayOrderID: orderID,
		Signature:      input.Signature,
		Email:          session.CustomerEmail,
		Amount:         session.TotalAmount,
		Currency:       enums.CurrencyINR,
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateOrder(ctx, order, orderItems); err != nil {
			return fmt.Errorf("inserting order: %w", err)
		}
		if err := repo.CreatePaymentDetail(ctx, detail); err != nil {
			return fmt.Errorf("inserting payment detail: %w", err)
		}
		affected, err := repo.UpdateSessionStatus(ctx, orderID, enums.PaymentSessionCompleted)
		if err != nil {
			return fmt.Errorf("completing session: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("session %s disappeared during promotion", orderID)
		}
		if _, err := repo.DeleteCartLines(ctx, session.CustomerEmail); err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "promoting payment session to order")
	}

	return &VerifyResult{
		GatewayOrderID: orderID,
		PaymentID:      paymentID,
		OrderDate:      orderDate,
		ItemCount:      len(orderItems),
	}, nil
}
