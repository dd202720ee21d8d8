package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/api/responses"
	"github.com/kisansetu/kisansetu-server/api/validators"
	checkoutsvc "github.com/kisansetu/kisansetu-server/internal/checkout"
	ordersvc "github.com/kisansetu/kisansetu-server/internal/orders"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
)

type initiatePaymentRequest struct {
	CustomerEmail string                `json:"customerEmail" validate:"required,email"`
	TotalAmount   decimal.Decimal       `json:"totalAmount" validate:"required"`
	CartItems     []checkoutItemPayload `json:"cartItems" validate:"required,min=1,dive"`
}

type checkoutItemPayload struct {
	ProductID   string          `json:"productId" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpayOrderId" validate:"required"`
	PaymentID string `json:"razorpayPaymentId" validate:"required"`
	Signature string `json:"razorpaySignature" validate:"required"`
}

type updateOrderStatusRequest struct {
	OrderID        string `json:"orderId" validate:"required"`
	DeliveryStatus string `json:"deliveryStatus" validate:"required"`
}

// InitiatePayment creates a gateway order and records the pending session.
func InitiatePayment(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload initiatePaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]checkoutsvc.ItemInput, 0, len(payload.CartItems))
		for _, item := range payload.CartItems {
			items = append(items, checkoutsvc.ItemInput{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				TotalAmount: item.TotalAmount,
			})
		}

		result, err := svc.InitiatePayment(r.Context(), checkoutsvc.InitiateInput{
			CustomerEmail: payload.CustomerEmail,
			TotalAmount:   payload.TotalAmount,
			Items:         items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// VerifyAndCreateOrder validates the gateway callback signature and promotes
// the pending session to a confirmed order.
func VerifyAndCreateOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload verifyPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.VerifyAndCreateOrder(r.Context(), checkoutsvc.VerifyInput{
			GatewayOrderID: payload.OrderID,
			PaymentID:      payload.PaymentID,
			Signature:      payload.Signature,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// GetCustomerOrders lists one customer's orders with item detail.
func GetCustomerOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		email, err := validators.RequireQueryString(r, "email")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.GetCustomerOrders(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// GetFarmerOrders lists orders containing the farmer's products.
func GetFarmerOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		email, err := validators.RequireQueryString(r, "email")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.GetFarmerOrders(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// GetAllOrders returns the flat admin listing.
func GetAllOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		out, err := svc.GetAllOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// UpdateOrderStatus sets the delivery status of one order.
func UpdateOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseDeliveryStatus(payload.DeliveryStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery status"))
			return
		}

		if err := svc.UpdateOrderStatus(r.Context(), payload.OrderID, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"orderId":        payload.OrderID,
			"deliveryStatus": status.String(),
		})
	}
}
