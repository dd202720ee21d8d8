package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/api/responses"
	"github.com/kisansetu/kisansetu-server/api/validators"
	cartsvc "github.com/kisansetu/kisansetu-server/internal/cart"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
)

type cartLineRequest struct {
	ProductID     string          `json:"productId" validate:"required"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

func (p cartLineRequest) toInput() cartsvc.CartLineInput {
	return cartsvc.CartLineInput{
		ProductID:     p.ProductID,
		CustomerEmail: p.CustomerEmail,
		Quantity:      p.Quantity,
		TotalAmount:   p.TotalAmount,
	}
}

// GetCart lists every cart line across customers.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		out, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// GetCartByMail lists one customer's cart lines.
func GetCartByMail(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		email, err := validators.RequireQueryString(r, "email")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.ListByCustomerEmail(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// InsertCart adds a line to a customer's cart.
func InsertCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.Insert(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// UpdateCart changes the quantity and total of an existing line.
func UpdateCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Update(r.Context(), payload.toInput()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"productId": payload.ProductID})
	}
}

// DeleteCartByProductID removes one product's line from a customer's cart.
func DeleteCartByProductID(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		email, err := validators.RequireQueryString(r, "email")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := validators.RequireQueryString(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteByProductID(r.Context(), email, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"productId": productID})
	}
}
