package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/kisansetu/kisansetu-server/internal/cart"
)

type stubCart struct {
	lines      []cartsvc.CartLineDTO
	inserted   *cartsvc.CartLineDTO
	err        error
	lastInput  cartsvc.CartLineInput
	lastEmail  string
	lastDelete string
}

func (s *stubCart) List(_ context.Context) ([]cartsvc.CartLineDTO, error) {
	return s.lines, s.err
}

func (s *stubCart) ListByCustomerEmail(_ context.Context, email string) ([]cartsvc.CartLineDTO, error) {
	s.lastEmail = email
	return s.lines, s.err
}

func (s *stubCart) Insert(_ context.Context, input cartsvc.CartLineInput) (*cartsvc.CartLineDTO, error) {
	s.lastInput = input
	return s.inserted, s.err
}

func (s *stubCart) Update(_ context.Context, input cartsvc.CartLineInput) error {
	s.lastInput = input
	return s.err
}

func (s *stubCart) DeleteByProductID(_ context.Context, email, productID string) error {
	s.lastEmail = email
	s.lastDelete = productID
	return s.err
}

func TestGetCartByMail(t *testing.T) {
	stub := &stubCart{
		lines: []cartsvc.CartLineDTO{{ProductID: "P1", CustomerEmail: "a@b.com", Quantity: 2}},
	}
	handler := GetCartByMail(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/Cart/GetCartbyMail?email=a@b.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a@b.com", stub.lastEmail)

	var envelope struct {
		Data []cartsvc.CartLineDTO `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	require.Equal(t, "P1", envelope.Data[0].ProductID)
}

func TestGetCartByMailRequiresEmail(t *testing.T) {
	handler := GetCartByMail(&stubCart{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/Cart/GetCartbyMail", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInsertCart(t *testing.T) {
	stub := &stubCart{
		inserted: &cartsvc.CartLineDTO{ID: 1, ProductID: "P1", CustomerEmail: "a@b.com", Quantity: 2},
	}
	handler := InsertCart(stub, nil)

	body := `{"productId":"P1","customerEmail":"a@b.com","quantity":2,"totalAmount":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/Cart/InsertCart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "P1", stub.lastInput.ProductID)
	require.True(t, decimal.NewFromInt(100).Equal(stub.lastInput.TotalAmount))
}

func TestInsertCartRejectsZeroQuantity(t *testing.T) {
	handler := InsertCart(&stubCart{}, nil)

	body := `{"productId":"P1","customerEmail":"a@b.com","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/Cart/InsertCart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCartByProductID(t *testing.T) {
	stub := &stubCart{}
	handler := DeleteCartByProductID(stub, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/Cart/DeleteCartByProductId?email=a@b.com&productId=P1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a@b.com", stub.lastEmail)
	require.Equal(t, "P1", stub.lastDelete)
}
