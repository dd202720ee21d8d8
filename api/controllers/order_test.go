package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	checkoutsvc "github.com/kisansetu/kisansetu-server/internal/checkout"
	ordersvc "github.com/kisansetu/kisansetu-server/internal/orders"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
	"github.com/kisansetu/kisansetu-server/pkg/types"
)

type stubCheckout struct {
	initiateResult *checkoutsvc.InitiateResult
	initiateErr    error
	verifyResult   *checkoutsvc.VerifyResult
	verifyErr      error
	lastInitiate   checkoutsvc.InitiateInput
	lastVerify     checkoutsvc.VerifyInput
}

func (s *stubCheckout) InitiatePayment(_ context.Context, input checkoutsvc.InitiateInput) (*checkoutsvc.InitiateResult, error) {
	s.lastInitiate = input
	return s.initiateResult, s.initiateErr
}

func (s *stubCheckout) VerifyAndCreateOrder(_ context.Context, input checkoutsvc.VerifyInput) (*checkoutsvc.VerifyResult, error) {
	s.lastVerify = input
	return s.verifyResult, s.verifyErr
}

type stubOrders struct {
	customerOrders []ordersvc.OrderDTO
	farmerOrders   []ordersvc.OrderDTO
	allOrders      []ordersvc.OrderSummaryDTO
	err            error
	updatedOrderID string
	updatedStatus  enums.DeliveryStatus
}

func (s *stubOrders) GetCustomerOrders(_ context.Context, email string) ([]ordersvc.OrderDTO, error) {
	return s.customerOrders, s.err
}

func (s *stubOrders) GetFarmerOrders(_ context.Context, email string) ([]ordersvc.OrderDTO, error) {
	return s.farmerOrders, s.err
}

func (s *stubOrders) GetAllOrders(_ context.Context) ([]ordersvc.OrderSummaryDTO, error) {
	return s.allOrders, s.err
}

func (s *stubOrders) UpdateOrderStatus(_ context.Context, gatewayOrderID string, status enums.DeliveryStatus) error {
	s.updatedOrderID = gatewayOrderID
	s.updatedStatus = status
	return s.err
}

func TestInitiatePaymentSuccess(t *testing.T) {
	stub := &stubCheckout{
		initiateResult: &checkoutsvc.InitiateResult{
			GatewayOrderID: "order_X",
			AmountPaise:    10000,
			Currency:       enums.CurrencyINR,
			TotalAmount:    decimal.NewFromInt(100),
		},
	}
	handler := InitiatePayment(stub, nil)

	body := `{"customerEmail":"a@b.com","totalAmount":"100","cartItems":[{"productId":"P1","quantity":2,"totalAmount":"100"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/Order/InitiatePayment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a@b.com", stub.lastInitiate.CustomerEmail)
	require.Len(t, stub.lastInitiate.Items, 1)
	require.Equal(t, "P1", stub.lastInitiate.Items[0].ProductID)

	var envelope struct {
		Data checkoutsvc.InitiateResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Equal(t, "order_X", envelope.Data.GatewayOrderID)
	require.Equal(t, int64(10000), envelope.Data.AmountPaise)
}

func TestInitiatePaymentRejectsEmptyItems(t *testing.T) {
	stub := &stubCheckout{}
	handler := InitiatePayment(stub, nil)

	body := `{"customerEmail":"a@b.com","totalAmount":"100","cartItems":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/Order/InitiatePayment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyAndCreateOrderSuccess(t *testing.T) {
	stub := &stubCheckout{
		verifyResult: &checkoutsvc.VerifyResult{
			GatewayOrderID: "order_X",
			PaymentID:      "pay_Y",
			OrderDate:      time.Now().UTC(),
			ItemCount:      1,
		},
	}
	handler := VerifyAndCreateOrder(stub, nil)

	body := `{"razorpayOrderId":"order_X","razorpayPaymentId":"pay_Y","razorpaySignature":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/Order/VerifyAndCreateOrder", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "order_X", stub.lastVerify.GatewayOrderID)
	require.Equal(t, "pay_Y", stub.lastVerify.PaymentID)
	require.Equal(t, "abc", stub.lastVerify.Signature)
}

func TestVerifyAndCreateOrderSignatureMismatch(t *testing.T) {
	stub := &stubCheckout{
		verifyErr: pkgerrors.New(pkgerrors.CodeVerification, "signature mismatch"),
	}
	handler := VerifyAndCreateOrder(stub, nil)

	body := `{"razorpayOrderId":"order_X","razorpayPaymentId":"pay_Y","razorpaySignature":"bad"}`
	req := httptest.NewRequest(http.MethodPost, "/api/Order/VerifyAndCreateOrder", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Equal(t, "VERIFICATION_FAILED", envelope.Error.Code)
}

func TestGetCustomerOrdersRequiresEmail(t *testing.T) {
	handler := GetCustomerOrders(&stubOrders{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/Order/GetCustomerOrders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomerOrdersSuccess(t *testing.T) {
	stub := &stubOrders{
		customerOrders: []ordersvc.OrderDTO{{GatewayOrderID: "order_X", CustomerEmail: "a@b.com"}},
	}
	handler := GetCustomerOrders(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/Order/GetCustomerOrders?email=a@b.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []ordersvc.OrderDTO `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	require.Equal(t, "order_X", envelope.Data[0].GatewayOrderID)
}

func TestUpdateOrderStatusParsesEnum(t *testing.T) {
	stub := &stubOrders{}
	handler := UpdateOrderStatus(stub, nil)

	body := `{"orderId":"order_X","deliveryStatus":"Shipped"}`
	req := httptest.NewRequest(http.MethodPost, "/api/Order/UpdateOrderStatus", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "order_X", stub.updatedOrderID)
	require.Equal(t, enums.DeliveryShipped, stub.updatedStatus)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	stub := &stubOrders{}
	handler := UpdateOrderStatus(stub, nil)

	body := `{"orderId":"order_X","deliveryStatus":"Teleported"}`
	req := httptest.NewRequest(http.MethodPost, "/api/Order/UpdateOrderStatus", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, stub.updatedOrderID)
}
