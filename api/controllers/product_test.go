package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	productsvc "github.com/kisansetu/kisansetu-server/internal/products"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

type stubProducts struct {
	products   []productsvc.ProductDTO
	created    *productsvc.ProductDTO
	err        error
	lastID     string
	lastInput  productsvc.ProductInput
	lastEmail  string
	deletedIDs []string
}

func (s *stubProducts) List(_ context.Context) ([]productsvc.ProductDTO, error) {
	return s.products, s.err
}

func (s *stubProducts) ListByFarmerEmail(_ context.Context, email string) ([]productsvc.ProductDTO, error) {
	s.lastEmail = email
	return s.products, s.err
}

func (s *stubProducts) Create(_ context.Context, input productsvc.ProductInput) (*productsvc.ProductDTO, error) {
	s.lastInput = input
	return s.created, s.err
}

func (s *stubProducts) Update(_ context.Context, id string, input productsvc.ProductInput) error {
	s.lastID = id
	s.lastInput = input
	return s.err
}

func (s *stubProducts) Delete(_ context.Context, id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.err
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProductDataByEmail(t *testing.T) {
	stub := &stubProducts{
		products: []productsvc.ProductDTO{{ID: "P1", FarmerEmail: "muthu@example.com", Name: "Country Tomato"}},
	}
	handler := GetProductDataByEmail(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/Product/getProductDataByEmail?email=muthu@example.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "muthu@example.com", stub.lastEmail)

	var envelope struct {
		Data []productsvc.ProductDTO `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	require.Equal(t, "Country Tomato", envelope.Data[0].Name)
}

func TestPostProduct(t *testing.T) {
	stub := &stubProducts{
		created: &productsvc.ProductDTO{ID: "P1", FarmerEmail: "muthu@example.com", Name: "Country Tomato"},
	}
	handler := PostProduct(stub, nil)

	body := `{"farmerEmail":"muthu@example.com","name":"Country Tomato","normalPrice":40,"bulkPrice":32,"remainingStock":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/Product/postProduct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 40, stub.lastInput.NormalPrice)
}

func TestPostProductRejectsMissingPrice(t *testing.T) {
	handler := PostProduct(&stubProducts{}, nil)

	body := `{"farmerEmail":"muthu@example.com","name":"Country Tomato"}`
	req := httptest.NewRequest(http.MethodPost, "/api/Product/postProduct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProductUsesPathID(t *testing.T) {
	stub := &stubProducts{}
	handler := UpdateProduct(stub, nil)

	body := `{"farmerEmail":"muthu@example.com","name":"Country Tomato","normalPrice":45,"remainingStock":8}`
	req := httptest.NewRequest(http.MethodPut, "/api/Product/updateProduct/P1", strings.NewReader(body))
	req = withURLParam(req, "id", "P1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "P1", stub.lastID)
	require.Equal(t, 45, stub.lastInput.NormalPrice)
}

func TestDeleteProductNotFound(t *testing.T) {
	stub := &stubProducts{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := DeleteProduct(stub, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/Product/deleteProduct/P9", nil)
	req = withURLParam(req, "id", "P9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
