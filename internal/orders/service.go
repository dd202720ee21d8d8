package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

// Service exposes order queries and delivery status updates.
type Service interface {
	GetCustomerOrders(ctx context.Context, email string) ([]OrderDTO, error)
	GetFarmerOrders(ctx context.Context, email string) ([]OrderDTO, error)
	GetAllOrders(ctx context.Context) ([]OrderSummaryDTO, error)
	UpdateOrderStatus(ctx context.Context, gatewayOrderID string, status enums.DeliveryStatus) error
}

// OrderDTO is an order joined with its item snapshot and product detail.
type OrderDTO struct {
	GatewayOrderID string          `json:"orderId"`
	CustomerEmail  string          `json:"customerEmail"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentID      string          `json:"paymentId"`
	OrderDate      time.Time       `json:"orderDate"`
	Status         string          `json:"status"`
	DeliveryStatus string          `json:"deliveryStatus"`
	Items          []OrderItemDTO  `json:"items"`
}

// OrderItemDTO is one snapshot line with the product's display fields.
// ProductImage carries the inline re-encoded image when the file exists.
type OrderItemDTO struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName,omitempty"`
	ProductImage string          `json:"productImage,omitempty"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// OrderSummaryDTO is the flat admin listing shape.
type OrderSummaryDTO struct {
	GatewayOrderID string          `json:"orderId"`
	CustomerEmail  string          `json:"customerEmail"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentID      string          `json:"paymentId"`
	OrderDate      time.Time       `json:"orderDate"`
	Status         string          `json:"status"`
	DeliveryStatus string          `json:"deliveryStatus"`
}

type productReader interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	ListByFarmerEmail(ctx context.Context, email string) ([]models.Product, error)
}

type imageReader interface {
	ReadDataURI(relative string) (string, error)
}

type service struct {
	repo     *Repository
	products productReader
	images   imageReader
}

// NewService constructs the orders service.
func NewService(repo *Repository, products productReader, images imageReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	if images == nil {
		return nil, fmt.Errorf("image reader required")
	}
	return &service{repo: repo, products: products, images: images}, nil
}

func (s *service) GetCustomerOrders(ctx context.Context, email string) ([]OrderDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	rows, err := s.repo.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing customer orders")
	}
	return s.hydrate(ctx, rows, nil)
}

func (s *service) GetFarmerOrders(ctx context.Context, email string) ([]OrderDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	farmerProducts, err := s.products.ListByFarmerEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing farmer products")
	}
	if len(farmerProducts) == 0 {
		return []OrderDTO{}, nil
	}

	productIDs := make([]string, 0, len(farmerProducts))
	owned := make(map[string]struct{}, len(farmerProducts))
	for _, p := range farmerProducts {
		productIDs = append(productIDs, p.ID)
		owned[p.ID] = struct{}{}
	}

	items, err := s.repo.ListItemsByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing farmer order items")
	}
	if len(items) == 0 {
		return []OrderDTO{}, nil
	}

	orderIDs := make([]string, 0, len(items))
	seen := map[string]struct{}{}
	for _, item := range items {
		if _, ok := seen[item.GatewayOrderID]; ok {
			continue
		}
		seen[item.GatewayOrderID] = struct{}{}
		orderIDs = append(orderIDs, item.GatewayOrderID)
	}

	rows, err := s.repo.FindByIDs(ctx, orderIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading farmer orders")
	}
	return s.hydrate(ctx, rows, owned)
}

func (s *service) GetAllOrders(ctx context.Context) ([]OrderSummaryDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	out := make([]OrderSummaryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, OrderSummaryDTO{
			GatewayOrderID: row.GatewayOrderID,
			CustomerEmail:  row.CustomerEmail,
			TotalAmount:    row.TotalAmount,
			PaymentID:      row.PaymentID,
			OrderDate:      row.OrderDate,
			Status:         row.Status,
			DeliveryStatus: row.DeliveryStatus.String(),
		})
	}
	return out, nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, gatewayOrderID string, status enums.DeliveryStatus) error {
	if strings.TrimSpace(gatewayOrderID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "orderId is required")
	}
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery status")
	}

	affected, err := s.repo.UpdateDeliveryStatus(ctx, gatewayOrderID, status)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating delivery status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}

// hydrate joins orders with their items and product display fields. When
// ownedProducts is non-nil, only items for those products are included.
func (s *service) hydrate(ctx context.Context, rows []models.Order, ownedProducts map[string]struct{}) ([]OrderDTO, error) {
	if len(rows) == 0 {
		return []OrderDTO{}, nil
	}

	orderIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.GatewayOrderID)
	}

	items, err := s.repo.ListItems(ctx, orderIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order items")
	}

	productIDs := make([]string, 0, len(items))
	seen := map[string]struct{}{}
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}

	productRows, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading products for orders")
	}
	productsByID := make(map[string]models.Product, len(productRows))
	for _, p := range productRows {
		productsByID[p.ID] = p
	}

	itemsByOrder := make(map[string][]OrderItemDTO, len(rows))
	for _, item := range items {
		if ownedProducts != nil {
			if _, ok := ownedProducts[item.ProductID]; !ok {
				continue
			}
		}

		dto := OrderItemDTO{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			TotalAmount: item.TotalAmount,
		}
		if p, ok := productsByID[item.ProductID]; ok {
			dto.ProductName = p.Name
			if p.ProfileImagePath != nil {
				inline, err := s.images.ReadDataURI(*p.ProfileImagePath)
				if err == nil {
					dto.ProductImage = inline
				}
			}
		}
		itemsByOrder[item.GatewayOrderID] = append(itemsByOrder[item.GatewayOrderID], dto)
	}

	out := make([]OrderDTO, 0, len(rows))
	for _, row := range rows {
		orderItems := itemsByOrder[row.GatewayOrderID]
		if ownedProducts != nil && len(orderItems) == 0 {
			continue
		}
		out = append(out, OrderDTO{
			GatewayOrderID: row.GatewayOrderID,
			CustomerEmail:  row.CustomerEmail,
			TotalAmount:    row.TotalAmount,
			PaymentID:      row.PaymentID,
			OrderDate:      row.OrderDate,
			Status:         row.Status,
			DeliveryStatus: row.DeliveryStatus.String(),
			Items:          orderItems,
		})
	}
	return out, nil
}
