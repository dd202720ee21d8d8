package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

// Service exposes shopping cart operations.
type Service interface {
	List(ctx context.Context) ([]CartLineDTO, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]CartLineDTO, error)
	Insert(ctx context.Context, input CartLineInput) (*CartLineDTO, error)
	Update(ctx context.Context, input CartLineInput) error
	DeleteByProductID(ctx context.Context, email, productID string) error
}

// CartLineInput is the validated payload for inserting or updating a line.
type CartLineInput struct {
	ProductID     string
	CustomerEmail string
	Quantity      int
	TotalAmount   decimal.Decimal
}

// CartLineDTO is the read shape for cart lines.
type CartLineDTO struct {
	ID            uint            `json:"id"`
	ProductID     string          `json:"productId"`
	CustomerEmail string          `json:"customerEmail"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

type service struct {
	repo *Repository
}

// NewService constructs the cart service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CartLineDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing cart lines")
	}
	return toDTOs(rows), nil
}

func (s *service) ListByCustomerEmail(ctx context.Context, email string) ([]CartLineDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	rows, err := s.repo.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing customer cart")
	}
	return toDTOs(rows), nil
}

func (s *service) Insert(ctx context.Context, input CartLineInput) (*CartLineDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	row := &models.CartLine{
		ProductID:     input.ProductID,
		CustomerEmail: strings.ToLower(strings.TrimSpace(input.CustomerEmail)),
		Quantity:      input.Quantity,
		TotalAmount:   input.TotalAmount,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting cart line")
	}
	dto := toDTO(*row)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, input CartLineInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	affected, err := s.repo.UpdateQuantity(ctx, input.CustomerEmail, input.ProductID, input.Quantity, input.TotalAmount)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating cart line")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}
	return nil
}

func (s *service) DeleteByProductID(ctx context.Context, email, productID string) error {
	if strings.TrimSpace(email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if strings.TrimSpace(productID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "productId is required")
	}

	affected, err := s.repo.DeleteByProductID(ctx, email, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting cart line")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}
	return nil
}

func validateInput(input CartLineInput) error {
	switch {
	case strings.TrimSpace(input.ProductID) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "productId is required")
	case strings.TrimSpace(input.CustomerEmail) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "customerEmail is required")
	case input.Quantity <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	case input.TotalAmount.Sign() <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "totalAmount must be positive")
	}
	return nil
}

func toDTOs(rows []models.CartLine) []CartLineDTO {
	out := make([]CartLineDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out
}

func toDTO(row models.CartLine) CartLineDTO {
	return CartLineDTO{
		ID:            row.ID,
		ProductID:     row.ProductID,
		CustomerEmail: row.CustomerEmail,
		Quantity:      row.Quantity,
		TotalAmount:   row.TotalAmount,
	}
}
