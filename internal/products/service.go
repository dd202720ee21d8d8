package products

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

// Service exposes product listing operations.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	ListByFarmerEmail(ctx context.Context, email string) ([]ProductDTO, error)
	Create(ctx context.Context, input ProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id string, input ProductInput) error
	Delete(ctx context.Context, id string) error
}

// ProductInput is the validated payload for creating or updating a listing.
type ProductInput struct {
	FarmerEmail    string
	Name           string
	ProfileImage   string
	NormalPrice    int
	BulkPrice      int
	ProductType    string
	Rating         int
	SoldInUnit     string
	RemainingStock int
}

// ProductDTO is the read shape for product listings.
type ProductDTO struct {
	ID              string `json:"id"`
	FarmerEmail     string `json:"farmerEmail"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	NormalPrice     int    `json:"normalPrice"`
	BulkPrice       int    `json:"bulkPrice"`
	ProductType     string `json:"productType,omitempty"`
	Rating          int    `json:"rating"`
	SoldInUnit      string `json:"soldInUnit,omitempty"`
	RemainingStock  int    `json:"remainingStock"`
}

type imageStore interface {
	Ingest(value string) (string, error)
	PublicURL(relative string) string
}

type service struct {
	repo   *Repository
	images imageStore
}

// NewService constructs the products service.
func NewService(repo *Repository, images imageStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if images == nil {
		return nil, fmt.Errorf("image store required")
	}
	return &service{repo: repo, images: images}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return s.toDTOs(rows), nil
}

func (s *service) ListByFarmerEmail(ctx context.Context, email string) ([]ProductDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	rows, err := s.repo.ListByFarmerEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing farmer products")
	}
	return s.toDTOs(rows), nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	imagePath, err := s.images.Ingest(input.ProfileImage)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "processing product image")
	}

	row := &models.Product{
		ID:             uuid.NewString(),
		FarmerEmail:    strings.ToLower(strings.TrimSpace(input.FarmerEmail)),
		Name:           strings.TrimSpace(input.Name),
		NormalPrice:    input.NormalPrice,
		BulkPrice:      input.BulkPrice,
		ProductType:    strings.TrimSpace(input.ProductType),
		Rating:         input.Rating,
		SoldInUnit:     strings.TrimSpace(input.SoldInUnit),
		RemainingStock: input.RemainingStock,
	}
	if imagePath != "" {
		row.ProfileImagePath = &imagePath
	}

	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	dto := s.toDTO(*row)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id string, input ProductInput) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := validateInput(input); err != nil {
		return err
	}

	imagePath, err := s.images.Ingest(input.ProfileImage)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "processing product image")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	row := &models.Product{
		ID:             id,
		Name:           strings.TrimSpace(input.Name),
		NormalPrice:    input.NormalPrice,
		BulkPrice:      input.BulkPrice,
		ProductType:    strings.TrimSpace(input.ProductType),
		Rating:         input.Rating,
		SoldInUnit:     strings.TrimSpace(input.SoldInUnit),
		RemainingStock: input.RemainingStock,
	}
	if imagePath != "" {
		row.ProfileImagePath = &imagePath
	} else {
		row.ProfileImagePath = existing.ProfileImagePath
	}

	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func validateInput(input ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	case strings.TrimSpace(input.FarmerEmail) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "farmerEmail is required")
	case input.NormalPrice <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "normalPrice must be positive")
	case input.RemainingStock < 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "remainingStock cannot be negative")
	}
	return nil
}

func (s *service) toDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toDTO(row))
	}
	return out
}

func (s *service) toDTO(row models.Product) ProductDTO {
	dto := ProductDTO{
		ID:             row.ID,
		FarmerEmail:    row.FarmerEmail,
		Name:           row.Name,
		NormalPrice:    row.NormalPrice,
		BulkPrice:      row.BulkPrice,
		ProductType:    row.ProductType,
		Rating:         row.Rating,
		SoldInUnit:     row.SoldInUnit,
		RemainingStock: row.RemainingStock,
	}
	if row.ProfileImagePath != nil {
		dto.ProfileImageURL = s.images.PublicURL(*row.ProfileImagePath)
	}
	return dto
}
