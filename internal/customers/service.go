package customers

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

// Service exposes customer profile operations.
type Service interface {
	List(ctx context.Context) ([]CustomerDTO, error)
	GetByID(ctx context.Context, id string) (*CustomerDTO, error)
	GetByEmail(ctx context.Context, email string) (*CustomerDTO, error)
	Create(ctx context.Context, input CustomerInput) (*CustomerDTO, error)
	Update(ctx context.Context, id string, input CustomerInput) error
	Delete(ctx context.Context, id string) error
}

// CustomerInput is the validated payload for creating or updating a profile.
// ProfileImage accepts an inline data URI, an absolute URL, or a stored path.
type CustomerInput struct {
	FirstName      string
	LastName       string
	Phone          string
	AlternatePhone string
	ProfileImage   string
	Email          string
}

// CustomerDTO is the read shape for customer profiles. ProfileImageURL is
// rehydrated from the stored relative path.
type CustomerDTO struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName,omitempty"`
	Phone           string `json:"phone,omitempty"`
	AlternatePhone  string `json:"alternatePhone,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Email           string `json:"email"`
}

type imageStore interface {
	Ingest(value string) (string, error)
	PublicURL(relative string) string
}

type service struct {
	repo   *Repository
	images imageStore
}

// NewService constructs the customers service.
func NewService(repo *Repository, images imageStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	if images == nil {
		return nil, fmt.Errorf("image store required")
	}
	return &service{repo: repo, images: images}, nil
}

func (s *service) List(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing customers")
	}
	out := make([]CustomerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toDTO(row))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*CustomerDTO, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading customer")
	}
	dto := s.toDTO(*row)
	return &dto, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*CustomerDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	row, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading customer")
	}
	dto := s.toDTO(*row)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CustomerInput) (*CustomerDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	imagePath, err := s.images.Ingest(input.ProfileImage)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "processing profile image")
	}

	row := &models.Customer{
		ID:             uuid.NewString(),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Phone:          strings.TrimSpace(input.Phone),
		AlternatePhone: strings.TrimSpace(input.AlternatePhone),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
	}
	if imagePath != "" {
		row.ProfileImagePath = &imagePath
	}

	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "creating customer")
	}
	dto := s.toDTO(*row)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id string, input CustomerInput) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if err := validateInput(input); err != nil {
		return err
	}

	imagePath, err := s.images.Ingest(input.ProfileImage)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "processing profile image")
	}

	row := &models.Customer{
		ID:             id,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Phone:          strings.TrimSpace(input.Phone),
		AlternatePhone: strings.TrimSpace(input.AlternatePhone),
	}
	if imagePath != "" {
		row.ProfileImagePath = &imagePath
	}

	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating customer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting customer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	return nil
}

func validateInput(input CustomerInput) error {
	switch {
	case strings.TrimSpace(input.FirstName) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "firstName is required")
	case strings.TrimSpace(input.Email) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	return nil
}

func (s *service) toDTO(row models.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:             row.ID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Phone:          row.Phone,
		AlternatePhone: row.AlternatePhone,
		Email:          row.Email,
	}
	if row.ProfileImagePath != nil {
		dto.ProfileImageURL = s.images.PublicURL(*row.ProfileImagePath)
	}
	return dto
}
