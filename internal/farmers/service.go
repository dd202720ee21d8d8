package farmers

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

// Service exposes farmer profile operations.
type Service interface {
	List(ctx context.Context) ([]FarmerDTO, error)
	GetByEmail(ctx context.Context, email string) (*FarmerDTO, error)
	Create(ctx context.Context, input FarmerInput) (*FarmerDTO, error)
	Update(ctx context.Context, id string, input FarmerInput) error
	Delete(ctx context.Context, id string) error
}

// FarmerInput is the validated payload for creating or updating a profile.
type FarmerInput struct {
	FirstName       string
	LastName        string
	Mobile          string
	AlternateMobile string
	AccountNumber   string
	IFSC            string
	ProfileImage    string
	Email           string
}

// FarmerDTO is the read shape for farmer profiles.
type FarmerDTO struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	AlternateMobile string `json:"alternateMobile,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty"`
	IFSC            string `json:"ifsc,omitempty"`
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

// NewService constructs the farmers service.
func NewService(repo *Repository, images imageStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("farmers repository required")
	}
	if images == nil {
		return nil, fmt.Errorf("image store required")
	}
	return &service{repo: repo, images: images}, nil
}

func (s *service) List(ctx context.Context) ([]FarmerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing farmers")
	}
	out := make([]FarmerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toDTO(row))
	}
	return out, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*FarmerDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	row, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading farmer")
	}
	dto := s.toDTO(*row)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input FarmerInput) (*FarmerDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	imagePath, err := s.images.Ingest(input.ProfileImage)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "processing profile image")
	}

	row := &models.Farmer{
		ID:              uuid.NewString(),
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Mobile:          strings.TrimSpace(input.Mobile),
		AlternateMobile: strings.TrimSpace(input.AlternateMobile),
		AccountNumber:   strings.TrimSpace(input.AccountNumber),
		IFSC:            strings.ToUpper(strings.TrimSpace(input.IFSC)),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
	}
	if imagePath != "" {
		row.ProfileImagePath = &imagePath
	}

	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "creating farmer")
	}
	dto := s.toDTO(*row)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id string, input FarmerInput) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "farmer id is required")
	}
	if err := validateInput(input); err != nil {
		return err
	}

	imagePath, err := s.images.Ingest(input.ProfileImage)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "processing profile image")
	}

	row := &models.Farmer{
		ID:              id,
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Mobile:          strings.TrimSpace(input.Mobile),
		AlternateMobile: strings.TrimSpace(input.AlternateMobile),
		AccountNumber:   strings.TrimSpace(input.AccountNumber),
		IFSC:            strings.ToUpper(strings.TrimSpace(input.IFSC)),
	}
	if imagePath != "" {
		row.ProfileImagePath = &imagePath
	}

	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating farmer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "farmer id is required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting farmer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
	}
	return nil
}

func validateInput(input FarmerInput) error {
	switch {
	case strings.TrimSpace(input.FirstName) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "firstName is required")
	case strings.TrimSpace(input.Email) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	return nil
}

func (s *service) toDTO(row models.Farmer) FarmerDTO {
	dto := FarmerDTO{
		ID:              row.ID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Mobile:          row.Mobile,
		AlternateMobile: row.AlternateMobile,
		AccountNumber:   row.AccountNumber,
		IFSC:            row.IFSC,
		Email:           row.Email,
	}
	if row.ProfileImagePath != nil {
		dto.ProfileImageURL = s.images.PublicURL(*row.ProfileImagePath)
	}
	return dto
}
