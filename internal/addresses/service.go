package addresses

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

// Service exposes the delivery address operations.
type Service interface {
	List(ctx context.Context) ([]AddressDTO, error)
	Create(ctx context.Context, input AddressInput) (*AddressDTO, error)
	Update(ctx context.Context, id string, input AddressInput) error
	Delete(ctx context.Context, id string) error
}

// AddressInput is the validated payload for creating or updating an address.
type AddressInput struct {
	HouseNumber string
	StreetName  string
	Landmark    string
	Village     string
	City        string
	TalukID     int
	DistrictID  int
	StateName   string
}

// AddressDTO is the read shape for addresses.
type AddressDTO struct {
	ID          string `json:"id"`
	HouseNumber string `json:"houseNumber"`
	StreetName  string `json:"streetName"`
	Landmark    string `json:"landmark,omitempty"`
	Village     string `json:"village,omitempty"`
	City        string `json:"city"`
	TalukID     int    `json:"talukId"`
	DistrictID  int    `json:"districtId"`
	StateName   string `json:"stateName"`
}

type service struct {
	repo *Repository
}

// NewService constructs the addresses service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("addresses repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]AddressDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing addresses")
	}
	out := make([]AddressDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input AddressInput) (*AddressDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	row := &models.Address{
		ID:          uuid.NewString(),
		HouseNumber: strings.TrimSpace(input.HouseNumber),
		StreetName:  strings.TrimSpace(input.StreetName),
		Landmark:    strings.TrimSpace(input.Landmark),
		Village:     strings.TrimSpace(input.Village),
		City:        strings.TrimSpace(input.City),
		TalukID:     input.TalukID,
		DistrictID:  input.DistrictID,
		StateName:   strings.TrimSpace(input.StateName),
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating address")
	}

	dto := toDTO(*row)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id string, input AddressInput) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address id is required")
	}
	if err := validateInput(input); err != nil {
		return err
	}

	row := &models.Address{
		ID:          id,
		HouseNumber: strings.TrimSpace(input.HouseNumber),
		StreetName:  strings.TrimSpace(input.StreetName),
		Landmark:    strings.TrimSpace(input.Landmark),
		Village:     strings.TrimSpace(input.Village),
		City:        strings.TrimSpace(input.City),
		TalukID:     input.TalukID,
		DistrictID:  input.DistrictID,
		StateName:   strings.TrimSpace(input.StateName),
	}
	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating address")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address id is required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting address")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}
	return nil
}

func validateInput(input AddressInput) error {
	switch {
	case strings.TrimSpace(input.HouseNumber) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "houseNumber is required")
	case strings.TrimSpace(input.StreetName) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "streetName is required")
	case strings.TrimSpace(input.City) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "city is required")
	case strings.TrimSpace(input.StateName) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "stateName is required")
	case input.TalukID <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "talukId is required")
	case input.DistrictID <= 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "districtId is required")
	}
	return nil
}

func toDTO(row models.Address) AddressDTO {
	return AddressDTO{
		ID:          row.ID,
		HouseNumber: row.HouseNumber,
		StreetName:  row.StreetName,
		Landmark:    row.Landmark,
		Village:     row.Village,
		City:        row.City,
		TalukID:     row.TalukID,
		DistrictID:  row.DistrictID,
		StateName:   row.StateName,
	}
}
