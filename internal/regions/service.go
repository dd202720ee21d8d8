package regions

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

// Service exposes the district and taluk lookup operations.
type Service interface {
	ListDistricts(ctx context.Context) ([]DistrictDTO, error)
	AddDistrict(ctx context.Context, input DistrictInput) (*DistrictDTO, error)
	UpdateDistrict(ctx context.Context, id int, input DistrictInput) error
	DeleteDistrict(ctx context.Context, id int) error
	ListTaluks(ctx context.Context, districtID int) ([]TalukDTO, error)
	AddTaluk(ctx context.Context, input TalukInput) (*TalukDTO, error)
	UpdateTaluk(ctx context.Context, id int, input TalukInput) error
	DeleteTaluk(ctx context.Context, id int) error
}

// DistrictInput is the validated payload for creating or renaming a district.
type DistrictInput struct {
	ID   int
	Name string
}

// TalukInput is the validated payload for creating or moving a taluk.
type TalukInput struct {
	ID         int
	Name       string
	DistrictID int
}

// DistrictDTO is the read shape for districts.
type DistrictDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TalukDTO is the read shape for taluks.
type TalukDTO struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DistrictID int    `json:"districtId"`
}

type service struct {
	repo *Repository
}

// NewService constructs the regions service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("regions repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListDistricts(ctx context.Context) ([]DistrictDTO, error) {
	districts, err := s.repo.ListDistricts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing districts")
	}
	out := make([]DistrictDTO, 0, len(districts))
	for _, d := range districts {
		out = append(out, DistrictDTO{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (s *service) AddDistrict(ctx context.Context, input DistrictInput) (*DistrictDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "district name is required")
	}

	row := &models.District{ID: input.ID, Name: name}
	if _, err := s.repo.CreateDistrict(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating district")
	}
	return &DistrictDTO{ID: row.ID, Name: row.Name}, nil
}

func (s *service) UpdateDistrict(ctx context.Context, id int, input DistrictInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "district name is required")
	}

	affected, err := s.repo.UpdateDistrict(ctx, &models.District{ID: id, Name: name})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating district")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "district not found")
	}
	return nil
}

func (s *service) DeleteDistrict(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteDistrict(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting district")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "district not found")
	}
	return nil
}

func (s *service) ListTaluks(ctx context.Context, districtID int) ([]TalukDTO, error) {
	taluks, err := s.repo.ListTaluks(ctx, districtID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing taluks")
	}
	out := make([]TalukDTO, 0, len(taluks))
	for _, t := range taluks {
		out = append(out, TalukDTO{ID: t.ID, Name: t.Name, DistrictID: t.DistrictID})
	}
	return out, nil
}

func (s *service) AddTaluk(ctx context.Context, input TalukInput) (*TalukDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "taluk name is required")
	}
	if input.DistrictID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "districtId is required")
	}

	if _, err := s.repo.FindDistrict(ctx, input.DistrictID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "district not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up district")
	}

	row := &models.Taluk{ID: input.ID, Name: name, DistrictID: input.DistrictID}
	if _, err := s.repo.CreateTaluk(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating taluk")
	}
	return &TalukDTO{ID: row.ID, Name: row.Name, DistrictID: row.DistrictID}, nil
}

func (s *service) UpdateTaluk(ctx context.Context, id int, input TalukInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "taluk name is required")
	}

	affected, err := s.repo.UpdateTaluk(ctx, &models.Taluk{ID: id, Name: name, DistrictID: input.DistrictID})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating taluk")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "taluk not found")
	}
	return nil
}

func (s *service) DeleteTaluk(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteTaluk(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting taluk")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "taluk not found")
	}
	return nil
}
