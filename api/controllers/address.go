package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kisansetu/kisansetu-server/api/responses"
	"github.com/kisansetu/kisansetu-server/api/validators"
	addresssvc "github.com/kisansetu/kisansetu-server/internal/addresses"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
)

type addressRequest struct {
	HouseNumber string `json:"houseNumber" validate:"required"`
	StreetName  string `json:"streetName" validate:"required"`
	Landmark    string `json:"landmark"`
	Village     string `json:"village"`
	City        string `json:"city" validate:"required"`
	TalukID     int    `json:"talukId" validate:"required"`
	DistrictID  int    `json:"districtId" validate:"required"`
	StateName   string `json:"stateName" validate:"required"`
}

func (p addressRequest) toInput() addresssvc.AddressInput {
	return addresssvc.AddressInput{
		HouseNumber: p.HouseNumber,
		StreetName:  p.StreetName,
		Landmark:    p.Landmark,
		Village:     p.Village,
		City:        p.City,
		TalukID:     p.TalukID,
		DistrictID:  p.DistrictID,
		StateName:   p.StateName,
	}
}

// GetAddress lists every stored address.
func GetAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		out, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// PostAddress creates an address.
func PostAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		var payload addressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// UpdateAddress replaces the fields of one address.
func UpdateAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "address id is required"))
			return
		}

		var payload addressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Update(r.Context(), id, payload.toInput()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id})
	}
}

// DeleteAddress removes one address.
func DeleteAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "address id is required"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id})
	}
}
