package controllers

import (
	"net/http"

	"github.com/kisansetu/kisansetu-server/api/responses"
	"github.com/kisansetu/kisansetu-server/api/validators"
	regionsvc "github.com/kisansetu/kisansetu-server/internal/regions"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
)

type talukRequest struct {
	ID         int    `json:"id"`
	Name       string `json:"name" validate:"required"`
	DistrictID int    `json:"districtId" validate:"required"`
}

// GetTaluk lists taluks for a district.
func GetTaluk(svc regionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "region service unavailable"))
			return
		}

		districtID, err := validators.RequireQueryInt(r, "districtId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.ListTaluks(r.Context(), districtID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// SaveTaluk creates a taluk under an existing district.
func SaveTaluk(svc regionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "region service unavailable"))
			return
		}

		var payload talukRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.AddTaluk(r.Context(), regionsvc.TalukInput{
			ID:         payload.ID,
			Name:       payload.Name,
			DistrictID: payload.DistrictID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// TalukUpdate renames or moves a taluk.
func TalukUpdate(svc regionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "region service unavailable"))
			return
		}

		id, err := parseIntParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload talukRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateTaluk(r.Context(), id, regionsvc.TalukInput{
			Name:       payload.Name,
			DistrictID: payload.DistrictID,
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"id": id})
	}
}

// TalukDelete removes a taluk.
func TalukDelete(svc regionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "region service unavailable"))
			return
		}

		id, err := parseIntParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteTaluk(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"id": id})
	}
}
