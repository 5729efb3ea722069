package handlers

import (
	"errors"
	"net/http"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/usecase"
	"gestao_atendimentos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDatasetError maps the domain and use-case errors shared by every
// aggregate. Handlers check their own not-found sentinel first.
func mapDatasetError(err error) *pkg.AppError {
	var fe *dataset.FieldError
	switch {
	case errors.As(err, &fe) && errors.Is(err, dataset.ErrMissingRequiredField):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", "Missing required field: "+fe.Field, http.StatusBadRequest)
	case errors.As(err, &fe) && errors.Is(err, dataset.ErrInvalidField):
		return pkg.NewDomainErrorSimple("INVALID_FIELD", "Invalid field: "+fe.Field, http.StatusBadRequest)
	case errors.Is(err, dataset.ErrKeyChanged):
		return pkg.NewDomainErrorSimple("KEY_CHANGED", "The record key cannot be changed", http.StatusBadRequest)
	case errors.Is(err, dataset.ErrDuplicateKey):
		return pkg.NewDomainErrorSimple("DUPLICATE_KEY", "A record with this key already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrStageReferenced):
		return pkg.NewDomainErrorSimple("STAGE_REFERENCED", "Stage is used by engagements and cannot be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrExportNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_NOT_CONFIGURED", "No export destination is configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrCorruptDataset):
		return pkg.NewDomainError("CORRUPT_DATASET", "The stored dataset could not be read", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func notFound(code, message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple(code, message, http.StatusNotFound)
}
