package handlers

import (
	"errors"
	"net/http"

	request "gestao_atendimentos/internal/adapter/http/dto/request"
	"gestao_atendimentos/internal/usecase"
	"gestao_atendimentos/pkg"

	"github.com/gin-gonic/gin"
)

type ConsultantHandler struct {
	usecase usecase.IConsultantUseCase
}

func NewConsultantHandler(uc usecase.IConsultantUseCase) *ConsultantHandler {
	return &ConsultantHandler{usecase: uc}
}

func (h *ConsultantHandler) ListConsultants(c *gin.Context) {
	consultants, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapConsultantError(err))
		return
	}
	c.JSON(http.StatusOK, consultants)
}

func (h *ConsultantHandler) GetConsultant(c *gin.Context) {
	consultant, err := h.usecase.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, mapConsultantError(err))
		return
	}
	c.JSON(http.StatusOK, consultant)
}

func (h *ConsultantHandler) CreateConsultant(c *gin.Context) {
	var payload request.ConsultantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	consultant, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapConsultantError(err))
		return
	}
	c.JSON(http.StatusCreated, consultant)
}

func (h *ConsultantHandler) UpdateConsultant(c *gin.Context) {
	var payload request.ConsultantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	consultant, err := h.usecase.Update(c.Request.Context(), c.Param("name"), payload.ToEntity())
	if err != nil {
		writeError(c, mapConsultantError(err))
		return
	}
	c.JSON(http.StatusOK, consultant)
}

func mapConsultantError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrConsultantNotFound) {
		return notFound("CONSULTANT_NOT_FOUND", "Consultant not found")
	}
	return mapDatasetError(err)
}
