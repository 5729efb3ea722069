package handlers

import (
	"errors"
	"net/http"

	request "gestao_atendimentos/internal/adapter/http/dto/request"
	"gestao_atendimentos/internal/usecase"
	"gestao_atendimentos/pkg"

	"github.com/gin-gonic/gin"
)

type StageHandler struct {
	usecase usecase.IStageUseCase
}

func NewStageHandler(uc usecase.IStageUseCase) *StageHandler {
	return &StageHandler{usecase: uc}
}

func (h *StageHandler) ListStages(c *gin.Context) {
	stages, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, stages)
}

func (h *StageHandler) CreateStage(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	stage, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusCreated, stage)
}

// UpdateStage re-describes a stage. Stages already used by an engagement are
// rejected with 409.
func (h *StageHandler) UpdateStage(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	stage, err := h.usecase.Update(c.Request.Context(), c.Param("code"), payload.ToEntity())
	if err != nil {
		writeError(c, mapStageError(err))
		return
	}
	c.JSON(http.StatusOK, stage)
}

func mapStageError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrStageNotFound) {
		return notFound("STAGE_NOT_FOUND", "Stage not found")
	}
	return mapDatasetError(err)
}
