package handlers

import (
	"errors"
	"net/http"

	request "gestao_atendimentos/internal/adapter/http/dto/request"
	response "gestao_atendimentos/internal/adapter/http/dto/response"
	"gestao_atendimentos/internal/usecase"
	"gestao_atendimentos/pkg"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	usecase usecase.IEngagementUseCase
}

func NewEngagementHandler(uc usecase.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{usecase: uc}
}

// ListEngagements filters by the status, consultant and stage query
// parameters. A missing parameter, or "Todos", matches everything; stage is
// the "{code} - {description}" label.
func (h *EngagementHandler) ListEngagements(c *gin.Context) {
	filter := usecase.EngagementFilter{
		Status:     c.Query("status"),
		Consultant: c.Query("consultant"),
		Stage:      c.Query("stage"),
	}
	views, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapEngagementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEngagementViews(views))
}

func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEngagementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEngagementView(view))
}

func (h *EngagementHandler) CreateEngagement(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapEngagementError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEngagementResult(res))
}

func (h *EngagementHandler) CreateEngagementWithProposal(c *gin.Context) {
	var payload request.EngagementWithProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := h.usecase.CreateWithProposal(c.Request.Context(), payload.Proposal.ToEntity(), payload.Engagement.ToEntity())
	if err != nil {
		writeError(c, mapEngagementError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEngagementResult(res))
}

func (h *EngagementHandler) UpdateEngagement(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapEngagementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEngagementResult(res))
}

func (h *EngagementHandler) GetOptions(c *gin.Context) {
	opts, err := h.usecase.Options(c.Request.Context())
	if err != nil {
		writeError(c, mapEngagementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOptions(opts))
}

func mapEngagementError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrEngagementNotFound) {
		return notFound("ENGAGEMENT_NOT_FOUND", "Engagement not found")
	}
	return mapDatasetError(err)
}
