package handlers

import (
	"errors"
	"net/http"

	request "gestao_atendimentos/internal/adapter/http/dto/request"
	"gestao_atendimentos/internal/usecase"
	"gestao_atendimentos/pkg"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, proposals)
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	proposal, err := h.usecase.Update(c.Request.Context(), c.Param("number"), payload.ToEntity())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func mapProposalError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrProposalNotFound) {
		return notFound("PROPOSAL_NOT_FOUND", "Proposal not found")
	}
	return mapDatasetError(err)
}
