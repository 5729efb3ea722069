package handlers

import (
	"fmt"
	"net/http"

	response "gestao_atendimentos/internal/adapter/http/dto/response"
	"gestao_atendimentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// DownloadExport serves the dataset document as an attachment. The bytes are
// the ones the file store writes.
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	doc, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		writeError(c, mapDatasetError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.usecase.FileName()))
	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

func (h *ExportHandler) PublishExport(c *gin.Context) {
	location, err := h.usecase.Publish(c.Request.Context())
	if err != nil {
		writeError(c, mapDatasetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.PublishResponse{Location: location})
}

func (h *ExportHandler) GetStats(c *gin.Context) {
	sum, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapDatasetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(sum))
}
