package routes

import (
	"gestao_atendimentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStages      = "/stages"
	PathConsultants = "/consultants"
	PathProposals   = "/proposals"
	PathEngagements = "/engagements"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Stage      *handlers.StageHandler
	Consultant *handlers.ConsultantHandler
	Proposal   *handlers.ProposalHandler
	Engagement *handlers.EngagementHandler
	Export     *handlers.ExportHandler
}

func addDatasetRoutes(rg *gin.RouterGroup, h Handlers) {
	stages := rg.Group(PathStages)
	{
		stages.GET("", h.Stage.ListStages)
		stages.POST("", h.Stage.CreateStage)
		stages.PUT("/:code", h.Stage.UpdateStage)
	}

	consultants := rg.Group(PathConsultants)
	{
		consultants.GET("", h.Consultant.ListConsultants)
		consultants.POST("", h.Consultant.CreateConsultant)
		consultants.GET("/:name", h.Consultant.GetConsultant)
		consultants.PUT("/:name", h.Consultant.UpdateConsultant)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.GET("", h.Proposal.ListProposals)
		proposals.POST("", h.Proposal.CreateProposal)
		proposals.GET("/:number", h.Proposal.GetProposal)
		proposals.PUT("/:number", h.Proposal.UpdateProposal)
	}

	engagements := rg.Group(PathEngagements)
	{
		engagements.GET("", h.Engagement.ListEngagements)
		engagements.POST("", h.Engagement.CreateEngagement)
		engagements.POST("/with-proposal", h.Engagement.CreateEngagementWithProposal)
		engagements.GET("/:id", h.Engagement.GetEngagement)
		engagements.PUT("/:id", h.Engagement.UpdateEngagement)
	}

	rg.GET("/options", h.Engagement.GetOptions)
	rg.GET("/export", h.Export.DownloadExport)
	rg.POST("/export/publish", h.Export.PublishExport)
	rg.GET("/stats", h.Export.GetStats)
}
