package response

import (
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/usecase"
)

// EngagementResponse is an engagement plus the labels the listing shows. The
// stage label is joined from the current stages on every read.
type EngagementResponse struct {
	entities.Engagement
	StageLabel string `json:"stageLabel"`
	Label      string `json:"label"`
}

// EngagementWriteResponse is returned by create and update. Warnings lists
// references that did not resolve; the engagement was saved regardless.
type EngagementWriteResponse struct {
	Engagement entities.Engagement `json:"engagement"`
	Warnings   []string            `json:"warnings"`
}

func FromEngagementView(v usecase.EngagementView) EngagementResponse {
	return EngagementResponse{Engagement: v.Engagement, StageLabel: v.StageLabel, Label: v.Label}
}

func FromEngagementViews(vs []usecase.EngagementView) []EngagementResponse {
	out := make([]EngagementResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromEngagementView(v))
	}
	return out
}

func FromEngagementResult(r usecase.EngagementResult) EngagementWriteResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return EngagementWriteResponse{Engagement: r.Engagement, Warnings: warnings}
}
