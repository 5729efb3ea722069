package response

import "gestao_atendimentos/internal/domain/dataset"

type PublishResponse struct {
	Location string `json:"location"`
}

type StatsResponse struct {
	Engagements int `json:"engagements"`
	Proposals   int `json:"proposals"`
	Consultants int `json:"consultants"`
	Stages      int `json:"stages"`
}

func FromSummary(s dataset.Summary) StatsResponse {
	return StatsResponse{
		Engagements: s.Engagements,
		Proposals:   s.Proposals,
		Consultants: s.Consultants,
		Stages:      s.Stages,
	}
}

type OptionsResponse struct {
	Statuses        []string `json:"statuses"`
	ConsultantNames []string `json:"consultantNames"`
	ProposalNumbers []string `json:"proposalNumbers"`
	StageLabels     []string `json:"stageLabels"`
	AllFilter       string   `json:"allFilter"`
}

func FromOptions(o dataset.Options) OptionsResponse {
	return OptionsResponse{
		Statuses:        o.Statuses,
		ConsultantNames: o.ConsultantNames,
		ProposalNumbers: o.ProposalNumbers,
		StageLabels:     o.StageLabels,
		AllFilter:       dataset.AllFilter,
	}
}
