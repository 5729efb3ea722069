package request

import "gestao_atendimentos/internal/domain/entities"

// EngagementRequest is the editable part of an engagement. Snapshots and the
// id are never accepted from clients.
type EngagementRequest struct {
	CheckStatus     string        `json:"checkStatus" example:"Não Lançado"`
	ProposalNumber  *string       `json:"proposalNumber"`
	CompanyName     string        `json:"companyName"`
	StageCode       *string       `json:"stageCode"`
	Notes           *string       `json:"notes"`
	VisitTime       string        `json:"visitTime" example:"14:30"`
	VisitDate       entities.Date `json:"visitDate" swaggertype:"string" example:"2024-03-02"`
	ConsultantName  *string       `json:"consultantName"`
	EngagementTaxID string        `json:"engagementTaxId"`
	CNPJ            string        `json:"cnpj"`
	Product         string        `json:"product"`
	EngagementTime  *string       `json:"engagementTime"`
	Date            entities.Date `json:"date" swaggertype:"string" example:"2024-03-02"`
}

func (r EngagementRequest) ToEntity() entities.Engagement {
	return entities.Engagement{
		CheckStatus:     entities.CheckStatus(r.CheckStatus),
		ProposalNumber:  r.ProposalNumber,
		CompanyName:     r.CompanyName,
		StageCode:       r.StageCode,
		Notes:           r.Notes,
		VisitTime:       r.VisitTime,
		VisitDate:       r.VisitDate,
		ConsultantName:  r.ConsultantName,
		EngagementTaxID: r.EngagementTaxID,
		CNPJ:            r.CNPJ,
		Product:         r.Product,
		EngagementTime:  r.EngagementTime,
		Date:            r.Date,
	}
}

// EngagementWithProposalRequest creates a proposal and its first engagement
// together. The engagement's proposalNumber is ignored.
type EngagementWithProposalRequest struct {
	Proposal   ProposalRequest   `json:"proposal"`
	Engagement EngagementRequest `json:"engagement"`
}
