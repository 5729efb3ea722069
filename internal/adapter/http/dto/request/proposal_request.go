package request

import "gestao_atendimentos/internal/domain/entities"

// ProposalRequest carries a proposal as typed in the form. Required fields
// are checked by the domain so the response can name the missing one.
type ProposalRequest struct {
	Number          string        `json:"number"`
	CompanyName     string        `json:"companyName"`
	TaxID           string        `json:"taxId"`
	Product         string        `json:"product"`
	ContractedHours int           `json:"contractedHours"`
	Date            entities.Date `json:"date" swaggertype:"string" example:"2024-03-01"`
}

func (r ProposalRequest) ToEntity() entities.Proposal {
	return entities.Proposal{
		Number:          r.Number,
		CompanyName:     r.CompanyName,
		TaxID:           r.TaxID,
		Product:         r.Product,
		ContractedHours: r.ContractedHours,
		Date:            r.Date,
	}
}
