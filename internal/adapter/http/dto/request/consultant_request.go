package request

import "gestao_atendimentos/internal/domain/entities"

type ConsultantRequest struct {
	Name  string  `json:"name" binding:"required"`
	TaxID *string `json:"taxId"`
}

func (r ConsultantRequest) ToEntity() entities.Consultant {
	return entities.Consultant{Name: r.Name, TaxID: r.TaxID}
}
