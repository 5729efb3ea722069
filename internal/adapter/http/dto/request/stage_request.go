package request

import (
	"strings"

	"gestao_atendimentos/internal/domain/entities"
)

type StageRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r StageRequest) ToEntity() entities.Stage {
	return entities.Stage{
		Code:        strings.TrimSpace(r.Code),
		Description: strings.TrimSpace(r.Description),
	}
}
