package entities

// Stage is a step of the sales pipeline (etapa).
//
// Domain notes:
//   - Code is the unique key of the collection.
//   - A stage becomes immutable once an engagement references its code.
//   - Stages are never deleted.
type Stage struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DefaultStages is the pipeline seeded into a fresh dataset.
func DefaultStages() []Stage {
	return []Stage{
		{Code: "1", Description: "Primeiro Contato"},
		{Code: "2", Description: "Análise de Necessidades"},
		{Code: "3", Description: "Proposta Enviada"},
		{Code: "4", Description: "Fechamento"},
	}
}
