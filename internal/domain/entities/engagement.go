package entities

// CheckStatus tells whether an engagement has been posted (lançado) to the
// billing side.
type CheckStatus string

const (
	CheckStatusNaoLancado CheckStatus = "Não Lançado"
	CheckStatusLancado    CheckStatus = "Lançado"
)

func (s CheckStatus) Valid() bool {
	return s == CheckStatusNaoLancado || s == CheckStatusLancado
}

// Engagement is one customer-service interaction (atendimento).
//
// References:
//   - ProposalNumber -> Proposal.Number
//   - StageCode      -> Stage.Code
//   - ConsultantName -> Consultant.Name
//
// All three are nullable and none is enforced. ProposalSnapshot and
// ConsultantSnapshot are point-in-time copies of the referenced records and
// are only refreshed by the consistency engine; StageCode is joined live.
//
// ID is a surrogate generated at creation so updates never depend on the
// position of the record in a filtered or reordered listing.
type Engagement struct {
	ID                 string      `json:"id"`
	CheckStatus        CheckStatus `json:"checkStatus"`
	ProposalNumber     *string     `json:"proposalNumber"`
	CompanyName        string      `json:"companyName"`
	StageCode          *string     `json:"stageCode"`
	Notes              *string     `json:"notes"`
	VisitTime          string      `json:"visitTime"`
	VisitDate          Date        `json:"visitDate"`
	ConsultantName     *string     `json:"consultantName"`
	EngagementTaxID    string      `json:"engagementTaxId"`
	CNPJ               string      `json:"cnpj"`
	Product            string      `json:"product"`
	EngagementTime     *string     `json:"engagementTime"`
	Date               Date        `json:"date"`
	ProposalSnapshot   *Proposal   `json:"proposalSnapshot"`
	ConsultantSnapshot *Consultant `json:"consultantSnapshot"`
}

// Clone returns a deep copy of e.
func (e Engagement) Clone() Engagement {
	out := e
	out.ProposalNumber = cloneString(e.ProposalNumber)
	out.StageCode = cloneString(e.StageCode)
	out.Notes = cloneString(e.Notes)
	out.ConsultantName = cloneString(e.ConsultantName)
	out.EngagementTime = cloneString(e.EngagementTime)
	if e.ProposalSnapshot != nil {
		p := *e.ProposalSnapshot
		out.ProposalSnapshot = &p
	}
	if e.ConsultantSnapshot != nil {
		c := e.ConsultantSnapshot.Clone()
		out.ConsultantSnapshot = &c
	}
	return out
}

// Ref returns the value of a nullable reference, or "" when it is null.
func Ref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptionalString returns nil for blank input, mirroring how the record forms
// persist untouched optional fields.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
