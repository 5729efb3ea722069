package entities

// Proposal is a commercial offer (proposta) referenced by engagements.
//
// Domain notes:
//   - Number is the unique key.
//   - CompanyName, TaxID and Product are required.
//   - ContractedHours is never negative.
type Proposal struct {
	Number          string `json:"number"`
	CompanyName     string `json:"companyName"`
	TaxID           string `json:"taxId"`
	Product         string `json:"product"`
	ContractedHours int    `json:"contractedHours"`
	Date            Date   `json:"date"`
}
