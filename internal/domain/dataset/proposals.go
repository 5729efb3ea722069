package dataset

import (
	"strings"

	"gestao_atendimentos/internal/domain/entities"
)

func normalizeProposal(p entities.Proposal) (entities.Proposal, error) {
	p.Number = strings.TrimSpace(p.Number)
	switch {
	case p.Number == "":
		return p, missing("number")
	case strings.TrimSpace(p.CompanyName) == "":
		return p, missing("companyName")
	case strings.TrimSpace(p.TaxID) == "":
		return p, missing("taxId")
	case strings.TrimSpace(p.Product) == "":
		return p, missing("product")
	case p.ContractedHours < 0:
		return p, invalid("contractedHours")
	}
	if p.Date.IsZero() {
		p.Date = entities.Today()
	}
	return p, nil
}

// AddProposal appends p and refreshes the snapshot of engagements that
// already referenced its number.
func AddProposal(ds entities.Dataset, p entities.Proposal) (entities.Dataset, int, error) {
	p, err := normalizeProposal(p)
	if err != nil {
		return ds, 0, err
	}
	col, err := Proposals(ds).Append(p)
	if err != nil {
		return ds, 0, err
	}
	out, touched := OnProposalWritten(ds, p)
	out.Proposals = col.Items()
	return out, touched, nil
}

// ReplaceProposal replaces the proposal stored under number with p and
// propagates it.
func ReplaceProposal(ds entities.Dataset, number string, p entities.Proposal) (entities.Dataset, int, error) {
	p, err := normalizeProposal(p)
	if err != nil {
		return ds, 0, err
	}
	if p.Number != number {
		return ds, 0, &KeyError{Collection: "proposals", Key: number, Err: ErrKeyChanged}
	}
	col := Proposals(ds)
	_, idx, ok := col.FindByKey(number)
	if !ok {
		return ds, 0, &KeyError{Collection: "proposals", Key: number, Err: ErrNotFound}
	}
	col, err = col.ReplaceAt(idx, p)
	if err != nil {
		return ds, 0, err
	}
	out, touched := OnProposalWritten(ds, p)
	out.Proposals = col.Items()
	return out, touched, nil
}
