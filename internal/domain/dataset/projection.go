package dataset

import (
	"errors"

	"gestao_atendimentos/internal/domain/entities"
)

// The proposal and consultant embedded in an engagement are cached
// projections. They are rewritten on every write to either side and never
// read back to resolve the reference.

// OnProposalWritten overwrites the proposal snapshot of every engagement that
// references p. It returns the new dataset and how many engagements changed.
func OnProposalWritten(ds entities.Dataset, p entities.Proposal) (entities.Dataset, int) {
	out := ds
	out.Engagements = make([]entities.Engagement, len(ds.Engagements))
	touched := 0
	for i, e := range ds.Engagements {
		if e.ProposalNumber != nil && *e.ProposalNumber == p.Number {
			snap := p
			e.ProposalSnapshot = &snap
			touched++
		}
		out.Engagements[i] = e
	}
	return out, touched
}

// OnConsultantWritten is the consultant counterpart of OnProposalWritten.
func OnConsultantWritten(ds entities.Dataset, c entities.Consultant) (entities.Dataset, int) {
	out := ds
	out.Engagements = make([]entities.Engagement, len(ds.Engagements))
	touched := 0
	for i, e := range ds.Engagements {
		if e.ConsultantName != nil && *e.ConsultantName == c.Name {
			snap := c.Clone()
			e.ConsultantSnapshot = &snap
			touched++
		}
		out.Engagements[i] = e
	}
	return out, touched
}

// ResolveForEngagement embeds the current proposal and consultant referenced
// by candidate. Unresolvable references leave the snapshot absent; they are
// reported through the returned error, which always matches
// ErrReferenceNotFound and never means the candidate is unusable.
func ResolveForEngagement(ds entities.Dataset, candidate entities.Engagement) (entities.Engagement, error) {
	out := candidate.Clone()
	perr := resolveProposal(ds, &out)
	cerr := resolveConsultant(ds, &out)
	return out, errors.Join(perr, cerr)
}

func resolveProposal(ds entities.Dataset, e *entities.Engagement) error {
	e.ProposalSnapshot = nil
	if e.ProposalNumber == nil {
		return nil
	}
	p, _, ok := Proposals(ds).FindByKey(*e.ProposalNumber)
	if !ok {
		return &KeyError{Collection: "proposals", Key: *e.ProposalNumber, Err: ErrReferenceNotFound}
	}
	e.ProposalSnapshot = &p
	return nil
}

func resolveConsultant(ds entities.Dataset, e *entities.Engagement) error {
	e.ConsultantSnapshot = nil
	if e.ConsultantName == nil {
		return nil
	}
	c, _, ok := Consultants(ds).FindByKey(*e.ConsultantName)
	if !ok {
		return &KeyError{Collection: "consultants", Key: *e.ConsultantName, Err: ErrReferenceNotFound}
	}
	snap := c.Clone()
	e.ConsultantSnapshot = &snap
	return nil
}
