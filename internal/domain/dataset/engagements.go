package dataset

import (
	"strings"

	"gestao_atendimentos/internal/domain/entities"

	"github.com/google/uuid"
)

func normalizeEngagement(e entities.Engagement) (entities.Engagement, error) {
	if e.CheckStatus == "" {
		e.CheckStatus = entities.CheckStatusNaoLancado
	}
	if !e.CheckStatus.Valid() {
		return e, invalid("checkStatus")
	}
	e.ProposalNumber = trimRef(e.ProposalNumber)
	e.StageCode = trimRef(e.StageCode)
	e.ConsultantName = trimRef(e.ConsultantName)
	e.Notes = blankToNil(e.Notes)
	e.EngagementTime = blankToNil(e.EngagementTime)
	if e.VisitDate.IsZero() {
		e.VisitDate = entities.Today()
	}
	if e.Date.IsZero() {
		e.Date = entities.Today()
	}
	return e, nil
}

func trimRef(s *string) *string {
	if s == nil {
		return nil
	}
	return entities.OptionalString(strings.TrimSpace(*s))
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// AddEngagement resolves the snapshots of e, gives it a fresh id and appends
// it. The returned error is non-nil only when the write was rejected; dangling
// references come back separately as unresolved.
func AddEngagement(ds entities.Dataset, e entities.Engagement) (out entities.Dataset, created entities.Engagement, unresolved error, err error) {
	e, err = normalizeEngagement(e)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	e.ID = uuid.NewString()
	e, unresolved = ResolveForEngagement(ds, e)
	col, err := Engagements(ds).Append(e)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	ds.Engagements = col.Items()
	return ds, e, unresolved, nil
}

// ReplaceEngagement replaces the engagement with the given id by e, after
// re-resolving its snapshots. The position in the collection is kept.
func ReplaceEngagement(ds entities.Dataset, id string, e entities.Engagement) (out entities.Dataset, updated entities.Engagement, unresolved error, err error) {
	e, err = normalizeEngagement(e)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	col := Engagements(ds)
	_, idx, ok := col.FindByKey(id)
	if !ok {
		return ds, entities.Engagement{}, nil, &KeyError{Collection: "engagements", Key: id, Err: ErrNotFound}
	}
	e.ID = id
	e, unresolved = ResolveForEngagement(ds, e)
	col, err = col.ReplaceAt(idx, e)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	ds.Engagements = col.Items()
	return ds, e, unresolved, nil
}

// AddProposalAndEngagement creates p and an engagement referencing it in one
// step. The engagement embeds p as written here rather than looking it up
// again; its consultant is resolved normally.
func AddProposalAndEngagement(ds entities.Dataset, p entities.Proposal, e entities.Engagement) (out entities.Dataset, created entities.Engagement, unresolved error, err error) {
	stored, err := normalizeProposal(p)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	withProposal, _, err := AddProposal(ds, stored)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}

	e, err = normalizeEngagement(e)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	e = e.Clone()
	e.ID = uuid.NewString()
	number := stored.Number
	e.ProposalNumber = &number
	e.ProposalSnapshot = &stored
	unresolved = resolveConsultant(withProposal, &e)

	col, err := Engagements(withProposal).Append(e)
	if err != nil {
		return ds, entities.Engagement{}, nil, err
	}
	withProposal.Engagements = col.Items()
	return withProposal, e, unresolved, nil
}
