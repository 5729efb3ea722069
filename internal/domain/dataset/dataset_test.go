package dataset

import (
	"errors"
	"testing"
	"time"

	"gestao_atendimentos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func acmeProposal() entities.Proposal {
	return entities.Proposal{
		Number:          "P100",
		CompanyName:     "Acme",
		TaxID:           "111",
		Product:         "Consulting",
		ContractedHours: 10,
		Date:            entities.NewDate(2024, time.January, 1),
	}
}

func engagementFor(proposal, consultant string) entities.Engagement {
	e := entities.Engagement{
		CheckStatus: entities.CheckStatusNaoLancado,
		CompanyName: "Acme",
		VisitTime:   "09:30",
		VisitDate:   entities.NewDate(2024, time.January, 2),
		Date:        entities.NewDate(2024, time.January, 2),
	}
	if proposal != "" {
		e.ProposalNumber = strPtr(proposal)
	}
	if consultant != "" {
		e.ConsultantName = strPtr(consultant)
	}
	return e
}

func TestCollection(t *testing.T) {
	ds := entities.DefaultDataset()
	col := Stages(ds)

	assert.Equal(t, 4, col.Len())
	s, idx, ok := col.FindByKey("3")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Proposta Enviada", s.Description)

	_, idx, ok = col.FindByKey("42")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	next, err := col.Append(entities.Stage{Code: "5", Description: "Pós-venda"})
	require.NoError(t, err)
	assert.Equal(t, 5, next.Len())
	assert.Equal(t, 4, col.Len(), "append must not modify the receiver")

	_, err = col.ReplaceAt(4, entities.Stage{Code: "x"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = col.ReplaceAt(-1, entities.Stage{Code: "x"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	replaced, err := col.ReplaceAt(0, entities.Stage{Code: "1", Description: "Contato"})
	require.NoError(t, err)
	assert.Equal(t, "Contato", replaced.List()[0].Description)
	assert.Equal(t, "Primeiro Contato", col.List()[0].Description)
}

func TestAddStage(t *testing.T) {
	t.Run("duplicate code rejected and collection unchanged", func(t *testing.T) {
		ds := entities.Dataset{}
		ds, err := AddStage(ds, entities.Stage{Code: "1", Description: "Primeiro Contato"})
		require.NoError(t, err)

		before := append([]entities.Stage{}, ds.Stages...)
		after, err := AddStage(ds, entities.Stage{Code: "1", Description: "X"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateKey))

		var keyErr *KeyError
		require.ErrorAs(t, err, &keyErr)
		assert.Equal(t, "1", keyErr.Key)

		assert.Equal(t, before, after.Stages)
		require.Len(t, after.Stages, 1)
		assert.Equal(t, "Primeiro Contato", after.Stages[0].Description)
	})

	t.Run("every seeded code is a duplicate", func(t *testing.T) {
		ds := entities.DefaultDataset()
		for _, s := range entities.DefaultStages() {
			after, err := AddStage(ds, entities.Stage{Code: s.Code, Description: "outra"})
			assert.ErrorIs(t, err, ErrDuplicateKey)
			assert.Equal(t, ds.Stages, after.Stages)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ds := entities.DefaultDataset()
		_, err := AddStage(ds, entities.Stage{Code: " ", Description: "x"})
		assert.ErrorIs(t, err, ErrMissingRequiredField)

		_, err = AddStage(ds, entities.Stage{Code: "9"})
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "description", fe.Field)
	})
}

func TestReplaceStage(t *testing.T) {
	ds := entities.DefaultDataset()

	out, err := ReplaceStage(ds, "2", entities.Stage{Code: "2", Description: "Diagnóstico"})
	require.NoError(t, err)
	assert.Equal(t, "Diagnóstico", out.Stages[1].Description)
	assert.Equal(t, "Análise de Necessidades", ds.Stages[1].Description)

	_, err = ReplaceStage(ds, "2", entities.Stage{Code: "7", Description: "x"})
	assert.ErrorIs(t, err, ErrKeyChanged)

	_, err = ReplaceStage(ds, "9", entities.Stage{Code: "9", Description: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOnProposalWritten(t *testing.T) {
	ds := entities.DefaultDataset()
	ds.Engagements = []entities.Engagement{
		engagementFor("P100", ""),
		engagementFor("P200", ""),
		engagementFor("", ""),
		engagementFor("P100", ""),
	}
	p := acmeProposal()

	out, touched := OnProposalWritten(ds, p)
	assert.Equal(t, 2, touched)
	for i, e := range out.Engagements {
		if entities.Ref(e.ProposalNumber) == "P100" {
			require.NotNil(t, e.ProposalSnapshot, "engagement %d", i)
			assert.Equal(t, p, *e.ProposalSnapshot)
		} else {
			assert.Nil(t, e.ProposalSnapshot, "engagement %d", i)
		}
	}
	for _, e := range ds.Engagements {
		assert.Nil(t, e.ProposalSnapshot, "input dataset must be untouched")
	}
}

func TestOnConsultantWritten(t *testing.T) {
	ds := entities.DefaultDataset()
	ds.Engagements = []entities.Engagement{engagementFor("", "Ana"), engagementFor("", "Bruno")}
	c := entities.Consultant{Name: "Ana", TaxID: strPtr("123")}

	out, touched := OnConsultantWritten(ds, c)
	assert.Equal(t, 1, touched)
	require.NotNil(t, out.Engagements[0].ConsultantSnapshot)
	assert.Equal(t, c, *out.Engagements[0].ConsultantSnapshot)
	assert.Nil(t, out.Engagements[1].ConsultantSnapshot)

	*c.TaxID = "mutated"
	assert.Equal(t, "123", *out.Engagements[0].ConsultantSnapshot.TaxID, "snapshot must not alias the source")
}

func TestResolveForEngagement(t *testing.T) {
	ds := entities.DefaultDataset()
	ds, _, err := AddProposal(ds, acmeProposal())
	require.NoError(t, err)
	ds, _, err = AddConsultant(ds, entities.Consultant{Name: "Ana"})
	require.NoError(t, err)

	t.Run("both resolve", func(t *testing.T) {
		e, err := ResolveForEngagement(ds, engagementFor("P100", "Ana"))
		require.NoError(t, err)
		require.NotNil(t, e.ProposalSnapshot)
		require.NotNil(t, e.ConsultantSnapshot)
		assert.Equal(t, "Acme", e.ProposalSnapshot.CompanyName)
		assert.Equal(t, "Ana", e.ConsultantSnapshot.Name)
	})

	t.Run("dangling references clear snapshots", func(t *testing.T) {
		stale := engagementFor("P999", "Zé")
		p := acmeProposal()
		stale.ProposalSnapshot = &p
		stale.ConsultantSnapshot = &entities.Consultant{Name: "Zé"}

		e, err := ResolveForEngagement(ds, stale)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		assert.Nil(t, e.ProposalSnapshot)
		assert.Nil(t, e.ConsultantSnapshot)
		assert.Contains(t, err.Error(), "P999")
		assert.Contains(t, err.Error(), "Zé")
	})

	t.Run("null references", func(t *testing.T) {
		e, err := ResolveForEngagement(ds, engagementFor("", ""))
		require.NoError(t, err)
		assert.Nil(t, e.ProposalSnapshot)
		assert.Nil(t, e.ConsultantSnapshot)
	})
}

func TestProposalPropagationScenario(t *testing.T) {
	ds := entities.DefaultDataset()
	ds, _, err := AddProposal(ds, acmeProposal())
	require.NoError(t, err)

	ds, created, unresolved, err := AddEngagement(ds, engagementFor("P100", ""))
	require.NoError(t, err)
	require.NoError(t, unresolved)
	require.NotNil(t, created.ProposalSnapshot)
	assert.Equal(t, "Acme", created.ProposalSnapshot.CompanyName)
	assert.NotEmpty(t, created.ID)

	updated := acmeProposal()
	updated.CompanyName = "Acme Corp"
	ds, touched, err := ReplaceProposal(ds, "P100", updated)
	require.NoError(t, err)
	assert.Equal(t, 1, touched)

	e, _, ok := Engagements(ds).FindByKey(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", e.ProposalSnapshot.CompanyName)
}

func TestAddEngagement_DanglingProposalStillWritten(t *testing.T) {
	ds := entities.DefaultDataset()

	out, created, unresolved, err := AddEngagement(ds, engagementFor("P404", ""))
	require.NoError(t, err)
	assert.ErrorIs(t, unresolved, ErrReferenceNotFound)
	assert.Nil(t, created.ProposalSnapshot)
	require.Len(t, out.Engagements, 1)
	assert.Equal(t, created, out.Engagements[0])
	assert.Empty(t, ds.Engagements)
}

func TestAddEngagement_Validation(t *testing.T) {
	ds := entities.DefaultDataset()

	e := engagementFor("", "")
	e.CheckStatus = "Talvez"
	_, _, _, err := AddEngagement(ds, e)
	assert.ErrorIs(t, err, ErrInvalidField)

	e = engagementFor(" ", "")
	e.CheckStatus = ""
	e.Notes = strPtr("   ")
	_, created, _, err := AddEngagement(ds, e)
	require.NoError(t, err)
	assert.Equal(t, entities.CheckStatusNaoLancado, created.CheckStatus)
	assert.Nil(t, created.ProposalNumber)
	assert.Nil(t, created.Notes)
}

func TestReplaceEngagement(t *testing.T) {
	ds := entities.DefaultDataset()
	ds, _, err := AddConsultant(ds, entities.Consultant{Name: "Ana"})
	require.NoError(t, err)
	ds, first, _, err := AddEngagement(ds, engagementFor("", ""))
	require.NoError(t, err)
	ds, second, _, err := AddEngagement(ds, engagementFor("", ""))
	require.NoError(t, err)

	edit := engagementFor("", "Ana")
	edit.CheckStatus = entities.CheckStatusLancado
	out, updated, unresolved, err := ReplaceEngagement(ds, second.ID, edit)
	require.NoError(t, err)
	require.NoError(t, unresolved)
	assert.Equal(t, second.ID, updated.ID)
	require.NotNil(t, updated.ConsultantSnapshot)

	require.Len(t, out.Engagements, 2)
	assert.Equal(t, first.ID, out.Engagements[0].ID)
	assert.Equal(t, second.ID, out.Engagements[1].ID)
	assert.Equal(t, entities.CheckStatusLancado, out.Engagements[1].CheckStatus)

	_, _, _, err = ReplaceEngagement(ds, "missing", edit)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddProposalAndEngagement(t *testing.T) {
	ds := entities.DefaultDataset()
	ds, _, err := AddConsultant(ds, entities.Consultant{Name: "Ana"})
	require.NoError(t, err)

	e := engagementFor("", "Ana")
	out, created, unresolved, err := AddProposalAndEngagement(ds, acmeProposal(), e)
	require.NoError(t, err)
	require.NoError(t, unresolved)

	require.Len(t, out.Proposals, 1)
	require.Len(t, out.Engagements, 1)
	assert.Equal(t, "P100", entities.Ref(created.ProposalNumber))
	require.NotNil(t, created.ProposalSnapshot)
	assert.Equal(t, out.Proposals[0], *created.ProposalSnapshot)
	require.NotNil(t, created.ConsultantSnapshot)

	_, _, _, err = AddProposalAndEngagement(out, acmeProposal(), e)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestAddConsultant(t *testing.T) {
	ds := entities.DefaultDataset()
	ds.Engagements = []entities.Engagement{engagementFor("", "Ana")}

	out, touched, err := AddConsultant(ds, entities.Consultant{Name: " Ana ", TaxID: strPtr(" ")})
	require.NoError(t, err)
	assert.Equal(t, 1, touched)
	assert.Equal(t, "Ana", out.Consultants[0].Name)
	assert.Nil(t, out.Consultants[0].TaxID)
	require.NotNil(t, out.Engagements[0].ConsultantSnapshot)

	_, _, err = AddConsultant(out, entities.Consultant{Name: "Ana"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, _, err = AddConsultant(out, entities.Consultant{})
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	updated, touched, err := ReplaceConsultant(out, "Ana", entities.Consultant{Name: "Ana", TaxID: strPtr("555")})
	require.NoError(t, err)
	assert.Equal(t, 1, touched)
	assert.Equal(t, "555", *updated.Engagements[0].ConsultantSnapshot.TaxID)

	_, _, err = ReplaceConsultant(out, "Ana", entities.Consultant{Name: "Outra"})
	assert.ErrorIs(t, err, ErrKeyChanged)
	_, _, err = ReplaceConsultant(out, "Nobody", entities.Consultant{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddProposal_Validation(t *testing.T) {
	ds := entities.DefaultDataset()
	cases := []struct {
		name  string
		edit  func(p *entities.Proposal)
		field string
		err   error
	}{
		{name: "number", edit: func(p *entities.Proposal) { p.Number = "" }, field: "number", err: ErrMissingRequiredField},
		{name: "company", edit: func(p *entities.Proposal) { p.CompanyName = " " }, field: "companyName", err: ErrMissingRequiredField},
		{name: "tax id", edit: func(p *entities.Proposal) { p.TaxID = "" }, field: "taxId", err: ErrMissingRequiredField},
		{name: "product", edit: func(p *entities.Proposal) { p.Product = "" }, field: "product", err: ErrMissingRequiredField},
		{name: "hours", edit: func(p *entities.Proposal) { p.ContractedHours = -1 }, field: "contractedHours", err: ErrInvalidField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := acmeProposal()
			tc.edit(&p)
			out, _, err := AddProposal(ds, p)
			assert.ErrorIs(t, err, tc.err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
			assert.Empty(t, out.Proposals)
		})
	}

	out, _, err := AddProposal(ds, acmeProposal())
	require.NoError(t, err)
	_, _, err = AddProposal(out, acmeProposal())
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestStageReferenced(t *testing.T) {
	ds := entities.DefaultDataset()
	e := engagementFor("", "")
	e.StageCode = strPtr("2")
	ds.Engagements = []entities.Engagement{e}

	assert.True(t, StageReferenced(ds, "2"))
	assert.False(t, StageReferenced(ds, "1"))
}
