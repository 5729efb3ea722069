package entities

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleDataset() Dataset {
	p := Proposal{Number: "P100", CompanyName: "Acme", TaxID: "111", Product: "Consulting", ContractedHours: 10, Date: NewDate(2024, time.January, 1)}
	c := Consultant{Name: "Ana", TaxID: nil}
	return Dataset{
		Engagements: []Engagement{
			{
				ID:                 "e-1",
				CheckStatus:        CheckStatusNaoLancado,
				ProposalNumber:     strPtr("P100"),
				CompanyName:        "Acme",
				StageCode:          strPtr("1"),
				Notes:              nil,
				VisitTime:          "10:00",
				VisitDate:          NewDate(2024, time.February, 2),
				ConsultantName:     strPtr("Ana"),
				EngagementTaxID:    "999",
				CNPJ:               "12.345.678/0001-90",
				Product:            "Consulting",
				EngagementTime:     nil,
				Date:               NewDate(2024, time.February, 3),
				ProposalSnapshot:   &p,
				ConsultantSnapshot: &c,
			},
			{
				ID:          "e-2",
				CheckStatus: CheckStatusLancado,
				CompanyName: "Sem proposta",
				Notes:       strPtr("ligar de novo"),
				Date:        NewDate(2024, time.March, 4),
			},
		},
		Consultants: []Consultant{c, {Name: "Bruno", TaxID: strPtr("222")}},
		Stages:      DefaultStages(),
		Proposals:   []Proposal{p},
	}
}

func TestDefaultDataset(t *testing.T) {
	ds := DefaultDataset()
	assert.Empty(t, ds.Engagements)
	assert.Empty(t, ds.Consultants)
	assert.Empty(t, ds.Proposals)
	require.Len(t, ds.Stages, 4)
	assert.Equal(t, Stage{Code: "1", Description: "Primeiro Contato"}, ds.Stages[0])
	assert.Equal(t, Stage{Code: "4", Description: "Fechamento"}, ds.Stages[3])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ds := sampleDataset()

	b, err := EncodeDataset(ds)
	require.NoError(t, err)

	got, err := DecodeDataset(b)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestEncodeDataset_WritesExplicitNulls(t *testing.T) {
	b, err := EncodeDataset(sampleDataset())
	require.NoError(t, err)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	second := raw["engagements"][1]
	for _, field := range []string{"proposalNumber", "stageCode", "consultantName", "engagementTime", "proposalSnapshot", "consultantSnapshot", "visitDate"} {
		v, ok := second[field]
		assert.True(t, ok, "field %s must be present", field)
		assert.Nil(t, v, "field %s must be null", field)
	}
	assert.Contains(t, raw["consultants"][0], "taxId")
	assert.Nil(t, raw["consultants"][0]["taxId"])
}

func TestEncodeDataset_Deterministic(t *testing.T) {
	a, err := EncodeDataset(sampleDataset())
	require.NoError(t, err)
	b, err := EncodeDataset(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.Contains(string(a), "Análise de Necessidades"), "non-ASCII must be written literally")
	assert.True(t, strings.HasPrefix(string(a), "{\n    \"engagements\""))
}

func TestEncodeDataset_NilCollectionsBecomeArrays(t *testing.T) {
	b, err := EncodeDataset(Dataset{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"engagements":[],"consultants":[],"stages":[],"proposals":[]}`, string(b))
}

func TestDecodeDataset(t *testing.T) {
	t.Run("malformed document", func(t *testing.T) {
		_, err := DecodeDataset([]byte(`{"engagements": [`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorruptDataset))
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := DecodeDataset(nil)
		assert.ErrorIs(t, err, ErrCorruptDataset)
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := DecodeDataset([]byte(`{"stages": {"code": "1"}}`))
		assert.ErrorIs(t, err, ErrCorruptDataset)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := DecodeDataset([]byte(`{} {}`))
		assert.ErrorIs(t, err, ErrCorruptDataset)
	})

	t.Run("missing collections decode empty", func(t *testing.T) {
		ds, err := DecodeDataset([]byte(`{"stages": [{"code": "9", "description": "Outro"}]}`))
		require.NoError(t, err)
		assert.Equal(t, []Stage{{Code: "9", Description: "Outro"}}, ds.Stages)
		assert.NotNil(t, ds.Engagements)
		assert.NotNil(t, ds.Proposals)
		assert.NotNil(t, ds.Consultants)
	})

	t.Run("legacy engagements get ids", func(t *testing.T) {
		ds, err := DecodeDataset([]byte(`{"engagements": [{"companyName": "X", "date": "2024-05-06T13:14:15"}]}`))
		require.NoError(t, err)
		require.Len(t, ds.Engagements, 1)
		assert.NotEmpty(t, ds.Engagements[0].ID)
		assert.Equal(t, NewDate(2024, time.May, 6), ds.Engagements[0].Date)
	})

	t.Run("legacy ids are stable across loads", func(t *testing.T) {
		doc := []byte(`{"engagements": [{"companyName": "X"}, {"companyName": "X"}, {"id": "kept", "companyName": "Y"}]}`)
		first, err := DecodeDataset(doc)
		require.NoError(t, err)
		second, err := DecodeDataset(doc)
		require.NoError(t, err)

		for i := range first.Engagements {
			assert.Equal(t, first.Engagements[i].ID, second.Engagements[i].ID)
		}
		assert.NotEqual(t, first.Engagements[0].ID, first.Engagements[1].ID)
		assert.Equal(t, "kept", first.Engagements[2].ID)
	})

	t.Run("saved legacy ids survive the round trip", func(t *testing.T) {
		ds, err := DecodeDataset([]byte(`{"engagements": [{"companyName": "X"}]}`))
		require.NoError(t, err)
		b, err := EncodeDataset(ds)
		require.NoError(t, err)
		again, err := DecodeDataset(b)
		require.NoError(t, err)
		assert.Equal(t, ds.Engagements[0].ID, again.Engagements[0].ID)
	})

	for _, doc := range []string{"null", "[]", `"dataset"`, "42", "", "   "} {
		t.Run("non-object document "+strings.TrimSpace(doc), func(t *testing.T) {
			_, err := DecodeDataset([]byte(doc))
			assert.ErrorIs(t, err, ErrCorruptDataset)
		})
	}
}

func TestEngagementClone_IsDeep(t *testing.T) {
	e := sampleDataset().Engagements[0]
	c := e.Clone()
	*c.ProposalNumber = "changed"
	c.ProposalSnapshot.CompanyName = "changed"
	c.ConsultantSnapshot.Name = "changed"

	assert.Equal(t, "P100", *e.ProposalNumber)
	assert.Equal(t, "Acme", e.ProposalSnapshot.CompanyName)
	assert.Equal(t, "Ana", e.ConsultantSnapshot.Name)
}
