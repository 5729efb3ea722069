package dataset

import (
	"strings"

	"gestao_atendimentos/internal/domain/entities"
)

func normalizeConsultant(c entities.Consultant) (entities.Consultant, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return c, missing("name")
	}
	if c.TaxID != nil {
		c.TaxID = entities.OptionalString(strings.TrimSpace(*c.TaxID))
	}
	return c, nil
}

// AddConsultant appends c and refreshes the snapshot of engagements that
// already named it. It returns the number of engagements refreshed.
func AddConsultant(ds entities.Dataset, c entities.Consultant) (entities.Dataset, int, error) {
	c, err := normalizeConsultant(c)
	if err != nil {
		return ds, 0, err
	}
	col, err := Consultants(ds).Append(c)
	if err != nil {
		return ds, 0, err
	}
	out, touched := OnConsultantWritten(ds, c)
	out.Consultants = col.Items()
	return out, touched, nil
}

// ReplaceConsultant replaces the consultant named name with c and propagates
// the new record.
func ReplaceConsultant(ds entities.Dataset, name string, c entities.Consultant) (entities.Dataset, int, error) {
	c, err := normalizeConsultant(c)
	if err != nil {
		return ds, 0, err
	}
	if c.Name != name {
		return ds, 0, &KeyError{Collection: "consultants", Key: name, Err: ErrKeyChanged}
	}
	col := Consultants(ds)
	_, idx, ok := col.FindByKey(name)
	if !ok {
		return ds, 0, &KeyError{Collection: "consultants", Key: name, Err: ErrNotFound}
	}
	col, err = col.ReplaceAt(idx, c)
	if err != nil {
		return ds, 0, err
	}
	out, touched := OnConsultantWritten(ds, c)
	out.Consultants = col.Items()
	return out, touched, nil
}
