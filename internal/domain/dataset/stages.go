package dataset

import (
	"strings"

	"gestao_atendimentos/internal/domain/entities"
)

func validateStage(s entities.Stage) error {
	if strings.TrimSpace(s.Code) == "" {
		return missing("code")
	}
	if strings.TrimSpace(s.Description) == "" {
		return missing("description")
	}
	return nil
}

// AddStage appends s. A code already in use is rejected with ErrDuplicateKey
// and ds is returned untouched.
func AddStage(ds entities.Dataset, s entities.Stage) (entities.Dataset, error) {
	s.Code = strings.TrimSpace(s.Code)
	if err := validateStage(s); err != nil {
		return ds, err
	}
	stages, err := Stages(ds).Append(s)
	if err != nil {
		return ds, err
	}
	ds.Stages = stages.Items()
	return ds, nil
}

// ReplaceStage swaps the stage stored under code for s. The code itself
// cannot change.
func ReplaceStage(ds entities.Dataset, code string, s entities.Stage) (entities.Dataset, error) {
	s.Code = strings.TrimSpace(s.Code)
	if err := validateStage(s); err != nil {
		return ds, err
	}
	if s.Code != code {
		return ds, &KeyError{Collection: "stages", Key: code, Err: ErrKeyChanged}
	}
	col := Stages(ds)
	_, idx, ok := col.FindByKey(code)
	if !ok {
		return ds, &KeyError{Collection: "stages", Key: code, Err: ErrNotFound}
	}
	col, err := col.ReplaceAt(idx, s)
	if err != nil {
		return ds, err
	}
	ds.Stages = col.Items()
	return ds, nil
}

// StageReferenced reports whether any engagement points at code.
func StageReferenced(ds entities.Dataset, code string) bool {
	for _, e := range ds.Engagements {
		if e.StageCode != nil && *e.StageCode == code {
			return true
		}
	}
	return false
}
