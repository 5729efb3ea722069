package dataset

import (
	"fmt"

	"gestao_atendimentos/internal/domain/entities"
)

// AllFilter disables a filter position.
const AllFilter = "Todos"

// StageLabel is the "{code} - {description}" label shown in stage pickers.
func StageLabel(s entities.Stage) string {
	return fmt.Sprintf("%s - %s", s.Code, s.Description)
}

// StageLabelFor resolves the current label of e's stage, or "" when the
// stage is unset or unknown.
func StageLabelFor(ds entities.Dataset, e entities.Engagement) string {
	if e.StageCode == nil {
		return ""
	}
	if s, _, ok := Stages(ds).FindByKey(*e.StageCode); ok {
		return StageLabel(s)
	}
	return ""
}

// EngagementLabel is the "{proposalNumber} - {companyName}" label used to
// pick an engagement for editing.
func EngagementLabel(e entities.Engagement) string {
	return fmt.Sprintf("%s - %s", entities.Ref(e.ProposalNumber), e.CompanyName)
}

// FilterEngagements returns the engagements matching all three filters, in
// insertion order. Each argument equal to AllFilter matches everything. The
// stage filter is compared against the label joined from the current
// stages, not against a cached copy.
func FilterEngagements(ds entities.Dataset, status, consultantName, stageLabel string) []entities.Engagement {
	labels := make(map[string]string, len(ds.Stages))
	for _, s := range ds.Stages {
		if _, seen := labels[s.Code]; !seen {
			labels[s.Code] = StageLabel(s)
		}
	}

	out := make([]entities.Engagement, 0, len(ds.Engagements))
	for _, e := range ds.Engagements {
		if status != AllFilter && string(e.CheckStatus) != status {
			continue
		}
		if consultantName != AllFilter && entities.Ref(e.ConsultantName) != consultantName {
			continue
		}
		if stageLabel != AllFilter && labels[entities.Ref(e.StageCode)] != stageLabel {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Options are the values offered by selection inputs.
type Options struct {
	Statuses        []string `json:"statuses"`
	ConsultantNames []string `json:"consultantNames"`
	ProposalNumbers []string `json:"proposalNumbers"`
	StageLabels     []string `json:"stageLabels"`
}

// SelectionOptions lists the values for the filter and form pickers,
// skipping records with an empty key.
func SelectionOptions(ds entities.Dataset) Options {
	opts := Options{
		Statuses:        []string{string(entities.CheckStatusNaoLancado), string(entities.CheckStatusLancado)},
		ConsultantNames: []string{},
		ProposalNumbers: []string{},
		StageLabels:     []string{},
	}
	for _, c := range ds.Consultants {
		if c.Name != "" {
			opts.ConsultantNames = append(opts.ConsultantNames, c.Name)
		}
	}
	for _, p := range ds.Proposals {
		if p.Number != "" {
			opts.ProposalNumbers = append(opts.ProposalNumbers, p.Number)
		}
	}
	for _, s := range ds.Stages {
		if s.Code != "" {
			opts.StageLabels = append(opts.StageLabels, StageLabel(s))
		}
	}
	return opts
}

// Summary counts the records of each collection.
type Summary struct {
	Engagements int `json:"engagements" yaml:"engagements"`
	Proposals   int `json:"proposals" yaml:"proposals"`
	Consultants int `json:"consultants" yaml:"consultants"`
	Stages      int `json:"stages" yaml:"stages"`
}

func Summarize(ds entities.Dataset) Summary {
	return Summary{
		Engagements: len(ds.Engagements),
		Proposals:   len(ds.Proposals),
		Consultants: len(ds.Consultants),
		Stages:      len(ds.Stages),
	}
}
