package usecase

import (
	"context"
	"strings"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/logging"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=engagement_usecase.go -destination=../adapter/http/handlers/mocks/engagement_usecase_mock.go -package=mocks

// EngagementFilter narrows List. Empty fields and dataset.AllFilter both
// match everything.
type EngagementFilter struct {
	Status     string
	Consultant string
	Stage      string
}

// EngagementView is an engagement as listed, with its labels resolved
// against the current stages.
type EngagementView struct {
	Engagement entities.Engagement
	StageLabel string
	Label      string
}

// EngagementResult is a written engagement together with the references that
// could not be resolved when it was written.
type EngagementResult struct {
	Engagement entities.Engagement
	Warnings   []string
}

type IEngagementUseCase interface {
	List(ctx context.Context, filter EngagementFilter) ([]EngagementView, error)
	GetByID(ctx context.Context, id string) (EngagementView, error)
	Create(ctx context.Context, e entities.Engagement) (EngagementResult, error)
	CreateWithProposal(ctx context.Context, p entities.Proposal, e entities.Engagement) (EngagementResult, error)
	Update(ctx context.Context, id string, e entities.Engagement) (EngagementResult, error)
	Options(ctx context.Context) (dataset.Options, error)
}

type EngagementUseCase struct {
	session *Session
	log     zerolog.Logger
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(session *Session) *EngagementUseCase {
	return &EngagementUseCase{session: session, log: logging.For("engagement", "usecase")}
}

func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return dataset.AllFilter
	}
	return v
}

func viewOf(ds entities.Dataset, e entities.Engagement) EngagementView {
	return EngagementView{
		Engagement: e,
		StageLabel: dataset.StageLabelFor(ds, e),
		Label:      dataset.EngagementLabel(e),
	}
}

func (u *EngagementUseCase) List(ctx context.Context, filter EngagementFilter) ([]EngagementView, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return nil, err
	}
	matched := dataset.FilterEngagements(ds,
		filterValue(filter.Status),
		filterValue(filter.Consultant),
		filterValue(filter.Stage),
	)
	views := make([]EngagementView, 0, len(matched))
	for _, e := range matched {
		views = append(views, viewOf(ds, e))
	}
	return views, nil
}

func (u *EngagementUseCase) GetByID(ctx context.Context, id string) (EngagementView, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return EngagementView{}, err
	}
	e, _, ok := dataset.Engagements(ds).FindByKey(strings.TrimSpace(id))
	if !ok {
		return EngagementView{}, ErrEngagementNotFound
	}
	return viewOf(ds, e), nil
}

func (u *EngagementUseCase) Create(ctx context.Context, e entities.Engagement) (EngagementResult, error) {
	var res EngagementResult
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, created, unresolved, err := dataset.AddEngagement(ds, e)
		if err != nil {
			return ds, err
		}
		res = EngagementResult{Engagement: created, Warnings: warnings(unresolved)}
		return out, nil
	})
	return u.finish("create", res, err)
}

func (u *EngagementUseCase) CreateWithProposal(ctx context.Context, p entities.Proposal, e entities.Engagement) (EngagementResult, error) {
	var res EngagementResult
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, created, unresolved, err := dataset.AddProposalAndEngagement(ds, p, e)
		if err != nil {
			return ds, err
		}
		res = EngagementResult{Engagement: created, Warnings: warnings(unresolved)}
		return out, nil
	})
	u.session.metrics.Mutation("proposal", "create", err)
	return u.finish("create_with_proposal", res, err)
}

func (u *EngagementUseCase) Update(ctx context.Context, id string, e entities.Engagement) (EngagementResult, error) {
	id = strings.TrimSpace(id)
	var res EngagementResult
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, updated, unresolved, err := dataset.ReplaceEngagement(ds, id, e)
		if err != nil {
			return ds, err
		}
		res = EngagementResult{Engagement: updated, Warnings: warnings(unresolved)}
		return out, nil
	})
	return u.finish("update", res, notFoundAs(err, ErrEngagementNotFound))
}

func (u *EngagementUseCase) finish(op string, res EngagementResult, err error) (EngagementResult, error) {
	u.session.metrics.Mutation("engagement", op, err)
	if err != nil {
		u.log.Warn().Err(err).Str("operation", op).Msg("write rejected")
		return EngagementResult{}, err
	}
	if len(res.Warnings) > 0 {
		u.session.metrics.Unresolved(op)
		u.log.Warn().Str("id", res.Engagement.ID).Strs("unresolved", res.Warnings).Msg("engagement saved with dangling references")
	}
	u.log.Info().Str("id", res.Engagement.ID).Str("operation", op).Msg("engagement saved")
	return res, nil
}

func (u *EngagementUseCase) Options(ctx context.Context) (dataset.Options, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return dataset.Options{}, err
	}
	return dataset.SelectionOptions(ds), nil
}

// warnings flattens the joined reference errors into messages.
func warnings(err error) []string {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, e.Error())
	}
	return out
}
