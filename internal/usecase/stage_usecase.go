package usecase

import (
	"context"
	"strings"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/logging"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=stage_usecase.go -destination=../adapter/http/handlers/mocks/stage_usecase_mock.go -package=mocks

// IStageUseCase manages the sales pipeline stages.
//
// Stages can be created and, while no engagement points at them, re-described.
// They are never deleted.
type IStageUseCase interface {
	List(ctx context.Context) ([]entities.Stage, error)
	Create(ctx context.Context, s entities.Stage) (entities.Stage, error)
	Update(ctx context.Context, code string, s entities.Stage) (entities.Stage, error)
}

type StageUseCase struct {
	session *Session
	log     zerolog.Logger
}

var _ IStageUseCase = (*StageUseCase)(nil)

func NewStageUseCase(session *Session) *StageUseCase {
	return &StageUseCase{session: session, log: logging.For("stage", "usecase")}
}

func (u *StageUseCase) List(ctx context.Context) ([]entities.Stage, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Stages(ds).List(), nil
}

func (u *StageUseCase) Create(ctx context.Context, s entities.Stage) (entities.Stage, error) {
	s.Code = strings.TrimSpace(s.Code)
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		return dataset.AddStage(ds, s)
	})
	u.session.metrics.Mutation("stage", "create", err)
	if err != nil {
		u.log.Warn().Err(err).Str("code", s.Code).Msg("create rejected")
		return entities.Stage{}, err
	}
	u.log.Info().Str("code", s.Code).Msg("stage created")
	return s, nil
}

func (u *StageUseCase) Update(ctx context.Context, code string, s entities.Stage) (entities.Stage, error) {
	code = strings.TrimSpace(code)
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		if _, _, ok := dataset.Stages(ds).FindByKey(code); !ok {
			return ds, ErrStageNotFound
		}
		if dataset.StageReferenced(ds, code) {
			return ds, ErrStageReferenced
		}
		return dataset.ReplaceStage(ds, code, s)
	})
	u.session.metrics.Mutation("stage", "update", err)
	if err != nil {
		u.log.Warn().Err(err).Str("code", code).Msg("update rejected")
		return entities.Stage{}, notFoundAs(err, ErrStageNotFound)
	}
	u.log.Info().Str("code", code).Msg("stage updated")
	s.Code = strings.TrimSpace(s.Code)
	return s, nil
}
