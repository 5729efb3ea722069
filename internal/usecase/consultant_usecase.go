package usecase

import (
	"context"
	"strings"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/logging"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=consultant_usecase.go -destination=../adapter/http/handlers/mocks/consultant_usecase_mock.go -package=mocks

// IConsultantUseCase manages consultants. Every write refreshes the consultant
// snapshot of the engagements naming it before the dataset is saved.
type IConsultantUseCase interface {
	List(ctx context.Context) ([]entities.Consultant, error)
	GetByName(ctx context.Context, name string) (entities.Consultant, error)
	Create(ctx context.Context, c entities.Consultant) (entities.Consultant, error)
	Update(ctx context.Context, name string, c entities.Consultant) (entities.Consultant, error)
}

type ConsultantUseCase struct {
	session *Session
	log     zerolog.Logger
}

var _ IConsultantUseCase = (*ConsultantUseCase)(nil)

func NewConsultantUseCase(session *Session) *ConsultantUseCase {
	return &ConsultantUseCase{session: session, log: logging.For("consultant", "usecase")}
}

func (u *ConsultantUseCase) List(ctx context.Context) ([]entities.Consultant, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Consultants(ds).List(), nil
}

func (u *ConsultantUseCase) GetByName(ctx context.Context, name string) (entities.Consultant, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return entities.Consultant{}, err
	}
	c, _, ok := dataset.Consultants(ds).FindByKey(strings.TrimSpace(name))
	if !ok {
		return entities.Consultant{}, ErrConsultantNotFound
	}
	return c, nil
}

func (u *ConsultantUseCase) Create(ctx context.Context, c entities.Consultant) (entities.Consultant, error) {
	var stored entities.Consultant
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, touched, err := dataset.AddConsultant(ds, c)
		if err != nil {
			return ds, err
		}
		stored, _, _ = dataset.Consultants(out).FindByKey(strings.TrimSpace(c.Name))
		u.session.metrics.Propagated("consultant", touched)
		u.log.Debug().Str("name", stored.Name).Int("engagements", touched).Msg("snapshot propagated")
		return out, nil
	})
	u.session.metrics.Mutation("consultant", "create", err)
	if err != nil {
		u.log.Warn().Err(err).Str("name", c.Name).Msg("create rejected")
		return entities.Consultant{}, err
	}
	u.log.Info().Str("name", stored.Name).Msg("consultant created")
	return stored, nil
}

func (u *ConsultantUseCase) Update(ctx context.Context, name string, c entities.Consultant) (entities.Consultant, error) {
	name = strings.TrimSpace(name)
	var stored entities.Consultant
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, touched, err := dataset.ReplaceConsultant(ds, name, c)
		if err != nil {
			return ds, err
		}
		stored, _, _ = dataset.Consultants(out).FindByKey(name)
		u.session.metrics.Propagated("consultant", touched)
		u.log.Debug().Str("name", name).Int("engagements", touched).Msg("snapshot propagated")
		return out, nil
	})
	u.session.metrics.Mutation("consultant", "update", err)
	if err != nil {
		u.log.Warn().Err(err).Str("name", name).Msg("update rejected")
		return entities.Consultant{}, notFoundAs(err, ErrConsultantNotFound)
	}
	u.log.Info().Str("name", name).Msg("consultant updated")
	return stored, nil
}
