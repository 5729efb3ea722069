package usecase

import (
	"context"
	"strings"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/logging"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=proposal_usecase.go -destination=../adapter/http/handlers/mocks/proposal_usecase_mock.go -package=mocks

// IProposalUseCase manages commercial proposals. Like consultants, every
// write is propagated to the engagements that reference the proposal number.
type IProposalUseCase interface {
	List(ctx context.Context) ([]entities.Proposal, error)
	GetByNumber(ctx context.Context, number string) (entities.Proposal, error)
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Update(ctx context.Context, number string, p entities.Proposal) (entities.Proposal, error)
}

type ProposalUseCase struct {
	session *Session
	log     zerolog.Logger
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(session *Session) *ProposalUseCase {
	return &ProposalUseCase{session: session, log: logging.For("proposal", "usecase")}
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Proposals(ds).List(), nil
}

func (u *ProposalUseCase) GetByNumber(ctx context.Context, number string) (entities.Proposal, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return entities.Proposal{}, err
	}
	p, _, ok := dataset.Proposals(ds).FindByKey(strings.TrimSpace(number))
	if !ok {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	var stored entities.Proposal
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, touched, err := dataset.AddProposal(ds, p)
		if err != nil {
			return ds, err
		}
		stored, _, _ = dataset.Proposals(out).FindByKey(strings.TrimSpace(p.Number))
		u.session.metrics.Propagated("proposal", touched)
		u.log.Debug().Str("number", stored.Number).Int("engagements", touched).Msg("snapshot propagated")
		return out, nil
	})
	u.session.metrics.Mutation("proposal", "create", err)
	if err != nil {
		u.log.Warn().Err(err).Str("number", p.Number).Msg("create rejected")
		return entities.Proposal{}, err
	}
	u.log.Info().Str("number", stored.Number).Msg("proposal created")
	return stored, nil
}

func (u *ProposalUseCase) Update(ctx context.Context, number string, p entities.Proposal) (entities.Proposal, error) {
	number = strings.TrimSpace(number)
	var stored entities.Proposal
	err := u.session.Mutate(ctx, func(ds entities.Dataset) (entities.Dataset, error) {
		out, touched, err := dataset.ReplaceProposal(ds, number, p)
		if err != nil {
			return ds, err
		}
		stored, _, _ = dataset.Proposals(out).FindByKey(number)
		u.session.metrics.Propagated("proposal", touched)
		u.log.Debug().Str("number", number).Int("engagements", touched).Msg("snapshot propagated")
		return out, nil
	})
	u.session.metrics.Mutation("proposal", "update", err)
	if err != nil {
		u.log.Warn().Err(err).Str("number", number).Msg("update rejected")
		return entities.Proposal{}, notFoundAs(err, ErrProposalNotFound)
	}
	u.log.Info().Str("number", number).Msg("proposal updated")
	return stored, nil
}
