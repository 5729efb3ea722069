package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/metrics"
	"gestao_atendimentos/internal/usecase/interfaces"
)

var (
	ErrStageNotFound       = errors.New("stage not found")
	ErrStageReferenced     = errors.New("stage is referenced by engagements")
	ErrConsultantNotFound  = errors.New("consultant not found")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrEngagementNotFound  = errors.New("engagement not found")
	ErrExportNotConfigured = errors.New("export publisher not configured")
)

// Session runs one load → mutate → save cycle at a time against a store.
//
// The dataset is never kept between calls: each cycle starts from Load and
// either ends with a Save of the complete result or with no Save at all.
// The mutex only serializes cycles inside this process; other processes
// writing the same store are not coordinated.
type Session struct {
	store   interfaces.IDatasetStore
	metrics *metrics.Recorder
	mu      sync.Mutex
}

func NewSession(store interfaces.IDatasetStore, rec *metrics.Recorder) *Session {
	return &Session{store: store, metrics: rec}
}

// Read loads the current dataset.
func (s *Session) Read(ctx context.Context) (entities.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Mutate loads the dataset, applies fn and saves the result. When fn fails
// nothing is saved and the stored dataset stays as it was.
func (s *Session) Mutate(ctx context.Context, fn func(ds entities.Dataset) (entities.Dataset, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(ds)
	if err != nil {
		return err
	}

	started := time.Now()
	err = s.store.Save(ctx, next)
	s.metrics.ObserveStore(s.store.Driver(), "save", started)
	return err
}

func (s *Session) load(ctx context.Context) (entities.Dataset, error) {
	started := time.Now()
	ds, err := s.store.Load(ctx)
	s.metrics.ObserveStore(s.store.Driver(), "load", started)
	return ds, err
}

// notFoundAs swaps the domain not-found error for the use-case sentinel.
func notFoundAs(err error, target error) error {
	if errors.Is(err, dataset.ErrNotFound) {
		return target
	}
	return err
}
