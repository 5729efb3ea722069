package repository

import (
	"context"
	"sync"

	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"
)

// DatasetMemoryRepository keeps the encoded document in memory. Going through
// the encoder keeps Load results independent from what was passed to Save.
type DatasetMemoryRepository struct {
	mu  sync.RWMutex
	doc []byte
}

var _ interfaces.IDatasetStore = (*DatasetMemoryRepository)(nil)

func NewDatasetMemoryRepository() *DatasetMemoryRepository {
	return &DatasetMemoryRepository{}
}

func (r *DatasetMemoryRepository) Driver() string { return config.DriverMemory }

func (r *DatasetMemoryRepository) Load(_ context.Context) (entities.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return entities.DefaultDataset(), nil
	}
	return entities.DecodeDataset(r.doc)
}

func (r *DatasetMemoryRepository) Save(_ context.Context, ds entities.Dataset) error {
	doc, err := entities.EncodeDataset(ds)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.doc = doc
	r.mu.Unlock()
	return nil
}
