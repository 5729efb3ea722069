package interfaces

import (
	"context"
	"gestao_atendimentos/internal/domain/entities"
)

//go:generate mockgen -source=dataset_store_interface.go -destination=mocks/dataset_store_interface_mock.go -package=mock_interfaces

// IDatasetStore abstracts persistence of the whole dataset document.
//
// Contract:
//   - Load returns entities.DefaultDataset() when nothing was stored yet.
//   - Load returns an error wrapping entities.ErrCorruptDataset when the stored
//     document cannot be decoded; callers must not fall back to a default.
//   - Save replaces the stored document in one atomic write.
type IDatasetStore interface {
	Load(ctx context.Context) (entities.Dataset, error)
	Save(ctx context.Context, ds entities.Dataset) error
	Driver() string
}
