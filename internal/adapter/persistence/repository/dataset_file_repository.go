package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"
)

// DatasetFileRepository keeps the dataset as a single JSON document on disk.
//
// Writes go to a temp file in the same directory which is synced and renamed
// over the target, so a crash leaves either the old or the new document.
type DatasetFileRepository struct {
	path string
}

var _ interfaces.IDatasetStore = (*DatasetFileRepository)(nil)

func NewDatasetFileRepository(path string) *DatasetFileRepository {
	if path == "" {
		path = "database.json"
	}
	return &DatasetFileRepository{path: path}
}

func (r *DatasetFileRepository) Driver() string { return config.DriverFile }

func (r *DatasetFileRepository) Path() string { return r.path }

func (r *DatasetFileRepository) Load(ctx context.Context) (entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return entities.Dataset{}, err
	}
	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.DefaultDataset(), nil
	}
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	return entities.DecodeDataset(b)
}

func (r *DatasetFileRepository) Save(ctx context.Context, ds entities.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := entities.EncodeDataset(ds)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".dataset-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
