package repository

import (
	"context"
	"fmt"

	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/infrastructure/database"
	"gestao_atendimentos/internal/usecase/interfaces"
)

// OpenDatasetStore builds the store selected by cfg.Driver. The returned
// close function releases database handles and is never nil.
func OpenDatasetStore(ctx context.Context, cfg config.StoreConfig) (interfaces.IDatasetStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case "", config.DriverFile:
		return NewDatasetFileRepository(cfg.FilePath), noop, nil
	case config.DriverMemory:
		return NewDatasetMemoryRepository(), noop, nil
	case config.DriverSQLite:
		s, err := NewDatasetSQLiteRepository(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.DriverPostgres:
		s, err := NewDatasetPostgresRepository(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.DriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, noop, err
		}
		return NewDatasetDynamoRepository(client, cfg.DynamoDBTable, cfg.DynamoDBKey), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
