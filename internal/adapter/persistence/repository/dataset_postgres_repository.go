package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const postgresDriver = "pgx"

// DatasetPostgresRepository mirrors the SQLite layout on Postgres, with the
// bucket payloads kept as JSONB. Postgres does not keep key order inside
// JSONB, so Load re-encodes through the canonical document.
type DatasetPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IDatasetStore = (*DatasetPostgresRepository)(nil)

func NewDatasetPostgresRepository(ctx context.Context, dsn string) (*DatasetPostgresRepository, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn required")
	}
	db, err := sql.Open(postgresDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS atendimentos_state (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &DatasetPostgresRepository{db: db}, nil
}

func (r *DatasetPostgresRepository) Driver() string { return config.DriverPostgres }

func (r *DatasetPostgresRepository) Close() error { return r.db.Close() }

func (r *DatasetPostgresRepository) Load(ctx context.Context) (entities.Dataset, error) {
	rows, err := queryBuckets(ctx, r.db, `SELECT bucket, payload::text FROM atendimentos_state`)
	if err != nil {
		return entities.Dataset{}, err
	}
	return joinBuckets(rows)
}

func (r *DatasetPostgresRepository) Save(ctx context.Context, ds entities.Dataset) error {
	return writeBuckets(ctx, r.db, ds,
		`INSERT INTO atendimentos_state(bucket,payload) VALUES($1,$2::jsonb) ON CONFLICT(bucket) DO UPDATE SET payload=EXCLUDED.payload`)
}
