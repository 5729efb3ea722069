package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DatasetSQLiteRepository stores each collection as a JSON payload in a
// single "state" table. Save rewrites every bucket inside one transaction.
type DatasetSQLiteRepository struct {
	db   *sql.DB
	path string
}

var _ interfaces.IDatasetStore = (*DatasetSQLiteRepository)(nil)

func NewDatasetSQLiteRepository(path string) (*DatasetSQLiteRepository, error) {
	if path == "" {
		path = "atendimentos.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &DatasetSQLiteRepository{db: db, path: path}, nil
}

func (r *DatasetSQLiteRepository) Driver() string { return config.DriverSQLite }

func (r *DatasetSQLiteRepository) Close() error { return r.db.Close() }

// DB exposes the underlying sql.DB for tests.
func (r *DatasetSQLiteRepository) DB() *sql.DB { return r.db }

func (r *DatasetSQLiteRepository) Load(ctx context.Context) (entities.Dataset, error) {
	rows, err := queryBuckets(ctx, r.db, `SELECT bucket, payload FROM state`)
	if err != nil {
		return entities.Dataset{}, err
	}
	return joinBuckets(rows)
}

func (r *DatasetSQLiteRepository) Save(ctx context.Context, ds entities.Dataset) error {
	return writeBuckets(ctx, r.db, ds,
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`)
}

func queryBuckets(ctx context.Context, db *sql.DB, query string) (map[string][]byte, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := map[string][]byte{}
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate state: %w", err)
	}
	return out, nil
}

func writeBuckets(ctx context.Context, db *sql.DB, ds entities.Dataset, upsert string) (retErr error) {
	buckets, err := splitBuckets(ds)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, bucket := range datasetBuckets {
		if _, err := tx.ExecContext(ctx, upsert, bucket, buckets[bucket]); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	return tx.Commit()
}
