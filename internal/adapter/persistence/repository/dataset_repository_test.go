package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleDataset() entities.Dataset {
	ds := entities.DefaultDataset()
	ds.Consultants = []entities.Consultant{{Name: "João", TaxID: strPtr("123.456.789-00")}, {Name: "Ana"}}
	ds.Proposals = []entities.Proposal{{
		Number: "P-1", CompanyName: "Acme & Filhos", TaxID: "00.000.000/0001-00", Product: "ERP",
		ContractedHours: 40, Date: entities.NewDate(2024, 3, 1),
	}}
	p := ds.Proposals[0]
	c := ds.Consultants[0]
	ds.Engagements = []entities.Engagement{{
		ID: "e-1", CheckStatus: entities.CheckStatusLancado,
		ProposalNumber: strPtr("P-1"), CompanyName: "Acme & Filhos", StageCode: strPtr("2"),
		Notes: strPtr("ligar <amanhã>"), VisitTime: "10:00", VisitDate: entities.NewDate(2024, 3, 2),
		ConsultantName: strPtr("João"), Product: "ERP", Date: entities.NewDate(2024, 3, 2),
		ProposalSnapshot: &p, ConsultantSnapshot: &c,
	}}
	return ds
}

// storeContract exercises the behaviour every IDatasetStore must share.
func storeContract(t *testing.T, store interfaces.IDatasetStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty store loads defaults", func(t *testing.T) {
		ds, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultDataset(), ds)
	})

	t.Run("save then load", func(t *testing.T) {
		want := sampleDataset()
		require.NoError(t, store.Save(ctx, want))
		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("save replaces everything", func(t *testing.T) {
		next := sampleDataset()
		next.Engagements = []entities.Engagement{}
		next.Stages = next.Stages[:1]
		require.NoError(t, store.Save(ctx, next))
		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, got.Engagements)
		assert.Len(t, got.Stages, 1)
	})
}

func TestDatasetFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "database.json")
	store := NewDatasetFileRepository(path)
	assert.Equal(t, config.DriverFile, store.Driver())
	storeContract(t, store)

	t.Run("file holds the canonical document", func(t *testing.T) {
		ds := sampleDataset()
		require.NoError(t, store.Save(context.Background(), ds))
		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		want, err := entities.EncodeDataset(ds)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(onDisk))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files must not be left behind")
	})

	t.Run("corrupt file is fatal", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`{"engagements": {`), 0o600))
		_, err := store.Load(context.Background())
		assert.ErrorIs(t, err, entities.ErrCorruptDataset)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, store.Save(ctx, sampleDataset()), context.Canceled)
	})
}

func TestDatasetMemoryRepository(t *testing.T) {
	store := NewDatasetMemoryRepository()
	storeContract(t, store)

	t.Run("loaded values are detached", func(t *testing.T) {
		ds := sampleDataset()
		require.NoError(t, store.Save(context.Background(), ds))
		ds.Engagements[0].CompanyName = "changed"
		got, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Acme & Filhos", got.Engagements[0].CompanyName)
	})
}

func TestDatasetSQLiteRepository(t *testing.T) {
	store, err := NewDatasetSQLiteRepository(filepath.Join(t.TempDir(), "atendimentos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.Equal(t, config.DriverSQLite, store.Driver())
	storeContract(t, store)

	t.Run("corrupt bucket is fatal", func(t *testing.T) {
		_, err := store.DB().Exec(`UPDATE state SET payload = ? WHERE bucket = 'stages'`, []byte(`{"code":1}`))
		require.NoError(t, err)
		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, entities.ErrCorruptDataset)
	})
}

func TestDatasetPostgresRepository(t *testing.T) {
	dsn := os.Getenv("ATENDIMENTOS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ATENDIMENTOS_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	store, err := NewDatasetPostgresRepository(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	_, err = store.db.ExecContext(ctx, `DELETE FROM atendimentos_state`)
	require.NoError(t, err)
	storeContract(t, store)
}

func TestNewDatasetPostgresRepository_RequiresDSN(t *testing.T) {
	_, err := NewDatasetPostgresRepository(context.Background(), "")
	assert.ErrorContains(t, err, "dsn required")
}

type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	table string
	err   error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.table = aws.ToString(in.TableName)
	key := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.table = aws.ToString(in.TableName)
	key := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDatasetDynamoRepository(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDatasetDynamoRepository(fake, "tbl", "main")
	assert.Equal(t, config.DriverDynamoDB, store.Driver())
	storeContract(t, store)

	t.Run("single item under the configured key", func(t *testing.T) {
		assert.Equal(t, "tbl", fake.table)
		require.Contains(t, fake.items, "main")
		assert.Len(t, fake.items, 1)
		assert.Contains(t, fake.items["main"], "updated_at")
	})

	t.Run("corrupt document is fatal", func(t *testing.T) {
		fake.items["main"]["document"] = &types.AttributeValueMemberS{Value: "not json"}
		_, err := store.Load(context.Background())
		assert.ErrorIs(t, err, entities.ErrCorruptDataset)
	})

	t.Run("client errors are wrapped", func(t *testing.T) {
		fake.err = errors.New("throttled")
		defer func() { fake.err = nil }()
		_, err := store.Load(context.Background())
		assert.ErrorContains(t, err, "throttled")
		assert.NotErrorIs(t, err, entities.ErrCorruptDataset)
	})
}

func TestOpenDatasetStore(t *testing.T) {
	ctx := context.Background()

	store, closeFn, err := OpenDatasetStore(ctx, config.StoreConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, store.Driver())
	assert.NoError(t, closeFn())

	store, closeFn, err = OpenDatasetStore(ctx, config.StoreConfig{
		Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db"),
	})
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, store.Driver())
	assert.NoError(t, closeFn())

	_, _, err = OpenDatasetStore(ctx, config.StoreConfig{Driver: "mongo"})
	assert.ErrorContains(t, err, "unknown store driver")
}
