package repository

import (
	"context"
	"fmt"
	"time"

	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDatasetTableName = "atendimentos_dataset"

// DynamoDBAPI is the part of *dynamodb.Client the dataset store needs.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type datasetItem struct {
	ID        string `dynamodbav:"id"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DatasetDynamoRepository persists the dataset document as one DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//
// The whole document lives in the "document" attribute, so it is bound by
// the 400KB item size limit.
type DatasetDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	key       string
	now       func() time.Time
}

var _ interfaces.IDatasetStore = (*DatasetDynamoRepository)(nil)

func NewDatasetDynamoRepository(ddb DynamoDBAPI, tableName, key string) *DatasetDynamoRepository {
	if tableName == "" {
		tableName = defaultDatasetTableName
	}
	if key == "" {
		key = "dataset"
	}
	return &DatasetDynamoRepository{ddb: ddb, tableName: tableName, key: key, now: time.Now}
}

func (r *DatasetDynamoRepository) Driver() string { return config.DriverDynamoDB }

func (r *DatasetDynamoRepository) Load(ctx context.Context) (entities.Dataset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: r.key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("get dataset item: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.DefaultDataset(), nil
	}

	var it datasetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Dataset{}, fmt.Errorf("%w: %v", entities.ErrCorruptDataset, err)
	}
	return entities.DecodeDataset([]byte(it.Document))
}

func (r *DatasetDynamoRepository) Save(ctx context.Context, ds entities.Dataset) error {
	doc, err := entities.EncodeDataset(ds)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(datasetItem{
		ID:        r.key,
		Document:  string(doc),
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put dataset item: %w", err)
	}
	return nil
}
