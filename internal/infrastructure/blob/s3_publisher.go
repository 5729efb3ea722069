// Package blob publishes exported documents outside the dataset store.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"gestao_atendimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the parameters of the S3 publisher. Endpoint and PathStyle
// target S3-compatible services such as MinIO.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	PathStyle bool
}

// S3Publisher uploads exports to a single bucket under a key prefix.
type S3Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ interfaces.IExportPublisher = (*S3Publisher)(nil)

// NewS3Publisher builds the client from the default AWS credential chain,
// or from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY when they are set.
func NewS3Publisher(ctx context.Context, cfg S3Config) (*S3Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			key, os.Getenv("AWS_SECRET_ACCESS_KEY"), os.Getenv("AWS_SESSION_TOKEN"),
		)))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// Several S3-compatible servers reject the trailing checksums sent by default.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
	return NewS3PublisherWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func NewS3PublisherWithClient(client *s3.Client, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}
}

func (p *S3Publisher) key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(strings.TrimSuffix(p.prefix, "/"), name)
}

// Publish stores document as <prefix>/<name> and returns its s3:// URI.
func (p *S3Publisher) Publish(ctx context.Context, name string, document []byte) (string, error) {
	key := p.key(name)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(document),
		ContentType: aws.String("application/json; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", p.bucket, key), nil
}
