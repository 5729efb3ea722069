package blob

import (
	"context"

	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/usecase/interfaces"
)

// NewPublisher picks the export sink from cfg: S3 when a bucket is set, a
// local directory when Dir is set. It returns nil when neither is configured.
func NewPublisher(ctx context.Context, cfg config.ExportConfig) (interfaces.IExportPublisher, error) {
	switch {
	case cfg.S3Bucket != "":
		p, err := NewS3Publisher(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case cfg.Dir != "":
		p, err := NewDirPublisher(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, nil
	}
}
