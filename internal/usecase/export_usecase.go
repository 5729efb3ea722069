package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"
	"gestao_atendimentos/internal/infrastructure/logging"
	"gestao_atendimentos/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=export_usecase.go -destination=../adapter/http/handlers/mocks/export_usecase_mock.go -package=mocks

// IExportUseCase produces the dataset document and its summary.
type IExportUseCase interface {
	Export(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context) (dataset.Summary, error)
	Publish(ctx context.Context) (string, error)
	FileName() string
}

type ExportUseCase struct {
	session   *Session
	publisher interfaces.IExportPublisher
	fileName  string
	now       func() time.Time
	log       zerolog.Logger
}

var _ IExportUseCase = (*ExportUseCase)(nil)

// NewExportUseCase builds the export use case. publisher may be nil, in which
// case Publish fails with ErrExportNotConfigured.
func NewExportUseCase(session *Session, publisher interfaces.IExportPublisher, fileName string) *ExportUseCase {
	if fileName == "" {
		fileName = "database_export.json"
	}
	return &ExportUseCase{
		session:   session,
		publisher: publisher,
		fileName:  fileName,
		now:       time.Now,
		log:       logging.For("export", "usecase"),
	}
}

func (u *ExportUseCase) FileName() string { return u.fileName }

// Export returns the dataset encoded exactly as the file store writes it.
func (u *ExportUseCase) Export(ctx context.Context) ([]byte, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return nil, err
	}
	return entities.EncodeDataset(ds)
}

func (u *ExportUseCase) Stats(ctx context.Context) (dataset.Summary, error) {
	ds, err := u.session.Read(ctx)
	if err != nil {
		return dataset.Summary{}, err
	}
	return dataset.Summarize(ds), nil
}

// Publish uploads the export under a timestamped name and returns where it
// was stored.
func (u *ExportUseCase) Publish(ctx context.Context) (string, error) {
	if u.publisher == nil {
		return "", ErrExportNotConfigured
	}
	doc, err := u.Export(ctx)
	if err != nil {
		return "", err
	}
	name := u.publishName()
	location, err := u.publisher.Publish(ctx, name, doc)
	if err != nil {
		u.log.Error().Err(err).Str("name", name).Msg("publish failed")
		return "", fmt.Errorf("publish export: %w", err)
	}
	u.log.Info().Str("location", location).Int("bytes", len(doc)).Msg("export published")
	return location, nil
}

func (u *ExportUseCase) publishName() string {
	ext := path.Ext(u.fileName)
	base := strings.TrimSuffix(u.fileName, ext)
	return fmt.Sprintf("%s_%s%s", base, u.now().UTC().Format("20060102T150405Z"), ext)
}
