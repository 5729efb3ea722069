package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gestao_atendimentos/internal/usecase/interfaces"
)

// DirPublisher writes exports into a local directory.
type DirPublisher struct {
	root string
}

var _ interfaces.IExportPublisher = (*DirPublisher)(nil)

func NewDirPublisher(root string) (*DirPublisher, error) {
	if root == "" {
		return nil, fmt.Errorf("export dir required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DirPublisher{root: root}, nil
}

func (p *DirPublisher) Publish(ctx context.Context, name string, document []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid export name %q", name)
	}
	target := filepath.Join(p.root, name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("export %s already exists", name)
	}

	tmp, err := os.CreateTemp(p.root, ".tmp-*")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(document); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", err
	}
	return target, nil
}
