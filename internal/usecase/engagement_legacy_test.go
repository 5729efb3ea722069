package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gestao_atendimentos/internal/adapter/persistence/repository"
	"gestao_atendimentos/internal/domain/entities"
)

const legacyDocument = `{
    "engagements": [
        {"checkStatus": "Lançado", "companyName": "Acme", "consultantName": "Ana", "date": "2024-03-02"},
        {"checkStatus": "Não Lançado", "companyName": "Globex", "date": "2024-03-03"}
    ],
    "consultants": [{"name": "Ana", "taxId": null}],
    "stages": [{"code": "1", "description": "Primeiro Contato"}],
    "proposals": []
}`

func TestEngagementUseCase_LegacyDocumentIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, []byte(legacyDocument), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewEngagementUseCase(NewSession(repository.NewDatasetFileRepository(path), nil))
	ctx := context.Background()

	listed, err := uc.List(ctx, EngagementFilter{})
	if err != nil || len(listed) != 2 {
		t.Fatalf("unexpected list %v %v", listed, err)
	}
	id := listed[1].Engagement.ID

	got, err := uc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get listed id %q: %v", id, err)
	}
	if got.Engagement.CompanyName != "Globex" {
		t.Fatalf("unexpected engagement %+v", got.Engagement)
	}

	next := got.Engagement
	next.CheckStatus = entities.CheckStatusLancado
	res, err := uc.Update(ctx, id, next)
	if err != nil {
		t.Fatalf("update listed id %q: %v", id, err)
	}
	if res.Engagement.ID != id {
		t.Fatalf("update changed id %q -> %q", id, res.Engagement.ID)
	}

	after, err := uc.List(ctx, EngagementFilter{})
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if after[0].Engagement.ID != listed[0].Engagement.ID || after[1].Engagement.ID != id {
		t.Fatalf("ids moved after save: before %q %q after %q %q",
			listed[0].Engagement.ID, id, after[0].Engagement.ID, after[1].Engagement.ID)
	}
	if after[1].Engagement.CheckStatus != entities.CheckStatusLancado {
		t.Fatalf("update not persisted: %+v", after[1].Engagement)
	}
}
