package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gestao_atendimentos/internal/adapter/persistence/repository"
	"gestao_atendimentos/internal/domain/dataset"
	"gestao_atendimentos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string { return &s }

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ATENDIMENTOS_CONFIG", "STORE_DRIVER", "STORE_FILE_PATH", "STORE_SQLITE_PATH",
		"EXPORT_DIR", "EXPORT_S3_BUCKET", "EXPORT_FILE_NAME", "LOG_LEVEL", "LOG_FORMAT", "HTTP_PORT",
	} {
		t.Setenv(k, "")
	}
}

func seed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	ds := entities.DefaultDataset()
	ds.Consultants = []entities.Consultant{{Name: "Ana"}, {Name: "Bruno"}}
	ds.Engagements = []entities.Engagement{
		{ID: "e-1", CheckStatus: entities.CheckStatusNaoLancado, CompanyName: "Acme",
			ConsultantName: strPtr("Ana"), StageCode: strPtr("1"), Date: entities.NewDate(2024, 3, 2)},
		{ID: "e-2", CheckStatus: entities.CheckStatusLancado, CompanyName: "Globex",
			ConsultantName: strPtr("Bruno"), StageCode: strPtr("3")},
	}
	require.NoError(t, repository.NewDatasetFileRepository(path).Save(context.Background(), ds))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	clearEnv(t)
	path := seed(t)

	out, err := execute(t, "--driver", "file", "--path", path, "stats", "--format", "json")
	require.NoError(t, err)

	var sum dataset.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, dataset.Summary{Engagements: 2, Proposals: 0, Consultants: 2, Stages: 4}, sum)

	out, err = execute(t, "--driver", "file", "--path", path, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "engagements")
	assert.Contains(t, out, "consultants")

	_, err = execute(t, "--driver", "file", "--path", path, "stats", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestEngagementsCommand(t *testing.T) {
	clearEnv(t)
	path := seed(t)

	t.Run("filters by consultant", func(t *testing.T) {
		out, err := execute(t, "--driver", "file", "--path", path, "engagements", "--consultant", "Bruno", "-f", "yaml")
		require.NoError(t, err)

		var rows []engagementRow
		require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "e-2", rows[0].ID)
		assert.Equal(t, "3 - Proposta Enviada", rows[0].Stage)
		assert.Empty(t, rows[0].Date)
	})

	t.Run("filters by stage label", func(t *testing.T) {
		out, err := execute(t, "--driver", "file", "--path", path, "engagements", "--stage", "1 - Primeiro Contato", "-f", "json")
		require.NoError(t, err)

		var rows []engagementRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "e-1", rows[0].ID)
		assert.Equal(t, "2024-03-02", rows[0].Date)
	})

	t.Run("table lists everything", func(t *testing.T) {
		out, err := execute(t, "--driver", "file", "--path", path, "engagements")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
	})
}

func TestExportCommand(t *testing.T) {
	clearEnv(t)
	path := seed(t)
	stored, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := execute(t, "--driver", "file", "--path", path, "export")
	require.NoError(t, err)
	assert.Equal(t, string(stored), out)

	dest := filepath.Join(t.TempDir(), "out.json")
	_, err = execute(t, "--driver", "file", "--path", path, "export", "--out", dest)
	require.NoError(t, err)
	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, stored, written)
}

func TestPublishCommand(t *testing.T) {
	clearEnv(t)
	path := seed(t)

	_, err := execute(t, "--driver", "file", "--path", path, "publish")
	assert.ErrorContains(t, err, "export publisher not configured")

	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)
	out, err := execute(t, "--driver", "file", "--path", path, "publish")
	require.NoError(t, err)
	location := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(location))
	assert.True(t, strings.HasPrefix(filepath.Base(location), "database_export_"))
}

func TestUnknownDriver(t *testing.T) {
	clearEnv(t)
	_, err := execute(t, "--driver", "bogus", "stats")
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "atendctl version 0.1.0 (build: dev)\n", out)
}
