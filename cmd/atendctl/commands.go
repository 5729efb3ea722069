package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gestao_atendimentos/internal/adapter/persistence/repository"
	"gestao_atendimentos/internal/infrastructure/blob"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/infrastructure/logging"
	"gestao_atendimentos/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

const appName = "atendctl"

// app is what every data command needs, opened once per invocation.
type app struct {
	export      *usecase.ExportUseCase
	engagements *usecase.EngagementUseCase
	close       func() error
}

type rootOptions struct {
	configPath string
	driver     string
	path       string
	logLevel   string
}

func (o rootOptions) resolve() (config.Config, error) {
	if o.configPath != "" {
		if err := os.Setenv("ATENDIMENTOS_CONFIG", o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.driver != "" {
		cfg.Store.Driver = o.driver
	}
	if o.path != "" {
		cfg.Store.FilePath = o.path
		cfg.Store.SQLitePath = o.path
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

func openApp(ctx context.Context, cfg config.Config) (*app, error) {
	store, closeStore, err := repository.OpenDatasetStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	publisher, err := blob.NewPublisher(ctx, cfg.Export)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("configure export publisher: %w", err)
	}
	session := usecase.NewSession(store, nil)
	return &app{
		export:      usecase.NewExportUseCase(session, publisher, cfg.Export.FileName),
		engagements: usecase.NewEngagementUseCase(session),
		close:       closeStore,
	}, nil
}

func rootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect and export the engagement dataset",
		Long: `atendctl works directly against the configured dataset store.

It reads the same configuration as the API (environment, .env and the
optional TOML file) so it can export, publish and summarize the dataset
without the server running.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (TOML)")
	cmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Store driver (file, sqlite, postgres, dynamodb, memory)")
	cmd.PersistentFlags().StringVar(&opts.path, "path", "", "Dataset path for the file and sqlite drivers")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	withApp := func(run func(cmd *cobra.Command, a *app) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			logging.Init(appName, cfg.LogLevel, cfg.LogFormat)
			a, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()
			return run(cmd, a)
		}
	}

	cmd.AddCommand(exportCmd(withApp), publishCmd(withApp), statsCmd(withApp), engagementsCmd(withApp))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})
	return cmd
}

type appRunner func(run func(cmd *cobra.Command, a *app) error) func(*cobra.Command, []string) error

func exportCmd(withApp appRunner) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset document to a file or stdout",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app) error {
			doc, err := a.export.Export(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(out, doc, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d bytes to %s\n", len(doc), out)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file (default stdout)")
	return cmd
}

func publishCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish a timestamped export to the configured destination",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app) error {
			location, err := a.export.Publish(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), location)
			return nil
		}),
	}
}

func statsCmd(withApp appRunner) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print record counts per collection",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app) error {
			sum, err := a.export.Stats(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(w, sum)
			case "yaml":
				return yaml.NewEncoder(w).Encode(sum)
			case "table", "":
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintf(tw, "engagements\t%d\n", sum.Engagements)
				fmt.Fprintf(tw, "proposals\t%d\n", sum.Proposals)
				fmt.Fprintf(tw, "consultants\t%d\n", sum.Consultants)
				fmt.Fprintf(tw, "stages\t%d\n", sum.Stages)
				return tw.Flush()
			}
			return fmt.Errorf("unknown format %q", format)
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

type engagementRow struct {
	ID         string `json:"id" yaml:"id"`
	Status     string `json:"checkStatus" yaml:"checkStatus"`
	Date       string `json:"date" yaml:"date"`
	Company    string `json:"companyName" yaml:"companyName"`
	Consultant string `json:"consultantName" yaml:"consultantName"`
	Stage      string `json:"stageLabel" yaml:"stageLabel"`
	Label      string `json:"label" yaml:"label"`
}

func rowOf(v usecase.EngagementView) engagementRow {
	e := v.Engagement
	row := engagementRow{
		ID:      e.ID,
		Status:  string(e.CheckStatus),
		Company: e.CompanyName,
		Stage:   v.StageLabel,
		Label:   v.Label,
	}
	if !e.Date.IsZero() {
		row.Date = e.Date.String()
	}
	if e.ConsultantName != nil {
		row.Consultant = *e.ConsultantName
	}
	return row
}

func engagementsCmd(withApp appRunner) *cobra.Command {
	var (
		filter usecase.EngagementFilter
		format string
	)
	cmd := &cobra.Command{
		Use:   "engagements",
		Short: "List engagements, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app) error {
			views, err := a.engagements.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			rows := make([]engagementRow, 0, len(views))
			for _, v := range views {
				rows = append(rows, rowOf(v))
			}
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(w, rows)
			case "yaml":
				return yaml.NewEncoder(w).Encode(rows)
			case "table", "":
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tSTATUS\tDATE\tCOMPANY\tCONSULTANT\tSTAGE")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Status, r.Date, r.Company, r.Consultant, r.Stage)
				}
				return tw.Flush()
			}
			return fmt.Errorf("unknown format %q", format)
		}),
	}
	cmd.Flags().StringVar(&filter.Status, "status", "", "Only engagements with this check status")
	cmd.Flags().StringVar(&filter.Consultant, "consultant", "", "Only engagements of this consultant")
	cmd.Flags().StringVar(&filter.Stage, "stage", "", "Only engagements whose stage label matches")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
