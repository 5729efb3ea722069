package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds every runtime setting of the service and the CLI.
//
// Resolution order (later wins):
//   - built-in defaults
//   - TOML file named by ATENDIMENTOS_CONFIG (optional)
//   - environment variables (a .env file is loaded by the binaries)
type Config struct {
	HTTPPort  int    `toml:"http_port"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// CORSOrigins lists browser origins allowed to call the API. Empty
	// disables CORS headers.
	CORSOrigins []string `toml:"cors_origins"`

	Store  StoreConfig  `toml:"store"`
	Export ExportConfig `toml:"export"`
}

type StoreConfig struct {
	Driver        string `toml:"driver"`
	FilePath      string `toml:"file_path"`
	SQLitePath    string `toml:"sqlite_path"`
	PostgresDSN   string `toml:"postgres_dsn"`
	DynamoDBTable string `toml:"dynamodb_table"`
	DynamoDBKey   string `toml:"dynamodb_key"`
}

type ExportConfig struct {
	FileName   string `toml:"file_name"`
	Dir        string `toml:"dir"`
	S3Bucket   string `toml:"s3_bucket"`
	S3Prefix   string `toml:"s3_prefix"`
	S3Region   string `toml:"s3_region"`
	S3Endpoint string `toml:"s3_endpoint"`
	PathStyle  bool   `toml:"s3_path_style"`
}

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

func Defaults() Config {
	return Config{
		HTTPPort:  8080,
		LogLevel:  "info",
		LogFormat: "console",
		Store: StoreConfig{
			Driver:        DriverFile,
			FilePath:      "database.json",
			SQLitePath:    "atendimentos.db",
			DynamoDBTable: "atendimentos_dataset",
			DynamoDBKey:   "dataset",
		},
		Export: ExportConfig{
			FileName: "database_export.json",
			S3Prefix: "exports/",
		},
	}
}

// Load resolves the configuration from defaults, the optional TOML file and
// the environment.
func Load() (Config, error) {
	cfg := Defaults()
	if path := strings.TrimSpace(os.Getenv("ATENDIMENTOS_CONFIG")); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFile decodes the TOML file at path on top of cfg.
func LoadFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		cfg.HTTPPort = port
	}
	cfg.LogLevel = getenvDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenvDefault("LOG_FORMAT", cfg.LogFormat)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	cfg.Store.Driver = strings.ToLower(getenvDefault("STORE_DRIVER", cfg.Store.Driver))
	cfg.Store.FilePath = getenvDefault("STORE_FILE_PATH", cfg.Store.FilePath)
	cfg.Store.SQLitePath = getenvDefault("STORE_SQLITE_PATH", cfg.Store.SQLitePath)
	cfg.Store.PostgresDSN = getenvDefault("STORE_POSTGRES_DSN", cfg.Store.PostgresDSN)
	cfg.Store.DynamoDBTable = getenvDefault("DATASET_TABLE", cfg.Store.DynamoDBTable)
	cfg.Store.DynamoDBKey = getenvDefault("DATASET_KEY", cfg.Store.DynamoDBKey)

	cfg.Export.FileName = getenvDefault("EXPORT_FILE_NAME", cfg.Export.FileName)
	cfg.Export.Dir = getenvDefault("EXPORT_DIR", cfg.Export.Dir)
	cfg.Export.S3Bucket = getenvDefault("EXPORT_S3_BUCKET", cfg.Export.S3Bucket)
	cfg.Export.S3Prefix = getenvDefault("EXPORT_S3_PREFIX", cfg.Export.S3Prefix)
	cfg.Export.S3Region = getenvDefault("EXPORT_S3_REGION", cfg.Export.S3Region)
	cfg.Export.S3Endpoint = getenvDefault("EXPORT_S3_ENDPOINT", cfg.Export.S3Endpoint)
	if v := os.Getenv("EXPORT_S3_PATH_STYLE"); v != "" {
		cfg.Export.PathStyle = strings.EqualFold(v, "true")
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverSQLite, DriverPostgres, DriverDynamoDB, DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.Store.Driver == DriverPostgres && c.Store.PostgresDSN == "" {
		return fmt.Errorf("STORE_POSTGRES_DSN required for postgres driver")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
