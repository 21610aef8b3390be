package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Providers ProviderConfig  `yaml:"providers"`
	Reasoning ReasoningConfig `yaml:"reasoning"`
	Inbox     InboxConfig     `yaml:"inbox"`
}

// DatabaseConfig holds store-related configuration. Dialect "postgres"
// uses the pgx pool; "sqlite" opens a local WAL database.
type DatabaseConfig struct {
	Dialect         string        `yaml:"dialect"`
	DSN             string        `yaml:"dsn"`
	Path            string        `yaml:"path"`
	MaxConns        int32         `yaml:"maxConns"`
	MinConns        int32         `yaml:"minConns"`
	MaxConnLifetime time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime time.Duration `yaml:"maxConnIdleTime"`
	DialTimeout     time.Duration `yaml:"dialTimeout"`
}

// ServerConfig holds gRPC server configuration.
type ServerConfig struct {
	GRPCAddr string `yaml:"grpcAddr"`
}

// PipelineConfig holds policy knobs for the enrichment pipeline. The
// consolidation thresholds are empirically chosen defaults, not derived
// precision; treat them as tunables.
type PipelineConfig struct {
	StaleProcessingCutoff time.Duration `yaml:"staleProcessingCutoff"` // processing older than this is orphaned
	LiveLocationMaxAge    time.Duration `yaml:"liveLocationMaxAge"`    // captures older than this never adopt device GPS
	HomeRadiusMeters      float64       `yaml:"homeRadiusMeters"`
	ConsolidateWindow     time.Duration `yaml:"consolidateWindow"`
	ConsolidateDegrees    float64       `yaml:"consolidateDegrees"`
	ReprocessBatchSize    int           `yaml:"reprocessBatchSize"`
	SiblingContextLimit   int           `yaml:"siblingContextLimit"` // sibling summaries fed to reasoning
	CoverImageDir         string        `yaml:"coverImageDir"`
}

// ProviderConfig holds per-provider task timeouts. A provider that blows
// its timeout contributes nothing; it never fails the capture.
type ProviderConfig struct {
	LinkTimeout     time.Duration `yaml:"linkTimeout"`
	PlaceTimeout    time.Duration `yaml:"placeTimeout"`
	SearchTimeout   time.Duration `yaml:"searchTimeout"`
	WeatherTimeout  time.Duration `yaml:"weatherTimeout"`
	ActivityTimeout time.Duration `yaml:"activityTimeout"`
	CoverTimeout    time.Duration `yaml:"coverTimeout"`
	ProductTimeout  time.Duration `yaml:"productTimeout"`
}

// ReasoningConfig holds reasoning-service settings.
type ReasoningConfig struct {
	Model        string        `yaml:"model"`
	APIKey       string        `yaml:"-"`
	BaseURL      string        `yaml:"baseUrl"`
	Temperature  float32       `yaml:"temperature"`
	Timeout      time.Duration `yaml:"timeout"`
	ChunkChars   int           `yaml:"chunkChars"`
	ChunkOverlap int           `yaml:"chunkOverlap"`
}

// InboxConfig holds capture-inbox watcher settings.
type InboxConfig struct {
	Roots    []string      `yaml:"roots"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoadConfig loads configuration from environment variables, optionally
// overlaid on a YAML file named by CAPTURED_CONFIG.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Dialect:         getEnv("DB_DIALECT", "sqlite"),
			DSN:             getEnv("DB_URL", ""),
			Path:            getEnv("DB_PATH", "./captured.db"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Pipeline: PipelineConfig{
			StaleProcessingCutoff: getEnvAsDuration("STALE_PROCESSING_CUTOFF", 5*time.Minute),
			LiveLocationMaxAge:    getEnvAsDuration("LIVE_LOCATION_MAX_AGE", 5*time.Minute),
			HomeRadiusMeters:      getEnvAsFloat64("HOME_RADIUS_METERS", 100),
			ConsolidateWindow:     getEnvAsDuration("CONSOLIDATE_WINDOW", 5*time.Second),
			ConsolidateDegrees:    getEnvAsFloat64("CONSOLIDATE_DEGREES", 0.0005),
			ReprocessBatchSize:    getEnvAsInt("REPROCESS_BATCH_SIZE", 3),
			SiblingContextLimit:   getEnvAsInt("SIBLING_CONTEXT_LIMIT", 5),
			CoverImageDir:         getEnv("COVER_IMAGE_DIR", "./covers"),
		},
		Providers: ProviderConfig{
			LinkTimeout:     getEnvAsDuration("LINK_TIMEOUT", 15*time.Second),
			PlaceTimeout:    getEnvAsDuration("PLACE_TIMEOUT", 15*time.Second),
			SearchTimeout:   getEnvAsDuration("SEARCH_TIMEOUT", 20*time.Second),
			WeatherTimeout:  getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
			ActivityTimeout: getEnvAsDuration("ACTIVITY_TIMEOUT", 10*time.Second),
			CoverTimeout:    getEnvAsDuration("COVER_TIMEOUT", 30*time.Second),
			ProductTimeout:  getEnvAsDuration("PRODUCT_TIMEOUT", 15*time.Second),
		},
		Reasoning: ReasoningConfig{
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature:  getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			ChunkChars:   getEnvAsInt("REASONING_CHUNK_CHARS", 6000),
			ChunkOverlap: getEnvAsInt("REASONING_CHUNK_OVERLAP", 400),
		},
		Inbox: InboxConfig{
			Roots:    splitNonEmpty(getEnv("INBOX_ROOTS", "")),
			Debounce: getEnvAsDuration("INBOX_DEBOUNCE", 500*time.Millisecond),
		},
	}

	if path := os.Getenv("CAPTURED_CONFIG"); path != "" {
		if err := overlayYAML(cfg, path); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	return cfg, nil
}

func overlayYAML(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, cfg)
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.Database.Dialect {
	case "postgres":
		if c.Database.DSN == "" {
			return NewAppError("CONFIG_ERROR", "DB_URL is required for postgres", ErrInvalidInput)
		}
	case "sqlite":
		if c.Database.Path == "" {
			return NewAppError("CONFIG_ERROR", "DB_PATH is required for sqlite", ErrInvalidInput)
		}
	default:
		return NewAppError("CONFIG_ERROR", "DB_DIALECT must be postgres or sqlite", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.ReprocessBatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "REPROCESS_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitNonEmpty(csv string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			if s := csv[start:i]; s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	return out
}
