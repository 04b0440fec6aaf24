package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// EnvPrefix préfixe des variables d'environnement de l'application
const EnvPrefix = "ECOMDASH"

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	CacheSharded = "sharded"
	CacheTTL     = "ttl"
)

// Config configuration complète de l'application
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Data   DataConfig
	Cache  CacheConfig
	Export ExportConfig
	DB     DBConfig
}

type AppConfig struct {
	Env       string `envconfig:"ECOMDASH_ENV" default:"dev"`
	LogLevel  string `envconfig:"ECOMDASH_LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	LogFormat string `envconfig:"ECOMDASH_LOG_FORMAT" default:"json" validate:"oneof=json console"`
}

type HTTPConfig struct {
	Addr         string        `envconfig:"ECOMDASH_HTTP_ADDR" default:":8080" validate:"required"`
	ReadTimeout  time.Duration `envconfig:"ECOMDASH_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"ECOMDASH_HTTP_WRITE_TIMEOUT" default:"60s"`
}

type DataConfig struct {
	Source string `envconfig:"ECOMDASH_SOURCE" default:"csv" validate:"oneof=csv postgres"`
	Dir    string `envconfig:"ECOMDASH_DATA_DIR" default:"ecommerce_data"`
}

type CacheConfig struct {
	Backend         string        `envconfig:"ECOMDASH_CACHE_BACKEND" default:"sharded" validate:"oneof=sharded ttl"`
	TTL             time.Duration `envconfig:"ECOMDASH_CACHE_TTL" default:"5m" validate:"gt=0"`
	Shards          int           `envconfig:"ECOMDASH_CACHE_SHARDS" default:"16" validate:"gt=0"`
	CleanupInterval time.Duration `envconfig:"ECOMDASH_CACHE_CLEANUP_INTERVAL" default:"1m"`
}

type ExportConfig struct {
	BatchSize int `envconfig:"ECOMDASH_EXPORT_BATCH_SIZE" default:"1000" validate:"gt=0"`
}

// DBConfig garde les noms de variables DB_* historiques
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"ecomdash"`
	Password string `envconfig:"DB_PASSWORD" default:"ecomdash"`
	Name     string `envconfig:"DB_NAME" default:"ecomdash"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// Options convertit la configuration en paramètres de connexion
func (db DBConfig) Options() sharedinfra.DBOptions {
	return sharedinfra.DBOptions{
		Host:     db.Host,
		Port:     db.Port,
		User:     db.User,
		Password: db.Password,
		Name:     db.Name,
		SSLMode:  db.SSLMode,
	}
}

// Load lit les fichiers .env (absents ignorés) puis l'environnement
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate vérifie les valeurs de la configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if n := c.Cache.Shards; n&(n-1) != 0 {
		return fmt.Errorf("invalid config: %s_CACHE_SHARDS must be a power of 2, got %d", EnvPrefix, n)
	}
	return nil
}

// NewCache construit le backend de cache configuré
func (c CacheConfig) NewCache() sharedinfra.Cache {
	if c.Backend == CacheTTL {
		return sharedinfra.NewTTLCache(c.TTL)
	}
	return sharedinfra.NewShardedCache(c.Shards, c.CleanupInterval)
}

// NewLogger construit le logger applicatif
func (c *Config) NewLogger(service string) *sharedinfra.Logger {
	return sharedinfra.NewLogger(sharedinfra.LoggerOptions{
		ServiceName: service,
		Level:       c.App.LogLevel,
		Format:      c.App.LogFormat,
	})
}
