package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogSourcePostgres = "postgres"
	CatalogSourceHTTP     = "http"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	Redis   RedisConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Migrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CatalogConfig selects where the doctor list is loaded from and how long a
// loaded list is cached.
type CatalogConfig struct {
	Source        string
	URL           string
	CacheTTL      time.Duration
	SeedFile      string
	ClientTimeout time.Duration
}

// LoadConfig reads .env from the working directory, if present, and the
// process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file, if present, and the process
// environment. Environment variables win over the file.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cacheTTL, err := time.ParseDuration(v.GetString("CATALOG_CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	clientTimeout, err := time.ParseDuration(v.GetString("HTTP_CLIENT_TIMEOUT"))
	if err != nil {
		clientTimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Catalog: CatalogConfig{
			Source:        v.GetString("CATALOG_SOURCE"),
			URL:           v.GetString("CATALOG_URL"),
			CacheTTL:      cacheTTL,
			SeedFile:      v.GetString("CATALOG_SEED_FILE"),
			ClientTimeout: clientTimeout,
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_SOURCE", CatalogSourcePostgres)
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourcePostgres:
	case CatalogSourceHTTP:
		if c.Catalog.URL == "" {
			return errors.New("CATALOG_URL is required when CATALOG_SOURCE is http")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	return nil
}
