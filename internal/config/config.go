package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port          int              `json:"port"`
	JWTSecret     string           `json:"jwt_secret"`
	JWTTTLMinutes int              `json:"jwt_ttl_minutes"`
	LogConfig     logger.LogConfig `json:"log_config"`
	Database      DatabaseConfig   `json:"database"`
	FileStore     FileStoreConfig  `json:"file_store"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

type FileStoreConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// overrides let deployments keep secrets out of the config file.
type overrides struct {
	JWTSecret  string `env:"PHOTOVAULT_JWT_SECRET"`
	DBPassword string `env:"PHOTOVAULT_DB_PASSWORD"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	var env overrides
	if err := envconfig.Process(context.Background(), &env); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}
	if env.JWTSecret != "" {
		cfg.JWTSecret = env.JWTSecret
	}
	if env.DBPassword != "" {
		cfg.Database.Password = env.DBPassword
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	// A missing signing secret is a startup error, never a per-request one.
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("port is required")
	}
	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("database.dsn or database.host is required")
	}
	if c.JWTTTLMinutes == 0 {
		c.JWTTTLMinutes = 30
	}
	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}
	if c.FileStore.Type == "" {
		return fmt.Errorf("file_store.type is required")
	}
	return nil
}
