/*
config.go - Process configuration read from the environment

PURPOSE:
  One Config struct shared by cmd/server and cmd/synth. Values come from
  environment variables, optionally seeded by a .env or config.env file in
  the working directory. Environment variables win.

KEYS (default):
  APP_ENV (development)  APP_NAME (analisador-relatorios)  LOG_LEVEL (info)
  HTTP_HOST (0.0.0.0)  HTTP_PORT (8080)
  DB_DRIVER (sqlite)  DB_PATH (data/empresa.db)  DATABASE_URL
  REDIS_ADDR (redis:6379)  REDIS_PASSWORD  REDIS_DB (0)  QUEUE_NAME (fila_relatorios)
  SYNTH_EMPLOYEES (5000)  SYNTH_SEED (0)  ADMIN_GENERATE_ENABLED (false)
*/
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	Synth SynthConfig
}

type AppConfig struct {
	Env      string
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DBConfig struct {
	Driver      string
	Path        string // sqlite file
	DatabaseURL string // postgres connection string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	QueueName string
}

type SynthConfig struct {
	Employees            int
	Seed                 int64
	AdminGenerateEnabled bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "analisador-relatorios")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "data/empresa.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("QUEUE_NAME", "fila_relatorios")
	v.SetDefault("SYNTH_EMPLOYEES", 5000)
	v.SetDefault("SYNTH_SEED", 0)
	v.SetDefault("ADMIN_GENERATE_ENABLED", false)
}

// Load reads the configuration. A missing config file is not an error; an
// unsupported driver or a postgres driver without DATABASE_URL is.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Path:        v.GetString("DB_PATH"),
			DatabaseURL: v.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("REDIS_ADDR"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			QueueName: v.GetString("QUEUE_NAME"),
		},
		Synth: SynthConfig{
			Employees:            v.GetInt("SYNTH_EMPLOYEES"),
			Seed:                 v.GetInt64("SYNTH_SEED"),
			AdminGenerateEnabled: v.GetBool("ADMIN_GENERATE_ENABLED"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return fmt.Errorf("DB_PATH is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
		if c.DB.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Synth.Employees < 1 {
		return fmt.Errorf("SYNTH_EMPLOYEES must be at least 1, got %d", c.Synth.Employees)
	}
	return nil
}
