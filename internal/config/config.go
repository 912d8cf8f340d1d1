package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Ollama struct {
		URL             string
		Model           string
		ProbeTimeout    time.Duration
		GenerateTimeout time.Duration
		Prompt          string
	}
	Log struct {
		Level  string
		Format string
	}
	OutputDir       string
	SessionLifetime time.Duration
}

// Load reads config from an optional .env file, the environment (RENTAL_
// prefix) and an optional rental-agent.yaml. OLLAMA_URL is honoured as an
// alias for RENTAL_OLLAMA_URL.
func Load() (*Config, error) {
	_ = gotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("RENTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("ollama.url", "RENTAL_OLLAMA_URL", "OLLAMA_URL")
	v.SetConfigName("rental-agent")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8501")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "rental-agent.db")
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("ollama.model", "tinyllama:latest")
	v.SetDefault("ollama.probe_timeout", "5s")
	v.SetDefault("ollama.generate_timeout", "15s")
	v.SetDefault("output.dir", ".")
	v.SetDefault("session.lifetime", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Ollama.URL = strings.TrimRight(v.GetString("ollama.url"), "/")
	cfg.Ollama.Model = v.GetString("ollama.model")
	cfg.Ollama.Prompt = v.GetString("ollama.prompt")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.OutputDir = v.GetString("output.dir")

	var err error
	if cfg.Ollama.ProbeTimeout, err = time.ParseDuration(v.GetString("ollama.probe_timeout")); err != nil {
		return nil, fmt.Errorf("invalid RENTAL_OLLAMA_PROBE_TIMEOUT: %w", err)
	}
	if cfg.Ollama.GenerateTimeout, err = time.ParseDuration(v.GetString("ollama.generate_timeout")); err != nil {
		return nil, fmt.Errorf("invalid RENTAL_OLLAMA_GENERATE_TIMEOUT: %w", err)
	}
	if cfg.SessionLifetime, err = time.ParseDuration(v.GetString("session.lifetime")); err != nil {
		return nil, fmt.Errorf("invalid RENTAL_SESSION_LIFETIME: %w", err)
	}

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("RENTAL_DB_DRIVER must be one of sqlite3, mysql, postgres; got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("RENTAL_DB_DSN is required")
	}
	if cfg.Ollama.URL == "" {
		return nil, fmt.Errorf("RENTAL_OLLAMA_URL must not be empty")
	}

	return cfg, nil
}
