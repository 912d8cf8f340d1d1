package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"RENTAL_HTTP_ADDR", "RENTAL_OLLAMA_URL", "OLLAMA_URL", "RENTAL_DB_DRIVER", "RENTAL_DB_DSN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8501" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Ollama.URL != "http://localhost:11434" {
		t.Errorf("Ollama.URL = %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "tinyllama:latest" {
		t.Errorf("Ollama.Model = %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.ProbeTimeout != 5*time.Second || cfg.Ollama.GenerateTimeout != 15*time.Second {
		t.Errorf("timeouts = %v/%v", cfg.Ollama.ProbeTimeout, cfg.Ollama.GenerateTimeout)
	}
	if cfg.DB.Driver != "sqlite3" {
		t.Errorf("DB.Driver = %q", cfg.DB.Driver)
	}
}

func TestLoadOllamaURLAlias(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RENTAL_OLLAMA_URL", "")
	t.Setenv("OLLAMA_URL", "http://gpu-box:11434/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ollama.URL != "http://gpu-box:11434" {
		t.Errorf("Ollama.URL = %q", cfg.Ollama.URL)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RENTAL_DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RENTAL_OLLAMA_PROBE_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad duration")
	}
}
