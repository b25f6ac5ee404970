package src

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL   = "http://localhost:11434/v1"
	defaultModel     = "llama3.1:8b"
	defaultAPIKey    = "ollama"
	defaultOutputDir = "projects"
	defaultTimeout   = 120 * time.Second
)

// Config carries everything the pipeline needs from the environment.
type Config struct {
	BaseURL   string        // OpenAI-compatible endpoint of the model server
	Model     string        // model name passed on every completion
	APIKey    string        // unused by local servers but required by the transport
	OutputDir string        // root under which project directories are created
	Timeout   time.Duration // per-completion deadline
}

// LoadConfig reads .env when present, then the process environment. Missing
// values fall back to the local Ollama defaults.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:   envOr("DEVYAN_BASE_URL", defaultBaseURL),
		Model:     envOr("DEVYAN_MODEL", defaultModel),
		APIKey:    envOr("DEVYAN_API_KEY", defaultAPIKey),
		OutputDir: envOr("DEVYAN_OUTPUT_DIR", defaultOutputDir),
		Timeout:   defaultTimeout,
	}
	if raw := os.Getenv("DEVYAN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
