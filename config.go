package tonesdk

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ──────────────────────────────────────────────
// Config — environment-driven SDK configuration
// ──────────────────────────────────────────────

// Config is the environment-driven configuration for apps embedding the
// SDK. The core stays config-free; this feeds the session, store and
// remote layers.
type Config struct {
	// Remote AI (optional; empty endpoint = local rules only)
	RemoteEndpoint string `env:"TONE_REMOTE_ENDPOINT"`
	RemoteAPIKey   string `env:"TONE_REMOTE_API_KEY"`
	RemoteModel    string `env:"TONE_REMOTE_MODEL" envDefault:"gpt-4o-mini"`

	// Pipeline toggles
	AutoTransform   bool   `env:"TONE_AUTO_TRANSFORM" envDefault:"true"`
	AggressionGuard bool   `env:"TONE_AGGRESSION_GUARD" envDefault:"true"`
	ScheduleAdvice  bool   `env:"TONE_SCHEDULE_ADVICE" envDefault:"true"`
	Timezone        string `env:"TONE_TIMEZONE" envDefault:"Asia/Seoul"`

	// Store layer
	RedisAddr   string `env:"TONE_REDIS_ADDR"`
	ArchivePath string `env:"TONE_ARCHIVE_PATH" envDefault:"tonebridge.db"`
}

// LoadConfig reads configuration from the environment, after loading a
// .env file when one is present (missing .env is not an error).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// AssistConfig derives the pipeline configuration.
func (c *Config) AssistConfig() AssistConfig {
	ac := DefaultAssistConfig()
	ac.AutoTransform = c.AutoTransform
	ac.AggressionGuard = c.AggressionGuard
	ac.ScheduleAdvice = c.ScheduleAdvice
	ac.Timezone = c.Timezone
	return ac
}
