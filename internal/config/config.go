package config

import (
	"github.com/caarlos0/env/v11"

	"boost-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Auditor   configs.Auditor   `envPrefix:"AUDITOR_"`
	Ledger    configs.Ledger    `envPrefix:"LEDGER_"`
	Simulator configs.Simulator `envPrefix:"SIM_"`
	Auth      configs.Auth      `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no environment variable
// is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
