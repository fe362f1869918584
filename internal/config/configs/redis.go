package configs

import "time"

// Redis configures the cache used for dashboard stats roll-ups. When Addr
// is empty the cache is disabled and stats are computed on every request.
type Redis struct {
	Addr     string        `env:"ADDRESS" envDefault:""`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB" envDefault:"0"`
	StatsTTL time.Duration `env:"STATS_TTL" envDefault:"10s"`
}
