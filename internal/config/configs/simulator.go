package configs

import "time"

// Simulator configures the delivery simulation worker. TickInterval should
// stay small relative to the shortest campaign duration tier.
type Simulator struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"5s"`
}
