package configs

import "time"

// Ledger configures the HTTP client for the wallet/ledger service that
// charges and refunds campaign budgets.
type Ledger struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8090"`
	APIKey  string        `env:"API_KEY" envDefault:""`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
