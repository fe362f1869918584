package configs

import "time"

// Auditor configures the Bedrock-backed content auditor. Timeout bounds
// every audit call; a slow or hanging model invocation must not stall
// campaign creation, so the lifecycle treats a timeout as an inconclusive
// audit and queues the campaign for manual review.
type Auditor struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Region  string        `env:"REGION" envDefault:"us-east-1"`
	ModelID string        `env:"MODEL_ID" envDefault:"anthropic.claude-3-haiku-20240307-v1:0"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"8s"`
}
