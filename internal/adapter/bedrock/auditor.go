package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"boost-ads/internal/config/configs"
	"boost-ads/internal/core/domain"
)

// Auditor implements port.ContentAuditor against AWS Bedrock. The model is
// asked to assess the creative and reply with a strict JSON verdict. Every
// call is bounded by the configured timeout; any provider failure, timeout
// or unparseable reply is reported as inconclusive so the lifecycle can
// fall back to manual review instead of blocking or silently approving.
type Auditor struct {
	client  *bedrockruntime.Client
	modelID string
	timeout time.Duration
}

// NewAuditor loads the default AWS config for the given region and builds
// the Bedrock runtime client.
func NewAuditor(ctx context.Context, cfg configs.Auditor) (*Auditor, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Auditor{
		client:  bedrockruntime.NewFromConfig(awsCfg),
		modelID: cfg.ModelID,
		timeout: cfg.Timeout,
	}, nil
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature,omitempty"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

const systemPrompt = `You review advertising creatives for an event-services marketplace.
Assess the submitted creative for safety (scams, adult content, hate, illegal services,
misleading claims) and quality (clarity, relevance, grammar). Respond with a single JSON
object and nothing else, using exactly these fields:
{"is_safe": bool, "safety_score": 0-100, "quality_score": 0-100,
 "issues": [string], "suggestions": [string], "reason": string}`

// Audit sends the creative to the model and parses its verdict.
func (a *Auditor) Audit(ctx context.Context, creative domain.Creative) (*domain.AuditResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	payload := map[string]any{
		"headline": creative.Headline,
		"tagline":  creative.Tagline,
		"tags":     creative.Tags,
	}
	if creative.ImageRef != "" {
		payload["image_ref"] = creative.ImageRef
	}
	creativeJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode creative: %v", domain.ErrAuditInconclusive, err)
	}

	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        512,
		System:           systemPrompt,
		Messages: []message{{
			Role:    "user",
			Content: []contentBlock{{Type: "text", Text: "Creative to review:\n" + string(creativeJSON)}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrAuditInconclusive, err)
	}

	out, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(a.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invoke model: %v", domain.ErrAuditInconclusive, err)
	}

	var resp invokeResponse
	if err = json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrAuditInconclusive, err)
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrAuditInconclusive)
	}
	return parseVerdict(resp.Content[0].Text)
}

// parseVerdict extracts the JSON verdict from the model's reply. Models
// occasionally wrap JSON in markdown fences or prose, so the first balanced
// object is cut out before decoding.
func parseVerdict(text string) (*domain.AuditResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON verdict in reply", domain.ErrAuditInconclusive)
	}

	var verdict domain.AuditResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &verdict); err != nil {
		return nil, fmt.Errorf("%w: malformed verdict: %v", domain.ErrAuditInconclusive, err)
	}
	verdict.SafetyScore = clampScore(verdict.SafetyScore)
	verdict.QualityScore = clampScore(verdict.QualityScore)
	return &verdict, nil
}

// Disabled is the auditor used when no content-understanding backend is
// configured. Every audit is inconclusive, so all new campaigns queue for
// manual review.
type Disabled struct{}

// Audit always reports the audit as inconclusive.
func (Disabled) Audit(context.Context, domain.Creative) (*domain.AuditResult, error) {
	return nil, fmt.Errorf("%w: auditor disabled", domain.ErrAuditInconclusive)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
