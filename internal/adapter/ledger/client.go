package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"boost-ads/internal/config/configs"
	"boost-ads/internal/core/domain"
)

// Client implements port.Ledger against the wallet/ledger service. Charges
// and refunds are synchronous: a 2xx reply means the ledger acknowledged
// the movement, anything else is a funding error.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a ledger client from configuration.
func NewClient(cfg configs.Ledger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type movementRequest struct {
	PayerID string `json:"payer_id"`
	Amount  int64  `json:"amount"`
	// Memo identifies the movement in the ledger's transaction history.
	Memo string `json:"memo"`
}

// Charge debits the payer's wallet by amount cents.
func (c *Client) Charge(ctx context.Context, payerID string, amount int64) error {
	return c.post(ctx, "/v1/charges", movementRequest{
		PayerID: payerID,
		Amount:  amount,
		Memo:    "boost campaign purchase",
	})
}

// Refund credits the payer's wallet by amount cents.
func (c *Client) Refund(ctx context.Context, payerID string, amount int64) error {
	return c.post(ctx, "/v1/refunds", movementRequest{
		PayerID: payerID,
		Amount:  amount,
		Memo:    "boost campaign refund",
	})
}

func (c *Client) post(ctx context.Context, endpoint string, body movementRequest) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal ledger request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusPaymentRequired:
		return fmt.Errorf("%w: payer %s, amount %d", domain.ErrInsufficientFunds, body.PayerID, body.Amount)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ledger %s returned %d: %s", endpoint, resp.StatusCode, msg)
	}
}
