package port

import "context"

// Ledger is the funding collaborator debiting and crediting provider
// wallets. Amounts are integer cents.
//
// Charge returns an error wrapping domain.ErrInsufficientFunds when the
// payer cannot cover the amount. Both operations are synchronous: a nil
// return means the ledger acknowledged the movement.
type Ledger interface {
	Charge(ctx context.Context, payerID string, amount int64) error
	Refund(ctx context.Context, payerID string, amount int64) error
}
