package port

import (
	"context"

	"boost-ads/internal/core/domain"
)

// ContentAuditor sends a creative to the external content-understanding
// service and returns its verdict. Calls are idempotent and side-effect
// free, and must return within a bounded timeout.
//
// A provider-side failure, timeout or malformed reply is reported as an
// error wrapping domain.ErrAuditInconclusive; the auditor never fabricates
// a verdict locally. The lifecycle recovers an inconclusive audit by
// queueing the campaign for manual review.
type ContentAuditor interface {
	Audit(ctx context.Context, creative domain.Creative) (*domain.AuditResult, error)
}
