package domain

import "errors"

// Kind classifies an error for propagation policy and HTTP mapping.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindPolicy
	KindAuthorization
	KindState
	KindFunding
	KindDependency
	KindStore
	KindNotFound
)

// Error is a domain error carrying a taxonomy kind. Sentinel values below
// are wrapped with fmt.Errorf("%w: ...") to attach context while keeping
// errors.Is comparisons working.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

var (
	ErrInvalidCreative   = &Error{Kind: KindValidation, Msg: "invalid creative"}
	ErrUnknownTier       = &Error{Kind: KindValidation, Msg: "unknown duration or audience tier"}
	ErrInvalidSettings   = &Error{Kind: KindValidation, Msg: "invalid settings"}
	ErrSettingsDisabled  = &Error{Kind: KindPolicy, Msg: "advertising is disabled"}
	ErrCountryNotAllowed = &Error{Kind: KindPolicy, Msg: "target country is not allowed"}
	ErrUnauthorized      = &Error{Kind: KindAuthorization, Msg: "actor is not allowed to perform this transition"}
	ErrInvalidTransition = &Error{Kind: KindState, Msg: "invalid status transition"}
	ErrInsufficientFunds = &Error{Kind: KindFunding, Msg: "insufficient funds"}
	ErrRefundFailed      = &Error{Kind: KindFunding, Msg: "refund failed"}
	ErrAuditInconclusive = &Error{Kind: KindDependency, Msg: "content audit inconclusive"}
	ErrStoreUnavailable  = &Error{Kind: KindStore, Msg: "campaign store unavailable"}
	ErrCampaignNotFound  = &Error{Kind: KindNotFound, Msg: "campaign not found"}
	ErrSettingsConflict  = &Error{Kind: KindState, Msg: "settings were modified concurrently"}
)

// KindOf extracts the taxonomy kind from an error chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
