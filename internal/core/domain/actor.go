package domain

// Actor describes the authenticated identity performing an operation. It is
// supplied by the identity service and constructed by the HTTP layer from
// the request's credentials.
type Actor struct {
	ProviderID   string
	ProviderName string
	Admin        bool
}
