package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"boost-ads/internal/core/domain"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain error kinds onto HTTP status codes. Unknown
// errors are logged and reported as a generic 500 to avoid leaking
// internals.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindPolicy:
		status = http.StatusUnprocessableEntity
	case domain.KindAuthorization:
		status = http.StatusForbidden
	case domain.KindState:
		status = http.StatusConflict
	case domain.KindFunding:
		status = http.StatusPaymentRequired
	case domain.KindDependency:
		status = http.StatusBadGateway
	case domain.KindStore:
		status = http.StatusServiceUnavailable
	case domain.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
