package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"boost-ads/internal/core/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// identityClaims are the token claims issued by the identity service.
type identityClaims struct {
	ProviderName string `json:"name"`
	Admin        bool   `json:"admin"`
	jwt.RegisteredClaims
}

// authenticate resolves the acting identity from the bearer token. The
// token is HS256-signed by the identity service; its subject is the
// provider id.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		var claims identityClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return h.jwtSecret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		actor := domain.Actor{
			ProviderID:   claims.Subject,
			ProviderName: claims.ProviderName,
			Admin:        claims.Admin,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

func actorFrom(r *http.Request) domain.Actor {
	actor, _ := r.Context().Value(actorKey).(domain.Actor)
	return actor
}
