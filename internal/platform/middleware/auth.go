package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	dErrors "github.com/SeanJibowu555/dealer-qualifier/pkg/domain-errors"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/httputil"
)

// JWTValidator defines the interface for validating JWT tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator.
type JWTClaims struct {
	ClientName string
}

// Context key for the authenticated caller.
type contextKeyClientName struct{}

// ContextKeyClientName is exported for use in handlers and tests.
var ContextKeyClientName = contextKeyClientName{}

// GetClientName retrieves the authenticated caller name from the context.
func GetClientName(ctx context.Context) string {
	clientName, ok := ctx.Value(ContextKeyClientName).(string)
	if !ok {
		return ""
	}
	return clientName
}

// RequireAuth enforces a valid bearer token on the wrapped handler and
// stores the caller identity in the request context.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authorization header required"))
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "bearer token required"))
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				logger.WarnContext(ctx, "token validation failed", "error", err)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
				return
			}

			ctx = context.WithValue(ctx, ContextKeyClientName, claims.ClientName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
