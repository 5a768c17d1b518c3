package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/venuebook/server/internal/api/problem"
)

// DevTokenPrefix marks the synthetic bearer tokens this server accepts.
// Real session tokens never carry it, so production credentials are
// rejected by construction.
const DevTokenPrefix = "local-"

var (
	ErrMissingAuthorization = errors.New("missing Authorization header")
	ErrUnsupportedToken     = errors.New("unsupported token: dev tokens have the form \"Bearer local-<id>\"")
	ErrEmptyIdentity        = errors.New("dev token carries no identity")
)

// ParseDevToken extracts the caller identity from an Authorization
// header value of the form "Bearer local-<id>".
func ParseDevToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingAuthorization
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if !strings.HasPrefix(token, DevTokenPrefix) {
		return "", ErrUnsupportedToken
	}

	identity := strings.TrimPrefix(token, DevTokenPrefix)
	if identity == "" {
		return "", ErrEmptyIdentity
	}
	return identity, nil
}

type contextKeyIdentity string

const identityKey contextKeyIdentity = "devIdentity"

// DevAuth authenticates requests with the dev token scheme and stores
// the extracted identity in the request context. Anything else is a 401
// problem document.
func DevAuth(env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := ParseDevToken(r.Header.Get("Authorization"))
			if err != nil {
				problem.Write(w, r, http.StatusUnauthorized, problem.TypeUnauthorized, "Unauthorized", err, env)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// ContextWithIdentity stores a dev identity in a context (exported for testing).
func ContextWithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext retrieves the dev identity, or "" when absent.
func IdentityFromContext(ctx context.Context) string {
	if identity, ok := ctx.Value(identityKey).(string); ok {
		return identity
	}
	return ""
}

// Identity retrieves the dev identity from the request context.
func Identity(r *http.Request) string {
	if r == nil {
		return ""
	}
	return IdentityFromContext(r.Context())
}
