package middlewares

import (
	"context"
	"net/http"
	"strings"

	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into session data and stashes
// it in the request context for the controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := m.SessionService.ParseSessionToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects sessions whose role is not in the allow list.
// Runs after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := utils.GetSessionData(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
				return
			}
			if !allowed[session.Role] {
				m.Log.Warn("Middlewares.RequireRoles rejected session",
					zap.String(constvars.LoggingAccountIDKey, session.AccountID),
					zap.String("role", session.Role),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// VerifyCallbackToken guards the public payment callback endpoint with
// the shared secret the provider sends in X-Callback-Token.
func (m *Middlewares) VerifyCallbackToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(constvars.HeaderXCallbackToken)
		if token == "" || token != m.InternalConfig.PaymentGateway.CallbackToken {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidCallbackToken(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
