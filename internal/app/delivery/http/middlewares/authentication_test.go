package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	return "token", nil
}

func (f *fakeSessionService) ParseSessionToken(ctx context.Context, token string) (*models.Session, error) {
	if f.session == nil || token != "valid-token" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return f.session, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	return nil
}

func newTestMiddlewares(session *models.Session) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionService: &fakeSessionService{session: session},
		InternalConfig: &config.InternalConfig{
			PaymentGateway: config.AppPaymentGateway{CallbackToken: "shared-secret"},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	session := &models.Session{SessionID: "sess-1", AccountID: "acct-1", Role: "customer"}

	t.Run("Injects Session Into Context", func(t *testing.T) {
		mw := newTestMiddlewares(session)
		var captured *models.Session
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = utils.GetSessionData(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer valid-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "acct-1", captured.AccountID)
	})

	t.Run("Rejects Missing Header", func(t *testing.T) {
		mw := newTestMiddlewares(session)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a token")
		}))

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rejects Bad Token", func(t *testing.T) {
		mw := newTestMiddlewares(session)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with a bad token")
		}))

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer stale-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	serveWithSession := func(mw *Middlewares, session *models.Session, roles ...string) *httptest.ResponseRecorder {
		handler := mw.RequireRoles(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodPost, "/slots", nil)
		if session != nil {
			ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
			req = req.WithContext(ctx)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Allows Listed Role", func(t *testing.T) {
		mw := newTestMiddlewares(nil)
		rec := serveWithSession(mw, &models.Session{AccountID: "c-1", Role: constvars.RoleConsultant},
			constvars.RoleConsultant, constvars.RoleAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rejects Unlisted Role", func(t *testing.T) {
		mw := newTestMiddlewares(nil)
		rec := serveWithSession(mw, &models.Session{AccountID: "c-1", Role: constvars.RoleCustomer},
			constvars.RoleConsultant, constvars.RoleAdmin)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Rejects Missing Session", func(t *testing.T) {
		mw := newTestMiddlewares(nil)
		rec := serveWithSession(mw, nil, constvars.RoleAdmin)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestVerifyCallbackToken(t *testing.T) {
	serveWithToken := func(token string) *httptest.ResponseRecorder {
		mw := newTestMiddlewares(nil)
		handler := mw.VerifyCallbackToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		req := httptest.NewRequest(http.MethodPost, "/payments/callback", nil)
		if token != "" {
			req.Header.Set(constvars.HeaderXCallbackToken, token)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Accepts Shared Secret", func(t *testing.T) {
		assert.Equal(t, http.StatusAccepted, serveWithToken("shared-secret").Code)
	})

	t.Run("Rejects Wrong Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serveWithToken("not-the-secret").Code)
	})

	t.Run("Rejects Missing Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serveWithToken("").Code)
	})
}
