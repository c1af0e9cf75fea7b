package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

type fakeRedisRepository struct {
	authSessions map[string]*models.AuthSession
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}

func (f *fakeRedisRepository) CreateAuthSession(ctx context.Context, session *models.AuthSession) error {
	f.authSessions[session.SessionID] = session
	return nil
}

func (f *fakeRedisRepository) GetAuthSession(ctx context.Context, sessionID string) (*models.AuthSession, error) {
	return f.authSessions[sessionID], nil
}

func newTestMiddlewares(redisRepo *fakeRedisRepository) *Middlewares {
	return New(zap.NewNop(), redisRepo, &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	})
}

func TestAuthenticate(t *testing.T) {
	redisRepo := &fakeRedisRepository{authSessions: map[string]*models.AuthSession{
		"login-1": {
			SessionID: "login-1",
			PatientID: "patient-1",
			Email:     "sam@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
		"stale-1": {
			SessionID: "stale-1",
			PatientID: "patient-1",
			ExpiresAt: time.Now().Add(-time.Hour),
		},
	}}
	mw := newTestMiddlewares(redisRepo)

	var capturedSession *models.AuthSession
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedSession, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.AuthSession)
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(next)

	t.Run("valid bearer token reaches the handler with session data", func(t *testing.T) {
		capturedSession = nil
		token, err := utils.GenerateSessionJWT("login-1", testJWTSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/patients/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, capturedSession)
		assert.Equal(t, "patient-1", capturedSession.PatientID)
	})

	t.Run("missing authorization header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/patients/me", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/patients/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired login session is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("stale-1", testJWTSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/patients/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown login session is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("never-created", testJWTSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/patients/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	mw := newTestMiddlewares(&fakeRedisRepository{authSessions: map[string]*models.AuthSession{}})

	var seenRequestID string
	handler := mw.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("client supplied request ID is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", seenRequestID)
		assert.Equal(t, "client-id-1", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("missing request ID is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, seenRequestID)
		assert.Equal(t, seenRequestID, rec.Header().Get(constvars.HeaderXRequestID))
	})
}
