package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/exceptions"
	"confidant-service/internal/pkg/utils"
)

// Authenticate resolves the Bearer token to a redis-backed login session and
// stores it in the request context for controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is empty")))
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is not a bearer token")))
			return
		}

		sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		authSession, err := m.RedisRepository.GetAuthSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if authSession == nil || authSession.PatientID == "" || time.Now().After(authSession.ExpiresAt) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("login session %s is missing or expired", sessionID)))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, authSession)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
