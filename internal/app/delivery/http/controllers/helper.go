package controllers

import (
	"fmt"
	"net/http"

	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/exceptions"
)

// authSessionFromRequest returns the login session the Authenticate
// middleware stored in the request context.
func authSessionFromRequest(r *http.Request) (*models.AuthSession, error) {
	authSession, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.AuthSession)
	if !ok || authSession == nil {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session data missing from request context"))
	}
	return authSession, nil
}

func requestIDFromRequest(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
