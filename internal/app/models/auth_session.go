package models

import "time"

// AuthSession is the login session stored in redis, keyed by session ID.
type AuthSession struct {
	SessionID string    `json:"sessionId"`
	PatientID string    `json:"patientId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
