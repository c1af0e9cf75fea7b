package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GeneratePaymentReference builds a gateway reference that stays traceable to
// the therapy session it pays for.
func GeneratePaymentReference(sessionID string) string {
	return fmt.Sprintf("cfd-%s-%d", sessionID, time.Now().UnixNano())
}
