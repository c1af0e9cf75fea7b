package contracts

import (
	"confidant-service/internal/pkg/dto/requests"
	"context"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
