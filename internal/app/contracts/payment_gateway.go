package contracts

import (
	"confidant-service/internal/pkg/dto/responses"
	"context"
)

type PaymentGatewayService interface {
	InitializeTransaction(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*responses.InitializePayment, error)
	VerifyTransaction(ctx context.Context, reference string) (*responses.PaystackTransaction, error)
}

type PaymentUsecase interface {
	InitializePayment(ctx context.Context, patientID, sessionID, callbackURL string) (*responses.InitializePayment, error)
	VerifyCallback(ctx context.Context, reference string) error
	HandleWebhook(ctx context.Context, signature string, body []byte) error
}
