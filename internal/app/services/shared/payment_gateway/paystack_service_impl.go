package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/contracts"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/responses"
	"confidant-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type paystackService struct {
	BaseUrl   string
	SecretKey string
	Client    *http.Client
}

func NewPaystackService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &paystackService{
		BaseUrl:   internalConfig.Paystack.BaseUrl,
		SecretKey: internalConfig.Paystack.SecretKey,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *paystackService) InitializeTransaction(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*responses.InitializePayment, error) {
	payload := map[string]interface{}{
		"email":     email,
		"amount":    amountKobo,
		"reference": reference,
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "paystack")
	}
	if !envelope.Status {
		return nil, exceptions.ErrPaymentNotSuccessful(fmt.Errorf("paystack initialize: %s", envelope.Message))
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "paystack")
	}

	return &responses.InitializePayment{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (s *paystackService) VerifyTransaction(ctx context.Context, reference string) (*responses.PaystackTransaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseUrl+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "paystack")
	}
	if !envelope.Status {
		return nil, exceptions.ErrPaymentNotSuccessful(fmt.Errorf("paystack verify: %s", envelope.Message))
	}

	var transaction responses.PaystackTransaction
	if err := json.Unmarshal(envelope.Data, &transaction); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "paystack")
	}

	return &transaction, nil
}
