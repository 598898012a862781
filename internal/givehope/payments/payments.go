// Клиент платежного провайдера: создание и подтверждение платежных намерений.
//
// Основные возможности:
//   - Создание платежного намерения на сумму пожертвования.
//   - Подтверждение намерения и получение итогового статуса.
//   - Мок-режим для разработки и демо-стендов без внешнего провайдера.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

type IntentStatus string

const (
	IntentRequiresConfirmation IntentStatus = "requires_confirmation"
	IntentSucceeded            IntentStatus = "succeeded"
	IntentDeclined             IntentStatus = "declined"
)

type Intent struct {
	Id           string       `json:"id"`
	Amount       int64        `json:"amount"`
	Currency     string       `json:"currency"`
	ClientSecret string       `json:"client_secret"`
	Status       IntentStatus `json:"status"`
}

// Provider - операции платежного провайдера, используемые обработчиками пожертвований.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentId string) (*Intent, error)
}

// NewProvider возвращает мок-провайдера в демо-режиме и HTTP клиент иначе.
func NewProvider(cfg *config.Config) Provider {
	if cfg.PaymentsMock || cfg.PaymentsURL == "" {
		return NewMockProvider()
	}
	return NewClient(cfg.PaymentsURL, cfg.PaymentsAPIKey)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

func NewClient(baseURL, apiKey string) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.Logger = nil
	return &Client{baseURL: baseURL, apiKey: apiKey, http: c}
}

func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	if amount <= 0 {
		return nil, apierrors.ErrBadDonationAmount
	}
	return c.post(ctx, "/v1/payment_intents", map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	})
}

func (c *Client) ConfirmIntent(ctx context.Context, intentId string) (*Intent, error) {
	return c.post(ctx, fmt.Sprintf("/v1/payment_intents/%s/confirm", intentId), nil)
}

func (c *Client) post(ctx context.Context, path string, body map[string]interface{}) (*Intent, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload.Bytes())
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierrors.ErrPaymentProviderFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return nil, apierrors.ErrPaymentDeclined
	}
	if resp.StatusCode >= 400 {
		return nil, apierrors.ErrPaymentProviderFailed
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// MockProvider хранит намерения в памяти и всегда подтверждает платеж.
type MockProvider struct {
	mu      sync.Mutex
	intents map[string]*Intent
}

func NewMockProvider() *MockProvider {
	return &MockProvider{intents: map[string]*Intent{}}
}

func (m *MockProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	if amount <= 0 {
		return nil, apierrors.ErrBadDonationAmount
	}
	id, _ := uuid.NewV4()
	secret, _ := uuid.NewV4()
	intent := &Intent{
		Id:           "pi_mock_" + id.String(),
		Amount:       amount,
		Currency:     currency,
		ClientSecret: secret.String(),
		Status:       IntentRequiresConfirmation,
	}

	m.mu.Lock()
	m.intents[intent.Id] = intent
	m.mu.Unlock()
	return intent, nil
}

func (m *MockProvider) ConfirmIntent(ctx context.Context, intentId string) (*Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent, ok := m.intents[intentId]
	if !ok {
		return nil, apierrors.ErrDonationNotFound
	}
	intent.Status = IntentSucceeded
	return intent, nil
}
