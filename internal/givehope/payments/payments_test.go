package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/stretchr/testify/assert"
)

func TestMockProvider(t *testing.T) {
	m := NewMockProvider()
	ctx := context.Background()

	intent, err := m.CreateIntent(ctx, 2500, "usd")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.Id, "pi_mock_"))
	assert.NotEmpty(t, intent.ClientSecret)
	assert.Equal(t, IntentRequiresConfirmation, intent.Status)

	confirmed, err := m.ConfirmIntent(ctx, intent.Id)
	assert.NoError(t, err)
	assert.Equal(t, IntentSucceeded, confirmed.Status)
}

func TestMockProviderBadAmount(t *testing.T) {
	m := NewMockProvider()
	_, err := m.CreateIntent(context.Background(), 0, "usd")
	assert.ErrorIs(t, err, apierrors.ErrBadDonationAmount)
}

func TestMockProviderUnknownIntent(t *testing.T) {
	m := NewMockProvider()
	_, err := m.ConfirmIntent(context.Background(), "pi_mock_missing")
	assert.ErrorIs(t, err, apierrors.ErrDonationNotFound)
}

func TestNewProviderSelection(t *testing.T) {
	mockCfg := &config.Config{PaymentsMock: true, PaymentsURL: "https://pay.example.org"}
	if _, ok := NewProvider(mockCfg).(*MockProvider); !ok {
		t.Fatal("mock flag must force the mock provider")
	}

	bare := &config.Config{}
	if _, ok := NewProvider(bare).(*MockProvider); !ok {
		t.Fatal("missing provider url must fall back to the mock")
	}

	real := &config.Config{PaymentsURL: "https://pay.example.org", PaymentsAPIKey: "sk_test"}
	if _, ok := NewProvider(real).(*Client); !ok {
		t.Fatal("configured url must produce the http client")
	}
}

func TestClientCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 2500, body["amount"])

		json.NewEncoder(w).Encode(Intent{
			Id:           "pi_1",
			Amount:       2500,
			Currency:     "usd",
			ClientSecret: "secret",
			Status:       IntentRequiresConfirmation,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	intent, err := c.CreateIntent(context.Background(), 2500, "usd")
	assert.NoError(t, err)
	assert.Equal(t, "pi_1", intent.Id)
	assert.Equal(t, IntentRequiresConfirmation, intent.Status)
}

func TestClientDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	_, err := c.ConfirmIntent(context.Background(), "pi_1")
	assert.ErrorIs(t, err, apierrors.ErrPaymentDeclined)
}

func TestClientBadAmountShortCircuits(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "sk_test")
	_, err := c.CreateIntent(context.Background(), -100, "usd")
	assert.ErrorIs(t, err, apierrors.ErrBadDonationAmount)
}
