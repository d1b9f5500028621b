package orange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	cfg := &Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		MerchantKey:  "mk",
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("ValidateConfig should pass, got: %v", err)
	}
	if err := ValidateConfig(&Config{ClientSecret: "secret", MerchantKey: "mk"}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for missing client id, got: %v", err)
	}
	if err := ValidateConfig(nil); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for nil config, got: %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{
		BaseURL:  " https://example.com/v1/ ",
		ClientID: " cid ",
	}
	cfg.Normalize()
	if cfg.BaseURL != "https://example.com/v1" {
		t.Fatalf("base url not normalized, got: %s", cfg.BaseURL)
	}
	if cfg.ClientID != "cid" {
		t.Fatalf("client id not trimmed, got: %s", cfg.ClientID)
	}
	empty := &Config{}
	empty.Normalize()
	if empty.BaseURL == "" || empty.TokenURL == "" {
		t.Fatalf("defaults not filled: %+v", empty)
	}
}

func TestCreatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			user, pass, ok := r.BasicAuth()
			if !ok || user != "cid" || pass != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1"}`))
		case "/webpayment":
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"payment_url":"https://pay.example.com/p1","pay_token":"pt-1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := &Config{
		BaseURL:      server.URL,
		TokenURL:     server.URL + "/token",
		ClientID:     "cid",
		ClientSecret: "secret",
		MerchantKey:  "mk",
	}
	result, err := CreatePayment(context.Background(), cfg, CreateInput{
		Reference: "OM-1",
		Amount:    "1000.00",
		Currency:  "OUV",
	})
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if result.PaymentURL != "https://pay.example.com/p1" {
		t.Fatalf("unexpected payment url: %s", result.PaymentURL)
	}
	if result.PaymentToken != "pt-1" {
		t.Fatalf("unexpected payment token: %s", result.PaymentToken)
	}
}

func TestCreatePaymentTokenFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	cfg := &Config{
		BaseURL:      server.URL,
		TokenURL:     server.URL + "/token",
		ClientID:     "cid",
		ClientSecret: "bad",
		MerchantKey:  "mk",
	}
	_, err := CreatePayment(context.Background(), cfg, CreateInput{Reference: "OM-2", Amount: "10.00"})
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got: %v", err)
	}
}

func TestParseCallback(t *testing.T) {
	data, err := ParseCallback([]byte(`{"order_id":"OM-1","status":"SUCCESS","txnid":"tx-9"}`))
	if err != nil {
		t.Fatalf("ParseCallback failed: %v", err)
	}
	if data.OrderID != "OM-1" || data.TxnID != "tx-9" {
		t.Fatalf("unexpected callback data: %+v", data)
	}
	if !data.IsSuccess() {
		t.Fatalf("expected success status")
	}

	if _, err := ParseCallback([]byte(`{"status":"SUCCESS"}`)); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid for missing order_id, got: %v", err)
	}
	if _, err := ParseCallback(nil); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid for empty body, got: %v", err)
	}
}
