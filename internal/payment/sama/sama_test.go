package sama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	cfg := &Config{
		MerchantCode:   "mc",
		PublicKey:      "pk",
		TransactionKey: "tk",
		UserID:         "uid",
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("ValidateConfig should pass, got: %v", err)
	}
	if err := ValidateConfig(&Config{PublicKey: "pk", TransactionKey: "tk", UserID: "uid"}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for missing merchant code, got: %v", err)
	}
	if err := ValidateConfig(nil); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for nil config, got: %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{BaseURL: " https://example.com/V1/ ", MerchantCode: " mc "}
	cfg.Normalize()
	if cfg.BaseURL != "https://example.com/V1" {
		t.Fatalf("base url not normalized, got: %s", cfg.BaseURL)
	}
	if cfg.MerchantCode != "mc" {
		t.Fatalf("merchant code not trimmed, got: %s", cfg.MerchantCode)
	}
	empty := &Config{}
	empty.Normalize()
	if empty.BaseURL == "" {
		t.Fatalf("default base url not filled")
	}
}

func TestCreatePayment(t *testing.T) {
	var gotReference string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payment/initiate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("X-Merchant-Code") != "mc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			gotReference, _ = payload["transaction_reference"].(string)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"payment_url":"https://pay.sama.money/s1","transaction_id":"st-1"}`))
	}))
	defer server.Close()

	cfg := &Config{
		BaseURL:        server.URL,
		MerchantCode:   "mc",
		PublicKey:      "pk",
		TransactionKey: "tk",
		UserID:         "uid",
	}
	result, err := CreatePayment(context.Background(), cfg, CreateInput{
		Reference:     "SM-1",
		Amount:        "500.00",
		CustomerPhone: "+22370000000",
	})
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if result.PaymentURL != "https://pay.sama.money/s1" || result.TransactionID != "st-1" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if gotReference != "SM-1" {
		t.Fatalf("reference not forwarded, got: %s", gotReference)
	}
}

func TestCreatePaymentVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream down"}`))
	}))
	defer server.Close()

	cfg := &Config{
		BaseURL:        server.URL,
		MerchantCode:   "mc",
		PublicKey:      "pk",
		TransactionKey: "tk",
		UserID:         "uid",
	}
	_, err := CreatePayment(context.Background(), cfg, CreateInput{Reference: "SM-2", Amount: "10.00"})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got: %v", err)
	}
}

func TestParseCallback(t *testing.T) {
	data, err := ParseCallback([]byte(`{"transaction_reference":"SM-1","status":"success","transaction_id":"st-9"}`))
	if err != nil {
		t.Fatalf("ParseCallback failed: %v", err)
	}
	if data.Reference != "SM-1" || data.TransactionID != "st-9" {
		t.Fatalf("unexpected callback data: %+v", data)
	}
	if !data.IsSuccess() {
		t.Fatalf("status comparison should be case-insensitive")
	}

	if _, err := ParseCallback([]byte(`{"status":"SUCCESS"}`)); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid for missing reference, got: %v", err)
	}
}
