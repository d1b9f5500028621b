package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/elverra/zenika-api/internal/http/response"
)

func TestOrangeInitiateMissingCredentials(t *testing.T) {
	h := newTestHandler(t)

	var vendorCalls int64
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&vendorCalls, 1)
	}))
	defer vendor.Close()
	h.Config.Payment.Orange.BaseURL = vendor.URL
	h.Config.Payment.Orange.TokenURL = vendor.URL + "/token"

	body := `{"amount":"5000","phone":"+22370000000","email":"amina@example.com","purpose":"premium"}`
	w, env := performJSON(t, h.PaymentInitiateOrange, "POST", "/api/payments/initiate-orange-money", body, nil)
	if w.Code != 200 {
		t.Fatalf("error envelopes ride on http 200, got %d", w.Code)
	}
	if env.StatusCode != response.CodeInternal {
		t.Fatalf("expected status_code %d, got %d", response.CodeInternal, env.StatusCode)
	}
	if env.Msg != "orange money is not configured" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
	if got := atomic.LoadInt64(&vendorCalls); got != 0 {
		t.Fatalf("vendor must not be called without credentials, got %d calls", got)
	}
}

func TestSamaInitiateMissingCredentials(t *testing.T) {
	h := newTestHandler(t)

	var vendorCalls int64
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&vendorCalls, 1)
	}))
	defer vendor.Close()
	h.Config.Payment.Sama.BaseURL = vendor.URL

	body := `{"amount":"5000","phone":"+22370000000","email":"amina@example.com"}`
	_, env := performJSON(t, h.PaymentInitiateSama, "POST", "/api/payments/initiate-sama-money", body, nil)
	if env.StatusCode != response.CodeServiceUnavailable {
		t.Fatalf("expected status_code %d, got %d", response.CodeServiceUnavailable, env.StatusCode)
	}
	if env.Msg != "sama money is not configured" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
	if got := atomic.LoadInt64(&vendorCalls); got != 0 {
		t.Fatalf("vendor must not be called without credentials, got %d calls", got)
	}
}

func TestOrangeInitiateInvalidBody(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.PaymentInitiateOrange, "POST", "/api/payments/initiate-orange-money", `{"amount":`, nil)
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected status_code %d, got %d", response.CodeBadRequest, env.StatusCode)
	}
}

func TestPaymentVerifyUnknownReference(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.PaymentVerify, "POST", "/api/payments/verify",
		`{"gateway":"orange_money","reference":"OM-MISSING"}`, nil)
	if env.StatusCode != response.CodeNotFound {
		t.Fatalf("expected status_code %d, got %d", response.CodeNotFound, env.StatusCode)
	}
	if env.Msg != "payment not found" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
}

func TestOrangeInitiateFullFlow(t *testing.T) {
	h := newTestHandler(t)

	vendor := newOrangeTestVendor(t)
	defer vendor.Close()
	h.Config.Payment.Orange.ClientID = "client-1"
	h.Config.Payment.Orange.ClientSecret = "secret-1"
	h.Config.Payment.Orange.MerchantKey = "merchant-1"
	h.Config.Payment.Orange.BaseURL = vendor.URL
	h.Config.Payment.Orange.TokenURL = vendor.URL + "/token"

	body := `{"amount":"5000","currency":"OUV","phone":"+22370000000","email":"amina@example.com","name":"Amina Traore","purpose":"premium"}`
	_, env := performJSON(t, h.PaymentInitiateOrange, "POST", "/api/payments/initiate-orange-money", body, nil)
	if env.StatusCode != 0 {
		t.Fatalf("initiation should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}
	var data struct {
		Success    bool   `json:"success"`
		PaymentURL string `json:"payment_url"`
		Reference  string `json:"reference"`
		Status     string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if !data.Success || data.PaymentURL == "" || data.Reference == "" {
		t.Fatalf("incomplete initiation result: %+v", data)
	}
	if data.Status != "initiated" {
		t.Fatalf("expected status initiated, got %q", data.Status)
	}

	_, env = performJSON(t, h.PaymentVerify, "POST", "/api/payments/verify",
		`{"gateway":"orange","reference":"`+data.Reference+`"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("verify should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}
	var verified struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &verified); err != nil {
		t.Fatalf("decode verify data failed: %v", err)
	}
	if verified.Status != "initiated" {
		t.Fatalf("expected initiated attempt, got %q", verified.Status)
	}
}

// newOrangeTestVendor serves the token and webpayment endpoints of a
// fake Orange Money backend.
func newOrangeTestVendor(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"payment_url":"https://webpayment.example.com/p/abc","pay_token":"pay-1","notif_token":"notif-1"}`))
		}
	}))
}
