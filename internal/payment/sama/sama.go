package sama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("sama money config invalid")
	ErrRequestFailed   = errors.New("sama money request failed")
	ErrResponseInvalid = errors.New("sama money response invalid")
)

// Callback statuses.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Config holds the SAMA Money merchant credentials.
type Config struct {
	BaseURL        string `json:"base_url"`
	MerchantCode   string `json:"merchant_code"`
	MerchantName   string `json:"merchant_name"`
	PublicKey      string `json:"public_key"`
	TransactionKey string `json:"transaction_key"`
	UserID         string `json:"user_id"`
}

// CreateInput is a payment intent request.
type CreateInput struct {
	Reference     string
	Amount        string
	Currency      string
	CustomerPhone string
	CustomerName  string
	CustomerEmail string
	CallbackURL   string
	ReturnURL     string
}

// CreateResult is a created payment intent.
type CreateResult struct {
	PaymentURL    string
	TransactionID string
	Raw           map[string]interface{}
}

// CallbackData is the notification payload.
type CallbackData struct {
	Reference     string `json:"transaction_reference"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// ValidateConfig checks the credential set.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.MerchantCode) == "" {
		return fmt.Errorf("%w: merchant_code is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.PublicKey) == "" {
		return fmt.Errorf("%w: public_key is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.TransactionKey) == "" {
		return fmt.Errorf("%w: transaction_key is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrConfigInvalid)
	}
	return nil
}

// Normalize trims fields and fills defaults.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.MerchantCode = strings.TrimSpace(c.MerchantCode)
	c.MerchantName = strings.TrimSpace(c.MerchantName)
	c.PublicKey = strings.TrimSpace(c.PublicKey)
	c.TransactionKey = strings.TrimSpace(c.TransactionKey)
	c.UserID = strings.TrimSpace(c.UserID)
	if c.BaseURL == "" {
		c.BaseURL = "https://smarchandamatest.sama.money/V1"
	}
}

// CreatePayment initiates a payment and returns the hosted payment URL.
func CreatePayment(ctx context.Context, cfg *Config, input CreateInput) (*CreateResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if input.Reference == "" || input.Amount == "" {
		return nil, fmt.Errorf("%w: reference and amount are required", ErrConfigInvalid)
	}

	currency := input.Currency
	if currency == "" {
		currency = "XOF"
	}
	payload := map[string]interface{}{
		"merchant_code":         cfg.MerchantCode,
		"merchant_name":         cfg.MerchantName,
		"user_id":               cfg.UserID,
		"amount":                input.Amount,
		"currency":              currency,
		"customer_phone":        input.CustomerPhone,
		"customer_name":         input.CustomerName,
		"customer_email":        input.CustomerEmail,
		"transaction_reference": input.Reference,
		"callback_url":          input.CallbackURL,
		"return_url":            input.ReturnURL,
		"public_key":            cfg.PublicKey,
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		cfg.BaseURL+"/payment/initiate", strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.PublicKey)
	req.Header.Set("X-Merchant-Code", cfg.MerchantCode)
	req.Header.Set("X-User-Id", cfg.UserID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: initiate returned %d: %s", ErrRequestFailed, resp.StatusCode, truncate(respBody))
	}

	var parsed struct {
		PaymentURL    string `json:"payment_url"`
		TransactionID string `json:"transaction_id"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if parsed.PaymentURL == "" {
		return nil, fmt.Errorf("%w: missing payment_url: %s", ErrResponseInvalid, truncate(respBody))
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(respBody, &raw)

	return &CreateResult{
		PaymentURL:    parsed.PaymentURL,
		TransactionID: parsed.TransactionID,
		Raw:           raw,
	}, nil
}

// ParseCallback decodes a notification payload.
func ParseCallback(body []byte) (*CallbackData, error) {
	if len(body) == 0 {
		return nil, ErrResponseInvalid
	}
	var data CallbackData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if data.Reference == "" {
		return nil, fmt.Errorf("%w: missing transaction_reference", ErrResponseInvalid)
	}
	return &data, nil
}

// IsSuccess reports whether the notification marks the payment paid.
func (d *CallbackData) IsSuccess() bool {
	return strings.EqualFold(strings.TrimSpace(d.Status), StatusSuccess)
}

func truncate(b []byte) string {
	s := string(b)
	if len(s) > 300 {
		return s[:300]
	}
	return s
}
