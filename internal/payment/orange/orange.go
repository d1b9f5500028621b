package orange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("orange money config invalid")
	ErrAuthFailed      = errors.New("orange money auth failed")
	ErrRequestFailed   = errors.New("orange money request failed")
	ErrResponseInvalid = errors.New("orange money response invalid")
)

// Payment statuses reported on the notification channel.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Config holds the WebPayment credentials.
type Config struct {
	BaseURL      string `json:"base_url"`
	TokenURL     string `json:"token_url"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	MerchantKey  string `json:"merchant_key"`
	MerchantName string `json:"merchant_name"`
}

// CreateInput is a payment intent request.
type CreateInput struct {
	Reference string
	Amount    string
	Currency  string
	ReturnURL string
	CancelURL string
	NotifyURL string
}

// CreateResult is a created payment intent.
type CreateResult struct {
	PaymentURL   string
	PaymentToken string
	Raw          map[string]interface{}
}

// CallbackData is the notification payload.
type CallbackData struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	TxnID   string `json:"txnid"`
}

// ValidateConfig checks the credential set.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		return fmt.Errorf("%w: client_id is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.ClientSecret) == "" {
		return fmt.Errorf("%w: client_secret is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.MerchantKey) == "" {
		return fmt.Errorf("%w: merchant_key is required", ErrConfigInvalid)
	}
	return nil
}

// Normalize trims fields and fills defaults.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.ClientID = strings.TrimSpace(c.ClientID)
	c.ClientSecret = strings.TrimSpace(c.ClientSecret)
	c.MerchantKey = strings.TrimSpace(c.MerchantKey)
	c.MerchantName = strings.TrimSpace(c.MerchantName)
	c.TokenURL = strings.TrimSpace(c.TokenURL)
	if c.BaseURL == "" {
		c.BaseURL = "https://api.orange.com/orange-money-webpay/dev/v1"
	}
	if c.TokenURL == "" {
		c.TokenURL = "https://api.orange.com/oauth/v1/token"
	}
}

// FetchToken exchanges the client credentials for an OAuth token.
func FetchToken(ctx context.Context, cfg *Config) (string, error) {
	if err := ValidateConfig(cfg); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = "https://api.orange.com/oauth/v1/token"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	req.SetBasicAuth(cfg.ClientID, cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	respBody, status, err := doRequest(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: token endpoint returned %d: %s", ErrAuthFailed, status, truncate(respBody))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &tokenResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrResponseInvalid)
	}
	return tokenResp.AccessToken, nil
}

// CreatePayment creates a WebPayment intent and returns the hosted
// payment URL.
func CreatePayment(ctx context.Context, cfg *Config, input CreateInput) (*CreateResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if input.Reference == "" || input.Amount == "" {
		return nil, fmt.Errorf("%w: reference and amount are required", ErrConfigInvalid)
	}

	token, err := FetchToken(ctx, cfg)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "OUV"
	}

	payload := map[string]interface{}{
		"merchant_key": cfg.MerchantKey,
		"currency":     currency,
		"order_id":     input.Reference,
		"amount":       input.Amount,
		"return_url":   input.ReturnURL,
		"cancel_url":   input.CancelURL,
		"notif_url":    input.NotifyURL,
		"lang":         "fr",
		"reference":    input.Reference,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		cfg.BaseURL+"/webpayment", strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	respBody, status, err := doRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: webpayment returned %d: %s", ErrRequestFailed, status, truncate(respBody))
	}

	var resp struct {
		PaymentURL   string `json:"payment_url"`
		PaymentToken string `json:"pay_token"`
		PayToken     string `json:"payment_token"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if resp.PaymentURL == "" {
		return nil, fmt.Errorf("%w: missing payment_url: %s", ErrResponseInvalid, truncate(respBody))
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(respBody, &raw)

	paymentToken := resp.PayToken
	if paymentToken == "" {
		paymentToken = resp.PaymentToken
	}
	return &CreateResult{
		PaymentURL:   resp.PaymentURL,
		PaymentToken: paymentToken,
		Raw:          raw,
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
	if data.OrderID == "" {
		return nil, fmt.Errorf("%w: missing order_id", ErrResponseInvalid)
	}
	return &data, nil
}

// IsSuccess reports whether the notification marks the payment paid.
func (d *CallbackData) IsSuccess() bool {
	return strings.EqualFold(strings.TrimSpace(d.Status), StatusSuccess)
}

func doRequest(req *http.Request) ([]byte, int, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func truncate(b []byte) string {
	s := string(b)
	if len(s) > 300 {
		return s[:300]
	}
	return s
}
