package public

import (
	"encoding/json"
	"testing"

	"github.com/elverra/zenika-api/internal/http/response"
)

const testRegisterBody = `{"email":"amina@example.com","password":"s3cret-pass","full_name":"Amina Traore","city":"Bamako","country":"Mali"}`

func TestRegisterReturnsUserView(t *testing.T) {
	h := newTestHandler(t)

	w, env := performJSON(t, h.Register, "POST", "/api/auth/register", testRegisterBody, nil)
	if w.Code != 200 {
		t.Fatalf("expected http 200, got %d", w.Code)
	}
	if env.StatusCode != 0 {
		t.Fatalf("expected status_code 0, got %d (msg %q)", env.StatusCode, env.Msg)
	}
	var data struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if data.User.ID == 0 {
		t.Fatalf("expected persisted user id")
	}
	if data.User.Email != "amina@example.com" {
		t.Fatalf("unexpected email: %q", data.User.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.Register, "POST", "/api/auth/register", testRegisterBody, nil)
	if env.StatusCode != 0 {
		t.Fatalf("first registration should succeed, got %d", env.StatusCode)
	}

	w, env := performJSON(t, h.Register, "POST", "/api/auth/register", testRegisterBody, nil)
	if w.Code != 200 {
		t.Fatalf("error envelopes ride on http 200, got %d", w.Code)
	}
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected status_code %d, got %d", response.CodeBadRequest, env.StatusCode)
	}
	if env.Msg != "email already registered" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
}

func TestRegisterMissingPassword(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.Register, "POST", "/api/auth/register", `{"email":"amina@example.com"}`, nil)
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected status_code %d, got %d", response.CodeBadRequest, env.StatusCode)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.Register, "POST", "/api/auth/register", testRegisterBody, nil)
	if env.StatusCode != 0 {
		t.Fatalf("registration should succeed, got %d", env.StatusCode)
	}

	_, env = performJSON(t, h.Login, "POST", "/api/auth/login", `{"email":"amina@example.com","password":"wrong-pass"}`, nil)
	if env.StatusCode != response.CodeUnauthorized {
		t.Fatalf("expected status_code %d, got %d", response.CodeUnauthorized, env.StatusCode)
	}
	if env.Msg != "invalid email or password" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.Register, "POST", "/api/auth/register", testRegisterBody, nil)
	if env.StatusCode != 0 {
		t.Fatalf("registration should succeed, got %d", env.StatusCode)
	}

	_, env = performJSON(t, h.Login, "POST", "/api/auth/login", `{"email":"AMINA@example.com","password":"s3cret-pass"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("login should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}
	var data struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if data.Token == "" {
		t.Fatalf("expected a token")
	}
	if data.ExpiresAt == "" {
		t.Fatalf("expected an expiry timestamp")
	}
}
