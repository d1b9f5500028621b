package public

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/provider"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// testEnvelope mirrors the API envelope for assertions.
type testEnvelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.JobApplication{},
		&models.PaymentAttempt{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Server.BaseURL = "https://app.example.com"
	cfg.JWT.SecretKey = "0123456789abcdef0123456789abcdef"
	cfg.JWT.ExpireHours = 24
	cfg.Payment.ExpireMinutes = 15

	ctn := &provider.Container{
		Config:      cfg,
		QueueClient: queue.NewDisabledClient(),
	}
	ctn.UserRepo = repository.NewUserRepository(db)
	ctn.JobRepo = repository.NewJobRepository(db)
	ctn.JobApplicationRepo = repository.NewJobApplicationRepository(db)
	ctn.PaymentAttemptRepo = repository.NewPaymentAttemptRepository(db)

	ctn.AuthService = service.NewAuthService(cfg, ctn.UserRepo)
	ctn.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	ctn.UserService = service.NewUserService(ctn.UserRepo, ctn.JobApplicationRepo)
	ctn.JobService = service.NewJobService(ctn.JobRepo, ctn.JobApplicationRepo)
	ctn.PaymentService = service.NewPaymentService(cfg, ctn.PaymentAttemptRepo, ctn.UserRepo, ctn.QueueClient)

	return New(ctn)
}

// performJSON invokes a handler with a JSON request and decodes the
// envelope from the recorded response.
func performJSON(t *testing.T, handlerFn gin.HandlerFunc, method, target, body string, params gin.Params) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Params = params

	handlerFn(c)

	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope failed: %v, body: %s", err, w.Body.String())
	}
	return w, env
}

func TestHealthEnvelope(t *testing.T) {
	h := newTestHandler(t)

	w, env := performJSON(t, h.Health, "GET", "/health", "", nil)
	if w.Code != 200 {
		t.Fatalf("expected http 200, got %d", w.Code)
	}
	if env.StatusCode != 0 {
		t.Fatalf("expected status_code 0, got %d", env.StatusCode)
	}
	var data struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if data.Status != "ok" {
		t.Fatalf("expected status ok, got %q", data.Status)
	}
}
