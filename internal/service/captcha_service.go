package service

import (
	"strings"
	"sync"

	"github.com/elverra/zenika-api/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge is an image captcha handed to the client.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService generates and verifies image captchas. The login
// scene is gated by config.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu    sync.Mutex
	store base64Captcha.Store
}

// NewCaptchaService creates a captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// LoginEnabled reports whether login requires a captcha.
func (s *CaptchaService) LoginEnabled() bool {
	return s.cfg.LoginEnabled
}

// GenerateImageChallenge generates a new image captcha.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	driver := base64Captcha.NewDriverString(
		normalizeCaptchaInt(s.cfg.Height, 80),
		normalizeCaptchaInt(s.cfg.Width, 240),
		normalizeCaptchaInt(s.cfg.NoiseCount, 2),
		normalizeCaptchaInt(s.cfg.ShowLine, 2),
		normalizeCaptchaInt(s.cfg.Length, 5),
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureStore())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a captcha answer, consuming the challenge.
func (s *CaptchaService) Verify(captchaID, captchaCode string) error {
	id := strings.TrimSpace(captchaID)
	code := strings.TrimSpace(captchaCode)
	if id == "" || code == "" {
		return ErrCaptchaInvalid
	}
	if !s.ensureStore().Verify(id, code, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		s.store = base64Captcha.NewMemoryStore(
			normalizeCaptchaInt(s.cfg.MaxStore, 10240),
			captchaExpiration(s.cfg.ExpireSeconds),
		)
	}
	return s.store
}
