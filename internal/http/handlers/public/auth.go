package public

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/cache"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// Register creates a member account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		City:     req.City,
		Country:  req.Country,
	})
	if err != nil {
		respondWithMappedError(c, err, registerErrorRules, response.CodeInternal, "registration failed")
		return
	}

	response.Success(c, gin.H{"user": userView(user)})
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// Login authenticates a member and issues a JWT. Attempts are counted
// per IP and email in a fixed redis window.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if err := h.checkLoginRateLimit(c, req.Email); err != nil {
		respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "login failed")
		return
	}

	if h.CaptchaService != nil && h.CaptchaService.LoginEnabled() {
		if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
			respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "login failed")
			return
		}
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "login failed")
		return
	}

	response.Success(c, gin.H{
		"user":       userView(user),
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(userID)
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "load user failed")
		return
	}
	response.Success(c, gin.H{"user": userView(user)})
}

func (h *Handler) checkLoginRateLimit(c *gin.Context, email string) error {
	limit := h.Config.Security.LoginRateLimit
	if limit.MaxAttempts <= 0 || !cache.Enabled() {
		return nil
	}
	key := fmt.Sprintf("login:%s:%s", c.ClientIP(), strings.ToLower(strings.TrimSpace(email)))
	window := time.Duration(limit.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	count, err := cache.Incr(context.Background(), key, window)
	if err != nil {
		// counter errors fail open
		return nil
	}
	if count > int64(limit.MaxAttempts) {
		return service.ErrRateLimited
	}
	return nil
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":                user.ID,
		"email":             user.Email,
		"full_name":         user.FullName,
		"phone":             user.Phone,
		"city":              user.City,
		"country":           user.Country,
		"membership_tier":   user.MembershipTier,
		"membership_expiry": user.MembershipExpiry,
		"created_at":        user.CreatedAt,
	}
}
