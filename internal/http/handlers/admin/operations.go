package admin

import (
	"strings"

	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

// OperationsRequest is the admin bootstrap payload.
type OperationsRequest struct {
	Action   string `json:"action" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   uint   `json:"user_id"`
}

// Operations handles admin bootstrap actions. The route sits outside
// the enforced admin group so a fresh deployment can create its first
// admin; once one exists, mutating actions require the admin role.
func (h *Handler) Operations(c *gin.Context) {
	var req OperationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "check_admin_exists":
		exists, err := h.UserRepo.HasAnyWithRole(models.RoleAdmin)
		if err != nil {
			respondError(c, response.CodeInternal, "check failed", err)
			return
		}
		response.Success(c, gin.H{"admin_exists": exists})

	case "create_admin":
		if !h.allowBootstrapMutation(c) {
			return
		}
		user, err := h.AuthService.Register(service.RegisterInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case service.ErrEmailExists:
				respondError(c, response.CodeBadRequest, "email already registered", nil)
			case service.ErrInvalidInput:
				respondError(c, response.CodeBadRequest, "invalid email or password", nil)
			default:
				respondError(c, response.CodeInternal, "create admin failed", err)
			}
			return
		}
		if err := h.grantAdmin(user.ID); err != nil {
			respondError(c, response.CodeInternal, "grant admin role failed", err)
			return
		}
		response.Success(c, gin.H{"user_id": user.ID, "email": user.Email})

	case "assign_admin_role":
		if !h.allowBootstrapMutation(c) {
			return
		}
		if req.UserID == 0 {
			respondError(c, response.CodeBadRequest, "user_id is required", nil)
			return
		}
		user, err := h.UserService.GetByID(req.UserID)
		if err != nil {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		if err := h.grantAdmin(user.ID); err != nil {
			respondError(c, response.CodeInternal, "grant admin role failed", err)
			return
		}
		response.Success(c, gin.H{"user_id": user.ID, "role": models.RoleAdmin})

	default:
		respondError(c, response.CodeBadRequest, "unknown action", nil)
	}
}

// allowBootstrapMutation permits the first admin creation freely and
// requires the admin role afterwards.
func (h *Handler) allowBootstrapMutation(c *gin.Context) bool {
	exists, err := h.UserRepo.HasAnyWithRole(models.RoleAdmin)
	if err != nil {
		respondError(c, response.CodeInternal, "check failed", err)
		return false
	}
	if !exists {
		return true
	}

	value, ok := c.Get("user_id")
	if !ok {
		respondError(c, response.CodeUnauthorized, "authentication required", nil)
		return false
	}
	userID, ok := value.(uint)
	if !ok {
		respondError(c, response.CodeUnauthorized, "authentication required", nil)
		return false
	}
	roles, err := h.UserService.Roles(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "check failed", err)
		return false
	}
	for _, role := range roles {
		if role == models.RoleAdmin {
			return true
		}
	}
	respondError(c, response.CodeForbidden, "admin role required", nil)
	return false
}

func (h *Handler) grantAdmin(userID uint) error {
	if err := h.UserRepo.GrantRole(userID, models.RoleAdmin); err != nil {
		return err
	}
	if h.AuthzService != nil {
		return h.AuthzService.SyncUserRoles(h.UserRepo, userID)
	}
	return nil
}
