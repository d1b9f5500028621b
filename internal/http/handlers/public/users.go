package public

import (
	"strconv"
	"time"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UserDetail returns a user's public profile.
func (h *Handler) UserDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	user, err := h.UserService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "user not found"},
		}, response.CodeInternal, "load user failed")
		return
	}
	response.Success(c, user)
}

// ProfileUpdateRequest edits profile fields. Omitted fields stay
// untouched.
type ProfileUpdateRequest struct {
	FullName          *string    `json:"full_name"`
	Phone             *string    `json:"phone"`
	Address           *string    `json:"address"`
	City              *string    `json:"city"`
	Country           *string    `json:"country"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	ProfilePictureURL *string    `json:"profile_picture_url"`
}

// UserUpdateProfile edits a user's profile.
func (h *Handler) UserUpdateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	user, err := h.UserService.UpdateProfile(uint(id), service.ProfileUpdateInput{
		FullName:          req.FullName,
		Phone:             req.Phone,
		Address:           req.Address,
		City:              req.City,
		Country:           req.Country,
		DateOfBirth:       req.DateOfBirth,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "user not found"},
		}, response.CodeInternal, "update profile failed")
		return
	}
	response.Success(c, user)
}

// UserApplications lists a user's job applications.
func (h *Handler) UserApplications(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	page, pageSize := handlershared.QueryPagination(c)
	apps, total, err := h.UserService.ListApplications(uint(id), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "load applications failed", err)
		return
	}
	response.SuccessWithPage(c, apps, handlershared.BuildPagination(page, pageSize, total))
}

// UserBookmarks always returns an empty list. Bookmarks live on the
// client.
func (h *Handler) UserBookmarks(c *gin.Context) {
	response.Success(c, gin.H{"bookmarks": []interface{}{}})
}

// MembershipDetail returns a user's membership state.
func (h *Handler) MembershipDetail(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	membership, err := h.UserService.GetMembership(uint(userID))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "user not found"},
		}, response.CodeInternal, "load membership failed")
		return
	}
	response.Success(c, membership)
}

// MembershipRequest sets a member's tier.
type MembershipRequest struct {
	UserID    uint       `json:"user_id" binding:"required"`
	Tier      string     `json:"tier" binding:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// MembershipSet assigns a membership tier.
func (h *Handler) MembershipSet(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	membership, err := h.UserService.SetMembershipTier(req.UserID, req.Tier, req.ExpiresAt)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "user not found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid tier"},
		}, response.CodeInternal, "set membership failed")
		return
	}
	response.Success(c, membership)
}
