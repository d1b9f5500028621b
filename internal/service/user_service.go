package service

import (
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"
)

// UserService manages member profiles and membership tiers.
type UserService struct {
	userRepo repository.UserRepository
	appRepo  repository.JobApplicationRepository
}

// NewUserService creates a user service.
func NewUserService(userRepo repository.UserRepository, appRepo repository.JobApplicationRepository) *UserService {
	return &UserService{userRepo: userRepo, appRepo: appRepo}
}

// GetByID returns a user.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ProfileUpdateInput is the editable profile field set. Nil pointers
// leave the stored value untouched.
type ProfileUpdateInput struct {
	FullName          *string
	Phone             *string
	Address           *string
	City              *string
	Country           *string
	DateOfBirth       *time.Time
	ProfilePictureURL *string
}

// UpdateProfile applies profile edits. The password hash and balances
// are not reachable from here.
func (s *UserService) UpdateProfile(id uint, input ProfileUpdateInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.City != nil {
		user.City = strings.TrimSpace(*input.City)
	}
	if input.Country != nil {
		user.Country = strings.TrimSpace(*input.Country)
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.ProfilePictureURL != nil {
		user.ProfilePictureURL = strings.TrimSpace(*input.ProfilePictureURL)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListApplications returns the user's job applications.
func (s *UserService) ListApplications(userID uint, page, pageSize int) ([]models.JobApplication, int64, error) {
	return s.appRepo.List(repository.JobApplicationListFilter{
		Page:        page,
		PageSize:    pageSize,
		ApplicantID: userID,
	})
}

// Membership is the membership view of a user.
type Membership struct {
	UserID    uint       `json:"user_id"`
	Tier      string     `json:"tier"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
}

// GetMembership derives the membership view from the user row.
func (s *UserService) GetMembership(userID uint) (*Membership, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	active := user.MembershipExpiry == nil || user.MembershipExpiry.After(time.Now())
	return &Membership{
		UserID:    user.ID,
		Tier:      user.MembershipTier,
		ExpiresAt: user.MembershipExpiry,
		IsActive:  active,
	}, nil
}

// SetMembershipTier updates the user's tier and expiry.
func (s *UserService) SetMembershipTier(userID uint, tier string, expiry *time.Time) (*Membership, error) {
	tier = strings.ToLower(strings.TrimSpace(tier))
	switch tier {
	case models.TierBasic, models.TierPremium, models.TierElite:
	default:
		return nil, ErrInvalidInput
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.MembershipTier = tier
	user.MembershipExpiry = expiry
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return s.GetMembership(userID)
}

// Roles returns the user's role names.
func (s *UserService) Roles(userID uint) ([]string, error) {
	return s.userRepo.RolesOf(userID)
}
