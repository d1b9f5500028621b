package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto
// envelope codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStatusConflict     = errors.New("status transition not allowed")
	ErrAlreadyVoted       = errors.New("voter already voted in this competition")
	ErrInsufficientFunds  = errors.New("insufficient pending commissions")
	ErrCaptchaInvalid     = errors.New("captcha verification failed")
	ErrRateLimited        = errors.New("too many attempts, try again later")
	ErrAgentExists        = errors.New("agent profile already exists")
	ErrCompetitionClosed  = errors.New("competition is not active")
	ErrSlugExists         = errors.New("slug already in use")
)
