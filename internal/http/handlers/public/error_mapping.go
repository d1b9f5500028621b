package public

import (
	"errors"

	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a business error to an envelope code and
// message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var commonListErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "resource not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid request"},
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrEmailExists, code: response.CodeBadRequest, msg: "email already registered"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid email or password"},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "invalid email or password"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, msg: "captcha verification failed"},
	{target: service.ErrRateLimited, code: response.CodeTooManyRequests, msg: "too many login attempts"},
}

var agentApplyErrorRules = []mappedHandlerError{
	{target: service.ErrAgentExists, code: response.CodeBadRequest, msg: "agent profile already exists"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "user not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid agent application"},
}

var withdrawalErrorRules = []mappedHandlerError{
	{target: service.ErrInsufficientFunds, code: response.CodeBadRequest, msg: "amount exceeds pending commissions"},
	{target: service.ErrStatusConflict, code: response.CodeBadRequest, msg: "agent is not approved"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "agent not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid withdrawal request"},
}

var competitionEntryErrorRules = []mappedHandlerError{
	{target: service.ErrCompetitionClosed, code: response.CodeBadRequest, msg: "competition is not open"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "competition not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid entry"},
}

var voteErrorRules = []mappedHandlerError{
	{target: service.ErrAlreadyVoted, code: response.CodeBadRequest, msg: "already voted in this competition"},
	{target: service.ErrCompetitionClosed, code: response.CodeBadRequest, msg: "competition is not open"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "competition or participant not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid vote"},
}

var cmsErrorRules = []mappedHandlerError{
	{target: service.ErrSlugExists, code: response.CodeBadRequest, msg: "slug already in use"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "page not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid page"},
}
