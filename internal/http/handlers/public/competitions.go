package public

import (
	"strconv"
	"time"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CompetitionList lists competitions.
func (h *Handler) CompetitionList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	competitions, total, err := h.CompetitionService.List(repository.CompetitionListFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load competitions failed", err)
		return
	}
	response.SuccessWithPage(c, competitions, handlershared.BuildPagination(page, pageSize, total))
}

// CompetitionDetail returns a competition with its participants ranked
// by votes.
func (h *Handler) CompetitionDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid competition id", nil)
		return
	}
	competition, participants, err := h.CompetitionService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "competition not found"},
		}, response.CodeInternal, "load competition failed")
		return
	}
	response.Success(c, gin.H{
		"competition":  competition,
		"participants": participants,
	})
}

// CompetitionCreateRequest opens a competition.
type CompetitionCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Prize       string     `json:"prize"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	MaxEntries  int        `json:"max_entries"`
	Location    string     `json:"location"`
}

// CompetitionCreate opens a competition.
func (h *Handler) CompetitionCreate(c *gin.Context) {
	var req CompetitionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	competition, err := h.CompetitionService.Create(service.CompetitionCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Prize:       req.Prize,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxEntries:  req.MaxEntries,
		Location:    req.Location,
	})
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "create competition failed")
		return
	}
	response.Success(c, competition)
}

// ParticipantRequest registers an entry.
type ParticipantRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	PictureURL string `json:"picture_url"`
}

// CompetitionAddParticipant enters a contestant.
func (h *Handler) CompetitionAddParticipant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid competition id", nil)
		return
	}
	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	participant, err := h.CompetitionService.AddParticipant(uint(id), service.ParticipantInput{
		UserID:     optionalUserID(c),
		Name:       req.Name,
		Phone:      req.Phone,
		PictureURL: req.PictureURL,
	})
	if err != nil {
		respondWithMappedError(c, err, competitionEntryErrorRules, response.CodeInternal, "add participant failed")
		return
	}
	response.Success(c, participant)
}

// VoteRequest casts a vote for a participant.
type VoteRequest struct {
	ParticipantID uint `json:"participant_id" binding:"required"`
}

// CompetitionVote casts the caller's single vote in a competition.
func (h *Handler) CompetitionVote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid competition id", nil)
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	participant, err := h.CompetitionService.Vote(uint(id), req.ParticipantID, userID)
	if err != nil {
		respondWithMappedError(c, err, voteErrorRules, response.CodeInternal, "vote failed")
		return
	}
	response.Success(c, participant)
}
