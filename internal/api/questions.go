package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/service"
)

type SubmitQuestionPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	Category        string `json:"category"`
	Prompt          string `json:"prompt"`
	Answer          string `json:"answer"`
	// Points is only honored for GM submissions; contestant questions
	// start pending with zero points.
	Points int `json:"points"`
}

// SubmitQuestion files a question for moderation (or, for the GM,
// directly onto the approved set).
func (h *SessionHandler) SubmitQuestion(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req SubmitQuestionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, q, err := service.SubmitQuestion(h.repo, s.ID, req.ParticipantUUID, req.Category, req.Prompt, req.Answer, req.Points)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"question_uuid": q.QuestionUUID,
		"session":       updated,
	})
}

type ReviewPayload struct {
	ParticipantUUID string  `json:"participant_uuid"`
	Decision        string  `json:"decision"`
	Category        *string `json:"category"`
	Prompt          *string `json:"prompt"`
	Answer          *string `json:"answer"`
	Points          *int    `json:"points"`
}

// ReviewQuestion applies GM edits and an approve/reject decision.
func (h *SessionHandler) ReviewQuestion(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req ReviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.ReviewQuestion(h.repo, s.ID, req.ParticipantUUID, c.Param("questionID"), service.ReviewEdits{
		Category: req.Category,
		Prompt:   req.Prompt,
		Answer:   req.Answer,
		Points:   req.Points,
	}, game.QuestionStatus(req.Decision))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// QuestionSlots lists the point values still free for a category, used
// by GM authoring and review forms. Pass exclude=<question_uuid> while
// editing so the question's current slot stays offered.
func (h *SessionHandler) QuestionSlots(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	slots := service.AvailableSlots(s, category, c.Query("exclude"))
	c.JSON(http.StatusOK, gin.H{"category": category, "available_points": slots})
}

type StartMatchPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
}

// StartMatch assembles the board and begins play.
func (h *SessionHandler) StartMatch(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req StartMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.StartMatch(h.repo, s.ID, req.ParticipantUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
