package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/service"
)

type SelectCellPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	Row             int    `json:"row"`
	Col             int    `json:"col"`
}

// SelectCell opens an unrevealed board cell (GM only).
func (h *SessionHandler) SelectCell(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req SelectCellPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.SelectCell(h.repo, s.ID, req.ParticipantUUID, req.Row, req.Col)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type RevealAnswerPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
}

// RevealAnswer shows the open question's answer and unlocks scoring.
func (h *SessionHandler) RevealAnswer(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req RevealAnswerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.RevealAnswer(h.repo, s.ID, req.ParticipantUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type ResolvePayload struct {
	ParticipantUUID string   `json:"participant_uuid"`
	CorrectUUIDs    []string `json:"correct_uuids"`
}

// Resolve scores the open question against the set of correct answerers.
func (h *SessionHandler) Resolve(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req ResolvePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.ResolveQuestion(h.repo, s.ID, req.ParticipantUUID, req.CorrectUUIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type SkipPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
}

// Skip abandons the open question without awarding points.
func (h *SessionHandler) Skip(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req SkipPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.SkipQuestion(h.repo, s.ID, req.ParticipantUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type AdjustScorePayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	TargetUUID      string `json:"target_uuid"`
	Op              string `json:"op"`
	Amount          int    `json:"amount"`
}

// AdjustScore applies a manual GM score edit (add, subtract, set).
func (h *SessionHandler) AdjustScore(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req AdjustScorePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.AdjustScore(h.repo, s.ID, req.ParticipantUUID, req.TargetUUID, service.ScoreOp(req.Op), req.Amount)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
