package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/service"
)

type ActivateAbilityPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	TargetUUID      string `json:"target_uuid"`
}

// ActivateAbility spends score to open the target's ability window and
// returns the activation announcement alongside the updated session.
func (h *SessionHandler) ActivateAbility(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req ActivateAbilityPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	target := req.TargetUUID
	if target == "" {
		target = req.ParticipantUUID
	}
	updated, announcement, err := service.ActivateAbility(h.repo, s.ID, req.ParticipantUUID, target)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"announcement": announcement,
		"session":      updated,
	})
}

type ClearAnnouncementPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
}

// ClearAnnouncement dismisses the current ability activation banner.
func (h *SessionHandler) ClearAnnouncement(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req ClearAnnouncementPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.ClearAnnouncement(h.repo, s.ID, req.ParticipantUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
