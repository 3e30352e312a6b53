package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/keys"
	"github.com/oghanim/triviarena/internal/service"
)

// resolveSession looks up the session named by the :code path parameter.
// On failure it writes the error response and returns nil.
func (h *SessionHandler) resolveSession(c *gin.Context) *game.Session {
	code := keys.NormalizeJoinCode(c.Param("code"))
	if code == "" || !keys.ValidJoinCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return nil
	}
	s, err := h.repo.FindSessionByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return nil
	}
	return s
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrParticipantNotFound),
		errors.Is(err, service.ErrQuestionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrCannotKickGM),
		errors.Is(err, service.ErrManualAssignOnly):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrEmptyField),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrUnknownAbility),
		errors.Is(err, service.ErrUnknownParticipant),
		errors.Is(err, service.ErrInvalidPoints),
		errors.Is(err, service.ErrMissingPoints),
		errors.Is(err, service.ErrInvalidSettings),
		errors.Is(err, service.ErrCategoriesInvalid),
		errors.Is(err, service.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrNotInLobby),
		errors.Is(err, service.ErrNotAllReady),
		errors.Is(err, service.ErrRosterTooSmall),
		errors.Is(err, service.ErrCategoriesIncomplete),
		errors.Is(err, service.ErrNotAuthoring),
		errors.Is(err, service.ErrBoardIncomplete),
		errors.Is(err, service.ErrMatchNotInProgress),
		errors.Is(err, service.ErrNotAwaitingSelect),
		errors.Is(err, service.ErrQuestionNotOpen),
		errors.Is(err, service.ErrAnswerNotShown),
		errors.Is(err, service.ErrCellUnavailable),
		errors.Is(err, service.ErrNoAbilityAssigned),
		errors.Is(err, service.ErrInsufficientScore),
		errors.Is(err, service.ErrInsufficientCharge):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}
