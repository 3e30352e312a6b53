package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/keys"
	"github.com/oghanim/triviarena/internal/service"
)

type CreateSessionPayload struct {
	Name string `json:"name"`
}

// CreateSession creates a new lobby and returns its join code plus the
// game master's identity.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, err := service.CreateSession(h.repo, req.Name, h.defaults)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"join_code":        s.JoinCode,
		"participant_uuid": s.Participants[0].ParticipantUUID,
		"session":          s,
	})
}

type JoinSessionPayload struct {
	JoinCode string `json:"join_code"`
	Name     string `json:"name"`
}

// JoinSession adds a contestant to an open lobby via its join code.
func (h *SessionHandler) JoinSession(c *gin.Context) {
	var req JoinSessionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code := keys.NormalizeJoinCode(req.JoinCode)
	if code == "" || !keys.ValidJoinCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	unlock := h.locks.Lock(code)
	defer unlock()

	s, err := h.repo.FindSessionByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	updated, p, err := service.JoinSession(h.repo, s.ID, req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"participant_uuid": p.ParticipantUUID,
		"session":          updated,
	})
}

type ReadyPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	Ready           bool   `json:"ready"`
}

// SetReady toggles the caller's readiness flag.
func (h *SessionHandler) SetReady(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req ReadyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.SetReady(h.repo, s.ID, req.ParticipantUUID, req.Ready)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type RenamePayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	Name            string `json:"name"`
}

// Rename updates the caller's display name.
func (h *SessionHandler) Rename(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req RenamePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.RenameParticipant(h.repo, s.ID, req.ParticipantUUID, req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type KickPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	TargetUUID      string `json:"target_uuid"`
}

// Kick removes a contestant from the session (GM only).
func (h *SessionHandler) Kick(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req KickPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.KickParticipant(h.repo, s.ID, req.ParticipantUUID, req.TargetUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type SettingsPayload struct {
	ParticipantUUID    string `json:"participant_uuid"`
	BoardSize          int    `json:"board_size"`
	MaxParticipants    int    `json:"max_participants"`
	UseAbilities       bool   `json:"use_abilities"`
	RandomizeAbilities bool   `json:"randomize_abilities"`
	Catalog            []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"ability_catalog"`
}

// UpdateSettings applies the GM's lobby settings edits.
func (h *SessionHandler) UpdateSettings(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req SettingsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	var catalog []game.AbilityDef
	if req.Catalog != nil {
		catalog = make([]game.AbilityDef, len(req.Catalog))
		for i, a := range req.Catalog {
			catalog[i] = game.AbilityDef{Position: i, Name: a.Name, Description: a.Description}
		}
	}
	updated, err := service.UpdateSettings(h.repo, s.ID, req.ParticipantUUID, service.UpdateSettingsRequest{
		BoardSize:          req.BoardSize,
		MaxParticipants:    req.MaxParticipants,
		UseAbilities:       req.UseAbilities,
		RandomizeAbilities: req.RandomizeAbilities,
		Catalog:            catalog,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type AssignAbilityPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
	TargetUUID      string `json:"target_uuid"`
	AbilityName     string `json:"ability_name"`
}

// AssignAbility manually assigns (or clears) a participant's ability.
func (h *SessionHandler) AssignAbility(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req AssignAbilityPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.AssignAbility(h.repo, s.ID, req.ParticipantUUID, req.TargetUUID, req.AbilityName)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type CategoriesPayload struct {
	ParticipantUUID string   `json:"participant_uuid"`
	Categories      []string `json:"categories"`
}

// SetCategories stores the GM's ordered category labels.
func (h *SessionHandler) SetCategories(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req CategoriesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.SetCategories(h.repo, s.ID, req.ParticipantUUID, req.Categories)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type GenerateCategoriesPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
}

// GenerateCategories asks the text-generation collaborator for category
// labels, falling back to deterministic placeholders on failure.
func (h *SessionHandler) GenerateCategories(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req GenerateCategoriesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.GenerateCategories(c.Request.Context(), h.repo, s.ID, req.ParticipantUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type StartAuthoringPayload struct {
	ParticipantUUID string `json:"participant_uuid"`
}

// StartAuthoring moves the lobby into the question-authoring phase.
func (h *SessionHandler) StartAuthoring(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req StartAuthoringPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	unlock := h.locks.Lock(s.JoinCode)
	defer unlock()

	updated, err := service.StartAuthoring(h.repo, s.ID, req.ParticipantUUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
