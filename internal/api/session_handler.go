package api

import (
	"github.com/oghanim/triviarena/internal/service"
	"github.com/oghanim/triviarena/internal/sessionlock"
	"github.com/oghanim/triviarena/internal/storage"
)

// SessionHandler groups all session-related HTTP handlers. Every
// mutating handler serializes on the session's lock so commands never
// interleave on the same aggregate.
type SessionHandler struct {
	repo     storage.Repository
	locks    *sessionlock.Keeper
	defaults service.SessionDefaults
}

// NewSessionHandler creates a SessionHandler with the given repository
// and the session defaults loaded from configuration.
func NewSessionHandler(repo storage.Repository, defaults service.SessionDefaults) *SessionHandler {
	return &SessionHandler{
		repo:     repo,
		locks:    sessionlock.NewKeeper(),
		defaults: defaults,
	}
}
