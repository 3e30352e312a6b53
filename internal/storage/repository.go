package storage

import (
	"github.com/oghanim/triviarena/internal/game"
)

type Repository interface {
	CreateSession(s *game.Session) error
	GetSessionByID(id uint) (*game.Session, error)
	FindSessionByJoinCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	// RemoveParticipantByUUID deletes a participant row; used when the GM
	// kicks someone out of the lobby.
	RemoveParticipantByUUID(sessionID uint, participantUUID string) error
	// ReplaceAbilityCatalog swaps the session's catalog rows for the
	// provided entries.
	ReplaceAbilityCatalog(sessionID uint, catalog []game.AbilityDef) error
	// ReplaceCells swaps the session's board rows; called once when the
	// match starts.
	ReplaceCells(sessionID uint, cells []game.Cell) error
}
