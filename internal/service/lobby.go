package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/oghanim/triviarena/internal/config"
	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/keys"
)

// SessionRepo is the repository surface required by the service layer.
// Tests substitute an in-memory implementation.
type SessionRepo interface {
	CreateSession(s *game.Session) error
	GetSessionByID(id uint) (*game.Session, error)
	UpdateSession(s *game.Session) error
	RemoveParticipantByUUID(sessionID uint, participantUUID string) error
	ReplaceAbilityCatalog(sessionID uint, catalog []game.AbilityDef) error
	ReplaceCells(sessionID uint, cells []game.Cell) error
}

// createAttempts bounds join-code regeneration when an insert collides
// with an existing code.
const createAttempts = 5

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrForbidden           = errors.New("action requires the game master role")
	ErrCapacityExceeded    = errors.New("session is full")
	ErrInvalidName         = errors.New("name must not be empty")
	ErrNotInLobby          = errors.New("session is no longer in the lobby")
	ErrInvalidSettings     = errors.New("settings out of bounds")
	ErrManualAssignOnly    = errors.New("abilities are assigned randomly in this session")
	ErrUnknownAbility      = errors.New("ability is not in the session catalog")
	ErrCannotKickGM        = errors.New("the game master cannot be removed")
)

// SessionDefaults seeds a new session; values come from the loaded
// server configuration.
type SessionDefaults struct {
	BoardSize          int
	MaxParticipants    int
	UseAbilities       bool
	RandomizeAbilities bool
	Catalog            []game.AbilityDef
}

// CreateSession creates a lobby with its game master. The creator holds
// the GM role for the lifetime of the session; it is never reassigned.
func CreateSession(repo SessionRepo, gmName string, defaults SessionDefaults) (*game.Session, error) {
	gmName = strings.TrimSpace(gmName)
	if gmName == "" {
		return nil, ErrInvalidName
	}

	catalog := make([]game.AbilityDef, len(defaults.Catalog))
	for i, a := range defaults.Catalog {
		catalog[i] = game.AbilityDef{Position: i, Name: a.Name, Description: a.Description}
	}

	s := &game.Session{
		JoinCode:           keys.NewJoinCode(),
		Phase:              game.PhaseLobby,
		BoardSize:          defaults.BoardSize,
		MaxParticipants:    defaults.MaxParticipants,
		UseAbilities:       defaults.UseAbilities,
		RandomizeAbilities: defaults.RandomizeAbilities,
		AbilityCatalog:     catalog,
		Participants: []game.Participant{{
			ParticipantUUID: uuid.NewString(),
			Name:            gmName,
			Role:            game.RoleGameMaster,
			Ready:           true,
		}},
		Message: "Lobby created. Share the join code with the other players.",
	}
	s.SetCategoryList(make([]string, defaults.BoardSize))

	// The join code column is unique; a collision fails the insert, so
	// retry with a fresh code before giving up.
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		if err = repo.CreateSession(s); err == nil {
			return s, nil
		}
		s.JoinCode = keys.NewJoinCode()
	}
	return nil, err
}

// JoinSession adds a contestant to the lobby. Joining is only possible
// before the authoring phase starts and while the roster has room.
func JoinSession(repo SessionRepo, sessionID uint, name string) (*game.Session, *game.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrInvalidName
	}
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, nil, ErrSessionNotFound
	}
	if s.Phase != game.PhaseLobby {
		return nil, nil, ErrNotInLobby
	}
	if len(s.Participants) >= s.MaxParticipants {
		return nil, nil, ErrCapacityExceeded
	}

	p := game.Participant{
		ParticipantUUID: uuid.NewString(),
		Name:            name,
		Role:            game.RoleContestant,
	}
	s.Participants = append(s.Participants, p)
	s.Message = name + " joined the lobby."
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, &s.Participants[len(s.Participants)-1], nil
}

// SetReady toggles the caller's readiness flag.
func SetReady(repo SessionRepo, sessionID uint, callerUUID string, ready bool) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	p := s.FindParticipant(callerUUID)
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	p.Ready = ready
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RenameParticipant updates the caller's display name. Blank input is
// rejected and the prior name is left unchanged.
func RenameParticipant(repo SessionRepo, sessionID uint, callerUUID, newName string) (*game.Session, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrInvalidName
	}
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	p := s.FindParticipant(callerUUID)
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	p.Name = newName
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// KickParticipant removes a contestant from the session. Only the GM may
// kick, and the GM can never be the target.
func KickParticipant(repo SessionRepo, sessionID uint, callerUUID, targetUUID string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	target := s.FindParticipant(targetUUID)
	if target == nil {
		return nil, ErrParticipantNotFound
	}
	if target.IsGameMaster() {
		return nil, ErrCannotKickGM
	}
	// target aliases s.Participants; the compaction below overwrites it.
	targetName := target.Name
	if err := repo.RemoveParticipantByUUID(s.ID, targetUUID); err != nil {
		return nil, err
	}
	kept := s.Participants[:0]
	for _, p := range s.Participants {
		if p.ParticipantUUID != targetUUID {
			kept = append(kept, p)
		}
	}
	s.Participants = kept
	s.Message = targetName + " was removed from the session."
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSettingsRequest carries the GM's lobby settings edits. The
// catalog replaces the whole ability list; blank names stay as
// placeholders until edited.
type UpdateSettingsRequest struct {
	BoardSize          int
	MaxParticipants    int
	UseAbilities       bool
	RandomizeAbilities bool
	Catalog            []game.AbilityDef
}

// UpdateSettings applies lobby settings. Only legal before authoring
// starts; board size and player cap are bounded by the server config.
func UpdateSettings(repo SessionRepo, sessionID uint, callerUUID string, req UpdateSettingsRequest) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if s.Phase != game.PhaseLobby {
		return nil, ErrNotInLobby
	}
	if req.BoardSize < config.MinBoardSize || req.BoardSize > config.MaxBoardSize {
		return nil, ErrInvalidSettings
	}
	if req.MaxParticipants < config.MinMaxParticipants || req.MaxParticipants > config.MaxMaxParticipants {
		return nil, ErrInvalidSettings
	}
	if req.MaxParticipants < len(s.Participants) {
		return nil, ErrInvalidSettings
	}

	if req.BoardSize != s.BoardSize {
		// Resize the category list, keeping labels already entered.
		old := s.CategoryList()
		resized := make([]string, req.BoardSize)
		copy(resized, old)
		s.SetCategoryList(resized)
	}

	s.BoardSize = req.BoardSize
	s.MaxParticipants = req.MaxParticipants
	s.UseAbilities = req.UseAbilities
	s.RandomizeAbilities = req.RandomizeAbilities

	if req.Catalog != nil {
		if err := repo.ReplaceAbilityCatalog(s.ID, req.Catalog); err != nil {
			return nil, err
		}
		s.AbilityCatalog = req.Catalog
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AssignAbility manually assigns a catalog ability to a participant, or
// clears it when abilityName is empty. Only legal for the GM, and only
// when randomized assignment is off.
func AssignAbility(repo SessionRepo, sessionID uint, callerUUID, targetUUID, abilityName string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if !s.UseAbilities || s.RandomizeAbilities {
		return nil, ErrManualAssignOnly
	}
	target := s.FindParticipant(targetUUID)
	if target == nil {
		return nil, ErrParticipantNotFound
	}

	if abilityName == "" {
		target.AbilityName = ""
		target.AbilityDescription = ""
	} else {
		var def *game.AbilityDef
		for i := range s.AbilityCatalog {
			if s.AbilityCatalog[i].Name != "" && s.AbilityCatalog[i].Name == abilityName {
				def = &s.AbilityCatalog[i]
				break
			}
		}
		if def == nil {
			return nil, ErrUnknownAbility
		}
		target.AbilityName = def.Name
		target.AbilityDescription = def.Description
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
