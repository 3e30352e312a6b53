package service

import (
	"errors"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/engine"
	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/logging"
)

var (
	ErrNoAbilityAssigned  = errors.New("participant has no ability assigned")
	ErrInsufficientScore  = errors.New("score does not cover the activation cost")
	ErrInsufficientCharge = errors.New("ability is not fully charged")
)

// Announcement is the broadcast payload emitted on a successful
// activation. It stays on the session until cleared so late readers
// still see it.
type Announcement struct {
	ParticipantUUID string `json:"participant_uuid"`
	ParticipantName string `json:"participant_name"`
	AbilityName     string `json:"ability_name"`
	Description     string `json:"description"`
}

// ActivateAbility spends score to open the target's ability window. The
// GM may activate anyone's ability; a contestant may only self-activate,
// and only at full charge. The cost escalates with every prior use by
// the same participant and is deducted without a floor.
func ActivateAbility(repo SessionRepo, sessionID uint, callerUUID, targetUUID string) (*game.Session, *Announcement, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil {
		return nil, nil, ErrParticipantNotFound
	}
	if !caller.IsGameMaster() && callerUUID != targetUUID {
		return nil, nil, ErrForbidden
	}
	target := s.FindParticipant(targetUUID)
	if target == nil {
		return nil, nil, ErrParticipantNotFound
	}
	if !target.HasAbility() {
		return nil, nil, ErrNoAbilityAssigned
	}

	cost := engine.ActivationCost(target.AbilityUses)
	if target.Score < cost {
		return nil, nil, ErrInsufficientScore
	}
	// Only the self-activation path is gated on charge; the GM can force
	// an early activation.
	if !caller.IsGameMaster() && target.AbilityCharge < game.MaxCharge {
		return nil, nil, ErrInsufficientCharge
	}

	target.Score -= cost
	target.AbilityCharge = 0
	target.AbilityUses++
	target.ActiveAbilityName = target.AbilityName

	ann := &Announcement{
		ParticipantUUID: target.ParticipantUUID,
		ParticipantName: target.Name,
		AbilityName:     target.AbilityName,
		Description:     target.AbilityDescription,
	}
	s.AnnouncedParticipant = target.Name
	s.AnnouncedAbility = target.AbilityName
	s.AnnouncedDescription = target.AbilityDescription
	s.Message = target.Name + " activated " + target.AbilityName + "!"

	logging.Info("ability activated", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldUUID:      target.ParticipantUUID,
		constants.LogFieldName:      target.AbilityName,
		"cost":                      cost,
		"uses":                      target.AbilityUses,
	})

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, ann, nil
}

// ClearAnnouncement dismisses the current activation banner. Any session
// member may clear it.
func ClearAnnouncement(repo SessionRepo, sessionID uint, callerUUID string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if s.FindParticipant(callerUUID) == nil {
		return nil, ErrParticipantNotFound
	}
	s.AnnouncedParticipant = ""
	s.AnnouncedAbility = ""
	s.AnnouncedDescription = ""
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
