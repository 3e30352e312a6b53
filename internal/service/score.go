package service

import (
	"errors"

	"github.com/oghanim/triviarena/internal/game"
)

// ScoreOp selects how AdjustScore applies its amount.
type ScoreOp string

const (
	ScoreAdd      ScoreOp = "add"
	ScoreSubtract ScoreOp = "subtract"
	ScoreSet      ScoreOp = "set"
)

var ErrInvalidAmount = errors.New("amount is not valid for this operation")

// AdjustScore is the GM's manual score edit. Add and subtract need a
// positive amount; set needs a non-negative one. Subtraction floors at
// zero; only ability activation can take a score below it.
func AdjustScore(repo SessionRepo, sessionID uint, callerUUID, targetUUID string, op ScoreOp, amount int) (*game.Session, error) {
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

	switch op {
	case ScoreAdd:
		if amount <= 0 {
			return nil, ErrInvalidAmount
		}
		target.Score += amount
	case ScoreSubtract:
		if amount <= 0 {
			return nil, ErrInvalidAmount
		}
		target.Score -= amount
		if target.Score < 0 {
			target.Score = 0
		}
	case ScoreSet:
		if amount < 0 {
			return nil, ErrInvalidAmount
		}
		target.Score = amount
	default:
		return nil, ErrInvalidAmount
	}

	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
