package service

import (
	"errors"

	"github.com/oghanim/triviarena/internal/engine"
	"github.com/oghanim/triviarena/internal/game"
)

var ErrBoardIncomplete = errors.New("approved questions do not fill the board yet")

// StartMatch assembles the board from the approved question set and
// moves the session into play. The authoring phase only completes once
// the approved count matches the board's slot count.
func StartMatch(repo SessionRepo, sessionID uint, callerUUID string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if s.Phase != game.PhaseAuthoring {
		return nil, ErrNotAuthoring
	}
	if s.ApprovedCount() != s.BoardSize*s.BoardSize {
		return nil, ErrBoardIncomplete
	}

	cells := engine.AssembleBoard(s.CategoryList(), s.ApprovedQuestions(), s.BoardSize)
	if err := repo.ReplaceCells(s.ID, cells); err != nil {
		return nil, err
	}
	s.Cells = cells

	s.Phase = game.PhaseInProgress
	s.TurnState = game.TurnAwaitingSelection
	s.Message = "The match has started. The game master picks the first cell."
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
