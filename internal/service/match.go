package service

import (
	"errors"
	"time"

	"github.com/oghanim/triviarena/internal/engine"
	"github.com/oghanim/triviarena/internal/game"
)

var (
	ErrMatchNotInProgress = errors.New("match is not in progress")
	ErrNotAwaitingSelect  = errors.New("another question is still unresolved")
	ErrQuestionNotOpen    = errors.New("no question is open")
	ErrAnswerNotShown     = errors.New("reveal the answer before scoring")
	ErrCellUnavailable    = errors.New("cell is empty or already revealed")
	ErrUnknownParticipant = errors.New("correct answerer is not in this session")
)

// SelectCell opens an unrevealed, populated cell and starts the display
// countdown. Only one cell can ever be open: selection is refused until
// the previous question resolves.
func SelectCell(repo SessionRepo, sessionID uint, callerUUID string, row, col int) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if s.Phase != game.PhaseInProgress {
		return nil, ErrMatchNotInProgress
	}
	if s.TurnState != game.TurnAwaitingSelection {
		return nil, ErrNotAwaitingSelect
	}
	cell := s.CellAt(row, col)
	if cell == nil || cell.QuestionID == nil || cell.Revealed {
		return nil, ErrCellUnavailable
	}

	r, c := row, col
	s.OpenRow = &r
	s.OpenCol = &c
	s.QuestionOpenedAt = time.Now()
	s.TurnState = game.TurnQuestionOpen
	if q := s.QuestionByID(*cell.QuestionID); q != nil {
		s.Message = "Question open: " + q.Category
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RevealAnswer shows the answer to everyone and unlocks scoring. The
// countdown value at this moment is informational only.
func RevealAnswer(repo SessionRepo, sessionID uint, callerUUID string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if s.Phase != game.PhaseInProgress {
		return nil, ErrMatchNotInProgress
	}
	if s.TurnState != game.TurnQuestionOpen {
		return nil, ErrQuestionNotOpen
	}

	s.TurnState = game.TurnAnswerShown
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ResolveQuestion scores the open question against the set of correct
// answerers and closes its cycle. An empty set awards nobody but still
// reveals the cell and advances the state machine.
func ResolveQuestion(repo SessionRepo, sessionID uint, callerUUID string, correctUUIDs []string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if s.Phase != game.PhaseInProgress {
		return nil, ErrMatchNotInProgress
	}
	if s.TurnState != game.TurnAnswerShown {
		return nil, ErrAnswerNotShown
	}
	for _, id := range correctUUIDs {
		if s.FindParticipant(id) == nil {
			return nil, ErrUnknownParticipant
		}
	}

	cell := s.OpenCell()
	if cell == nil || cell.QuestionID == nil {
		return nil, ErrQuestionNotOpen
	}
	q := s.QuestionByID(*cell.QuestionID)
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	res := engine.ScoreResolution(q.Points, q.CreatorUUID, dedupeUUIDs(correctUUIDs))
	for i := range s.Participants {
		p := &s.Participants[i]
		p.Score += res.ScoreByUUID[p.ParticipantUUID]
		p.AbilityCharge = engine.ClampCharge(p.AbilityCharge + res.ChargeByUUID[p.ParticipantUUID])
	}

	closeOpenQuestion(s, cell)
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// SkipQuestion abandons the open question without awarding anyone. Legal
// from either open state, so a GM can bail out before or after showing
// the answer; the cell is still marked revealed.
func SkipQuestion(repo SessionRepo, sessionID uint, callerUUID string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil || !caller.IsGameMaster() {
		return nil, ErrForbidden
	}
	if s.Phase != game.PhaseInProgress {
		return nil, ErrMatchNotInProgress
	}
	if s.TurnState == game.TurnAwaitingSelection {
		return nil, ErrQuestionNotOpen
	}
	cell := s.OpenCell()
	if cell == nil {
		return nil, ErrQuestionNotOpen
	}

	closeOpenQuestion(s, cell)
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// closeOpenQuestion marks the cell revealed, clears any mid-activation
// ability markers, returns to awaiting_selection and checks the terminal
// predicate.
func closeOpenQuestion(s *game.Session, cell *game.Cell) {
	cell.Revealed = true
	for i := range s.Participants {
		s.Participants[i].ActiveAbilityName = ""
	}
	s.OpenRow = nil
	s.OpenCol = nil
	s.QuestionOpenedAt = time.Time{}
	s.TurnState = game.TurnAwaitingSelection
	s.Message = "Waiting for the game master to pick a cell."

	if engine.BoardComplete(s.Cells) {
		s.Phase = game.PhaseComplete
		s.TurnState = ""
		s.Message = "The board is exhausted. Final rankings are in."
	}
}

func dedupeUUIDs(ids []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
