package service

import (
	"errors"
	"math/rand"

	"github.com/oghanim/triviarena/internal/game"
)

var (
	ErrNotAllReady          = errors.New("not every participant is ready")
	ErrRosterTooSmall       = errors.New("at least one contestant is required")
	ErrCategoriesIncomplete = errors.New("category labels are not complete")
)

// StartAuthoring moves the session from the lobby to the authoring
// phase. All participants must be ready and every board column needs a
// category label. Ability assignment is finalized here: randomized mode
// shuffles the catalog over the roster, manual mode keeps whatever the
// GM assigned, and disabled abilities are cleared outright.
func StartAuthoring(repo SessionRepo, sessionID uint, callerUUID string) (*game.Session, error) {
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
	if len(s.Participants) < 2 {
		return nil, ErrRosterTooSmall
	}
	if !s.AllReady() {
		return nil, ErrNotAllReady
	}
	if !s.CategoriesComplete() {
		return nil, ErrCategoriesIncomplete
	}

	assignAbilities(s)

	s.Phase = game.PhaseAuthoring
	s.Message = "Question authoring has started. Submit your questions for review."
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

func assignAbilities(s *game.Session) {
	if !s.UseAbilities {
		for i := range s.Participants {
			s.Participants[i].AbilityName = ""
			s.Participants[i].AbilityDescription = ""
		}
		return
	}
	if !s.RandomizeAbilities {
		// Manual mode: assignments were made in the lobby; keep them.
		return
	}

	// Catalog entries with blank names are placeholders, not assignable.
	valid := make([]game.AbilityDef, 0, len(s.AbilityCatalog))
	for _, a := range s.AbilityCatalog {
		if a.Name != "" {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		for i := range s.Participants {
			s.Participants[i].AbilityName = ""
			s.Participants[i].AbilityDescription = ""
		}
		return
	}

	shuffled := make([]game.AbilityDef, len(valid))
	copy(shuffled, valid)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for i := range s.Participants {
		def := shuffled[i%len(shuffled)]
		s.Participants[i].AbilityName = def.Name
		s.Participants[i].AbilityDescription = def.Description
	}
}
