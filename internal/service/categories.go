package service

import (
	"context"
	"errors"
	"strings"

	"github.com/oghanim/triviarena/internal/categorygen"
	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/logging"
)

var ErrCategoriesInvalid = errors.New("one non-empty category per board column is required")

// SetCategories stores the GM's ordered category labels, one per board
// column.
func SetCategories(repo SessionRepo, sessionID uint, callerUUID string, categories []string) (*game.Session, error) {
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
	if len(categories) != s.BoardSize {
		return nil, ErrCategoriesInvalid
	}
	trimmed := make([]string, len(categories))
	for i, c := range categories {
		trimmed[i] = strings.TrimSpace(c)
		if trimmed[i] == "" {
			return nil, ErrCategoriesInvalid
		}
	}
	s.SetCategoryList(trimmed)
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GenerateCategories fills the category list from the text-generation
// collaborator. Generation failures degrade to deterministic placeholder
// labels and are never surfaced as session errors.
func GenerateCategories(ctx context.Context, repo SessionRepo, sessionID uint, callerUUID string) (*game.Session, error) {
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

	cats := categorygen.Generate(ctx, s.JoinCode, s.BoardSize)
	s.SetCategoryList(cats)
	logging.Info("categories generated", logging.Fields{constants.LogFieldSessionID: s.ID, constants.LogFieldCount: len(cats)})
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
