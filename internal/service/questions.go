package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/oghanim/triviarena/internal/game"
)

var (
	ErrNotAuthoring     = errors.New("session is not in the authoring phase")
	ErrEmptyField       = errors.New("category, question and answer are all required")
	ErrUnknownCategory  = errors.New("category is not on the board")
	ErrInvalidPoints    = errors.New("point value is not a legal board slot")
	ErrMissingPoints    = errors.New("approval requires a non-zero point value")
	ErrQuestionNotFound = errors.New("question not found")
)

// SubmitQuestion files a new question. Contestant submissions start
// pending with zero points and wait for GM review; GM submissions are
// approved immediately and must carry a point value picked at submission
// time from the slots still free for that category.
func SubmitQuestion(repo SessionRepo, sessionID uint, callerUUID, category, prompt, answer string, points int) (*game.Session, *game.Question, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, nil, ErrSessionNotFound
	}
	caller := s.FindParticipant(callerUUID)
	if caller == nil {
		return nil, nil, ErrParticipantNotFound
	}
	if s.Phase != game.PhaseAuthoring {
		return nil, nil, ErrNotAuthoring
	}

	category = strings.TrimSpace(category)
	prompt = strings.TrimSpace(prompt)
	answer = strings.TrimSpace(answer)
	if category == "" || prompt == "" || answer == "" {
		return nil, nil, ErrEmptyField
	}
	if !categoryOnBoard(s, category) {
		return nil, nil, ErrUnknownCategory
	}

	q := game.Question{
		QuestionUUID: uuid.NewString(),
		CreatorUUID:  caller.ParticipantUUID,
		CreatorName:  caller.Name,
		Category:     category,
		Prompt:       prompt,
		Answer:       answer,
		Status:       game.StatusPending,
	}
	if caller.IsGameMaster() {
		if !legalPoints(s.BoardSize, points) {
			return nil, nil, ErrInvalidPoints
		}
		q.Points = points
		q.Status = game.StatusApproved
	}

	s.Questions = append(s.Questions, q)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, &s.Questions[len(s.Questions)-1], nil
}

// ReviewEdits carries the GM's optional field edits applied before the
// review decision. Nil fields are left untouched.
type ReviewEdits struct {
	Category *string
	Prompt   *string
	Answer   *string
	Points   *int
}

// ReviewQuestion applies the GM's edits and then the approve/reject
// decision. Approval requires a non-zero point value, pre-existing or
// supplied in the edits. Rejection always forces the points to zero; a
// rejected question may be edited and re-approved later.
func ReviewQuestion(repo SessionRepo, sessionID uint, callerUUID, questionUUID string, edits ReviewEdits, decision game.QuestionStatus) (*game.Session, error) {
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
	q := s.FindQuestion(questionUUID)
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if decision != game.StatusApproved && decision != game.StatusRejected {
		return nil, errors.New("decision must be approved or rejected")
	}

	if edits.Category != nil {
		c := strings.TrimSpace(*edits.Category)
		if c == "" {
			return nil, ErrEmptyField
		}
		if !categoryOnBoard(s, c) {
			return nil, ErrUnknownCategory
		}
		q.Category = c
	}
	if edits.Prompt != nil {
		p := strings.TrimSpace(*edits.Prompt)
		if p == "" {
			return nil, ErrEmptyField
		}
		q.Prompt = p
	}
	if edits.Answer != nil {
		a := strings.TrimSpace(*edits.Answer)
		if a == "" {
			return nil, ErrEmptyField
		}
		q.Answer = a
	}
	if edits.Points != nil {
		if !legalPoints(s.BoardSize, *edits.Points) {
			return nil, ErrInvalidPoints
		}
		q.Points = *edits.Points
	}

	switch decision {
	case game.StatusApproved:
		if q.Points == 0 {
			return nil, ErrMissingPoints
		}
		q.Status = game.StatusApproved
	case game.StatusRejected:
		q.Points = 0
		q.Status = game.StatusRejected
	}

	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AvailableSlots lists the point values still free for a category: the
// full {100..100*N} set minus values taken by other approved questions
// in that category. The question under edit is excluded from its own
// "taken" contribution so its current slot stays offered. This is a
// presentation helper; the pipeline itself never rejects a collision
// (the board assembler strands the later duplicate instead).
func AvailableSlots(s *game.Session, category, excludeQuestionUUID string) []int {
	taken := map[int]bool{}
	for i := range s.Questions {
		q := &s.Questions[i]
		if q.Status != game.StatusApproved || q.Category != category {
			continue
		}
		if q.QuestionUUID == excludeQuestionUUID {
			continue
		}
		taken[q.Points] = true
	}
	out := make([]int, 0, s.BoardSize)
	for r := 1; r <= s.BoardSize; r++ {
		p := r * game.PointStep
		if !taken[p] {
			out = append(out, p)
		}
	}
	return out
}

func categoryOnBoard(s *game.Session, category string) bool {
	for _, c := range s.CategoryList() {
		if c == category {
			return true
		}
	}
	return false
}

func legalPoints(boardSize, points int) bool {
	if points <= 0 || points%game.PointStep != 0 {
		return false
	}
	return points/game.PointStep <= boardSize
}
