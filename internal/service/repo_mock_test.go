package service

import (
	"github.com/oghanim/triviarena/internal/game"
)

// memRepo is an in-memory SessionRepo. Reads hand out deep copies so
// a failed command never leaks partial mutations into stored state,
// mirroring how the real repository re-fetches rows per command.
type memRepo struct {
	sessions map[uint]*game.Session
	nextID   uint
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: map[uint]*game.Session{}}
}

func (m *memRepo) assignIDs(s *game.Session) {
	for i := range s.Participants {
		if s.Participants[i].ID == 0 {
			m.nextID++
			s.Participants[i].ID = m.nextID
		}
	}
	for i := range s.Questions {
		if s.Questions[i].ID == 0 {
			m.nextID++
			s.Questions[i].ID = m.nextID
		}
	}
	for i := range s.Cells {
		if s.Cells[i].ID == 0 {
			m.nextID++
			s.Cells[i].ID = m.nextID
		}
	}
}

func copySession(s *game.Session) *game.Session {
	out := *s
	out.AbilityCatalog = append([]game.AbilityDef(nil), s.AbilityCatalog...)
	out.Participants = append([]game.Participant(nil), s.Participants...)
	out.Questions = append([]game.Question(nil), s.Questions...)
	out.Cells = append([]game.Cell(nil), s.Cells...)
	if s.OpenRow != nil {
		r := *s.OpenRow
		out.OpenRow = &r
	}
	if s.OpenCol != nil {
		c := *s.OpenCol
		out.OpenCol = &c
	}
	return &out
}

func (m *memRepo) CreateSession(s *game.Session) error {
	m.nextID++
	s.ID = m.nextID
	m.assignIDs(s)
	m.sessions[s.ID] = copySession(s)
	return nil
}

func (m *memRepo) GetSessionByID(id uint) (*game.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copySession(s), nil
}

func (m *memRepo) UpdateSession(s *game.Session) error {
	m.assignIDs(s)
	m.sessions[s.ID] = copySession(s)
	return nil
}

func (m *memRepo) RemoveParticipantByUUID(sessionID uint, participantUUID string) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	kept := s.Participants[:0]
	for _, p := range s.Participants {
		if p.ParticipantUUID != participantUUID {
			kept = append(kept, p)
		}
	}
	s.Participants = kept
	return nil
}

func (m *memRepo) ReplaceAbilityCatalog(sessionID uint, catalog []game.AbilityDef) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.AbilityCatalog = append([]game.AbilityDef(nil), catalog...)
	return nil
}

func (m *memRepo) ReplaceCells(sessionID uint, cells []game.Cell) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	for i := range cells {
		if cells[i].ID == 0 {
			m.nextID++
			cells[i].ID = m.nextID
		}
	}
	s.Cells = append([]game.Cell(nil), cells...)
	return nil
}

// newLobby builds a stored session with a GM and the given contestants,
// defaulting to a 3x3 board so tests stay small.
func newLobby(m *memRepo, contestants ...string) *game.Session {
	s := &game.Session{
		JoinCode:        "TEST01",
		Phase:           game.PhaseLobby,
		BoardSize:       3,
		MaxParticipants: 8,
		UseAbilities:    true,
		Participants: []game.Participant{
			{ParticipantUUID: "gm", Name: "GM", Role: game.RoleGameMaster, Ready: true},
		},
	}
	for _, name := range contestants {
		s.Participants = append(s.Participants, game.Participant{
			ParticipantUUID: name,
			Name:            name,
			Role:            game.RoleContestant,
			Ready:           true,
		})
	}
	s.SetCategoryList([]string{"History", "Science", "Books"})
	_ = m.CreateSession(s)
	return s
}
