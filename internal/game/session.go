package game

import "strings"

// GameMaster returns the session's moderator. Every session is created
// with exactly one and the role is never reassigned.
func (s *Session) GameMaster() *Participant {
	for i := range s.Participants {
		if s.Participants[i].Role == RoleGameMaster {
			return &s.Participants[i]
		}
	}
	return nil
}

// FindParticipant returns the participant with the given UUID, or nil.
func (s *Session) FindParticipant(uuid string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ParticipantUUID == uuid {
			return &s.Participants[i]
		}
	}
	return nil
}

// FindQuestion returns the question with the given UUID, or nil.
func (s *Session) FindQuestion(uuid string) *Question {
	for i := range s.Questions {
		if s.Questions[i].QuestionUUID == uuid {
			return &s.Questions[i]
		}
	}
	return nil
}

// QuestionByID returns the question with the given database ID, or nil.
func (s *Session) QuestionByID(id uint) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// CellAt returns the cell at (row, col), or nil when out of range.
func (s *Session) CellAt(row, col int) *Cell {
	for i := range s.Cells {
		if s.Cells[i].Row == row && s.Cells[i].Col == col {
			return &s.Cells[i]
		}
	}
	return nil
}

// OpenCell returns the currently open cell, or nil when no question is
// in flight.
func (s *Session) OpenCell() *Cell {
	if s.OpenRow == nil || s.OpenCol == nil {
		return nil
	}
	return s.CellAt(*s.OpenRow, *s.OpenCol)
}

// AllReady reports whether every participant has flagged ready. It is
// vacuously true for an empty roster; callers must guard that case.
func (s *Session) AllReady() bool {
	for i := range s.Participants {
		if !s.Participants[i].Ready {
			return false
		}
	}
	return true
}

// ApprovedCount counts questions with approved status. The authoring
// phase completes when this reaches BoardSize squared.
func (s *Session) ApprovedCount() int {
	n := 0
	for i := range s.Questions {
		if s.Questions[i].Status == StatusApproved {
			n++
		}
	}
	return n
}

// ApprovedQuestions returns the approved questions in insertion order.
// Board assembly depends on this order being stable.
func (s *Session) ApprovedQuestions() []Question {
	out := make([]Question, 0, len(s.Questions))
	for i := range s.Questions {
		if s.Questions[i].Status == StatusApproved {
			out = append(out, s.Questions[i])
		}
	}
	return out
}

// CategoriesComplete reports whether the GM has set one non-empty label
// per board column.
func (s *Session) CategoriesComplete() bool {
	cats := s.CategoryList()
	if len(cats) != s.BoardSize {
		return false
	}
	for _, c := range cats {
		if strings.TrimSpace(c) == "" {
			return false
		}
	}
	return true
}
