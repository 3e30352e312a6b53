package service

import (
	"reflect"
	"testing"

	"github.com/oghanim/triviarena/internal/game"
)

func newAuthoring(m *memRepo, contestants ...string) *game.Session {
	s := newLobby(m, contestants...)
	s.Phase = game.PhaseAuthoring
	_ = m.UpdateSession(s)
	return s
}

func TestSubmitQuestion_ContestantStartsPending(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m, "alice")

	_, q, err := SubmitQuestion(m, s.ID, "alice", "History", "First US president?", "Washington", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != game.StatusPending {
		t.Fatalf("contestant submission should be pending, got %q", q.Status)
	}
	if q.Points != 0 {
		t.Fatalf("pending question must carry zero points, got %d", q.Points)
	}
	if q.CreatorUUID != "alice" || q.CreatorName != "alice" {
		t.Fatalf("creator attribution wrong: %+v", q)
	}
}

func TestSubmitQuestion_GMApprovedWithPoints(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m)

	_, q, err := SubmitQuestion(m, s.ID, "gm", "Science", "Chemical symbol for gold?", "Au", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != game.StatusApproved || q.Points != 200 {
		t.Fatalf("GM submission should be approved at 200, got %q/%d", q.Status, q.Points)
	}

	// 400 exceeds a 3x3 board, 150 is off-step.
	if _, _, err := SubmitQuestion(m, s.ID, "gm", "Science", "q", "a", 400); err != ErrInvalidPoints {
		t.Fatalf("expected ErrInvalidPoints for 400, got %v", err)
	}
	if _, _, err := SubmitQuestion(m, s.ID, "gm", "Science", "q", "a", 150); err != ErrInvalidPoints {
		t.Fatalf("expected ErrInvalidPoints for 150, got %v", err)
	}
}

func TestSubmitQuestion_Validation(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m, "alice")

	if _, _, err := SubmitQuestion(m, s.ID, "alice", "History", "  ", "a", 0); err != ErrEmptyField {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
	if _, _, err := SubmitQuestion(m, s.ID, "alice", "Geography", "q", "a", 0); err != ErrUnknownCategory {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	lobby := newLobby(m, "bob")
	if _, _, err := SubmitQuestion(m, lobby.ID, "bob", "History", "q", "a", 0); err != ErrNotAuthoring {
		t.Fatalf("expected ErrNotAuthoring, got %v", err)
	}
}

func TestReviewQuestion_ApproveNeedsPoints(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m, "alice")
	_, q, _ := SubmitQuestion(m, s.ID, "alice", "History", "q", "a", 0)

	if _, err := ReviewQuestion(m, s.ID, "alice", q.QuestionUUID, ReviewEdits{}, game.StatusApproved); err != ErrForbidden {
		t.Fatalf("contestant review should be forbidden, got %v", err)
	}
	if _, err := ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{}, game.StatusApproved); err != ErrMissingPoints {
		t.Fatalf("approval without points should fail, got %v", err)
	}

	pts := 300
	updated, err := ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{Points: &pts}, game.StatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := updated.FindQuestion(q.QuestionUUID)
	if got.Status != game.StatusApproved || got.Points != 300 {
		t.Fatalf("expected approved at 300, got %q/%d", got.Status, got.Points)
	}
}

func TestReviewQuestion_RejectZeroesPointsAndIsReversible(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m, "alice")
	_, q, _ := SubmitQuestion(m, s.ID, "alice", "History", "q", "a", 0)

	pts := 200
	_, _ = ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{Points: &pts}, game.StatusApproved)

	updated, err := ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{}, game.StatusRejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := updated.FindQuestion(q.QuestionUUID)
	if got.Status != game.StatusRejected || got.Points != 0 {
		t.Fatalf("rejection must force points to zero, got %q/%d", got.Status, got.Points)
	}

	// A rejected question can be fixed up and approved after all.
	prompt := "better question"
	updated, err = ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{Prompt: &prompt, Points: &pts}, game.StatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = updated.FindQuestion(q.QuestionUUID)
	if got.Status != game.StatusApproved || got.Points != 200 || got.Prompt != "better question" {
		t.Fatalf("re-approval after edits failed: %+v", got)
	}
}

func TestReviewQuestion_EditValidation(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m, "alice")
	_, q, _ := SubmitQuestion(m, s.ID, "alice", "History", "q", "a", 0)

	badCat := "Geography"
	if _, err := ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{Category: &badCat}, game.StatusApproved); err != ErrUnknownCategory {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	badPts := 150
	if _, err := ReviewQuestion(m, s.ID, "gm", q.QuestionUUID, ReviewEdits{Points: &badPts}, game.StatusApproved); err != ErrInvalidPoints {
		t.Fatalf("expected ErrInvalidPoints, got %v", err)
	}

	stored, _ := m.GetSessionByID(s.ID)
	if got := stored.FindQuestion(q.QuestionUUID); got.Status != game.StatusPending || got.Points != 0 {
		t.Fatalf("failed review must not change the question: %+v", got)
	}
}

func TestAvailableSlots_ExcludesOwnQuestion(t *testing.T) {
	m := newMemRepo()
	s := newAuthoring(m)

	_, q1, _ := SubmitQuestion(m, s.ID, "gm", "History", "q1", "a1", 100)
	_, _, _ = SubmitQuestion(m, s.ID, "gm", "History", "q2", "a2", 300)
	stored, _ := m.GetSessionByID(s.ID)

	if got := AvailableSlots(stored, "History", ""); !reflect.DeepEqual(got, []int{200}) {
		t.Fatalf("expected [200], got %v", got)
	}
	// Editing q1 keeps its own 100 slot on offer.
	if got := AvailableSlots(stored, "History", q1.QuestionUUID); !reflect.DeepEqual(got, []int{100, 200}) {
		t.Fatalf("expected [100 200], got %v", got)
	}
	if got := AvailableSlots(stored, "Science", ""); !reflect.DeepEqual(got, []int{100, 200, 300}) {
		t.Fatalf("expected all slots free, got %v", got)
	}
}
