package service

import (
	"testing"
)

func TestAdjustScore_Operations(t *testing.T) {
	m := newMemRepo()
	s := newLobby(m, "alice")

	s, err := AdjustScore(m, s.ID, "gm", "alice", ScoreAdd, 300)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.FindParticipant("alice").Score; got != 300 {
		t.Fatalf("score = %d, want 300", got)
	}

	// Subtraction floors at zero.
	s, err = AdjustScore(m, s.ID, "gm", "alice", ScoreSubtract, 500)
	if err != nil {
		t.Fatalf("subtract: %v", err)
	}
	if got := s.FindParticipant("alice").Score; got != 0 {
		t.Fatalf("score = %d, want 0 after floored subtraction", got)
	}

	s, err = AdjustScore(m, s.ID, "gm", "alice", ScoreSet, 150)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.FindParticipant("alice").Score; got != 150 {
		t.Fatalf("score = %d, want 150", got)
	}
}

func TestAdjustScore_Validation(t *testing.T) {
	m := newMemRepo()
	s := newLobby(m, "alice")

	if _, err := AdjustScore(m, s.ID, "alice", "alice", ScoreAdd, 100); err != ErrForbidden {
		t.Fatalf("contestant edit should be forbidden, got %v", err)
	}
	if _, err := AdjustScore(m, s.ID, "gm", "alice", ScoreAdd, 0); err != ErrInvalidAmount {
		t.Fatalf("add needs a positive amount, got %v", err)
	}
	if _, err := AdjustScore(m, s.ID, "gm", "alice", ScoreSubtract, -5); err != ErrInvalidAmount {
		t.Fatalf("subtract needs a positive amount, got %v", err)
	}
	if _, err := AdjustScore(m, s.ID, "gm", "alice", ScoreSet, -1); err != ErrInvalidAmount {
		t.Fatalf("set needs a non-negative amount, got %v", err)
	}
	if _, err := AdjustScore(m, s.ID, "gm", "alice", ScoreOp("halve"), 2); err != ErrInvalidAmount {
		t.Fatalf("unknown op should fail, got %v", err)
	}
	if _, err := AdjustScore(m, s.ID, "gm", "ghost", ScoreAdd, 100); err != ErrParticipantNotFound {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestRankings_StableDescending(t *testing.T) {
	m := newMemRepo()
	s := newLobby(m, "alice", "bob", "carol")
	s.FindParticipant("alice").Score = 200
	s.FindParticipant("bob").Score = 500
	s.FindParticipant("carol").Score = 200
	s.FindParticipant("gm").Score = -50

	ranked := Rankings(s)
	if len(ranked) != 4 {
		t.Fatalf("expected 4 ranked participants, got %d", len(ranked))
	}
	if ranked[0].ParticipantUUID != "bob" {
		t.Fatalf("bob should rank first, got %s", ranked[0].ParticipantUUID)
	}
	// Ties keep roster order: alice joined before carol.
	if ranked[1].ParticipantUUID != "alice" || ranked[2].ParticipantUUID != "carol" {
		t.Fatalf("tie order wrong: %s then %s", ranked[1].ParticipantUUID, ranked[2].ParticipantUUID)
	}
	if ranked[3].ParticipantUUID != "gm" {
		t.Fatalf("lowest score should rank last")
	}
}
