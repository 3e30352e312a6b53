package service

import (
	"sort"

	"github.com/oghanim/triviarena/internal/game"
)

// Rankings returns the participants ordered by score, highest first.
// The sort is stable so tied participants keep their roster order.
func Rankings(s *game.Session) []game.Participant {
	out := make([]game.Participant, len(s.Participants))
	copy(out, s.Participants)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
