package engine

import (
	"time"

	"github.com/oghanim/triviarena/internal/game"
)

// Resolution is the outcome of scoring one revealed question.
type Resolution struct {
	// ScoreByUUID is the score delta per participant. Recipients are the
	// correct answerers plus the creator (counted once), each receiving
	// floor(points/len(recipients)). The remainder is dropped.
	ScoreByUUID map[string]int
	// ChargeByUUID is the ability-charge delta per correct answerer. The
	// creator earns charge only by also answering correctly.
	ChargeByUUID map[string]int
}

// ScoreResolution computes the deltas for resolving a question worth
// points, created by creatorUUID, with the given set of correct
// answerers. An empty correct set yields empty deltas: the GM may award
// nobody and the question still closes.
func ScoreResolution(points int, creatorUUID string, correctUUIDs []string) Resolution {
	res := Resolution{
		ScoreByUUID:  map[string]int{},
		ChargeByUUID: map[string]int{},
	}
	if len(correctUUIDs) == 0 {
		return res
	}

	recipients := map[string]struct{}{creatorUUID: {}}
	for _, id := range correctUUIDs {
		recipients[id] = struct{}{}
	}
	share := points / len(recipients)
	for id := range recipients {
		res.ScoreByUUID[id] = share
	}
	for _, id := range correctUUIDs {
		res.ChargeByUUID[id] = game.ChargePerCorrectAnswer
	}
	return res
}

// ClampCharge keeps an ability-charge value inside [0, game.MaxCharge].
func ClampCharge(charge int) int {
	if charge < 0 {
		return 0
	}
	if charge > game.MaxCharge {
		return game.MaxCharge
	}
	return charge
}

// ActivationCost is the score price of a participant's next ability use.
// It escalates per use and never resets: 200, 250, 300, ...
func ActivationCost(uses int) int {
	return game.ActivationBaseCost + game.ActivationCostStep*uses
}

// CountdownRemaining derives the display countdown for an open question.
// The timer is informational only: it reaches zero and stays there, and
// no transition depends on it.
func CountdownRemaining(openedAt, now time.Time) int {
	if openedAt.IsZero() {
		return 0
	}
	remaining := game.CountdownSeconds - int(now.Sub(openedAt).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}
