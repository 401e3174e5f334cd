package matchup

import (
	"sleeper-history/internal/domain"
	"slices"

	"github.com/samber/lo"
)

// GroupByPairing buckets one week's records by pairing id. Records without a
// pairing id (byes) are dropped.
func GroupByPairing(records []domain.GameRecord) map[int][]domain.GameRecord {
	paired := lo.Filter(records, func(r domain.GameRecord, _ int) bool {
		return r.PairingID != nil
	})
	return lo.GroupBy(paired, func(r domain.GameRecord) int {
		return *r.PairingID
	})
}

// Games returns the week's groups ordered by pairing id so that every scan
// over the same data visits games in the same order.
func Games(records []domain.GameRecord) []domain.Game {
	groups := GroupByPairing(records)
	ids := lo.Keys(groups)
	slices.Sort(ids)

	return lo.Map(ids, func(id int, _ int) domain.Game {
		return domain.Game{PairingID: id, Participants: groups[id]}
	})
}

// Comparable reports whether g is a standard head-to-head game. Pairings
// with fewer or more than two participants are skipped by every aggregator.
func Comparable(g domain.Game) bool {
	return len(g.Participants) == 2
}

// find returns the participant with rosterID, or false when it is absent.
func find(g domain.Game, rosterID int) (domain.GameRecord, bool) {
	return lo.Find(g.Participants, func(r domain.GameRecord) bool {
		return r.RosterID == rosterID
	})
}

type Outcome int

const (
	Tie Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "W"
	case Loss:
		return "L"
	}
	return "T"
}

// Classify judges a game from the perspective whose point differential is diff.
func Classify(diff float64) Outcome {
	switch {
	case diff > 0:
		return Win
	case diff < 0:
		return Loss
	}
	return Tie
}
