package matchup

import (
	"cmp"
	"sleeper-history/internal/domain"
	"slices"
)

// HeadToHead folds games between two fixed rosters. Callers guarantee the
// rosters differ.
type HeadToHead struct {
	rosterA  int
	rosterB  int
	total    domain.SeasonBreakdown
	bySeason map[int]*domain.SeasonBreakdown
}

func NewHeadToHead(rosterA, rosterB int) *HeadToHead {
	return &HeadToHead{
		rosterA:  rosterA,
		rosterB:  rosterB,
		bySeason: make(map[int]*domain.SeasonBreakdown),
	}
}

// Add folds g into the season and the running totals when both rosters
// played in it. It reports whether the game counted.
func (h *HeadToHead) Add(season int, g domain.Game) bool {
	if !Comparable(g) {
		return false
	}
	a, okA := find(g, h.rosterA)
	b, okB := find(g, h.rosterB)
	if !okA || !okB {
		return false
	}

	row, ok := h.bySeason[season]
	if !ok {
		row = &domain.SeasonBreakdown{Season: season}
		h.bySeason[season] = row
	}

	ptsA, ptsB := a.Score(), b.Score()
	outcome := Classify(ptsA - ptsB)
	fold(row, ptsA, ptsB, outcome)
	fold(&h.total, ptsA, ptsB, outcome)
	return true
}

func fold(row *domain.SeasonBreakdown, ptsA, ptsB float64, outcome Outcome) {
	row.Games++
	row.PtsA += ptsA
	row.PtsB += ptsB
	row.DiffA = row.PtsA - row.PtsB

	switch outcome {
	case Win:
		row.AWins++
	case Loss:
		row.BWins++
	default:
		row.Ties++
	}
}

// Result snapshots the accumulators. seasonsCovered lists every season the
// chain reached, whether or not the rosters met in it.
func (h *HeadToHead) Result(seasonsCovered []int) domain.CompareResult {
	bySeason := make([]domain.SeasonBreakdown, 0, len(h.bySeason))
	for _, row := range h.bySeason {
		bySeason = append(bySeason, *row)
	}
	slices.SortFunc(bySeason, func(a, b domain.SeasonBreakdown) int {
		return cmp.Compare(a.Season, b.Season)
	})

	var avg float64
	if h.total.Games > 0 {
		avg = h.total.DiffA / float64(h.total.Games)
	}

	return domain.CompareResult{
		SeasonsCovered: append([]int{}, seasonsCovered...),
		Games:          h.total.Games,
		TeamAWins:      h.total.AWins,
		TeamBWins:      h.total.BWins,
		Ties:           h.total.Ties,
		TotalPointsA:   h.total.PtsA,
		TotalPointsB:   h.total.PtsB,
		TotalDiffA:     h.total.DiffA,
		AvgDiffA:       avg,
		BySeason:       bySeason,
	}
}
