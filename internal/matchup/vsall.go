package matchup

import (
	"sort"
	"sleeper-history/internal/domain"

	"github.com/samber/lo"
)

// VsAll folds every game of one roster into a row per opponent.
type VsAll struct {
	target int
	rows   map[int]*domain.OpponentRow
	order  []int
}

func NewVsAll(target int) *VsAll {
	return &VsAll{target: target, rows: make(map[int]*domain.OpponentRow)}
}

// Add credits g to the target's opponent in it. It reports whether the game
// counted.
func (v *VsAll) Add(g domain.Game) bool {
	if !Comparable(g) {
		return false
	}
	me, ok := find(g, v.target)
	if !ok {
		return false
	}
	opp, ok := lo.Find(g.Participants, func(r domain.GameRecord) bool {
		return r.RosterID != v.target
	})
	if !ok {
		return false
	}

	row, ok := v.rows[opp.RosterID]
	if !ok {
		row = &domain.OpponentRow{OpponentRosterID: opp.RosterID}
		v.rows[opp.RosterID] = row
		v.order = append(v.order, opp.RosterID)
	}

	ptsFor, ptsAgainst := me.Score(), opp.Score()
	row.Games++
	row.PtsFor += ptsFor
	row.PtsAgainst += ptsAgainst
	row.Diff = row.PtsFor - row.PtsAgainst

	switch Classify(ptsFor - ptsAgainst) {
	case Win:
		row.Wins++
	case Loss:
		row.Losses++
	default:
		row.Ties++
	}
	return true
}

// Result orders rows by games played, then by point differential, keeping
// first-encounter order among equals.
func (v *VsAll) Result(seasonsCovered []int) domain.VsAllResult {
	rows := make([]domain.OpponentRow, 0, len(v.order))
	for _, id := range v.order {
		if id == v.target {
			continue
		}
		row := *v.rows[id]
		if row.Games > 0 {
			row.Avg = row.Diff / float64(row.Games)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Diff > rows[j].Diff
	})

	return domain.VsAllResult{
		SeasonsCovered: append([]int{}, seasonsCovered...),
		Rows:           rows,
	}
}
