package history

import (
	"context"
	"sleeper-history/internal/domain"
)

type MatchupSource interface {
	GetMatchups(ctx context.Context, leagueID string, week int) ([]domain.GameRecord, error)
}

type WeekStatus int

const (
	WeekData WeekStatus = iota
	WeekEmpty
	WeekFailed
)

func (s WeekStatus) String() string {
	switch s {
	case WeekData:
		return "data"
	case WeekEmpty:
		return "empty"
	case WeekFailed:
		return "failed"
	}
	return "unknown"
}

// WeekResult keeps "no more weeks" apart from "could not fetch" so the scan
// loop can pick a policy per case.
type WeekResult struct {
	Status  WeekStatus
	Records []domain.GameRecord
	Err     error
}

func FetchWeek(ctx context.Context, src MatchupSource, leagueID string, week int) WeekResult {
	records, err := src.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return WeekResult{Status: WeekFailed, Err: err}
	}
	if len(records) == 0 {
		return WeekResult{Status: WeekEmpty}
	}
	return WeekResult{Status: WeekData, Records: records}
}
