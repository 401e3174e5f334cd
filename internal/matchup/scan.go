package matchup

import (
	"context"
	"sleeper-history/internal/domain"
	"sleeper-history/internal/history"

	"github.com/rs/zerolog"
)

// ScanStats describes what a scan walked past. FailedWeeks counts fetch
// failures that were treated as the end of their season.
type ScanStats struct {
	Seasons       int `json:"seasons"`
	WeeksScanned  int `json:"weeks_scanned"`
	FailedWeeks   int `json:"failed_weeks"`
	Games         int `json:"games"`
	SkippedGroups int `json:"skipped_groups"`
}

// Scanner drives the season by week loop. Weeks are fetched one at a time,
// oldest season first.
type Scanner struct {
	Source   history.MatchupSource
	MaxWeeks int
	Logger   zerolog.Logger
}

// Each calls fn with the games of every fetched week. A week that fails or
// comes back empty ends its season; the next season is still scanned. Only
// context cancellation aborts the scan.
func (s *Scanner) Each(ctx context.Context, seasons []domain.SeasonRef, fn func(season int, games []domain.Game)) (ScanStats, error) {
	var stats ScanStats

	for _, ref := range seasons {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Seasons++

		for week := 1; week <= s.MaxWeeks; week++ {
			res := history.FetchWeek(ctx, s.Source, ref.LeagueID, week)

			if res.Status == history.WeekFailed {
				if err := ctx.Err(); err != nil {
					return stats, err
				}
				stats.FailedWeeks++
				s.Logger.Warn().
					Err(res.Err).
					Str("league_id", ref.LeagueID).
					Int("season", ref.Season).
					Int("week", week).
					Msg("week fetch failed, treating as end of season")
				break
			}
			if res.Status == history.WeekEmpty {
				s.Logger.Debug().Int("season", ref.Season).Int("week", week).Msg("no more weeks")
				break
			}

			stats.WeeksScanned++
			games := Games(res.Records)
			for _, g := range games {
				if len(g.Participants) > 2 {
					stats.SkippedGroups++
					s.Logger.Debug().
						Int("season", ref.Season).
						Int("week", week).
						Int("pairing_id", g.PairingID).
						Int("participants", len(g.Participants)).
						Msg("skipping pairing with more than two participants")
				}
			}
			fn(ref.Season, games)
		}
	}

	return stats, nil
}

// CompareHeadToHead scans every season for games between rosterA and rosterB.
func CompareHeadToHead(ctx context.Context, s *Scanner, seasons []domain.SeasonRef, rosterA, rosterB int) (domain.CompareResult, ScanStats, error) {
	h := NewHeadToHead(rosterA, rosterB)

	stats, err := s.Each(ctx, seasons, func(season int, games []domain.Game) {
		for _, g := range games {
			h.Add(season, g)
		}
	})
	if err != nil {
		return domain.CompareResult{}, stats, err
	}

	res := h.Result(history.Years(seasons))
	stats.Games = res.Games
	return res, stats, nil
}

// CompareVsAll scans every season for games involving target.
func CompareVsAll(ctx context.Context, s *Scanner, seasons []domain.SeasonRef, target int) (domain.VsAllResult, ScanStats, error) {
	v := NewVsAll(target)
	games := 0

	stats, err := s.Each(ctx, seasons, func(_ int, week []domain.Game) {
		for _, g := range week {
			if v.Add(g) {
				games++
			}
		}
	})
	if err != nil {
		return domain.VsAllResult{}, stats, err
	}

	stats.Games = games
	return v.Result(history.Years(seasons)), stats, nil
}
