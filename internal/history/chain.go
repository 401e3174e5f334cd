package history

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"sleeper-history/internal/api"
	"sleeper-history/internal/domain"
	"slices"
	"strconv"
	"strings"
)

type LeagueSource interface {
	GetLeague(ctx context.Context, leagueID string) (*api.League, error)
}

// Seasons lazily walks the previous-season links starting at currentID,
// newest first. The walk ends when the link is absent, the season year does
// not parse, the year falls below startSeason, or a league or year repeats.
// A fetch error is yielded once and ends the sequence. Ranging over the
// sequence again re-fetches every link.
func Seasons(ctx context.Context, src LeagueSource, currentID string, startSeason int) iter.Seq2[domain.SeasonRef, error] {
	return func(yield func(domain.SeasonRef, error) bool) {
		seenIDs := make(map[string]bool)
		seenYears := make(map[int]bool)

		id := currentID
		for id != "" && !seenIDs[id] {
			seenIDs[id] = true

			league, err := src.GetLeague(ctx, id)
			if err != nil {
				yield(domain.SeasonRef{}, fmt.Errorf("failed to fetch league %s: %w", id, err))
				return
			}

			year, err := strconv.Atoi(strings.TrimSpace(league.Season))
			if err != nil || year < startSeason || seenYears[year] {
				return
			}
			seenYears[year] = true

			ref := domain.SeasonRef{LeagueID: league.LeagueID, Season: year}
			if ref.LeagueID == "" {
				ref.LeagueID = id
			}
			if !yield(ref, nil) {
				return
			}

			prev, ok := league.PreviousID()
			if !ok {
				return
			}
			id = prev
		}
	}
}

// Resolve materializes the chain in ascending season order. Any fetch error
// discards the partial chain.
func Resolve(ctx context.Context, src LeagueSource, currentID string, startSeason int) ([]domain.SeasonRef, error) {
	var out []domain.SeasonRef
	for ref, err := range Seasons(ctx, src, currentID, startSeason) {
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}

	slices.SortFunc(out, func(a, b domain.SeasonRef) int {
		return cmp.Compare(a.Season, b.Season)
	})
	return out, nil
}

// Years lists the season years of a resolved chain.
func Years(seasons []domain.SeasonRef) []int {
	years := make([]int, 0, len(seasons))
	for _, s := range seasons {
		years = append(years, s.Season)
	}
	return years
}
