package service

import (
	"context"
	"errors"
	"fmt"
	"sleeper-history/internal/api"
	"sleeper-history/internal/config"
	"sleeper-history/internal/constants"
	"sleeper-history/internal/domain"
	"sleeper-history/internal/history"
	"sleeper-history/internal/matchup"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrChainResolution = errors.New("season chain resolution failed")
)

// SleeperAPI is the subset of the Sleeper client the services depend on.
type SleeperAPI interface {
	GetLeague(ctx context.Context, leagueID string) (*api.League, error)
	GetUsers(ctx context.Context, leagueID string) ([]api.User, error)
	GetRosters(ctx context.Context, leagueID string) ([]api.Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]domain.GameRecord, error)
}

type CompareService struct {
	sleeper SleeperAPI
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewCompareService(sleeper SleeperAPI, cfg *config.Config, logger zerolog.Logger) *CompareService {
	return &CompareService{sleeper: sleeper, cfg: cfg, logger: logger}
}

func (s *CompareService) Seasons(ctx context.Context) ([]domain.SeasonRef, error) {
	seasons, err := history.Resolve(ctx, s.sleeper, s.cfg.LeagueID, s.cfg.StartSeason)
	if err != nil {
		s.logger.Error().Err(err).Str("league_id", s.cfg.LeagueID).Msg("failed to resolve season chain")
		return nil, fmt.Errorf("%w: %w", ErrChainResolution, err)
	}

	s.logger.Debug().
		Str("league_id", s.cfg.LeagueID).
		Ints("seasons", history.Years(seasons)).
		Msg("season chain resolved")
	return seasons, nil
}

func (s *CompareService) HeadToHead(ctx context.Context, rosterA, rosterB int) (*domain.CompareResult, error) {
	if err := validRoster(rosterA); err != nil {
		return nil, err
	}
	if err := validRoster(rosterB); err != nil {
		return nil, err
	}
	if rosterA == rosterB {
		return nil, fmt.Errorf("%w: pick two different rosters, got %d twice", ErrInvalidArgument, rosterA)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	seasons, err := s.Seasons(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("roster_a", rosterA).Int("roster_b", rosterB).Int("seasons", len(seasons)).Msg("comparing head-to-head")

	res, stats, err := matchup.CompareHeadToHead(ctx, s.scanner(), seasons, rosterA, rosterB)
	if err != nil {
		return nil, fmt.Errorf("head-to-head scan aborted: %w", err)
	}

	s.logStats(stats).Int("roster_a", rosterA).Int("roster_b", rosterB).Msg("head-to-head complete")
	return &res, nil
}

func (s *CompareService) VsAll(ctx context.Context, target int) (*domain.VsAllResult, error) {
	if err := validRoster(target); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	seasons, err := s.Seasons(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("roster_id", target).Int("seasons", len(seasons)).Msg("comparing against all opponents")

	res, stats, err := matchup.CompareVsAll(ctx, s.scanner(), seasons, target)
	if err != nil {
		return nil, fmt.Errorf("vs-all scan aborted: %w", err)
	}

	s.logStats(stats).Int("roster_id", target).Int("opponents", len(res.Rows)).Msg("vs-all complete")
	return &res, nil
}

func (s *CompareService) scanner() *matchup.Scanner {
	return &matchup.Scanner{Source: s.sleeper, MaxWeeks: s.cfg.MaxWeeks, Logger: s.logger}
}

func (s *CompareService) logStats(stats matchup.ScanStats) *zerolog.Event {
	ev := s.logger.Info()
	if stats.FailedWeeks > 0 {
		ev = s.logger.Warn()
	}
	return ev.
		Int("seasons", stats.Seasons).
		Int("weeks_scanned", stats.WeeksScanned).
		Int("failed_weeks", stats.FailedWeeks).
		Int("skipped_groups", stats.SkippedGroups).
		Int("games", stats.Games)
}

func validRoster(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: roster id must be positive, got %d", ErrInvalidArgument, id)
	}
	return nil
}
