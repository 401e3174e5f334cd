package service

import (
	"context"
	"fmt"
	"sleeper-history/internal/api"
	"sleeper-history/internal/config"
	"sleeper-history/internal/constants"
	"sleeper-history/internal/domain"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type TeamService struct {
	sleeper SleeperAPI
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewTeamService(sleeper SleeperAPI, cfg *config.Config, logger zerolog.Logger) *TeamService {
	return &TeamService{sleeper: sleeper, cfg: cfg, logger: logger}
}

// Teams joins the current season's rosters with their owners. Users and
// rosters are fetched concurrently; either failing fails the whole call.
func (s *TeamService) Teams(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.TeamsTimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	var users []api.User
	var rosters []api.Roster

	g.Go(func() error {
		var err error
		users, err = s.sleeper.GetUsers(gCtx, s.cfg.LeagueID)
		return err
	})

	g.Go(func() error {
		var err error
		rosters, err = s.sleeper.GetRosters(gCtx, s.cfg.LeagueID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("league_id", s.cfg.LeagueID).Msg("failed to fetch teams")
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	teams := JoinTeams(users, rosters)
	s.logger.Debug().Str("league_id", s.cfg.LeagueID).Int("team_count", len(teams)).Msg("teams fetched")
	return teams, nil
}

// JoinTeams maps each roster to its owner's display name, sorted by name.
func JoinTeams(users []api.User, rosters []api.Roster) []domain.Team {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.DisplayName
	}

	teams := make([]domain.Team, 0, len(rosters))
	for _, r := range rosters {
		team := domain.Team{RosterID: r.RosterID, OwnerName: constants.UnknownOwner}
		if r.OwnerID != nil {
			team.OwnerID = *r.OwnerID
			if name, ok := names[*r.OwnerID]; ok && name != "" {
				team.OwnerName = name
			}
		}
		teams = append(teams, team)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		a, b := strings.ToLower(teams[i].OwnerName), strings.ToLower(teams[j].OwnerName)
		if a != b {
			return a < b
		}
		return teams[i].RosterID < teams[j].RosterID
	})
	return teams
}

// Directory resolves roster ids to display labels.
type Directory map[int]string

func NewDirectory(teams []domain.Team) Directory {
	d := make(Directory, len(teams))
	for _, t := range teams {
		d[t.RosterID] = t.OwnerName
	}
	return d
}

func (d Directory) Name(rosterID int) string {
	if name, ok := d[rosterID]; ok {
		return name
	}
	return fmt.Sprintf("Roster %d", rosterID)
}
