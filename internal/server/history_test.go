package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sleeper-history/internal/api"
	"sleeper-history/internal/domain"
	"sleeper-history/internal/middleware"
	"sleeper-history/internal/server"
	"sleeper-history/internal/service"
	"sleeper-history/internal/sleepertest"
	"testing"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rec = sleepertest.Rec

func fixture() []*sleepertest.League {
	return []*sleepertest.League{
		{
			ID: "L2025", Season: "2025", Previous: "L2024",
			Users: []api.User{
				{UserID: "u1", DisplayName: "Amy"},
				{UserID: "u2", DisplayName: "Ben"},
				{UserID: "u3", DisplayName: "Cat"},
			},
			Rosters: []api.Roster{
				sleepertest.Owner(1, "u1"),
				sleepertest.Owner(2, "u2"),
				sleepertest.Owner(3, "u3"),
			},
			Weeks: [][]domain.GameRecord{
				{rec(1, 1, 120), rec(2, 1, 100), sleepertest.Bye(3, 0)},
			},
		},
		{
			ID: "L2024", Season: "2024", Previous: "L2023",
			Weeks: [][]domain.GameRecord{
				{rec(1, 4, 90), rec(3, 4, 90)},
				{rec(2, 9, 101.5), rec(1, 9, 99)},
			},
		},
		{ID: "L2023", Season: "2023"},
	}
}

func newHarness(t *testing.T, leagues []*sleepertest.League) (*server.HistoryClient, *sleepertest.Server) {
	t.Helper()

	fake := sleepertest.New(t, leagues...)
	cfg := fake.Config(leagues[0].ID)
	logger := zerolog.Nop()
	sleeper := api.NewSleeperClient(cfg, logger)

	hs := server.NewHistoryServer(
		service.NewCompareService(sleeper, cfg, logger),
		service.NewTeamService(sleeper, cfg, logger),
		cfg,
		logger,
	)

	path, handler := hs.Handler()
	mux := http.NewServeMux()
	mux.Handle(path, middleware.RequestID(logger)(handler))
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return server.NewHistoryClient(ts.Client(), ts.URL), fake
}

func TestListTeams(t *testing.T) {
	client, _ := newHarness(t, fixture())

	resp, err := client.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Teams, 3)
	assert.Equal(t, "Amy", resp.Teams[0].OwnerName)
	assert.Equal(t, 1, resp.Teams[0].RosterID)
}

func TestListSeasons(t *testing.T) {
	client, _ := newHarness(t, fixture())

	resp, err := client.ListSeasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2023, resp.StartSeason)
	assert.Equal(t, []domain.SeasonRef{
		{LeagueID: "L2023", Season: 2023},
		{LeagueID: "L2024", Season: 2024},
		{LeagueID: "L2025", Season: 2025},
	}, resp.Seasons)
}

func TestCompareHeadToHead(t *testing.T) {
	client, _ := newHarness(t, fixture())

	resp, err := client.CompareHeadToHead(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Amy", resp.NameA)
	assert.Equal(t, "Ben", resp.NameB)
	assert.Equal(t, []int{2023, 2024, 2025}, resp.Result.SeasonsCovered)
	assert.Equal(t, 2, resp.Result.Games)
	assert.Equal(t, 1, resp.Result.TeamAWins)
	assert.Equal(t, 1, resp.Result.TeamBWins)
	assert.InDelta(t, 17.5, resp.Result.TotalDiffA, 1e-9)
	assert.InDelta(t, 8.75, resp.Result.AvgDiffA, 1e-9)
	require.Len(t, resp.Result.BySeason, 2)
}

func TestCompareVsAll(t *testing.T) {
	client, _ := newHarness(t, fixture())

	resp, err := client.CompareVsAll(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Amy", resp.Name)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, 2, resp.Rows[0].OpponentRosterID)
	assert.Equal(t, "Ben", resp.Rows[0].OpponentName)
	assert.Equal(t, 3, resp.Rows[1].OpponentRosterID)
	assert.Equal(t, "Cat", resp.Rows[1].OpponentName)
	assert.Equal(t, 1, resp.Rows[1].Ties)
}

func TestCompareHeadToHead_SameRosterIsInvalid(t *testing.T) {
	client, fake := newHarness(t, fixture())

	_, err := client.CompareHeadToHead(context.Background(), 2, 2)
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.Zero(t, fake.Hits("/league/L2025"))
}

func TestCompare_ChainFailureIsUnavailable(t *testing.T) {
	leagues := fixture()
	leagues[1].Status = http.StatusBadGateway
	client, _ := newHarness(t, leagues)

	_, err := client.CompareVsAll(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))
	assert.Contains(t, err.Error(), "league request failed (502)")
}

func TestCompare_UnknownRostersGetDefaultNames(t *testing.T) {
	leagues := fixture()
	leagues[0].Users = nil
	leagues[0].Rosters = nil
	client, _ := newHarness(t, leagues)

	resp, err := client.CompareHeadToHead(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Roster 1", resp.NameA)
	assert.Equal(t, "Roster 2", resp.NameB)
}
