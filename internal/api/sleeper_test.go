package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sleeper-history/internal/api"
	"sleeper-history/internal/sleepertest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetLeague_DecodesChainLink tests decoding of league metadata and its previous link
func TestGetLeague_DecodesChainLink(t *testing.T) {
	srv := sleepertest.New(t,
		&sleepertest.League{ID: "L2025", Season: "2025", Previous: "L2024"},
		&sleepertest.League{ID: "L2024", Season: "2024"},
	)
	client := api.NewSleeperClient(srv.Config("L2025"), zerolog.Nop())

	league, err := client.GetLeague(context.Background(), "L2025")
	require.NoError(t, err)
	assert.Equal(t, "L2025", league.LeagueID)
	assert.Equal(t, "2025", league.Season)
	prev, ok := league.PreviousID()
	assert.True(t, ok)
	assert.Equal(t, "L2024", prev)

	league, err = client.GetLeague(context.Background(), "L2024")
	require.NoError(t, err)
	_, ok = league.PreviousID()
	assert.False(t, ok)
}

// TestPreviousID_ZeroMeansNone tests that Sleeper's "0" sentinel ends the chain
func TestPreviousID_ZeroMeansNone(t *testing.T) {
	zero := "0"
	blank := "  "
	linked := "123"

	_, ok := (&api.League{PreviousLeagueID: &zero}).PreviousID()
	assert.False(t, ok)
	_, ok = (&api.League{PreviousLeagueID: &blank}).PreviousID()
	assert.False(t, ok)
	id, ok := (&api.League{PreviousLeagueID: &linked}).PreviousID()
	assert.True(t, ok)
	assert.Equal(t, "123", id)
}

// TestGetMatchups_NullablePairingAndPoints tests decoding of bye weeks and missing points
func TestGetMatchups_NullablePairingAndPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/league/L1/matchups/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"matchup_id":7,"roster_id":1,"points":101.5},{"matchup_id":null,"roster_id":2,"points":88},{"matchup_id":7,"roster_id":3,"points":null}]`))
	}))
	defer server.Close()

	cfg := sleepertest.New(t).Config("L1")
	cfg.SleeperBaseURL = server.URL
	client := api.NewSleeperClient(cfg, zerolog.Nop())

	records, err := client.GetMatchups(context.Background(), "L1", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.NotNil(t, records[0].PairingID)
	assert.Equal(t, 7, *records[0].PairingID)
	assert.Equal(t, 101.5, records[0].Score())
	assert.Nil(t, records[1].PairingID)
	assert.Equal(t, 0.0, records[2].Score())
}

// TestGetMatchups_NullBody tests that a null body is an empty week
func TestGetMatchups_NullBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	cfg := sleepertest.New(t).Config("L1")
	cfg.SleeperBaseURL = server.URL
	client := api.NewSleeperClient(cfg, zerolog.Nop())

	records, err := client.GetMatchups(context.Background(), "L1", 1)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestStatusError_IdentifiesRequest tests that failures name the request and status code
func TestStatusError_IdentifiesRequest(t *testing.T) {
	srv := sleepertest.New(t, &sleepertest.League{ID: "L1", Season: "2025", Status: http.StatusForbidden})
	client := api.NewSleeperClient(srv.Config("L1"), zerolog.Nop())

	_, err := client.GetUsers(context.Background(), "L1")
	require.Error(t, err)

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "users", statusErr.Request)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "users request failed (403)")
	assert.True(t, api.IsStatus(err, http.StatusForbidden))
}

// TestRetry_ServerErrorsAreRetried tests that 5xx responses are retried up to the attempt limit
func TestRetry_ServerErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"league_id":"L1","season":"2025","previous_league_id":null}`))
	}))
	defer server.Close()

	cfg := sleepertest.New(t).Config("L1")
	cfg.SleeperBaseURL = server.URL
	cfg.SleeperRetries = 3
	cfg.RetryDelay = time.Millisecond
	client := api.NewSleeperClient(cfg, zerolog.Nop())

	league, err := client.GetLeague(context.Background(), "L1")
	require.NoError(t, err)
	assert.Equal(t, "2025", league.Season)
	assert.Equal(t, int32(3), calls.Load())
}

// TestRetry_ClientErrorsAreNotRetried tests that 4xx fails on the first attempt
func TestRetry_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := sleepertest.New(t).Config("L1")
	cfg.SleeperBaseURL = server.URL
	cfg.SleeperRetries = 5
	client := api.NewSleeperClient(cfg, zerolog.Nop())

	_, err := client.GetLeague(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusNotFound))
	assert.Equal(t, int32(1), calls.Load())
}

// TestDecodeError tests that a malformed body surfaces as an error
func TestDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	cfg := sleepertest.New(t).Config("L1")
	cfg.SleeperBaseURL = server.URL
	client := api.NewSleeperClient(cfg, zerolog.Nop())

	_, err := client.GetRosters(context.Background(), "L1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode rosters response")
}
