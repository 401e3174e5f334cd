// Package sleepertest serves canned Sleeper league data over httptest.
package sleepertest

import (
	"net/http"
	"net/http/httptest"
	"sleeper-history/internal/api"
	"sleeper-history/internal/config"
	"sleeper-history/internal/constants"
	"sleeper-history/internal/domain"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

// League is one season's worth of canned responses. Weeks[0] is week 1.
type League struct {
	ID       string
	Season   string
	Previous string
	Users    []api.User
	Rosters  []api.Roster
	Weeks    [][]domain.GameRecord

	// WeekStatus forces a status code for a week number.
	WeekStatus map[int]int
	// Status forces a status code for every request on this league.
	Status int
}

type Server struct {
	*httptest.Server

	mu      sync.Mutex
	leagues map[string]*League
	hits    map[string]int
}

func New(t testing.TB, leagues ...*League) *Server {
	t.Helper()

	s := &Server{leagues: make(map[string]*League), hits: make(map[string]int)}
	for _, l := range leagues {
		s.leagues[l.ID] = l
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /league/{id}", s.handleLeague)
	mux.HandleFunc("GET /league/{id}/users", s.handleUsers)
	mux.HandleFunc("GET /league/{id}/rosters", s.handleRosters)
	mux.HandleFunc("GET /league/{id}/matchups/{week}", s.handleMatchups)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// Hits returns how many requests were made for path, e.g. "/league/L1".
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Config points a client at the fake with retries and pacing disabled.
func (s *Server) Config(leagueID string) *config.Config {
	return &config.Config{
		LeagueID:       leagueID,
		StartSeason:    constants.DefaultStartSeason,
		SleeperBaseURL: s.URL,
		SleeperRetries: 1,
		RetryDelay:     time.Millisecond,
		MaxWeeks:       constants.MaxWeeksPerSeason,
		ServerPort:     "0",
		LogLevel:       "debug",
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*League, bool) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	l, ok := s.leagues[r.PathValue("id")]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if l.Status != 0 {
		w.WriteHeader(l.Status)
		return nil, false
	}
	return l, true
}

func (s *Server) handleLeague(w http.ResponseWriter, r *http.Request) {
	l, ok := s.lookup(w, r)
	if !ok {
		return
	}
	body := map[string]any{
		"league_id":          l.ID,
		"name":               "league " + l.ID,
		"season":             l.Season,
		"previous_league_id": nil,
	}
	if l.Previous != "" {
		body["previous_league_id"] = l.Previous
	}
	writeJSON(w, body)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if l, ok := s.lookup(w, r); ok {
		writeJSON(w, l.Users)
	}
}

func (s *Server) handleRosters(w http.ResponseWriter, r *http.Request) {
	if l, ok := s.lookup(w, r); ok {
		writeJSON(w, l.Rosters)
	}
}

func (s *Server) handleMatchups(w http.ResponseWriter, r *http.Request) {
	l, ok := s.lookup(w, r)
	if !ok {
		return
	}
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if status, ok := l.WeekStatus[week]; ok {
		w.WriteHeader(status)
		return
	}
	if week < 1 || week > len(l.Weeks) {
		writeJSON(w, []domain.GameRecord{})
		return
	}
	writeJSON(w, l.Weeks[week-1])
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Rec builds a paired record.
func Rec(rosterID, pairingID int, points float64) domain.GameRecord {
	return domain.GameRecord{RosterID: rosterID, PairingID: &pairingID, Points: &points}
}

// Bye builds a record without a pairing id.
func Bye(rosterID int, points float64) domain.GameRecord {
	return domain.GameRecord{RosterID: rosterID, Points: &points}
}

// Owner builds a roster owned by userID.
func Owner(rosterID int, userID string) api.Roster {
	return api.Roster{RosterID: rosterID, OwnerID: &userID}
}
