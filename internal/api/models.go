package api

import "strings"

type League struct {
	LeagueID         string  `json:"league_id"`
	Name             string  `json:"name"`
	Season           string  `json:"season"`
	PreviousLeagueID *string `json:"previous_league_id"`
}

// PreviousID returns the preceding season's league id. Sleeper reports a
// missing link either as null or as "0".
func (l *League) PreviousID() (string, bool) {
	if l.PreviousLeagueID == nil {
		return "", false
	}
	id := strings.TrimSpace(*l.PreviousLeagueID)
	if id == "" || id == "0" {
		return "", false
	}
	return id, true
}

type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type Roster struct {
	RosterID int     `json:"roster_id"`
	OwnerID  *string `json:"owner_id"`
}
