package domain

// SeasonRef is one link of the league's season chain.
type SeasonRef struct {
	LeagueID string `json:"league_id"`
	Season   int    `json:"season"`
}

// GameRecord is one roster's line for one week. PairingID is nil on byes.
type GameRecord struct {
	RosterID  int      `json:"roster_id"`
	PairingID *int     `json:"matchup_id"`
	Points    *float64 `json:"points"`
}

// Score returns the record's points, treating a missing total as zero.
func (r GameRecord) Score() float64 {
	if r.Points == nil {
		return 0
	}
	return *r.Points
}

// Game is every record sharing one pairing id within a week.
type Game struct {
	PairingID    int
	Participants []GameRecord
}

type SeasonBreakdown struct {
	Season int     `json:"season"`
	Games  int     `json:"games"`
	AWins  int     `json:"a_wins"`
	BWins  int     `json:"b_wins"`
	Ties   int     `json:"ties"`
	PtsA   float64 `json:"pts_a"`
	PtsB   float64 `json:"pts_b"`
	DiffA  float64 `json:"diff_a"` // A - B
}

type CompareResult struct {
	SeasonsCovered []int             `json:"seasons_covered"`
	Games          int               `json:"games"`
	TeamAWins      int               `json:"team_a_wins"`
	TeamBWins      int               `json:"team_b_wins"`
	Ties           int               `json:"ties"`
	TotalPointsA   float64           `json:"total_points_a"`
	TotalPointsB   float64           `json:"total_points_b"`
	TotalDiffA     float64           `json:"total_diff_a"`
	AvgDiffA       float64           `json:"avg_diff_a"`
	BySeason       []SeasonBreakdown `json:"by_season"`
}

type OpponentRow struct {
	OpponentRosterID int     `json:"opponent_roster_id"`
	Games            int     `json:"games"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Ties             int     `json:"ties"`
	PtsFor           float64 `json:"pts_for"`
	PtsAgainst       float64 `json:"pts_against"`
	Diff             float64 `json:"diff"` // PtsFor - PtsAgainst
	Avg              float64 `json:"avg"`
}

type VsAllResult struct {
	SeasonsCovered []int         `json:"seasons_covered"`
	Rows           []OpponentRow `json:"rows"`
}

// Team joins a roster with its current owner's display name.
type Team struct {
	RosterID  int    `json:"roster_id"`
	OwnerID   string `json:"owner_id,omitempty"`
	OwnerName string `json:"owner_name"`
}
