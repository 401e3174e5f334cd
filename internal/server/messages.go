package server

import "sleeper-history/internal/domain"

const (
	HistoryPath = "/sleeper.v1.History/"

	ListTeamsProcedure         = HistoryPath + "ListTeams"
	ListSeasonsProcedure       = HistoryPath + "ListSeasons"
	CompareHeadToHeadProcedure = HistoryPath + "CompareHeadToHead"
	CompareVsAllProcedure      = HistoryPath + "CompareVsAll"
)

type ListTeamsRequest struct{}

type ListTeamsResponse struct {
	Teams []domain.Team `json:"teams"`
}

type ListSeasonsRequest struct{}

type ListSeasonsResponse struct {
	StartSeason int                `json:"start_season"`
	Seasons     []domain.SeasonRef `json:"seasons"`
}

type HeadToHeadRequest struct {
	RosterA int `json:"roster_a"`
	RosterB int `json:"roster_b"`
}

type HeadToHeadResponse struct {
	NameA       string               `json:"name_a"`
	NameB       string               `json:"name_b"`
	StartSeason int                  `json:"start_season"`
	Result      domain.CompareResult `json:"result"`
}

type VsAllRequest struct {
	RosterID int `json:"roster_id"`
}

type NamedOpponentRow struct {
	domain.OpponentRow
	OpponentName string `json:"opponent_name"`
}

type VsAllResponse struct {
	Name           string             `json:"name"`
	StartSeason    int                `json:"start_season"`
	SeasonsCovered []int              `json:"seasons_covered"`
	Rows           []NamedOpponentRow `json:"rows"`
}
