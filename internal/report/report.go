package report

import (
	"fmt"
	"io"
	"sleeper-history/internal/domain"
	"strings"
)

// Record formats a W-L line, switching to W-L-T once a tie exists.
func Record(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d (W-L-T)", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d (W-L)", wins, losses)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func joinSeasons(seasons []int) string {
	parts := make([]string, 0, len(seasons))
	for _, s := range seasons {
		parts = append(parts, fmt.Sprint(s))
	}
	return strings.Join(parts, ", ")
}

func HeadToHead(w io.Writer, nameA, nameB string, startSeason int, r domain.CompareResult) {
	fmt.Fprintf(w, "%s vs %s\n", nameA, nameB)
	fmt.Fprintf(w, "Seasons scanned: %s | Games found: %d\n", joinSeasons(r.SeasonsCovered), r.Games)

	if r.Games == 0 {
		fmt.Fprintf(w, "No head-to-head games found between these roster IDs since %d.\n", startSeason)
		return
	}

	fmt.Fprintf(w, "Record (Team A perspective): %s\n", Record(r.TeamAWins, r.TeamBWins, r.Ties))
	fmt.Fprintf(w, "Total points: %s %.2f | %s %.2f\n", nameA, r.TotalPointsA, nameB, r.TotalPointsB)
	fmt.Fprintf(w, "Point differential (A-B): total %.2f | avg/game %.2f\n", r.TotalDiffA, r.AvgDiffA)

	if len(r.BySeason) == 0 {
		return
	}
	fmt.Fprintln(w, "By season:")
	for _, s := range r.BySeason {
		var avg float64
		if s.Games > 0 {
			avg = s.DiffA / float64(s.Games)
		}
		fmt.Fprintf(w, "  %d  %s  %s  %s %.2f | %s %.2f  diff %.2f avg %.2f\n",
			s.Season, plural(s.Games, "game"), Record(s.AWins, s.BWins, s.Ties),
			nameA, s.PtsA, nameB, s.PtsB, s.DiffA, avg)
	}
}

// Opponent is one labeled row of a vs-all table.
type Opponent struct {
	Name string
	Row  domain.OpponentRow
}

func VsAll(w io.Writer, name string, startSeason int, seasons []int, rows []Opponent) {
	fmt.Fprintf(w, "%s vs everyone\n", name)
	fmt.Fprintf(w, "Seasons scanned: %s | Opponents: %d\n", joinSeasons(seasons), len(rows))

	if len(rows) == 0 {
		fmt.Fprintf(w, "No matchups found for this team since %d.\n", startSeason)
		return
	}

	for _, o := range rows {
		r := o.Row
		fmt.Fprintf(w, "  %s (Roster %d)  %s  %s  diff %.2f avg %.2f\n",
			o.Name, r.OpponentRosterID, plural(r.Games, "game"), Record(r.Wins, r.Losses, r.Ties), r.Diff, r.Avg)
	}
}

func Teams(w io.Writer, teams []domain.Team) {
	for _, t := range teams {
		fmt.Fprintf(w, "%s (Roster %d)\n", t.OwnerName, t.RosterID)
	}
}
