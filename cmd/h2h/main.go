package main

import (
	"fmt"
	"net/http"
	"os"
	"sleeper-history/internal/constants"
	"sleeper-history/internal/logger"
	"sleeper-history/internal/report"
	"sleeper-history/internal/server"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.SetLevel(os.Stderr, zerolog.InfoLevel)

	app := &cli.App{
		Name:  "h2h",
		Usage: "query league history from a running sleeper-history server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "server base URL",
				Value:   "http://localhost:8080",
				EnvVars: []string{"H2H_ADDR"},
			},
		},
		Commands: []*cli.Command{
			teamsCommand(),
			seasonsCommand(),
			headToHeadCommand(),
			vsAllCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newClient(c *cli.Context) *server.HistoryClient {
	httpClient := &http.Client{Timeout: constants.RequestTimeout}
	return server.NewHistoryClient(httpClient, c.String("addr"))
}

func teamsCommand() *cli.Command {
	return &cli.Command{
		Name:  "teams",
		Usage: "list rosters and their owners",
		Action: func(c *cli.Context) error {
			resp, err := newClient(c).ListTeams(c.Context)
			if err != nil {
				return err
			}
			report.Teams(c.App.Writer, resp.Teams)
			return nil
		},
	}
}

func seasonsCommand() *cli.Command {
	return &cli.Command{
		Name:  "seasons",
		Usage: "list the seasons in the league history",
		Action: func(c *cli.Context) error {
			resp, err := newClient(c).ListSeasons(c.Context)
			if err != nil {
				return err
			}
			for _, s := range resp.Seasons {
				fmt.Fprintf(c.App.Writer, "%d %s\n", s.Season, s.LeagueID)
			}
			return nil
		},
	}
}

func headToHeadCommand() *cli.Command {
	return &cli.Command{
		Name:  "h2h",
		Usage: "compare two rosters head-to-head",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "a", Usage: "roster id of team A", Required: true},
			&cli.IntFlag{Name: "b", Usage: "roster id of team B", Required: true},
		},
		Action: func(c *cli.Context) error {
			if c.Int("a") == c.Int("b") {
				return cli.Exit("pick two different teams", 2)
			}
			resp, err := newClient(c).CompareHeadToHead(c.Context, c.Int("a"), c.Int("b"))
			if err != nil {
				return err
			}
			report.HeadToHead(c.App.Writer, resp.NameA, resp.NameB, resp.StartSeason, resp.Result)
			return nil
		},
	}
}

func vsAllCommand() *cli.Command {
	return &cli.Command{
		Name:  "vs-all",
		Usage: "compare one roster against every opponent it has played",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "roster", Usage: "roster id", Required: true},
		},
		Action: func(c *cli.Context) error {
			resp, err := newClient(c).CompareVsAll(c.Context, c.Int("roster"))
			if err != nil {
				return err
			}
			rows := make([]report.Opponent, 0, len(resp.Rows))
			for _, r := range resp.Rows {
				rows = append(rows, report.Opponent{Name: r.OpponentName, Row: r.OpponentRow})
			}
			report.VsAll(c.App.Writer, resp.Name, resp.StartSeason, resp.SeasonsCovered, rows)
			return nil
		},
	}
}

