package server

import (
	"context"
	"errors"
	"net/http"
	"sleeper-history/internal/api"
	"sleeper-history/internal/config"
	"sleeper-history/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

type HistoryServer struct {
	compareSvc *service.CompareService
	teamSvc    *service.TeamService
	cfg        *config.Config
	logger     zerolog.Logger
}

func NewHistoryServer(compareSvc *service.CompareService, teamSvc *service.TeamService, cfg *config.Config, logger zerolog.Logger) *HistoryServer {
	return &HistoryServer{compareSvc: compareSvc, teamSvc: teamSvc, cfg: cfg, logger: logger}
}

// Handler mounts every history procedure under HistoryPath.
func (s *HistoryServer) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ListTeamsProcedure, connect.NewUnaryHandler(ListTeamsProcedure, s.ListTeams, opts...))
	mux.Handle(ListSeasonsProcedure, connect.NewUnaryHandler(ListSeasonsProcedure, s.ListSeasons, opts...))
	mux.Handle(CompareHeadToHeadProcedure, connect.NewUnaryHandler(CompareHeadToHeadProcedure, s.CompareHeadToHead, opts...))
	mux.Handle(CompareVsAllProcedure, connect.NewUnaryHandler(CompareVsAllProcedure, s.CompareVsAll, opts...))
	return HistoryPath, mux
}

func (s *HistoryServer) ListTeams(ctx context.Context, _ *connect.Request[ListTeamsRequest]) (*connect.Response[ListTeamsResponse], error) {
	teams, err := s.teamSvc.Teams(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListTeamsResponse{Teams: teams}), nil
}

func (s *HistoryServer) ListSeasons(ctx context.Context, _ *connect.Request[ListSeasonsRequest]) (*connect.Response[ListSeasonsResponse], error) {
	seasons, err := s.compareSvc.Seasons(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListSeasonsResponse{StartSeason: s.cfg.StartSeason, Seasons: seasons}), nil
}

func (s *HistoryServer) CompareHeadToHead(ctx context.Context, req *connect.Request[HeadToHeadRequest]) (*connect.Response[HeadToHeadResponse], error) {
	res, err := s.compareSvc.HeadToHead(ctx, req.Msg.RosterA, req.Msg.RosterB)
	if err != nil {
		return nil, toConnectError(err)
	}

	names := s.directory(ctx)
	return connect.NewResponse(&HeadToHeadResponse{
		NameA:       names.Name(req.Msg.RosterA),
		NameB:       names.Name(req.Msg.RosterB),
		StartSeason: s.cfg.StartSeason,
		Result:      *res,
	}), nil
}

func (s *HistoryServer) CompareVsAll(ctx context.Context, req *connect.Request[VsAllRequest]) (*connect.Response[VsAllResponse], error) {
	res, err := s.compareSvc.VsAll(ctx, req.Msg.RosterID)
	if err != nil {
		return nil, toConnectError(err)
	}

	names := s.directory(ctx)
	rows := make([]NamedOpponentRow, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, NamedOpponentRow{OpponentRow: r, OpponentName: names.Name(r.OpponentRosterID)})
	}

	return connect.NewResponse(&VsAllResponse{
		Name:           names.Name(req.Msg.RosterID),
		StartSeason:    s.cfg.StartSeason,
		SeasonsCovered: res.SeasonsCovered,
		Rows:           rows,
	}), nil
}

// directory labels results. A failed lookup degrades to "Roster N" labels
// rather than failing a finished comparison.
func (s *HistoryServer) directory(ctx context.Context) service.Directory {
	teams, err := s.teamSvc.Teams(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("team lookup failed, using roster ids as names")
		return service.Directory{}
	}
	return service.NewDirectory(teams)
}

func toConnectError(err error) error {
	var statusErr *api.StatusError
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, service.ErrChainResolution), errors.As(err, &statusErr):
		return connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
