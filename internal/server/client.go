package server

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// HistoryClient calls a HistoryServer over the connect protocol.
type HistoryClient struct {
	listTeams   *connect.Client[ListTeamsRequest, ListTeamsResponse]
	listSeasons *connect.Client[ListSeasonsRequest, ListSeasonsResponse]
	headToHead  *connect.Client[HeadToHeadRequest, HeadToHeadResponse]
	vsAll       *connect.Client[VsAllRequest, VsAllResponse]
}

func NewHistoryClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *HistoryClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)

	return &HistoryClient{
		listTeams:   connect.NewClient[ListTeamsRequest, ListTeamsResponse](httpClient, baseURL+ListTeamsProcedure, opts...),
		listSeasons: connect.NewClient[ListSeasonsRequest, ListSeasonsResponse](httpClient, baseURL+ListSeasonsProcedure, opts...),
		headToHead:  connect.NewClient[HeadToHeadRequest, HeadToHeadResponse](httpClient, baseURL+CompareHeadToHeadProcedure, opts...),
		vsAll:       connect.NewClient[VsAllRequest, VsAllResponse](httpClient, baseURL+CompareVsAllProcedure, opts...),
	}
}

func (c *HistoryClient) ListTeams(ctx context.Context) (*ListTeamsResponse, error) {
	resp, err := c.listTeams.CallUnary(ctx, connect.NewRequest(&ListTeamsRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *HistoryClient) ListSeasons(ctx context.Context) (*ListSeasonsResponse, error) {
	resp, err := c.listSeasons.CallUnary(ctx, connect.NewRequest(&ListSeasonsRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *HistoryClient) CompareHeadToHead(ctx context.Context, rosterA, rosterB int) (*HeadToHeadResponse, error) {
	resp, err := c.headToHead.CallUnary(ctx, connect.NewRequest(&HeadToHeadRequest{RosterA: rosterA, RosterB: rosterB}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *HistoryClient) CompareVsAll(ctx context.Context, rosterID int) (*VsAllResponse, error) {
	resp, err := c.vsAll.CallUnary(ctx, connect.NewRequest(&VsAllRequest{RosterID: rosterID}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
