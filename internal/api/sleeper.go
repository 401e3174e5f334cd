package api

import (
	"context"
	"errors"
	"fmt"
	"sleeper-history/internal/config"
	"sleeper-history/internal/constants"
	"sleeper-history/internal/domain"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

type SleeperClient struct {
	baseURL    string
	client     *fasthttp.Client
	limiter    *rate.Limiter
	attempts   uint
	retryDelay time.Duration
	logger     zerolog.Logger
}

// StatusError is returned for any non-2xx response. Request names the
// endpoint family ("league", "users", "rosters", "matchups").
type StatusError struct {
	Request    string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed (%d) for %s", e.Request, e.StatusCode, e.URL)
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

func NewSleeperClient(cfg *config.Config, logger zerolog.Logger) *SleeperClient {
	attempts := uint(1)
	if cfg.SleeperRetries > 1 {
		attempts = uint(cfg.SleeperRetries)
	}

	limit := rate.Inf
	if cfg.SleeperRPS > 0 {
		limit = rate.Limit(cfg.SleeperRPS)
	}

	return &SleeperClient{
		baseURL: strings.TrimRight(cfg.SleeperBaseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.MaxConnsPerHost,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter:    rate.NewLimiter(limit, 1),
		attempts:   attempts,
		retryDelay: cfg.RetryDelay,
		logger:     logger.With().Str("component", "sleeper").Logger(),
	}
}

func (c *SleeperClient) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	url := fmt.Sprintf("%s/league/%s", c.baseURL, leagueID)
	return doRequest[League](ctx, c, "league", url)
}

func (c *SleeperClient) GetUsers(ctx context.Context, leagueID string) ([]User, error) {
	url := fmt.Sprintf("%s/league/%s/users", c.baseURL, leagueID)
	users, err := doRequest[[]User](ctx, c, "users", url)
	if err != nil {
		return nil, err
	}
	return *users, nil
}

func (c *SleeperClient) GetRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	url := fmt.Sprintf("%s/league/%s/rosters", c.baseURL, leagueID)
	rosters, err := doRequest[[]Roster](ctx, c, "rosters", url)
	if err != nil {
		return nil, err
	}
	return *rosters, nil
}

// GetMatchups returns one week's per-roster records. A null body decodes to
// an empty slice.
func (c *SleeperClient) GetMatchups(ctx context.Context, leagueID string, week int) ([]domain.GameRecord, error) {
	url := fmt.Sprintf("%s/league/%s/matchups/%d", c.baseURL, leagueID, week)
	records, err := doRequest[[]domain.GameRecord](ctx, c, "matchups", url)
	if err != nil {
		return nil, err
	}
	return *records, nil
}

func doRequest[T any](ctx context.Context, client *SleeperClient, name, url string) (*T, error) {
	var result T

	err := retry.Do(
		func() error {
			if err := client.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}
			return client.fetch(ctx, name, url, &result)
		},
		retry.Context(ctx),
		retry.Attempts(client.attempts),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			client.logger.Debug().Err(err).Uint("attempt", n+1).Str("url", url).Msg("retrying request")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *SleeperClient) fetch(ctx context.Context, name, url string, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return err
		}
	} else {
		if err := c.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
			return err
		}
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		statusErr := &StatusError{Request: name, URL: url, StatusCode: status}
		if status >= 500 || status == fasthttp.StatusTooManyRequests {
			return statusErr
		}
		return retry.Unrecoverable(statusErr)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to decode %s response: %w", name, err))
	}
	return nil
}
