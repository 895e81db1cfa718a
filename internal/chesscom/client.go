package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"

	"github.com/vytor/clubstats/internal/apperr"
	"github.com/vytor/clubstats/internal/logger"
)

const defaultBaseURL = "https://api.chess.com/pub"

// Client talks to the chess.com public data API. All requests share one
// rate limiter so concurrent callers stay within the API's fair-use
// policy, and every request is retried with exponential backoff on
// transport errors, 429 and 5xx before it is reported as fatal.
type Client struct {
	httpClient    *http.Client
	limiter       *rate.Limiter
	baseURL       string
	maxTries      uint
	retryInterval time.Duration
	log           *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithMaxTries bounds the attempts per request, including the first.
func WithMaxTries(n uint) ClientOption {
	return func(c *Client) {
		if n >= 1 {
			c.maxTries = n
		}
	}
}

// WithRetryInterval sets the initial backoff delay between attempts.
func WithRetryInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.retryInterval = d }
}

func New(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		limiter:       rate.NewLimiter(rate.Limit(2), 1),
		baseURL:       defaultBaseURL,
		maxTries:      3,
		retryInterval: 500 * time.Millisecond,
		log:           logger.Default().WithPrefix("chesscom"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchClubMembers fetches the club member list, grouped by membership
// duration bucket. The bucket names carry no meaning for callers.
func (c *Client) FetchClubMembers(ctx context.Context, clubID string) (map[string][]ClubMember, error) {
	log := logger.FromContext(ctx).WithPrefix("chesscom").WithField("club", clubID)
	url := fmt.Sprintf("%s/club/%s/members", c.baseURL, clubID)

	var out map[string][]ClubMember
	if err := c.getJSON(ctx, url, &out); err != nil {
		log.Error("failed to fetch club members: %v", err)
		return nil, err
	}

	total := 0
	for _, bucket := range out {
		total += len(bucket)
	}
	log.Info("fetched %d member entries across %d buckets", total, len(out))
	return out, nil
}

// FetchPlayerProfile fetches the public profile of one player.
func (c *Client) FetchPlayerProfile(ctx context.Context, username string) (*PlayerProfile, error) {
	log := logger.FromContext(ctx).WithPrefix("chesscom").WithField("username", username)
	url := fmt.Sprintf("%s/player/%s", c.baseURL, username)

	var out PlayerProfile
	if err := c.getJSON(ctx, url, &out); err != nil {
		log.Error("failed to fetch profile: %v", err)
		return nil, err
	}

	log.Debug("fetched profile")
	return &out, nil
}

// FetchPlayerStats fetches the rating and puzzle statistics of one player.
func (c *Client) FetchPlayerStats(ctx context.Context, username string) (*PlayerStats, error) {
	log := logger.FromContext(ctx).WithPrefix("chesscom").WithField("username", username)
	url := fmt.Sprintf("%s/player/%s/stats", c.baseURL, username)

	var out PlayerStats
	if err := c.getJSON(ctx, url, &out); err != nil {
		log.Error("failed to fetch stats: %v", err)
		return nil, err
	}

	log.Debug("fetched stats")
	return &out, nil
}

// getJSON performs one rate-limited GET with bounded retries and decodes
// the body into out. Any terminal failure comes back as *apperr.FetchError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	log := logger.FromContext(ctx).WithPrefix("chesscom")

	attempt := 0
	op := func() (struct{}, error) {
		attempt++
		if attempt > 1 {
			log.Warn("retrying request (attempt %d/%d): %s", attempt, c.maxTries, url)
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return struct{}{}, backoff.Permanent(apperr.NewUnreachableError(url, err))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return struct{}{}, backoff.Permanent(apperr.NewUnreachableError(url, err))
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, apperr.NewUnreachableError(url, err)
		}
		defer resp.Body.Close()

		log.Debug("response received in %v, status=%d, url=%s", time.Since(start), resp.StatusCode, url)

		if resp.StatusCode != http.StatusOK {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
			statusErr := apperr.NewBadStatusError(url, resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return struct{}{}, statusErr
			}
			return struct{}{}, backoff.Permanent(statusErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return struct{}{}, backoff.Permanent(apperr.NewBadBodyError(url, err))
		}
		return struct{}{}, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil && !apperr.IsFetch(err) {
		err = apperr.NewUnreachableError(url, err)
	}
	return err
}
