// Package availability fetches player injury and suspension reports
// from an external feed and condenses them into the flag set the
// lineup engine consumes.
package availability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/pucklabs/fantasy-hockey/internal/platform/logging"
	"github.com/pucklabs/fantasy-hockey/internal/platform/resilience"
	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

const (
	defaultTimeout     = 10 * time.Second
	maxResponseBytes   = 2 << 20
	bodyPreviewLimit   = 512
	defaultFeedVersion = "v1"
)

var errFeedTransient = crerr.New("availability feed transient failure")

// Statuses that keep a player out of the starting lineup. Anything
// else (probable, day-to-day) stays draftable and startable.
var flaggedStatuses = map[string]bool{
	"out":             true,
	"injured":         true,
	"injured_reserve": true,
	"ir":              true,
	"suspended":       true,
	"personal_leave":  true,
	"non_roster":      true,
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
	Circuit    resilience.BreakerConfig
}

// Client implements usecase.AvailabilitySource over HTTP.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.Breaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.AvailabilitySource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	breakerCfg := resilience.NormalizeBreakerConfig(cfg.Circuit)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type reportEnvelope struct {
	Data []reportItem `json:"data"`
}

type reportItem struct {
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
}

// FlaggedPlayers returns the set of player IDs whose current report
// status rules them out of starter slots.
func (c *Client) FlaggedPlayers(ctx context.Context, leagueID string) (map[string]bool, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", usecase.ErrInvalidInput)
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: availability feed base url is not configured", usecase.ErrDependencyUnavailable)
	}

	path := fmt.Sprintf("/%s/leagues/%s/player-reports", defaultFeedVersion, url.PathEscape(leagueID))
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	var envelope reportEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode availability payload: %w", err)
	}

	flagged := make(map[string]bool, len(envelope.Data))
	for _, item := range envelope.Data {
		playerID := strings.TrimSpace(item.PlayerID)
		if playerID == "" {
			continue
		}
		status := strings.ToLower(strings.TrimSpace(item.Status))
		if flaggedStatuses[status] {
			flagged[playerID] = true
		}
	}
	return flagged, nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(path, func() (any, error) {
		var raw []byte
		run := func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}

		if !c.circuitEnabled {
			if err := run(); err != nil {
				return nil, err
			}
			return raw, nil
		}
		if doErr := c.breaker.Do(run); doErr != nil {
			if crerr.Is(doErr, resilience.ErrCircuitOpen) {
				c.logger.WarnContext(ctx, "availability circuit rejected request", "state", c.breaker.State())
				return nil, fmt.Errorf("%w: availability feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
			}
			return nil, doErr
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.token != "" {
			req.Header.Set("authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFeedTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFeedTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errFeedTransient, resp.StatusCode, previewBody(raw))
			default:
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, previewBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("availability feed request failed")
	}
	c.logger.WarnContext(ctx, "availability feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func previewBody(raw []byte) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	limit := len(raw)
	truncated := false
	if limit > bodyPreviewLimit {
		limit = bodyPreviewLimit
		truncated = true
	}
	_, _ = buf.Write(raw[:limit])
	if truncated {
		_, _ = buf.WriteString("...")
	}
	return strings.TrimSpace(buf.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
