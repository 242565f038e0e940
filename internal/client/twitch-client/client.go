package twitch_client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"twitch_gateway/internal/metrics"
	"twitch_gateway/internal/models"

	jsoniter "github.com/json-iterator/go"
)

const (
	twitchIDSchemeHost  string = "https://id.twitch.tv"
	twitchApiSchemeHost string = "https://api.twitch.tv"

	maxResponseBody   = 1 << 20
	maxErrorMessageLn = 512
)

// TokenStore persists the app token between restarts.
type TokenStore interface {
	GetNotExpiredToken(ctx context.Context) (*models.CachedToken, error)
	AddToken(ctx context.Context, token models.CachedToken) error
	SetExpiredToken(ctx context.Context, token string) error
}

type Option func(*TwitchClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(twc *TwitchClient) {
		if hc != nil {
			twc.httpClient = hc
		}
	}
}

// WithIDHost overrides scheme and host of the oauth2 endpoints.
func WithIDHost(schemeHost string) Option {
	return func(twc *TwitchClient) {
		twc.idHost = strings.TrimSuffix(schemeHost, "/")
	}
}

// WithAPIHost overrides scheme and host of the helix endpoints.
func WithAPIHost(schemeHost string) Option {
	return func(twc *TwitchClient) {
		twc.apiHost = strings.TrimSuffix(schemeHost, "/")
	}
}

func WithClock(now func() time.Time) Option {
	return func(twc *TwitchClient) {
		if now != nil {
			twc.now = now
		}
	}
}

func WithTokenStore(store TokenStore) Option {
	return func(twc *TwitchClient) {
		twc.store = store
	}
}

// TwitchClient talks to twitch with an app access token (client credentials flow).
// The token is cached on the client and reissued once it expires; mu serializes
// the check and the refresh so concurrent callers share one token request.
type TwitchClient struct {
	clientID     string
	clientSecret string
	idHost       string
	apiHost      string
	httpClient   *http.Client
	now          func() time.Time
	store        TokenStore

	mu      sync.Mutex
	token   *models.CachedToken
	revoked string // last token twitch answered 401 to
}

func NewTwitchClient(clientID, clientSecret string, opts ...Option) *TwitchClient {
	twc := &TwitchClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		idHost:       twitchIDSchemeHost,
		apiHost:      twitchApiSchemeHost,
		httpClient: &http.Client{
			Timeout: time.Second * 5,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(twc)
	}

	return twc
}

// do sends req and decodes a 2xx json body into out.
func (twc *TwitchClient) do(req *http.Request, endpoint string, out interface{}) error {
	start := time.Now()
	defer func() {
		metrics.TwitchRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	resp, err := twc.httpClient.Do(req)
	if err != nil {
		metrics.TwitchRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return &TransportError{Err: err}
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		metrics.TwitchRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.TwitchRequestsTotal.WithLabelValues(endpoint, "status_error").Inc()

		message := strings.TrimSpace(string(readedResp))

		var errResp models.TwitchErrorResponse
		if jsoniter.Unmarshal(readedResp, &errResp) == nil && errResp.Message != "" {
			message = errResp.Message
		}

		if len(message) > maxErrorMessageLn {
			message = message[:maxErrorMessageLn] + "..."
		}

		return &StatusError{StatusCode: resp.StatusCode, Message: message}
	}

	err = jsoniter.Unmarshal(readedResp, out)
	if err != nil {
		metrics.TwitchRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return &DecodeError{Err: err}
	}

	metrics.TwitchRequestsTotal.WithLabelValues(endpoint, "ok").Inc()

	return nil
}
