package twitch_client

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"twitch_gateway/internal/metrics"
	"twitch_gateway/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	twitchTokenSyncBG = "twitchToken_SyncBg"

	// largest expires_in that still fits in time.Duration
	maxExpiresIn = int64(math.MaxInt64 / int64(time.Second))
)

// IsTokenValid reports whether a token is cached and its expiry is still ahead.
func (twc *TwitchClient) IsTokenValid() bool {
	twc.mu.Lock()
	defer twc.mu.Unlock()

	return twc.isTokenValid()
}

// must be called with mu held
func (twc *TwitchClient) isTokenValid() bool {
	return twc.usable(twc.token, 0)
}

// GetOAuthToken returns the cached app token, reissuing it when it is missing or expired.
// Every failure comes back as *AuthError.
func (twc *TwitchClient) GetOAuthToken(ctx context.Context) (string, error) {
	token, err := twc.GetOAuthTokenInfo(ctx)
	if err != nil {
		return "", err
	}

	return token.Value, nil
}

// GetOAuthTokenInfo is GetOAuthToken that also returns the expiry read together with the value.
func (twc *TwitchClient) GetOAuthTokenInfo(ctx context.Context) (models.CachedToken, error) {
	twc.mu.Lock()
	defer twc.mu.Unlock()

	token, err := twc.obtainToken(ctx, 0)
	if err != nil {
		return models.CachedToken{}, err
	}

	return *token, nil
}

// usable reports whether token stays valid for at least validFor from now.
// must be called with mu held
func (twc *TwitchClient) usable(token *models.CachedToken, validFor time.Duration) bool {
	if token == nil || token.Value == "" || token.Value == twc.revoked {
		return false
	}

	return twc.now().Add(validFor).Before(token.ExpiresAt)
}

// obtainToken returns a token valid for at least validFor, taking it from the cache,
// then the store, then twitch. must be called with mu held
func (twc *TwitchClient) obtainToken(ctx context.Context, validFor time.Duration) (*models.CachedToken, error) {
	if twc.usable(twc.token, validFor) {
		metrics.TokenSourceTotal.WithLabelValues("cache").Inc()
		return twc.token, nil
	}

	if twc.store != nil {
		stored, err := twc.store.GetNotExpiredToken(ctx)
		if err != nil {
			logrus.WithError(err).Warn("[TwitchClient][GetOAuthToken] could not load stored token")
		} else if twc.usable(stored, validFor) {
			metrics.TokenSourceTotal.WithLabelValues("store").Inc()
			twc.token = stored
			return stored, nil
		}
	}

	token, err := twc.requestToken(ctx)
	if err != nil {
		err = &AuthError{Err: err}
		logrus.WithError(err).Error("[TwitchClient][GetOAuthToken]")
		return nil, err
	}

	metrics.TokenSourceTotal.WithLabelValues("twitch").Inc()
	twc.token = token
	twc.revoked = ""

	if twc.store != nil {
		if err := twc.store.AddToken(ctx, *token); err != nil {
			logrus.WithError(err).Warn("[TwitchClient][GetOAuthToken] could not save token")
		}
	}

	return token, nil
}

func (twc *TwitchClient) requestToken(ctx context.Context) (*models.CachedToken, error) {
	form := url.Values{}
	form.Set("client_id", twc.clientID)
	form.Set("client_secret", twc.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.idHost+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "NewRequest")
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	var tokenInfo models.TwitchOAuthGetTokenResponse
	err = twc.do(req, "oauth2/token", &tokenInfo)
	if err != nil {
		return nil, err
	}

	if tokenInfo.AccessToken == "" {
		return nil, errors.New("empty access token in response")
	}

	if tokenInfo.ExpiresIn <= 0 || tokenInfo.ExpiresIn > maxExpiresIn {
		return nil, errors.Errorf("invalid expires_in in response: %d", tokenInfo.ExpiresIn)
	}

	return &models.CachedToken{
		Value:     tokenInfo.AccessToken,
		ExpiresAt: twc.now().Add(time.Duration(tokenInfo.ExpiresIn) * time.Second),
	}, nil
}

// invalidateToken drops token from the cache and the store, unless it was already replaced.
func (twc *TwitchClient) invalidateToken(ctx context.Context, token string) {
	twc.mu.Lock()
	defer twc.mu.Unlock()

	if twc.token == nil || twc.token.Value != token {
		return
	}

	twc.token = nil
	// the store may still hand it out if SetExpiredToken fails
	twc.revoked = token

	if twc.store != nil {
		if err := twc.store.SetExpiredToken(ctx, token); err != nil {
			logrus.WithError(err).Warn("[TwitchClient][invalidateToken] could not expire stored token")
		}
	}
}

// SyncBg keeps a token warm: every tick it reissues the token if the cached one
// would expire before the next tick.
func (twc *TwitchClient) SyncBg(ctx context.Context, updateInterval time.Duration) {
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", twitchTokenSyncBG)
			return
		case <-ticker.C:
			logrus.Debugf("started bg %s process", twitchTokenSyncBG)
			err := twc.refreshIfExpiring(ctx, updateInterval)
			if err != nil {
				logrus.Infof("could not sync twitch token: %v", err)
				continue
			}
			logrus.Debug("twitch token sync was completed")
		}
	}
}

func (twc *TwitchClient) refreshIfExpiring(ctx context.Context, within time.Duration) error {
	twc.mu.Lock()
	defer twc.mu.Unlock()

	_, err := twc.obtainToken(ctx, within)
	return err
}
