package models

import "time"

type TwitchOAuthGetTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	TokenType   string `json:"token_type"`
}

// CachedToken is the app access token held by the twitch client together with its expiry instant.
type CachedToken struct {
	Value     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}

type TwitchOAuthToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
