package twitch_service

import (
	"context"

	"twitch_gateway/internal/models"
)

func (tws *TwitchService) GetOAuthToken(ctx context.Context) (*models.TwitchOAuthToken, error) {
	token, err := tws.twitchClient.GetOAuthTokenInfo(ctx)
	if err != nil {
		return nil, err
	}

	return &models.TwitchOAuthToken{
		AccessToken: token.Value,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}
