package twitch_service

import (
	"context"

	"twitch_gateway/internal/models"
)

type twitchClient interface {
	GetOAuthTokenInfo(ctx context.Context) (models.CachedToken, error)
	GetUserData(ctx context.Context, username string) (models.UserData, error)
}

type TwitchService struct {
	twitchClient twitchClient
}

func NewService(twitchClient twitchClient) *TwitchService {
	return &TwitchService{
		twitchClient: twitchClient,
	}
}
