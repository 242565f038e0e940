package twitch_handler

import (
	"context"

	"twitch_gateway/internal/models"
)

type twitchService interface {
	GetOAuthToken(ctx context.Context) (*models.TwitchOAuthToken, error)
	GetUser(ctx context.Context, username string) (models.UserData, error)
}

type TwitchHandler struct {
	twitchService twitchService
}

func NewTwitchHandler(twitchService twitchService) *TwitchHandler {
	return &TwitchHandler{
		twitchService: twitchService,
	}
}
