package twitch_service

import (
	"context"
	"strings"

	"twitch_gateway/internal/models"

	"github.com/pkg/errors"
)

var (
	ErrEmptyUsername = errors.New("empty username")
	ErrUserNotFound  = errors.New("user not found")
)

func (tws *TwitchService) GetUser(ctx context.Context, username string) (models.UserData, error) {

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	userInfo, err := tws.twitchClient.GetUserData(ctx, username)
	if err != nil {
		return nil, err
	}

	if len(userInfo.Users()) < 1 {
		return nil, errors.Wrapf(ErrUserNotFound, "login %s", strings.ToLower(username))
	}

	return userInfo, nil
}
