package twitch_client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"twitch_gateway/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetUserData looks up one user by login and returns the helix response untouched.
// An unknown login is not an error: the response just has an empty "data" array.
func (twc *TwitchClient) GetUserData(ctx context.Context, username string) (models.UserData, error) {

	login := strings.ToLower(username)

	token, err := twc.GetOAuthToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.apiHost+"/helix/users", nil)
	if err != nil {
		return nil, &APIError{Err: errors.Wrap(err, "NewRequest")}
	}

	query := req.URL.Query()
	query.Add("login", login)
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Client-Id", twc.clientID)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))

	var userData models.UserData
	err = twc.do(req, "helix/users", &userData)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			twc.invalidateToken(ctx, token)
		}

		err = &APIError{Err: err}
		logrus.WithError(err).WithField("login", login).Error("[TwitchClient][GetUserData]")
		return nil, err
	}

	return userData, nil
}
