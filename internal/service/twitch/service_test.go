package twitch_service

import (
	"context"
	"testing"
	"time"

	"twitch_gateway/internal/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTwitchClient struct {
	mock.Mock
}

func (m *MockTwitchClient) GetOAuthTokenInfo(ctx context.Context) (models.CachedToken, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.CachedToken), args.Error(1)
}

func (m *MockTwitchClient) GetUserData(ctx context.Context, username string) (models.UserData, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.UserData), args.Error(1)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		client := new(MockTwitchClient)
		data := models.UserData{"data": []interface{}{map[string]interface{}{"id": "1", "login": "bob"}}}
		client.On("GetUserData", ctx, "Bob").Return(data, nil).Once()

		got, err := NewService(client).GetUser(ctx, " Bob ")
		require.NoError(t, err)
		assert.Equal(t, data, got)
		client.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		client := new(MockTwitchClient)
		client.On("GetUserData", ctx, "nosuchuser").Return(models.UserData{"data": []interface{}{}}, nil).Once()

		_, err := NewService(client).GetUser(ctx, "nosuchuser")
		assert.True(t, errors.Is(err, ErrUserNotFound))
		assert.Contains(t, err.Error(), "nosuchuser")
	})

	t.Run("empty username", func(t *testing.T) {
		client := new(MockTwitchClient)

		_, err := NewService(client).GetUser(ctx, "   ")
		assert.Equal(t, ErrEmptyUsername, err)
		client.AssertNotCalled(t, "GetUserData", mock.Anything, mock.Anything)
	})

	t.Run("client error is passed through", func(t *testing.T) {
		client := new(MockTwitchClient)
		clientErr := errors.New("twitch api: boom")
		client.On("GetUserData", ctx, "bob").Return(nil, clientErr).Once()

		_, err := NewService(client).GetUser(ctx, "bob")
		assert.Equal(t, clientErr, err)
	})
}

func TestGetOAuthToken(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		client := new(MockTwitchClient)
		client.On("GetOAuthTokenInfo", ctx).Return(models.CachedToken{Value: "abc", ExpiresAt: expiresAt}, nil).Once()

		got, err := NewService(client).GetOAuthToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, &models.TwitchOAuthToken{AccessToken: "abc", ExpiresAt: expiresAt}, got)
	})

	t.Run("client error", func(t *testing.T) {
		client := new(MockTwitchClient)
		client.On("GetOAuthTokenInfo", ctx).Return(models.CachedToken{}, errors.New("twitch oauth: denied")).Once()

		_, err := NewService(client).GetOAuthToken(ctx)
		assert.EqualError(t, err, "twitch oauth: denied")
	})
}
