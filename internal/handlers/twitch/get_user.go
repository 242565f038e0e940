package twitch_handler

import (
	"net/http"

	"twitch_gateway/internal/middleware"
	"twitch_gateway/internal/models"
	twitch_service "twitch_gateway/internal/service/twitch"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func (twh *TwitchHandler) GetUser(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	reqDTO := models.GetUserInfoReq{}
	if err := jsoniter.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logrus.Errorf("failed decode request, error: %v", err)
		middleware.WriteErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := twh.twitchService.GetUser(ctx, reqDTO.Login)
	if err != nil {
		switch {
		case errors.Is(err, twitch_service.ErrEmptyUsername):
			middleware.WriteErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, twitch_service.ErrUserNotFound):
			middleware.WriteErrorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			logrus.Error(err)
			middleware.WriteErrorResponse(w, r, http.StatusBadGateway, err.Error())
		}
		return
	}

	middleware.WriteSuccessData(w, r, res)
}
