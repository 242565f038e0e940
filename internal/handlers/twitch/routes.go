package twitch_handler

import "github.com/gorilla/mux"

func (twh *TwitchHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/twitch/oauth", twh.GetOAuthToken).Methods("POST")
	router.HandleFunc("/twitch/user", twh.GetUser).Methods("POST")
}
