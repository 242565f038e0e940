package models

// TwitchErrorResponse is the body twitch sends along with non 2xx codes.
type TwitchErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}
