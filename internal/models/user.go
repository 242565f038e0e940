package models

// UserData is the helix users response decoded as is, e.g. {"data": [{"id": "1", "login": "bob", ...}]}.
// Empty "data" means the user was not found.
type UserData map[string]interface{}

type GetUserInfoReq struct {
	Login string `json:"login"`
}

// Users returns the "data" array of the response, nil if missing or not an array.
func (ud UserData) Users() []interface{} {
	users, _ := ud["data"].([]interface{})
	return users
}
