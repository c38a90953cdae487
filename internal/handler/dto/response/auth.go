package response

import "time"

type MeResponse struct {
	Account string `json:"account"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	Account     string    `json:"account"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
