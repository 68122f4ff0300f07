package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
}
